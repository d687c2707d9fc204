//go:generate mockgen -destination=mocks/mock_sonify.go -package=mocks FinSound/internal/domain/repository PriceSource,AudioOutput,Recorder

package repository

import (
	"context"

	"FinSound/internal/domain/models"
)

// PriceSource returns daily closing prices for a symbol over a date range.
type PriceSource interface {
	Name() string
	History(ctx context.Context, q models.PriceQuery) (models.PriceSeries, error)
}

// AudioOutput plays a waveform and blocks until it has finished.
type AudioOutput interface {
	Play(ctx context.Context, wf models.Waveform) error
	Close() error
}

// Recorder receives sonification metrics.
type Recorder interface {
	RecordFetch(source, outcome string)
	RecordNotePlayed(timbre string)
	RecordError(kind string)
	RecordLastPrice(symbol string, price float64)
	RecordLatency(op string, seconds float64)
}
