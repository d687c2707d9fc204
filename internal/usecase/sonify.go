package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"FinSound/internal/domain/models"
	drepo "FinSound/internal/domain/repository"
	"FinSound/internal/service/audio"
	"FinSound/internal/services/sonify"
	applogger "FinSound/pkg/logger"
	"FinSound/pkg/util"
)

// SonifyUseCase turns a price history into notes and sound.
type SonifyUseCase struct {
	source  drepo.PriceSource
	seq     *sonify.Sequencer
	metrics drepo.Recorder
	logger  *applogger.Logger
}

func NewSonifyUseCase(source drepo.PriceSource, seq *sonify.Sequencer, metrics drepo.Recorder, l *applogger.Logger) *SonifyUseCase {
	if l == nil {
		l = applogger.NewNop()
	}
	return &SonifyUseCase{source: source, seq: seq, metrics: metrics, logger: l}
}

type ComposeParams struct {
	Symbol string
	Start  time.Time
	End    time.Time
}

// Composition is a reduced price series and the notes derived from it.
type Composition struct {
	Symbol   string        `json:"symbol"`
	Start    string        `json:"start"`
	End      string        `json:"end"`
	RawCount int           `json:"raw_count"`
	Samples  []float64     `json:"samples"`
	Notes    []models.Note `json:"notes"`
	Min      float64       `json:"min"`
	Max      float64       `json:"max"`
}

// Compose fetches the history, reduces it and maps it to notes.
// A failed fetch is reported as ErrEmptyInput, like a range without data.
func (uc *SonifyUseCase) Compose(ctx context.Context, p ComposeParams) (*Composition, error) {
	if strings.TrimSpace(p.Symbol) == "" {
		return nil, models.ErrMissingSymbol
	}
	if p.Start.After(p.End) {
		return nil, fmt.Errorf("%w: start %s is after end %s",
			models.ErrInvalidDateRange, util.FormatDate(p.Start), util.FormatDate(p.End))
	}

	start := time.Now()
	series, err := uc.source.History(ctx, models.PriceQuery{Symbol: p.Symbol, Start: p.Start, End: p.End})
	uc.metrics.RecordLatency("fetch", time.Since(start).Seconds())
	if err != nil {
		uc.metrics.RecordFetch(uc.source.Name(), "error")
		uc.logger.Warn("price fetch failed",
			applogger.String("symbol", p.Symbol),
			applogger.String("source", uc.source.Name()),
			applogger.Error(err),
		)
		return nil, fmt.Errorf("%s: %w", p.Symbol, models.ErrEmptyInput)
	}
	if len(series) == 0 {
		uc.metrics.RecordFetch(uc.source.Name(), "empty")
		return nil, fmt.Errorf("%s: %w", p.Symbol, models.ErrEmptyInput)
	}
	uc.metrics.RecordFetch(uc.source.Name(), "ok")
	uc.metrics.RecordLastPrice(p.Symbol, series[len(series)-1])

	samples, err := sonify.Reduce(series)
	if err != nil {
		return nil, fmt.Errorf("reduce %s: %w", p.Symbol, err)
	}
	notes := sonify.MapToNotes(samples)
	if len(notes) == 0 {
		uc.metrics.RecordError("map")
		return nil, fmt.Errorf("%s: %w", p.Symbol, models.ErrNoNotes)
	}
	lo, hi, _ := models.Bounds(samples)

	uc.logger.Info("composition ready",
		applogger.String("symbol", p.Symbol),
		applogger.Int("raw", len(series)),
		applogger.Floats64("samples", samples),
		applogger.Strings("notes", models.NoteNames(notes)),
	)

	return &Composition{
		Symbol:   p.Symbol,
		Start:    util.FormatDate(p.Start),
		End:      util.FormatDate(p.End),
		RawCount: len(series),
		Samples:  samples,
		Notes:    notes,
		Min:      lo,
		Max:      hi,
	}, nil
}

// Play sends the composition to the audio output, one note at a time.
func (uc *SonifyUseCase) Play(ctx context.Context, comp *Composition, timbre models.Timbre, duration float64) error {
	start := time.Now()
	played, err := uc.seq.Play(ctx, comp.Notes, timbre, duration)
	for i := 0; i < played; i++ {
		uc.metrics.RecordNotePlayed(string(timbre))
	}
	uc.metrics.RecordLatency("play", time.Since(start).Seconds())
	if err != nil {
		kind := "play"
		if errors.Is(err, models.ErrAudioDevice) {
			kind = "audio_device"
		}
		uc.metrics.RecordError(kind)
		uc.logger.Error("playback aborted",
			applogger.String("symbol", comp.Symbol),
			applogger.Int("played", played),
			applogger.Int("total", len(comp.Notes)),
			applogger.Error(err),
		)
		return err
	}
	return nil
}

// Render returns the whole composition as a WAV file.
func (uc *SonifyUseCase) Render(ctx context.Context, comp *Composition, timbre models.Timbre, duration float64) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start := time.Now()
	wf, err := uc.seq.Render(comp.Notes, timbre, duration)
	if err != nil {
		uc.metrics.RecordError("render")
		return nil, err
	}
	var buf bytes.Buffer
	if err := audio.EncodeWAV(&buf, wf); err != nil {
		uc.metrics.RecordError("render")
		return nil, err
	}
	uc.metrics.RecordLatency("render", time.Since(start).Seconds())
	return buf.Bytes(), nil
}
