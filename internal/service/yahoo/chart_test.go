package yahoo

import (
	"context"
	"errors"
	"testing"
	"time"

	"FinSound/internal/domain/models"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIter struct {
	bars []*finance.ChartBar
	pos  int
	err  error
}

func (f *fakeIter) Next() bool {
	if f.pos >= len(f.bars) {
		return false
	}
	f.pos++
	return true
}

func (f *fakeIter) Bar() *finance.ChartBar { return f.bars[f.pos-1] }
func (f *fakeIter) Err() error             { return f.err }

func bar(v string) *finance.ChartBar {
	return &finance.ChartBar{Close: decimal.RequireFromString(v)}
}

func TestChartSourceHistory(t *testing.T) {
	var got *chart.Params
	src := &ChartSource{get: func(p *chart.Params) barIter {
		got = p
		return &fakeIter{bars: []*finance.ChartBar{bar("1.0812"), bar("0"), bar("1.0855"), nil, bar("1.0799")}}
	}}

	q := models.PriceQuery{
		Symbol: "USDEUR=X",
		Start:  time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		End:    time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	}
	series, err := src.History(context.Background(), q)
	require.NoError(t, err)
	assert.Equal(t, models.PriceSeries{1.0812, 1.0855, 1.0799}, series)

	require.NotNil(t, got)
	assert.Equal(t, "USDEUR=X", got.Symbol)
	assert.Equal(t, datetime.OneDay, got.Interval)
}

func TestChartSourceHistoryError(t *testing.T) {
	src := &ChartSource{get: func(*chart.Params) barIter {
		return &fakeIter{err: errors.New("remote-error")}
	}}
	_, err := src.History(context.Background(), models.PriceQuery{Symbol: "NOPE"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOPE")
}
