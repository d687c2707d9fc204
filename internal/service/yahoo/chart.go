package yahoo

import (
	"context"
	"fmt"

	"FinSound/internal/domain/models"

	finance "github.com/piquette/finance-go"
	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
)

// barIter is the subset of *chart.Iter the source reads.
type barIter interface {
	Next() bool
	Bar() *finance.ChartBar
	Err() error
}

// ChartSource reads daily closes through piquette/finance-go.
type ChartSource struct {
	get func(*chart.Params) barIter
}

// NewChartSource creates a finance-go backed PriceSource.
func NewChartSource() *ChartSource {
	return &ChartSource{get: func(p *chart.Params) barIter { return chart.Get(p) }}
}

func (s *ChartSource) Name() string { return "finance-go" }

// History returns the daily closes of q.Symbol between q.Start and q.End.
func (s *ChartSource) History(ctx context.Context, q models.PriceQuery) (models.PriceSeries, error) {
	start, end := q.Start, q.End
	params := &chart.Params{
		Symbol:   q.Symbol,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: datetime.OneDay,
	}
	params.Context = &ctx

	it := s.get(params)
	var out models.PriceSeries
	for it.Next() {
		bar := it.Bar()
		if bar == nil {
			continue
		}
		// zero closes are gaps in the exchange calendar
		if bar.Close.IsZero() {
			continue
		}
		f, _ := bar.Close.Float64()
		out = append(out, f)
	}
	if err := it.Err(); err != nil {
		return nil, fmt.Errorf("chart %s: %w", q.Symbol, err)
	}
	return out, nil
}
