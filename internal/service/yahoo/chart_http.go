package yahoo

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"FinSound/internal/domain/models"
	xhttp "FinSound/pkg/http"
	"FinSound/pkg/util"
)

// chartResponse is the v8 chart payload; closes are null on non-trading days.
type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// HTTPSource reads the Yahoo v8 chart endpoint directly.
type HTTPSource struct {
	baseURL string
	client  *xhttp.Client
}

// NewHTTPSource creates a PriceSource calling baseURL with client.
func NewHTTPSource(baseURL string, client *xhttp.Client) *HTTPSource {
	return &HTTPSource{baseURL: baseURL, client: client}
}

func (s *HTTPSource) Name() string { return "http" }

// History returns the daily closes of q.Symbol between q.Start and q.End.
func (s *HTTPSource) History(ctx context.Context, q models.PriceQuery) (models.PriceSeries, error) {
	from, to := util.DayBounds(q.Start, q.End)

	var resp chartResponse
	err := s.client.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    s.baseURL + "/v8/finance/chart/" + url.PathEscape(q.Symbol),
		QueryParams: map[string][]string{
			"period1":  {strconv.FormatInt(from, 10)},
			"period2":  {strconv.FormatInt(to, 10)},
			"interval": {"1d"},
			"events":   {"history"},
		},
	}, &resp)
	if err != nil {
		var se *xhttp.StatusError
		if errors.As(err, &se) && se.Code == 404 {
			return nil, nil
		}
		return nil, fmt.Errorf("chart %s: %w", q.Symbol, err)
	}
	if e := resp.Chart.Error; e != nil {
		return nil, fmt.Errorf("chart %s: %s: %s", q.Symbol, e.Code, e.Description)
	}
	if len(resp.Chart.Result) == 0 || len(resp.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, nil
	}

	closes := resp.Chart.Result[0].Indicators.Quote[0].Close
	out := make(models.PriceSeries, 0, len(closes))
	for _, c := range closes {
		if c == nil {
			continue
		}
		out = append(out, *c)
	}
	return out, nil
}
