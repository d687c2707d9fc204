package yahoo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"FinSound/internal/domain/models"
	xhttp "FinSound/pkg/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const chartBody = `{"chart":{"result":[{"timestamp":[1704153600,1704240000,1704326400,1704412800],
"indicators":{"quote":[{"close":[185.64,null,184.25,181.91]}]}}],"error":null}}`

func TestHTTPSourceHistory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v8/finance/chart/AAPL", r.URL.Path)
		assert.Equal(t, "1d", r.URL.Query().Get("interval"))
		assert.Equal(t, "1704153600", r.URL.Query().Get("period1"))
		assert.Equal(t, "1706659200", r.URL.Query().Get("period2"))
		assert.NotEmpty(t, r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(chartBody))
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL, xhttp.NewClient(xhttp.WithTimeout(time.Second)))
	series, err := src.History(context.Background(), models.PriceQuery{
		Symbol: "AAPL",
		Start:  time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		End:    time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, models.PriceSeries{185.64, 184.25, 181.91}, series)
}

func TestHTTPSourceNotFoundIsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"chart":{"result":null,"error":{"code":"Not Found","description":"No data found"}}}`))
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL, xhttp.NewClient())
	series, err := src.History(context.Background(), models.PriceQuery{Symbol: "ZZZZ"})
	require.NoError(t, err)
	assert.Empty(t, series)
}

func TestHTTPSourceChartError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"chart":{"result":null,"error":{"code":"Bad Request","description":"Invalid input"}}}`))
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL, xhttp.NewClient())
	_, err := src.History(context.Background(), models.PriceQuery{Symbol: "AAPL"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid input")
}

func TestHTTPSourceServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	}))
	defer srv.Close()

	src := NewHTTPSource(srv.URL, xhttp.NewClient())
	_, err := src.History(context.Background(), models.PriceQuery{Symbol: "AAPL"})
	require.Error(t, err)

	var se *xhttp.StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusBadGateway, se.Code)
}
