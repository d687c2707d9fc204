package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorderCounts(t *testing.T) {
	r := NewWithRegistry(prometheus.NewRegistry())

	r.RecordFetch("http", "ok")
	r.RecordFetch("http", "ok")
	r.RecordNotePlayed("piano")
	r.RecordLastPrice("AAPL", 187.5)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.fetches.WithLabelValues("http", "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.notesPlayed.WithLabelValues("piano")))
	assert.Equal(t, 187.5, testutil.ToFloat64(r.lastPrice.WithLabelValues("AAPL")))
}
