package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Recorder using Prometheus.
type Recorder struct {
	fetches     *prometheus.CounterVec
	notesPlayed *prometheus.CounterVec
	errorsTotal *prometheus.CounterVec
	lastPrice   *prometheus.GaugeVec
	latency     *prometheus.HistogramVec
}

// New creates a recorder registered on the default Prometheus registry.
func New() *Recorder {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry creates a recorder registered on reg.
func NewWithRegistry(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		fetches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finsound_price_fetches_total",
				Help: "Price history fetches by source and outcome",
			},
			[]string{"source", "outcome"},
		),
		notesPlayed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finsound_notes_played_total",
				Help: "Notes sent to the audio output",
			},
			[]string{"timbre"},
		),
		errorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "finsound_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		lastPrice: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "finsound_last_price",
				Help: "Last close seen for a symbol",
			},
			[]string{"symbol"},
		),
		latency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "finsound_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordFetch records a price fetch against a source.
func (r *Recorder) RecordFetch(source, outcome string) {
	r.fetches.WithLabelValues(source, outcome).Inc()
}

// RecordNotePlayed records one note handed to the audio output.
func (r *Recorder) RecordNotePlayed(timbre string) {
	r.notesPlayed.WithLabelValues(timbre).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLastPrice records the last price for a symbol.
func (r *Recorder) RecordLastPrice(symbol string, price float64) {
	r.lastPrice.WithLabelValues(symbol).Set(price)
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
