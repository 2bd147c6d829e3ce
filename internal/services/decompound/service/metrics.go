package service

import (
	"decompound/internal/services/decompound/domain"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the service level collectors
type Metrics struct {
	outcomes *prometheus.CounterVec
	lookups  *prometheus.CounterVec
	duration prometheus.Histogram
}

// NewMetrics registers the collectors on reg; a nil reg skips registration
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		outcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "decompound",
			Name:      "words_total",
			Help:      "Decompounded words by outcome.",
		}, []string{"outcome"}),
		lookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "decompound",
			Name:      "lexicon_lookups_total",
			Help:      "Lexicon membership tests by answer.",
		}, []string{"valid"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "decompound",
			Name:      "search_duration_seconds",
			Help:      "Time spent searching one word.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 8),
		}),
	}
	if reg != nil {
		reg.MustRegister(m.outcomes, m.lookups, m.duration)
	}
	return m
}

func (m *Metrics) outcome(o domain.Outcome) {
	if m != nil {
		m.outcomes.WithLabelValues(string(o)).Inc()
	}
}

func (m *Metrics) lookup(_ string, valid bool) {
	if m == nil {
		return
	}
	if valid {
		m.lookups.WithLabelValues("true").Inc()
		return
	}
	m.lookups.WithLabelValues("false").Inc()
}

func (m *Metrics) observe(seconds float64) {
	if m != nil {
		m.duration.Observe(seconds)
	}
}
