// Copyright: This file is part of degrees, released under https://github.com/sixdegrees/degrees/blob/main/LICENSE

// Package metric records Prometheus metrics for searches and the loaded dataset.
package metric

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sixdegrees/degrees/pkg/dataset"
	"github.com/sixdegrees/degrees/pkg/search"
)

const namespace = "degrees"

// Result label values for searches.
const (
	Connected    = "connected"
	NotConnected = "not_connected"
	Unknown      = "unknown_person"
	Cancelled    = "cancelled"
	Failed       = "error"
)

// Metrics for a degrees server.
type Metrics struct {
	searches *prometheus.CounterVec
	duration *prometheus.HistogramVec
	degrees  prometheus.Histogram
	explored prometheus.Histogram
	records  *prometheus.GaugeVec
}

// New registers metrics with reg.
// Use [prometheus.DefaultRegisterer] for the process-wide registry.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "total",
			Help:      "Searches by strategy and result.",
		}, []string{"strategy", "result"}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "duration_seconds",
			Help:      "Search latency in seconds.",
			Buckets:   []float64{0.0001, 0.001, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, []string{"strategy"}),
		degrees: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "degrees",
			Help:      "Degrees of separation found by connected searches.",
			Buckets:   prometheus.LinearBuckets(0, 1, 7),
		}),
		explored: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "explored_people",
			Help:      "People expanded by each search.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
		records: f.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "dataset",
			Name:      "records",
			Help:      "Records in the loaded dataset by kind.",
		}, []string{"kind"}),
	}
}

// Dataset records the size of the loaded dataset.
func (m *Metrics) Dataset(s dataset.Stats) {
	m.records.WithLabelValues("people").Set(float64(s.People))
	m.records.WithLabelValues("movies").Set(float64(s.Movies))
	m.records.WithLabelValues("stars").Set(float64(s.Stars))
	m.records.WithLabelValues("dropped").Set(float64(s.Dropped))
}

// Search records the outcome of one search.
func (m *Metrics) Search(strategy string, r *search.Result, err error, elapsed time.Duration) {
	result := Failed
	switch {
	case err == nil && r.Connected:
		result = Connected
		m.degrees.Observe(float64(r.Degrees()))
	case err == nil:
		result = NotConnected
	case errors.Is(err, dataset.ErrUnknownPerson):
		result = Unknown
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		result = Cancelled
	}
	if r != nil {
		m.explored.Observe(float64(r.Explored))
	}
	m.searches.WithLabelValues(strategy, result).Inc()
	m.duration.WithLabelValues(strategy).Observe(elapsed.Seconds())
}

// Run a search with s and record it.
func (m *Metrics) Run(ctx context.Context, s *search.Searcher, source, target dataset.PersonID) (*search.Result, error) {
	start := time.Now()
	r, err := s.Search(ctx, source, target)
	m.Search(string(s.Options().Strategy), r, err, time.Since(start))
	return r, err
}
