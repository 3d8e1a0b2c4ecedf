package mediator

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the prometheus collectors recorded for every request.
type Metrics struct {
	requestCount    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		requestCount: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_requests_total",
				Help: "Total number of catalog requests handled.",
			},
			[]string{"request", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "catalog_request_duration_seconds",
				Help:    "Duration of catalog request handling.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"request"},
		),
	}

	for _, c := range []prometheus.Collector{m.requestCount, m.requestDuration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Behavior returns the pipeline behaviour recording the metrics.
func (m *Metrics) Behavior() Behavior {
	return func(ctx context.Context, name string, _ any, next Next) (any, error) {
		start := time.Now()

		res, err := next(ctx)

		m.requestDuration.WithLabelValues(name).Observe(time.Since(start).Seconds())
		m.requestCount.WithLabelValues(name, Status(err)).Inc()

		return res, err
	}
}
