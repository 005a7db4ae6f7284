package gateway

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records Xero API calls made by the Client.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics creates the gateway metrics and registers them on reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "xero_api_requests_total",
				Help: "Total number of Xero API calls by operation and outcome.",
			},
			[]string{"operation", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "xero_api_request_duration_seconds",
				Help:    "Latency of Xero API calls.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}

	if err := reg.Register(m.requests); err != nil {
		return nil, err
	}
	if err := reg.Register(m.duration); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *Metrics) observe(operation, outcome string, start time.Time) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(operation, outcome).Inc()
	m.duration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
