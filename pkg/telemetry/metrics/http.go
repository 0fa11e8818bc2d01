package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"askboard-hq/askboard/pkg/config"
)

// HTTPMetrics tracks metrics for the HTTP transport layer.
type HTTPMetrics struct {
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
}

// NewHTTPMetrics creates and registers HTTP metrics with the provided
// registry.
func NewHTTPMetrics(cfg *config.MetricsConfig, registry *prometheus.Registry) *HTTPMetrics {
	hm := &HTTPMetrics{
		requestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: cfg.Namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests processed",
			},
			[]string{"method", "path", "status"},
		),

		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: cfg.Namespace,
				Name:      "http_request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0},
			},
			[]string{"method", "path"},
		),
	}

	registry.MustRegister(
		hm.requestsTotal,
		hm.requestDuration,
	)

	return hm
}

// RecordRequest records metrics for a completed HTTP request.
func (c *Collector) RecordRequest(method, path string, status int, duration time.Duration) {
	if c == nil {
		return
	}
	c.httpMetrics.requestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	c.httpMetrics.requestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}
