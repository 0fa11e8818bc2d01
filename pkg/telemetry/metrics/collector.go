package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"askboard-hq/askboard/pkg/config"
)

// Collector is the orchestrator for all Prometheus metrics in the service.
// It owns the registry and the per-concern metric groups.
type Collector struct {
	config   *config.MetricsConfig
	registry *prometheus.Registry

	httpMetrics  *HTTPMetrics
	boardMetrics *BoardMetrics
}

// NewCollector creates a new metrics collector with the specified
// configuration and Prometheus registry. If registry is nil, a fresh
// registry is created.
func NewCollector(cfg *config.MetricsConfig, registry *prometheus.Registry) *Collector {
	if cfg == nil {
		cfg = &config.MetricsConfig{}
	}
	if cfg.Namespace == "" {
		cfg.Namespace = "askboard"
	}
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	return &Collector{
		config:       cfg,
		registry:     registry,
		httpMetrics:  NewHTTPMetrics(cfg, registry),
		boardMetrics: NewBoardMetrics(cfg, registry),
	}
}

// Registry returns the Prometheus registry backing this collector.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
