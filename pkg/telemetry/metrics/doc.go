// Package metrics provides Prometheus metrics for the Askboard service.
//
// # Metrics
//
// HTTP surface:
//
//   - askboard_http_requests_total{method, path, status}
//   - askboard_http_request_duration_seconds{method, path}
//
// Board lifecycle:
//
//   - askboard_questions_created_total
//   - askboard_questions_pruned_total{trigger}   (trigger: request, schedule, startup)
//   - askboard_prune_runs_total{trigger, outcome} (outcome: success, error)
//   - askboard_questions_visible
//
// # Usage
//
//	collector := metrics.NewCollector(&cfg.Telemetry.Metrics, nil)
//	mux.Handle("/metrics", collector.Handler())
//
// All Collector recording methods are safe on a nil receiver so components
// can run without metrics in tests.
package metrics
