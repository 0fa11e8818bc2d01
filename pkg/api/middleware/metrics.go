package middleware

import (
	"net/http"
	"strings"
	"time"

	"askboard-hq/askboard/pkg/telemetry/metrics"
)

// MetricsMiddleware records request count and latency for every request.
func MetricsMiddleware(collector *metrics.Collector) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			startTime := time.Now()
			rw := newResponseWriter(w)

			next.ServeHTTP(rw, r)

			collector.RecordRequest(r.Method, normalizePath(r.URL.Path), rw.statusCode, time.Since(startTime))
		})
	}
}

// normalizePath collapses per-record paths to keep label cardinality bounded.
func normalizePath(path string) string {
	if strings.HasPrefix(path, "/questions/") {
		return "/questions/{id}"
	}
	return path
}
