package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"askboard-hq/askboard/pkg/api/types"
	"askboard-hq/askboard/pkg/question/retention"
	"askboard-hq/askboard/pkg/telemetry/metrics"
)

// RetentionGuard runs a retention pass before dispatching any /questions
// operation. The pass executes-before the guarded CRUD operation, so a
// request never observes records made stale by the same "now" it computed.
//
// A failed pass fails the request: returning stale records would violate
// the board's visibility rule, so 500 is the honest answer. The next
// request (or the daily trigger) retries the same cutoff.
//
// now supplies the observation instant and defaults to time.Now; tests
// inject a fake clock to cross day boundaries.
func RetentionGuard(pruner *retention.Pruner, now func() time.Time, collector *metrics.Collector) func(http.Handler) http.Handler {
	if now == nil {
		now = time.Now
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/questions" && !strings.HasPrefix(r.URL.Path, "/questions/") {
				next.ServeHTTP(w, r)
				return
			}

			deleted, err := pruner.Prune(r.Context(), now())
			collector.RecordPrune(metrics.TriggerRequest, deleted, err)
			if err != nil {
				slog.ErrorContext(r.Context(), "opportunistic retention pass failed",
					"error", err,
					"request_id", GetRequestID(r.Context()),
				)
				types.WriteError(w, http.StatusInternalServerError, types.TypeServerError,
					"Failed to refresh the board. Please try again.")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
