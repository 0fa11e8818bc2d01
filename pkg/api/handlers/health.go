package handlers

import (
	"net/http"

	"askboard-hq/askboard/pkg/api/types"
)

// HealthHandler handles health check requests for liveness probes.
type HealthHandler struct{}

// NewHealthHandler creates a new health check handler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// ServeHTTP implements http.Handler. Always returns 200 with no core
// interaction; the endpoint only proves the process is serving.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		types.WriteError(w, http.StatusMethodNotAllowed, types.TypeInvalidRequest, "Method not allowed")
		return
	}

	types.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
