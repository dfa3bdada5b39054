package http

import (
	"net/http"

	"github.com/skvare/redis-health/internal/domain"
	"github.com/skvare/redis-health/internal/port/secondary"
)

// HealthHandler handles GET /healthz requests. It runs only the connection
// check, so orchestrators get a cheap liveness signal without triggering the
// full suite.
type HealthHandler struct {
	check secondary.Checker
}

// NewHealthHandler creates a liveness handler backed by the given check.
func NewHealthHandler(check secondary.Checker) *HealthHandler {
	return &HealthHandler{check: check}
}

// ServeHTTP runs the check and reports the aggregate status.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	res := h.check.Check(r.Context())

	status := http.StatusOK
	statusText := "healthy"
	if res.Severity == domain.SeverityCritical {
		status = http.StatusServiceUnavailable
		statusText = "unhealthy"
	}

	respondJSON(w, status, HealthResponse{
		Status: statusText,
		Checks: map[string]string{res.Name: res.Message},
	})
}
