package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/skvare/redis-health/internal/domain"
	"github.com/skvare/redis-health/internal/port/primary"
)

// respondJSON writes a JSON response with the given status code and payload.
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Encoding errors are not recoverable at this point, so we ignore the return.
	_ = json.NewEncoder(w).Encode(data)
}

// fetchReport returns the report the request should see: the cached one by
// default, a fresh run when ?refresh=1 is given or nothing has been
// collected yet.
func fetchReport(r *http.Request, monitor primary.Monitor) (*domain.Report, error) {
	if r.URL.Query().Get("refresh") == "1" {
		return monitor.Run(r.Context())
	}
	report, err := monitor.Latest()
	if errors.Is(err, domain.ErrNoReport) {
		return monitor.Run(r.Context())
	}
	return report, err
}
