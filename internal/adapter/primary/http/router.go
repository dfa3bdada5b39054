package http

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/skvare/redis-health/internal/port/primary"
	"github.com/skvare/redis-health/internal/port/secondary"
)

// NewRouter creates an HTTP mux with all application routes registered.
func NewRouter(
	monitor primary.Monitor,
	livenessCheck secondary.Checker,
	metricsHandler http.Handler,
	logger *zap.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Report endpoints
	mux.Handle("/status", NewStatusPageHandler(monitor, logger))
	mux.Handle("/status.json", NewReportHandler(monitor, logger))
	mux.Handle("/status/summary", NewSummaryHandler(monitor, logger))

	// Liveness endpoint
	mux.Handle("/healthz", NewHealthHandler(livenessCheck))

	// Prometheus endpoint
	mux.Handle("/metrics", metricsHandler)

	return mux
}
