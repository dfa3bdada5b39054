package http

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/skvare/redis-health/internal/port/primary"
	"github.com/skvare/redis-health/internal/render"
)

// StatusPageHandler serves the report as an embeddable HTML fragment.
type StatusPageHandler struct {
	monitor primary.Monitor
	logger  *zap.Logger
}

// NewStatusPageHandler creates the HTML status page handler.
func NewStatusPageHandler(monitor primary.Monitor, logger *zap.Logger) *StatusPageHandler {
	return &StatusPageHandler{monitor: monitor, logger: logger.Named("status-page")}
}

// ServeHTTP renders the latest report as HTML. ?refresh=1 forces a fresh run.
func (h *StatusPageHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "method not allowed"})
		return
	}

	report, err := fetchReport(r, h.monitor)
	if err != nil {
		h.logger.Error("failed to collect report", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to collect report"})
		return
	}

	fragment, err := render.HTML(report)
	if err != nil {
		h.logger.Error("failed to render report", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to render report"})
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(fragment)
}

// ReportHandler serves the report as JSON.
type ReportHandler struct {
	monitor primary.Monitor
	logger  *zap.Logger
}

// NewReportHandler creates the JSON report handler.
func NewReportHandler(monitor primary.Monitor, logger *zap.Logger) *ReportHandler {
	return &ReportHandler{monitor: monitor, logger: logger.Named("status-json")}
}

// ServeHTTP writes the latest report as JSON. ?refresh=1 forces a fresh run.
func (h *ReportHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "method not allowed"})
		return
	}

	report, err := fetchReport(r, h.monitor)
	if err != nil {
		h.logger.Error("failed to collect report", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to collect report"})
		return
	}

	respondJSON(w, http.StatusOK, toResponse(report))
}

// SummaryHandler serves the one-line plain-text summary.
type SummaryHandler struct {
	monitor primary.Monitor
	logger  *zap.Logger
}

// NewSummaryHandler creates the plain-text summary handler.
func NewSummaryHandler(monitor primary.Monitor, logger *zap.Logger) *SummaryHandler {
	return &SummaryHandler{monitor: monitor, logger: logger.Named("status-summary")}
}

// ServeHTTP writes the one-line summary. ?refresh=1 forces a fresh run.
func (h *SummaryHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "method not allowed"})
		return
	}

	report, err := fetchReport(r, h.monitor)
	if err != nil {
		h.logger.Error("failed to collect report", zap.Error(err))
		respondJSON(w, http.StatusInternalServerError, ErrorResponse{Error: "failed to collect report"})
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(report.Summary() + "\n"))
}
