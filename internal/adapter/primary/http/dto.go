package http

import (
	"time"

	"github.com/skvare/redis-health/internal/domain"
)

// ReportResponse is the JSON form of a full health report.
type ReportResponse struct {
	Status      string          `json:"status"`
	GeneratedAt time.Time       `json:"generated_at"`
	DurationMS  int64           `json:"duration_ms"`
	Summary     string          `json:"summary"`
	Checks      []CheckResponse `json:"checks"`
}

// CheckResponse is the JSON form of one check result.
type CheckResponse struct {
	Name       string      `json:"name"`
	Title      string      `json:"title"`
	Severity   string      `json:"severity"`
	Message    string      `json:"message"`
	Details    []DetailDTO `json:"details,omitempty"`
	DurationMS int64       `json:"duration_ms"`
}

// DetailDTO is one labeled value in a check's output.
type DetailDTO struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// HealthResponse is returned by the liveness endpoint.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// ErrorResponse is the standard error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

// toResponse converts a domain report to its JSON form.
func toResponse(report *domain.Report) ReportResponse {
	checks := make([]CheckResponse, 0, len(report.Results))
	for _, res := range report.Results {
		check := CheckResponse{
			Name:       res.Name,
			Title:      res.Title,
			Severity:   res.Severity.String(),
			Message:    res.Message,
			DurationMS: res.Duration.Milliseconds(),
		}
		for _, d := range res.Details {
			check.Details = append(check.Details, DetailDTO{Label: d.Label, Value: d.Value})
		}
		checks = append(checks, check)
	}

	return ReportResponse{
		Status:      report.Overall.String(),
		GeneratedAt: report.GeneratedAt,
		DurationMS:  report.Duration.Milliseconds(),
		Summary:     report.Summary(),
		Checks:      checks,
	}
}
