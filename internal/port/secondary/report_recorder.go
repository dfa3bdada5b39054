package secondary

import "github.com/skvare/redis-health/internal/domain"

// ReportRecorder defines the secondary port for observing completed reports,
// e.g. to export metrics.
type ReportRecorder interface {
	// Record observes one completed report.
	Record(report *domain.Report)
}
