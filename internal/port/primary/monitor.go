package primary

import (
	"context"

	"github.com/skvare/redis-health/internal/domain"
)

// Monitor defines the primary port for the health report
// exposed to driving adapters (HTTP handlers, the collector worker, etc.).
type Monitor interface {
	// Run executes the full check suite and returns the fresh report.
	Run(ctx context.Context) (*domain.Report, error)

	// Latest returns the most recently collected report.
	// It returns domain.ErrNoReport before the first run completes.
	Latest() (*domain.Report, error)
}
