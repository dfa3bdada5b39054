package secondary

import (
	"context"

	"github.com/skvare/redis-health/internal/domain"
)

// Checker defines the secondary port for one diagnostic check against the
// monitored server. Implementations are stateless and never return Go errors:
// an unreachable server or malformed reply is reported through the result's
// severity, so one failing check cannot abort the suite.
type Checker interface {
	// Name returns the stable name of the check.
	Name() string

	// Check runs the diagnostic and classifies the outcome.
	Check(ctx context.Context) domain.CheckResult
}
