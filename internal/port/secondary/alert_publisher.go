package secondary

import (
	"context"

	"github.com/skvare/redis-health/internal/domain"
)

// AlertPublisher defines the secondary port for delivering severity-transition
// alerts to an external sink.
type AlertPublisher interface {
	// Publish delivers one alert event.
	Publish(ctx context.Context, alert *domain.Alert) error

	// Close releases the publisher's resources.
	Close() error
}
