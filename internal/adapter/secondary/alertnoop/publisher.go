// Package alertnoop provides the alert publisher used when alerting is
// disabled by configuration.
package alertnoop

import (
	"context"

	"github.com/skvare/redis-health/internal/domain"
	"github.com/skvare/redis-health/internal/port/secondary"
)

// Publisher implements secondary.AlertPublisher and discards every alert.
type Publisher struct{}

// NewPublisher creates a no-op alert publisher.
func NewPublisher() secondary.AlertPublisher {
	return Publisher{}
}

// Publish discards the alert.
func (Publisher) Publish(_ context.Context, _ *domain.Alert) error {
	return nil
}

// Close is a no-op.
func (Publisher) Close() error {
	return nil
}
