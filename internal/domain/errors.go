package domain

import "errors"

var (
	// ErrNoReport indicates the collector has not produced a report yet.
	ErrNoReport = errors.New("no report collected yet")

	// ErrAlertPublishFailed indicates an alert event could not be delivered.
	ErrAlertPublishFailed = errors.New("failed to publish alert")
)
