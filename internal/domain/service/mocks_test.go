package service

import (
	"context"
	"sync"

	"github.com/skvare/redis-health/internal/domain"
)

// mockChecker implements secondary.Checker with a fixed result.
type mockChecker struct {
	name   string
	result domain.CheckResult
}

func (m *mockChecker) Name() string {
	return m.name
}

func (m *mockChecker) Check(_ context.Context) domain.CheckResult {
	return m.result
}

// mockPublisher implements secondary.AlertPublisher and records every alert.
type mockPublisher struct {
	mu         sync.Mutex
	alerts     []*domain.Alert
	publishErr error
	closed     bool
	onPublish  func(alert *domain.Alert)
}

func (m *mockPublisher) Publish(_ context.Context, alert *domain.Alert) error {
	if m.onPublish != nil {
		m.onPublish(alert)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.publishErr != nil {
		return m.publishErr
	}
	m.alerts = append(m.alerts, alert)
	return nil
}

func (m *mockPublisher) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

func (m *mockPublisher) published() []*domain.Alert {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*domain.Alert(nil), m.alerts...)
}

// mockRecorder implements secondary.ReportRecorder and counts observations.
type mockRecorder struct {
	mu      sync.Mutex
	reports []*domain.Report
}

func (m *mockRecorder) Record(report *domain.Report) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reports = append(m.reports, report)
}

func (m *mockRecorder) recorded() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.reports)
}
