package http

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/skvare/redis-health/internal/domain"
)

// mockMonitor implements primary.Monitor for handler tests.
type mockMonitor struct {
	latest    *domain.Report
	latestErr error
	runReport *domain.Report
	runErr    error
	runCalls  atomic.Int32
}

func (m *mockMonitor) Run(_ context.Context) (*domain.Report, error) {
	m.runCalls.Add(1)
	return m.runReport, m.runErr
}

func (m *mockMonitor) Latest() (*domain.Report, error) {
	if m.latestErr != nil {
		return nil, m.latestErr
	}
	return m.latest, nil
}

// mockChecker implements secondary.Checker with a fixed result.
type mockChecker struct {
	result domain.CheckResult
}

func (m *mockChecker) Name() string {
	return m.result.Name
}

func (m *mockChecker) Check(_ context.Context) domain.CheckResult {
	return m.result
}

func healthyReport() *domain.Report {
	return domain.NewReport(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC), 30*time.Millisecond, []domain.CheckResult{
		{Name: "connection", Title: "Connection", Severity: domain.SeverityOK, Message: "PING answered in 2ms"},
		{Name: "memory", Title: "Memory usage", Severity: domain.SeverityOK, Message: "using 100.0 MB of 1.0 GB (9.8%)"},
	})
}

func degradedReport() *domain.Report {
	return domain.NewReport(time.Now(), 30*time.Millisecond, []domain.CheckResult{
		{Name: "connection", Title: "Connection", Severity: domain.SeverityOK, Message: "PING answered in 2ms"},
		{Name: "memory", Title: "Memory usage", Severity: domain.SeverityCritical, Message: "memory usage at 95.0% of the 1.0 GB limit"},
	})
}
