package service

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/skvare/redis-health/internal/domain"
	"github.com/skvare/redis-health/internal/port/secondary"
)

// MonitorService orchestrates the diagnostic suite: it runs the checks in
// their fixed order, merges the results into a report, caches the latest
// report for readers, and publishes an alert whenever the overall severity
// changes between runs.
type MonitorService struct {
	checkers []secondary.Checker
	alerts   secondary.AlertPublisher
	recorder secondary.ReportRecorder
	logger   *zap.Logger

	mu          sync.RWMutex
	latest      *domain.Report
	lastOverall domain.Severity
	hasBaseline bool
}

// NewMonitorService creates a MonitorService with its dependencies injected.
func NewMonitorService(
	checkers []secondary.Checker,
	alerts secondary.AlertPublisher,
	recorder secondary.ReportRecorder,
	logger *zap.Logger,
) *MonitorService {
	return &MonitorService{
		checkers: checkers,
		alerts:   alerts,
		recorder: recorder,
		logger:   logger.Named("monitor"),
	}
}

// Run executes the full check suite and returns the fresh report.
// Individual checks classify their own failures; Run only fails when the
// context is cancelled mid-suite.
func (s *MonitorService) Run(ctx context.Context) (*domain.Report, error) {
	started := time.Now()
	results := make([]domain.CheckResult, 0, len(s.checkers))

	for _, checker := range s.checkers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		checkStart := time.Now()
		res := checker.Check(ctx)
		res.Duration = time.Since(checkStart)
		if res.Name == "" {
			res.Name = checker.Name()
		}
		results = append(results, res)

		s.logger.Debug("check completed",
			zap.String("check", res.Name),
			zap.Stringer("severity", res.Severity),
			zap.Duration("duration", res.Duration),
		)
	}

	report := domain.NewReport(started, time.Since(started), results)
	s.recorder.Record(report)

	s.logger.Info("report collected",
		zap.Stringer("overall", report.Overall),
		zap.Duration("duration", report.Duration),
		zap.Strings("failing", report.FailingChecks()),
	)

	// Update the cache and the transition state together, so readers never
	// see a report older than the severity the alert state reflects.
	s.mu.Lock()
	previous := s.lastOverall
	baseline := s.hasBaseline
	s.latest = report
	s.lastOverall = report.Overall
	s.hasBaseline = true
	s.mu.Unlock()

	s.publishTransition(ctx, previous, baseline, report)

	return report, nil
}

// Latest returns the most recently collected report, or domain.ErrNoReport
// before the first run completes.
func (s *MonitorService) Latest() (*domain.Report, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.latest == nil {
		return nil, domain.ErrNoReport
	}
	return s.latest, nil
}

// publishTransition emits an alert when the overall severity differs from the
// previous run. The first run establishes the baseline; it only alerts when
// the suite comes up unhealthy. Publish failures are logged, never fatal.
func (s *MonitorService) publishTransition(ctx context.Context, previous domain.Severity, baseline bool, report *domain.Report) {
	if baseline && previous == report.Overall {
		return
	}
	if !baseline {
		previous = domain.SeverityOK
		if report.Overall == domain.SeverityOK {
			return
		}
	}

	alert := domain.NewAlert(previous, report)
	if err := s.alerts.Publish(ctx, alert); err != nil {
		s.logger.Error("failed to publish alert",
			zap.Error(err),
			zap.Stringer("previous", alert.Previous),
			zap.Stringer("current", alert.Current),
		)
		return
	}

	s.logger.Info("alert published",
		zap.Stringer("previous", alert.Previous),
		zap.Stringer("current", alert.Current),
		zap.Strings("failing", alert.Failing),
	)
}
