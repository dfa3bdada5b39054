package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/skvare/redis-health/internal/port/primary"
)

// Worker runs the check suite at regular intervals so the cached report
// stays fresh. It respects context cancellation for graceful shutdown.
type Worker struct {
	monitor      primary.Monitor
	pollInterval time.Duration
	logger       *zap.Logger
}

// NewWorker creates a Worker that collects a report at the given interval.
func NewWorker(
	monitor primary.Monitor,
	pollInterval time.Duration,
	logger *zap.Logger,
) *Worker {
	return &Worker{
		monitor:      monitor,
		pollInterval: pollInterval,
		logger:       logger.Named("collector"),
	}
}

// Run starts the collection loop. The suite runs once immediately so readers
// never wait a full interval for the first report, then on every tick.
// Run blocks until the context is cancelled.
func (w *Worker) Run(ctx context.Context) error {
	w.logger.Info("collector started",
		zap.Duration("poll_interval", w.pollInterval),
	)

	w.collect(ctx)

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("collector shutting down")
			return ctx.Err()
		case <-ticker.C:
			w.collect(ctx)
		}
	}
}

func (w *Worker) collect(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	if _, err := w.monitor.Run(ctx); err != nil {
		// Log but do not return -- the collector should keep running.
		w.logger.Error("error collecting report", zap.Error(err))
	}
}
