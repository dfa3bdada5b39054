package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/dig"
	"go.uber.org/zap"

	httphandler "github.com/skvare/redis-health/internal/adapter/primary/http"
	"github.com/skvare/redis-health/internal/adapter/primary/worker"
	"github.com/skvare/redis-health/internal/adapter/secondary/alertnoop"
	"github.com/skvare/redis-health/internal/adapter/secondary/kafkaproducer"
	"github.com/skvare/redis-health/internal/adapter/secondary/redischeck"
	"github.com/skvare/redis-health/internal/adapter/secondary/redisstore"
	"github.com/skvare/redis-health/internal/config"
	"github.com/skvare/redis-health/internal/domain/service"
	"github.com/skvare/redis-health/internal/metrics"
	"github.com/skvare/redis-health/internal/port/primary"
	"github.com/skvare/redis-health/internal/port/secondary"
)

func buildContainer(ctx context.Context, configPath string) (*dig.Container, error) {
	c := dig.New()

	// --- Configuration ---
	if err := c.Provide(func() (*config.Config, error) {
		cfg, errs := config.Load(configPath)
		if len(errs) > 0 {
			return nil, errors.Join(errs...)
		}
		return cfg, nil
	}); err != nil {
		return nil, err
	}

	// --- Logger ---
	if err := c.Provide(newLogger); err != nil {
		return nil, err
	}

	// --- Secondary Adapters (infrastructure) ---

	// Redis client
	if err := c.Provide(func(cfg *config.Config, logger *zap.Logger) (*goredis.Client, error) {
		return redisstore.NewClient(ctx, cfg, logger)
	}); err != nil {
		return nil, err
	}

	// Diagnostic check suite
	if err := c.Provide(func(client *goredis.Client, cfg *config.Config) []secondary.Checker {
		return redischeck.NewSuite(client, cfg)
	}); err != nil {
		return nil, err
	}

	// Standalone connection check for the liveness endpoint
	if err := c.Provide(func(client *goredis.Client, cfg *config.Config) secondary.Checker {
		return redischeck.NewConnectionCheck(client, cfg.LatencyWarn)
	}, dig.Name("liveness")); err != nil {
		return nil, err
	}

	// Alert publisher: Kafka when alerting is enabled, otherwise a no-op
	if err := c.Provide(func(cfg *config.Config, logger *zap.Logger) secondary.AlertPublisher {
		if cfg.AlertsEnabled {
			return kafkaproducer.NewPublisher(cfg, logger)
		}
		return alertnoop.NewPublisher()
	}); err != nil {
		return nil, err
	}

	// Prometheus registry and report metrics
	if err := c.Provide(prometheus.NewRegistry); err != nil {
		return nil, err
	}
	if err := c.Provide(func(reg *prometheus.Registry) (*metrics.Metrics, error) {
		m := metrics.NewMetrics()
		if err := m.Register(reg); err != nil {
			return nil, err
		}
		return m, nil
	}); err != nil {
		return nil, err
	}
	if err := c.Provide(func(m *metrics.Metrics) secondary.ReportRecorder {
		return m
	}); err != nil {
		return nil, err
	}

	// --- Domain Services ---

	if err := c.Provide(service.NewMonitorService); err != nil {
		return nil, err
	}

	// Bind concrete MonitorService to the primary port interface
	if err := c.Provide(func(s *service.MonitorService) primary.Monitor {
		return s
	}); err != nil {
		return nil, err
	}

	// --- Primary Adapters ---

	// HTTP router
	type routerParams struct {
		dig.In
		Monitor  primary.Monitor
		Liveness secondary.Checker `name:"liveness"`
		Registry *prometheus.Registry
		Logger   *zap.Logger
	}

	if err := c.Provide(func(params routerParams) http.Handler {
		metricsHandler := promhttp.HandlerFor(params.Registry, promhttp.HandlerOpts{})
		return httphandler.NewRouter(params.Monitor, params.Liveness, metricsHandler, params.Logger)
	}); err != nil {
		return nil, err
	}

	// Collector worker
	if err := c.Provide(func(monitor primary.Monitor, cfg *config.Config, logger *zap.Logger) *worker.Worker {
		return worker.NewWorker(monitor, cfg.PollInterval, logger)
	}); err != nil {
		return nil, err
	}

	return c, nil
}
