// Package metrics provides Prometheus metrics for the health monitor.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/skvare/redis-health/internal/domain"
)

// Metric names as constants for consistency.
const (
	MetricCheckSeverity   = "redis_health_check_severity"
	MetricCheckDuration   = "redis_health_check_duration_seconds"
	MetricRunsTotal       = "redis_health_runs_total"
	MetricOverallSeverity = "redis_health_overall_severity"
)

// Metrics contains Prometheus metrics for check suite runs.
// All operations are thread-safe.
type Metrics struct {
	checkSeverity   *prometheus.GaugeVec
	checkDuration   *prometheus.HistogramVec
	runsTotal       *prometheus.CounterVec
	overallSeverity prometheus.Gauge
}

// NewMetrics creates and returns a new Metrics instance with all collectors
// initialized. The metrics are not registered; call Register to register them
// with a registry.
func NewMetrics() *Metrics {
	return &Metrics{
		checkSeverity: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: MetricCheckSeverity,
				Help: "Severity of the last run of each check (0 ok, 1 info, 2 warning, 3 critical)",
			},
			[]string{"check"},
		),
		checkDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    MetricCheckDuration,
				Help:    "Histogram of per-check duration in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5},
			},
			[]string{"check"},
		),
		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricRunsTotal,
				Help: "Total number of check suite runs by overall severity",
			},
			[]string{"severity"},
		),
		overallSeverity: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: MetricOverallSeverity,
				Help: "Overall severity of the last report (0 ok, 1 info, 2 warning, 3 critical)",
			},
		),
	}
}

// Register registers all metrics with the given registry.
// Returns an error if registration fails.
func (m *Metrics) Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		m.checkSeverity,
		m.checkDuration,
		m.runsTotal,
		m.overallSeverity,
	}

	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// Record observes one completed report. It implements secondary.ReportRecorder.
func (m *Metrics) Record(report *domain.Report) {
	for _, res := range report.Results {
		m.checkSeverity.WithLabelValues(res.Name).Set(float64(res.Severity))
		m.checkDuration.WithLabelValues(res.Name).Observe(res.Duration.Seconds())
	}
	m.overallSeverity.Set(float64(report.Overall))
	m.runsTotal.WithLabelValues(report.Overall.String()).Inc()
}
