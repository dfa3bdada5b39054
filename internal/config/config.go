// Package config provides configuration loading and validation for the
// monitor. It uses koanf to merge an optional YAML file with environment
// variable overrides; environment variables take precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config holds all configuration values for the monitor.
type Config struct {
	// HTTP server
	HTTPAddr string `koanf:"http_addr"`

	// Redis connection
	RedisAddr     string `koanf:"redis_addr"`
	RedisPassword string `koanf:"redis_password"`
	RedisDB       int    `koanf:"redis_db"`

	// Cache namespace shared with the monitored application
	KeyPrefix string        `koanf:"key_prefix"`
	ProbeTTL  time.Duration `koanf:"probe_ttl"`

	// Collector
	PollInterval time.Duration `koanf:"poll_interval"`
	ScanPageSize int64         `koanf:"scan_page_size"`
	ScanMaxKeys  int64         `koanf:"scan_max_keys"`

	// Check thresholds
	LatencyWarn            time.Duration `koanf:"latency_warn"`
	MemoryWarnPercent      float64       `koanf:"memory_warn_percent"`
	MemoryCriticalPercent  float64       `koanf:"memory_critical_percent"`
	HitRatioWarnPercent    float64       `koanf:"hit_ratio_warn_percent"`
	HitRatioMinSamples     int64         `koanf:"hit_ratio_min_samples"`
	ClientsWarnPercent     float64       `koanf:"clients_warn_percent"`
	ClientsCriticalPercent float64       `koanf:"clients_critical_percent"`

	// Alerting
	AlertsEnabled bool     `koanf:"alerts_enabled"`
	KafkaBrokers  []string `koanf:"kafka_brokers"`
	AlertTopic    string   `koanf:"alert_topic"`

	// Application
	Environment string `koanf:"environment"`
	LogLevel    string `koanf:"log_level"`
}

// Default values for everything that is not a secret.
const (
	DefaultHTTPAddr               = ":8080"
	DefaultRedisAddr              = "localhost:6379"
	DefaultKeyPrefix              = "crm:"
	DefaultProbeTTL               = 60 * time.Second
	DefaultPollInterval           = 30 * time.Second
	DefaultScanPageSize           = 500
	DefaultScanMaxKeys            = 10000
	DefaultLatencyWarn            = 100 * time.Millisecond
	DefaultMemoryWarnPercent      = 75.0
	DefaultMemoryCriticalPercent  = 90.0
	DefaultHitRatioWarnPercent    = 50.0
	DefaultHitRatioMinSamples     = 1000
	DefaultClientsWarnPercent     = 80.0
	DefaultClientsCriticalPercent = 95.0
	DefaultAlertTopic             = "redis-health-alerts"
	DefaultEnvironment            = "local"
	DefaultLogLevel               = "info"
)

// Validation errors.
var (
	ErrInvalidPercent     = errors.New("percent thresholds must be in (0, 100]")
	ErrThresholdOrder     = errors.New("warn threshold must not exceed critical threshold")
	ErrNonPositiveValue   = errors.New("intervals, TTLs and scan limits must be positive")
	ErrAlertsNeedBrokers  = errors.New("alerts_enabled requires kafka_brokers and alert_topic")
	ErrInvalidRedisDB     = errors.New("redis_db must not be negative")
	ErrInvalidEnvInt      = errors.New("environment variable is not a valid integer")
	ErrInvalidEnvDuration = errors.New("environment variable is not a valid duration")
)

// Load reads configuration from an optional YAML file and environment
// variables, applies defaults, and validates the result. It returns the
// config together with a slice of validation errors (empty when valid).
func Load(configFilePath string) (*Config, []error) {
	k := koanf.New(".")

	if configFilePath != "" {
		if err := k.Load(file.Provider(configFilePath), yaml.Parser()); err != nil {
			return nil, []error{fmt.Errorf("loading config file %s: %w", configFilePath, err)}
		}
	}

	var loadErrs []error

	redisDB, err := envIntOrKoanf("REDIS_DB", k, "redis_db", 0)
	if err != nil {
		loadErrs = append(loadErrs, err)
	}
	probeTTL, err := envDurationOrKoanf("PROBE_TTL", k, "probe_ttl", DefaultProbeTTL)
	if err != nil {
		loadErrs = append(loadErrs, err)
	}
	pollInterval, err := envDurationOrKoanf("POLL_INTERVAL", k, "poll_interval", DefaultPollInterval)
	if err != nil {
		loadErrs = append(loadErrs, err)
	}

	cfg := &Config{
		HTTPAddr:      envOrKoanf("HTTP_ADDR", k, "http_addr", DefaultHTTPAddr),
		RedisAddr:     envOrKoanf("REDIS_ADDR", k, "redis_addr", DefaultRedisAddr),
		RedisPassword: envOrKoanf("REDIS_PASSWORD", k, "redis_password", ""),
		RedisDB:       redisDB,
		KeyPrefix:     envOrKoanf("KEY_PREFIX", k, "key_prefix", DefaultKeyPrefix),
		ProbeTTL:      probeTTL,
		PollInterval:  pollInterval,

		ScanPageSize: int64OrDefault(k, "scan_page_size", DefaultScanPageSize),
		ScanMaxKeys:  int64OrDefault(k, "scan_max_keys", DefaultScanMaxKeys),

		LatencyWarn:            durationOrDefault(k, "latency_warn", DefaultLatencyWarn),
		MemoryWarnPercent:      floatOrDefault(k, "memory_warn_percent", DefaultMemoryWarnPercent),
		MemoryCriticalPercent:  floatOrDefault(k, "memory_critical_percent", DefaultMemoryCriticalPercent),
		HitRatioWarnPercent:    floatOrDefault(k, "hit_ratio_warn_percent", DefaultHitRatioWarnPercent),
		HitRatioMinSamples:     int64OrDefault(k, "hit_ratio_min_samples", DefaultHitRatioMinSamples),
		ClientsWarnPercent:     floatOrDefault(k, "clients_warn_percent", DefaultClientsWarnPercent),
		ClientsCriticalPercent: floatOrDefault(k, "clients_critical_percent", DefaultClientsCriticalPercent),

		AlertsEnabled: envBoolOrKoanf("ALERTS_ENABLED", k, "alerts_enabled", false),
		AlertTopic:    envOrKoanf("ALERT_TOPIC", k, "alert_topic", DefaultAlertTopic),

		Environment: envOrKoanf("ENVIRONMENT", k, "environment", DefaultEnvironment),
		LogLevel:    envOrKoanf("LOG_LEVEL", k, "log_level", DefaultLogLevel),
	}

	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		cfg.KafkaBrokers = strings.Split(v, ",")
	} else {
		cfg.KafkaBrokers = k.Strings("kafka_brokers")
	}

	loadErrs = append(loadErrs, cfg.validate()...)
	return cfg, loadErrs
}

func (c *Config) validate() []error {
	var errs []error

	percents := []struct {
		name  string
		value float64
	}{
		{"memory_warn_percent", c.MemoryWarnPercent},
		{"memory_critical_percent", c.MemoryCriticalPercent},
		{"hit_ratio_warn_percent", c.HitRatioWarnPercent},
		{"clients_warn_percent", c.ClientsWarnPercent},
		{"clients_critical_percent", c.ClientsCriticalPercent},
	}
	for _, pct := range percents {
		if pct.value <= 0 || pct.value > 100 {
			errs = append(errs, fmt.Errorf("%w: %s=%v", ErrInvalidPercent, pct.name, pct.value))
		}
	}

	if c.MemoryWarnPercent > c.MemoryCriticalPercent {
		errs = append(errs, fmt.Errorf("%w: memory %v > %v", ErrThresholdOrder, c.MemoryWarnPercent, c.MemoryCriticalPercent))
	}
	if c.ClientsWarnPercent > c.ClientsCriticalPercent {
		errs = append(errs, fmt.Errorf("%w: clients %v > %v", ErrThresholdOrder, c.ClientsWarnPercent, c.ClientsCriticalPercent))
	}

	if c.ProbeTTL <= 0 || c.PollInterval <= 0 || c.LatencyWarn <= 0 ||
		c.ScanPageSize <= 0 || c.ScanMaxKeys <= 0 || c.HitRatioMinSamples <= 0 {
		errs = append(errs, ErrNonPositiveValue)
	}

	if c.RedisDB < 0 {
		errs = append(errs, ErrInvalidRedisDB)
	}

	if c.AlertsEnabled && (len(c.KafkaBrokers) == 0 || c.AlertTopic == "") {
		errs = append(errs, ErrAlertsNeedBrokers)
	}

	return errs
}

func envOrKoanf(envKey string, k *koanf.Koanf, koanfKey, fallback string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	if k.Exists(koanfKey) {
		return k.String(koanfKey)
	}
	return fallback
}

func envIntOrKoanf(envKey string, k *koanf.Koanf, koanfKey string, fallback int) (int, error) {
	if v := os.Getenv(envKey); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fallback, fmt.Errorf("%w: %s=%q", ErrInvalidEnvInt, envKey, v)
		}
		return n, nil
	}
	if k.Exists(koanfKey) {
		return k.Int(koanfKey), nil
	}
	return fallback, nil
}

func envDurationOrKoanf(envKey string, k *koanf.Koanf, koanfKey string, fallback time.Duration) (time.Duration, error) {
	if v := os.Getenv(envKey); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fallback, fmt.Errorf("%w: %s=%q", ErrInvalidEnvDuration, envKey, v)
		}
		return d, nil
	}
	return durationOrDefault(k, koanfKey, fallback), nil
}

func envBoolOrKoanf(envKey string, k *koanf.Koanf, koanfKey string, fallback bool) bool {
	if v := os.Getenv(envKey); v != "" {
		switch strings.ToLower(v) {
		case "true", "1", "yes", "on":
			return true
		case "false", "0", "no", "off":
			return false
		}
	}
	if k.Exists(koanfKey) {
		return k.Bool(koanfKey)
	}
	return fallback
}

func floatOrDefault(k *koanf.Koanf, key string, fallback float64) float64 {
	if k.Exists(key) {
		return k.Float64(key)
	}
	return fallback
}

func int64OrDefault(k *koanf.Koanf, key string, fallback int64) int64 {
	if k.Exists(key) {
		return k.Int64(key)
	}
	return fallback
}

func durationOrDefault(k *koanf.Koanf, key string, fallback time.Duration) time.Duration {
	if !k.Exists(key) {
		return fallback
	}
	if d := k.Duration(key); d > 0 {
		return d
	}
	// YAML values like "45s" arrive as strings, not integers.
	if d, err := time.ParseDuration(k.String(key)); err == nil && d > 0 {
		return d
	}
	return fallback
}
