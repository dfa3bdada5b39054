package redischeck

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/skvare/redis-health/internal/config"
	"github.com/skvare/redis-health/internal/domain"
	"github.com/skvare/redis-health/internal/domain/format"
)

const settingsTitle = "Configuration"

// SettingsCheck echoes the connection settings in effect and the server-side
// memory configuration obtained via CONFIG GET.
type SettingsCheck struct {
	client    *redis.Client
	addr      string
	db        int
	keyPrefix string
	probeTTL  time.Duration
}

// NewSettingsCheck creates the configuration echo check.
func NewSettingsCheck(client *redis.Client, cfg *config.Config) *SettingsCheck {
	return &SettingsCheck{
		client:    client,
		addr:      cfg.RedisAddr,
		db:        cfg.RedisDB,
		keyPrefix: cfg.KeyPrefix,
		probeTTL:  cfg.ProbeTTL,
	}
}

// Name returns the stable name of the check.
func (c *SettingsCheck) Name() string {
	return domain.CheckSettings
}

// Check reports the effective settings. A CONFIG GET failure is a warning,
// not critical: providers often rename or disable CONFIG, and the rest of the
// suite still runs, just with less detail.
func (c *SettingsCheck) Check(ctx context.Context) domain.CheckResult {
	res := domain.CheckResult{
		Name:     domain.CheckSettings,
		Title:    settingsTitle,
		Severity: domain.SeverityOK,
		Message:  "connection settings in effect",
		Details: []domain.Detail{
			{Label: "Server", Value: c.addr},
			{Label: "Database", Value: strconv.Itoa(c.db)},
			{Label: "Key prefix", Value: c.keyPrefix},
			{Label: "Probe TTL", Value: format.Duration(c.probeTTL)},
		},
	}

	values, err := c.client.ConfigGet(ctx, "maxmemory*").Result()
	if err != nil {
		res.Severity = domain.SeverityWarning
		res.Message = fmt.Sprintf("CONFIG GET failed (%v); memory and eviction checks will be incomplete", err)
		return res
	}

	if raw, ok := values["maxmemory"]; ok {
		res.Details = append(res.Details, domain.Detail{Label: "maxmemory", Value: renderMaxmemory(raw)})
	}
	if policy, ok := values["maxmemory-policy"]; ok {
		res.Details = append(res.Details, domain.Detail{Label: "maxmemory-policy", Value: policy})
	}

	return res
}

func renderMaxmemory(raw string) string {
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return raw
	}
	if n == 0 {
		return "0 (no limit)"
	}
	return format.Bytes(n)
}
