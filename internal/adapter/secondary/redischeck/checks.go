// Package redischeck implements the diagnostic check suite run against the
// monitored Redis server. Each check is a stateless secondary.Checker: it
// queries the server, classifies what it finds on the domain severity scale,
// and never returns a Go error -- an unreachable server becomes a critical
// result so one failing check cannot abort the suite.
package redischeck

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/skvare/redis-health/internal/config"
	"github.com/skvare/redis-health/internal/domain"
	"github.com/skvare/redis-health/internal/domain/redisinfo"
	"github.com/skvare/redis-health/internal/port/secondary"
)

// notReported marks an INFO field the server did not include in its reply.
const notReported = "not reported"

// NewSuite returns the full diagnostic suite in report order.
func NewSuite(client *redis.Client, cfg *config.Config) []secondary.Checker {
	return []secondary.Checker{
		NewConnectionCheck(client, cfg.LatencyWarn),
		NewSettingsCheck(client, cfg),
		NewMemoryCheck(client, cfg.MemoryWarnPercent, cfg.MemoryCriticalPercent),
		NewKeyspaceCheck(client, cfg.KeyPrefix, cfg.ProbeTTL, cfg.ScanPageSize, cfg.ScanMaxKeys),
		NewStatsCheck(client, cfg.HitRatioWarnPercent, cfg.HitRatioMinSamples),
		NewEvictionCheck(client),
		NewPersistenceCheck(client),
		NewClientsCheck(client, cfg.ClientsWarnPercent, cfg.ClientsCriticalPercent),
	}
}

// fetchInfo runs INFO for one section and parses the reply.
func fetchInfo(ctx context.Context, client *redis.Client, section string) (redisinfo.Info, error) {
	raw, err := client.Info(ctx, section).Result()
	if err != nil {
		return nil, err
	}
	return redisinfo.Parse(raw), nil
}

// unreachable builds the critical result used when a check cannot query the server.
func unreachable(name, title string, err error) domain.CheckResult {
	return domain.CheckResult{
		Name:     name,
		Title:    title,
		Severity: domain.SeverityCritical,
		Message:  fmt.Sprintf("could not query the server: %v", err),
	}
}
