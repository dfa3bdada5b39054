package redischeck

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/skvare/redis-health/internal/domain"
	"github.com/skvare/redis-health/internal/domain/format"
	"github.com/skvare/redis-health/internal/domain/redisinfo"
)

const statsTitle = "Throughput and hit ratio"

// StatsCheck reports command throughput and the keyspace hit ratio.
type StatsCheck struct {
	client     *redis.Client
	warnRatio  float64
	minSamples int64
}

// NewStatsCheck creates the throughput/hit-ratio check.
func NewStatsCheck(client *redis.Client, warnRatio float64, minSamples int64) *StatsCheck {
	return &StatsCheck{client: client, warnRatio: warnRatio, minSamples: minSamples}
}

// Name returns the stable name of the check.
func (c *StatsCheck) Name() string {
	return domain.CheckStats
}

// Check fetches INFO stats and classifies the hit ratio.
func (c *StatsCheck) Check(ctx context.Context) domain.CheckResult {
	info, err := fetchInfo(ctx, c.client, "stats")
	if err != nil {
		return unreachable(domain.CheckStats, statsTitle, err)
	}
	return evaluateStats(info, c.warnRatio, c.minSamples)
}

func evaluateStats(info redisinfo.Info, warnRatio float64, minSamples int64) domain.CheckResult {
	res := domain.CheckResult{
		Name:     domain.CheckStats,
		Title:    statsTitle,
		Severity: domain.SeverityOK,
	}

	counters := []struct {
		field string
		label string
	}{
		{"instantaneous_ops_per_sec", "Ops per second"},
		{"total_commands_processed", "Commands processed"},
		{"total_connections_received", "Connections received"},
		{"expired_keys", "Expired keys"},
		{"evicted_keys", "Evicted keys"},
	}
	for _, c := range counters {
		if n, ok := info.Int(c.field); ok {
			res.Details = append(res.Details, domain.Detail{Label: c.label, Value: strconv.FormatInt(n, 10)})
		}
	}

	hits, hitsOK := info.Int("keyspace_hits")
	misses, missesOK := info.Int("keyspace_misses")
	if !hitsOK || !missesOK {
		res.Severity = domain.SeverityInfo
		res.Message = "server did not report keyspace hit counters"
		res.Details = append(res.Details, domain.Detail{Label: "Hit ratio", Value: notReported})
		return res
	}

	samples := hits + misses
	if samples < minSamples {
		res.Severity = domain.SeverityInfo
		res.Message = fmt.Sprintf("only %d cache lookups so far, too few to judge the hit ratio", samples)
		res.Details = append(res.Details, domain.Detail{Label: "Hit ratio", Value: "n/a"})
		return res
	}

	ratio := float64(hits) / float64(samples) * 100
	res.Details = append(res.Details,
		domain.Detail{Label: "Hits / misses", Value: fmt.Sprintf("%d / %d", hits, misses)},
		domain.Detail{Label: "Hit ratio", Value: format.Percent(ratio)},
	)

	if ratio < warnRatio {
		res.Severity = domain.SeverityWarning
		res.Message = fmt.Sprintf("cache hit ratio %s is below the %s threshold",
			format.Percent(ratio), format.Percent(warnRatio))
	} else {
		res.Message = fmt.Sprintf("cache hit ratio %s over %d lookups", format.Percent(ratio), samples)
	}

	return res
}
