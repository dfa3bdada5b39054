package redischeck

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"

	"github.com/skvare/redis-health/internal/domain"
)

const evictionTitle = "Eviction policy"

// EvictionCheck inspects the maxmemory-policy the server runs under.
type EvictionCheck struct {
	client *redis.Client
}

// NewEvictionCheck creates the eviction policy check.
func NewEvictionCheck(client *redis.Client) *EvictionCheck {
	return &EvictionCheck{client: client}
}

// Name returns the stable name of the check.
func (c *EvictionCheck) Name() string {
	return domain.CheckEviction
}

// Check reads the policy and the memory limit via CONFIG GET.
func (c *EvictionCheck) Check(ctx context.Context) domain.CheckResult {
	values, err := c.client.ConfigGet(ctx, "maxmemory*").Result()
	if err != nil {
		return domain.CheckResult{
			Name:     domain.CheckEviction,
			Title:    evictionTitle,
			Severity: domain.SeverityWarning,
			Message:  fmt.Sprintf("CONFIG GET failed, eviction policy unknown: %v", err),
		}
	}

	var maxmemory int64
	if raw, ok := values["maxmemory"]; ok {
		maxmemory, _ = strconv.ParseInt(raw, 10, 64)
	}

	return evaluateEviction(values["maxmemory-policy"], maxmemory)
}

func evaluateEviction(policy string, maxmemory int64) domain.CheckResult {
	res := domain.CheckResult{
		Name:     domain.CheckEviction,
		Title:    evictionTitle,
		Severity: domain.SeverityOK,
		Details: []domain.Detail{
			{Label: "Policy", Value: policy},
		},
	}

	switch {
	case policy == "":
		res.Severity = domain.SeverityInfo
		res.Message = "server did not report an eviction policy"
		res.Details[0].Value = notReported
	case policy == "noeviction" && maxmemory > 0:
		res.Severity = domain.SeverityWarning
		res.Message = "policy is noeviction with a memory limit set; writes will fail once the limit is reached, consider allkeys-lru for cache use"
	case policy == "noeviction":
		res.Severity = domain.SeverityInfo
		res.Message = "policy is noeviction and no memory limit is set; the keyspace can grow unbounded"
	default:
		res.Message = fmt.Sprintf("eviction policy is %s", policy)
	}

	return res
}
