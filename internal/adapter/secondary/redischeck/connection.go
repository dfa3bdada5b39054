package redischeck

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/skvare/redis-health/internal/domain"
	"github.com/skvare/redis-health/internal/domain/format"
)

const connectionTitle = "Connection"

// ConnectionCheck verifies the server answers PING and measures the round-trip.
type ConnectionCheck struct {
	client      *redis.Client
	warnLatency time.Duration
}

// NewConnectionCheck creates the reachability/latency check.
func NewConnectionCheck(client *redis.Client, warnLatency time.Duration) *ConnectionCheck {
	return &ConnectionCheck{client: client, warnLatency: warnLatency}
}

// Name returns the stable name of the check.
func (c *ConnectionCheck) Name() string {
	return domain.CheckConnection
}

// Check pings the server and reports latency, version and uptime.
func (c *ConnectionCheck) Check(ctx context.Context) domain.CheckResult {
	start := time.Now()
	if err := c.client.Ping(ctx).Err(); err != nil {
		return domain.CheckResult{
			Name:     domain.CheckConnection,
			Title:    connectionTitle,
			Severity: domain.SeverityCritical,
			Message:  fmt.Sprintf("server did not answer PING: %v", err),
		}
	}
	latency := time.Since(start)

	res := domain.CheckResult{
		Name:     domain.CheckConnection,
		Title:    connectionTitle,
		Severity: domain.SeverityOK,
		Message:  fmt.Sprintf("PING answered in %s", format.Duration(latency)),
		Details: []domain.Detail{
			{Label: "Latency", Value: format.Duration(latency)},
		},
	}
	if latency > c.warnLatency {
		res.Severity = domain.SeverityWarning
		res.Message = fmt.Sprintf("PING took %s, above the %s threshold",
			format.Duration(latency), format.Duration(c.warnLatency))
	}

	// Version and uptime are decoration; an INFO failure here should not
	// mask a healthy PING.
	info, err := fetchInfo(ctx, c.client, "server")
	if err != nil {
		res.Severity = res.Severity.Worse(domain.SeverityInfo)
		res.Details = append(res.Details, domain.Detail{Label: "Server version", Value: notReported})
		return res
	}

	version, ok := info.Get("redis_version")
	if !ok {
		version = notReported
		res.Severity = res.Severity.Worse(domain.SeverityInfo)
	}
	res.Details = append(res.Details, domain.Detail{Label: "Server version", Value: version})

	if uptime, ok := info.Int("uptime_in_seconds"); ok {
		res.Details = append(res.Details, domain.Detail{Label: "Uptime", Value: format.Seconds(uptime)})
	}
	if mode, ok := info.Get("redis_mode"); ok {
		res.Details = append(res.Details, domain.Detail{Label: "Mode", Value: mode})
	}

	return res
}
