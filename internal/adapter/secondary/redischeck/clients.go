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

const clientsTitle = "Client connections"

// ClientsCheck reports connected clients against the server's maxclients limit.
type ClientsCheck struct {
	client  *redis.Client
	warnPct float64
	critPct float64
}

// NewClientsCheck creates the client-connection check.
func NewClientsCheck(client *redis.Client, warnPct, critPct float64) *ClientsCheck {
	return &ClientsCheck{client: client, warnPct: warnPct, critPct: critPct}
}

// Name returns the stable name of the check.
func (c *ClientsCheck) Name() string {
	return domain.CheckClients
}

// Check fetches INFO clients plus the maxclients limit and classifies usage.
func (c *ClientsCheck) Check(ctx context.Context) domain.CheckResult {
	info, err := fetchInfo(ctx, c.client, "clients")
	if err != nil {
		return unreachable(domain.CheckClients, clientsTitle, err)
	}

	// maxclients is only reachable through CONFIG GET; treat a failure the
	// same as a missing field.
	var maxClients int64
	if values, err := c.client.ConfigGet(ctx, "maxclients").Result(); err == nil {
		if raw, ok := values["maxclients"]; ok {
			maxClients, _ = strconv.ParseInt(raw, 10, 64)
		}
	}

	return evaluateClients(info, maxClients, c.warnPct, c.critPct)
}

func evaluateClients(info redisinfo.Info, maxClients int64, warnPct, critPct float64) domain.CheckResult {
	res := domain.CheckResult{
		Name:     domain.CheckClients,
		Title:    clientsTitle,
		Severity: domain.SeverityOK,
	}

	connected, ok := info.Int("connected_clients")
	if !ok {
		res.Severity = domain.SeverityInfo
		res.Message = "server did not report client counts"
		return res
	}
	res.Details = append(res.Details, domain.Detail{Label: "Connected", Value: strconv.FormatInt(connected, 10)})

	if blocked, ok := info.Int("blocked_clients"); ok {
		res.Details = append(res.Details, domain.Detail{Label: "Blocked", Value: strconv.FormatInt(blocked, 10)})
	}

	if maxClients <= 0 {
		res.Severity = domain.SeverityInfo
		res.Message = fmt.Sprintf("%d clients connected, maxclients %s", connected, notReported)
		res.Details = append(res.Details, domain.Detail{Label: "Limit", Value: notReported})
		return res
	}

	pct := float64(connected) / float64(maxClients) * 100
	res.Details = append(res.Details,
		domain.Detail{Label: "Limit", Value: strconv.FormatInt(maxClients, 10)},
		domain.Detail{Label: "Usage", Value: format.Percent(pct)},
	)

	switch {
	case pct >= critPct:
		res.Severity = domain.SeverityCritical
		res.Message = fmt.Sprintf("%d of %d client connections in use (%s)", connected, maxClients, format.Percent(pct))
	case pct >= warnPct:
		res.Severity = domain.SeverityWarning
		res.Message = fmt.Sprintf("%d of %d client connections in use (%s)", connected, maxClients, format.Percent(pct))
	default:
		res.Message = fmt.Sprintf("%d clients connected (%s of the limit)", connected, format.Percent(pct))
	}

	return res
}
