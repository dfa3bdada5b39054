package redischeck

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/skvare/redis-health/internal/domain"
	"github.com/skvare/redis-health/internal/domain/format"
	"github.com/skvare/redis-health/internal/domain/redisinfo"
)

const persistenceTitle = "Persistence"

// PersistenceCheck reports RDB/AOF status. For a pure cache persistence is
// optional, so a healthy-but-disabled setup is never flagged; a failing
// background save is, because it usually precedes write errors.
type PersistenceCheck struct {
	client *redis.Client
}

// NewPersistenceCheck creates the persistence status check.
func NewPersistenceCheck(client *redis.Client) *PersistenceCheck {
	return &PersistenceCheck{client: client}
}

// Name returns the stable name of the check.
func (c *PersistenceCheck) Name() string {
	return domain.CheckPersistence
}

// Check fetches INFO persistence and classifies it.
func (c *PersistenceCheck) Check(ctx context.Context) domain.CheckResult {
	info, err := fetchInfo(ctx, c.client, "persistence")
	if err != nil {
		return unreachable(domain.CheckPersistence, persistenceTitle, err)
	}
	return evaluatePersistence(info, time.Now())
}

func evaluatePersistence(info redisinfo.Info, now time.Time) domain.CheckResult {
	res := domain.CheckResult{
		Name:     domain.CheckPersistence,
		Title:    persistenceTitle,
		Severity: domain.SeverityOK,
		Message:  "background saves are healthy",
	}

	if loading, ok := info.Int("loading"); ok && loading == 1 {
		res.Severity = domain.SeverityInfo
		res.Message = "server is loading a dump; reads may be stale until it finishes"
	}

	rdbStatus, rdbOK := info.Get("rdb_last_bgsave_status")
	if !rdbOK {
		res.Severity = res.Severity.Worse(domain.SeverityInfo)
		res.Details = append(res.Details, domain.Detail{Label: "RDB last save", Value: notReported})
	} else {
		res.Details = append(res.Details, domain.Detail{Label: "RDB last save", Value: rdbStatus})
		if rdbStatus != "ok" {
			res.Severity = domain.SeverityCritical
			res.Message = "the last RDB background save failed"
		}
	}

	if changes, ok := info.Int("rdb_changes_since_last_save"); ok {
		res.Details = append(res.Details, domain.Detail{Label: "Changes since save", Value: strconv.FormatInt(changes, 10)})
	}
	if lastSave, ok := info.Int("rdb_last_save_time"); ok && lastSave > 0 {
		age := now.Sub(time.Unix(lastSave, 0))
		if age > 0 {
			res.Details = append(res.Details, domain.Detail{Label: "Last save age", Value: format.Duration(age)})
		}
	}

	aofEnabled, ok := info.Int("aof_enabled")
	switch {
	case !ok:
		res.Details = append(res.Details, domain.Detail{Label: "AOF", Value: notReported})
	case aofEnabled == 0:
		res.Details = append(res.Details, domain.Detail{Label: "AOF", Value: "disabled"})
	default:
		res.Details = append(res.Details, domain.Detail{Label: "AOF", Value: "enabled"})
		if status, ok := info.Get("aof_last_write_status"); ok && status != "ok" {
			res.Severity = domain.SeverityCritical
			res.Message = fmt.Sprintf("the last AOF write failed (status %q)", status)
		}
	}

	return res
}
