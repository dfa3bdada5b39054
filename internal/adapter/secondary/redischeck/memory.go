package redischeck

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/skvare/redis-health/internal/domain"
	"github.com/skvare/redis-health/internal/domain/format"
	"github.com/skvare/redis-health/internal/domain/redisinfo"
)

const memoryTitle = "Memory usage"

// MemoryCheck reports memory consumption against the configured maxmemory limit.
type MemoryCheck struct {
	client  *redis.Client
	warnPct float64
	critPct float64
}

// NewMemoryCheck creates the memory usage check.
func NewMemoryCheck(client *redis.Client, warnPct, critPct float64) *MemoryCheck {
	return &MemoryCheck{client: client, warnPct: warnPct, critPct: critPct}
}

// Name returns the stable name of the check.
func (c *MemoryCheck) Name() string {
	return domain.CheckMemory
}

// Check fetches INFO memory and classifies usage.
func (c *MemoryCheck) Check(ctx context.Context) domain.CheckResult {
	info, err := fetchInfo(ctx, c.client, "memory")
	if err != nil {
		return unreachable(domain.CheckMemory, memoryTitle, err)
	}
	return evaluateMemory(info, c.warnPct, c.critPct)
}

func evaluateMemory(info redisinfo.Info, warnPct, critPct float64) domain.CheckResult {
	res := domain.CheckResult{
		Name:     domain.CheckMemory,
		Title:    memoryTitle,
		Severity: domain.SeverityOK,
	}

	used, ok := info.Int("used_memory")
	if !ok {
		res.Severity = domain.SeverityInfo
		res.Message = "server did not report memory usage"
		return res
	}

	res.Details = append(res.Details, domain.Detail{Label: "Used memory", Value: format.Bytes(used)})
	if peak, ok := info.Int("used_memory_peak"); ok {
		res.Details = append(res.Details, domain.Detail{Label: "Peak", Value: format.Bytes(peak)})
	}
	if rss, ok := info.Int("used_memory_rss"); ok {
		res.Details = append(res.Details, domain.Detail{Label: "RSS", Value: format.Bytes(rss)})
	}
	if frag, ok := info.Float("mem_fragmentation_ratio"); ok {
		res.Details = append(res.Details, domain.Detail{Label: "Fragmentation ratio", Value: fmt.Sprintf("%.2f", frag)})
	}

	maxmem, ok := info.Int("maxmemory")
	if !ok {
		res.Severity = domain.SeverityInfo
		res.Message = fmt.Sprintf("using %s, maxmemory %s", format.Bytes(used), notReported)
		res.Details = append(res.Details, domain.Detail{Label: "Limit", Value: notReported})
		return res
	}
	if maxmem == 0 {
		res.Severity = domain.SeverityInfo
		res.Message = fmt.Sprintf("using %s, no maxmemory limit configured", format.Bytes(used))
		res.Details = append(res.Details, domain.Detail{Label: "Limit", Value: "none"})
		return res
	}

	pct := float64(used) / float64(maxmem) * 100
	res.Details = append(res.Details,
		domain.Detail{Label: "Limit", Value: format.Bytes(maxmem)},
		domain.Detail{Label: "Usage", Value: format.Percent(pct)},
	)

	switch {
	case pct >= critPct:
		res.Severity = domain.SeverityCritical
		res.Message = fmt.Sprintf("memory usage at %s of the %s limit", format.Percent(pct), format.Bytes(maxmem))
	case pct >= warnPct:
		res.Severity = domain.SeverityWarning
		res.Message = fmt.Sprintf("memory usage at %s of the %s limit", format.Percent(pct), format.Bytes(maxmem))
	default:
		res.Message = fmt.Sprintf("using %s of %s (%s)", format.Bytes(used), format.Bytes(maxmem), format.Percent(pct))
	}

	return res
}
