package redischeck

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/skvare/redis-health/internal/domain"
	"github.com/skvare/redis-health/internal/domain/format"
)

const keyspaceTitle = "Key space"

// KeyspaceCheck verifies the cache actually works with a live write/read
// probe under the application's key prefix, then counts the keys in that
// namespace with a bounded SCAN.
type KeyspaceCheck struct {
	client   *redis.Client
	prefix   string
	ttl      time.Duration
	scanPage int64
	scanMax  int64
}

// NewKeyspaceCheck creates the key-space health check.
func NewKeyspaceCheck(client *redis.Client, prefix string, ttl time.Duration, scanPage, scanMax int64) *KeyspaceCheck {
	return &KeyspaceCheck{client: client, prefix: prefix, ttl: ttl, scanPage: scanPage, scanMax: scanMax}
}

// Name returns the stable name of the check.
func (c *KeyspaceCheck) Name() string {
	return domain.CheckKeyspace
}

// probeOutcome captures what the live write/read probe observed.
type probeOutcome struct {
	writeErr error
	readErr  error
	wrote    string
	read     string
}

func (p probeOutcome) ok() bool {
	return p.writeErr == nil && p.readErr == nil && p.read == p.wrote
}

// scanOutcome captures what the bounded prefix scan observed.
type scanOutcome struct {
	err    error
	total  int64
	capped bool
}

// Check runs the probe, the prefix scan and the per-database counts.
func (c *KeyspaceCheck) Check(ctx context.Context) domain.CheckResult {
	key := c.prefix + domain.ProbeKeySuffix

	probe := probeOutcome{wrote: strconv.FormatInt(time.Now().UnixNano(), 10)}
	probe.writeErr = c.client.Set(ctx, key, probe.wrote, c.ttl).Err()
	if probe.writeErr == nil {
		probe.read, probe.readErr = c.client.Get(ctx, key).Result()
		// Clean up the probe key regardless of the outcome; the TTL is only a
		// safety net for when the DEL never arrives.
		_ = c.client.Del(ctx, key).Err()
	}

	var scan scanOutcome
	if probe.ok() {
		scan.total, scan.capped, scan.err = c.countKeys(ctx)
	}

	res := evaluateKeyspace(c.prefix, probe, scan)
	res.Details = append([]domain.Detail{
		{Label: "Probe key", Value: key},
		{Label: "Probe TTL", Value: format.Duration(c.ttl)},
	}, res.Details...)

	if probe.ok() {
		if info, err := fetchInfo(ctx, c.client, "keyspace"); err == nil {
			for _, ks := range info.Keyspaces() {
				res.Details = append(res.Details, domain.Detail{
					Label: ks.DB,
					Value: fmt.Sprintf("%d keys, %d with expiry", ks.Keys, ks.Expires),
				})
			}
		}
	}

	return res
}

// evaluateKeyspace classifies the probe and scan outcomes. A failed or
// mismatching probe is critical and masks the scan; a scan failure after a
// good probe only degrades to warning.
func evaluateKeyspace(prefix string, probe probeOutcome, scan scanOutcome) domain.CheckResult {
	res := domain.CheckResult{
		Name:     domain.CheckKeyspace,
		Title:    keyspaceTitle,
		Severity: domain.SeverityOK,
	}

	switch {
	case probe.writeErr != nil:
		res.Severity = domain.SeverityCritical
		res.Message = fmt.Sprintf("write probe failed: %v", probe.writeErr)
		return res
	case probe.readErr != nil:
		res.Severity = domain.SeverityCritical
		res.Message = fmt.Sprintf("read probe failed: %v", probe.readErr)
		return res
	case probe.read != probe.wrote:
		res.Severity = domain.SeverityCritical
		res.Message = fmt.Sprintf("probe value mismatch: wrote %q, read %q", probe.wrote, probe.read)
		return res
	}

	switch {
	case scan.err != nil:
		res.Severity = domain.SeverityWarning
		res.Message = fmt.Sprintf("write/read probe succeeded but SCAN failed: %v", scan.err)
	case scan.capped:
		res.Message = fmt.Sprintf("write/read probe succeeded, at least %d keys under prefix %q", scan.total, prefix)
		res.Details = append(res.Details, domain.Detail{Label: "Keys under prefix", Value: fmt.Sprintf("at least %d", scan.total)})
	default:
		res.Message = fmt.Sprintf("write/read probe succeeded, %d keys under prefix %q", scan.total, prefix)
		res.Details = append(res.Details, domain.Detail{Label: "Keys under prefix", Value: strconv.FormatInt(scan.total, 10)})
	}

	return res
}

// countKeys walks SCAN over the prefix and stops once scanMax keys have been
// seen, reporting whether the count was capped. A scan that ends exactly at
// the cap still reports uncapped: the cursor is checked first.
func (c *KeyspaceCheck) countKeys(ctx context.Context) (total int64, capped bool, err error) {
	var cursor uint64
	for {
		keys, next, err := c.client.Scan(ctx, cursor, c.prefix+"*", c.scanPage).Result()
		if err != nil {
			return 0, false, err
		}
		total += int64(len(keys))
		cursor = next
		if cursor == 0 {
			return total, false, nil
		}
		if total >= c.scanMax {
			return total, true, nil
		}
	}
}
