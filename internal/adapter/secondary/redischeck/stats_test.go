package redischeck

import (
	"fmt"
	"strings"
	"testing"

	"github.com/skvare/redis-health/internal/domain"
	"github.com/skvare/redis-health/internal/domain/redisinfo"
)

func statsInfo(hits, misses int64) redisinfo.Info {
	return redisinfo.Parse(fmt.Sprintf(
		"# Stats\r\ninstantaneous_ops_per_sec:12\r\ntotal_commands_processed:50000\r\ntotal_connections_received:900\r\nexpired_keys:100\r\nevicted_keys:0\r\nkeyspace_hits:%d\r\nkeyspace_misses:%d\r\n",
		hits, misses))
}

func TestEvaluateStats(t *testing.T) {
	tests := []struct {
		name         string
		info         redisinfo.Info
		wantSeverity domain.Severity
	}{
		{
			name:         "healthy hit ratio",
			info:         statsInfo(9000, 1000), // 90%
			wantSeverity: domain.SeverityOK,
		},
		{
			name:         "poor hit ratio",
			info:         statsInfo(400, 600), // 40%
			wantSeverity: domain.SeverityWarning,
		},
		{
			name:         "too few samples to judge",
			info:         statsInfo(3, 7),
			wantSeverity: domain.SeverityInfo,
		},
		{
			name:         "counters not reported",
			info:         redisinfo.Parse("# Stats\r\ninstantaneous_ops_per_sec:12\r\n"),
			wantSeverity: domain.SeverityInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := evaluateStats(tt.info, 50, 1000)
			if res.Severity != tt.wantSeverity {
				t.Fatalf("severity = %v, want %v (message: %s)", res.Severity, tt.wantSeverity, res.Message)
			}
		})
	}
}

func TestEvaluateStats_ratioBoundary(t *testing.T) {
	// Exactly at the threshold is not a warning.
	res := evaluateStats(statsInfo(500, 500), 50, 1000)
	if res.Severity != domain.SeverityOK {
		t.Fatalf("severity = %v, want ok (message: %s)", res.Severity, res.Message)
	}
	if !strings.Contains(res.Message, "50.0%") {
		t.Fatalf("message %q does not report the ratio", res.Message)
	}
}
