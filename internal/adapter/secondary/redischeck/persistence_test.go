package redischeck

import (
	"strconv"
	"testing"
	"time"

	"github.com/skvare/redis-health/internal/domain"
	"github.com/skvare/redis-health/internal/domain/redisinfo"
)

func TestEvaluatePersistence(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name         string
		raw          string
		wantSeverity domain.Severity
	}{
		{
			name: "healthy rdb, aof disabled",
			raw: "loading:0\r\nrdb_changes_since_last_save:12\r\n" +
				"rdb_last_save_time:" + unixStr(now.Add(-time.Hour)) + "\r\n" +
				"rdb_last_bgsave_status:ok\r\naof_enabled:0\r\n",
			wantSeverity: domain.SeverityOK,
		},
		{
			name:         "rdb bgsave failed",
			raw:          "loading:0\r\nrdb_last_bgsave_status:err\r\naof_enabled:0\r\n",
			wantSeverity: domain.SeverityCritical,
		},
		{
			name:         "aof write failed",
			raw:          "loading:0\r\nrdb_last_bgsave_status:ok\r\naof_enabled:1\r\naof_last_write_status:err\r\n",
			wantSeverity: domain.SeverityCritical,
		},
		{
			name:         "loading a dump",
			raw:          "loading:1\r\nrdb_last_bgsave_status:ok\r\naof_enabled:0\r\n",
			wantSeverity: domain.SeverityInfo,
		},
		{
			name:         "status not reported",
			raw:          "loading:0\r\n",
			wantSeverity: domain.SeverityInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := evaluatePersistence(redisinfo.Parse(tt.raw), now)
			if res.Severity != tt.wantSeverity {
				t.Fatalf("severity = %v, want %v (message: %s)", res.Severity, tt.wantSeverity, res.Message)
			}
		})
	}
}

func TestEvaluatePersistence_lastSaveAge(t *testing.T) {
	now := time.Now()
	raw := "loading:0\r\nrdb_last_bgsave_status:ok\r\n" +
		"rdb_last_save_time:" + unixStr(now.Add(-90*time.Minute)) + "\r\naof_enabled:0\r\n"

	res := evaluatePersistence(redisinfo.Parse(raw), now)

	found := false
	for _, d := range res.Details {
		if d.Label == "Last save age" && d.Value == "1h 30m" {
			found = true
		}
	}
	if !found {
		t.Fatalf("last save age missing or wrong: %+v", res.Details)
	}
}

func unixStr(t time.Time) string {
	return strconv.FormatInt(t.Unix(), 10)
}
