package redischeck

import (
	"time"

	"github.com/skvare/redis-health/internal/config"
)

// suiteConfig returns a minimal valid configuration for suite construction tests.
func suiteConfig() *config.Config {
	return &config.Config{
		RedisAddr:              "localhost:6379",
		KeyPrefix:              "test:",
		ProbeTTL:               time.Minute,
		ScanPageSize:           100,
		ScanMaxKeys:            1000,
		LatencyWarn:            100 * time.Millisecond,
		MemoryWarnPercent:      75,
		MemoryCriticalPercent:  90,
		HitRatioWarnPercent:    50,
		HitRatioMinSamples:     1000,
		ClientsWarnPercent:     80,
		ClientsCriticalPercent: 95,
	}
}
