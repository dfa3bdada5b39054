// Package format renders raw Redis metrics as display strings for the report.
package format

import (
	"fmt"
	"time"
)

// Bytes renders a byte count in binary units with one decimal place.
func Bytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}

// Percent renders a percentage with one decimal place.
func Percent(v float64) string {
	return fmt.Sprintf("%.1f%%", v)
}

// Duration renders a duration in the largest two useful units,
// e.g. "3d 4h" or "12m 30s".
func Duration(d time.Duration) string {
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}
	d = d.Round(time.Second)

	days := d / (24 * time.Hour)
	d -= days * 24 * time.Hour
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	seconds := d - minutes*time.Minute

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds/time.Second)
	default:
		return fmt.Sprintf("%ds", seconds/time.Second)
	}
}

// Seconds renders a second count reported by INFO as a Duration.
func Seconds(secs int64) string {
	return Duration(time.Duration(secs) * time.Second)
}
