package render

import (
	"strings"
	"testing"
	"time"

	"github.com/skvare/redis-health/internal/domain"
)

func sampleReport() *domain.Report {
	return domain.NewReport(time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC), 40*time.Millisecond, []domain.CheckResult{
		{
			Name:     "connection",
			Title:    "Connection",
			Severity: domain.SeverityOK,
			Message:  "PING answered in 2ms",
			Details: []domain.Detail{
				{Label: "Latency", Value: "2ms"},
				{Label: "Server version", Value: "7.2.4"},
			},
		},
		{
			Name:     "memory",
			Title:    "Memory usage",
			Severity: domain.SeverityWarning,
			Message:  "memory usage at 82.0% of the 1.0 GB limit",
		},
	})
}

func TestHTML(t *testing.T) {
	out, err := HTML(sampleReport())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	html := string(out)

	for _, want := range []string{
		"Redis health: warning",
		"Connection",
		"Memory usage",
		"PING answered in 2ms",
		"7.2.4",
		severityColors[domain.SeverityWarning],
		severityColors[domain.SeverityOK],
		"2025-03-01 12:00:00 UTC",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("fragment missing %q:\n%s", want, html)
		}
	}

	if strings.Contains(html, "<html") || strings.Contains(html, "<body") {
		t.Fatal("renderer must produce a fragment, not a document")
	}
}

func TestHTML_escapesValues(t *testing.T) {
	report := domain.NewReport(time.Now(), 0, []domain.CheckResult{
		{
			Name:     "keyspace",
			Title:    "Key space",
			Severity: domain.SeverityCritical,
			Message:  `probe value mismatch: read "<script>alert(1)</script>"`,
			Details: []domain.Detail{
				{Label: "Probe key", Value: "crm:<b>healthcheck</b>"},
			},
		},
	})

	out, err := HTML(report)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	html := string(out)

	if strings.Contains(html, "<script>") || strings.Contains(html, "<b>") {
		t.Fatalf("values not escaped:\n%s", html)
	}
}

func TestSeverityColor_unknownFallsBack(t *testing.T) {
	if got := severityColor(domain.Severity(42)); got != severityColors[domain.SeverityInfo] {
		t.Fatalf("got %q", got)
	}
}
