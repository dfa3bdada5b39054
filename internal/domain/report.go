package domain

import (
	"fmt"
	"strings"
	"time"
)

// Detail is one labeled value in a check's output, in display order.
type Detail struct {
	Label string
	Value string
}

// CheckResult is the outcome of a single diagnostic check.
type CheckResult struct {
	Name     string
	Title    string
	Severity Severity
	Message  string
	Details  []Detail
	Duration time.Duration
}

// Report is the merged outcome of one full run of the check suite.
type Report struct {
	GeneratedAt time.Time
	Duration    time.Duration
	Overall     Severity
	Results     []CheckResult
}

// NewReport builds a report from the ordered check results, deriving the
// overall severity as the worst severity seen.
func NewReport(generatedAt time.Time, duration time.Duration, results []CheckResult) *Report {
	overall := SeverityOK
	for _, res := range results {
		overall = overall.Worse(res.Severity)
	}
	return &Report{
		GeneratedAt: generatedAt,
		Duration:    duration,
		Overall:     overall,
		Results:     results,
	}
}

// FailingChecks returns the names of checks at warning severity or worse,
// in report order.
func (r *Report) FailingChecks() []string {
	var names []string
	for _, res := range r.Results {
		if res.Severity >= SeverityWarning {
			names = append(names, res.Name)
		}
	}
	return names
}

// Summary renders the report as a one-line plain-text summary.
func (r *Report) Summary() string {
	if r.Overall == SeverityOK {
		return fmt.Sprintf("redis health ok: %d checks passed", len(r.Results))
	}
	failing := r.FailingChecks()
	if len(failing) == 0 {
		// Overall is info: nothing failing, something worth reading.
		return fmt.Sprintf("redis health info: %d checks passed, see report for notes", len(r.Results))
	}
	return fmt.Sprintf("redis health %s: %d of %d checks need attention (%s)",
		r.Overall, len(failing), len(r.Results), strings.Join(failing, ", "))
}
