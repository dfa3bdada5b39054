package domain

import "time"

// Alert describes a transition of the overall report severity between two
// consecutive runs of the check suite.
type Alert struct {
	At       time.Time
	Previous Severity
	Current  Severity
	Failing  []string
	Summary  string
}

// NewAlert builds an alert for a severity transition observed on the given report.
func NewAlert(previous Severity, report *Report) *Alert {
	return &Alert{
		At:       report.GeneratedAt,
		Previous: previous,
		Current:  report.Overall,
		Failing:  report.FailingChecks(),
		Summary:  report.Summary(),
	}
}
