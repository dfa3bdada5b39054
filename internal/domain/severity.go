package domain

// Severity classifies the outcome of a single check or of a whole report.
// Higher values are worse.
type Severity int

const (
	SeverityOK Severity = iota
	SeverityInfo
	SeverityWarning
	SeverityCritical
)

// String returns the lower-case display name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityOK:
		return "ok"
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Worse returns the more severe of the two values.
func (s Severity) Worse(other Severity) Severity {
	if other > s {
		return other
	}
	return s
}
