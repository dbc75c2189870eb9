// Package finding defines the value types a scan produces.
package finding

import "fmt"

type Severity string

const (
	SeverityError   Severity = "ERROR"
	SeverityWarning Severity = "WARNING"
)

// Finding is one reported instance of suspected deprecated-API usage.
// Line 0 means the finding is file-level, not tied to a specific line.
type Finding struct {
	RuleID   string
	File     string
	Line     int
	Severity Severity
	Message  string
}

// Location returns "file:line" for report output.
func (f *Finding) Location() string {
	return fmt.Sprintf("%s:%d", f.File, f.Line)
}

// Result accumulates findings over one scan.
// The count is a strict count of independent match events. Findings are
// never deduplicated.
type Result struct {
	Findings []Finding
}

func (r *Result) Add(f Finding) {
	r.Findings = append(r.Findings, f)
}

func (r *Result) Count() int {
	return len(r.Findings)
}
