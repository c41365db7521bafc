package model

// Severity classifies a lint finding.
type Severity string

const (
	// SeverityError marks findings that participate in suppression.
	SeverityError Severity = "error"
	// SeverityWarning marks findings that are reported but never suppressed.
	SeverityWarning Severity = "warning"
)

// Violation is a single lint finding in a file. Lines are 1-indexed and
// EndLine is never smaller than Line.
type Violation struct {
	Severity Severity
	Line     int
	EndLine  int
	Rule     string
}

// LintResult holds the engine's findings for one file.
type LintResult struct {
	Path       Path
	Errored    bool
	Violations []Violation
}

// ErrorCount returns the number of error-severity violations.
func (r LintResult) ErrorCount() int {
	count := 0

	for _, v := range r.Violations {
		if v.Severity == SeverityError {
			count++
		}
	}

	return count
}
