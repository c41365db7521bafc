package model

// SuppressionMode selects the comment style used to silence violations.
type SuppressionMode string

const (
	// ModeNextLine inserts a single disable-next-line comment before each
	// violating range. This is the default mode.
	ModeNextLine SuppressionMode = "next-line"
	// ModeBlock brackets each violating range with a disable/enable pair.
	ModeBlock SuppressionMode = "block"
)

// PlanEntry is one planned insertion: a line range plus the rules to
// suppress there. Rules keep their first-seen order.
type PlanEntry struct {
	StartLine int
	EndLine   int
	Rules     []string
}

// SuppressionPlan is the deduplicated set of insertions for one file,
// sorted ascending by start line. Line numbers refer to the original,
// unmutated file.
type SuppressionPlan []PlanEntry
