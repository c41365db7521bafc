package controller

// Message types.
type fileStartMsg struct {
	path string
}

type fileResultMsg struct {
	path     string
	inserted int
	err      string
}

type summaryMsg struct {
	operation string
	before    int
	after     int
	dryRun    bool
}

type doneMsg struct{}
