package model

import "time"

// FileOutcome records what happened to a single file during a run.
type FileOutcome struct {
	Path     Path   `msgpack:"path"`
	Inserted int    `msgpack:"inserted"`
	Skipped  bool   `msgpack:"skipped"`
	Err      string `msgpack:"error,omitempty"`
}

// RunReport summarizes one compact or eliminate run: the error-severity
// violation totals measured before and after the run, and the per-file
// outcomes.
type RunReport struct {
	Operation string        `msgpack:"operation"`
	Manifest  Path          `msgpack:"manifest"`
	DryRun    bool          `msgpack:"dry_run"`
	Before    int           `msgpack:"before"`
	After     int           `msgpack:"after"`
	StartedAt time.Time     `msgpack:"started_at"`
	Files     []FileOutcome `msgpack:"files"`
}
