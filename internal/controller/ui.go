// Package controller provides output adapters for displaying run
// progress and results.
package controller

import (
	m "github.com/mouse-blink/lintsweep/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeList StartMode = iota
	ModeRun
)

// StartOption is a functional option for the Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode      StartMode
	operation string
	total     int
}

// WithListMode sets the UI to entry-listing mode.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

// WithRunMode sets the UI to run mode with the total number of files the
// operation will touch.
func WithRunMode(operation string, total int) StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRun
		c.operation = operation
		c.total = total
	}
}

// UI defines the interface for displaying manifest maintenance runs.
// Implementations can use different output methods (simple text, TUI).
type UI interface {
	Start(options ...StartOption) error
	Close()
	DisplayEntries(entries []m.IgnoreEntry, counts map[m.Path]int) error
	DisplayFileStart(path m.Path)
	DisplayFileResult(path m.Path, inserted int, err error)
	DisplaySummary(report m.RunReport) error
}
