package controller

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	m "github.com/mouse-blink/lintsweep/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output  io.Writer
	program *tea.Program
	group   *errgroup.Group
}

// NewTUI creates a new TUI writing to output.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// Start launches the progress program for run mode. List mode needs no
// live program; entries render directly.
func (t *TUI) Start(options ...StartOption) error {
	config := StartConfig{}

	for _, option := range options {
		option(&config)
	}

	if config.mode != ModeRun {
		return nil
	}

	t.program = tea.NewProgram(
		newRunModel(config.operation, config.total),
		tea.WithOutput(t.output),
	)
	t.group = &errgroup.Group{}

	t.group.Go(func() error {
		_, err := t.program.Run()

		return err
	})

	return nil
}

// Close stops the progress program and waits for it to finish rendering.
func (t *TUI) Close() {
	if t.program == nil {
		return
	}

	t.program.Send(doneMsg{})
	_ = t.group.Wait()
	t.program = nil
}

// DisplayEntries prints entries with per-file error counts.
func (t *TUI) DisplayEntries(entries []m.IgnoreEntry, counts map[m.Path]int) error {
	if len(entries) == 0 {
		_, _ = fmt.Fprintln(t.output, "No manifest entries resolve to files")

		return nil
	}

	total := 0

	for _, entry := range entries {
		_, _ = fmt.Fprintln(t.output, entry.Pattern)

		for _, file := range entry.Files {
			count := counts[file]
			total += count

			line := fmt.Sprintf("  %s  %d", file, count)
			if count > 0 {
				line = fmt.Sprintf("  %s  %s", file, failStyle.Render(fmt.Sprintf("%d", count)))
			}

			_, _ = fmt.Fprintln(t.output, line)
		}
	}

	_, _ = fmt.Fprintf(t.output, "\n%s\n", summaryStyle.Render(fmt.Sprintf("Total error violations: %d", total)))

	return nil
}

// DisplayFileStart reports the file about to be processed.
func (t *TUI) DisplayFileStart(path m.Path) {
	if t.program == nil {
		return
	}

	t.program.Send(fileStartMsg{path: string(path)})
}

// DisplayFileResult reports the per-file outcome.
func (t *TUI) DisplayFileResult(path m.Path, inserted int, err error) {
	if t.program == nil {
		return
	}

	msg := fileResultMsg{path: string(path), inserted: inserted}
	if err != nil {
		msg.err = err.Error()
	}

	t.program.Send(msg)
}

// DisplaySummary reports the before/after totals.
func (t *TUI) DisplaySummary(report m.RunReport) error {
	if t.program == nil {
		_, _ = fmt.Fprintf(t.output, "%s: error violations %d -> %d\n", report.Operation, report.Before, report.After)

		return nil
	}

	t.program.Send(summaryMsg{
		operation: report.Operation,
		before:    report.Before,
		after:     report.After,
		dryRun:    report.DryRun,
	})

	return nil
}
