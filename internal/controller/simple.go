package controller

import (
	"bytes"
	"fmt"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mouse-blink/lintsweep/internal/model"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(options ...StartOption) error {
	config := StartConfig{}

	for _, option := range options {
		option(&config)
	}

	if config.mode == ModeRun {
		s.printf("%s: %d file(s) to process\n", config.operation, config.total)
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close() {

}

// DisplayEntries prints one row per resolved file, grouped by entry.
func (s *SimpleUI) DisplayEntries(entries []m.IgnoreEntry, counts map[m.Path]int) error {
	if len(entries) == 0 {
		s.printf("No manifest entries resolve to files\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Pattern", "File", "Errors"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER})

	total := 0
	fileCount := 0

	for _, entry := range entries {
		for _, file := range entry.Files {
			count := counts[file]
			table.Append([]string{entry.Pattern, string(file), fmt.Sprintf("%d", count)})

			total += count
			fileCount++
		}
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Entries %d", len(entries)),
		fmt.Sprintf("Files %d", fileCount),
		fmt.Sprintf("%d", total),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayFileStart announces that a file is about to be processed.
func (s *SimpleUI) DisplayFileStart(path m.Path) {
	s.printf("processing %s\n", path)
}

// DisplayFileResult prints the per-file outcome.
func (s *SimpleUI) DisplayFileResult(path m.Path, inserted int, err error) {
	if err != nil {
		s.printf("  %s %s: %v\n", color.RedString("fail"), path, err)
		return
	}

	s.printf("  %s %s: %d comment line(s) inserted\n", color.GreenString("ok"), path, inserted)
}

// DisplaySummary prints the before/after totals for the run.
func (s *SimpleUI) DisplaySummary(report m.RunReport) error {
	suffix := ""
	if report.DryRun {
		suffix = " (dry run, nothing written)"
	}

	s.printf("%s: error violations %d -> %d%s\n", report.Operation, report.Before, report.After, suffix)

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
