package domain

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/mouse-blink/lintsweep/internal/adapter"
	"github.com/mouse-blink/lintsweep/internal/controller"
	m "github.com/mouse-blink/lintsweep/internal/model"
)

// ListArgs selects the manifest and lint configuration for a run.
type ListArgs struct {
	Manifest m.Path
	Config   m.Path
	// Exclude holds regexp patterns; matching files are removed from
	// every entry's file set.
	Exclude []string
}

// CompactArgs configures a manifest compaction run.
type CompactArgs struct {
	ListArgs
	Reports m.Path
	DryRun  bool
}

// EliminateArgs configures a manifest elimination run.
type EliminateArgs struct {
	CompactArgs
	// Block switches from disable-next-line comments to disable/enable
	// pairs bracketing each violating range.
	Block bool
}

// Workflow defines the manifest maintenance operations.
type Workflow interface {
	// List shows each manifest entry with its resolved files and their
	// remaining error counts.
	List(args ListArgs) error

	// Compact rewrites the manifest keeping only entries whose files
	// still produce error-severity violations.
	Compact(args CompactArgs) error

	// Eliminate writes inline suppression comments into every remaining
	// ignored file and then truncates the manifest.
	Eliminate(args EliminateArgs) error
}

type workflow struct {
	fs      adapter.ManifestFSAdapter
	lint    adapter.LintRunnerAdapter
	config  adapter.ConfigAdapter
	reports adapter.ReportStore
	ui      controller.UI
}

// NewWorkflow creates a Workflow instance with the provided adapters.
func NewWorkflow(
	fs adapter.ManifestFSAdapter,
	lint adapter.LintRunnerAdapter,
	config adapter.ConfigAdapter,
	reports adapter.ReportStore,
	ui controller.UI,
) Workflow {
	return &workflow{
		fs:      fs,
		lint:    lint,
		config:  config,
		reports: reports,
		ui:      ui,
	}
}

// List runs the reader/filter/query pipeline and displays the result.
func (w *workflow) List(args ListArgs) error {
	entries, files, err := w.prepare(args)
	if err != nil {
		return err
	}

	if err := w.ui.Start(controller.WithListMode()); err != nil {
		return err
	}
	defer w.ui.Close()

	results, err := queryViolations(w.fs, w.lint, args.Config, args.Manifest, files)
	if err != nil {
		return err
	}

	counts := make(map[m.Path]int, len(results))
	for _, result := range results {
		counts[result.Path] = result.ErrorCount()
	}

	return w.ui.DisplayEntries(entries, counts)
}

// Compact rewrites the manifest keeping only still-violating entries.
func (w *workflow) Compact(args CompactArgs) error {
	started := time.Now()

	entries, files, err := w.prepare(args.ListArgs)
	if err != nil {
		return err
	}

	if err := w.ui.Start(controller.WithRunMode("compact", len(files))); err != nil {
		return err
	}
	defer w.ui.Close()

	results, err := queryViolations(w.fs, w.lint, args.Config, args.Manifest, files)
	if err != nil {
		return err
	}

	before := totalErrors(results)
	byPath := resultsByPath(results)

	var retained []m.IgnoreEntry

	outcomes := make([]m.FileOutcome, 0, len(files))

	for _, entry := range entries {
		if entryStillErrors(entry, byPath) {
			retained = append(retained, entry)
		}
	}

	for _, file := range files {
		outcomes = append(outcomes, m.FileOutcome{
			Path:    file,
			Skipped: byPath[file].ErrorCount() == 0,
		})
	}

	if !args.DryRun {
		if err := rewriteManifest(w.fs, args.Manifest, retained); err != nil {
			return err
		}
	}

	// Compaction never mutates the ignored files themselves, but the
	// after-count is still measured with a fresh query over the same set.
	after := before

	if !args.DryRun {
		afterResults, err := queryViolations(w.fs, w.lint, args.Config, args.Manifest, files)
		if err != nil {
			return err
		}

		after = totalErrors(afterResults)
	}

	report := m.RunReport{
		Operation: "compact",
		Manifest:  args.Manifest,
		DryRun:    args.DryRun,
		Before:    before,
		After:     after,
		StartedAt: started,
		Files:     outcomes,
	}

	return w.finish(args, report)
}

// Eliminate injects inline suppressions and empties the manifest.
func (w *workflow) Eliminate(args EliminateArgs) error {
	started := time.Now()

	_, files, err := w.prepare(args.ListArgs)
	if err != nil {
		return err
	}

	if err := w.ui.Start(controller.WithRunMode("eliminate", len(files))); err != nil {
		return err
	}
	defer w.ui.Close()

	results, err := queryViolations(w.fs, w.lint, args.Config, args.Manifest, files)
	if err != nil {
		return err
	}

	before := totalErrors(results)
	byPath := resultsByPath(results)
	mode := m.ModeNextLine

	if args.Block {
		mode = m.ModeBlock
	}

	outcomes := make([]m.FileOutcome, 0, len(files))

	for _, file := range files {
		plan := buildPlan(byPath[file].Violations)

		w.ui.DisplayFileStart(file)

		if len(plan) == 0 {
			outcome := m.FileOutcome{Path: file, Skipped: true}
			outcomes = append(outcomes, outcome)
			w.ui.DisplayFileResult(file, 0, nil)

			continue
		}

		outcome := m.FileOutcome{Path: file}

		var fileErr error

		if args.DryRun {
			outcome.Inserted = plannedInsertions(plan, mode)
		} else {
			outcome.Inserted, fileErr = suppressFile(w.fs, file, plan, mode)

			// Per-file failures are reported and processing continues
			// with the remaining files.
			if fileErr != nil {
				outcome.Err = fileErr.Error()
			}
		}

		w.ui.DisplayFileResult(file, outcome.Inserted, fileErr)
		outcomes = append(outcomes, outcome)
	}

	after := before

	if !args.DryRun {
		if err := truncateManifest(w.fs, args.Manifest); err != nil {
			return err
		}

		afterResults, err := queryViolations(w.fs, w.lint, args.Config, args.Manifest, files)
		if err != nil {
			return err
		}

		after = totalErrors(afterResults)
	}

	report := m.RunReport{
		Operation: "eliminate",
		Manifest:  args.Manifest,
		DryRun:    args.DryRun,
		Before:    before,
		After:     after,
		StartedAt: started,
		Files:     outcomes,
	}

	return w.finish(args.CompactArgs, report)
}

// prepare validates the configuration and runs the reader and filter
// stages shared by every operation.
func (w *workflow) prepare(args ListArgs) ([]m.IgnoreEntry, []m.Path, error) {
	if !w.fs.Exists(args.Config) {
		return nil, nil, fmt.Errorf("%w: %s", ErrConfigNotFound, args.Config)
	}

	if _, err := w.config.Load(args.Config); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	entries, err := readManifest(w.fs, args.Manifest)
	if err != nil {
		return nil, nil, err
	}

	entries, err = applyExcludes(entries, args.Exclude)
	if err != nil {
		return nil, nil, err
	}

	entries = filterDisabled(w.fs, entries)

	return entries, entryFiles(entries), nil
}

func (w *workflow) finish(args CompactArgs, report m.RunReport) error {
	if !args.DryRun && args.Reports != "" {
		if err := w.reports.SaveReport(args.Reports, report); err != nil {
			return err
		}
	}

	return w.ui.DisplaySummary(report)
}

// entryStillErrors reports whether any of the entry's files still has
// error-severity violations.
func entryStillErrors(entry m.IgnoreEntry, byPath map[m.Path]m.LintResult) bool {
	for _, file := range entry.Files {
		if byPath[file].ErrorCount() > 0 {
			return true
		}
	}

	return false
}

// plannedInsertions counts the lines a plan would add in the given mode.
func plannedInsertions(plan m.SuppressionPlan, mode m.SuppressionMode) int {
	if mode == m.ModeBlock {
		return len(plan) * 2
	}

	return len(plan)
}

// applyExcludes drops files matching any of the exclude regexps.
func applyExcludes(entries []m.IgnoreEntry, patterns []string) ([]m.IgnoreEntry, error) {
	if len(patterns) == 0 {
		return entries, nil
	}

	regexps := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}

		regexps = append(regexps, re)
	}

	var filtered []m.IgnoreEntry

	for _, entry := range entries {
		var files []m.Path

		for _, file := range entry.Files {
			if !matchesAny(regexps, string(file)) {
				files = append(files, file)
			}
		}

		if len(files) == 0 {
			continue
		}

		entry.Files = files
		filtered = append(filtered, entry)
	}

	return filtered, nil
}

func matchesAny(regexps []*regexp.Regexp, s string) bool {
	for _, re := range regexps {
		if re.MatchString(s) {
			return true
		}
	}

	return false
}

// IsFatal reports whether err should abort the whole run rather than be
// treated as a partial-success outcome.
func IsFatal(err error) bool {
	return errors.Is(err, ErrManifestNotFound) ||
		errors.Is(err, ErrConfigNotFound) ||
		errors.Is(err, ErrConfigParse) ||
		errors.Is(err, ErrLintEngine)
}
