package domain

import (
	"errors"
	"testing"

	m "github.com/mouse-blink/lintsweep/internal/model"
)

func TestQueryViolations_EmptyFileListIsNoop(t *testing.T) {
	fs := newFakeFS()
	fs.files[".stylelintignore"] = "src/a.css\n"
	lint := &fakeLint{}

	results, err := queryViolations(fs, lint, ".stylelintrc", ".stylelintignore", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(results) != 0 {
		t.Fatalf("expected no results, got %v", results)
	}

	if len(lint.calls) != 0 {
		t.Fatalf("expected engine not invoked, got %d calls", len(lint.calls))
	}

	if len(fs.renames) != 0 {
		t.Fatalf("expected manifest untouched, got renames %v", fs.renames)
	}
}

func TestQueryViolations_HidesAndRestoresManifest(t *testing.T) {
	fs := newFakeFS()
	fs.files[".stylelintignore"] = "src/a.css\n"
	lint := &fakeLint{
		responses: [][]m.LintResult{
			{{Path: "src/a.css", Errored: true}},
		},
	}

	_, err := queryViolations(fs, lint, ".stylelintrc", ".stylelintignore", []m.Path{"src/a.css"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(fs.renames) != 2 {
		t.Fatalf("expected hide and restore renames, got %v", fs.renames)
	}

	if !fs.Exists(".stylelintignore") {
		t.Fatalf("expected manifest restored to its original name")
	}

	if fs.Exists(".stylelintignore" + hiddenManifestSuffix) {
		t.Fatalf("expected hidden manifest gone after restore")
	}
}

func TestQueryViolations_RestoresManifestOnEngineFailure(t *testing.T) {
	fs := newFakeFS()
	fs.files[".stylelintignore"] = "src/a.css\n"
	lint := &fakeLint{err: errors.New("engine exploded")}

	_, err := queryViolations(fs, lint, ".stylelintrc", ".stylelintignore", []m.Path{"src/a.css"})
	if !errors.Is(err, ErrLintEngine) {
		t.Fatalf("expected ErrLintEngine, got %v", err)
	}

	if !fs.Exists(".stylelintignore") {
		t.Fatalf("expected manifest restored even when the engine fails")
	}
}

func TestQueryViolations_MissingManifestNeedsNoHiding(t *testing.T) {
	fs := newFakeFS()
	lint := &fakeLint{
		responses: [][]m.LintResult{{}},
	}

	_, err := queryViolations(fs, lint, ".stylelintrc", ".stylelintignore", []m.Path{"src/a.css"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(fs.renames) != 0 {
		t.Fatalf("expected no renames for a missing manifest, got %v", fs.renames)
	}
}

func TestManifestGuard_RestoreIsIdempotent(t *testing.T) {
	fs := newFakeFS()
	fs.files[".stylelintignore"] = "src/a.css\n"

	guard, err := hideManifest(fs, ".stylelintignore")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := guard.Restore(); err != nil {
		t.Fatalf("unexpected restore error: %v", err)
	}

	if err := guard.Restore(); err != nil {
		t.Fatalf("expected second restore to be a no-op, got %v", err)
	}

	if len(fs.renames) != 2 {
		t.Fatalf("expected exactly one hide and one restore, got %v", fs.renames)
	}
}

func TestTotalErrors(t *testing.T) {
	results := []m.LintResult{
		{Violations: []m.Violation{
			errorViolation(1, 1, "a"),
			{Severity: m.SeverityWarning, Line: 2, EndLine: 2, Rule: "w"},
		}},
		{Violations: []m.Violation{errorViolation(3, 3, "b")}},
	}

	if got := totalErrors(results); got != 2 {
		t.Fatalf("expected 2 errors, got %d", got)
	}
}
