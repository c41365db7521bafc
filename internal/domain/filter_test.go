package domain

import (
	"reflect"
	"testing"

	m "github.com/mouse-blink/lintsweep/internal/model"
)

func TestHasBlanketDisable(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    bool
	}{
		{"plain marker", "/* stylelint-disable */\nbody {}\n", true},
		{"no internal spaces", "/*stylelint-disable*/\nbody {}\n", true},
		{"extra internal spaces", "/*   stylelint-disable   */\nbody {}\n", true},
		{"leading blank lines", "\n\n  /* stylelint-disable */\nbody {}\n", true},
		{"scoped disable is not blanket", "/* stylelint-disable color-no-hex */\nbody {}\n", false},
		{"marker not on first line", "body {}\n/* stylelint-disable */\n", false},
		{"empty file", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fs := newFakeFS()
			fs.files["a.css"] = tc.content

			got, err := hasBlanketDisable(fs, "a.css")
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if got != tc.want {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestFilterDisabled_RemovesDisabledFilesAndEmptyEntries(t *testing.T) {
	fs := newFakeFS()
	fs.files["disabled.css"] = "/* stylelint-disable */\nbody {}\n"
	fs.files["active.css"] = "body {}\n"

	entries := []m.IgnoreEntry{
		{Pattern: "a", Files: []m.Path{"disabled.css", "active.css"}},
		{Pattern: "b", Files: []m.Path{"disabled.css"}},
	}

	filtered := filterDisabled(fs, entries)

	if len(filtered) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(filtered))
	}

	if !reflect.DeepEqual(filtered[0].Files, []m.Path{"active.css"}) {
		t.Fatalf("expected only active.css, got %v", filtered[0].Files)
	}
}

func TestFilterDisabled_Idempotent(t *testing.T) {
	fs := newFakeFS()
	fs.files["disabled.css"] = "/* stylelint-disable */\n"
	fs.files["active.css"] = "body {}\n"

	entries := []m.IgnoreEntry{
		{Pattern: "a", Files: []m.Path{"disabled.css", "active.css"}},
	}

	once := filterDisabled(fs, entries)
	twice := filterDisabled(fs, once)

	if !reflect.DeepEqual(once, twice) {
		t.Fatalf("expected idempotent filtering: once=%v twice=%v", once, twice)
	}
}

func TestFilterDisabled_KeepsUnreadableFiles(t *testing.T) {
	fs := newFakeFS()

	entries := []m.IgnoreEntry{
		{Pattern: "a", Files: []m.Path{"missing.css"}},
	}

	filtered := filterDisabled(fs, entries)

	if len(filtered) != 1 || filtered[0].Files[0] != "missing.css" {
		t.Fatalf("expected unreadable file kept for the lint stage, got %v", filtered)
	}
}
