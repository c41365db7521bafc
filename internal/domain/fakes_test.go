package domain

import (
	"fmt"
	"os"
	"strings"

	"github.com/mouse-blink/lintsweep/internal/controller"
	m "github.com/mouse-blink/lintsweep/internal/model"
)

// fakeFS is an in-memory ManifestFSAdapter for workflow tests.
type fakeFS struct {
	files    map[m.Path]string
	globs    map[string][]m.Path
	renames  [][2]m.Path
	readErr  map[m.Path]error
	writeErr map[m.Path]error
}

func newFakeFS() *fakeFS {
	return &fakeFS{
		files:    make(map[m.Path]string),
		globs:    make(map[string][]m.Path),
		readErr:  make(map[m.Path]error),
		writeErr: make(map[m.Path]error),
	}
}

func (f *fakeFS) Exists(path m.Path) bool {
	_, ok := f.files[path]

	return ok
}

func (f *fakeFS) FileInfo(_ m.Path) (os.FileInfo, error) {
	return nil, fmt.Errorf("not supported")
}

func (f *fakeFS) ReadFile(path m.Path) ([]byte, error) {
	if err := f.readErr[path]; err != nil {
		return nil, err
	}

	content, ok := f.files[path]
	if !ok {
		return nil, os.ErrNotExist
	}

	return []byte(content), nil
}

func (f *fakeFS) WriteFile(path m.Path, content []byte, _ os.FileMode) error {
	if err := f.writeErr[path]; err != nil {
		return err
	}

	f.files[path] = string(content)

	return nil
}

func (f *fakeFS) Rename(oldPath, newPath m.Path) error {
	content, ok := f.files[oldPath]
	if !ok {
		return os.ErrNotExist
	}

	delete(f.files, oldPath)
	f.files[newPath] = content
	f.renames = append(f.renames, [2]m.Path{oldPath, newPath})

	return nil
}

func (f *fakeFS) Glob(pattern string) ([]m.Path, error) {
	return f.globs[pattern], nil
}

func (f *fakeFS) FirstNonBlankLine(path m.Path) (string, error) {
	content, err := f.ReadFile(path)
	if err != nil {
		return "", err
	}

	for _, line := range strings.Split(string(content), "\n") {
		if strings.TrimSpace(line) != "" {
			return line, nil
		}
	}

	return "", nil
}

func (f *fakeFS) MkdirAll(_ m.Path, _ os.FileMode) error {
	return nil
}

// fakeLint returns queued responses and records every call.
type fakeLint struct {
	calls     [][]m.Path
	responses [][]m.LintResult
	err       error
}

func (l *fakeLint) Lint(_ m.Path, files []m.Path) ([]m.LintResult, error) {
	l.calls = append(l.calls, files)

	if l.err != nil {
		return nil, l.err
	}

	if len(l.responses) == 0 {
		return []m.LintResult{}, nil
	}

	response := l.responses[0]
	l.responses = l.responses[1:]

	return response, nil
}

// fakeConfig accepts every configuration.
type fakeConfig struct {
	err error
}

func (c *fakeConfig) Load(_ m.Path) (m.LintConfig, error) {
	if c.err != nil {
		return nil, c.err
	}

	return m.LintConfig{"rules": map[string]any{}}, nil
}

// fakeReportStore records saved reports.
type fakeReportStore struct {
	saved []m.RunReport
}

func (s *fakeReportStore) SaveReport(_ m.Path, report m.RunReport) error {
	s.saved = append(s.saved, report)

	return nil
}

func (s *fakeReportStore) LoadReports(_ m.Path) ([]m.RunReport, error) {
	return s.saved, nil
}

// fakeUI records display calls.
type fakeUI struct {
	summaries []m.RunReport
	results   []string
	entries   []m.IgnoreEntry
	counts    map[m.Path]int
}

func (u *fakeUI) Start(_ ...controller.StartOption) error { return nil }

func (u *fakeUI) Close() {}

func (u *fakeUI) DisplayEntries(entries []m.IgnoreEntry, counts map[m.Path]int) error {
	u.entries = entries
	u.counts = counts

	return nil
}

func (u *fakeUI) DisplayFileStart(_ m.Path) {}

func (u *fakeUI) DisplayFileResult(path m.Path, inserted int, err error) {
	status := "ok"
	if err != nil {
		status = "fail"
	}

	u.results = append(u.results, fmt.Sprintf("%s %s %d", status, path, inserted))
}

func (u *fakeUI) DisplaySummary(report m.RunReport) error {
	u.summaries = append(u.summaries, report)

	return nil
}

func errorViolation(line, endLine int, rule string) m.Violation {
	return m.Violation{Severity: m.SeverityError, Line: line, EndLine: endLine, Rule: rule}
}
