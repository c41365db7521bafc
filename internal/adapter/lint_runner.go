package adapter

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"

	m "github.com/mouse-blink/lintsweep/internal/model"
)

// Stylelint exit codes: 0 clean, 2 lint problems found. Anything else is
// an invocation failure (missing binary, unparsable config, ...).
const stylelintExitProblems = 2

// LintRunnerAdapter abstracts the external lint engine so the domain
// layer can query violations without shelling out in tests.
type LintRunnerAdapter interface {
	// Lint runs the engine over files with the given configuration and
	// returns one result per linted file.
	Lint(configPath m.Path, files []m.Path) ([]m.LintResult, error)
}

// LocalStylelintAdapter invokes the stylelint CLI with its JSON formatter.
type LocalStylelintAdapter struct {
	command string
}

// NewLocalStylelintAdapter constructs an adapter that shells out to the
// `stylelint` binary on PATH.
func NewLocalStylelintAdapter() *LocalStylelintAdapter {
	return &LocalStylelintAdapter{command: "stylelint"}
}

// Lint runs stylelint over the provided files and decodes its JSON output.
func (a *LocalStylelintAdapter) Lint(configPath m.Path, files []m.Path) ([]m.LintResult, error) {
	if len(files) == 0 {
		return []m.LintResult{}, nil
	}

	args := []string{"--config", string(configPath), "--formatter", "json"}
	for _, file := range files {
		args = append(args, string(file))
	}

	cmd := exec.Command(a.command, args...)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) || exitErr.ExitCode() != stylelintExitProblems {
			return nil, fmt.Errorf("stylelint failed: %w: %s", err, stderr.String())
		}
	}

	results, err := parseStylelintOutput(stdout.Bytes())
	if err != nil {
		return nil, err
	}

	return normalizeResultPaths(results, files), nil
}

// normalizeResultPaths maps the engine's absolute source paths back to
// the paths the caller asked about, so lookups by input path succeed.
func normalizeResultPaths(results []m.LintResult, files []m.Path) []m.LintResult {
	byAbs := make(map[string]m.Path, len(files))

	for _, file := range files {
		if abs, err := filepath.Abs(string(file)); err == nil {
			byAbs[abs] = file
		}
	}

	for i, result := range results {
		if input, ok := byAbs[string(result.Path)]; ok {
			results[i].Path = input
		}
	}

	return results
}

// stylelint's JSON formatter emits one object per linted file.
type stylelintResult struct {
	Source   string             `json:"source"`
	Errored  bool               `json:"errored"`
	Warnings []stylelintWarning `json:"warnings"`
}

type stylelintWarning struct {
	Line     int    `json:"line"`
	EndLine  int    `json:"endLine"`
	Column   int    `json:"column"`
	Rule     string `json:"rule"`
	Severity string `json:"severity"`
	Text     string `json:"text"`
}

func parseStylelintOutput(out []byte) ([]m.LintResult, error) {
	var raw []stylelintResult

	if err := json.Unmarshal(out, &raw); err != nil {
		return nil, fmt.Errorf("decode stylelint output: %w", err)
	}

	results := make([]m.LintResult, 0, len(raw))

	for _, r := range raw {
		result := m.LintResult{
			Path:       m.Path(r.Source),
			Errored:    r.Errored,
			Violations: make([]m.Violation, 0, len(r.Warnings)),
		}

		for _, w := range r.Warnings {
			endLine := w.EndLine
			if endLine < w.Line {
				endLine = w.Line
			}

			result.Violations = append(result.Violations, m.Violation{
				Severity: m.Severity(w.Severity),
				Line:     w.Line,
				EndLine:  endLine,
				Rule:     w.Rule,
			})
		}

		results = append(results, result)
	}

	return results, nil
}
