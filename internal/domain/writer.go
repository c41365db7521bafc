package domain

import (
	"fmt"

	"github.com/mouse-blink/lintsweep/internal/adapter"
	m "github.com/mouse-blink/lintsweep/internal/model"
)

// applyPlan splices suppression comments into lines. Plan line numbers
// refer to the original file, so a running counter of lines inserted by
// earlier entries offsets every index. Entries must arrive in ascending
// start-line order; buildPlan guarantees that.
func applyPlan(lines []string, plan m.SuppressionPlan, mode m.SuppressionMode) []string {
	inserted := 0

	for _, entry := range plan {
		switch mode {
		case m.ModeBlock:
			// Both indices are computed from the pre-entry counter. The
			// enable insertion happens after the disable is already in
			// the buffer, which is exactly what end+1 accounts for: the
			// disable shifted every line from start onward down by one.
			lines = insertLine(lines, entry.StartLine-1+inserted, disableComment(entry.Rules))
			lines = insertLine(lines, entry.EndLine+1+inserted, enableComment(entry.Rules))
			inserted += 2
		default:
			lines = insertLine(lines, entry.StartLine-1+inserted, disableNextLineComment(entry.Rules))
			inserted++
		}
	}

	return lines
}

func insertLine(lines []string, index int, text string) []string {
	if index < 0 {
		index = 0
	}

	if index > len(lines) {
		index = len(lines)
	}

	out := make([]string, 0, len(lines)+1)
	out = append(out, lines[:index]...)
	out = append(out, text)
	out = append(out, lines[index:]...)

	return out
}

// suppressFile reads file, applies the plan and persists the mutated
// line sequence. Returns the number of lines inserted.
func suppressFile(
	fs adapter.ManifestFSAdapter,
	file m.Path,
	plan m.SuppressionPlan,
	mode m.SuppressionMode,
) (int, error) {
	if len(plan) == 0 {
		return 0, nil
	}

	content, err := fs.ReadFile(file)
	if err != nil {
		return 0, fmt.Errorf("read %s: %w", file, err)
	}

	lines := splitLines(string(content))
	mutated := applyPlan(lines, plan, mode)

	if err := fs.WriteFile(file, []byte(joinLines(mutated)), 0o600); err != nil {
		return 0, fmt.Errorf("write %s: %w", file, err)
	}

	return len(mutated) - len(lines), nil
}
