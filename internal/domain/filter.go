package domain

import (
	"regexp"
	"strings"

	"github.com/mouse-blink/lintsweep/internal/adapter"
	m "github.com/mouse-blink/lintsweep/internal/model"
)

// A file whose first non-blank line is a blanket disable marker is
// already fully suppressed and must not be processed again. Internal
// whitespace around the keyword is tolerated.
var disableMarkerRe = regexp.MustCompile(`^/\*\s*stylelint-disable\s*\*/$`)

// hasBlanketDisable reports whether the file starts with a blanket
// disable comment. Only the first non-blank line is inspected.
func hasBlanketDisable(fs adapter.ManifestFSAdapter, file m.Path) (bool, error) {
	line, err := fs.FirstNonBlankLine(file)
	if err != nil {
		return false, err
	}

	return disableMarkerRe.MatchString(strings.TrimSpace(line)), nil
}

// filterDisabled removes blanket-disabled files from every entry and
// drops entries whose file set empties. Files that cannot be read stay
// in the set so the lint stage can report them.
func filterDisabled(fs adapter.ManifestFSAdapter, entries []m.IgnoreEntry) []m.IgnoreEntry {
	var filtered []m.IgnoreEntry

	for _, entry := range entries {
		var files []m.Path

		for _, file := range entry.Files {
			disabled, err := hasBlanketDisable(fs, file)
			if err != nil || !disabled {
				files = append(files, file)
			}
		}

		if len(files) == 0 {
			continue
		}

		entry.Files = files
		filtered = append(filtered, entry)
	}

	return filtered
}
