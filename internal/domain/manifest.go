// Package domain implements the ignore-manifest maintenance workflow:
// reading and compacting the manifest, and replacing it with inline
// suppression comments.
package domain

import (
	"fmt"
	"path"
	"strings"

	"github.com/mouse-blink/lintsweep/internal/adapter"
	m "github.com/mouse-blink/lintsweep/internal/model"
)

const (
	cssExt = ".css"
	// Directory patterns are expanded to every stylesheet beneath them.
	recursiveCSSGlob = "**/*.css"
)

// readManifest parses the manifest at path into entries. Blank lines and
// `#` comments are skipped; a line that does not name a `.css` file is
// treated as a directory pattern and expanded recursively; lines that
// resolve to no existing files are dropped.
func readManifest(fs adapter.ManifestFSAdapter, manifest m.Path) ([]m.IgnoreEntry, error) {
	if !fs.Exists(manifest) {
		return nil, fmt.Errorf("%w: %s", ErrManifestNotFound, manifest)
	}

	content, err := fs.ReadFile(manifest)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", manifest, err)
	}

	var entries []m.IgnoreEntry

	for i, raw := range splitLines(string(content)) {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}

		pattern := trimmed
		if !strings.HasSuffix(pattern, cssExt) {
			pattern = path.Join(pattern, recursiveCSSGlob)
		}

		files, err := fs.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("resolve pattern %q: %w", trimmed, err)
		}

		if len(files) == 0 {
			continue
		}

		entries = append(entries, m.IgnoreEntry{
			Pattern: raw,
			Line:    i + 1,
			Files:   files,
		})
	}

	return entries, nil
}

// rewriteManifest writes the manifest back keeping every non-pattern line
// untouched and only the pattern lines whose entries were retained. A
// manifest whose entries all survive is rewritten byte-for-byte.
func rewriteManifest(fs adapter.ManifestFSAdapter, manifest m.Path, retained []m.IgnoreEntry) error {
	content, err := fs.ReadFile(manifest)
	if err != nil {
		return fmt.Errorf("read manifest %s: %w", manifest, err)
	}

	keep := make(map[int]struct{}, len(retained))
	for _, entry := range retained {
		keep[entry.Line] = struct{}{}
	}

	var kept []string

	for i, raw := range splitLines(string(content)) {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			kept = append(kept, raw)
			continue
		}

		if _, ok := keep[i+1]; ok {
			kept = append(kept, raw)
		}
	}

	return fs.WriteFile(manifest, []byte(joinLines(kept)), 0o600)
}

// truncateManifest empties the manifest once every ignored file carries
// inline suppressions.
func truncateManifest(fs adapter.ManifestFSAdapter, manifest m.Path) error {
	return fs.WriteFile(manifest, []byte{}, 0o600)
}

// entryFiles flattens entries into a deduplicated, order-preserving file
// list.
func entryFiles(entries []m.IgnoreEntry) []m.Path {
	seen := make(map[m.Path]struct{})

	var files []m.Path

	for _, entry := range entries {
		for _, file := range entry.Files {
			if _, ok := seen[file]; ok {
				continue
			}

			seen[file] = struct{}{}
			files = append(files, file)
		}
	}

	return files
}

func splitLines(text string) []string {
	return strings.Split(text, "\n")
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
