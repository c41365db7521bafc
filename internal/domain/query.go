package domain

import (
	"fmt"

	"github.com/mouse-blink/lintsweep/internal/adapter"
	m "github.com/mouse-blink/lintsweep/internal/model"
)

// The lint engine silently excludes files still listed in its ignore
// manifest, so the manifest is renamed out of the way for the duration of
// every query.
const hiddenManifestSuffix = ".lintsweep.bak"

// manifestGuard hides the manifest and guarantees it is renamed back
// exactly once, on every exit path.
type manifestGuard struct {
	fs       adapter.ManifestFSAdapter
	original m.Path
	hidden   m.Path
	restored bool
}

// hideManifest renames the manifest aside. A missing manifest needs no
// hiding; the returned guard is then a no-op.
func hideManifest(fs adapter.ManifestFSAdapter, manifest m.Path) (*manifestGuard, error) {
	guard := &manifestGuard{
		fs:       fs,
		original: manifest,
		hidden:   manifest + hiddenManifestSuffix,
	}

	if !fs.Exists(manifest) {
		guard.restored = true

		return guard, nil
	}

	if err := fs.Rename(manifest, guard.hidden); err != nil {
		return nil, fmt.Errorf("hide manifest %s: %w", manifest, err)
	}

	return guard, nil
}

// Restore renames the manifest back. Safe to call more than once.
func (g *manifestGuard) Restore() error {
	if g.restored {
		return nil
	}

	g.restored = true

	if err := g.fs.Rename(g.hidden, g.original); err != nil {
		return fmt.Errorf("restore manifest %s: %w", g.original, err)
	}

	return nil
}

// queryViolations runs the lint engine over files with the manifest
// hidden. An empty file list is a valid no-op and never touches the
// manifest or the engine.
func queryViolations(
	fs adapter.ManifestFSAdapter,
	lint adapter.LintRunnerAdapter,
	config m.Path,
	manifest m.Path,
	files []m.Path,
) (results []m.LintResult, err error) {
	if len(files) == 0 {
		return []m.LintResult{}, nil
	}

	guard, err := hideManifest(fs, manifest)
	if err != nil {
		return nil, err
	}

	defer func() {
		if rerr := guard.Restore(); rerr != nil && err == nil {
			results = nil
			err = rerr
		}
	}()

	results, err = lint.Lint(config, files)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLintEngine, err)
	}

	return results, nil
}

// totalErrors sums error-severity violations across results.
func totalErrors(results []m.LintResult) int {
	total := 0

	for _, result := range results {
		total += result.ErrorCount()
	}

	return total
}

// resultsByPath indexes results for per-entry lookups.
func resultsByPath(results []m.LintResult) map[m.Path]m.LintResult {
	byPath := make(map[m.Path]m.LintResult, len(results))

	for _, result := range results {
		byPath[result.Path] = result
	}

	return byPath
}
