package domain

import "errors"

// Sentinel errors so callers can tell fatal-abort failures apart from
// partial-success outcomes.
var (
	// ErrManifestNotFound means the ignore manifest is absent. Fatal to
	// the whole operation.
	ErrManifestNotFound = errors.New("ignore manifest not found")

	// ErrConfigNotFound means the lint configuration is absent. Fatal.
	ErrConfigNotFound = errors.New("lint config not found")

	// ErrConfigParse means the lint configuration is malformed. Fatal.
	ErrConfigParse = errors.New("lint config is malformed")

	// ErrLintEngine means the external lint engine invocation failed.
	// Aborts the current batch; manifest restore still runs.
	ErrLintEngine = errors.New("lint engine invocation failed")
)
