package model

// LintConfig is the parsed lint engine configuration. The engine consumes
// the configuration file verbatim; the parsed form exists to validate the
// file and to surface the rule set to the UI.
type LintConfig map[string]any
