package adapter

import (
	"fmt"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/lintsweep/internal/model"
)

// ConfigAdapter loads and validates the lint engine configuration. The
// engine itself consumes the file verbatim; loading it here surfaces
// malformed configurations before any manifest work starts.
type ConfigAdapter interface {
	Load(path m.Path) (m.LintConfig, error)
}

// LocalConfigAdapter parses stylelint rc files. YAML is a superset of
// JSON, so both the JSON and YAML rc formats decode here.
type LocalConfigAdapter struct {
	fs ManifestFSAdapter
}

// NewLocalConfigAdapter constructs a config adapter over the given
// filesystem adapter.
func NewLocalConfigAdapter(fs ManifestFSAdapter) *LocalConfigAdapter {
	return &LocalConfigAdapter{fs: fs}
}

// Load reads and decodes the configuration file at path.
func (a *LocalConfigAdapter) Load(path m.Path) (m.LintConfig, error) {
	content, err := a.fs.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config m.LintConfig

	if err := yaml.Unmarshal(content, &config); err != nil {
		return nil, fmt.Errorf("parse lint config %s: %w", path, err)
	}

	return config, nil
}
