package adapter

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "github.com/mouse-blink/lintsweep/internal/model"
)

const sampleStylelintOutput = `[
  {
    "source": "/project/src/a.css",
    "errored": true,
    "warnings": [
      {"line": 3, "endLine": 3, "column": 5, "rule": "color-no-hex", "severity": "error", "text": "Unexpected hex color"},
      {"line": 7, "column": 1, "rule": "max-nesting-depth", "severity": "warning", "text": "Too deep"}
    ]
  },
  {
    "source": "/project/src/b.css",
    "errored": false,
    "warnings": []
  }
]`

func TestParseStylelintOutput(t *testing.T) {
	results, err := parseStylelintOutput([]byte(sampleStylelintOutput))
	require.NoError(t, err)
	require.Len(t, results, 2)

	first := results[0]
	assert.Equal(t, m.Path("/project/src/a.css"), first.Path)
	assert.True(t, first.Errored)
	require.Len(t, first.Violations, 2)

	assert.Equal(t, m.SeverityError, first.Violations[0].Severity)
	assert.Equal(t, 3, first.Violations[0].Line)
	assert.Equal(t, 3, first.Violations[0].EndLine)
	assert.Equal(t, "color-no-hex", first.Violations[0].Rule)

	// endLine is optional in the formatter output; it defaults to line.
	assert.Equal(t, 7, first.Violations[1].EndLine)
	assert.Equal(t, m.SeverityWarning, first.Violations[1].Severity)

	second := results[1]
	assert.False(t, second.Errored)
	assert.Empty(t, second.Violations)
	assert.Equal(t, 1, first.ErrorCount())
}

func TestParseStylelintOutput_Malformed(t *testing.T) {
	_, err := parseStylelintOutput([]byte("not json"))
	assert.Error(t, err)
}

func TestNormalizeResultPaths(t *testing.T) {
	abs, err := filepath.Abs("src/a.css")
	require.NoError(t, err)

	results := []m.LintResult{
		{Path: m.Path(abs)},
		{Path: "/somewhere/else.css"},
	}

	normalized := normalizeResultPaths(results, []m.Path{"src/a.css"})

	assert.Equal(t, m.Path("src/a.css"), normalized[0].Path)
	assert.Equal(t, m.Path("/somewhere/else.css"), normalized[1].Path)
}

func TestLocalStylelintAdapter_EmptyFileList(t *testing.T) {
	adapter := NewLocalStylelintAdapter()

	results, err := adapter.Lint(".stylelintrc", nil)
	require.NoError(t, err)
	assert.Empty(t, results)
}
