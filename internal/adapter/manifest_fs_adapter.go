// Package adapter contains infrastructure adapters for the lintsweep CLI.
package adapter

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	m "github.com/mouse-blink/lintsweep/internal/model"
)

// ManifestFSAdapter abstracts the filesystem operations the domain layer
// relies on when reading manifests and rewriting ignored files. It hides
// direct `os` access so workflow logic can be tested without touching the
// disk.
type ManifestFSAdapter interface {
	// Exists reports whether a file or directory is present at path.
	Exists(path m.Path) bool

	// FileInfo returns metadata for a path.
	FileInfo(path m.Path) (os.FileInfo, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to a file with the given permissions,
	// overwriting any previous content.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// Rename moves a file from oldPath to newPath.
	Rename(oldPath, newPath m.Path) error

	// Glob expands a glob pattern (doublestar semantics, so ** is
	// supported) into the existing regular files it matches.
	Glob(pattern string) ([]m.Path, error)

	// FirstNonBlankLine returns the first line of the file whose trimmed
	// content is non-empty. Reading stops as soon as that line is found.
	// An empty string with a nil error means the file has no such line.
	FirstNonBlankLine(path m.Path) (string, error)

	// MkdirAll creates a directory and any missing parents.
	MkdirAll(path m.Path, perm os.FileMode) error
}

// LocalManifestFSAdapter is the concrete ManifestFSAdapter backed by the
// local filesystem.
type LocalManifestFSAdapter struct{}

// NewLocalManifestFSAdapter constructs a LocalManifestFSAdapter ready to
// be wired into the workflow.
func NewLocalManifestFSAdapter() *LocalManifestFSAdapter {
	return &LocalManifestFSAdapter{}
}

// Exists reports whether path is present on disk.
func (a *LocalManifestFSAdapter) Exists(path m.Path) bool {
	_, err := os.Stat(string(path))

	return err == nil
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalManifestFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// ReadFile loads file contents from disk.
func (a *LocalManifestFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalManifestFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}

// Rename moves a file from oldPath to newPath.
func (a *LocalManifestFSAdapter) Rename(oldPath, newPath m.Path) error {
	return os.Rename(string(oldPath), string(newPath))
}

// Glob expands pattern and returns the matching regular files.
func (a *LocalManifestFSAdapter) Glob(pattern string) ([]m.Path, error) {
	matches, err := doublestar.FilepathGlob(filepath.Clean(pattern))
	if err != nil {
		return nil, err
	}

	var files []m.Path

	for _, match := range matches {
		info, err := os.Stat(match)
		if err != nil || info.IsDir() {
			continue
		}

		files = append(files, m.Path(match))
	}

	return files, nil
}

// FirstNonBlankLine scans the file and returns the first non-blank line.
func (a *LocalManifestFSAdapter) FirstNonBlankLine(path m.Path) (string, error) {
	f, err := os.Open(string(path))
	if err != nil {
		return "", err
	}

	defer func() {
		_ = f.Close()
	}()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) != "" {
			return line, nil
		}
	}

	return "", scanner.Err()
}

// MkdirAll creates a directory and any missing parents.
func (a *LocalManifestFSAdapter) MkdirAll(path m.Path, perm os.FileMode) error {
	return os.MkdirAll(string(path), perm)
}
