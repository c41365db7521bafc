// Package model defines the data structures for ignore-manifest maintenance.
package model

// Path represents a file system path.
type Path string

// IgnoreEntry is one retained pattern line from the ignore manifest
// together with the concrete files it currently resolves to.
type IgnoreEntry struct {
	// Pattern is the raw pattern line as it appears in the manifest.
	Pattern string
	// Line is the 1-indexed line number of the pattern in the manifest.
	Line int
	// Files holds the resolved file paths. The filter and query stages
	// remove files from this set; an entry whose set empties is dropped.
	Files []Path
}
