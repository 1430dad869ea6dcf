// Package fs provides file system adapters for loading, fingerprinting and walking project files.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
	"slices"
)

// DefaultSkipDirs are directories never descended into.
var DefaultSkipDirs = []string{".git", ".jj", "node_modules", ".quire"}

// Walker provides directory walking functionality.
type Walker struct {
	skip []string
}

// NewWalker creates a new Walker skipping DefaultSkipDirs and any extra directory names.
func NewWalker(extra ...string) *Walker {
	return &Walker{skip: append(slices.Clone(DefaultSkipDirs), extra...)}
}

// WalkDirs yields root and every directory below it, skipping ignored directories.
// Directories that cannot be read are skipped.
func (w *Walker) WalkDirs(root string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return nil //nolint:nilerr // Unreadable directories are skipped
			}
			if !d.IsDir() {
				return nil
			}
			if path != root && w.Skips(d.Name()) {
				return filepath.SkipDir
			}
			if !yield(path) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// Skips reports whether a directory with the given name is ignored.
func (w *Walker) Skips(name string) bool {
	return slices.Contains(w.skip, name)
}
