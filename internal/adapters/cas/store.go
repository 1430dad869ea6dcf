// Package cas implements build manifest storage.
package cas

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.trai.ch/quire/internal/core/domain"
	"go.trai.ch/quire/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BuildInfoStore = (*Store)(nil)

// Store implements ports.BuildInfoStore using a file-per-main strategy below each project root.
type Store struct{}

// NewStore creates a new BuildInfoStore.
func NewStore() *Store {
	return &Store{}
}

// Get retrieves the manifest of main within root.
func (s *Store) Get(root, main string) (*domain.BuildInfo, error) {
	filename := domain.ManifestPath(root, main)
	//nolint:gosec // Path is constructed from the project root and a hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", filename)
	}

	var info domain.BuildInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", filename)
	}

	return &info, nil
}

// Put stores the manifest, replacing the previous one atomically.
func (s *Store) Put(root string, info domain.BuildInfo) error {
	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}

	filename := domain.ManifestPath(root, info.Main)
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", dir)
	}

	tmp, err := os.CreateTemp(dir, ".manifest-*")
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", dir)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", filename)
	}
	if err := tmp.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", filename)
	}
	if err := os.Chmod(tmp.Name(), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", filename)
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", filename)
	}

	return nil
}
