package app

import (
	"context"
	"errors"
	"io/fs"
	"maps"
	"os"
	"slices"
	"time"
)

// Status describes how the dependencies recorded by the last compilation of a main document
// compare with the files on disk.
type Status struct {
	Main       string
	Recorded   bool
	CompiledAt time.Time
	Unchanged  []string
	Changed    []string
	Removed    []string
}

// UpToDate reports whether a compilation was recorded and none of its dependencies changed since.
func (s *Status) UpToDate() bool {
	return s.Recorded && len(s.Changed) == 0 && len(s.Removed) == 0
}

// Status re-fingerprints the recorded dependencies of the main document without compiling it.
func (a *App) Status(_ context.Context, opts Options) (*Status, error) {
	cfg, err := a.loadConfig(opts)
	if err != nil {
		return nil, err
	}

	project, err := a.resolver.ResolveProject(cfg.Input, cfg.Root)
	if err != nil {
		return nil, err
	}

	status := &Status{Main: project.Main.String()}

	info, err := a.store.Get(project.Root, status.Main)
	if err != nil {
		return nil, err
	}
	if info == nil {
		return status, nil
	}

	status.Recorded = true
	status.CompiledAt = info.CompiledAt

	for _, path := range slices.Sorted(maps.Keys(info.Fingerprints)) {
		if a.hasher.FingerprintFile(path).String() == info.Fingerprints[path] {
			status.Unchanged = append(status.Unchanged, path)
			continue
		}
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			status.Removed = append(status.Removed, path)
			continue
		}
		status.Changed = append(status.Changed, path)
	}

	return status, nil
}
