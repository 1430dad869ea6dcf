package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"go.trai.ch/quire/internal/core/domain"
	"go.trai.ch/zerr"
)

// Clean removes the workspace directory holding the build manifests of the project root.
// Without a configured root the working directory is cleaned.
func (a *App) Clean(_ context.Context, opts Options) error {
	cfg, err := a.loadConfig(opts)
	if err != nil {
		return err
	}

	root := cfg.Root
	if root == "" {
		root, err = a.getwd()
		if err != nil {
			root = "."
		}
	}

	path := filepath.Join(root, domain.QuireDirName)
	a.logger.Info(fmt.Sprintf("removing %s...", path))
	if err := os.RemoveAll(path); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove build manifests"), "path", path)
	}
	a.logger.Info(fmt.Sprintf("removed %s", path))
	return nil
}
