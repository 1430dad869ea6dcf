// Package config provides the configuration loader for quire.
package config

import (
	"errors"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"runtime"

	"go.trai.ch/quire/internal/core/domain"
	"go.trai.ch/quire/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Environment variables overriding the project file.
const (
	EnvRoot            = "QUIRE_ROOT"
	EnvPackagePath     = "QUIRE_PACKAGE_PATH"
	EnvSourceDateEpoch = "SOURCE_DATE_EPOCH"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader from defaults, an optional quire.yaml and the environment.
type Loader struct {
	logger ports.Logger
	getenv func(string) string
}

// NewLoader creates a new configuration loader reading the process environment.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{logger: logger, getenv: os.Getenv}
}

// WithEnv replaces the environment lookup.
func (l *Loader) WithEnv(getenv func(string) string) *Loader {
	l.getenv = getenv
	return l
}

// Load builds the configuration for cwd. Relative paths in the project file are taken from cwd.
func (l *Loader) Load(cwd string) (*domain.Config, error) {
	cfg := &domain.Config{
		Input:      domain.DefaultInput,
		Jobs:       runtime.NumCPU(),
		DepsFormat: domain.DepsJSON,
		Inputs:     make(map[string]string),
	}

	quirefile, err := l.readQuirefile(cwd)
	if err != nil {
		return nil, err
	}
	if quirefile != nil {
		if err := apply(cfg, quirefile, cwd); err != nil {
			return nil, err
		}
	}

	if err := l.applyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (l *Loader) readQuirefile(cwd string) (*Quirefile, error) {
	path := filepath.Join(cwd, domain.ProjectFileName)
	data, err := os.ReadFile(path) //nolint:gosec // path is the project file in the working directory
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			l.logger.Debug("no " + domain.ProjectFileName + " found, using defaults")
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var quirefile Quirefile
	if err := yaml.Unmarshal(data, &quirefile); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}
	return &quirefile, nil
}

func apply(cfg *domain.Config, q *Quirefile, cwd string) error {
	if q.Root != "" {
		cfg.Root = rebase(cwd, q.Root)
	}
	if q.Input != "" {
		cfg.Input = rebase(cwd, q.Input)
	}
	if q.Output != "" {
		cfg.Output = rebase(cwd, q.Output)
	}
	if q.PackagePath != "" {
		cfg.PackagePath = rebase(cwd, q.PackagePath)
	}
	if q.CreationTimestamp != "" {
		ts, err := ParseTimestamp(q.CreationTimestamp)
		if err != nil {
			return err
		}
		cfg.CreationTimestamp = &ts
	}
	maps.Copy(cfg.Inputs, q.Inputs)
	if q.Jobs > 0 {
		cfg.Jobs = q.Jobs
	}
	if q.Deps.Path != "" {
		cfg.DepsPath = rebase(cwd, q.Deps.Path)
	}
	if q.Deps.Format != "" {
		format, err := domain.ParseDepsFormat(q.Deps.Format)
		if err != nil {
			return err
		}
		cfg.DepsFormat = format
	}
	return nil
}

func (l *Loader) applyEnv(cfg *domain.Config) error {
	if root := l.getenv(EnvRoot); root != "" {
		cfg.Root = root
	}
	if packagePath := l.getenv(EnvPackagePath); packagePath != "" {
		cfg.PackagePath = packagePath
	}
	if epoch := l.getenv(EnvSourceDateEpoch); epoch != "" {
		ts, err := ParseTimestamp(epoch)
		if err != nil {
			return zerr.With(err, "env", EnvSourceDateEpoch)
		}
		cfg.CreationTimestamp = &ts
	}
	return nil
}

// rebase makes a project file path relative to cwd. "-" keeps meaning standard input or output.
func rebase(cwd, path string) string {
	if path == domain.StdinArg || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(cwd, path)
}
