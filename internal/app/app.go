// Package app implements the application layer for quire.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/quire/internal/adapters/config" //nolint:depguard // Flag parsing shares the project file rules
	"go.trai.ch/quire/internal/core/domain"
	"go.trai.ch/quire/internal/core/ports"
	"go.trai.ch/quire/internal/engine/clock"
	"go.trai.ch/quire/internal/engine/session"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	resolver     ports.ProjectResolver
	loaders      ports.LoaderFactory
	hasher       ports.Hasher
	compiler     ports.Compiler
	store        ports.BuildInfoStore
	output       ports.OutputWriter
	deps         ports.DepsWriter
	telemetry    ports.Telemetry
	watcher      ports.Watcher
	logger       ports.Logger

	clock    clockwork.Clock
	stdout   io.Writer
	getwd    func() (string, error)
	debounce time.Duration
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	resolver ports.ProjectResolver,
	loaders ports.LoaderFactory,
	hasher ports.Hasher,
	compiler ports.Compiler,
	store ports.BuildInfoStore,
	output ports.OutputWriter,
	deps ports.DepsWriter,
	telemetry ports.Telemetry,
	watcher ports.Watcher,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		resolver:     resolver,
		loaders:      loaders,
		hasher:       hasher,
		compiler:     compiler,
		store:        store,
		output:       output,
		deps:         deps,
		telemetry:    telemetry,
		watcher:      watcher,
		logger:       log,
		clock:        clockwork.NewRealClock(),
		stdout:       os.Stdout,
		getwd:        os.Getwd,
		debounce:     defaultDebounceWindow,
	}
}

// WithClock replaces the wall clock used for dates and manifest timestamps.
func (a *App) WithClock(c clockwork.Clock) *App {
	a.clock = c
	return a
}

// WithStdout replaces the writer used for "-" dependency files.
func (a *App) WithStdout(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithWorkdir fixes the directory the project file is looked up in.
func (a *App) WithWorkdir(dir string) *App {
	a.getwd = func() (string, error) { return dir, nil }
	return a
}

// WithDebounce sets the window in which watch mode coalesces file events.
func (a *App) WithDebounce(d time.Duration) *App {
	a.debounce = d
	return a
}

// ConfigureLogging switches the logger to JSON output or debug verbosity when it supports it.
func (a *App) ConfigureLogging(json, verbose bool) {
	if l, ok := a.logger.(interface{ SetJSON(bool) }); ok {
		l.SetJSON(json)
	}
	if l, ok := a.logger.(interface{ SetVerbose(bool) }); ok {
		l.SetVerbose(verbose)
	}
}

// Options holds the command-line overrides of the layered configuration.
// Empty fields keep the configured value.
type Options struct {
	Input             string
	Output            string
	Root              string
	PackagePath       string
	CreationTimestamp string
	Inputs            []string
	Jobs              int
	Deps              string
	DepsFormat        string
}

// Compile compiles the main document once.
func (a *App) Compile(ctx context.Context, opts Options) error {
	c, err := a.prepare(opts)
	if err != nil {
		return err
	}
	_, err = a.cycle(ctx, c)
	return err
}

// Deps compiles the main document without writing it and writes the dependency file,
// to standard output unless a path is configured.
func (a *App) Deps(ctx context.Context, opts Options) error {
	c, err := a.prepare(opts)
	if err != nil {
		return err
	}
	c.cfg.Output = ""
	if c.cfg.DepsPath == "" {
		c.cfg.DepsPath = domain.StdinArg
	}
	_, err = a.cycle(ctx, c)
	return err
}

// compilation is the state carried across the cycles of one main document.
type compilation struct {
	cfg     *domain.Config
	project domain.Project
	session *session.Session
	deps    map[string]struct{}
}

// prepare layers opts over the configuration and opens a session for the resolved project.
func (a *App) prepare(opts Options) (*compilation, error) {
	cfg, err := a.loadConfig(opts)
	if err != nil {
		return nil, err
	}

	project, err := a.resolver.ResolveProject(cfg.Input, cfg.Root)
	if err != nil {
		return nil, err
	}

	clk := clock.NewLazy(a.clock)
	if cfg.CreationTimestamp != nil {
		clk = clock.NewFixed(*cfg.CreationTimestamp)
	}

	s := session.New(project, a.loaders.NewLoader(project.Root, cfg.PackagePath), a.hasher, session.Options{
		Clock:  clk,
		Inputs: cfg.Inputs,
	})

	a.logger.Debug(fmt.Sprintf("compiling %s in %s", project.Main, project.Root))

	return &compilation{cfg: cfg, project: project, session: s}, nil
}

func (a *App) loadConfig(opts Options) (*domain.Config, error) {
	cwd, err := a.getwd()
	if err != nil {
		cwd = "."
	}

	cfg, err := a.configLoader.Load(cwd)
	if err != nil {
		return nil, err
	}

	if opts.Input != "" {
		cfg.Input = opts.Input
	}
	if opts.Output != "" {
		cfg.Output = opts.Output
	}
	if opts.Root != "" {
		cfg.Root = opts.Root
	}
	if opts.PackagePath != "" {
		cfg.PackagePath = opts.PackagePath
	}
	if opts.CreationTimestamp != "" {
		ts, err := config.ParseTimestamp(opts.CreationTimestamp)
		if err != nil {
			return nil, err
		}
		cfg.CreationTimestamp = &ts
	}
	if len(opts.Inputs) > 0 {
		inputs, err := config.ParseInputPairs(opts.Inputs)
		if err != nil {
			return nil, err
		}
		if cfg.Inputs == nil {
			cfg.Inputs = make(map[string]string, len(inputs))
		}
		maps.Copy(cfg.Inputs, inputs)
	}
	if opts.Jobs > 0 {
		cfg.Jobs = opts.Jobs
	}
	if opts.Deps != "" {
		cfg.DepsPath = opts.Deps
	}
	if opts.DepsFormat != "" {
		format, err := domain.ParseDepsFormat(opts.DepsFormat)
		if err != nil {
			return nil, err
		}
		cfg.DepsFormat = format
	}

	cfg.Input = anchor(cwd, cfg.Input)
	cfg.Output = anchor(cwd, cfg.Output)
	cfg.Root = anchor(cwd, cfg.Root)
	cfg.PackagePath = anchor(cwd, cfg.PackagePath)
	cfg.DepsPath = anchor(cwd, cfg.DepsPath)

	return cfg, nil
}

// anchor makes a relative path absolute against cwd. "-" keeps meaning standard input or output.
func anchor(cwd, path string) string {
	if path == "" || path == domain.StdinArg || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(cwd, path)
}

// cycle runs one compilation: it resets the session, compiles, writes the output and the
// dependency file, and records the manifest.
func (a *App) cycle(ctx context.Context, c *compilation) (domain.CycleStatus, error) {
	c.session.Reset()

	ctx, vertex := a.telemetry.Record(ctx, "compile "+c.project.Main.String())

	out, err := a.compiler.Compile(ctx, c.session, c.cfg.Jobs)
	c.deps = setOf(c.session.Dependencies())
	if err != nil {
		vertex.Complete(err)
		return domain.CycleFailed, errors.Join(domain.ErrCompileFailed, err)
	}

	if c.cfg.Output != "" {
		if err := a.output.Write(c.cfg.Output, out); err != nil {
			vertex.Complete(err)
			return domain.CycleFailed, err
		}
	}

	inputs := slices.Collect(c.session.Dependencies())
	if c.cfg.DepsPath != "" {
		if err := a.writeDeps(c.cfg, inputs); err != nil {
			vertex.Complete(err)
			return domain.CycleFailed, err
		}
	}

	status := domain.CycleCompleted
	if a.unchanged(c) {
		status = domain.CycleCached
		vertex.Cached()
	}

	if err := a.store.Put(c.project.Root, domain.BuildInfo{
		Main:         c.project.Main.String(),
		CompiledAt:   a.clock.Now().UTC(),
		Dependencies: inputs,
		Fingerprints: c.session.DependencyFingerprints(),
	}); err != nil {
		a.logger.Warn("build manifest not updated: " + err.Error())
	}

	a.logger.Debug(fmt.Sprintf("%s: %d dependencies, %d resources cached",
		c.project.Main, len(inputs), c.session.Resources()))
	vertex.Complete(nil)

	return status, nil
}

// unchanged reports whether the dependencies of the cycle equal the recorded manifest.
func (a *App) unchanged(c *compilation) bool {
	prev, err := a.store.Get(c.project.Root, c.project.Main.String())
	if err != nil {
		a.logger.Warn("build manifest unreadable: " + err.Error())
		return false
	}
	return prev != nil && !prev.Changed(c.session.DependencyFingerprints())
}

func (a *App) writeDeps(cfg *domain.Config, inputs []string) error {
	var outputs []string
	if cfg.Output != "" && cfg.Output != domain.StdinArg {
		outputs = []string{cfg.Output}
	}

	if cfg.DepsPath == domain.StdinArg {
		return a.deps.Write(a.stdout, cfg.DepsFormat, inputs, outputs)
	}

	f, err := os.Create(cfg.DepsPath)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", cfg.DepsPath)
	}
	if err := a.deps.Write(f, cfg.DepsFormat, inputs, outputs); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrOutputWriteFailed.Error()), "path", cfg.DepsPath)
	}
	return nil
}

func setOf[T comparable](seq iter.Seq[T]) map[T]struct{} {
	out := make(map[T]struct{})
	for v := range seq {
		out[v] = struct{}{}
	}
	return out
}
