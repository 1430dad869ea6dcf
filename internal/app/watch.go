package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.trai.ch/quire/internal/adapters/watcher" //nolint:depguard // Debouncing is shared with the watcher adapter
)

const defaultDebounceWindow = watcher.DefaultDebounceWindow

// Watch compiles the main document and recompiles it whenever one of its dependencies
// changes, until ctx is canceled. Compilation errors are logged and do not stop watching.
func (a *App) Watch(ctx context.Context, opts Options) error {
	c, err := a.prepare(opts)
	if err != nil {
		return err
	}

	failed := a.watchCycle(ctx, c)

	if err := a.watcher.Start(ctx, c.project.Root); err != nil {
		return err
	}

	a.logger.Info("watching " + c.project.Root + " for changes")

	var pending changeSet
	debouncer := watcher.NewDebouncer(a.debounce, pending.add)

	var wg sync.WaitGroup
	wg.Go(func() {
		for event := range a.watcher.Events() {
			debouncer.Add(event.Path)
		}
	})
	defer wg.Wait()
	defer func() { _ = a.watcher.Stop() }()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-pending.ready():
			paths := pending.take()
			if !failed && !c.dependsOnAny(paths) {
				a.logger.Debug(fmt.Sprintf("ignoring %d changed paths outside the dependencies", len(paths)))
				continue
			}
			failed = a.watchCycle(ctx, c)
		}
	}
}

// watchCycle runs a cycle, logging instead of returning its error. It reports whether the cycle failed.
func (a *App) watchCycle(ctx context.Context, c *compilation) bool {
	start := a.clock.Now()
	status, err := a.cycle(ctx, c)
	if err != nil {
		a.logger.Error(err)
		return true
	}
	a.logger.Debug(fmt.Sprintf("cycle %s in %s", status, a.clock.Since(start).Round(time.Millisecond)))
	return false
}

func (c *compilation) dependsOnAny(paths []string) bool {
	for _, p := range paths {
		if _, ok := c.deps[p]; ok {
			return true
		}
	}
	return false
}

// changeSet accumulates debounced paths until the watch loop takes them.
type changeSet struct {
	mu     sync.Mutex
	paths  []string
	signal chan struct{}
}

func (s *changeSet) ready() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.signal == nil {
		s.signal = make(chan struct{}, 1)
	}
	return s.signal
}

func (s *changeSet) add(paths []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paths = append(s.paths, paths...)
	if s.signal == nil {
		s.signal = make(chan struct{}, 1)
	}
	select {
	case s.signal <- struct{}{}:
	default:
	}
}

func (s *changeSet) take() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	paths := s.paths
	s.paths = nil
	return paths
}
