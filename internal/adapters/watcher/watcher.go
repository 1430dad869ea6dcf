package watcher

import (
	"context"
	"iter"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/quire/internal/adapters/fs"
	"go.trai.ch/quire/internal/core/domain"
	"go.trai.ch/quire/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

const eventChannelBuffer = 100

// Watcher implements recursive file system watching using fsnotify.
type Watcher struct {
	walker *fs.Walker
	logger ports.Logger

	mu        sync.Mutex
	root      string
	fsWatcher *fsnotify.Watcher
	events    chan ports.WatchEvent
}

// NewWatcher creates a watcher that descends into the directories walker yields.
// The underlying fsnotify watcher is created by Start.
func NewWatcher(walker *fs.Walker, logger ports.Logger) *Watcher {
	return &Watcher{
		walker: walker,
		logger: logger,
		events: make(chan ports.WatchEvent, eventChannelBuffer),
	}
}

// Start begins watching root recursively. Events stop when ctx is canceled or Stop is called.
func (w *Watcher) Start(ctx context.Context, root string) error {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "root", root)
	}

	for dir := range w.walker.WalkDirs(root) {
		if err := fsWatcher.Add(dir); err != nil {
			_ = fsWatcher.Close()
			return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "dir", dir)
		}
	}

	w.mu.Lock()
	w.root = root
	w.fsWatcher = fsWatcher
	w.mu.Unlock()

	go w.processEvents(ctx, fsWatcher)

	return nil
}

// Stop stops the watcher and releases all resources.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.fsWatcher == nil {
		return nil
	}
	err := w.fsWatcher.Close()
	w.fsWatcher = nil
	return err
}

// Events returns an iterator of file system events. It ends once the watcher stops.
func (w *Watcher) Events() iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for event := range w.events {
			if !yield(event) {
				return
			}
		}
	}
}

func (w *Watcher) processEvents(ctx context.Context, fsWatcher *fsnotify.Watcher) {
	defer close(w.events)

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-fsWatcher.Events:
			if !ok {
				return
			}

			watchEvent, ok := convertEvent(event)
			if !ok {
				continue
			}

			if w.ignored(watchEvent.Path) {
				continue
			}

			select {
			case w.events <- watchEvent:
			case <-ctx.Done():
				return
			}

			// New directories are watched along with everything below them.
			if watchEvent.Operation == ports.OpCreate {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					for dir := range w.walker.WalkDirs(event.Name) {
						_ = fsWatcher.Add(dir)
					}
				}
			}

		case err, ok := <-fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watcher: file system error: " + err.Error())
		}
	}
}

// watchTree adds dir and the directories below it. Failures are logged so the
// remaining directories are still watched.
func (w *Watcher) watchTree(fsWatcher *fsnotify.Watcher, dir string) {
	for sub := range w.walker.WalkDirs(dir) {
		if err := fsWatcher.Add(sub); err != nil {
			w.logger.Warn("watcher: cannot watch " + sub + ": " + err.Error())
		}
	}
}

// ignored reports whether path lies in a skipped directory below the watched root,
// such as the workspace directory. Directories above the root are not considered.
func (w *Watcher) ignored(path string) bool {
	w.mu.Lock()
	root := w.root
	w.mu.Unlock()

	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	segments := strings.Split(filepath.Dir(rel), string(filepath.Separator))
	return slices.ContainsFunc(segments, w.walker.Skips)
}

func convertEvent(event fsnotify.Event) (ports.WatchEvent, bool) {
	var op ports.WatchOp
	switch {
	case event.Has(fsnotify.Write):
		op = ports.OpWrite
	case event.Has(fsnotify.Create):
		op = ports.OpCreate
	case event.Has(fsnotify.Remove):
		op = ports.OpRemove
	case event.Has(fsnotify.Rename):
		op = ports.OpRename
	default:
		return ports.WatchEvent{}, false
	}
	return ports.WatchEvent{Path: event.Name, Operation: op}, true
}
