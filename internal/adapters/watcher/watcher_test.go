package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/quire/internal/adapters/fs"
	"go.trai.ch/quire/internal/adapters/watcher"
	"go.trai.ch/quire/internal/core/ports"
	"go.trai.ch/quire/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func startWatcher(t *testing.T, root string) (<-chan ports.WatchEvent, *watcher.Watcher) {
	t.Helper()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	w := watcher.NewWatcher(fs.NewWalker(), log)
	ctx, cancel := context.WithCancel(t.Context())
	require.NoError(t, w.Start(ctx, root))
	t.Cleanup(func() {
		cancel()
		_ = w.Stop()
	})

	events := make(chan ports.WatchEvent, 64)
	go func() {
		defer close(events)
		for ev := range w.Events() {
			events <- ev
		}
	}()
	return events, w
}

// waitFor returns the first event for path, failing after a timeout.
func waitFor(t *testing.T, events <-chan ports.WatchEvent, path string) ports.WatchEvent {
	t.Helper()

	timeout := time.After(5 * time.Second)
	for {
		select {
		case ev, ok := <-events:
			require.True(t, ok, "watcher stopped before an event for %s", path)
			if ev.Path == path {
				return ev
			}
		case <-timeout:
			require.FailNow(t, "no event for "+path)
		}
	}
}

func TestWatcher_ReportsWrites(t *testing.T) {
	root := t.TempDir()
	file := filepath.Join(root, "main.qd")
	require.NoError(t, os.WriteFile(file, []byte("a"), 0o600))

	events, _ := startWatcher(t, root)

	require.NoError(t, os.WriteFile(file, []byte("b"), 0o600))

	ev := waitFor(t, events, file)
	assert.Equal(t, ports.OpWrite, ev.Operation)
}

func TestWatcher_WatchesNewDirectories(t *testing.T) {
	root := t.TempDir()
	events, _ := startWatcher(t, root)

	dir := filepath.Join(root, "chapters")
	require.NoError(t, os.Mkdir(dir, 0o750))
	ev := waitFor(t, events, dir)
	assert.Equal(t, ports.OpCreate, ev.Operation)

	file := filepath.Join(dir, "one.qd")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))
	waitFor(t, events, file)
}

func TestWatcher_IgnoresWorkspaceDirectory(t *testing.T) {
	root := t.TempDir()
	workspace := filepath.Join(root, ".quire")
	require.NoError(t, os.Mkdir(workspace, 0o750))

	events, _ := startWatcher(t, root)

	require.NoError(t, os.WriteFile(filepath.Join(workspace, "ignored"), []byte("x"), 0o600))
	marker := filepath.Join(root, "marker.qd")
	require.NoError(t, os.WriteFile(marker, []byte("x"), 0o600))

	timeout := time.After(5 * time.Second)
	for {
		select {
		case ev := <-events:
			require.NotContains(t, ev.Path, workspace)
			if ev.Path == marker {
				return
			}
		case <-timeout:
			require.FailNow(t, "no event for marker")
		}
	}
}

func TestWatcher_StopEndsEvents(t *testing.T) {
	root := t.TempDir()
	events, w := startWatcher(t, root)

	require.NoError(t, w.Stop())
	require.NoError(t, w.Stop())

	select {
	case _, ok := <-events:
		assert.False(t, ok)
	case <-time.After(5 * time.Second):
		require.FailNow(t, "events did not end after Stop")
	}
}

func TestWatcher_StartMissingRoot(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := watcher.NewWatcher(fs.NewWalker(), mocks.NewMockLogger(ctrl))

	// WalkDirs skips unreadable roots, so nothing is added and Start succeeds.
	require.NoError(t, w.Start(t.Context(), filepath.Join(t.TempDir(), "missing")))
	require.NoError(t, w.Stop())
}

func TestWatcher_RootInsideSkippedDirectory(t *testing.T) {
	root := filepath.Join(t.TempDir(), "node_modules", "book")
	require.NoError(t, os.MkdirAll(root, 0o750))
	file := filepath.Join(root, "main.qd")
	require.NoError(t, os.WriteFile(file, []byte("a"), 0o600))

	events, _ := startWatcher(t, root)

	require.NoError(t, os.WriteFile(file, []byte("b"), 0o600))
	ev := waitFor(t, events, file)
	assert.Equal(t, ports.OpWrite, ev.Operation)
}
