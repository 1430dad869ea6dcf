package watcher

import (
	"testing"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/require"
	"go.trai.ch/quire/internal/adapters/fs"
	"go.trai.ch/quire/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestWatcher_WatchTreeLogsFailures(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).Times(1)

	fsWatcher, err := fsnotify.NewWatcher()
	require.NoError(t, err)
	require.NoError(t, fsWatcher.Close())

	w := NewWatcher(fs.NewWalker(), log)
	w.watchTree(fsWatcher, t.TempDir())
}

func TestWatcher_IgnoredOnlyBelowRoot(t *testing.T) {
	w := NewWatcher(fs.NewWalker(), nil)
	w.root = "/work/node_modules/book"

	require.False(t, w.ignored("/work/node_modules/book/main.qd"))
	require.False(t, w.ignored("/work/node_modules/book/chapters/one.qd"))
	require.True(t, w.ignored("/work/node_modules/book/.quire/state"))
	require.True(t, w.ignored("/work/node_modules/book/a/.git/HEAD"))
	require.False(t, w.ignored("/work/node_modules/book/.git"))
}
