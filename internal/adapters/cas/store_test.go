package cas_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/quire/internal/adapters/cas"
	"go.trai.ch/quire/internal/core/domain"
)

func TestStore_PutAndGet(t *testing.T) {
	root := t.TempDir()
	store := cas.NewStore()

	info := domain.BuildInfo{
		Main:         "main.qd",
		CompiledAt:   time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Dependencies: []string{filepath.Join(root, "main.qd")},
		Fingerprints: map[string]string{filepath.Join(root, "main.qd"): "00ff"},
	}
	require.NoError(t, store.Put(root, info))

	got, err := store.Get(root, "main.qd")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, info.Main, got.Main)
	assert.True(t, info.CompiledAt.Equal(got.CompiledAt))
	assert.Equal(t, info.Dependencies, got.Dependencies)
	assert.Equal(t, info.Fingerprints, got.Fingerprints)

	_, err = os.Stat(domain.ManifestPath(root, "main.qd"))
	require.NoError(t, err)
}

func TestStore_GetMissing(t *testing.T) {
	got, err := cas.NewStore().Get(t.TempDir(), "main.qd")

	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_OneManifestPerMain(t *testing.T) {
	root := t.TempDir()
	store := cas.NewStore()

	require.NoError(t, store.Put(root, domain.BuildInfo{Main: "a.qd", Dependencies: []string{"a"}}))
	require.NoError(t, store.Put(root, domain.BuildInfo{Main: "b.qd", Dependencies: []string{"b"}}))
	require.NoError(t, store.Put(root, domain.BuildInfo{Main: "a.qd", Dependencies: []string{"a2"}}))

	a, err := store.Get(root, "a.qd")
	require.NoError(t, err)
	assert.Equal(t, []string{"a2"}, a.Dependencies)

	b, err := store.Get(root, "b.qd")
	require.NoError(t, err)
	assert.Equal(t, []string{"b"}, b.Dependencies)

	entries, err := os.ReadDir(domain.BuildsDir(root))
	require.NoError(t, err)
	assert.Len(t, entries, 2, "temporary files must not be left behind")
}

func TestStore_GetCorrupt(t *testing.T) {
	root := t.TempDir()
	path := domain.ManifestPath(root, "main.qd")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := cas.NewStore().Get(root, "main.qd")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrStoreReadFailed.Error())
}

func TestStore_PutUnwritableRoot(t *testing.T) {
	root := t.TempDir()
	// A file where the workspace directory should be prevents creating it.
	require.NoError(t, os.WriteFile(filepath.Join(root, domain.QuireDirName), nil, 0o600))

	err := cas.NewStore().Put(root, domain.BuildInfo{Main: "main.qd"})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrStoreWriteFailed.Error())
}
