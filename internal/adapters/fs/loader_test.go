package fs_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/quire/internal/adapters/fs"
	"go.trai.ch/quire/internal/core/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func id(p string) domain.ResourceID {
	return domain.NewResourceID(domain.PackageSpec{}, domain.NewVirtualPath(p))
}

func TestLoader_Load(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "chapters", "intro.qd"), "intro")
	require.NoError(t, os.Mkdir(filepath.Join(root, "assets"), domain.DirPerm))

	loader := fs.NewLoader(root, "", nil)

	data, err := loader.Load(id("chapters/intro.qd"))
	require.NoError(t, err)
	assert.Equal(t, "intro", string(data))

	_, err = loader.Load(id("missing.qd"))
	require.ErrorIs(t, err, domain.ErrNotFound)
	assert.Contains(t, err.Error(), filepath.Join(root, "missing.qd"))

	_, err = loader.Load(id("assets"))
	require.ErrorIs(t, err, domain.ErrIsDirectory)
}

func TestLoader_DeniesRootEscape(t *testing.T) {
	parent := t.TempDir()
	root := filepath.Join(parent, "project")
	writeFile(t, filepath.Join(parent, "secret.txt"), "secret")
	require.NoError(t, os.MkdirAll(root, domain.DirPerm))

	loader := fs.NewLoader(root, "", nil)

	_, err := loader.Load(id("../secret.txt"))
	require.ErrorIs(t, err, domain.ErrAccessDenied)

	_, err = loader.Resolve(id("a/../../secret.txt"))
	require.ErrorIs(t, err, domain.ErrAccessDenied)
}

func TestLoader_Packages(t *testing.T) {
	root := t.TempDir()
	packages := t.TempDir()
	writeFile(t, filepath.Join(packages, "preview", "charts", "1.0.0", "lib.qd"), "charts")

	pkg := domain.PackageSpec{Namespace: "preview", Name: "charts", Version: "1.0.0"}
	pkgID := domain.NewResourceID(pkg, domain.NewVirtualPath("lib.qd"))

	data, err := fs.NewLoader(root, packages, nil).Load(pkgID)
	require.NoError(t, err)
	assert.Equal(t, "charts", string(data))

	_, err = fs.NewLoader(root, "", nil).Load(pkgID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	escape := domain.NewResourceID(pkg, domain.NewVirtualPath("../../other/lib.qd"))
	_, err = fs.NewLoader(root, packages, nil).Load(escape)
	require.ErrorIs(t, err, domain.ErrAccessDenied)
}

func TestLoader_StdinIsReadOnce(t *testing.T) {
	reader := &countingReader{r: strings.NewReader("from stdin")}
	factory := fs.NewLoaderFactory(reader)

	first, err := factory.NewLoader(t.TempDir(), "").Load(domain.StdinID)
	require.NoError(t, err)
	second, err := factory.NewLoader(t.TempDir(), "").Load(domain.StdinID)
	require.NoError(t, err)

	assert.Equal(t, "from stdin", string(first))
	assert.Equal(t, first, second)
	assert.Equal(t, 1, reader.eofs, "standard input is drained once")
}

func TestLoader_StdinFailure(t *testing.T) {
	stdin := fs.NewStdin(failingReader{})

	_, err := fs.NewLoader(t.TempDir(), "", stdin).Load(domain.StdinID)
	require.ErrorIs(t, err, domain.ErrIO)
}

func TestLoader_ResolveDetached(t *testing.T) {
	loader := fs.NewLoader(t.TempDir(), "", nil)

	_, err := loader.Resolve(domain.StdinID)
	require.Error(t, err)

	_, err = loader.Load(domain.NewDetachedID("<input>"))
	require.ErrorIs(t, err, domain.ErrNotFound)
}

type countingReader struct {
	r    *strings.Reader
	eofs int
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	if err != nil {
		c.eofs++
	}
	return n, err
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("device gone")
}
