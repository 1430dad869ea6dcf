package compiler_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/quire/internal/adapters/compiler"
	"go.trai.ch/quire/internal/adapters/fs"
	"go.trai.ch/quire/internal/core/domain"
	"go.trai.ch/quire/internal/core/ports/mocks"
	"go.trai.ch/quire/internal/engine/clock"
	"go.trai.ch/quire/internal/engine/session"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func id(p string) domain.ResourceID {
	return domain.NewResourceID(domain.PackageSpec{}, domain.NewVirtualPath(p))
}

func newSession(t *testing.T, files map[string]string) (*session.Session, string) {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), domain.DirPerm))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	}
	project := domain.Project{Root: root, Workdir: root, Main: id("main.qd")}
	opts := session.Options{
		Clock:  clock.NewFixed(time.Date(2024, 3, 31, 23, 30, 0, 0, time.UTC)),
		Inputs: map[string]string{"title": "Quire"},
	}
	return session.New(project, fs.NewLoader(root, "", nil), fs.NewHasher(), opts), root
}

func TestCompile_Directives(t *testing.T) {
	s, root := newSession(t, map[string]string{
		"main.qd": "# Title: #input title\n" +
			"#input title\n" +
			"#input missing\n" +
			"#import \"chapters/one.qd\"\n" +
			"#read \"figure.png\"\n" +
			"#today +0\n" +
			"#today +1\n" +
			"end\n",
		"chapters/one.qd": "chapter one\n#import \"/shared.qd\"\n",
		"shared.qd":       "shared\n",
		"figure.png":      "\x89PNG\r\n",
	})

	out, err := compiler.New().Compile(t.Context(), s, 2)
	require.NoError(t, err)

	assert.Equal(t, "# Title: #input title\n"+
		"Quire\n"+
		"\n"+
		"chapter one\nshared\n"+
		"[figure.png: 6 bytes]\n"+
		"2024-03-31\n"+
		"2024-04-01\n"+
		"end\n", string(out))

	assert.Equal(t, []string{
		filepath.Join(root, "chapters", "one.qd"),
		filepath.Join(root, "figure.png"),
		filepath.Join(root, "main.qd"),
		filepath.Join(root, "shared.qd"),
	}, slices.Collect(s.Dependencies()))
}

func TestCompile_DiamondImportsLoadOnce(t *testing.T) {
	s, _ := newSession(t, map[string]string{
		"main.qd":  "#import \"a.qd\"\n#import \"b.qd\"\n",
		"a.qd":     "#import \"leaf.qd\"\n",
		"b.qd":     "#import \"leaf.qd\"\n",
		"leaf.qd":  "leaf\n",
		"other.qd": "never read\n",
	})

	out, err := compiler.New().Compile(t.Context(), s, 0)
	require.NoError(t, err)
	assert.Equal(t, "leaf\nleaf\n", string(out))
	assert.Equal(t, 4, s.Resources())
}

func TestCompile_CyclicImport(t *testing.T) {
	s, _ := newSession(t, map[string]string{
		"main.qd": "#import \"a.qd\"\n",
		"a.qd":    "#import \"main.qd\"\n",
	})

	_, err := compiler.New().Compile(t.Context(), s, 1)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrCyclicImport.Error())
}

func TestCompile_MissingImport(t *testing.T) {
	s, root := newSession(t, map[string]string{
		"main.qd": "intro\n#import \"missing.qd\"\n",
	})

	_, err := compiler.New().Compile(t.Context(), s, 1)
	require.ErrorIs(t, err, domain.ErrNotFound)

	// A failed read still counts as a dependency so that creating the file triggers a rebuild.
	assert.Contains(t, slices.Collect(s.Dependencies()), filepath.Join(root, "missing.qd"))
}

func TestCompile_EscapingImport(t *testing.T) {
	s, _ := newSession(t, map[string]string{
		"main.qd": "#import \"../../etc/passwd\"\n",
	})

	_, err := compiler.New().Compile(t.Context(), s, 1)
	require.ErrorIs(t, err, domain.ErrAccessDenied)
}

func TestCompile_InvalidDirective(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{name: "unquoted import", line: "#import chapter.qd"},
		{name: "empty read", line: "#read \"\""},
		{name: "unsigned offset", line: "#today 2"},
		{name: "non numeric offset", line: "#today +x"},
		{name: "input without key", line: "#input"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := newSession(t, map[string]string{"main.qd": tt.line + "\n"})

			_, err := compiler.New().Compile(t.Context(), s, 1)
			require.Error(t, err)
			assert.ErrorContains(t, err, domain.ErrInvalidDirective.Error())
		})
	}
}

func errorPosition(t *testing.T, err error) any {
	t.Helper()
	var zErr *zerr.Error
	require.True(t, errors.As(err, &zErr), "expected *zerr.Error, got %T", err)
	return zErr.Metadata()["position"]
}

func TestCompile_InvalidDirectivePosition(t *testing.T) {
	s, _ := newSession(t, map[string]string{
		"main.qd":    "intro\n#import \"chapter.qd\"\n",
		"chapter.qd": "one\r\ntwo\n\n#today 2\n",
	})

	_, err := compiler.New().Compile(t.Context(), s, 1)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInvalidDirective.Error())
	assert.Equal(t, "/chapter.qd:4:1", errorPosition(t, err))
}

func TestCompile_InvalidDirectiveWithoutLineIndex(t *testing.T) {
	ctrl := gomock.NewController(t)
	world := mocks.NewMockWorld(ctrl)
	main := id("main.qd")

	world.EXPECT().MainID().Return(main)
	world.EXPECT().Text(main).Return(domain.NewSource(main, "#input"), nil)
	world.EXPECT().Lookup(main).Return(domain.Lines{}, domain.ErrNotLoaded)

	_, err := compiler.New().Compile(t.Context(), world, 1)
	require.Error(t, err)
	assert.Equal(t, "/main.qd", errorPosition(t, err))
}

func TestCompile_InjectedMain(t *testing.T) {
	s, _ := newSession(t, map[string]string{"lib.qd": "library\n"})
	s.InjectMain("#import \"lib.qd\"\ninline")

	out, err := compiler.New().Compile(t.Context(), s, 1)
	require.NoError(t, err)
	assert.Equal(t, "library\ninline", string(out))
}

func TestCompile_DateOutOfRange(t *testing.T) {
	ctrl := gomock.NewController(t)
	world := mocks.NewMockWorld(ctrl)
	main := id("main.qd")

	world.EXPECT().MainID().Return(main)
	world.EXPECT().Text(main).Return(domain.NewSource(main, "#today +1"), nil)
	world.EXPECT().Today(gomock.Any()).Return(domain.Datetime{}, false)

	_, err := compiler.New().Compile(t.Context(), world, 1)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInvalidDirective.Error())
}

func TestCompile_Canceled(t *testing.T) {
	s, _ := newSession(t, map[string]string{"main.qd": "text\n"})
	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	_, err := compiler.New().Compile(ctx, s, 1)
	require.ErrorIs(t, err, context.Canceled)
}
