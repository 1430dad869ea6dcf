package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/quire/cmd/quire/commands"
	"go.trai.ch/quire/internal/app"
	"go.trai.ch/quire/internal/build"
)

type mockApp struct {
	compileFunc func(ctx context.Context, opts app.Options) error
	watchFunc   func(ctx context.Context, opts app.Options) error
	depsFunc    func(ctx context.Context, opts app.Options) error
	statusFunc  func(ctx context.Context, opts app.Options) (*app.Status, error)
	cleanFunc   func(ctx context.Context, opts app.Options) error

	jsonLogs bool
	verbose  bool
}

func (m *mockApp) Compile(ctx context.Context, opts app.Options) error {
	if m.compileFunc != nil {
		return m.compileFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Watch(ctx context.Context, opts app.Options) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Deps(ctx context.Context, opts app.Options) error {
	if m.depsFunc != nil {
		return m.depsFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Status(ctx context.Context, opts app.Options) (*app.Status, error) {
	if m.statusFunc != nil {
		return m.statusFunc(ctx, opts)
	}
	return &app.Status{}, nil
}

func (m *mockApp) Clean(ctx context.Context, opts app.Options) error {
	if m.cleanFunc != nil {
		return m.cleanFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) ConfigureLogging(json, verbose bool) {
	m.jsonLogs = json
	m.verbose = verbose
}

func TestCommands_Compile(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.Options
		mock := &mockApp{
			compileFunc: func(_ context.Context, opts app.Options) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{
			"compile", "book.qd", "book.txt",
			"--root", "/project",
			"--input", "author=Ada",
			"--input", "edition=2",
			"--creation-timestamp", "1704067200",
			"--package-path", "/packages",
			"-j", "4",
			"--deps", "book.d",
			"--deps-format", "make",
		})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, app.Options{
			Input:             "book.qd",
			Output:            "book.txt",
			Root:              "/project",
			PackagePath:       "/packages",
			CreationTimestamp: "1704067200",
			Inputs:            []string{"author=Ada", "edition=2"},
			Jobs:              4,
			Deps:              "book.d",
			DepsFormat:        "make",
		}, captured)
	})

	t.Run("defaults leave options empty", func(t *testing.T) {
		var captured app.Options
		mock := &mockApp{
			compileFunc: func(_ context.Context, opts app.Options) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"compile"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Empty(t, captured.Input)
		assert.Empty(t, captured.Output)
		assert.Empty(t, captured.Inputs)
		assert.Zero(t, captured.Jobs)
	})

	t.Run("returns error on compile failure", func(t *testing.T) {
		mock := &mockApp{
			compileFunc: func(_ context.Context, _ app.Options) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"compile"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("rejects extra arguments", func(t *testing.T) {
		mock := &mockApp{
			compileFunc: func(_ context.Context, _ app.Options) error {
				panic("should not be called")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"compile", "a", "b", "c"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		require.Error(t, cli.Execute(context.Background()))
	})
}

func TestCommands_Logging(t *testing.T) {
	mock := &mockApp{}

	cli := commands.New(mock)
	cli.SetArgs([]string{"compile", "--json-logs", "-v"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, mock.jsonLogs)
	assert.True(t, mock.verbose)
}

func TestCommands_Watch(t *testing.T) {
	var captured app.Options
	mock := &mockApp{
		watchFunc: func(_ context.Context, opts app.Options) error {
			captured = opts
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"watch", "book.qd", "-"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "book.qd", captured.Input)
	assert.Equal(t, "-", captured.Output)
}

func TestCommands_Deps(t *testing.T) {
	var captured app.Options
	mock := &mockApp{
		depsFunc: func(_ context.Context, opts app.Options) error {
			captured = opts
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"deps", "book.qd", "--deps-format", "zero"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "book.qd", captured.Input)
	assert.Equal(t, "zero", captured.DepsFormat)

	cli = commands.New(mock)
	cli.SetArgs([]string{"deps", "book.qd", "book.txt"})
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	require.Error(t, cli.Execute(context.Background()), "deps takes no output")
}

func TestCommands_Status(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	compiled := time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		status *app.Status
		want   string
	}{
		{
			name:   "never compiled",
			status: &app.Status{Main: "/main.qd"},
			want:   "● /main.qd never compiled\n",
		},
		{
			name:   "up to date",
			status: &app.Status{Main: "/main.qd", Recorded: true, CompiledAt: compiled, Unchanged: []string{"/p/main.qd"}},
			want:   "✓ /main.qd up to date (compiled 2024-06-01T10:00:00Z)\n",
		},
		{
			name: "out of date",
			status: &app.Status{
				Main:       "/main.qd",
				Recorded:   true,
				CompiledAt: compiled,
				Changed:    []string{"/p/a.qd"},
				Removed:    []string{"/p/b.qd"},
			},
			want: "! /main.qd out of date (compiled 2024-06-01T10:00:00Z)\n" +
				"  changed: /p/a.qd\n" +
				"  removed: /p/b.qd\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockApp{
				statusFunc: func(_ context.Context, _ app.Options) (*app.Status, error) {
					return tt.status, nil
				},
			}

			cli := commands.New(mock)
			buf := new(bytes.Buffer)
			cli.SetOutput(buf, buf)
			cli.SetArgs([]string{"status"})

			require.NoError(t, cli.Execute(context.Background()))
			assert.Equal(t, tt.want, buf.String())
		})
	}

	t.Run("returns error", func(t *testing.T) {
		mock := &mockApp{
			statusFunc: func(_ context.Context, _ app.Options) (*app.Status, error) {
				return nil, errors.New("store unreadable")
			},
		}

		cli := commands.New(mock)
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"status"})

		require.ErrorContains(t, cli.Execute(context.Background()), "store unreadable")
	})
}

func TestCommands_Clean(t *testing.T) {
	var captured app.Options
	called := false
	mock := &mockApp{
		cleanFunc: func(_ context.Context, opts app.Options) error {
			captured = opts
			called = true
			return nil
		},
	}

	cli := commands.New(mock)
	cli.SetArgs([]string{"clean", "--root", "/project"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.True(t, called)
	assert.Equal(t, "/project", captured.Root)
}

func TestCommands_Version(t *testing.T) {
	mock := &mockApp{}
	cli := commands.New(mock)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "quire version "+build.Version)
}

func TestCommands_VersionFlag(t *testing.T) {
	cli := commands.New(&mockApp{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"--version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "quire version "+build.Version+" (commit: "+build.Commit+", date: "+build.Date+")\n", buf.String())
}

func TestCommands_VerboseShorthand(t *testing.T) {
	t.Run("version command runs", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"version"})

		assert.NotPanics(t, func() {
			require.NoError(t, cli.Execute(context.Background()))
		})
		assert.Contains(t, buf.String(), "quire version")
	})

	t.Run("-v enables debug logging", func(t *testing.T) {
		called := false
		mock := &mockApp{
			compileFunc: func(_ context.Context, _ app.Options) error {
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		buf := new(bytes.Buffer)
		cli.SetOutput(buf, buf)
		cli.SetArgs([]string{"compile", "-v"})

		assert.NotPanics(t, func() {
			require.NoError(t, cli.Execute(context.Background()))
		})
		assert.True(t, called)
		assert.True(t, mock.verbose)
		assert.False(t, mock.jsonLogs)
		assert.NotContains(t, buf.String(), "quire version")
	})
}
