// Package commands implements the CLI commands for the quire document compiler.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/quire/internal/app"
	"go.trai.ch/quire/internal/build"
)

// CLI represents the command line interface for quire.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Compile(ctx context.Context, opts app.Options) error
	Watch(ctx context.Context, opts app.Options) error
	Deps(ctx context.Context, opts app.Options) error
	Status(ctx context.Context, opts app.Options) (*app.Status, error)
	Clean(ctx context.Context, opts app.Options) error
	ConfigureLogging(json, verbose bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "quire",
		Short:         "Compile documents with incremental resource loading",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	// Persistent flags come first so that -v stays with --verbose.
	flags := rootCmd.PersistentFlags()
	flags.String("root", "", "Project root; defaults to the directory of the input")
	flags.StringArray("input", nil, "Add a key=value input readable by the document (repeatable)")
	flags.String("creation-timestamp", "", "Fix the document date to this UNIX timestamp")
	flags.String("package-path", "", "Directory holding local packages")
	flags.IntP("jobs", "j", 0, "Number of resources fetched concurrently (default: number of CPUs)")
	flags.String("deps", "", "Write the dependencies of the compilation to this file ('-' for stdout)")
	flags.String("deps-format", "", "Dependency file format: json, zero or make")
	flags.Bool("json-logs", false, "Write logs as JSON")
	flags.BoolP("verbose", "v", false, "Enable debug logging")

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		jsonLogs, _ := cmd.Flags().GetBool("json-logs")
		verbose, _ := cmd.Flags().GetBool("verbose")
		c.app.ConfigureLogging(jsonLogs, verbose)
	}

	rootCmd.AddCommand(c.newCompileCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newDepsCmd())
	rootCmd.AddCommand(c.newStatusCmd())
	rootCmd.AddCommand(c.newCleanCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// options collects the shared flags and the positional [input] [output] arguments.
func options(cmd *cobra.Command, args []string) app.Options {
	var opts app.Options
	if len(args) > 0 {
		opts.Input = args[0]
	}
	if len(args) > 1 {
		opts.Output = args[1]
	}

	flags := cmd.Flags()
	opts.Root, _ = flags.GetString("root")
	opts.Inputs, _ = flags.GetStringArray("input")
	opts.CreationTimestamp, _ = flags.GetString("creation-timestamp")
	opts.PackagePath, _ = flags.GetString("package-path")
	opts.Jobs, _ = flags.GetInt("jobs")
	opts.Deps, _ = flags.GetString("deps")
	opts.DepsFormat, _ = flags.GetString("deps-format")
	return opts
}
