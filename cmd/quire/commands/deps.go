package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newDepsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deps [input]",
		Short: "List the files a document depends on",
		Long: "Compile a document without writing it and print its dependencies,\n" +
			"or write them to the file given by --deps.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Deps(cmd.Context(), options(cmd, args))
		},
	}
}
