package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch [input] [output]",
		Short: "Compile a document and recompile it when its dependencies change",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Watch(cmd.Context(), options(cmd, args))
		},
	}
}
