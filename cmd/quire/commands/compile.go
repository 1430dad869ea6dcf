package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newCompileCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compile [input] [output]",
		Short: "Compile a document once",
		Long: "Compile a document once. The input defaults to main.qd and '-' reads standard input;\n" +
			"an output of '-' writes the result to standard output.",
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Compile(cmd.Context(), options(cmd, args))
		},
	}
}
