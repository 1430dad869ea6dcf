package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/quire/internal/app"
	"go.trai.ch/quire/internal/ui/output"
	"go.trai.ch/quire/internal/ui/style"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status [input]",
		Short: "Report whether the last compilation of a document is up to date",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			status, err := c.app.Status(cmd.Context(), options(cmd, args))
			if err != nil {
				return err
			}
			renderStatus(cmd.OutOrStdout(), status)
			return nil
		},
	}
}

func renderStatus(w io.Writer, s *app.Status) {
	out := output.New(w)

	if !s.Recorded {
		_, _ = fmt.Fprintf(w, "%s %s never compiled\n", output.Paint(out, style.Slate, style.Dot), s.Main)
		return
	}

	compiled := s.CompiledAt.Format(time.RFC3339)
	if s.UpToDate() {
		_, _ = fmt.Fprintf(w, "%s %s up to date (compiled %s)\n",
			output.Paint(out, style.Green, style.Check), s.Main, compiled)
		return
	}

	_, _ = fmt.Fprintf(w, "%s %s out of date (compiled %s)\n",
		output.Paint(out, style.Yellow, style.Warning), s.Main, compiled)
	for _, path := range s.Changed {
		_, _ = fmt.Fprintf(w, "  %s %s\n", output.Paint(out, style.Yellow, "changed:"), path)
	}
	for _, path := range s.Removed {
		_, _ = fmt.Fprintf(w, "  %s %s\n", output.Paint(out, style.Red, "removed:"), path)
	}
}
