// Package output creates termenv outputs with consistent color profile and TTY handling.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"go.trai.ch/quire/internal/ui/style"
)

// ColorProfile returns the color profile to use. NO_COLOR selects plain ASCII;
// otherwise the terminal's capabilities are detected from the environment.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// New creates a new termenv.Output writing to w, or to standard error when w is nil.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(ColorProfile()),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}

// Paint renders s in color c on out.
func Paint(out *termenv.Output, c style.Color, s string) string {
	return out.String(s).Foreground(termenv.RGBColor(string(c))).String()
}
