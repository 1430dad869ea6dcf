// Package style provides shared styling primitives including brand colors
// and icons for consistent presentation across the CLI.
package style

// Color is a hex RGB color understood by termenv.RGBColor.
type Color string

// Brand Colors.
const (
	Iris   Color = "#8B5CF6"
	Slate  Color = "#667085"
	Green  Color = "#22A06B"
	Red    Color = "#D93025"
	Yellow Color = "#F59E0B"
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
	Dot     = "●"
)
