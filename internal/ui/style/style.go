// Package style provides shared UI styling primitives, the palette and icons used
// by the logger and the progress lines.
package style

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	Slate   = lipgloss.Color("#667085")
	Green   = lipgloss.Color("#22A06B")
	Red     = lipgloss.Color("#D93025")
	Yellow  = lipgloss.Color("#F59E0B")
	Magenta = lipgloss.Color("#C026D3")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Eye     = "◉"
)
