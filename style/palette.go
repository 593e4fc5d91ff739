package style

import "github.com/charmbracelet/lipgloss"

// Palette used by the diagnostic boxes of the check command.
var (
	Text    = lipgloss.Color("#cdd6f4")
	Overlay = lipgloss.Color("#6c7086")
	Mauve   = lipgloss.Color("#cba6f7")
	Red     = lipgloss.Color("#f38ba8")
	Green   = lipgloss.Color("#a6e3a1")

	AccentColor  = Mauve
	SuccessColor = Green
	ErrorColor   = Red
)
