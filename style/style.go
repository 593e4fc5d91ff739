// Package style provides a functional API for composing lipgloss styles in command output.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

// New returns an empty lipgloss.Style.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Fg returns a rendering function that applies the foreground color to a string.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return New().Foreground(c).Render(s) }
}

var (
	Faint = func(s string) string { return New().Faint(true).Render(s) }
	Bold  = func(s string) string { return New().Bold(true).Render(s) }
)

// Box renders lines inside a rounded border tinted with c.
func Box(c lipgloss.Color, lines ...string) string {
	return New().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(c).
		Padding(1, 2).
		Margin(1, 0).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
