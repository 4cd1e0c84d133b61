// Package styles centralizes lipgloss styling for CLI output.
package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the color palette for CLI output.
type Theme struct {
	Accent lipgloss.Color
	Muted  lipgloss.Color
	Error  lipgloss.Color
}

// DefaultTheme returns the standard terminal palette.
func DefaultTheme() *Theme {
	return &Theme{
		Accent: lipgloss.Color("10"),
		Muted:  lipgloss.Color("8"),
		Error:  lipgloss.Color("9"),
	}
}

// Title renders a bold accent-colored heading.
func (t *Theme) Title(s string) string {
	return lipgloss.NewStyle().Bold(true).Foreground(t.Accent).Render(s)
}

// KV renders an aligned label/value pair.
func (t *Theme) KV(label, value string) string {
	l := lipgloss.NewStyle().Foreground(t.Muted).Width(14).Render(label)
	return fmt.Sprintf("%s %s", l, value)
}

// OK renders s in the accent color.
func (t *Theme) OK(s string) string {
	return lipgloss.NewStyle().Foreground(t.Accent).Render(s)
}

// Fail renders s in the error color.
func (t *Theme) Fail(s string) string {
	return lipgloss.NewStyle().Foreground(t.Error).Render(s)
}
