// Package console prints run summaries to the terminal.
package console

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette of the summary.
type Theme struct {
	// Primary is the main accent colour.
	Primary lipgloss.Color

	// Muted is for less important text.
	Muted lipgloss.Color

	// Success marks fully covered requirements and written files.
	Success lipgloss.Color

	// Warning marks partial coverage.
	Warning lipgloss.Color

	// Error marks missing coverage and unreadable documents.
	Error lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary: lipgloss.Color("#7C3AED"), // Purple
		Muted:   lipgloss.Color("#6C7086"), // Medium gray
		Success: lipgloss.Color("#A6E3A1"), // Green
		Warning: lipgloss.Color("#F9E2AF"), // Yellow
		Error:   lipgloss.Color("#F38BA8"), // Red
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
}

// NewStyles creates styles from a theme, rendering for w.
func NewStyles(w io.Writer, theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}
	r := lipgloss.NewRenderer(w)

	return &Styles{
		Title:   r.NewStyle().Bold(true).Foreground(theme.Primary),
		Muted:   r.NewStyle().Foreground(theme.Muted),
		Success: r.NewStyle().Foreground(theme.Success),
		Warning: r.NewStyle().Foreground(theme.Warning),
		Error:   r.NewStyle().Foreground(theme.Error),
	}
}

// PlainStyles returns styles that leave text untouched.
func PlainStyles() *Styles {
	plain := lipgloss.NewStyle()
	return &Styles{
		Title:   plain,
		Muted:   plain,
		Success: plain,
		Warning: plain,
		Error:   plain,
	}
}
