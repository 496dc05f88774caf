package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	prompt   lipgloss.Style
	timer    lipgloss.Style
	timerLow lipgloss.Style
	status   lipgloss.Style
	notice   lipgloss.Style
	faint    lipgloss.Style
	doc      lipgloss.Style
}

// newStyles builds the palette. The dark flag flips the body text color;
// accent colors work on either background.
func newStyles(dark bool) styles {
	text := lipgloss.Color("236")
	if dark {
		text = lipgloss.Color("252")
	}

	return styles{
		title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),
		prompt: lipgloss.NewStyle().
			Foreground(text).
			Italic(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")),
		timer: lipgloss.NewStyle().
			Foreground(lipgloss.Color("114")).
			Bold(true),
		timerLow: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
		status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
		notice: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true),
		faint: lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")),
		doc: lipgloss.NewStyle().Padding(1, 2),
	}
}
