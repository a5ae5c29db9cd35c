package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title    lipgloss.Style
	label    lipgloss.Style
	header   lipgloss.Style
	detail   lipgloss.Style
	feedback lipgloss.Style
	warning  lipgloss.Style
	section  lipgloss.Style
	empty    lipgloss.Style
	help     lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:    lipgloss.NewStyle().Bold(true),
		label:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		header:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		detail:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		feedback: lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		warning:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		section:  lipgloss.NewStyle().MarginTop(1),
		empty:    lipgloss.NewStyle().Faint(true),
		help:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}
