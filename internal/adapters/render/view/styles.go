package view

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title      lipgloss.Style
	header     lipgloss.Style
	world      lipgloss.Style
	word       lipgloss.Style
	endMarker  lipgloss.Style
	prob       lipgloss.Style
	best       lipgloss.Style
	branch     lipgloss.Style
	cell       lipgloss.Style
	border     lipgloss.Style
	barBracket lipgloss.Style
	barFill    lipgloss.Style
	barEmpty   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:      lipgloss.NewStyle().Bold(true),
		header:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		world:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		word:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		endMarker:  lipgloss.NewStyle().Faint(true),
		prob:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		best:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("159")),
		branch:     lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		cell:       lipgloss.NewStyle().Padding(0, 1),
		border:     lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		barBracket: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barFill:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
		barEmpty:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}
