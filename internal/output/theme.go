package output

import "github.com/charmbracelet/lipgloss"

// Theme defines the color scheme for console output
type Theme struct {
	Heading  lipgloss.Style
	Hash     lipgloss.Style
	Location lipgloss.Style
	Number   lipgloss.Style
	Summary  lipgloss.Style
	Dim      lipgloss.Style
	Warning  lipgloss.Style
}

// DefaultTheme is the default color scheme
var DefaultTheme = Theme{
	Heading:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
	Hash:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	Location: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	Number:   lipgloss.NewStyle().Foreground(lipgloss.Color("221")),
	Summary:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82")),
	Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
}

// PlainTheme renders without any styling.
var PlainTheme = Theme{
	Heading:  lipgloss.NewStyle(),
	Hash:     lipgloss.NewStyle(),
	Location: lipgloss.NewStyle(),
	Number:   lipgloss.NewStyle(),
	Summary:  lipgloss.NewStyle(),
	Dim:      lipgloss.NewStyle(),
	Warning:  lipgloss.NewStyle(),
}
