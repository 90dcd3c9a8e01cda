package cmd

import "github.com/charmbracelet/lipgloss"

// Common styles used across commands
var (
	appStyle   = lipgloss.NewStyle().Padding(1, 2)
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#BD93F9")).
			MarginLeft(2)

	// Text styles
	faintStyle   = lipgloss.NewStyle().Faint(true)
	keysStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true) // Blue
	packageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF79C6"))
)
