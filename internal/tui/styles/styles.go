// ABOUTME: Shared lipgloss styles for consistent TUI appearance
// ABOUTME: Defines colors, borders, and text styles used across screens

package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors - warm kitchen palette
	Primary = lipgloss.Color("#E67E22") // Orange
	Accent  = lipgloss.Color("#F1C40F") // Saffron
	Danger  = lipgloss.Color("#E74C3C") // Tomato red
	Muted   = lipgloss.Color("#95A5A6") // Gray
	Text    = lipgloss.Color("#ECF0F1") // Light
	Surface = lipgloss.Color("#2C3E50") // Slate

	// Base styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(Muted).
			MarginBottom(1)

	// Banner renders the latest exchange error, dismissed on the next input.
	Banner = lipgloss.NewStyle().
		Foreground(Text).
		Background(Danger).
		Padding(0, 1).
		MarginBottom(1)

	// Panels
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Muted).
		Padding(1, 2)

	ActivePanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2)

	// Help text
	Help = lipgloss.NewStyle().
		Foreground(Muted).
		MarginTop(1)

	// Key style for keyboard shortcuts
	KeyStyle = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	// Section headers inside the recipe view
	Section = lipgloss.NewStyle().
		Bold(true).
		Foreground(Accent).
		MarginTop(1)

	// Selected list entry
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)
)
