package tui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Disabled  lipgloss.Color
	Selected  lipgloss.Color
}{
	Primary:   lipgloss.Color("#6C5CE7"), // Purple
	Secondary: lipgloss.Color("#A29BFE"), // Lavender
	Muted:     lipgloss.Color("#636E72"), // Gray
	Success:   lipgloss.Color("#00B894"), // Green
	Warning:   lipgloss.Color("#FDCB6E"), // Yellow
	Disabled:  lipgloss.Color("#636E72"), // Gray
	Selected:  lipgloss.Color("#FFEAA7"), // Yellow (selected)
}

// Styles used across the views.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary)

	tabStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(Colors.Muted)

	activeTabStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(Colors.Selected)

	taskStyle = lipgloss.NewStyle()

	selectedTaskStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(Colors.Selected)

	runningTaskStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(Colors.Success)

	disabledTaskStyle = lipgloss.NewStyle().
				Strikethrough(true).
				Foreground(Colors.Disabled)

	statusStyle = lipgloss.NewStyle().
			Foreground(Colors.Secondary)

	helpStyle = lipgloss.NewStyle().
			Foreground(Colors.Muted)
)
