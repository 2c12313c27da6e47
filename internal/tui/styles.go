package tui

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	primaryColor   = lipgloss.Color("#7C3AED") // Purple
	secondaryColor = lipgloss.Color("#10B981") // Green
	errorColor     = lipgloss.Color("#EF4444") // Red
	mutedColor     = lipgloss.Color("#6B7280") // Gray
	textColor      = lipgloss.Color("#F9FAFB") // Light gray
)

// Styles
var (
	// App chrome
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor).
			Background(primaryColor).
			Padding(0, 1).
			MarginBottom(1)

	// Navigation
	navStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginBottom(1)

	navActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	navInactiveStyle = lipgloss.NewStyle().
				Foreground(mutedColor)

	// Cards and boxes
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(1, 2)

	cardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	// Score display
	scoreValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	scoreLabelStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	// Table
	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(primaryColor)

	// Status
	statusStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	// Help
	helpKeyStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(mutedColor)
)

// RenderKeyHelp renders a key binding help item
func RenderKeyHelp(key, desc string) string {
	return helpKeyStyle.Render(key) + " " + helpDescStyle.Render(desc)
}
