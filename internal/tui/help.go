package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the help screen model
type HelpModel struct{}

// NewHelpModel creates a new help model
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Init initializes the help screen
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the help screen
func (m HelpModel) View() string {
	var sections []string

	title := cardTitleStyle.Render("Keyboard Shortcuts")
	sections = append(sections, title)

	navSection := m.renderSection("Navigation", []keyHelp{
		{"c", "Calculator"},
		{"e", "Equivalent race times"},
		{"z", "Training pace zones"},
		{"?", "Help (this screen)"},
		{"q", "Quit"},
		{"esc", "Close help"},
	})
	sections = append(sections, navSection)

	calcSection := m.renderSection("Calculator", []keyHelp{
		{"up / down", "Change race distance"},
		{"enter", "Compute score"},
	})
	sections = append(sections, calcSection)

	projSection := m.renderSection("Equivalent Times & Zones", []keyHelp{
		{"+ / -", "Adjust score by 0.1"},
		{"j / k", "Scroll"},
	})
	sections = append(sections, projSection)

	sections = append(sections, m.renderConceptsHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

type keyHelp struct {
	key  string
	desc string
}

func (m HelpModel) renderSection(title string, keys []keyHelp) string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(secondaryColor).Render(title))

	for _, k := range keys {
		lines = append(lines, "  "+RenderKeyHelp(k.key, k.desc))
	}

	return strings.Join(lines, "\n")
}

func (m HelpModel) renderConceptsHelp() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(secondaryColor).Render("Concepts"))
	lines = append(lines, "")

	concepts := []struct {
		name string
		desc string
	}{
		{"VDOT", "A single number summarizing aerobic running fitness, derived from a race result."},
		{"Equivalent times", "What the same fitness projects to at other race distances."},
		{"Training zones", "Easy, marathon, threshold, interval and repetition paces for that fitness."},
	}

	for _, c := range concepts {
		lines = append(lines, "  "+helpKeyStyle.Render(c.name))
		lines = append(lines, "  "+mutedStyle.Render(c.desc))
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}
