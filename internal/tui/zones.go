package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vdotcalc/internal/service"
)

// ZonesModel is the training pace zones screen model
type ZonesModel struct {
	data *service.ZonesData
}

// NewZonesModel creates a new zones model for the score
func NewZonesModel(cs *service.CalcService, score float64) ZonesModel {
	return ZonesModel{data: cs.GetTrainingZones(score)}
}

// Init initializes the zones screen
func (m ZonesModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m ZonesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the zones screen
func (m ZonesModel) View() string {
	var sections []string

	sections = append(sections, cardTitleStyle.Render("Training Pace Zones"))
	sections = append(sections, fmt.Sprintf("  VDOT: %s (%s)",
		scoreValueStyle.Render(fmt.Sprintf("%.1f", m.data.Score)),
		scoreLabelStyle.Render(m.data.Label),
	))
	sections = append(sections, "")

	for _, zone := range m.data.Rows {
		var lines []string
		lines = append(lines, fmt.Sprintf("%s  %s",
			tableHeaderStyle.Render(fmt.Sprintf("%-12s", zone.Name)),
			scoreValueStyle.Render(zone.Pace),
		))
		lines = append(lines, mutedStyle.Render(zone.Description))
		sections = append(sections, cardStyle.Render(strings.Join(lines, "\n")))
	}

	sections = append(sections, statusStyle.Render("  +/-: adjust score"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
