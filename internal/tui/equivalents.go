package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"vdotcalc/internal/service"
)

// EquivalentsModel is the equivalent race times screen model
type EquivalentsModel struct {
	data     *service.ProjectionsData
	label    string
	viewport viewport.Model
	width    int
	height   int
	ready    bool
}

// NewEquivalentsModel creates a new equivalents model for the score
func NewEquivalentsModel(cs *service.CalcService, score float64, width, height int) EquivalentsModel {
	m := EquivalentsModel{
		data:   cs.GetProjections(score),
		label:  cs.PaceLabel(),
		width:  width,
		height: height,
	}

	if width > 0 && height > 0 {
		m.viewport = viewport.New(width, height-6)
		m.viewport.SetContent(m.renderContent())
		m.ready = true
	}

	return m
}

// Init initializes the equivalents screen
func (m EquivalentsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m EquivalentsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-6)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 6
		}
		m.viewport.SetContent(m.renderContent())
	}

	// Handle viewport scrolling
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the equivalents screen
func (m EquivalentsModel) View() string {
	if !m.ready {
		return "\n  Initializing..."
	}

	footer := statusStyle.Render("  j/k or arrows: scroll  +/-: adjust score")

	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), footer)
}

func (m EquivalentsModel) renderContent() string {
	var sections []string

	sections = append(sections, "")
	sections = append(sections, cardTitleStyle.Render("Equivalent Race Times"))
	sections = append(sections, fmt.Sprintf("  VDOT: %s (%s)",
		scoreValueStyle.Render(fmt.Sprintf("%.1f", m.data.Score)),
		scoreLabelStyle.Render(m.data.Label),
	))
	sections = append(sections, "")
	sections = append(sections, m.renderTable())
	sections = append(sections, m.renderPaceCurve())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m EquivalentsModel) renderTable() string {
	var lines []string

	header := fmt.Sprintf("  %-15s  %10s  %10s  %10s", "Distance", "", "Time", "Pace")
	lines = append(lines, tableHeaderStyle.Render(header))

	for _, row := range m.data.Rows {
		lines = append(lines, fmt.Sprintf("  %-15s  %10s  %10s  %10s",
			row.Name, row.Meters, row.Time, row.Pace))
	}

	lines = append(lines, "")
	return strings.Join(lines, "\n")
}

func (m EquivalentsModel) renderPaceCurve() string {
	title := cardTitleStyle.Render(fmt.Sprintf("Pace by Distance (min/%s)", m.label))

	graph := asciigraph.Plot(m.data.PaceCurve,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Precision(2),
	)

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph))
}
