package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vdotcalc/internal/config"
	"vdotcalc/internal/service"
	"vdotcalc/internal/vdot"
)

// CalculatorModel is the race-result-to-score screen model
type CalculatorModel struct {
	calcService *service.CalcService
	timeInput   textinput.Model
	distIdx     int // index into vdot.StandardDistances
	result      *service.ScoreResult
	err         error
}

// NewCalculatorModel creates a new calculator model preloaded with the
// configured race
func NewCalculatorModel(cs *service.CalcService, race config.RaceConfig) CalculatorModel {
	ti := textinput.New()
	ti.Placeholder = "20:00"
	ti.CharLimit = 10
	ti.Width = 12
	ti.SetValue(race.Time)
	ti.Focus()

	m := CalculatorModel{
		calcService: cs,
		timeInput:   ti,
	}
	for i, d := range vdot.StandardDistances {
		if d.Name == race.Distance {
			m.distIdx = i
			break
		}
	}
	return m
}

// Init initializes the calculator screen
func (m CalculatorModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m CalculatorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up":
			m.distIdx = (m.distIdx + len(vdot.StandardDistances) - 1) % len(vdot.StandardDistances)
			return m, nil
		case "down":
			m.distIdx = (m.distIdx + 1) % len(vdot.StandardDistances)
			return m, nil
		case "enter":
			return m.compute()
		}
	}

	var cmd tea.Cmd
	m.timeInput, cmd = m.timeInput.Update(msg)
	return m, cmd
}

// compute parses the entered time and derives the score for the
// selected distance.
func (m CalculatorModel) compute() (tea.Model, tea.Cmd) {
	minutes, err := vdot.ParseDuration(m.timeInput.Value())
	if err != nil {
		m.err = err
		m.result = nil
		return m, nil
	}

	distance := vdot.StandardDistances[m.distIdx]
	result, err := m.calcService.ScoreFromRace(distance.Meters, minutes)
	if err != nil {
		m.err = err
		m.result = nil
		return m, nil
	}

	m.err = nil
	m.result = result

	score := result.Score
	return m, func() tea.Msg { return scoreComputedMsg{score: score} }
}

// View renders the calculator screen
func (m CalculatorModel) View() string {
	var lines []string

	lines = append(lines, cardTitleStyle.Render("Race Result"))
	lines = append(lines, fmt.Sprintf("  Distance:  %s", scoreValueStyle.Render(vdot.StandardDistances[m.distIdx].Name)))
	lines = append(lines, fmt.Sprintf("  Time:      %s", m.timeInput.View()))
	form := strings.Join(lines, "\n")

	sections := []string{cardStyle.Render(form)}

	if m.err != nil {
		sections = append(sections, errorStyle.Render(fmt.Sprintf("  %v", m.err)))
	}

	if m.result != nil {
		var result []string
		result = append(result, cardTitleStyle.Render("Fitness Score"))
		result = append(result, fmt.Sprintf("  VDOT: %s (%s)",
			scoreValueStyle.Render(fmt.Sprintf("%.1f", m.result.Score)),
			scoreLabelStyle.Render(m.result.Label),
		))
		result = append(result, mutedStyle.Render(fmt.Sprintf("  %s in %s at %s",
			m.result.Distance, m.result.Time, m.result.Pace)))
		sections = append(sections, cardStyle.Render(strings.Join(result, "\n")))
	}

	footer := statusStyle.Render("  up/down: distance  enter: compute  e: equivalent times  z: zones")
	sections = append(sections, footer)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
