package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"vdotcalc/internal/config"
	"vdotcalc/internal/service"
)

// Screen identifiers
type Screen int

const (
	ScreenCalculator Screen = iota
	ScreenEquivalents
	ScreenZones
	ScreenHelp
)

// Score bounds for the +/- adjustment keys. The solver extrapolates
// badly outside the realistic human range, so the slider stays inside it.
const (
	minScore = 20.0
	maxScore = 85.0
)

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen

	// Screen models
	calculator  CalculatorModel
	equivalents EquivalentsModel
	zones       ZonesModel
	help        HelpModel

	calcService *service.CalcService

	// score drives the equivalents and zones screens; the calculator
	// replaces it on every successful computation.
	score float64

	// Window dimensions
	width  int
	height int
}

// NewApp creates a new App with all dependencies
func NewApp(cs *service.CalcService, race config.RaceConfig, initialScore float64) *App {
	return &App{
		screen:      ScreenCalculator,
		calcService: cs,
		score:       initialScore,
		calculator:  NewCalculatorModel(cs, race),
		help:        NewHelpModel(),
	}
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return a.calculator.Init()
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Global keybindings. Letter keys are safe to intercept even on
		// the calculator screen: the time input only needs digits, ":"
		// and ".".
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "c":
			a.screen = ScreenCalculator
			return a, a.calculator.Init()
		case "e":
			a.screen = ScreenEquivalents
			a.equivalents = NewEquivalentsModel(a.calcService, a.score, a.width, a.height)
			return a, nil
		case "z":
			a.screen = ScreenZones
			a.zones = NewZonesModel(a.calcService, a.score)
			return a, nil
		case "?":
			if a.screen != ScreenHelp {
				a.prevScreen = a.screen
				a.screen = ScreenHelp
			}
			return a, nil
		case "esc":
			if a.screen == ScreenHelp {
				a.screen = a.prevScreen
				return a, nil
			}
		case "+", "=", "-", "_":
			if a.screen == ScreenEquivalents || a.screen == ScreenZones {
				a.adjustScore(msg.String())
				return a, nil
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height

	case scoreComputedMsg:
		// Keep showing the calculator result; the projection screens
		// pick up the new score when opened.
		a.score = msg.score
		return a, nil
	}

	// Delegate to current screen
	var cmd tea.Cmd
	switch a.screen {
	case ScreenCalculator:
		var m tea.Model
		m, cmd = a.calculator.Update(msg)
		a.calculator = m.(CalculatorModel)
	case ScreenEquivalents:
		var m tea.Model
		m, cmd = a.equivalents.Update(msg)
		a.equivalents = m.(EquivalentsModel)
	case ScreenZones:
		var m tea.Model
		m, cmd = a.zones.Update(msg)
		a.zones = m.(ZonesModel)
	case ScreenHelp:
		var m tea.Model
		m, cmd = a.help.Update(msg)
		a.help = m.(HelpModel)
	}

	return a, cmd
}

// adjustScore nudges the current score by a tenth per keypress and
// rebuilds whichever projection screen is showing.
func (a *App) adjustScore(key string) {
	step := 0.1
	if key == "-" || key == "_" {
		step = -0.1
	}

	next := a.score + step
	if next < minScore {
		next = minScore
	}
	if next > maxScore {
		next = maxScore
	}
	a.score = next

	switch a.screen {
	case ScreenEquivalents:
		a.equivalents = NewEquivalentsModel(a.calcService, a.score, a.width, a.height)
	case ScreenZones:
		a.zones = NewZonesModel(a.calcService, a.score)
	}
}

// View renders the app
func (a *App) View() string {
	header := a.renderHeader()
	nav := a.renderNav()

	var content string
	switch a.screen {
	case ScreenCalculator:
		content = a.calculator.View()
	case ScreenEquivalents:
		content = a.equivalents.View()
	case ScreenZones:
		content = a.zones.View()
	case ScreenHelp:
		content = a.help.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, nav, content)
}

func (a *App) renderHeader() string {
	return headerStyle.Render("VDOT Running Calculator")
}

func (a *App) renderNav() string {
	items := []struct {
		key    string
		label  string
		screen Screen
	}{
		{"c", "Calculator", ScreenCalculator},
		{"e", "Equivalent Times", ScreenEquivalents},
		{"z", "Training Zones", ScreenZones},
		{"?", "Help", ScreenHelp},
	}

	var nav string
	for i, item := range items {
		if i > 0 {
			nav += "  "
		}

		label := "[" + item.key + "] " + item.label
		if a.screen == item.screen {
			nav += navActiveStyle.Render(label)
		} else {
			nav += navInactiveStyle.Render(label)
		}
	}

	nav += "  " + navInactiveStyle.Render("[q] Quit")

	return navStyle.Render(nav)
}

// scoreComputedMsg is sent when the calculator produces a new score
type scoreComputedMsg struct {
	score float64
}
