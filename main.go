package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"vdotcalc/internal/config"
	"vdotcalc/internal/service"
	"vdotcalc/internal/tui"
	"vdotcalc/internal/vdot"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Load configuration, writing defaults on first run
	cfg, err := config.Load()
	if errors.Is(err, config.ErrNoConfig) {
		if err := config.CreateExample(); err != nil {
			return fmt.Errorf("creating example config: %w", err)
		}
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	calcService := service.NewCalcService(cfg.Display)

	// One-shot mode for scripting: vdotcalc <distance> <time>
	if len(os.Args) == 3 {
		return runOnce(calcService, os.Args[1], os.Args[2])
	}
	if len(os.Args) != 1 {
		return fmt.Errorf("usage: %s [<distance> <time>]", os.Args[0])
	}

	app := tui.NewApp(calcService, cfg.Race, startingScore(calcService, cfg.Race))

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running ui: %w", err)
	}

	return nil
}

// startingScore seeds the projection screens from the configured race
// so they show something sensible before the first computation.
func startingScore(cs *service.CalcService, race config.RaceConfig) float64 {
	const fallback = 40.0

	meters, err := lookupDistance(race.Distance)
	if err != nil {
		return fallback
	}
	minutes, err := vdot.ParseDuration(race.Time)
	if err != nil {
		return fallback
	}
	result, err := cs.ScoreFromRace(meters, minutes)
	if err != nil {
		return fallback
	}
	return result.Score
}

func runOnce(cs *service.CalcService, distanceArg, timeArg string) error {
	meters, err := lookupDistance(distanceArg)
	if err != nil {
		return err
	}
	minutes, err := vdot.ParseDuration(timeArg)
	if err != nil {
		return err
	}
	result, err := cs.ScoreFromRace(meters, minutes)
	if err != nil {
		return err
	}

	fmt.Printf("VDOT %.1f (%s)\n", result.Score, result.Label)
	fmt.Printf("%s in %s at %s\n", result.Distance, result.Time, result.Pace)

	fmt.Println()
	fmt.Println("Equivalent race times:")
	for _, row := range cs.GetProjections(result.Score).Rows {
		fmt.Printf("  %-15s %10s  %10s\n", row.Name, row.Time, row.Pace)
	}

	fmt.Println()
	fmt.Println("Training zones:")
	for _, row := range cs.GetTrainingZones(result.Score).Rows {
		fmt.Printf("  %-12s %-16s %s\n", row.Name, row.Pace, row.Description)
	}

	return nil
}

// lookupDistance resolves a standard distance name ("5K", "Marathon")
// or a raw meter count ("5000") to meters.
func lookupDistance(arg string) (float64, error) {
	for _, d := range vdot.StandardDistances {
		if strings.EqualFold(d.Name, arg) {
			return d.Meters, nil
		}
	}

	meters, err := strconv.ParseFloat(arg, 64)
	if err != nil || meters <= 0 {
		return 0, fmt.Errorf("unknown distance %q (use a standard name or meters)", arg)
	}
	return meters, nil
}
