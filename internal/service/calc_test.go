package service

import (
	"errors"
	"strings"
	"testing"

	"vdotcalc/internal/config"
	"vdotcalc/internal/vdot"
)

func metricService() *CalcService {
	return NewCalcService(config.DefaultConfig().Display)
}

func imperialService() *CalcService {
	return NewCalcService(config.DisplayConfig{DistanceUnit: "mi", PaceUnit: "min/mi"})
}

func TestScoreFromRace(t *testing.T) {
	result, err := metricService().ScoreFromRace(5000, 20)
	if err != nil {
		t.Fatalf("ScoreFromRace() error = %v", err)
	}

	if result.Score != 49.8 {
		t.Errorf("Score = %v, want 49.8", result.Score)
	}
	if result.Label != "Advanced Recreational" {
		t.Errorf("Label = %q, want %q", result.Label, "Advanced Recreational")
	}
	if result.Distance != "5.0 km" {
		t.Errorf("Distance = %q, want %q", result.Distance, "5.0 km")
	}
	if result.Time != "20:00" {
		t.Errorf("Time = %q, want %q", result.Time, "20:00")
	}
	if result.Pace != "4:00/km" {
		t.Errorf("Pace = %q, want %q", result.Pace, "4:00/km")
	}
}

func TestScoreFromRace_ImperialUnits(t *testing.T) {
	result, err := imperialService().ScoreFromRace(5000, 20)
	if err != nil {
		t.Fatalf("ScoreFromRace() error = %v", err)
	}

	if result.Distance != "3.1 mi" {
		t.Errorf("Distance = %q, want %q", result.Distance, "3.1 mi")
	}
	if result.Pace != "6:26/mi" {
		t.Errorf("Pace = %q, want %q", result.Pace, "6:26/mi")
	}
	// The score itself is unit-independent
	if result.Score != 49.8 {
		t.Errorf("Score = %v, want 49.8", result.Score)
	}
}

func TestScoreFromRace_InvalidInput(t *testing.T) {
	_, err := metricService().ScoreFromRace(0, 20)
	if !errors.Is(err, vdot.ErrNonPositiveInput) {
		t.Errorf("ScoreFromRace() error = %v, want ErrNonPositiveInput", err)
	}
}

func TestGetProjections(t *testing.T) {
	data := metricService().GetProjections(49.8)

	if data.Label != "Advanced Recreational" {
		t.Errorf("Label = %q, want %q", data.Label, "Advanced Recreational")
	}
	if len(data.Rows) != len(vdot.StandardDistances) {
		t.Fatalf("got %d rows, want %d", len(data.Rows), len(vdot.StandardDistances))
	}
	if len(data.PaceCurve) != len(data.Rows) {
		t.Fatalf("PaceCurve has %d points, want %d", len(data.PaceCurve), len(data.Rows))
	}

	for _, row := range data.Rows {
		if row.Name == "" || row.Distance == "" || row.Time == "" {
			t.Errorf("row %+v has empty fields", row)
		}
		if !strings.HasSuffix(row.Pace, "/km") {
			t.Errorf("row %s pace = %q, want /km suffix", row.Name, row.Pace)
		}
	}

	// Pace slows as the distance grows
	for i := 1; i < len(data.PaceCurve); i++ {
		if data.PaceCurve[i] <= data.PaceCurve[i-1] {
			t.Errorf("pace curve should increase: point %d (%v) <= point %d (%v)",
				i, data.PaceCurve[i], i-1, data.PaceCurve[i-1])
		}
	}

	// Spot check the humanized meters column
	for _, row := range data.Rows {
		if row.Name == "Marathon" && row.Meters != "42,195 m" {
			t.Errorf("Marathon meters = %q, want %q", row.Meters, "42,195 m")
		}
	}
}

func TestGetTrainingZones(t *testing.T) {
	data := metricService().GetTrainingZones(50)

	if len(data.Rows) != 5 {
		t.Fatalf("got %d zones, want 5", len(data.Rows))
	}

	banded := map[string]bool{"Easy": true, "Threshold": true, "Interval": true}
	for _, row := range data.Rows {
		if row.Description == "" {
			t.Errorf("zone %s has empty description", row.Name)
		}
		if !strings.HasSuffix(row.Pace, "/km") {
			t.Errorf("zone %s pace = %q, want /km suffix", row.Name, row.Pace)
		}
		hasBand := strings.Contains(row.Pace, "-")
		if hasBand != banded[row.Name] {
			t.Errorf("zone %s pace = %q, band = %v, want %v", row.Name, row.Pace, hasBand, banded[row.Name])
		}
	}
}

func TestPaceLabel(t *testing.T) {
	if got := metricService().PaceLabel(); got != "km" {
		t.Errorf("PaceLabel() = %q, want %q", got, "km")
	}
	if got := imperialService().PaceLabel(); got != "mi" {
		t.Errorf("PaceLabel() = %q, want %q", got, "mi")
	}
}
