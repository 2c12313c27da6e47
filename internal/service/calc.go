package service

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"vdotcalc/internal/config"
	"vdotcalc/internal/vdot"
)

const (
	metersPerMile = 1609.34
	metersPerKm   = 1000.0
)

// CalcService turns core model values into display-ready data,
// formatted for the configured units.
type CalcService struct {
	display config.DisplayConfig
}

// NewCalcService creates a new calc service
func NewCalcService(display config.DisplayConfig) *CalcService {
	return &CalcService{display: display}
}

// ScoreResult is a computed fitness score formatted for display
type ScoreResult struct {
	Score    float64
	Label    string // "Advanced Recreational", "Competitive", etc.
	Distance string // "5.0 km"
	Time     string // "20:00"
	Pace     string // "4:00/km"
}

// ScoreFromRace computes the fitness score for a race performance
func (s *CalcService) ScoreFromRace(distanceMeters, durationMinutes float64) (*ScoreResult, error) {
	score, err := vdot.Score(distanceMeters, durationMinutes)
	if err != nil {
		return nil, fmt.Errorf("computing score: %w", err)
	}

	totalSeconds := durationMinutes * 60
	return &ScoreResult{
		Score:    score,
		Label:    vdot.ScoreLabel(score),
		Distance: s.formatDistance(distanceMeters),
		Time:     vdot.FormatClock(totalSeconds),
		Pace:     s.formatRacePace(totalSeconds, distanceMeters),
	}, nil
}

// ProjectionRow is one equivalent race time formatted for display
type ProjectionRow struct {
	Name     string
	Distance string // "5.0 km" or "3.1 mi"
	Meters   string // "5,000 m"
	Time     string // "19:57" or "3:09:24"
	Pace     string // "3:59/km"
}

// ProjectionsData contains everything the equivalents screen shows
type ProjectionsData struct {
	Score float64
	Label string
	Rows  []ProjectionRow

	// PaceCurve holds the projected pace at each standard distance in
	// minutes per display unit, for charting.
	PaceCurve []float64
}

// GetProjections solves equivalent race times at every standard
// distance for the given score
func (s *CalcService) GetProjections(score float64) *ProjectionsData {
	data := &ProjectionsData{
		Score: score,
		Label: vdot.ScoreLabel(score),
	}

	for _, pt := range vdot.ProjectTimes(score) {
		seconds := float64(pt.Seconds)
		data.Rows = append(data.Rows, ProjectionRow{
			Name:     pt.Name,
			Distance: s.formatDistance(pt.Meters),
			Meters:   humanize.Commaf(pt.Meters) + " m",
			Time:     vdot.FormatClock(seconds),
			Pace:     s.formatRacePace(seconds, pt.Meters),
		})
		data.PaceCurve = append(data.PaceCurve, s.paceSeconds(seconds, pt.Meters)/60)
	}

	return data
}

// ZoneRow is one training pace zone formatted for display
type ZoneRow struct {
	Name        string
	Pace        string // "5:32/km" point or "4:28-5:25/km" band
	Description string
}

// ZonesData contains everything the zones screen shows
type ZonesData struct {
	Score float64
	Label string
	Rows  []ZoneRow
}

// GetTrainingZones derives the five training pace zones for the score
func (s *CalcService) GetTrainingZones(score float64) *ZonesData {
	data := &ZonesData{
		Score: score,
		Label: vdot.ScoreLabel(score),
	}

	for _, z := range vdot.TrainingZones(score) {
		data.Rows = append(data.Rows, ZoneRow{
			Name:        z.Name,
			Pace:        s.formatZonePace(z),
			Description: z.Description,
		})
	}

	return data
}

// PaceLabel returns the configured pace unit suffix ("km" or "mi")
func (s *CalcService) PaceLabel() string {
	if s.display.PaceUnit == "min/mi" {
		return "mi"
	}
	return "km"
}

// paceSeconds converts a total time over a distance into seconds per
// display unit.
func (s *CalcService) paceSeconds(totalSeconds, meters float64) float64 {
	if meters <= 0 {
		return 0
	}
	unit := metersPerKm
	if s.display.PaceUnit == "min/mi" {
		unit = metersPerMile
	}
	return totalSeconds / (meters / unit)
}

// perKmToUnit converts a seconds-per-km pace into the display unit.
func (s *CalcService) perKmToUnit(secondsPerKm float64) float64 {
	if s.display.PaceUnit == "min/mi" {
		return secondsPerKm * metersPerMile / metersPerKm
	}
	return secondsPerKm
}

func (s *CalcService) formatRacePace(totalSeconds, meters float64) string {
	return vdot.FormatPace(s.paceSeconds(totalSeconds, meters)) + "/" + s.PaceLabel()
}

func (s *CalcService) formatZonePace(z vdot.PaceZone) string {
	if !z.HasBand {
		return vdot.FormatPace(s.perKmToUnit(z.SecondsPerKm)) + "/" + s.PaceLabel()
	}
	// Faster bound first
	return vdot.FormatPace(s.perKmToUnit(z.MinSecondsPerKm)) + "-" +
		vdot.FormatPace(s.perKmToUnit(z.MaxSecondsPerKm)) + "/" + s.PaceLabel()
}

func (s *CalcService) formatDistance(meters float64) string {
	if s.display.DistanceUnit == "mi" {
		return fmt.Sprintf("%.1f mi", meters/metersPerMile)
	}
	return fmt.Sprintf("%.1f km", meters/metersPerKm)
}
