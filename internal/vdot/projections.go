package vdot

import "math"

// RaceDistance labels a standard race distance.
type RaceDistance struct {
	Name   string
	Meters float64
}

// StandardDistances is the catalog of race distances used for
// equivalent-time projections, from 1500m up to the marathon.
var StandardDistances = []RaceDistance{
	{"1500m", 1500},
	{"Mile", 1609.34},
	{"3K", 3000},
	{"5K", 5000},
	{"8K", 8000},
	{"10K", 10000},
	{"15K", 15000},
	{"Half Marathon", 21097.5},
	{"Marathon", 42195},
}

// ProjectedTime is an equivalent race time at one standard distance.
type ProjectedTime struct {
	Name    string
	Meters  float64
	Km      float64
	Minutes float64 // raw solved duration
	Seconds int     // rounded to the whole second
}

// ProjectTimes solves the equivalent race time at every standard
// distance for the given score.
func ProjectTimes(score float64) []ProjectedTime {
	times := make([]ProjectedTime, 0, len(StandardDistances))
	for _, d := range StandardDistances {
		minutes := SolveTime(d.Meters, score)
		times = append(times, ProjectedTime{
			Name:    d.Name,
			Meters:  d.Meters,
			Km:      d.Meters / 1000,
			Minutes: minutes,
			Seconds: int(math.Round(minutes * 60)),
		})
	}
	return times
}

// PaceZone is a named training pace derived from a score. Zones with a
// band report a faster and slower bound around the target pace; point
// zones report only SecondsPerKm.
type PaceZone struct {
	Name            string
	SecondsPerKm    float64
	MinSecondsPerKm float64 // faster bound, zero when HasBand is false
	MaxSecondsPerKm float64 // slower bound, zero when HasBand is false
	HasBand         bool
	Description     string
}

// zoneSpec holds the empirical tuning constants for one training zone:
// the score offset applied before solving a 1km time, and the slack
// multipliers that widen the solved pace into a band. A zero slow
// factor means a single point estimate. These values are calibration
// data, not derivable from the forward formula.
type zoneSpec struct {
	name        string
	offset      float64
	slowFactor  float64
	fastFactor  float64
	description string
}

var zoneSpecs = []zoneSpec{
	{"Easy", -8, 1.15, 0.95, "Relaxed, conversational running that builds the aerobic base."},
	{"Marathon", -2, 0, 0, "Steady effort at goal marathon race pace."},
	{"Threshold", 0.5, 1.03, 0.97, "Comfortably hard running that raises the lactate threshold."},
	{"Interval", 4, 1.02, 0.98, "Hard 3-5 minute repeats close to VO2max."},
	{"Repetition", 7, 0, 0, "Short, fast repeats with full recovery for speed and economy."},
}

// TrainingZones derives the five standard training pace zones for the
// given score by solving a 1km time at each zone's shifted score.
func TrainingZones(score float64) []PaceZone {
	zones := make([]PaceZone, 0, len(zoneSpecs))
	for _, z := range zoneSpecs {
		perKm := SolveTime(1000, score+z.offset) * 60

		zone := PaceZone{
			Name:         z.name,
			SecondsPerKm: perKm,
			Description:  z.description,
		}
		if z.slowFactor > 0 {
			zone.HasBand = true
			zone.MinSecondsPerKm = perKm * z.fastFactor
			zone.MaxSecondsPerKm = perKm * z.slowFactor
		}
		zones = append(zones, zone)
	}
	return zones
}
