package vdot

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatClock formats a duration in seconds as "H:MM:SS", or "M:SS"
// under an hour. Non-positive and non-finite inputs render as "0:00".
func FormatClock(totalSeconds float64) string {
	if !isPositiveFinite(totalSeconds) {
		return "0:00"
	}

	secs := int(math.Round(totalSeconds))
	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60

	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// FormatPace formats a pace in seconds per unit distance as "M:SS".
// Non-positive and non-finite inputs render as "0:00".
func FormatPace(secondsPerUnit float64) string {
	if !isPositiveFinite(secondsPerUnit) {
		return "0:00"
	}

	secs := int(math.Round(secondsPerUnit))
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

func isPositiveFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

// ParseDuration parses a race time as "H:MM:SS", "M:SS", or decimal
// minutes ("20.5") into minutes.
func ParseDuration(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}

	parts := strings.Split(s, ":")
	switch len(parts) {
	case 1:
		minutes, err := strconv.ParseFloat(parts[0], 64)
		if err != nil || !isPositiveFinite(minutes) {
			return 0, fmt.Errorf("invalid duration %q", s)
		}
		return minutes, nil

	case 2:
		m, err1 := strconv.Atoi(parts[0])
		sec, err2 := strconv.Atoi(parts[1])
		if err1 != nil || err2 != nil || m < 0 || sec < 0 || sec > 59 || m+sec == 0 {
			return 0, fmt.Errorf("invalid duration %q", s)
		}
		return float64(m) + float64(sec)/60, nil

	case 3:
		h, err1 := strconv.Atoi(parts[0])
		m, err2 := strconv.Atoi(parts[1])
		sec, err3 := strconv.Atoi(parts[2])
		if err1 != nil || err2 != nil || err3 != nil ||
			h < 0 || m < 0 || m > 59 || sec < 0 || sec > 59 || h+m+sec == 0 {
			return 0, fmt.Errorf("invalid duration %q", s)
		}
		return float64(h)*60 + float64(m) + float64(sec)/60, nil

	default:
		return 0, fmt.Errorf("invalid duration %q", s)
	}
}
