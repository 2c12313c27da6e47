package vdot

import (
	"errors"
	"math"
	"testing"
)

func TestScore(t *testing.T) {
	tests := []struct {
		name            string
		distanceMeters  float64
		durationMinutes float64
		want            float64
		tolerance       float64
	}{
		{
			name:            "5K at 20:00 (250 m/min)",
			distanceMeters:  5000,
			durationMinutes: 20,
			want:            49.8,
			tolerance:       0, // pinned exactly, the formula is normative
		},
		{
			name:            "10K at 50:00 (200 m/min)",
			distanceMeters:  10000,
			durationMinutes: 50,
			want:            40.0,
			tolerance:       0,
		},
		{
			name:            "mile at 6:00",
			distanceMeters:  1609.34,
			durationMinutes: 6,
			want:            48.4,
			tolerance:       0.1,
		},
		{
			name:            "marathon at 3:00:00",
			distanceMeters:  42195,
			durationMinutes: 180,
			want:            53.5,
			tolerance:       0.1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Score(tt.distanceMeters, tt.durationMinutes)
			if err != nil {
				t.Fatalf("Score() error = %v", err)
			}
			if math.Abs(got-tt.want) > tt.tolerance {
				t.Errorf("Score() = %v, want %v (±%v)", got, tt.want, tt.tolerance)
			}
		})
	}
}

func TestScore_InvalidInput(t *testing.T) {
	tests := []struct {
		name            string
		distanceMeters  float64
		durationMinutes float64
	}{
		{"zero distance", 0, 20},
		{"negative distance", -5000, 20},
		{"zero duration", 5000, 0},
		{"negative duration", 5000, -20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Score(tt.distanceMeters, tt.durationMinutes)
			if !errors.Is(err, ErrNonPositiveInput) {
				t.Errorf("Score() error = %v, want ErrNonPositiveInput", err)
			}
			if got != 0 {
				t.Errorf("Score() = %v, want 0 on invalid input", got)
			}
		})
	}
}

func TestScore_RoundsToOneDecimal(t *testing.T) {
	got, err := Score(5000, 20)
	if err != nil {
		t.Fatalf("Score() error = %v", err)
	}
	if got != math.Round(got*10)/10 {
		t.Errorf("Score() = %v, want one decimal place", got)
	}
}

func TestScore_MonotonicInDuration(t *testing.T) {
	// For a fixed distance the score must strictly decrease as duration
	// grows, over the whole realistic range of human efforts.
	prev := math.Inf(1)
	for minutes := 3.0; minutes <= 300; minutes++ {
		got := rawScore(5000, minutes)
		if got >= prev {
			t.Fatalf("rawScore(5000, %v) = %v, not below %v at previous duration", minutes, got, prev)
		}
		prev = got
	}
}

func TestScoreLabel(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{80, "Elite"},
		{75, "Elite"},
		{70, "Highly Competitive"},
		{60, "Competitive"},
		{50, "Advanced Recreational"},
		{40, "Intermediate"},
		{35, "Beginner"},
		{25, "Novice"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := ScoreLabel(tt.score); got != tt.want {
				t.Errorf("ScoreLabel(%v) = %v, want %v", tt.score, got, tt.want)
			}
		})
	}
}
