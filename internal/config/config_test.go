package config

import (
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Display.DistanceUnit != "km" {
		t.Errorf("Display.DistanceUnit = %q, want %q", cfg.Display.DistanceUnit, "km")
	}
	if cfg.Display.PaceUnit != "min/km" {
		t.Errorf("Display.PaceUnit = %q, want %q", cfg.Display.PaceUnit, "min/km")
	}
	if cfg.Race.Distance != "5K" {
		t.Errorf("Race.Distance = %q, want %q", cfg.Race.Distance, "5K")
	}
	if cfg.Race.Time != "25:00" {
		t.Errorf("Race.Time = %q, want %q", cfg.Race.Time, "25:00")
	}

	// Defaults must pass their own validation
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		expectError bool
		errContains string
	}{
		{
			name: "valid config",
			config: Config{
				Display: DisplayConfig{DistanceUnit: "mi", PaceUnit: "min/mi"},
				Race:    RaceConfig{Distance: "Marathon", Time: "3:30:00"},
			},
			expectError: false,
		},
		{
			name:        "empty config is valid",
			config:      Config{},
			expectError: false,
		},
		{
			name: "bad distance unit",
			config: Config{
				Display: DisplayConfig{DistanceUnit: "furlongs"},
			},
			expectError: true,
			errContains: "distance_unit",
		},
		{
			name: "bad pace unit",
			config: Config{
				Display: DisplayConfig{PaceUnit: "min/furlong"},
			},
			expectError: true,
			errContains: "pace_unit",
		},
		{
			name: "unknown race distance",
			config: Config{
				Race: RaceConfig{Distance: "100 miles"},
			},
			expectError: true,
			errContains: "race.distance",
		},
		{
			name: "unparseable race time",
			config: Config{
				Race: RaceConfig{Distance: "5K", Time: "fast"},
			},
			expectError: true,
			errContains: "race.time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if tt.expectError {
				if err == nil {
					t.Error("expected error, got nil")
				} else if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q should contain %q", err.Error(), tt.errContains)
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}
		})
	}
}

func TestKnownDistance(t *testing.T) {
	for _, name := range []string{"1500m", "Mile", "5K", "Half Marathon", "Marathon"} {
		if !knownDistance(name) {
			t.Errorf("knownDistance(%q) = false, want true", name)
		}
	}
	if knownDistance("Parkrun") {
		t.Error(`knownDistance("Parkrun") = true, want false`)
	}
}
