package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"vdotcalc/internal/vdot"
)

// Config represents the application configuration
type Config struct {
	Display DisplayConfig `json:"display"`
	Race    RaceConfig    `json:"race"`
}

// DisplayConfig holds display preferences
type DisplayConfig struct {
	DistanceUnit string `json:"distance_unit"`
	PaceUnit     string `json:"pace_unit"`
}

// RaceConfig holds the race preloaded into the calculator on startup
type RaceConfig struct {
	Distance string `json:"distance"` // a StandardDistances name, e.g. "5K"
	Time     string `json:"time"`     // "M:SS", "H:MM:SS", or decimal minutes
}

// ErrNoConfig is returned when the config file doesn't exist
var ErrNoConfig = errors.New("config file not found")

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Display: DisplayConfig{
			DistanceUnit: "km",
			PaceUnit:     "min/km",
		},
		Race: RaceConfig{
			Distance: "5K",
			Time:     "25:00",
		},
	}
}

// Load reads the configuration from ~/.vdotcalc/config.json
func Load() (*Config, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, ErrNoConfig
	}
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	// Apply defaults for missing values
	defaults := DefaultConfig()
	if cfg.Display.DistanceUnit == "" {
		cfg.Display.DistanceUnit = defaults.Display.DistanceUnit
	}
	if cfg.Display.PaceUnit == "" {
		cfg.Display.PaceUnit = defaults.Display.PaceUnit
	}
	if cfg.Race.Distance == "" {
		cfg.Race.Distance = defaults.Race.Distance
	}
	if cfg.Race.Time == "" {
		cfg.Race.Time = defaults.Race.Time
	}

	return &cfg, nil
}

// Save writes the configuration to ~/.vdotcalc/config.json
func Save(cfg *Config) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// CreateExample creates a config file with defaults if none exists
func CreateExample() error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		return nil // Config exists, don't overwrite
	}

	example := DefaultConfig()
	return Save(&example)
}

// Validate checks if the config has usable values
func (c *Config) Validate() error {
	if c.Display.DistanceUnit != "" && c.Display.DistanceUnit != "km" && c.Display.DistanceUnit != "mi" {
		return fmt.Errorf("display.distance_unit must be \"km\" or \"mi\", got %q", c.Display.DistanceUnit)
	}
	if c.Display.PaceUnit != "" && c.Display.PaceUnit != "min/km" && c.Display.PaceUnit != "min/mi" {
		return fmt.Errorf("display.pace_unit must be \"min/km\" or \"min/mi\", got %q", c.Display.PaceUnit)
	}

	if c.Race.Distance != "" && !knownDistance(c.Race.Distance) {
		return fmt.Errorf("race.distance %q is not a standard distance", c.Race.Distance)
	}
	if c.Race.Time != "" {
		if _, err := vdot.ParseDuration(c.Race.Time); err != nil {
			return fmt.Errorf("race.time: %w", err)
		}
	}

	return nil
}

func knownDistance(name string) bool {
	for _, d := range vdot.StandardDistances {
		if d.Name == name {
			return true
		}
	}
	return false
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".vdotcalc", "config.json"), nil
}

// GetConfigDir returns the path to the config directory
func GetConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".vdotcalc"), nil
}
