// Package config loads the optional per-workspace settings file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the settings file looked up inside the workspace directory.
const FileName = "photodex.yaml"

// Config holds the tunables for the pipeline. Command-line flags override
// these when explicitly set.
type Config struct {
	TimeWindowMins float64 `yaml:"time_window_mins"`
	DistWindowM    float64 `yaml:"distance_window_m"`
	TopN           int     `yaml:"top_n"`
	ReviewLimit    int     `yaml:"review_limit"`
	VehiclesDir    string  `yaml:"vehicles_dir"`
	Copy           bool    `yaml:"copy"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		TimeWindowMins: 45,
		DistWindowM:    150,
		TopN:           3,
		ReviewLimit:    100,
		VehiclesDir:    "Vehicles",
	}
}

// Load reads photodex.yaml from the workspace, falling back to defaults when
// the file is absent. Fields missing from the file keep their defaults.
func Load(workspace string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(filepath.Join(workspace, FileName))
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}
