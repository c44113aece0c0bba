package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the on-disk scanner configuration. Every section is a partial
// override so a file only needs to name the values it changes.
type File struct {
	Extraction ExtractionOverrides `yaml:"extraction"`
	Points     PointsOverrides     `yaml:"points"`
	Autonomy   AutonomyOverrides   `yaml:"autonomy"`
}

// LoadFile reads and parses a YAML configuration file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return &f, nil
}
