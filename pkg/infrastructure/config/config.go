package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RunConfig holds the file paths and defaults for a pipeline run. Nothing
// here is baked into any constructor; every path arrives through this
// struct, populated from flags or a config file.
type RunConfig struct {
	BOMFile       string `yaml:"bom"`
	MaterialsFile string `yaml:"materials"`
	LimitsFile    string `yaml:"limits"`
	Material      string `yaml:"material"`
	LegacyLimits  bool   `yaml:"legacy_limits"`
	OutputDir     string `yaml:"output"`
	Format        string `yaml:"format"`
	Verbose       bool   `yaml:"verbose"`
}

// Load reads a RunConfig from a YAML file
func Load(filename string) (*RunConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file %s: %w", filename, err)
	}

	var cfg RunConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", filename, err)
	}
	return &cfg, nil
}

// Merge overlays non-zero flag values onto file values. Flags win.
func (c *RunConfig) Merge(flags RunConfig) *RunConfig {
	merged := *c
	if flags.BOMFile != "" {
		merged.BOMFile = flags.BOMFile
	}
	if flags.MaterialsFile != "" {
		merged.MaterialsFile = flags.MaterialsFile
	}
	if flags.LimitsFile != "" {
		merged.LimitsFile = flags.LimitsFile
	}
	if flags.Material != "" {
		merged.Material = flags.Material
	}
	if flags.OutputDir != "" {
		merged.OutputDir = flags.OutputDir
	}
	if flags.Format != "" {
		merged.Format = flags.Format
	}
	if flags.LegacyLimits {
		merged.LegacyLimits = true
	}
	if flags.Verbose {
		merged.Verbose = true
	}
	return &merged
}
