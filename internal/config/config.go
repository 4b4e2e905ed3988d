package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the optional tcomp.yaml configuration.
type Config struct {
	DefaultBank string       `yaml:"default_bank"`
	Output      OutputConfig `yaml:"output"`
	Log         LogConfig    `yaml:"log"`
}

// OutputConfig controls how the result tables are rendered.
type OutputConfig struct {
	DateLayout string `yaml:"date_layout"`
}

// LogConfig controls diagnostic logging.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads a tcomp.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns the configuration used when no tcomp.yaml exists.
func Default() *Config {
	return &Config{
		DefaultBank: "millennium",
		Output: OutputConfig{
			DateLayout: "2006-01-02 15:04:05",
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}
