package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultPath is where LoadConfig looks for presentation settings
const DefaultPath = ".planaudit.yaml"

// Config represents planaudit presentation options. The scan root, excluded
// filename, and report limits are deliberately not configurable: the audit
// contract is fixed so output stays comparable between runs.
type Config struct {
	// LogLevel sets the diagnostic verbosity on stderr (trace, debug, info, warn, error)
	LogLevel string `yaml:"log_level"`

	// NoColor disables ANSI color even when stdout is a terminal
	NoColor bool `yaml:"no_color"`
}

// DefaultConfig returns a Config with sensible default values
func DefaultConfig() *Config {
	return &Config{
		LogLevel: "warn",
		NoColor:  false,
	}
}

// LoadConfig loads configuration from the specified file path.
// If the file doesn't exist, returns default configuration without error.
// If the file exists but is malformed, returns an error.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		// File doesn't exist, return defaults (not an error)
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}
