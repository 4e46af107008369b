package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config holds runtime configuration for notifyflow. None of it changes the
// interactive session; it only tunes logging and the metrics summary.
type Config struct {
	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `json:"log_level" yaml:"log_level" validate:"oneof=debug info warn error"`
	// LogFile, when set, receives a copy of every log entry.
	LogFile string `json:"log_file" yaml:"log_file"`

	// MetricsSummary logs the metrics snapshot when the session ends.
	MetricsSummary bool `json:"metrics_summary" yaml:"metrics_summary"`
}

// DefaultConfig returns a sane default configuration
func DefaultConfig() *Config {
	return &Config{
		LogLevel:       "warn",
		LogFile:        "",
		MetricsSummary: false,
	}
}

// Validate checks field constraints declared in struct tags.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// LoadConfigFromFile loads config from a YAML/JSON file
func LoadConfigFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
