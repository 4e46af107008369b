package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ApplyEnvOverrides reads configuration values from environment variables and
// overrides fields in the provided Config. Returns an error if parsing fails.
//
// Environment variables supported:
// - NOTIFYFLOW_LOG_LEVEL (string, e.g. "debug")
// - NOTIFYFLOW_LOG_FILE (path)
// - NOTIFYFLOW_METRICS_SUMMARY (bool, "true"/"false")
func ApplyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("NOTIFYFLOW_LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv("NOTIFYFLOW_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	return setBoolEnv("NOTIFYFLOW_METRICS_SUMMARY", func(b bool) { cfg.MetricsSummary = b })
}

// setBoolEnv parses a boolean env var and calls set when it is present.
func setBoolEnv(key string, set func(bool)) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	set(b)
	return nil
}
