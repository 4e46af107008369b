package config

import "testing"

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("NOTIFYFLOW_LOG_LEVEL", "DEBUG")
	t.Setenv("NOTIFYFLOW_LOG_FILE", "/tmp/notifyflow.log")
	t.Setenv("NOTIFYFLOW_METRICS_SUMMARY", "true")

	cfg := DefaultConfig()
	if err := ApplyEnvOverrides(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LogLevel != "debug" {
		t.Fatalf("expected debug, got %q", cfg.LogLevel)
	}
	if cfg.LogFile != "/tmp/notifyflow.log" {
		t.Fatalf("unexpected log file %q", cfg.LogFile)
	}
	if !cfg.MetricsSummary {
		t.Fatal("expected metrics summary enabled")
	}
}

func TestApplyEnvOverridesInvalidBool(t *testing.T) {
	t.Setenv("NOTIFYFLOW_METRICS_SUMMARY", "maybe")
	if err := ApplyEnvOverrides(DefaultConfig()); err == nil {
		t.Fatal("expected error for invalid bool")
	}
}

func TestApplyEnvOverridesEmptyKeepsDefaults(t *testing.T) {
	t.Setenv("NOTIFYFLOW_LOG_LEVEL", "")
	cfg := DefaultConfig()
	if err := ApplyEnvOverrides(cfg); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.LogLevel != "warn" {
		t.Fatalf("expected default level to survive, got %q", cfg.LogLevel)
	}
}
