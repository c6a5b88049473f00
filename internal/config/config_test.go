package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "fetcher.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	yaml := `
run:
  horizon_days: 90
sources:
  forexfactory:
    base_url: https://example.test/calendar.php
  investing:
    disabled: true
output:
  dir: /tmp/events
log:
  level: debug
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Run.HorizonDays != 90 {
		t.Errorf("Run.HorizonDays = %d, want 90", cfg.Run.HorizonDays)
	}
	if cfg.Sources.ForexFactory.BaseURL != "https://example.test/calendar.php" {
		t.Errorf("ForexFactory.BaseURL = %q", cfg.Sources.ForexFactory.BaseURL)
	}
	if !cfg.Sources.Investing.Disabled {
		t.Error("Investing.Disabled = false, want true")
	}
	if cfg.Output.Dir != "/tmp/events" {
		t.Errorf("Output.Dir = %q, want /tmp/events", cfg.Output.Dir)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
}

func TestLoadWithEnvSubstitution(t *testing.T) {
	t.Setenv("TEST_CALENDAR_URL", "https://mirror.test/calendar.php")

	yaml := `
sources:
  forexfactory:
    base_url: ${TEST_CALENDAR_URL}
`
	path := writeTempFile(t, yaml)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Sources.ForexFactory.BaseURL != "https://mirror.test/calendar.php" {
		t.Errorf("BaseURL = %q, want env-substituted value", cfg.Sources.ForexFactory.BaseURL)
	}
}

func TestLoadAndValidateAppliesDefaults(t *testing.T) {
	path := writeTempFile(t, "run:\n  horizon_days: 30\n")

	cfg, err := LoadAndValidate(path)
	if err != nil {
		t.Fatalf("LoadAndValidate failed: %v", err)
	}

	if cfg.Run.HorizonDays != 30 {
		t.Errorf("Run.HorizonDays = %d, want 30", cfg.Run.HorizonDays)
	}
	if cfg.Sources.Fed.Timeout != DefaultHTTPTimeout {
		t.Errorf("Fed.Timeout = %v, want %v", cfg.Sources.Fed.Timeout, DefaultHTTPTimeout)
	}
	if cfg.Sources.Fed.MaxRetries != DefaultMaxRetries {
		t.Errorf("Fed.MaxRetries = %d, want %d", cfg.Sources.Fed.MaxRetries, DefaultMaxRetries)
	}
	if cfg.Output.JSONFile != DefaultJSONFile {
		t.Errorf("Output.JSONFile = %q, want %q", cfg.Output.JSONFile, DefaultJSONFile)
	}
	if cfg.Log.Level != DefaultLogLevel {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, DefaultLogLevel)
	}
}

func TestLoadAndValidateEmptyPath(t *testing.T) {
	cfg, err := LoadAndValidate("")
	if err != nil {
		t.Fatalf("LoadAndValidate(\"\") failed: %v", err)
	}
	if cfg.Run.HorizonDays != DefaultHorizonDays {
		t.Errorf("Run.HorizonDays = %d, want %d", cfg.Run.HorizonDays, DefaultHorizonDays)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config fails validation: %v", err)
	}
}

func TestValidateErrors(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"negative horizon", func(c *Config) { c.Run.HorizonDays = -1 }},
		{"bad log level", func(c *Config) { c.Log.Level = "verbose" }},
		{"colliding output files", func(c *Config) { c.Output.PineFile = c.Output.JSONFile }},
		{"empty json file", func(c *Config) { c.Output.JSONFile = "" }},
		{"zero timeout", func(c *Config) { c.Sources.Fed.Timeout = 0 }},
		{"negative retries", func(c *Config) { c.Sources.ForexFactory.MaxRetries = -1 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("Validate succeeded, want error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load succeeded on missing file, want error")
	}
}
