package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
data_dir = "` + filepath.Join(dir, "data") + `"
log_dir = "` + filepath.Join(dir, "logs") + `"

[matching]
fuzzy_threshold = 0.8
ambiguity_margin = 0.1

[logging]
format = "json"
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("unexpected resolution: %q exists=%v", resolved, exists)
	}
	if cfg.Matching.FuzzyThreshold != 0.8 {
		t.Errorf("fuzzy_threshold = %v, want 0.8", cfg.Matching.FuzzyThreshold)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("logging.format = %q, want json", cfg.Logging.Format)
	}
	// Untouched sections keep defaults.
	if cfg.Source.BaseURL != defaultBaseURL {
		t.Errorf("source.base_url = %q, want default", cfg.Source.BaseURL)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, _, exists, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if exists {
		t.Fatal("expected exists=false for missing file")
	}
	if cfg.Matching.FuzzyThreshold != 0.75 {
		t.Errorf("unexpected default threshold: %v", cfg.Matching.FuzzyThreshold)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"threshold", func(c *Config) { c.Matching.FuzzyThreshold = 1.5 }, "fuzzy_threshold"},
		{"margin", func(c *Config) { c.Matching.AmbiguityMargin = 0.9 }, "ambiguity_margin"},
		{"chair", func(c *Config) { c.Matching.ChairConfidence = -0.1 }, "chair_confidence"},
		{"url", func(c *Config) { c.Source.BaseURL = "not a url" }, "base_url"},
		{"timeout", func(c *Config) { c.Source.RequestTimeout = 0 }, "request_timeout"},
		{"start date", func(c *Config) { c.Ingest.StartDate = "05-03-2024" }, "start_date"},
		{"format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			if err := cfg.normalize(); err != nil {
				t.Fatalf("normalize: %v", err)
			}
			tt.mutate(&cfg)
			err := cfg.Validate()
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Validate() = %v, want mention of %q", err, tt.want)
			}
		})
	}
}

func TestDatabaseAndLockPaths(t *testing.T) {
	cfg := Default()
	cfg.Paths.DataDir = "/tmp/hansard-test"
	if got := cfg.DatabasePath(); got != "/tmp/hansard-test/hansard.db" {
		t.Errorf("DatabasePath() = %q", got)
	}
	if got := cfg.LockPath(); got != "/tmp/hansard-test/ingest.lock" {
		t.Errorf("LockPath() = %q", got)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	if !strings.Contains(string(data), "[matching]") {
		t.Error("sample config missing [matching] section")
	}
}
