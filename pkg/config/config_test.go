package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultPaths(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default config invalid: %v", err)
	}
	if got := cfg.CleanCSVPath(); got != filepath.Join("output", "clean_engine_perf.csv") {
		t.Errorf("Unexpected clean csv path %s", got)
	}
	if cfg.ParquetPath() != "" {
		t.Error("Parquet should be disabled by default")
	}
}

func TestLoadHCLOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "enginefit.hcl")
	content := `
raw_csv       = "raw/icao.csv"
output_dir    = "build"
write_parquet = true
log_format    = "json"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.RawCSV != "raw/icao.csv" || cfg.OutputDir != "build" || cfg.LogFormat != "json" {
		t.Errorf("Overrides not applied: %+v", cfg)
	}
	if cfg.LogLevel != "info" || cfg.CleanCSV != DefaultCleanCSV {
		t.Errorf("Defaults lost for absent attributes: %+v", cfg)
	}
	if got := cfg.ParquetPath(); got != filepath.Join("build", "clean_engine_perf.parquet") {
		t.Errorf("Unexpected parquet path %s", got)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.hcl")
	if err := os.WriteFile(path, []byte(`log_level = "loud"`), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("Expected validation error for unknown log level")
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.hcl")); err == nil {
		t.Error("Expected error for missing explicit config file")
	}
}

func TestCleanCSVPathWithDirectory(t *testing.T) {
	cfg := Default()
	cfg.CleanCSV = filepath.Join("elsewhere", "clean.csv")
	if got := cfg.CleanCSVPath(); got != cfg.CleanCSV {
		t.Errorf("Expected %s, got %s", cfg.CleanCSV, got)
	}
}
