package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDotEnvSetsUnsetVariables(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	if err := os.WriteFile(path, []byte("STATSAPI_SCHEMA=loose\nPROVIDER=fixture\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv(envProvider, "statsapi")
	t.Setenv(envStatsSchema, "")
	os.Unsetenv(envStatsSchema)

	if err := LoadDotEnv(path); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	cfg := Load()
	if cfg.StatsAPI.Schema != "loose" {
		t.Fatalf("expected schema from env file, got %s", cfg.StatsAPI.Schema)
	}
	if cfg.Provider != "statsapi" {
		t.Fatalf("expected existing env to win, got %s", cfg.Provider)
	}
}

func TestLoadDotEnvIgnoresMissingFile(t *testing.T) {
	if err := LoadDotEnv(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Fatalf("expected missing file to be ignored, got %v", err)
	}
}
