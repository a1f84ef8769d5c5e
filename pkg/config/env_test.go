package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv(EnvWindowWidth, "640")
	t.Setenv(EnvWindowHeight, "480")
	t.Setenv(EnvTitle, "Cobot")

	cfg := DefaultLandingConfig()
	if err := ApplyEnvOverrides(cfg); err != nil {
		t.Fatalf("ApplyEnvOverrides() error: %v", err)
	}
	if cfg.Window.Width != 640 || cfg.Window.Height != 480 {
		t.Errorf("expected 640x480, got %dx%d", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.Window.Title != "Cobot" {
		t.Errorf("expected title 'Cobot', got %q", cfg.Window.Title)
	}
}

func TestApplyEnvOverridesInvalid(t *testing.T) {
	t.Setenv(EnvWindowWidth, "-3")

	cfg := DefaultLandingConfig()
	if err := ApplyEnvOverrides(cfg); err == nil {
		t.Error("expected error for negative width")
	}
	if cfg.Window.Width != DefaultWindowWidth {
		t.Errorf("width should be untouched on error, got %d", cfg.Window.Width)
	}
}

func TestLoadEnvFile(t *testing.T) {
	if err := LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Errorf("missing env file should not be an error, got %v", err)
	}

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("LANDING_TEST_ONLY_KEY=42\n"), 0o644); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}
	t.Cleanup(func() { os.Unsetenv("LANDING_TEST_ONLY_KEY") })

	if err := LoadEnvFile(path); err != nil {
		t.Fatalf("LoadEnvFile() error: %v", err)
	}
	if got := os.Getenv("LANDING_TEST_ONLY_KEY"); got != "42" {
		t.Errorf("expected LANDING_TEST_ONLY_KEY=42, got %q", got)
	}
}
