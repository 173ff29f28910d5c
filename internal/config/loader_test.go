package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	if cfg.Rules.StrictFoundation {
		t.Error("Strict foundation ordering should be off by default")
	}
	if cfg.Theme.BackRune() != '░' {
		t.Errorf("Default card back = %q, want ░", cfg.Theme.BackRune())
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `
rules:
  strict_foundation: true
theme:
  card_back: "▒"
  high_contrast: true
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !cfg.Rules.StrictFoundation {
		t.Error("strict_foundation was not applied")
	}
	if cfg.Theme.BackRune() != '▒' {
		t.Errorf("card_back = %q, want ▒", cfg.Theme.BackRune())
	}
	if !cfg.Theme.HighContrast {
		t.Error("high_contrast was not applied")
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() should fail for an explicit path that does not exist")
	}
}

func TestLoadMalformedCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte(":\n  not yaml ["), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should fail for a malformed explicit config")
	}
}

func TestPartialConfigKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("rules:\n  strict_foundation: true\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if !cfg.Rules.StrictFoundation {
		t.Error("strict_foundation was not applied")
	}
	if cfg.Theme.BackRune() != '░' {
		t.Error("Unset theme fields should keep their defaults")
	}
}
