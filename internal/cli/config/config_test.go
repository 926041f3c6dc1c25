package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/overload-dev/overload/pkg/dispatch"
)

func inTempDir(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()
	oldWd, _ := os.Getwd()
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(oldWd) })
	return tmpDir
}

func TestLoadDefaults(t *testing.T) {
	inTempDir(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error loading defaults, got %v", err)
	}

	if cfg.Dispatch.Ambiguity != "first_match" {
		t.Errorf("expected default ambiguity 'first_match', got %s", cfg.Dispatch.Ambiguity)
	}
	if cfg.Dispatch.Cache {
		t.Error("expected cache disabled by default")
	}
	if cfg.Output.NoColor {
		t.Error("expected color enabled by default")
	}
	if cfg.Policy() != dispatch.FirstMatchWins {
		t.Errorf("expected FirstMatchWins policy, got %v", cfg.Policy())
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := inTempDir(t)

	content := []byte("dispatch:\n  ambiguity: error\n  cache: true\noutput:\n  no_color: true\n")
	if err := os.WriteFile(filepath.Join(tmpDir, "overload.yml"), content, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.Dispatch.Ambiguity != "error" {
		t.Errorf("expected ambiguity 'error', got %s", cfg.Dispatch.Ambiguity)
	}
	if !cfg.Dispatch.Cache {
		t.Error("expected cache enabled")
	}
	if !cfg.Output.NoColor {
		t.Error("expected color disabled")
	}
	if cfg.Policy() != dispatch.AmbiguityError {
		t.Errorf("expected AmbiguityError policy, got %v", cfg.Policy())
	}
}

func TestLoadRejectsInvalidAmbiguity(t *testing.T) {
	tmpDir := inTempDir(t)

	content := []byte("dispatch:\n  ambiguity: newest_wins\n")
	if err := os.WriteFile(filepath.Join(tmpDir, "overload.yml"), content, 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected an error for an invalid ambiguity policy")
	}
}
