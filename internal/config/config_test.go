package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad_MissingConfigFallsBackToDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load(filepath.Join(home, "does-not-exist.toml"))
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg != Default() {
		t.Fatalf("cfg = %#v, want defaults %#v", cfg, Default())
	}
}

func TestLoad_ParsesFullConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
mouse = false
hints = false
dismiss_on_backdrop = false
event_capacity = 50
dialog_width = 72
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Mouse || cfg.Hints || cfg.DismissOnBackdrop {
		t.Fatalf("bool flags = %#v, want all false", cfg)
	}
	if cfg.EventCapacity != 50 {
		t.Fatalf("EventCapacity = %d, want 50", cfg.EventCapacity)
	}
	if cfg.DialogWidth != 72 {
		t.Fatalf("DialogWidth = %d, want 72", cfg.DialogWidth)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`event_capacity = 10`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !cfg.Mouse || !cfg.Hints || !cfg.DismissOnBackdrop {
		t.Fatalf("bool flags = %#v, want defaults to survive a partial file", cfg)
	}
	if cfg.EventCapacity != 10 {
		t.Fatalf("EventCapacity = %d, want 10", cfg.EventCapacity)
	}
}

func TestLoad_InvalidValuesUseDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`
event_capacity = -5
dialog_width = 0
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.EventCapacity != defaultEventCapacity {
		t.Fatalf("EventCapacity = %d, want default %d", cfg.EventCapacity, defaultEventCapacity)
	}
	if cfg.DialogWidth != 0 {
		t.Fatalf("DialogWidth = %d, want 0", cfg.DialogWidth)
	}
}

func TestLoad_InvalidTOMLFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`mouse = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	_, err := Load(path)
	if err == nil {
		t.Fatalf("Load returned nil error, want parse error")
	}
	if !strings.Contains(err.Error(), "parse config") {
		t.Fatalf("Load error = %q, want it to mention parse config", err.Error())
	}
}

func TestPath_ExpandsTildeAndDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := Path("")
	if err != nil {
		t.Fatalf("Path returned error: %v", err)
	}
	if !strings.HasPrefix(got, home) {
		t.Fatalf("Path = %q, want it under HOME %q", got, home)
	}

	got, err = Path("~/custom.toml")
	if err != nil {
		t.Fatalf("Path returned error: %v", err)
	}
	if want := filepath.Join(home, "custom.toml"); got != want {
		t.Fatalf("Path = %q, want %q", got, want)
	}
}

func TestExpandPath_EmptyErrors(t *testing.T) {
	if _, err := expandPath("   "); err == nil {
		t.Fatalf("expandPath returned nil error, want error")
	}
}

func TestStore_SetBumpsGeneration(t *testing.T) {
	s := NewStore(Default())

	cfg, gen := s.Get()
	if gen != 1 {
		t.Fatalf("initial generation = %d, want 1", gen)
	}
	if cfg != Default() {
		t.Fatalf("cfg = %#v, want defaults", cfg)
	}

	next := Default()
	next.EventCapacity = 99
	s.Set(next)

	cfg, gen = s.Get()
	if gen != 2 {
		t.Fatalf("generation = %d after Set, want 2", gen)
	}
	if cfg.EventCapacity != 99 {
		t.Fatalf("EventCapacity = %d, want 99", cfg.EventCapacity)
	}
	if s.Generation() != 2 {
		t.Fatalf("Generation() = %d, want 2", s.Generation())
	}
}
