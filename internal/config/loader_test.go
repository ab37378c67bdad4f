package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEmbeddedDefault(t *testing.T) {
	// Run from a temp directory with a temp home so neither the local
	// configs/ dir nor a user config interferes.
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Simulation.Cycles != 1_000_000_000 {
		t.Errorf("default cycles = %d, want 1000000000", cfg.Simulation.Cycles)
	}
	if cfg.Watch.TicksPerSecond != 10 {
		t.Errorf("default ticks_per_second = %d, want 10", cfg.Watch.TicksPerSecond)
	}
	if !cfg.Display.Color {
		t.Error("default color should be enabled")
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("simulation:\n  cycles: 42\nwatch:\n  ticks_per_second: 3\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Simulation.Cycles != 42 {
		t.Errorf("cycles = %d, want 42", cfg.Simulation.Cycles)
	}
	if cfg.Watch.TicksPerSecond != 3 {
		t.Errorf("ticks_per_second = %d, want 3", cfg.Watch.TicksPerSecond)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() should fail for a missing custom path")
	}
}

func TestDefaultMatchesEmbedded(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	loaded, err := Load("")
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if loaded != Default() {
		t.Errorf("embedded default %+v differs from Default() %+v", loaded, Default())
	}
}
