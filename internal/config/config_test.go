package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Driver != "none" {
		t.Errorf("expected driver none, got %s", cfg.Driver)
	}
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.Duration <= 0 {
		t.Error("duration should be positive")
	}
	if cfg.Car.Mass <= 0 {
		t.Error("car mass should be positive")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Driver = "cruise"
	cfg.Controller.Target = 75

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Driver != "cruise" {
		t.Errorf("expected driver cruise, got %s", loaded.Driver)
	}
	if loaded.Controller.Target != 75 {
		t.Errorf("expected target 75, got %f", loaded.Controller.Target)
	}
}

func TestLoadMergesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	if err := os.WriteFile(path, []byte("duration: 5\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Duration != 5 {
		t.Errorf("expected duration 5, got %f", cfg.Duration)
	}
	if cfg.Dt != DefaultDt {
		t.Errorf("expected default dt, got %f", cfg.Dt)
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("cruise")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Controller.Target != 60 {
		t.Errorf("expected target 60, got %f", cfg.Controller.Target)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) == 0 {
		t.Error("expected presets")
	}
}

func TestCarParamsConversion(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Car.Mass = 1234

	p := cfg.CarParams()
	if p.Mass != 1234 {
		t.Errorf("expected mass 1234, got %f", p.Mass)
	}
}
