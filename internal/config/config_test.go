package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Preset != "pingpong" {
		t.Errorf("expected preset pingpong, got %s", cfg.Preset)
	}
	if cfg.Dt <= 0 {
		t.Error("dt should be positive")
	}
	if cfg.MaxTime <= 0 {
		t.Error("max time should be positive")
	}
	if _, err := cfg.NewProjectile(); err != nil {
		t.Errorf("default config should build a projectile: %v", err)
	}
}

func TestGetProjectile(t *testing.T) {
	params, ok := GetProjectile("baseball")
	if !ok {
		t.Fatal("expected baseball preset")
	}
	if params.Mass != 0.149 {
		t.Errorf("baseball mass = %v, want 0.149", params.Mass)
	}

	if _, ok := GetProjectile("bowlingball"); ok {
		t.Error("expected miss for unknown preset")
	}
}

func TestGetScenario(t *testing.T) {
	cfg := GetScenario("vacuum")
	if cfg == nil {
		t.Fatal("expected vacuum scenario")
	}
	if cfg.InitState.Velocity.X != 15 {
		t.Errorf("vacuum vx = %v, want 15", cfg.InitState.Velocity.X)
	}
	if cfg.Projectile.DragCoeff != 0 || cfg.Projectile.AirDensity != 0 {
		t.Error("vacuum scenario must have no drag")
	}

	// Mutating the returned scenario must not change the table.
	cfg.Dt = 99
	if Scenarios["vacuum"].Dt == 99 {
		t.Error("GetScenario returned the shared table entry")
	}

	if GetScenario("nonexistent") != nil {
		t.Error("expected nil for unknown scenario")
	}
}

func TestListPresets(t *testing.T) {
	if len(ListProjectiles()) == 0 {
		t.Error("expected projectile presets")
	}
	if len(ListScenarios()) == 0 {
		t.Error("expected scenarios")
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")

	cfg := GetScenario("magnus")
	cfg.Dt = 0.005
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if loaded.Dt != 0.005 {
		t.Errorf("dt = %v, want 0.005", loaded.Dt)
	}
	if loaded.InitState.Spin.Y != -40 {
		t.Errorf("spin y = %v, want -40", loaded.InitState.Spin.Y)
	}
	if loaded.Projectile.Mass != 0.0027 {
		t.Errorf("mass = %v, want 0.0027", loaded.Projectile.Mass)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}
