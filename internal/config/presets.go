package config

import (
	"sort"

	"github.com/stepperanch/projsim/internal/ballistics"
)

// Projectiles holds the named parameter presets. Presets are data, not
// types: every preset feeds the same constructor.
var Projectiles = map[string]ballistics.Params{
	"baseball": {
		Mass:       0.149,
		Radius:     0.0366,
		AirDensity: 1.225,
		SpinFactor: 4.1e-4,
		DragCoeff:  0.35,
	},
	"pingpong": {
		Mass:       0.0027,
		Radius:     0.02,
		AirDensity: 1.27,
		SpinFactor: 0.04,
		DragCoeff:  0.5,
	},
	// An idealized projectile: gravity only, no drag or Magnus.
	"perfect": {
		Mass:   1.0,
		Radius: 0.1,
	},
}

// Scenarios are complete launch configurations: projectile preset plus
// initial conditions and run settings.
var Scenarios = map[string]*Config{
	"vacuum": {
		Preset: "perfect", Integrator: "rk4", Dt: 0.001, MaxTime: 10.0,
		Projectile: Projectiles["perfect"],
		InitState: InitStateConfig{
			Position: Vec{Z: 10},
			Velocity: Vec{X: 15, Y: 5, Z: 15},
		},
	},
	"drag": {
		Preset: "pingpong", Integrator: "rk4", Dt: 0.001, MaxTime: 10.0,
		Projectile: Projectiles["pingpong"],
		InitState: InitStateConfig{
			Position: Vec{Z: 10},
			Velocity: Vec{X: 15, Y: 5, Z: 15},
		},
	},
	"magnus": {
		Preset: "pingpong", Integrator: "rk4", Dt: 0.001, MaxTime: 10.0,
		Projectile: Projectiles["pingpong"],
		InitState: InitStateConfig{
			Position: Vec{Z: 10},
			Velocity: Vec{X: 15, Y: 5, Z: 15},
			Spin:     Vec{X: -20, Y: -40, Z: 20},
		},
	},
	"serve": {
		Preset: "pingpong", Integrator: "rk4", Dt: 0.001, MaxTime: 10.0,
		Projectile: Projectiles["pingpong"],
		InitState: InitStateConfig{
			Position: Vec{Z: 5},
			Velocity: Vec{X: 4, Y: 4, Z: 10},
			Spin:     Vec{X: -50, Y: -100, Z: 100},
		},
	},
	"baseball": {
		Preset: "baseball", Integrator: "rk4", Dt: 0.001, MaxTime: 10.0,
		Projectile: Projectiles["baseball"],
		InitState: InitStateConfig{
			Position: Vec{Z: 1},
			Velocity: Vec{X: 30, Y: 30, Z: 30},
			Spin:     Vec{Z: 100},
		},
	},
	"pingpong": {
		Preset: "pingpong", Integrator: "rk4", Dt: 0.001, MaxTime: 10.0,
		Projectile: Projectiles["pingpong"],
		InitState: InitStateConfig{
			Position: Vec{Z: 1},
			Velocity: Vec{X: 10, Y: 10, Z: 10},
			Spin:     Vec{Z: 50},
		},
	},
}

func GetProjectile(name string) (ballistics.Params, bool) {
	params, ok := Projectiles[name]
	return params, ok
}

func GetScenario(name string) *Config {
	cfg, ok := Scenarios[name]
	if !ok {
		return nil
	}
	clone := *cfg
	return &clone
}

func ListProjectiles() []string {
	names := make([]string, 0, len(Projectiles))
	for name := range Projectiles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func ListScenarios() []string {
	names := make([]string, 0, len(Scenarios))
	for name := range Scenarios {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
