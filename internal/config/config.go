package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/stepperanch/projsim/internal/ballistics"
	"github.com/stepperanch/projsim/internal/geom"
)

const (
	DefaultDt      = 0.001
	DefaultMaxTime = 10.0
)

// Vec is the yaml form of a spatial vector.
type Vec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

func (v Vec) Vec3() geom.Vec3 { return geom.Vec3{X: v.X, Y: v.Y, Z: v.Z} }

type InitStateConfig struct {
	Position Vec `yaml:"position"`
	Velocity Vec `yaml:"velocity"`
	Spin     Vec `yaml:"spin"`
}

type Config struct {
	Preset     string            `yaml:"preset"` // projectile parameter preset, overridden by projectile block
	Integrator string            `yaml:"integrator"`
	Dt         float64           `yaml:"dt"`
	MaxTime    float64           `yaml:"max_time"`
	Projectile ballistics.Params `yaml:"projectile"`
	InitState  InitStateConfig   `yaml:"init_state"`
	Wind       Vec               `yaml:"wind"`
}

func DefaultConfig() *Config {
	return &Config{
		Preset:     "pingpong",
		Integrator: "rk4",
		Dt:         DefaultDt,
		MaxTime:    DefaultMaxTime,
		Projectile: Projectiles["pingpong"],
		InitState: InitStateConfig{
			Position: Vec{Z: 1},
			Velocity: Vec{X: 10, Y: 10, Z: 10},
			Spin:     Vec{Z: 50},
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// NewProjectile builds the configured projectile at t=0. Parameter
// validation happens inside ballistics.New.
func (c *Config) NewProjectile() (*ballistics.Projectile, error) {
	p := c.InitState.Position
	pos := geom.NewPoint(p.X, p.Y, p.Z, 0)
	return ballistics.New(pos, c.InitState.Velocity.Vec3(), c.InitState.Spin.Vec3(), c.Projectile)
}

func (c *Config) WindVec() geom.Vec3 { return c.Wind.Vec3() }
