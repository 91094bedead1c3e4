package ballistics

import (
	"fmt"
	"math"

	"github.com/stepperanch/projsim/internal/geom"
)

// Gravity is the gravitational acceleration used by the force model (m/s²).
const Gravity = 9.81

// Params holds the physical parameters of a projectile. SpinFactor is the
// per-mass Magnus coefficient S/m (m²/s); the force model uses
// S = SpinFactor × Mass.
type Params struct {
	Mass       float64 `yaml:"mass" json:"mass"`               // kg, must be > 0
	Radius     float64 `yaml:"radius" json:"radius"`           // m
	DragCoeff  float64 `yaml:"drag_coeff" json:"drag_coeff"`   // dimensionless
	AirDensity float64 `yaml:"air_density" json:"air_density"` // kg/m³
	SpinFactor float64 `yaml:"spin_factor" json:"spin_factor"` // S/m, m²/s
}

// Validate rejects parameter sets the force model cannot handle. Mass is
// the hard requirement: acceleration divides by it.
func (p Params) Validate() error {
	if p.Mass <= 0 {
		return fmt.Errorf("ballistics: mass must be positive, got %g", p.Mass)
	}
	if p.Radius < 0 {
		return fmt.Errorf("ballistics: radius must be non-negative, got %g", p.Radius)
	}
	if p.DragCoeff < 0 {
		return fmt.Errorf("ballistics: drag coefficient must be non-negative, got %g", p.DragCoeff)
	}
	if p.AirDensity < 0 {
		return fmt.Errorf("ballistics: air density must be non-negative, got %g", p.AirDensity)
	}
	return nil
}

// Projectile is a rigid body moving under gravity, quadratic drag and the
// Magnus force. Position and velocity are replaced as a pair by the flight
// driver via Advance; parameters are fixed at construction except for the
// aerodynamic knobs exposed through SetParam.
type Projectile struct {
	position geom.Point
	velocity geom.Vec3
	spin     geom.Vec3

	params Params
	s      float64 // Magnus factor S = SpinFactor * Mass, m²/s·kg
}

// New constructs a projectile at pos with the given velocity, spin and
// parameters. Parameters are validated here so the force model can assume
// them downstream.
func New(pos geom.Point, vel, spin geom.Vec3, params Params) (*Projectile, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return &Projectile{
		position: pos,
		velocity: vel,
		spin:     spin,
		params:   params,
		s:        params.SpinFactor * params.Mass,
	}, nil
}

func (p *Projectile) Position() geom.Point { return p.position }
func (p *Projectile) Velocity() geom.Vec3  { return p.velocity }
func (p *Projectile) Spin() geom.Vec3      { return p.spin }
func (p *Projectile) Params() Params       { return p.params }

// Time returns the time coordinate of the current position.
func (p *Projectile) Time() float64 { return p.position.T }

// Speed returns the magnitude of the velocity.
func (p *Projectile) Speed() float64 { return p.velocity.Mag() }

// Height returns the altitude above ground.
func (p *Projectile) Height() float64 { return p.position.Z }

// Range returns the horizontal distance from the origin.
func (p *Projectile) Range() float64 {
	return math.Hypot(p.position.X, p.position.Y)
}

// Acceleration computes the net acceleration for the given velocity in the
// given wind. It is a pure function of its arguments and the projectile's
// fixed parameters; RK4 stages pass stage-local velocities rather than
// mutating the projectile between evaluations.
func (p *Projectile) Acceleration(vel, wind geom.Vec3) geom.Vec3 {
	gravity := geom.Vec3{Z: -p.params.Mass * Gravity}

	rel := vel.Sub(wind)
	speed := rel.Mag()

	// F_drag = 0.5 * ρ * v² * Cd * πr², opposing the relative velocity.
	// Zero relative speed means zero drag; Normalize already maps the
	// zero vector to zero, so the guard only skips dead work.
	var drag geom.Vec3
	if speed > 0 {
		area := math.Pi * p.params.Radius * p.params.Radius
		magnitude := 0.5 * p.params.AirDensity * speed * speed * p.params.DragCoeff * area
		drag = rel.Normalize().Scale(-magnitude)
	}

	// F_magnus = S * (ω × v_rel)
	magnus := p.spin.Cross(rel).Scale(p.s)

	total := gravity.Add(drag).Add(magnus)
	return total.Div(p.params.Mass)
}

// Grounded reports whether the projectile has reached the ground and is
// not moving upward.
func (p *Projectile) Grounded() bool {
	return p.position.Z <= 0 && p.velocity.Z <= 0
}

// Advance replaces position and velocity as a pair. Only the flight
// driver should call this mid-run.
func (p *Projectile) Advance(pos geom.Point, vel geom.Vec3) {
	p.position = pos
	p.velocity = vel
}

// GetParams exposes the tunable parameters for the live view.
func (p *Projectile) GetParams() map[string]float64 {
	return map[string]float64{
		"mass":        p.params.Mass,
		"radius":      p.params.Radius,
		"drag_coeff":  p.params.DragCoeff,
		"air_density": p.params.AirDensity,
		"spin_factor": p.params.SpinFactor,
	}
}

// SetParam adjusts an aerodynamic parameter at runtime. Mass and radius
// are fixed at construction: changing mass would silently invalidate the
// derived Magnus factor for past trajectory points.
func (p *Projectile) SetParam(name string, value float64) error {
	if value < 0 {
		return fmt.Errorf("ballistics: %s must be non-negative, got %g", name, value)
	}
	switch name {
	case "drag_coeff":
		p.params.DragCoeff = value
	case "air_density":
		p.params.AirDensity = value
	case "spin_factor":
		p.params.SpinFactor = value
		p.s = value * p.params.Mass
	default:
		return fmt.Errorf("ballistics: unknown or fixed param: %s", name)
	}
	return nil
}
