package ballistics

import (
	"github.com/stepperanch/projsim/internal/dynamo"
	"github.com/stepperanch/projsim/internal/geom"
)

// System adapts a projectile to the generic ODE interface. The flat state
// layout is (x, y, z, vx, vy, vz); the derivative concatenates velocity
// with the force model's acceleration. Wind is constant for a run.
type System struct {
	Proj *Projectile
	Wind geom.Vec3
}

func (s System) StateDim() int { return 6 }

func (s System) Derive(x dynamo.State, t float64) dynamo.State {
	vel := geom.Vec3{X: x[3], Y: x[4], Z: x[5]}
	acc := s.Proj.Acceleration(vel, s.Wind)
	return dynamo.State{vel.X, vel.Y, vel.Z, acc.X, acc.Y, acc.Z}
}

// StateOf packs the projectile's current position and velocity into a
// flat state vector.
func StateOf(p *Projectile) dynamo.State {
	pos := p.Position()
	vel := p.Velocity()
	return dynamo.State{pos.X, pos.Y, pos.Z, vel.X, vel.Y, vel.Z}
}

// Unpack splits a flat state vector back into spatial position and
// velocity. The caller supplies the time coordinate.
func Unpack(x dynamo.State, t float64) (geom.Point, geom.Vec3) {
	pos := geom.NewPoint(x[0], x[1], x[2], t)
	vel := geom.Vec3{X: x[3], Y: x[4], Z: x[5]}
	return pos, vel
}
