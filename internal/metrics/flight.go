// Package metrics provides per-step observers for flight runs.
package metrics

import (
	"math"

	"github.com/stepperanch/projsim/internal/geom"
)

// Range tracks the maximum horizontal distance from the origin.
type Range struct {
	max float64
}

func NewRange() *Range { return &Range{} }

func (r *Range) Name() string { return "range" }

func (r *Range) Observe(pos geom.Point, vel geom.Vec3) {
	d := math.Hypot(pos.X, pos.Y)
	if d > r.max {
		r.max = d
	}
}

func (r *Range) Value() float64 { return r.max }
func (r *Range) Reset()         { r.max = 0 }

// Apex tracks the maximum altitude reached.
type Apex struct {
	max float64
	set bool
}

func NewApex() *Apex { return &Apex{} }

func (a *Apex) Name() string { return "apex" }

func (a *Apex) Observe(pos geom.Point, vel geom.Vec3) {
	if !a.set || pos.Z > a.max {
		a.max = pos.Z
		a.set = true
	}
}

func (a *Apex) Value() float64 { return a.max }
func (a *Apex) Reset()         { a.max = 0; a.set = false }

// MaxSpeed tracks the peak speed over the run.
type MaxSpeed struct {
	max float64
}

func NewMaxSpeed() *MaxSpeed { return &MaxSpeed{} }

func (m *MaxSpeed) Name() string { return "max_speed" }

func (m *MaxSpeed) Observe(pos geom.Point, vel geom.Vec3) {
	if s := vel.Mag(); s > m.max {
		m.max = s
	}
}

func (m *MaxSpeed) Value() float64 { return m.max }
func (m *MaxSpeed) Reset()         { m.max = 0 }
