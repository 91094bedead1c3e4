package ballistics

import (
	"math"
	"testing"

	"github.com/stepperanch/projsim/internal/geom"
)

func mustNew(t *testing.T, pos geom.Point, vel, spin geom.Vec3, params Params) *Projectile {
	t.Helper()
	p, err := New(pos, vel, spin, params)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return p
}

var perfectParams = Params{Mass: 1.0, Radius: 0.1}

func TestNew_RejectsBadParams(t *testing.T) {
	tests := []struct {
		name   string
		params Params
	}{
		{"zero mass", Params{Mass: 0}},
		{"negative mass", Params{Mass: -1}},
		{"negative radius", Params{Mass: 1, Radius: -0.1}},
		{"negative drag", Params{Mass: 1, DragCoeff: -0.5}},
		{"negative density", Params{Mass: 1, AirDensity: -1.2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(geom.Point{}, geom.Vec3{}, geom.Vec3{}, tt.params); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestAcceleration_GravityOnly(t *testing.T) {
	p := mustNew(t, geom.NewPoint(0, 0, 10, 0), geom.Vec3{X: 15, Y: 5, Z: 15}, geom.Vec3{}, perfectParams)

	a := p.Acceleration(p.Velocity(), geom.Vec3{})

	if a.X != 0 || a.Y != 0 {
		t.Errorf("expected purely vertical acceleration, got %v", a)
	}
	if math.Abs(a.Z+Gravity) > 1e-12 {
		t.Errorf("expected a.Z = %v, got %v", -Gravity, a.Z)
	}
}

func TestAcceleration_DragOpposesRelativeVelocity(t *testing.T) {
	params := Params{Mass: 0.0027, Radius: 0.02, AirDensity: 1.27, DragCoeff: 0.5}
	p := mustNew(t, geom.Point{}, geom.Vec3{X: 10, Y: -3, Z: 4}, geom.Vec3{}, params)

	a := p.Acceleration(p.Velocity(), geom.Vec3{})
	drag := a.Sub(geom.Vec3{Z: -Gravity}) // remove gravity, no spin

	if dot := drag.Dot(p.Velocity()); dot >= 0 {
		t.Errorf("drag not anti-parallel to velocity: dot = %v", dot)
	}

	// Drag must be exactly collinear with velocity: cross product vanishes.
	cross := drag.Cross(p.Velocity())
	if cross.Mag() > 1e-9 {
		t.Errorf("drag not collinear with velocity: cross = %v", cross)
	}
}

func TestAcceleration_ZeroRelativeSpeed(t *testing.T) {
	params := Params{Mass: 0.149, Radius: 0.0366, AirDensity: 1.225, DragCoeff: 0.35}
	wind := geom.Vec3{X: 5, Y: 0, Z: 0}
	p := mustNew(t, geom.Point{}, wind, geom.Vec3{}, params)

	// Velocity equals wind: relative speed is zero, so drag and Magnus
	// vanish and only gravity remains.
	a := p.Acceleration(wind, wind)
	want := geom.Vec3{Z: -Gravity}
	if a.Sub(want).Mag() > 1e-12 {
		t.Errorf("expected gravity only, got %v", a)
	}
}

func TestAcceleration_MagnusOrthogonal(t *testing.T) {
	params := Params{Mass: 0.0027, Radius: 0.02, SpinFactor: 0.04}
	spin := geom.Vec3{Z: 50}
	vel := geom.Vec3{X: 10}
	p := mustNew(t, geom.Point{}, vel, spin, params)

	a := p.Acceleration(vel, geom.Vec3{})
	magnus := a.Sub(geom.Vec3{Z: -Gravity}) // no drag (zero air density)

	// spin × vel = (0,0,50) × (10,0,0) = (0,500,0)
	if math.Abs(magnus.Dot(vel)) > 1e-9 || math.Abs(magnus.Dot(spin)) > 1e-9 {
		t.Errorf("Magnus force not orthogonal to spin and velocity: %v", magnus)
	}
	wantY := params.SpinFactor * params.Mass * 500 / params.Mass
	if math.Abs(magnus.Y-wantY) > 1e-9 {
		t.Errorf("Magnus magnitude: got %v, want %v", magnus.Y, wantY)
	}
}

func TestGrounded(t *testing.T) {
	tests := []struct {
		name     string
		z, vz    float64
		grounded bool
	}{
		{"airborne", 5, -1, false},
		{"on ground moving down", 0, -1, true},
		{"on ground at rest", 0, 0, true},
		{"on ground moving up", 0, 1, false},
		{"below ground descending", -0.5, -2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := mustNew(t, geom.NewPoint(0, 0, tt.z, 0), geom.Vec3{Z: tt.vz}, geom.Vec3{}, perfectParams)
			if got := p.Grounded(); got != tt.grounded {
				t.Errorf("Grounded() = %v, want %v", got, tt.grounded)
			}
		})
	}
}

func TestSetParam(t *testing.T) {
	spin := geom.Vec3{Z: 1}
	vel := geom.Vec3{X: 1}
	p := mustNew(t, geom.Point{}, vel, spin, Params{Mass: 2.0, Radius: 0.1, SpinFactor: 0.05})

	if err := p.SetParam("spin_factor", 0.1); err != nil {
		t.Fatalf("SetParam: %v", err)
	}
	if got := p.GetParams()["spin_factor"]; got != 0.1 {
		t.Errorf("spin_factor = %v, want 0.1", got)
	}

	// Derived Magnus factor must track the new spin factor.
	fresh := mustNew(t, geom.Point{}, vel, spin, Params{Mass: 2.0, Radius: 0.1, SpinFactor: 0.1})
	a1 := p.Acceleration(vel, geom.Vec3{})
	a2 := fresh.Acceleration(vel, geom.Vec3{})
	if a1.Sub(a2).Mag() > 1e-12 {
		t.Errorf("Magnus factor stale after SetParam: %v vs %v", a1, a2)
	}

	if err := p.SetParam("mass", 5); err == nil {
		t.Error("expected error for fixed param mass")
	}
	if err := p.SetParam("drag_coeff", -1); err == nil {
		t.Error("expected error for negative value")
	}
}

func TestTrajectory_FinalPoint(t *testing.T) {
	var tr Trajectory
	if fp := tr.FinalPoint(); fp != (geom.Point{}) {
		t.Errorf("empty trajectory FinalPoint = %v, want zero", fp)
	}

	tr.Append(geom.NewPoint(0, 0, 10, 0))
	tr.Append(geom.NewPoint(1, 2, 8, 0.5))

	fp := tr.FinalPoint()
	if fp.T != 0.5 || fp.X != 1 {
		t.Errorf("FinalPoint = %v", fp)
	}
	if tr.Len() != 2 {
		t.Errorf("Len = %d, want 2", tr.Len())
	}
}
