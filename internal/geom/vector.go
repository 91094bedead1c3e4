package geom

import (
	"fmt"
	"math"
)

// Vec3 is a three-component spatial vector. It is a plain value type;
// all operations return new values.
type Vec3 struct {
	X, Y, Z float64
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func (v Vec3) Div(s float64) Vec3 {
	return Vec3{v.X / s, v.Y / s, v.Z / s}
}

func (v Vec3) Dot(o Vec3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v.Y*o.Z - v.Z*o.Y,
		v.Z*o.X - v.X*o.Z,
		v.X*o.Y - v.Y*o.X,
	}
}

func (v Vec3) Mag() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns the unit vector in the direction of v. The zero
// vector normalizes to the zero vector.
func (v Vec3) Normalize() Vec3 {
	mag := v.Mag()
	if mag == 0 {
		return Vec3{}
	}
	return Vec3{v.X / mag, v.Y / mag, v.Z / mag}
}

func (v Vec3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}

// Point is a spacetime point: a spatial vector plus a time coordinate.
// Spatial arithmetic acts on X, Y, Z only; T never participates.
type Point struct {
	Vec3
	T float64
}

func NewPoint(x, y, z, t float64) Point {
	return Point{Vec3: Vec3{x, y, z}, T: t}
}

// Translate shifts the spatial components by d, keeping T.
func (p Point) Translate(d Vec3) Point {
	return Point{Vec3: p.Vec3.Add(d), T: p.T}
}

// At returns the same spatial position stamped with time t.
func (p Point) At(t float64) Point {
	return Point{Vec3: p.Vec3, T: t}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g, %g, t=%g)", p.X, p.Y, p.Z, p.T)
}
