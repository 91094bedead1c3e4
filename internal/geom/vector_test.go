package geom

import (
	"math"
	"testing"
)

func TestVec3_Arithmetic(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, 5, 6}

	sum := a.Add(b)
	if sum != (Vec3{5, 7, 9}) {
		t.Errorf("Add failed: got %v", sum)
	}

	diff := b.Sub(a)
	if diff != (Vec3{3, 3, 3}) {
		t.Errorf("Sub failed: got %v", diff)
	}

	scaled := a.Scale(2)
	if scaled != (Vec3{2, 4, 6}) {
		t.Errorf("Scale failed: got %v", scaled)
	}

	halved := a.Div(2)
	if halved != (Vec3{0.5, 1, 1.5}) {
		t.Errorf("Div failed: got %v", halved)
	}
}

func TestVec3_Mag(t *testing.T) {
	tests := []struct {
		v        Vec3
		expected float64
	}{
		{Vec3{3, 4, 0}, 5.0},
		{Vec3{1, 0, 0}, 1.0},
		{Vec3{0, 0, 0}, 0.0},
		{Vec3{1, 2, 2}, 3.0},
	}

	for _, tt := range tests {
		if got := tt.v.Mag(); math.Abs(got-tt.expected) > 1e-12 {
			t.Errorf("Mag(%v) = %v, want %v", tt.v, got, tt.expected)
		}
	}
}

func TestVec3_Normalize(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
	}{
		{"unit x", Vec3{1, 0, 0}},
		{"diagonal", Vec3{1, 1, 1}},
		{"large", Vec3{300, -400, 120}},
		{"tiny", Vec3{1e-9, 2e-9, -1e-9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := tt.v.Normalize()
			if math.Abs(n.Mag()-1.0) > 1e-12 {
				t.Errorf("Normalize(%v) has magnitude %v, want 1", tt.v, n.Mag())
			}
		})
	}
}

func TestVec3_NormalizeZero(t *testing.T) {
	n := Vec3{}.Normalize()
	if !n.IsZero() {
		t.Errorf("Normalize(zero) = %v, want zero vector", n)
	}
}

func TestVec3_DotCross(t *testing.T) {
	a := Vec3{1, 0, 0}
	b := Vec3{0, 1, 0}

	if got := a.Dot(b); got != 0 {
		t.Errorf("Dot of orthogonal vectors = %v, want 0", got)
	}

	c := a.Cross(b)
	if c != (Vec3{0, 0, 1}) {
		t.Errorf("x cross y = %v, want z", c)
	}

	// Cross product is anti-commutative.
	d := b.Cross(a)
	if d != (Vec3{0, 0, -1}) {
		t.Errorf("y cross x = %v, want -z", d)
	}

	// Cross result is orthogonal to both operands.
	u := Vec3{2, -3, 5}
	w := Vec3{-1, 4, 0.5}
	uw := u.Cross(w)
	if math.Abs(uw.Dot(u)) > 1e-12 || math.Abs(uw.Dot(w)) > 1e-12 {
		t.Errorf("cross product not orthogonal: %v", uw)
	}
}

func TestPoint_SpatialOnly(t *testing.T) {
	p := NewPoint(1, 2, 3, 4.5)

	moved := p.Translate(Vec3{1, 1, 1})
	if moved.T != 4.5 {
		t.Errorf("Translate changed T: got %v", moved.T)
	}
	if moved.Vec3 != (Vec3{2, 3, 4}) {
		t.Errorf("Translate spatial failed: got %v", moved.Vec3)
	}

	stamped := p.At(9.0)
	if stamped.T != 9.0 || stamped.Vec3 != p.Vec3 {
		t.Errorf("At failed: got %v", stamped)
	}
}
