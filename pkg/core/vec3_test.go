package core

import (
	"math"
	"testing"
)

func TestVec3_Arithmetic(t *testing.T) {
	a := NewVec3(1, 2, 3)
	b := NewVec3(4, 5, 6)

	tests := []struct {
		name     string
		got      Vec3
		expected Vec3
	}{
		{"add", a.Add(b), NewVec3(5, 7, 9)},
		{"subtract", b.Subtract(a), NewVec3(3, 3, 3)},
		{"multiply", a.Multiply(2), NewVec3(2, 4, 6)},
		{"divide", a.Divide(2), NewVec3(0.5, 1, 1.5)},
		{"multiply vec", a.MultiplyVec(b), NewVec3(4, 10, 18)},
		{"negate", a.Negate(), NewVec3(-1, -2, -3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("Expected %+v, got %+v", tt.expected, tt.got)
			}
		})
	}
}

func TestVec3_DotAndCross(t *testing.T) {
	a := NewVec3(1, 0, 0)
	b := NewVec3(0, 1, 0)

	if dot := a.Dot(b); dot != 0 {
		t.Errorf("Expected orthogonal dot product 0, got %f", dot)
	}
	if dot := a.Dot(a); dot != 1 {
		t.Errorf("Expected dot product 1, got %f", dot)
	}

	cross := a.Cross(b)
	if cross != NewVec3(0, 0, 1) {
		t.Errorf("Expected x cross y = z, got %+v", cross)
	}
	antiCross := b.Cross(a)
	if antiCross != NewVec3(0, 0, -1) {
		t.Errorf("Expected y cross x = -z, got %+v", antiCross)
	}
}

func TestVec3_Normalize(t *testing.T) {
	v := NewVec3(3, 4, 0).Normalize()

	tolerance := 1e-9
	if math.Abs(v.Length()-1.0) > tolerance {
		t.Errorf("Expected unit length, got %f", v.Length())
	}
	if math.Abs(v.X-0.6) > tolerance || math.Abs(v.Y-0.8) > tolerance {
		t.Errorf("Expected (0.6, 0.8, 0), got %+v", v)
	}
}

func TestVec3_NormalizeZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic when normalizing a zero vector")
		}
	}()
	NewVec3(0, 0, 0).Normalize()
}

func TestVec3_DivideNearZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic when dividing by a near-zero scalar")
		}
	}()
	NewVec3(1, 1, 1).Divide(1e-12)
}

func TestVec3_NearZero(t *testing.T) {
	tests := []struct {
		name     string
		v        Vec3
		expected bool
	}{
		{"zero vector", NewVec3(0, 0, 0), true},
		{"tiny vector", NewVec3(1e-9, -1e-9, 1e-9), true},
		{"unit vector", NewVec3(0, 1, 0), false},
		{"one tiny component", NewVec3(1e-9, 1, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.NearZero(); got != tt.expected {
				t.Errorf("NearZero(%+v) = %t, expected %t", tt.v, got, tt.expected)
			}
		})
	}
}

func TestVec3_ClampAndGamma(t *testing.T) {
	v := NewVec3(-0.5, 0.25, 1.5).Clamp(0, 1)
	if v != NewVec3(0, 0.25, 1) {
		t.Errorf("Expected (0, 0.25, 1), got %+v", v)
	}

	g := NewVec3(0.25, 1, 0).GammaCorrect(2.0)
	tolerance := 1e-9
	if math.Abs(g.X-0.5) > tolerance || math.Abs(g.Y-1.0) > tolerance || g.Z != 0 {
		t.Errorf("Expected (0.5, 1, 0), got %+v", g)
	}
}

func TestVec3_Component(t *testing.T) {
	v := NewVec3(1, 2, 3)
	for axis, expected := range []float64{1, 2, 3} {
		if got := v.Component(axis); got != expected {
			t.Errorf("Component(%d) = %f, expected %f", axis, got, expected)
		}
	}
}

func TestRay_At(t *testing.T) {
	ray := NewRay(NewVec3(1, 0, 0), NewVec3(0, 2, 0))

	tests := []struct {
		t        float64
		expected Vec3
	}{
		{0, NewVec3(1, 0, 0)},
		{0.5, NewVec3(1, 1, 0)},
		{2, NewVec3(1, 4, 0)},
		{-1, NewVec3(1, -2, 0)},
	}

	for _, tt := range tests {
		if got := ray.At(tt.t); got != tt.expected {
			t.Errorf("At(%f) = %+v, expected %+v", tt.t, got, tt.expected)
		}
	}
}
