package renderer

import (
	"math"
	"math/rand"
	"testing"

	"github.com/rkoval/go-weekend-raytracer/pkg/core"
	"github.com/rkoval/go-weekend-raytracer/pkg/geometry"
	"github.com/rkoval/go-weekend-raytracer/pkg/material"
)

func emptyWorld(t *testing.T) *geometry.World {
	t.Helper()
	world, err := geometry.NewWorldBuilder().Build(rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("Unexpected build error: %v", err)
	}
	return world
}

func TestRayColor_BackgroundGradient(t *testing.T) {
	world := emptyWorld(t)
	random := rand.New(rand.NewSource(42))

	tests := []struct {
		name      string
		direction core.Vec3
		expected  core.Vec3
	}{
		{"straight up is sky blue", core.NewVec3(0, 1, 0), core.NewVec3(0.5, 0.7, 1.0)},
		{"straight down is white", core.NewVec3(0, -1, 0), core.NewVec3(1, 1, 1)},
		{"horizontal is the midpoint", core.NewVec3(1, 0, 0), core.NewVec3(0.75, 0.85, 1.0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(core.NewVec3(0, 0, 0), tt.direction)
			got := rayColor(random, ray, world, 64)
			if got.Subtract(tt.expected).Length() > 1e-9 {
				t.Errorf("Expected %+v, got %+v", tt.expected, got)
			}
		})
	}
}

func TestRayColor_AbsorptionIsBlack(t *testing.T) {
	builder := geometry.NewWorldBuilder()
	builder.Add(geometry.NewSphere(core.NewVec3(0, -1, -2), 1), material.NewMetal(core.NewVec3(0.9, 0.9, 0.9), 0))
	world, err := builder.Build(rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("Unexpected build error: %v", err)
	}
	random := rand.New(rand.NewSource(42))

	// Tangent hit on the metal equator: the reflection is absorbed.
	ray := core.NewRay(core.NewVec3(-2, 0, -2), core.NewVec3(1, 0, 0))
	got := rayColor(random, ray, world, 64)
	if got != core.NewVec3(0, 0, 0) {
		t.Errorf("Expected black for absorbed ray, got %+v", got)
	}
}

func TestRayColor_BounceLimitIsBlack(t *testing.T) {
	// A ray starting inside a lambertian shell can never escape; the
	// bounce cap must terminate it with black instead of recursing
	// forever.
	builder := geometry.NewWorldBuilder()
	builder.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), -5), material.NewLambertian(core.NewVec3(0.9, 0.9, 0.9)))
	world, err := builder.Build(rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("Unexpected build error: %v", err)
	}
	random := rand.New(rand.NewSource(42))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	got := rayColor(random, ray, world, 8)
	if got != core.NewVec3(0, 0, 0) {
		t.Errorf("Expected black at bounce limit, got %+v", got)
	}
}

func TestRayColor_AttenuationProduct(t *testing.T) {
	// A head-on mirror bounce off fuzz-free metal escapes to the
	// background with exactly one attenuation applied.
	albedo := core.NewVec3(0.8, 0.6, 0.4)
	builder := geometry.NewWorldBuilder()
	builder.Add(geometry.NewSphere(core.NewVec3(0, 0, -2), 0.5), material.NewMetal(albedo, 0))
	world, err := builder.Build(rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("Unexpected build error: %v", err)
	}
	random := rand.New(rand.NewSource(42))

	// Head-on hit reflects straight back toward +z, then exits to the
	// horizontal background (y component 0 after the bounce).
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	got := rayColor(random, ray, world, 64)

	expected := albedo.MultiplyVec(core.NewVec3(0.75, 0.85, 1.0))
	if got.Subtract(expected).Length() > 1e-9 {
		t.Errorf("Expected %+v, got %+v", expected, got)
	}
}

func TestBackgroundGradient_Range(t *testing.T) {
	random := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		ray := core.NewRay(core.Vec3{}, core.RandomOnUnitSphere(random))
		c := backgroundGradient(ray)
		for axis := 0; axis < 3; axis++ {
			v := c.Component(axis)
			if v < 0 || v > 1 || math.IsNaN(v) {
				t.Fatalf("Background channel %f out of range for ray %+v", v, ray.Direction)
			}
		}
	}
}
