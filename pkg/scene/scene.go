// Package scene provides prebuilt scenes: sphere layouts paired with the
// camera configuration they were composed for.
package scene

import (
	"math/rand"

	"github.com/rkoval/go-weekend-raytracer/pkg/geometry"
	"github.com/rkoval/go-weekend-raytracer/pkg/material"
	"github.com/rkoval/go-weekend-raytracer/pkg/renderer"
)

// Scene pairs a camera configuration with a set of objects. The objects are
// held unorganized until BuildWorld assembles them into an acceleration
// structure.
type Scene struct {
	CameraConfig renderer.CameraConfig

	builder *geometry.WorldBuilder
}

func newScene(config renderer.CameraConfig) *Scene {
	return &Scene{
		CameraConfig: config,
		builder:      geometry.NewWorldBuilder(),
	}
}

func (s *Scene) add(sphere geometry.Sphere, mat material.Material) {
	s.builder.Add(sphere, mat)
}

// BuildWorld organizes the scene's objects into a queryable world.
func (s *Scene) BuildWorld(random *rand.Rand) (*geometry.World, error) {
	return s.builder.Build(random)
}
