package scene

import (
	"github.com/rkoval/go-weekend-raytracer/pkg/core"
	"github.com/rkoval/go-weekend-raytracer/pkg/geometry"
	"github.com/rkoval/go-weekend-raytracer/pkg/material"
	"github.com/rkoval/go-weekend-raytracer/pkg/renderer"
)

// NewDemoScene creates a small deterministic scene: a diffuse sphere flanked
// by a hollow glass sphere and a metal sphere, resting on a large ground
// sphere. The glass sphere is hollowed out by a negative-radius inner shell.
func NewDemoScene() *Scene {
	cameraConfig := renderer.DefaultCameraConfig()
	cameraConfig.LookFrom = core.NewVec3(-2, 2, 1)
	cameraConfig.LookAt = core.NewVec3(0, 0, -1)
	cameraConfig.VFov = 20
	s := newScene(cameraConfig)

	glass := material.NewDielectric(1.5)

	s.add(geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100), material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0)))
	s.add(geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5), material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5)))
	s.add(geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5), glass)
	s.add(geometry.NewSphere(core.NewVec3(-1, 0, -1), -0.45), glass)
	s.add(geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5), material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0))

	return s
}
