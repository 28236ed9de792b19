package scene

import (
	"math/rand"

	"github.com/rkoval/go-weekend-raytracer/pkg/core"
	"github.com/rkoval/go-weekend-raytracer/pkg/geometry"
	"github.com/rkoval/go-weekend-raytracer/pkg/material"
	"github.com/rkoval/go-weekend-raytracer/pkg/renderer"
)

// NewRandomScene creates the classic cover scene: a large ground sphere, a
// 22x22 grid of small spheres with randomized materials, and three unit
// spheres showing off each material type.
func NewRandomScene(random *rand.Rand) *Scene {
	cameraConfig := renderer.CameraConfig{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20,
		AspectRatio:   3.0 / 2.0,
		Aperture:      0.1,
		FocusDistance: 10,
	}
	s := newScene(cameraConfig)

	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	s.add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000), ground)

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				0.2,
				float64(b)+0.9*random.Float64(),
			)
			// Leave room around the large glass sphere's spot
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			var mat material.Material
			switch choice := random.Float64(); {
			case choice < 0.8:
				albedo := randomColor(random).MultiplyVec(randomColor(random))
				mat = material.NewLambertian(albedo)
			case choice < 0.95:
				albedo := randomColorIn(random, 0.5, 1)
				mat = material.NewMetal(albedo, 0.5*random.Float64())
			default:
				mat = material.NewDielectric(1.5)
			}
			s.add(geometry.NewSphere(center, 0.2), mat)
		}
	}

	s.add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1), material.NewDielectric(1.5))
	s.add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1), material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1)))
	s.add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1), material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0))

	return s
}

func randomColor(random *rand.Rand) core.Vec3 {
	return core.NewVec3(random.Float64(), random.Float64(), random.Float64())
}

func randomColorIn(random *rand.Rand, min, max float64) core.Vec3 {
	span := max - min
	return core.NewVec3(
		min+span*random.Float64(),
		min+span*random.Float64(),
		min+span*random.Float64(),
	)
}
