package geometry

import (
	"math"

	"github.com/rkoval/go-weekend-raytracer/pkg/core"
	"github.com/rkoval/go-weekend-raytracer/pkg/material"
)

// Sphere is a sphere described by its center and signed radius. A negative
// radius yields the same intersection surface with an inward-pointing
// geometric normal, which models a hollow shell such as the inner surface
// of a hollow glass sphere.
type Sphere struct {
	Center core.Vec3
	Radius float64
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64) Sphere {
	return Sphere{Center: center, Radius: radius}
}

// Hit tests if a ray intersects the sphere within [tMin, tMax], returning
// the closest qualifying intersection
func (s Sphere) Hit(ray core.Ray, tMin, tMax float64) (material.HitRecord, bool) {
	oc := ray.Origin.Subtract(s.Center)

	// Quadratic coefficients: a*t² + 2*halfB*t + c = 0
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return material.HitRecord{}, false
	}

	// Try the closer root first, then the farther one.
	sqrtD := math.Sqrt(discriminant)
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return material.HitRecord{}, false
		}
	}

	// Dividing by the signed radius both normalizes the outward normal
	// and flips it for hollow (negative radius) shells.
	outwardNormal := ray.At(root).Subtract(s.Center).Divide(s.Radius)

	return material.NewHitRecord(ray, root, outwardNormal), true
}

// BoundingBox returns the axis-aligned box of center ± |radius| on every
// axis. A zero-radius sphere is degenerate and has no bounding volume.
func (s Sphere) BoundingBox() (core.AABB, bool) {
	radius := math.Abs(s.Radius)
	if radius == 0 {
		return core.AABB{}, false
	}

	extent := core.NewVec3(radius, radius, radius)
	return core.NewAABB(s.Center.Subtract(extent), s.Center.Add(extent)), true
}
