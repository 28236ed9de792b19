package material

import (
	"github.com/rkoval/go-weekend-raytracer/pkg/core"
)

// Pointing records whether the geometric outward normal had to be flipped
// to make the hit normal face the incoming ray.
type Pointing int

const (
	// PointingInward means the ray struck the surface from the inside:
	// the geometric outward normal pointed with the ray and was negated.
	PointingInward Pointing = iota
	// PointingOutward means the ray struck the surface from the outside
	// and the geometric outward normal was kept as-is.
	PointingOutward
)

func (p Pointing) String() string {
	if p == PointingInward {
		return "Inward"
	}
	return "Outward"
}

// HitRecord describes when, where and how a ray hit an object. Normal is
// unit length and always faces against the incoming ray.
type HitRecord struct {
	Point    core.Vec3 // Point of intersection in world space
	Normal   core.Vec3 // Unit surface normal, opposing the ray
	T        float64   // Ray parameter of the hit
	Pointing Pointing  // Orientation of the geometric normal relative to the ray
}

// NewHitRecord builds a hit record from the ray, the hit parameter and the
// unit-length geometric outward normal, orienting the stored normal
// against the ray. Dielectrics rely on the Pointing flag to pick the
// refractive-index ratio, so this convention must be applied everywhere a
// hit record is built.
func NewHitRecord(ray core.Ray, t float64, outwardNormal core.Vec3) HitRecord {
	rec := HitRecord{
		Point: ray.At(t),
		T:     t,
	}

	if ray.Direction.Dot(outwardNormal) < 0 {
		rec.Pointing = PointingOutward
		rec.Normal = outwardNormal
	} else {
		rec.Pointing = PointingInward
		rec.Normal = outwardNormal.Negate()
	}

	return rec
}
