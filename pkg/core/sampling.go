package core

import "math/rand"

// RandomInUnitSphere generates a uniformly distributed point inside the
// unit sphere by rejection sampling
func RandomInUnitSphere(random *rand.Rand) Vec3 {
	for {
		p := Vec3{
			X: 2*random.Float64() - 1,
			Y: 2*random.Float64() - 1,
			Z: 2*random.Float64() - 1,
		}
		if p.LengthSquared() <= 1.0 {
			return p
		}
	}
}

// RandomOnUnitSphere generates a uniformly distributed point on the
// surface of the unit sphere
func RandomOnUnitSphere(random *rand.Rand) Vec3 {
	for {
		p := RandomInUnitSphere(random)
		// Reject points too close to the center, which cannot be
		// projected onto the surface reliably.
		if !p.NearZero() {
			return p.Normalize()
		}
	}
}

// RandomInUnitDisk generates a random point in a unit disk in the z=0
// plane (for depth of field)
func RandomInUnitDisk(random *rand.Rand) Vec3 {
	for {
		p := NewVec3(2*random.Float64()-1, 2*random.Float64()-1, 0)
		if p.Dot(p) <= 1.0 {
			return p
		}
	}
}
