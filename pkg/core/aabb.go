package core

import "math"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min Vec3 // Minimum corner
	Max Vec3 // Maximum corner
}

// NewAABB creates a new AABB from min and max points
func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// Hit tests if a ray intersects with this AABB over [tMin, tMax] using the
// slab method
func (aabb AABB) Hit(ray Ray, tMin, tMax float64) bool {
	for axis := 0; axis < 3; axis++ {
		minVal := aabb.Min.Component(axis)
		maxVal := aabb.Max.Component(axis)
		origin := ray.Origin.Component(axis)
		direction := ray.Direction.Component(axis)

		// A ray parallel to the slab either misses it entirely or is
		// inside it for every t.
		if math.Abs(direction) < 1e-8 {
			if origin < minVal || origin > maxVal {
				return false
			}
			continue
		}

		invDirection := 1.0 / direction
		t1 := (minVal - origin) * invDirection
		t2 := (maxVal - origin) * invDirection
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax {
			return false
		}
	}

	return true
}

// Union returns the smallest AABB that bounds both this AABB and another
func (aabb AABB) Union(other AABB) AABB {
	return AABB{
		Min: Vec3{
			X: math.Min(aabb.Min.X, other.Min.X),
			Y: math.Min(aabb.Min.Y, other.Min.Y),
			Z: math.Min(aabb.Min.Z, other.Min.Z),
		},
		Max: Vec3{
			X: math.Max(aabb.Max.X, other.Max.X),
			Y: math.Max(aabb.Max.Y, other.Max.Y),
			Z: math.Max(aabb.Max.Z, other.Max.Z),
		},
	}
}

// Contains reports whether the other AABB lies entirely inside this one
func (aabb AABB) Contains(other AABB) bool {
	return aabb.Min.X <= other.Min.X && aabb.Max.X >= other.Max.X &&
		aabb.Min.Y <= other.Min.Y && aabb.Max.Y >= other.Max.Y &&
		aabb.Min.Z <= other.Min.Z && aabb.Max.Z >= other.Max.Z
}

// IsValid returns true if this is a valid AABB (min <= max for all axes)
func (aabb AABB) IsValid() bool {
	return aabb.Min.X <= aabb.Max.X &&
		aabb.Min.Y <= aabb.Max.Y &&
		aabb.Min.Z <= aabb.Max.Z
}

// IsFinite reports whether every corner component is a finite number
func (aabb AABB) IsFinite() bool {
	for axis := 0; axis < 3; axis++ {
		for _, val := range []float64{aabb.Min.Component(axis), aabb.Max.Component(axis)} {
			if math.IsNaN(val) || math.IsInf(val, 0) {
				return false
			}
		}
	}
	return true
}
