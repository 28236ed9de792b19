package material

import (
	"math"
	"math/rand"

	"github.com/rkoval/go-weekend-raytracer/pkg/core"
)

// Scatter is the result of a material interaction: the unnormalized
// outgoing direction and the multiplicative color loss along it.
type Scatter struct {
	Direction   core.Vec3
	Attenuation core.Vec3
}

type kind int

const (
	kindLambertian kind = iota
	kindMetal
	kindDielectric
)

// Material is a closed set of optical behaviors: Lambertian diffuse,
// fuzzy metal reflection and dielectric refraction. Values are immutable
// and may be shared freely across geometry and goroutines.
type Material struct {
	kind            kind
	albedo          core.Vec3
	fuzz            float64
	refractiveIndex float64
}

// NewLambertian creates a diffuse material with the given albedo
func NewLambertian(albedo core.Vec3) Material {
	return Material{kind: kindLambertian, albedo: albedo}
}

// NewMetal creates a reflective material. Fuzz is clamped to [0, 1];
// 0 is a perfect mirror.
func NewMetal(albedo core.Vec3, fuzz float64) Material {
	return Material{
		kind:   kindMetal,
		albedo: albedo,
		fuzz:   max(0, min(1, fuzz)),
	}
}

// NewDielectric creates a transparent material with the given index of
// refraction (e.g. 1.5 for glass)
func NewDielectric(refractiveIndex float64) Material {
	return Material{kind: kindDielectric, refractiveIndex: refractiveIndex}
}

// Scatter computes how the incoming ray leaves the surface described by
// the hit record. It reports false when the surface absorbs the ray.
func (m Material) Scatter(random *rand.Rand, ray core.Ray, rec HitRecord) (Scatter, bool) {
	switch m.kind {
	case kindLambertian:
		return m.scatterLambertian(random, rec), true
	case kindMetal:
		return m.scatterMetal(random, ray, rec)
	case kindDielectric:
		return m.scatterDielectric(random, ray, rec), true
	default:
		panic("material: unknown material kind")
	}
}

func (m Material) scatterLambertian(random *rand.Rand, rec HitRecord) Scatter {
	direction := lambertianDirection(rec.Normal, core.RandomOnUnitSphere(random))
	return Scatter{Direction: direction, Attenuation: m.albedo}
}

// lambertianDirection offsets the normal by a random point on the unit
// sphere. The offset can cancel the normal almost exactly, which would
// leave a degenerate direction, so the normal itself is the fallback.
func lambertianDirection(normal, offset core.Vec3) core.Vec3 {
	direction := normal.Add(offset)
	if direction.NearZero() {
		return normal
	}
	return direction
}

func (m Material) scatterMetal(random *rand.Rand, ray core.Ray, rec HitRecord) (Scatter, bool) {
	reflected := reflect(ray.Direction.Normalize(), rec.Normal)

	direction := reflected
	if m.fuzz > 0 {
		direction = reflected.Add(core.RandomInUnitSphere(random).Multiply(m.fuzz))
	}

	// The surface absorbs rays whose unperturbed reflection points into
	// it (grazing or internal angles).
	if reflected.Dot(rec.Normal) <= 0 {
		return Scatter{}, false
	}

	return Scatter{Direction: direction, Attenuation: m.albedo}, true
}

func (m Material) scatterDielectric(random *rand.Rand, ray core.Ray, rec HitRecord) Scatter {
	var refractionRatio float64
	if rec.Pointing == PointingOutward {
		refractionRatio = 1.0 / m.refractiveIndex // entering the material
	} else {
		refractionRatio = m.refractiveIndex // exiting the material
	}

	unitDirection := ray.Direction.Normalize()
	cosTheta := math.Min(unitDirection.Negate().Dot(rec.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || Reflectance(cosTheta, refractionRatio) > random.Float64() {
		direction = reflect(unitDirection, rec.Normal)
	} else {
		direction = refract(unitDirection, rec.Normal, refractionRatio)
	}

	// Clear glass absorbs nothing.
	return Scatter{Direction: direction, Attenuation: core.NewVec3(1, 1, 1)}
}

// reflect mirrors v about the surface normal n: v - 2*dot(v,n)*n
func reflect(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}

// refract bends the unit vector uv through a surface with normal n using
// Snell's law in vector form
func refract(uv, n core.Vec3, etaiOverEtat float64) core.Vec3 {
	cosTheta := math.Min(uv.Negate().Dot(n), 1.0)
	rOutPerp := uv.Add(n.Multiply(cosTheta)).Multiply(etaiOverEtat)
	rOutParallel := n.Multiply(-math.Sqrt(math.Abs(1.0 - rOutPerp.LengthSquared())))
	return rOutPerp.Add(rOutParallel)
}

// Reflectance calculates the Fresnel reflection probability using
// Schlick's approximation
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
