package renderer

import (
	"math"
	"math/rand"

	"github.com/rkoval/go-weekend-raytracer/pkg/core"
	"github.com/rkoval/go-weekend-raytracer/pkg/geometry"
)

// Background gradient colors: linear blend from white at the horizon to
// sky blue straight up.
var (
	white   = core.NewVec3(1, 1, 1)
	skyBlue = core.NewVec3(0.5, 0.7, 1.0)
	black   = core.NewVec3(0, 0, 0)
)

// hitEpsilon is the lower ray parameter bound on every world query. It
// avoids immediate re-hits caused by floating-point noise at the origin
// of a scattered ray ("shadow acne").
const hitEpsilon = 0.001

// rayColor follows a ray through the world for up to maxDepth scatter
// events, multiplying attenuations along the path. The path terminates
// with the background gradient on a miss, with black when a material
// absorbs the ray, and with black when the bounce limit is exhausted
// (energy loss, not an error).
func rayColor(random *rand.Rand, ray core.Ray, world *geometry.World, maxDepth int) core.Vec3 {
	attenuation := white

	for depth := 0; depth < maxDepth; depth++ {
		event, ok := world.Hit(random, ray, hitEpsilon, math.Inf(1))
		if !ok {
			return attenuation.MultiplyVec(backgroundGradient(ray))
		}
		if event.Scatter == nil {
			return black
		}

		attenuation = attenuation.MultiplyVec(event.Scatter.Attenuation)
		ray = core.NewRay(event.Record.Point, event.Scatter.Direction)
	}

	return black
}

// backgroundGradient blends white into sky blue based on the ray's
// normalized vertical direction
func backgroundGradient(ray core.Ray) core.Vec3 {
	unitDirection := ray.Direction.Normalize()
	t := 0.5 * (unitDirection.Y + 1.0)
	return white.Multiply(1.0 - t).Add(skyBlue.Multiply(t))
}
