package renderer

import "github.com/rkoval/go-weekend-raytracer/pkg/core"

// Accumulator aggregates a running sum of color samples to compute a
// Monte Carlo mean. The sum is associative, so samples may be fed in any
// order.
type Accumulator struct {
	sum   core.Vec3
	count int
}

// Feed adds one sample to the accumulator
func (a *Accumulator) Feed(sample core.Vec3) {
	a.sum = a.sum.Add(sample)
	a.count++
}

// Count returns the number of samples fed so far
func (a *Accumulator) Count() int {
	return a.count
}

// Color returns the gamma-corrected mean of all samples, clamped to
// [0, 1] per channel. With no samples it returns black.
func (a *Accumulator) Color() core.Vec3 {
	if a.count == 0 {
		return core.Vec3{}
	}
	mean := a.sum.Multiply(1.0 / float64(a.count))
	return mean.GammaCorrect(2.0).Clamp(0, 1)
}
