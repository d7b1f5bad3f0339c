// Package pdf provides probability densities over outgoing directions used
// for importance sampling in the path tracer.
package pdf

import (
	"math"

	"github.com/df07/go-glimpse/pkg/core"
)

// PDF is a density over directions on the unit sphere.
// Value must integrate to 1 for the distribution Generate draws from.
type PDF interface {
	Value(direction core.Vec3) float64
	Generate(sampler core.Sampler) core.Vec3
}

// Target is anything that can be sampled toward from a point, typically a light
type Target interface {
	// PDFValue returns the solid angle density of reaching the target from origin along direction
	PDFValue(origin, direction core.Vec3) float64
	// Random returns a direction from origin toward the target
	Random(origin core.Vec3, sampler core.Sampler) core.Vec3
}

// Sphere is the uniform density over all directions
type Sphere struct{}

// NewSphere creates a uniform sphere PDF
func NewSphere() Sphere {
	return Sphere{}
}

// Value always returns 1/4π
func (Sphere) Value(direction core.Vec3) float64 {
	return 1 / (4 * math.Pi)
}

// Generate draws a uniform direction on the unit sphere
func (Sphere) Generate(sampler core.Sampler) core.Vec3 {
	return core.SampleOnUnitSphere(sampler.Get2D())
}

// Cosine is the cosine-weighted hemisphere around a normal
type Cosine struct {
	uvw core.ONB
}

// NewCosine creates a cosine PDF around normal w
func NewCosine(w core.Vec3) Cosine {
	return Cosine{uvw: core.NewONB(w)}
}

// Value returns max(0, cosθ)/π where θ is measured from the normal
func (c Cosine) Value(direction core.Vec3) float64 {
	cosine := direction.Normalize().Dot(c.uvw.W)
	return math.Max(0, cosine/math.Pi)
}

// Generate draws a cosine-weighted direction in world space.
// A degenerate direction falls back to the normal.
func (c Cosine) Generate(sampler core.Sampler) core.Vec3 {
	direction := c.uvw.Transform(core.SampleCosineDirection(sampler.Get2D()))
	if direction.NearZero() {
		return c.uvw.W
	}
	return direction
}

// Hittable samples directions from an origin toward a target
type Hittable struct {
	target Target
	origin core.Vec3
}

// NewHittable creates a PDF toward target as seen from origin
func NewHittable(target Target, origin core.Vec3) Hittable {
	return Hittable{target: target, origin: origin}
}

// Value delegates to the target's solid angle density
func (h Hittable) Value(direction core.Vec3) float64 {
	return h.target.PDFValue(h.origin, direction)
}

// Generate delegates to the target's direction sampling
func (h Hittable) Generate(sampler core.Sampler) core.Vec3 {
	return h.target.Random(h.origin, sampler)
}

// Mixture is an equal-weight blend of two PDFs
type Mixture struct {
	p [2]PDF
}

// NewMixture creates a 50/50 mixture of p0 and p1
func NewMixture(p0, p1 PDF) Mixture {
	return Mixture{p: [2]PDF{p0, p1}}
}

// Value returns the mean of both densities
func (m Mixture) Value(direction core.Vec3) float64 {
	return 0.5*m.p[0].Value(direction) + 0.5*m.p[1].Value(direction)
}

// Generate flips a fair coin to pick which PDF to sample
func (m Mixture) Generate(sampler core.Sampler) core.Vec3 {
	if sampler.Get1D() < 0.5 {
		return m.p[0].Generate(sampler)
	}
	return m.p[1].Generate(sampler)
}
