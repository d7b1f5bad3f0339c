package geometry

import (
	"math"

	"github.com/df07/go-glimpse/pkg/core"
	"github.com/df07/go-glimpse/pkg/material"
	"github.com/df07/go-glimpse/pkg/pdf"
)

// Hittable interface for objects that can be hit by rays.
// The sampler is only consulted by stochastic primitives such as volumes.
type Hittable interface {
	Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool)
	BoundingBox() core.AABB
}

// lightTargetEpsilon offsets light sampling rays away from the shading point
const lightTargetEpsilon = 0.001

// targetPDFValue is object's light sampling density. Objects that cannot be
// sampled fall back to the uniform sphere, matching targetRandom.
func targetPDFValue(object Hittable, origin, direction core.Vec3) float64 {
	if target, ok := object.(pdf.Target); ok {
		return target.PDFValue(origin, direction)
	}
	return 1 / (4 * math.Pi)
}

// targetRandom draws a direction toward object, or a uniform sphere direction
// when object cannot be sampled
func targetRandom(object Hittable, origin core.Vec3, sampler core.Sampler) core.Vec3 {
	if target, ok := object.(pdf.Target); ok {
		return target.Random(origin, sampler)
	}
	return core.SampleOnUnitSphere(sampler.Get2D())
}
