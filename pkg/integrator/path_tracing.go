package integrator

import (
	"math"

	"github.com/df07/go-glimpse/pkg/core"
	"github.com/df07/go-glimpse/pkg/pdf"
)

// minPDFValue is the smallest mixture density a sample is weighted by
const minPDFValue = 1e-12

// hitRange starts past zero so secondary rays from re-hitting their own surface
var hitRange = core.NewInterval(0.001, math.Inf(1))

// PathTracingIntegrator implements unidirectional path tracing with a fixed
// bounce limit and one-sample mixture importance sampling toward the lights
type PathTracingIntegrator struct {
	maxDepth int
}

// NewPathTracingIntegrator creates a path tracer that follows at most maxDepth bounces
func NewPathTracingIntegrator(maxDepth int) *PathTracingIntegrator {
	return &PathTracingIntegrator{maxDepth: maxDepth}
}

// RayColor computes the color for a single camera ray
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, env Environment, sampler core.Sampler) core.Vec3 {
	return RayColor(ray, env, pt.maxDepth, sampler)
}

// RayColor is the recursive path estimator. Paths are cut off once depth
// drops below zero; there is no Russian roulette.
func RayColor(ray core.Ray, env Environment, depth int, sampler core.Sampler) core.Vec3 {
	if depth < 0 {
		return core.Vec3{}
	}

	if env.World == nil {
		return env.Background
	}
	hit, isHit := env.World.Hit(ray, hitRange, sampler)
	if !isHit {
		return env.Background
	}

	emission := hit.Material.Emitted(ray, *hit)

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		return emission
	}

	// Metal and dielectric choose their own outgoing ray and never emit
	if scatter.SkipPDF {
		return scatter.Attenuation.MultiplyVec(RayColor(scatter.SkipPDFRay, env, depth-1, sampler))
	}

	var samplingPDF pdf.PDF = scatter.PDF
	if env.Lights.Len() > 0 {
		samplingPDF = pdf.NewMixture(pdf.NewHittable(env.Lights, hit.Point), scatter.PDF)
	}

	scattered := core.NewRayAt(hit.Point, samplingPDF.Generate(sampler), ray.Time)
	pdfValue := samplingPDF.Value(scattered.Direction)
	if math.IsNaN(pdfValue) || math.IsInf(pdfValue, 0) || pdfValue <= minPDFValue {
		return emission
	}

	scatteringPDF := hit.Material.ScatteringPDF(ray, *hit, scattered)
	incoming := RayColor(scattered, env, depth-1, sampler)

	return emission.Add(scatter.Attenuation.MultiplyVec(incoming).Multiply(scatteringPDF / pdfValue))
}

// Sanitize replaces non-finite color components with zero so a single bad
// path cannot poison a pixel's running mean
func Sanitize(c core.Vec3) core.Vec3 {
	return core.NewVec3(finiteOrZero(c.X), finiteOrZero(c.Y), finiteOrZero(c.Z))
}

func finiteOrZero(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}
