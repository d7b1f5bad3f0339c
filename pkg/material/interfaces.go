package material

import (
	"github.com/df07/go-glimpse/pkg/core"
	"github.com/df07/go-glimpse/pkg/pdf"
)

// Material interface for surfaces and media that interact with rays
type Material interface {
	// Scatter returns false when the ray is absorbed
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterRecord, bool)

	// Emitted returns radiance leaving the surface toward rayIn's origin
	Emitted(rayIn core.Ray, hit HitRecord) core.Vec3

	// ScatteringPDF returns the density of the material's own sampling for scattered
	ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64
}

// ScatterRecord contains the result of material scattering.
// Either PDF is set, or SkipPDF is true and SkipPDFRay holds the chosen ray.
type ScatterRecord struct {
	Attenuation core.Vec3 // Color attenuation
	PDF         pdf.PDF   // Density to importance sample (nil when SkipPDF)
	SkipPDF     bool      // Deterministic bounce: no importance sampling
	SkipPDFRay  core.Ray  // Outgoing ray for deterministic bounces
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal at intersection, facing the incoming ray
	Material  Material  // Material of the hit object
	T         float64   // Parameter t along the ray
	U, V      float64   // Surface coordinates
	FrontFace bool      // Whether ray hit the front face
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal is assumed to have unit length.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// base supplies the non-emitting, zero-density defaults
type base struct{}

func (base) Emitted(rayIn core.Ray, hit HitRecord) core.Vec3 {
	return core.Vec3{}
}

func (base) ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64 {
	return 0
}
