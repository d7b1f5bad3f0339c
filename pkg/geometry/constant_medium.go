package geometry

import (
	"math"

	"github.com/df07/go-glimpse/pkg/core"
	"github.com/df07/go-glimpse/pkg/material"
)

// ConstantMedium is a volume of uniform density bounded by a convex hittable
type ConstantMedium struct {
	boundary      Hittable
	negInvDensity float64
	phaseFunction material.Material
}

// NewConstantMedium creates a medium of the given density and albedo inside boundary
func NewConstantMedium(boundary Hittable, density float64, albedo core.Vec3) *ConstantMedium {
	return NewTexturedConstantMedium(boundary, density, material.NewSolidColor(albedo))
}

// NewTexturedConstantMedium creates a medium whose albedo varies with position
func NewTexturedConstantMedium(boundary Hittable, density float64, albedo material.Texture) *ConstantMedium {
	return &ConstantMedium{
		boundary:      boundary,
		negInvDensity: -1 / density,
		phaseFunction: material.NewTexturedIsotropic(albedo),
	}
}

// Hit samples a free-flight distance through the medium along the ray
func (m *ConstantMedium) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	entry, ok := m.boundary.Hit(ray, core.UniverseInterval, sampler)
	if !ok {
		return nil, false
	}

	exit, ok := m.boundary.Hit(ray, core.NewInterval(entry.T+0.0001, math.Inf(1)), sampler)
	if !ok {
		return nil, false
	}

	t1 := math.Max(entry.T, rayT.Min)
	t2 := math.Min(exit.T, rayT.Max)
	if t1 >= t2 {
		return nil, false
	}
	if t1 < 0 {
		t1 = 0
	}

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (t2 - t1) * rayLength
	hitDistance := m.negInvDensity * math.Log(sampler.Get1D())

	if hitDistance > distanceInsideBoundary {
		return nil, false
	}

	t := t1 + hitDistance/rayLength
	return &material.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0), // arbitrary
		FrontFace: true,                  // also arbitrary
		Material:  m.phaseFunction,
	}, true
}

// BoundingBox returns the boundary's box
func (m *ConstantMedium) BoundingBox() core.AABB {
	return m.boundary.BoundingBox()
}
