package geometry

import (
	"github.com/df07/go-glimpse/pkg/core"
	"github.com/df07/go-glimpse/pkg/material"
)

// Box represents an axis-aligned rectangular box made up of 6 quads.
// Use RotateY and Translate to place it.
type Box struct {
	Material material.Material // Material for all faces
	faces    *HittableList     // The 6 quad faces
}

// NewBox creates a box with a and b as opposite corners
func NewBox(a, b core.Vec3, mat material.Material) *Box {
	minP := core.NewVec3(min(a.X, b.X), min(a.Y, b.Y), min(a.Z, b.Z))
	maxP := core.NewVec3(max(a.X, b.X), max(a.Y, b.Y), max(a.Z, b.Z))

	dx := core.NewVec3(maxP.X-minP.X, 0, 0)
	dy := core.NewVec3(0, maxP.Y-minP.Y, 0)
	dz := core.NewVec3(0, 0, maxP.Z-minP.Z)

	faces := NewHittableList(
		NewQuad(core.NewVec3(minP.X, minP.Y, maxP.Z), dx, dy, mat),          // front
		NewQuad(core.NewVec3(maxP.X, minP.Y, maxP.Z), dz.Negate(), dy, mat), // right
		NewQuad(core.NewVec3(maxP.X, minP.Y, minP.Z), dx.Negate(), dy, mat), // back
		NewQuad(core.NewVec3(minP.X, minP.Y, minP.Z), dz, dy, mat),          // left
		NewQuad(core.NewVec3(minP.X, maxP.Y, maxP.Z), dx, dz.Negate(), mat), // top
		NewQuad(core.NewVec3(minP.X, minP.Y, minP.Z), dx, dz, mat),          // bottom
	)

	return &Box{Material: mat, faces: faces}
}

// Faces returns the box's six quads
func (b *Box) Faces() []Hittable {
	return b.faces.Objects
}

// Hit tests if a ray intersects with any face of the box
func (b *Box) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	return b.faces.Hit(ray, rayT, sampler)
}

// BoundingBox returns the axis-aligned bounding box for this box
func (b *Box) BoundingBox() core.AABB {
	return b.faces.BoundingBox()
}

// PDFValue averages the face densities, so a box can be sampled as a light
func (b *Box) PDFValue(origin, direction core.Vec3) float64 {
	return b.faces.PDFValue(origin, direction)
}

// Random samples a direction toward one face chosen uniformly
func (b *Box) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return b.faces.Random(origin, sampler)
}
