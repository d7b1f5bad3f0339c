package geometry

import (
	"math"

	"github.com/df07/go-glimpse/pkg/core"
	"github.com/df07/go-glimpse/pkg/material"
)

// Translate displaces a hittable by a fixed offset
type Translate struct {
	object Hittable
	offset core.Vec3
	bbox   core.AABB
}

// NewTranslate wraps object so it appears moved by offset
func NewTranslate(object Hittable, offset core.Vec3) *Translate {
	return &Translate{
		object: object,
		offset: offset,
		bbox:   object.BoundingBox().Add(offset),
	}
}

// Hit moves the ray into object space, intersects, and moves the hit back
func (t *Translate) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	offsetRay := core.NewRayAt(ray.Origin.Subtract(t.offset), ray.Direction, ray.Time)

	hit, ok := t.object.Hit(offsetRay, rayT, sampler)
	if !ok {
		return nil, false
	}

	hit.Point = hit.Point.Add(t.offset)
	return hit, true
}

// BoundingBox returns the translated box
func (t *Translate) BoundingBox() core.AABB {
	return t.bbox
}

// PDFValue forwards to the wrapped object
func (t *Translate) PDFValue(origin, direction core.Vec3) float64 {
	return targetPDFValue(t.object, origin.Subtract(t.offset), direction)
}

// Random forwards to the wrapped object
func (t *Translate) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return targetRandom(t.object, origin.Subtract(t.offset), sampler)
}

// RotateY rotates a hittable about the world Y axis
type RotateY struct {
	object   Hittable
	sinTheta float64
	cosTheta float64
	bbox     core.AABB
}

// NewRotateY wraps object rotated by angle degrees about Y
func NewRotateY(object Hittable, angle float64) *RotateY {
	radians := angle * math.Pi / 180
	r := &RotateY{
		object:   object,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}

	box := object.BoundingBox()
	minP := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	maxP := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := float64(i)*box.X.Max + float64(1-i)*box.X.Min
				y := float64(j)*box.Y.Max + float64(1-j)*box.Y.Min
				z := float64(k)*box.Z.Max + float64(1-k)*box.Z.Min

				corner := r.toWorld(core.NewVec3(x, y, z))
				minP = core.NewVec3(min(minP.X, corner.X), min(minP.Y, corner.Y), min(minP.Z, corner.Z))
				maxP = core.NewVec3(max(maxP.X, corner.X), max(maxP.Y, corner.Y), max(maxP.Z, corner.Z))
			}
		}
	}

	r.bbox = core.NewAABBFromPoints(minP, maxP)
	return r
}

// toObject rotates a world space vector by -angle
func (r *RotateY) toObject(v core.Vec3) core.Vec3 {
	return core.NewVec3(r.cosTheta*v.X-r.sinTheta*v.Z, v.Y, r.sinTheta*v.X+r.cosTheta*v.Z)
}

// toWorld rotates an object space vector by +angle
func (r *RotateY) toWorld(v core.Vec3) core.Vec3 {
	return core.NewVec3(r.cosTheta*v.X+r.sinTheta*v.Z, v.Y, -r.sinTheta*v.X+r.cosTheta*v.Z)
}

// Hit rotates the ray into object space, intersects, and rotates the hit back
func (r *RotateY) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	rotated := core.NewRayAt(r.toObject(ray.Origin), r.toObject(ray.Direction), ray.Time)

	hit, ok := r.object.Hit(rotated, rayT, sampler)
	if !ok {
		return nil, false
	}

	hit.Point = r.toWorld(hit.Point)
	hit.Normal = r.toWorld(hit.Normal)
	return hit, true
}

// BoundingBox returns the box of the rotated object's corners
func (r *RotateY) BoundingBox() core.AABB {
	return r.bbox
}

// PDFValue forwards to the wrapped object in object space
func (r *RotateY) PDFValue(origin, direction core.Vec3) float64 {
	return targetPDFValue(r.object, r.toObject(origin), r.toObject(direction))
}

// Random forwards to the wrapped object and rotates the sample back to world space
func (r *RotateY) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return r.toWorld(targetRandom(r.object, r.toObject(origin), sampler))
}
