package geometry

import (
	"github.com/df07/go-glimpse/pkg/core"
	"github.com/df07/go-glimpse/pkg/material"
)

// HittableList is a flat union of hittables that reports the nearest hit
type HittableList struct {
	Objects []Hittable
	bbox    core.AABB
}

// NewHittableList creates a list holding objects
func NewHittableList(objects ...Hittable) *HittableList {
	list := &HittableList{bbox: core.EmptyAABB}
	for _, object := range objects {
		list.Add(object)
	}
	return list
}

// Add appends an object and grows the list's bounding box
func (l *HittableList) Add(object Hittable) {
	l.Objects = append(l.Objects, object)
	l.bbox = l.bbox.Union(object.BoundingBox())
}

// Clear removes every object
func (l *HittableList) Clear() {
	l.Objects = nil
	l.bbox = core.EmptyAABB
}

// Len returns the number of objects
func (l *HittableList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.Objects)
}

// Hit returns the nearest hit among all objects
func (l *HittableList) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	var closestHit *material.HitRecord
	closestSoFar := rayT.Max

	for _, object := range l.Objects {
		if hit, isHit := object.Hit(ray, core.NewInterval(rayT.Min, closestSoFar), sampler); isHit {
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, closestHit != nil
}

// BoundingBox returns the union of every object's box
func (l *HittableList) BoundingBox() core.AABB {
	return l.bbox
}

// PDFValue averages the densities of every object
func (l *HittableList) PDFValue(origin, direction core.Vec3) float64 {
	if len(l.Objects) == 0 {
		return 0
	}

	weight := 1.0 / float64(len(l.Objects))
	sum := 0.0
	for _, object := range l.Objects {
		sum += weight * targetPDFValue(object, origin, direction)
	}
	return sum
}

// Random samples a direction toward one object chosen uniformly
func (l *HittableList) Random(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	if len(l.Objects) == 0 {
		return core.NewVec3(1, 0, 0)
	}

	index := min(int(sampler.Get1D()*float64(len(l.Objects))), len(l.Objects)-1)
	return targetRandom(l.Objects[index], origin, sampler)
}
