package integrator

import (
	"github.com/df07/go-glimpse/pkg/core"
	"github.com/df07/go-glimpse/pkg/geometry"
)

// Environment is what a ray sees: the world to intersect, the emitters to
// sample toward and the radiance of rays that escape.
type Environment struct {
	World      geometry.Hittable
	Lights     *geometry.HittableList // May be nil or empty
	Background core.Vec3
}

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along ray
	RayColor(ray core.Ray, env Environment, sampler core.Sampler) core.Vec3
}
