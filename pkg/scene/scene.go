package scene

import (
	"github.com/df07/go-glimpse/pkg/camera"
	"github.com/df07/go-glimpse/pkg/core"
	"github.com/df07/go-glimpse/pkg/geometry"
	"github.com/df07/go-glimpse/pkg/material"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	World      *geometry.HittableList // Objects in the scene, emitters included
	Lights     *geometry.HittableList // Emitters to importance sample toward
	Background core.Vec3              // Radiance of rays that escape the world
	Camera     camera.Config
}

// New creates an empty scene viewed through cam
func New(cam camera.Config, background core.Vec3) *Scene {
	return &Scene{
		World:      geometry.NewHittableList(),
		Lights:     geometry.NewHittableList(),
		Background: background,
		Camera:     cam,
	}
}

// Add puts objects into the world
func (s *Scene) Add(objects ...geometry.Hittable) {
	for _, object := range objects {
		s.World.Add(object)
	}
}

// AddLight puts an emitter into the world and registers it for light sampling
func (s *Scene) AddLight(light geometry.Hittable) {
	s.World.Add(light)
	s.Lights.Add(light)
}

// AddQuadLight adds a rectangular area light. It emits on the side u×v points to.
func (s *Scene) AddQuadLight(corner, u, v, emission core.Vec3) *geometry.Quad {
	quad := geometry.NewQuad(corner, u, v, material.NewDiffuseLight(emission))
	s.AddLight(quad)
	return quad
}

// AddSphereLight adds a spherical light that emits outward
func (s *Scene) AddSphereLight(center core.Vec3, radius float64, emission core.Vec3) *geometry.Sphere {
	sphere := geometry.NewSphere(center, radius, material.NewDiffuseLight(emission))
	s.AddLight(sphere)
	return sphere
}

// NewGroundQuad creates a large horizontal quad centered at center with its normal pointing up
func NewGroundQuad(center core.Vec3, size float64, mat material.Material) *geometry.Quad {
	corner := core.NewVec3(center.X-size/2, center.Y, center.Z-size/2)
	// u × v = (0,0,size) × (size,0,0) = (0,size²,0)
	u := core.NewVec3(0, 0, size)
	v := core.NewVec3(size, 0, 0)
	return geometry.NewQuad(corner, u, v, mat)
}
