package scene

import (
	"github.com/df07/go-glimpse/pkg/camera"
	"github.com/df07/go-glimpse/pkg/core"
	"github.com/df07/go-glimpse/pkg/geometry"
	"github.com/df07/go-glimpse/pkg/material"
)

// skyBlue is the background of outdoor scenes
var skyBlue = core.NewVec3(0.7, 0.8, 1.0)

// NewSimpleSphereScene creates a single diffuse sphere of radius 0.5 at the
// origin, lit only by a quad light above it against a black background
func NewSimpleSphereScene() *Scene {
	cam := camera.DefaultConfig()
	cam.AspectRatio = 1.0
	cam.ImageWidth = 200
	cam.SamplesPerPixel = 64
	cam.MaxDepth = 10
	cam.LookFrom = core.NewVec3(0, 0, 3)
	cam.LookAt = core.NewVec3(0, 0, 0)
	cam.VFov = 40
	cam.FocusDistance = 3

	s := New(cam, core.NewVec3(0, 0, 0))

	s.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 0.5, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.3))))

	// u × v points down so the light faces the sphere
	s.AddQuadLight(
		core.NewVec3(-0.5, 1.5, -0.5),
		core.NewVec3(1, 0, 0),
		core.NewVec3(0, 0, 1),
		core.NewVec3(8, 8, 8),
	)

	return s
}

// NewCheckeredSpheresScene creates two large spheres sharing a checker texture
func NewCheckeredSpheresScene() *Scene {
	cam := camera.DefaultConfig()
	cam.LookFrom = core.NewVec3(13, 2, 3)
	cam.LookAt = core.NewVec3(0, 0, 0)
	cam.VFov = 20

	s := New(cam, skyBlue)

	checker := material.NewCheckerColors(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	s.Add(
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, material.NewTexturedLambertian(checker)),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, material.NewTexturedLambertian(checker)),
	)

	return s
}

// NewMaterialShowcaseScene lines up diffuse, metal and glass spheres,
// including hollow glass built from a nested inverted dielectric
func NewMaterialShowcaseScene() *Scene {
	cam := camera.DefaultConfig()
	cam.LookFrom = core.NewVec3(0, 7, 15)
	cam.LookAt = core.NewVec3(0, 0, 0)
	cam.VFov = 60

	s := New(cam, skyBlue)

	// Diffuse
	s.Add(
		geometry.NewSphere(core.NewVec3(-4, 2, -4), 2, material.NewLambertian(core.NewVec3(0.5, 0.8, 0.7))),
		geometry.NewSphere(core.NewVec3(2, 2, -6), 2, material.NewLambertian(core.NewVec3(0.1, 0.8, 0.5))),
	)

	// Metal
	s.Add(
		geometry.NewSphere(core.NewVec3(5, 2, -3), 2, material.NewMetal(core.NewVec3(0.6, 0.2, 0.8), 0.2)),
		geometry.NewSphere(core.NewVec3(-8, 2, -4), 2, material.NewMetal(core.NewVec3(0.3, 0.5, 0.8), 0.01)),
	)

	// Air bubble inside glass
	s.Add(
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 1.95, material.NewDielectric(1.0/1.5)),
	)

	// Water sphere
	s.Add(
		geometry.NewSphere(core.NewVec3(-4, 2, 0), 2, material.NewDielectric(1.33)),
		geometry.NewSphere(core.NewVec3(-4, 2, 0), 1.4, material.NewDielectric(1.0/1.33)),
	)

	s.Add(NewGroundQuad(core.NewVec3(0, 0, 0), 100, material.NewLambertian(core.NewVec3(0.8, 0.0, 0.8))))

	return s
}
