package scene

import (
	"github.com/df07/go-glimpse/pkg/camera"
	"github.com/df07/go-glimpse/pkg/core"
	"github.com/df07/go-glimpse/pkg/geometry"
	"github.com/df07/go-glimpse/pkg/material"
)

// randomSpheresSeed fixes the layout so every load builds the same scene
const randomSpheresSeed = 1

func randomColor(sampler core.Sampler, min, max float64) core.Vec3 {
	return core.NewVec3(
		core.RandomRange(sampler, min, max),
		core.RandomRange(sampler, min, max),
		core.RandomRange(sampler, min, max),
	)
}

// NewRandomSpheresScene creates a checkered ground covered with small random
// spheres around three large ones. Diffuse spheres bounce during the shutter.
func NewRandomSpheresScene() *Scene {
	cam := camera.DefaultConfig()
	cam.ImageWidth = 400
	cam.LookFrom = core.NewVec3(13, 2, 3)
	cam.LookAt = core.NewVec3(0, 0, 0)
	cam.VFov = 20
	cam.DefocusAngle = 0.6
	cam.FocusDistance = 10

	s := New(cam, skyBlue)
	sampler := core.NewSeededSampler(randomSpheresSeed)

	checker := material.NewCheckerColors(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	s.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)))

	small := geometry.NewHittableList()
	avoid := core.NewVec3(4, 0.2, 0)
	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := sampler.Get1D()
			center := core.NewVec3(float64(a)+0.9*sampler.Get1D(), 0.2, float64(b)+0.9*sampler.Get1D())

			if center.Subtract(avoid).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				albedo := randomColor(sampler, 0, 1).MultiplyVec(randomColor(sampler, 0, 1))
				center2 := center.Add(core.NewVec3(0, core.RandomRange(sampler, 0, 0.5), 0))
				small.Add(geometry.NewMovingSphere(center, center2, 0.2, material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				albedo := randomColor(sampler, 0.5, 1)
				fuzz := core.RandomRange(sampler, 0, 0.5)
				small.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				small.Add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}
	s.Add(geometry.NewBVH(small))

	s.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)),
	)

	return s
}
