package scene

import (
	"github.com/df07/go-glimpse/pkg/camera"
	"github.com/df07/go-glimpse/pkg/core"
	"github.com/df07/go-glimpse/pkg/geometry"
	"github.com/df07/go-glimpse/pkg/material"
)

// finalSceneSeed fixes box heights and the sphere cluster layout
const finalSceneSeed = 3

const (
	finalBoxesPerSide    = 20
	finalClusterSpheres  = 1000
	finalClusterBoxWidth = 165
)

// NewFinalScene combines every feature: a field of boxes, a moving sphere,
// glass, fuzzy metal, subsurface and global fog, textured spheres and a
// rotated, translated cluster of spheres under a ceiling light
func NewFinalScene() *Scene {
	cam := camera.DefaultConfig()
	cam.AspectRatio = 1.0
	cam.ImageWidth = 800
	cam.LookFrom = core.NewVec3(478, 278, -600)
	cam.LookAt = core.NewVec3(278, 278, 0)
	cam.VFov = 40

	s := New(cam, core.NewVec3(0, 0, 0))
	sampler := core.NewSeededSampler(finalSceneSeed)

	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	boxes := geometry.NewHittableList()
	for i := 0; i < finalBoxesPerSide; i++ {
		for j := 0; j < finalBoxesPerSide; j++ {
			w := 100.0
			x0 := -1000.0 + float64(i)*w
			z0 := -1000.0 + float64(j)*w
			y1 := core.RandomRange(sampler, 1, 101)
			boxes.Add(geometry.NewBox(core.NewVec3(x0, 0, z0), core.NewVec3(x0+w, y1, z0+w), ground))
		}
	}
	s.Add(geometry.NewBVH(boxes))

	// u × v points down into the scene
	s.AddQuadLight(
		core.NewVec3(123, 554, 147),
		core.NewVec3(300, 0, 0),
		core.NewVec3(0, 0, 265),
		core.NewVec3(7, 7, 7),
	)

	center := core.NewVec3(400, 400, 200)
	s.Add(geometry.NewMovingSphere(center, center.Add(core.NewVec3(30, 0, 0)), 50,
		material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1))))

	s.Add(
		geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1.0)),
	)

	// Blue subsurface: a glass shell filled with dense medium
	boundary := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	s.Add(boundary, geometry.NewConstantMedium(boundary, 0.2, core.NewVec3(0.2, 0.4, 0.9)))

	// Thin fog over everything, camera included
	fog := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))
	s.Add(geometry.NewConstantMedium(fog, 0.0001, core.NewVec3(1, 1, 1)))

	s.Add(
		geometry.NewSphere(core.NewVec3(400, 200, 400), 100, newPlanetMaterial()),
		geometry.NewSphere(core.NewVec3(220, 280, 300), 80, material.NewTexturedLambertian(newMarble(0.1))),
	)

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	cluster := geometry.NewHittableList()
	for i := 0; i < finalClusterSpheres; i++ {
		center := core.NewVec3(
			core.RandomRange(sampler, 0, finalClusterBoxWidth),
			core.RandomRange(sampler, 0, finalClusterBoxWidth),
			core.RandomRange(sampler, 0, finalClusterBoxWidth),
		)
		cluster.Add(geometry.NewSphere(center, 10, white))
	}
	s.Add(geometry.NewTranslate(geometry.NewRotateY(geometry.NewBVH(cluster), 15), core.NewVec3(-100, 270, 395)))

	return s
}
