package scene

import (
	"github.com/df07/go-glimpse/pkg/camera"
	"github.com/df07/go-glimpse/pkg/core"
	"github.com/df07/go-glimpse/pkg/geometry"
	"github.com/df07/go-glimpse/pkg/material"
)

// Cornell box dimensions (standard 555x555x555 units)
const boxSize = 555.0

func cornellCamera() camera.Config {
	cam := camera.DefaultConfig()
	cam.AspectRatio = 1.0 // Square aspect ratio for Cornell box
	cam.ImageWidth = 600
	cam.SamplesPerPixel = 200
	cam.LookFrom = core.NewVec3(278, 278, -800) // Outside the open face looking in
	cam.LookAt = core.NewVec3(278, 278, 0)
	cam.VFov = 40
	cam.FocusDistance = 800
	return cam
}

// addCornellWalls adds the five walls of the box; the face toward the camera stays open
func addCornellWalls(s *Scene) material.Material {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	s.Add(
		// Right wall (green) - YZ plane at x=boxSize
		geometry.NewQuad(core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), green),
		// Left wall (red) - YZ plane at x=0
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), red),
		// Floor (white) - XZ plane at y=0
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white),
		// Ceiling (white) - XZ plane at y=boxSize
		geometry.NewQuad(core.NewVec3(boxSize, boxSize, boxSize), core.NewVec3(-boxSize, 0, 0), core.NewVec3(0, 0, -boxSize), white),
		// Back wall (white) - XY plane at z=boxSize
		geometry.NewQuad(core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), white),
	)

	return white
}

// cornellBoxes returns the tall and short boxes, rotated and moved into place
func cornellBoxes(mat material.Material) (tall, short geometry.Hittable) {
	tall = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), mat)
	tall = geometry.NewRotateY(tall, 15)
	tall = geometry.NewTranslate(tall, core.NewVec3(265, 0, 295))

	short = geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), mat)
	short = geometry.NewRotateY(short, -18)
	short = geometry.NewTranslate(short, core.NewVec3(130, 0, 65))

	return tall, short
}

// NewCornellScene creates the classic Cornell box with two white boxes and a ceiling light
func NewCornellScene() *Scene {
	s := New(cornellCamera(), core.NewVec3(0, 0, 0))

	white := addCornellWalls(s)

	// Ceiling light just below the ceiling, facing down
	s.AddQuadLight(
		core.NewVec3(343, 554, 332),
		core.NewVec3(-130, 0, 0),
		core.NewVec3(0, 0, -105),
		core.NewVec3(15, 15, 15),
	)

	tall, short := cornellBoxes(white)
	s.Add(tall, short)

	return s
}

// NewCornellSmokeScene replaces the boxes with dark and light smoke and uses a larger, dimmer light
func NewCornellSmokeScene() *Scene {
	s := New(cornellCamera(), core.NewVec3(0, 0, 0))

	white := addCornellWalls(s)

	s.AddQuadLight(
		core.NewVec3(443, 554, 432),
		core.NewVec3(-330, 0, 0),
		core.NewVec3(0, 0, -305),
		core.NewVec3(7, 7, 7),
	)

	tall, short := cornellBoxes(white)
	s.Add(
		geometry.NewConstantMedium(tall, 0.01, core.NewVec3(0, 0, 0)),
		geometry.NewConstantMedium(short, 0.01, core.NewVec3(1, 1, 1)),
	)

	return s
}
