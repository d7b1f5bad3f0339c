package scene

import (
	"github.com/df07/go-glimpse/pkg/camera"
	"github.com/df07/go-glimpse/pkg/core"
	"github.com/df07/go-glimpse/pkg/geometry"
	"github.com/df07/go-glimpse/pkg/material"
)

// Seeds for procedural textures, fixed so every load builds the same scene
const (
	marbleSeed = 7
	planetSeed = 11
)

// Planet map resolution
const (
	planetMapWidth  = 512
	planetMapHeight = 256
)

func newMarble(scale float64) *material.NoiseTexture {
	return material.NewNoiseTexture(material.NewPerlin(core.NewSeededSampler(marbleSeed)), scale)
}

func newPlanetMaterial() material.Material {
	planet := material.NewPlanetTexture(planetMapWidth, planetMapHeight, material.NewPerlin(core.NewSeededSampler(planetSeed)))
	return material.NewTexturedLambertian(planet)
}

func outdoorCamera() camera.Config {
	cam := camera.DefaultConfig()
	cam.LookFrom = core.NewVec3(13, 2, 3)
	cam.LookAt = core.NewVec3(0, 0, 0)
	cam.VFov = 20
	return cam
}

// NewTwoPerlinSpheresScene creates a marble sphere resting on a marble ground
func NewTwoPerlinSpheresScene() *Scene {
	s := New(outdoorCamera(), skyBlue)

	marble := material.NewTexturedLambertian(newMarble(4))
	s.Add(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	)

	return s
}

// NewEarthScene creates a globe wrapped in a procedurally painted planet map
func NewEarthScene() *Scene {
	s := New(outdoorCamera(), skyBlue)
	s.Add(geometry.NewSphere(core.NewVec3(0, 0, 0), 2, newPlanetMaterial()))
	return s
}

// NewSimpleLightScene lights the marble spheres with a single quad in the dark
func NewSimpleLightScene() *Scene {
	cam := camera.DefaultConfig()
	cam.LookFrom = core.NewVec3(26, 3, 6)
	cam.LookAt = core.NewVec3(0, 2, 0)
	cam.VFov = 20

	s := New(cam, core.NewVec3(0, 0, 0))

	marble := material.NewTexturedLambertian(newMarble(4))
	s.Add(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	)

	// u × v points toward +Z, the camera's side
	s.AddQuadLight(
		core.NewVec3(3, 1, -2),
		core.NewVec3(2, 0, 0),
		core.NewVec3(0, 2, 0),
		core.NewVec3(4, 4, 4),
	)

	return s
}

// NewTextureGalleryScene lines up one sphere per texture kind
func NewTextureGalleryScene() *Scene {
	cam := camera.DefaultConfig()
	cam.LookFrom = core.NewVec3(0, 3, 14)
	cam.LookAt = core.NewVec3(0, 1, 0)
	cam.VFov = 35

	s := New(cam, skyBlue)

	textures := []material.Texture{
		material.NewUVDebugTexture(256, 128),
		material.NewCheckerboardTexture(256, 128, 16, core.NewVec3(0.9, 0.9, 0.9), core.NewVec3(0.1, 0.1, 0.1)),
		material.NewGradientTexture(4, 128, core.NewVec3(1, 0.6, 0.1), core.NewVec3(0.1, 0.2, 0.8)),
		newMarble(4),
	}
	for i, tex := range textures {
		x := -4.5 + 3*float64(i)
		s.Add(geometry.NewSphere(core.NewVec3(x, 1.2, 0), 1.2, material.NewTexturedLambertian(tex)))
	}

	checker := material.NewCheckerColors(1, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
	s.Add(NewGroundQuad(core.NewVec3(0, 0, 0), 40, material.NewTexturedLambertian(checker)))

	return s
}
