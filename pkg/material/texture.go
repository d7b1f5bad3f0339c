package material

import (
	"math"

	"github.com/df07/go-glimpse/pkg/core"
)

// Texture provides spatially-varying colors for materials
type Texture interface {
	// Value returns color at surface coordinates (u, v) and 3D point p
	Value(u, v float64, p core.Vec3) core.Vec3
}

// SolidColor provides uniform color
type SolidColor struct {
	Color core.Vec3
}

// NewSolidColor creates a new solid color texture
func NewSolidColor(color core.Vec3) *SolidColor {
	return &SolidColor{Color: color}
}

// Value returns the solid color regardless of position
func (s *SolidColor) Value(u, v float64, p core.Vec3) core.Vec3 {
	return s.Color
}

// Checker alternates two textures in a 3D grid of cubes
type Checker struct {
	invScale float64
	Even     Texture
	Odd      Texture
}

// NewChecker creates a checker texture with cells of the given size
func NewChecker(scale float64, even, odd Texture) *Checker {
	return &Checker{invScale: 1.0 / scale, Even: even, Odd: odd}
}

// NewCheckerColors creates a checker texture from two solid colors
func NewCheckerColors(scale float64, even, odd core.Vec3) *Checker {
	return NewChecker(scale, NewSolidColor(even), NewSolidColor(odd))
}

// Value picks the even or odd texture from the cell containing p
func (c *Checker) Value(u, v float64, p core.Vec3) core.Vec3 {
	x := int(math.Floor(c.invScale * p.X))
	y := int(math.Floor(c.invScale * p.Y))
	z := int(math.Floor(c.invScale * p.Z))

	if (x+y+z)%2 == 0 {
		return c.Even.Value(u, v, p)
	}
	return c.Odd.Value(u, v, p)
}

// NoiseTexture is marble-like turbulence whose stripe frequency drifts across the surface
type NoiseTexture struct {
	Noise     *Perlin
	Scale     float64
	BaseColor core.Vec3
}

// NewNoiseTexture creates a grey marble texture; larger scales give tighter stripes
func NewNoiseTexture(noise *Perlin, scale float64) *NoiseTexture {
	return &NoiseTexture{Noise: noise, Scale: scale, BaseColor: core.NewVec3(0.5, 0.5, 0.5)}
}

// Value returns BaseColor scaled into [0, 2×BaseColor]
func (n *NoiseTexture) Value(u, v float64, p core.Vec3) core.Vec3 {
	scale := n.Scale * (1.2*math.Sin(math.Pi*u) + 0.3*math.Cos(3*math.Pi*v))
	return n.BaseColor.Multiply(1 + math.Sin(scale*p.Z+10*n.Noise.Turbulence(p, 7)))
}
