package material

import (
	"math"

	"github.com/df07/go-glimpse/pkg/core"
)

// NewCheckerboardTexture creates a procedural checkerboard pattern texture
func NewCheckerboardTexture(width, height, checkSize int, color1, color2 core.Vec3) *ImageTexture {
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if (x/checkSize+y/checkSize)%2 == 0 {
				pixels[y*width+x] = color1
			} else {
				pixels[y*width+x] = color2
			}
		}
	}

	return NewImageTexture(width, height, pixels)
}

// NewUVDebugTexture creates a texture showing UV coordinates as colors.
// U maps to red and V to green, so the top row is green.
func NewUVDebugTexture(width, height int) *ImageTexture {
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			u := float64(x) / float64(max(1, width-1))
			v := 1 - float64(y)/float64(max(1, height-1))
			pixels[y*width+x] = core.NewVec3(u, v, 0)
		}
	}

	return NewImageTexture(width, height, pixels)
}

// NewGradientTexture creates a vertical gradient from top (v = 1) to bottom (v = 0)
func NewGradientTexture(width, height int, top, bottom core.Vec3) *ImageTexture {
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		t := float64(y) / float64(max(1, height-1))
		color := top.Multiply(1 - t).Add(bottom.Multiply(t))

		for x := 0; x < width; x++ {
			pixels[y*width+x] = color
		}
	}

	return NewImageTexture(width, height, pixels)
}

var (
	deepOcean    = core.NewVec3(0.01, 0.05, 0.25)
	shallowOcean = core.NewVec3(0.1, 0.35, 0.6)
	lowland      = core.NewVec3(0.2, 0.45, 0.15)
	highland     = core.NewVec3(0.45, 0.35, 0.2)
	polarIce     = core.NewVec3(0.9, 0.92, 0.95)
)

// NewPlanetTexture paints an equirectangular map of oceans, continents and
// ice caps from noise sampled on the unit sphere, so the map has no seam
// when wrapped around a sphere
func NewPlanetTexture(width, height int, noise *Perlin) *ImageTexture {
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		theta := (float64(y) + 0.5) / float64(height) * math.Pi
		for x := 0; x < width; x++ {
			phi := (float64(x) + 0.5) / float64(width) * 2 * math.Pi

			// Inverse of the sphere's (u, v) mapping, with the top row at the north pole
			dir := core.NewVec3(-math.Cos(phi)*math.Sin(theta), math.Cos(theta), math.Sin(phi)*math.Sin(theta))

			elevation := noise.Noise(dir.Multiply(1.5)) + 0.5*noise.Noise(dir.Multiply(3)) + 0.25*noise.Noise(dir.Multiply(6))
			latitude := math.Abs(dir.Y) + 0.1*noise.Noise(dir.Multiply(8))

			var color core.Vec3
			switch {
			case latitude > 0.88:
				color = polarIce
			case elevation < 0.05:
				depth := math.Min(1, (0.05-elevation)*2)
				color = shallowOcean.Multiply(1 - depth).Add(deepOcean.Multiply(depth))
			default:
				rise := math.Min(1, (elevation-0.05)*2.5)
				color = lowland.Multiply(1 - rise).Add(highland.Multiply(rise))
			}
			pixels[y*width+x] = color
		}
	}

	return NewImageTexture(width, height, pixels)
}
