package film

import (
	"math"

	"github.com/df07/go-glimpse/pkg/core"
)

// Channels is the number of bytes per pixel in an Image
const Channels = 3

var byteRange = core.NewInterval(0, 0.999)

// Image is an 8-bit RGB pixel buffer of width*height*3 bytes.
// Row 0 is the bottom of the picture; encoders flip it.
type Image struct {
	width, height int
	data          []byte
}

// NewImage creates a black image
func NewImage(width, height int) *Image {
	width, height = max(0, width), max(0, height)
	return &Image{
		width:  width,
		height: height,
		data:   make([]byte, width*height*Channels),
	}
}

// Width returns the image width in pixels
func (img *Image) Width() int { return img.width }

// Height returns the image height in pixels
func (img *Image) Height() int { return img.height }

// Data returns the underlying bytes, row 0 first
func (img *Image) Data() []byte { return img.data }

func (img *Image) offset(x, y int) int {
	if x < 0 || x >= img.width || y < 0 || y >= img.height {
		return -1
	}
	return (y*img.width + x) * Channels
}

// Set stores a linear color at (x, y). Out of range coordinates are ignored.
func (img *Image) Set(x, y int, color core.Vec3) {
	o := img.offset(x, y)
	if o < 0 {
		return
	}
	img.data[o] = LinearToByte(color.X)
	img.data[o+1] = LinearToByte(color.Y)
	img.data[o+2] = LinearToByte(color.Z)
}

// At returns the stored bytes at (x, y), zero when out of range
func (img *Image) At(x, y int) (r, g, b byte) {
	o := img.offset(x, y)
	if o < 0 {
		return 0, 0, 0
	}
	return img.data[o], img.data[o+1], img.data[o+2]
}

// LinearToByte applies gamma 2, clamps and quantizes one channel.
// NaN becomes 0.
func LinearToByte(c float64) byte {
	if math.IsNaN(c) || c <= 0 {
		return 0
	}
	return byte(256 * byteRange.Clamp(math.Sqrt(c)))
}
