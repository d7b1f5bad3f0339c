// Package film accumulates per-pixel radiance samples and holds the
// quantized image that a render publishes into.
package film

import "github.com/df07/go-glimpse/pkg/core"

// PixelStats tracks the samples taken for a single pixel
type PixelStats struct {
	Count int       // Number of samples taken
	Sum   core.Vec3 // Sum of all samples
	Mean  core.Vec3 // Running mean (Welford)
	M2    core.Vec3 // Sum of squared distances from the mean (Welford)
}

// AddSample folds color into the pixel statistics
func (ps *PixelStats) AddSample(color core.Vec3) {
	ps.Count++
	ps.Sum = ps.Sum.Add(color)

	delta := color.Subtract(ps.Mean)
	ps.Mean = ps.Mean.Add(delta.Multiply(1.0 / float64(ps.Count)))
	delta2 := color.Subtract(ps.Mean)
	ps.M2 = ps.M2.Add(delta.MultiplyVec(delta2))
}

// Color returns the running mean, zero when no samples were taken
func (ps *PixelStats) Color() core.Vec3 {
	if ps.Count == 0 {
		return core.Vec3{}
	}
	return ps.Sum.Multiply(1.0 / float64(ps.Count))
}

// Variance returns the per-channel sample variance, zero with fewer than two samples
func (ps *PixelStats) Variance() core.Vec3 {
	if ps.Count < 2 {
		return core.Vec3{}
	}
	return ps.M2.Multiply(1.0 / float64(ps.Count-1))
}

// Film is a width×height grid of pixel accumulators.
// Pixels are addressed with row 0 at the bottom of the image.
// Distinct rows may be written concurrently; a single pixel may not.
type Film struct {
	width, height int
	pixels        []PixelStats
}

// New creates a film of the given size
func New(width, height int) *Film {
	f := &Film{}
	f.Initialize(width, height)
	return f
}

// Initialize resizes the film and discards every sample
func (f *Film) Initialize(width, height int) {
	f.width = max(0, width)
	f.height = max(0, height)
	f.pixels = make([]PixelStats, f.width*f.height)
}

// Width returns the film width in pixels
func (f *Film) Width() int { return f.width }

// Height returns the film height in pixels
func (f *Film) Height() int { return f.height }

func (f *Film) pixel(x, y int) *PixelStats {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return nil
	}
	return &f.pixels[y*f.width+x]
}

// AddSample adds color to pixel (x, y). Out of range coordinates are ignored.
func (f *Film) AddSample(x, y int, color core.Vec3) {
	if p := f.pixel(x, y); p != nil {
		p.AddSample(color)
	}
}

// Sample returns the mean of pixel (x, y)
func (f *Film) Sample(x, y int) core.Vec3 {
	if p := f.pixel(x, y); p != nil {
		return p.Color()
	}
	return core.Vec3{}
}

// AccumulatedSample returns the raw sum of pixel (x, y)
func (f *Film) AccumulatedSample(x, y int) core.Vec3 {
	if p := f.pixel(x, y); p != nil {
		return p.Sum
	}
	return core.Vec3{}
}

// SampleCount returns how many samples pixel (x, y) received
func (f *Film) SampleCount(x, y int) int {
	if p := f.pixel(x, y); p != nil {
		return p.Count
	}
	return 0
}

// Variance returns the per-channel sample variance of pixel (x, y)
func (f *Film) Variance(x, y int) core.Vec3 {
	if p := f.pixel(x, y); p != nil {
		return p.Variance()
	}
	return core.Vec3{}
}

// AverageSampleCount returns the whole-number mean of samples per pixel
func (f *Film) AverageSampleCount() int {
	if len(f.pixels) == 0 {
		return 0
	}
	total := 0
	for i := range f.pixels {
		total += f.pixels[i].Count
	}
	return total / len(f.pixels)
}
