// Package camera turns camera settings into primary rays.
//
// Config holds the mutable settings a user edits. Frame is the immutable
// basis derived from a Config; it is what rendering reads. Camera pairs the
// two and re-derives the frame on every change so it is never stale.
package camera

import (
	"math"

	"github.com/df07/go-glimpse/pkg/core"
)

// Config holds user-facing camera settings
type Config struct {
	AspectRatio     float64   `json:"aspect_ratio"`      // Ratio of image width over height
	ImageWidth      int       `json:"image_width"`       // Rendered image width in pixels
	SamplesPerPixel int       `json:"samples_per_pixel"` // Count of samples for each pixel
	MaxDepth        int       `json:"max_depth"`         // Maximum number of ray bounces
	VFov            float64   `json:"vfov"`              // Vertical field of view in degrees
	LookFrom        core.Vec3 `json:"look_from"`
	LookAt          core.Vec3 `json:"look_at"`
	VUp             core.Vec3 `json:"vup"`            // Camera relative up direction
	DefocusAngle    float64   `json:"defocus_angle"`  // Cone angle in degrees of rays through each pixel
	FocusDistance   float64   `json:"focus_distance"` // Distance from LookFrom to the plane of perfect focus
	Time0           float64   `json:"time0"`          // Shutter open
	Time1           float64   `json:"time1"`          // Shutter close
}

// DefaultConfig returns the settings used when nothing else is specified
func DefaultConfig() Config {
	return Config{
		AspectRatio:     16.0 / 9.0,
		ImageWidth:      800,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		VFov:            60,
		LookFrom:        core.NewVec3(0, 0, 0),
		LookAt:          core.NewVec3(0, 0, -1),
		VUp:             core.NewVec3(0, 1, 0),
		DefocusAngle:    0,
		FocusDistance:   10,
		Time0:           0,
		Time1:           1,
	}
}

// Frame is the derived camera basis. It is computed once by NewFrame and never mutated.
type Frame struct {
	ImageWidth        int
	ImageHeight       int
	SqrtSPP           int     // Side of the stratification grid
	RecipSqrtSPP      float64 // 1 / SqrtSPP
	PixelSamplesScale float64 // 1 / SqrtSPP²
	MaxDepth          int

	Origin          core.Vec3
	U, V, W         core.Vec3 // Camera basis: right, up, backward
	LowerLeftCorner core.Vec3
	Horizontal      core.Vec3
	Vertical        core.Vec3

	DefocusAngle float64
	DefocusDiskU core.Vec3
	DefocusDiskV core.Vec3

	Time0, Time1 float64
}

// NewFrame derives the camera basis, viewport and defocus disk from cfg
func NewFrame(cfg Config) Frame {
	aspectRatio := cfg.AspectRatio
	if aspectRatio <= 0 {
		aspectRatio = 1
	}
	imageWidth := max(1, cfg.ImageWidth)
	imageHeight := max(1, int(float64(imageWidth)/aspectRatio))

	sqrtSPP := max(1, int(math.Sqrt(float64(cfg.SamplesPerPixel))))
	recip := 1.0 / float64(sqrtSPP)

	theta := degreesToRadians(cfg.VFov)
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * cfg.FocusDistance
	viewportWidth := aspectRatio * viewportHeight

	w := cfg.LookFrom.Subtract(cfg.LookAt).Normalize()
	u := cfg.VUp.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Multiply(viewportWidth)
	vertical := v.Multiply(viewportHeight)
	lowerLeft := cfg.LookFrom.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(cfg.FocusDistance))

	defocusRadius := cfg.FocusDistance * math.Tan(degreesToRadians(cfg.DefocusAngle/2))

	return Frame{
		ImageWidth:        imageWidth,
		ImageHeight:       imageHeight,
		SqrtSPP:           sqrtSPP,
		RecipSqrtSPP:      recip,
		PixelSamplesScale: recip * recip,
		MaxDepth:          cfg.MaxDepth,
		Origin:            cfg.LookFrom,
		U:                 u,
		V:                 v,
		W:                 w,
		LowerLeftCorner:   lowerLeft,
		Horizontal:        horizontal,
		Vertical:          vertical,
		DefocusAngle:      cfg.DefocusAngle,
		DefocusDiskU:      u.Multiply(defocusRadius),
		DefocusDiskV:      v.Multiply(defocusRadius),
		Time0:             cfg.Time0,
		Time1:             cfg.Time1,
	}
}

// SamplesPerPass returns how many samples one full stratified pass takes per pixel
func (f Frame) SamplesPerPass() int {
	return f.SqrtSPP * f.SqrtSPP
}

// GetRay returns a ray through normalized viewport coordinates (s, t),
// where (0,0) is the lower left corner and (1,1) the upper right.
// The ray starts at the lens center when the defocus angle is not positive.
func (f Frame) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	origin := f.Origin
	if f.DefocusAngle > 0 {
		origin = f.defocusDiskSample(sampler)
	}

	direction := f.LowerLeftCorner.
		Add(f.Horizontal.Multiply(s)).
		Add(f.Vertical.Multiply(t)).
		Subtract(origin)

	return core.NewRayAt(origin, direction, core.RandomRange(sampler, f.Time0, f.Time1))
}

// PixelRay returns a ray through the stratum (si, sj) of pixel (i, j).
// Row j = 0 is the bottom of the image.
func (f Frame) PixelRay(i, j, si, sj int, sampler core.Sampler) core.Ray {
	offset := SampleSquareStratified(si, sj, f.RecipSqrtSPP, sampler)
	s := (float64(i) + offset.X) / float64(max(1, f.ImageWidth-1))
	t := (float64(j) + offset.Y) / float64(max(1, f.ImageHeight-1))
	return f.GetRay(s, t, sampler)
}

// defocusDiskSample returns a random point on the lens
func (f Frame) defocusDiskSample(sampler core.Sampler) core.Vec3 {
	p := core.SamplePointInUnitDisk(sampler.Get2D())
	return f.Origin.Add(f.DefocusDiskU.Multiply(p.X)).Add(f.DefocusDiskV.Multiply(p.Y))
}

// SampleSquareStratified returns a random offset inside the sub-square (si, sj)
// of the unit pixel [-0.5, 0.5]²
func SampleSquareStratified(si, sj int, recipSqrtSPP float64, sampler core.Sampler) core.Vec2 {
	sample := sampler.Get2D()
	px := ((float64(si) + sample.X) * recipSqrtSPP) - 0.5
	py := ((float64(sj) + sample.Y) * recipSqrtSPP) - 0.5
	return core.NewVec2(px, py)
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
