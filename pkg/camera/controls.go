package camera

import (
	"math"

	"github.com/df07/go-glimpse/pkg/core"
)

// Camera pairs editable settings with the frame derived from them
type Camera struct {
	config Config
	frame  Frame
}

// New creates a camera and initializes its frame
func New(cfg Config) *Camera {
	c := &Camera{config: cfg}
	c.Initialize()
	return c
}

// Initialize re-derives the frame from the current settings
func (c *Camera) Initialize() {
	c.frame = NewFrame(c.config)
}

// Config returns a copy of the current settings
func (c *Camera) Config() Config {
	return c.config
}

// SetConfig replaces the settings and re-initializes
func (c *Camera) SetConfig(cfg Config) {
	c.config = cfg
	c.Initialize()
}

// Frame returns the derived frame
func (c *Camera) Frame() Frame {
	return c.frame
}

// Fly moves both LookFrom and LookAt along the camera's right and forward axes
func (c *Camera) Fly(right, forward float64) {
	forwardDir := c.frame.W.Negate()
	delta := c.frame.U.Multiply(right).Add(forwardDir.Multiply(forward))

	c.config.LookFrom = c.config.LookFrom.Add(delta)
	c.config.LookAt = c.config.LookAt.Add(delta)
	c.Initialize()
}

const (
	minPolar = 0.01
	maxPolar = math.Pi - 0.01
)

// Orbit rotates LookFrom around LookAt by dTheta (azimuth, about VUp's Y axis)
// and dPhi (polar) radians, keeping the distance. The polar angle stays away from the poles.
func (c *Camera) Orbit(dTheta, dPhi float64) {
	offset := c.config.LookFrom.Subtract(c.config.LookAt)
	radius := offset.Length()
	if radius == 0 {
		return
	}

	theta := math.Atan2(offset.X, offset.Z) + dTheta
	phi := math.Acos(max(-1, min(1, offset.Y/radius))) + dPhi
	phi = core.NewInterval(minPolar, maxPolar).Clamp(phi)

	offset = core.NewVec3(
		radius*math.Sin(phi)*math.Sin(theta),
		radius*math.Cos(phi),
		radius*math.Sin(phi)*math.Cos(theta),
	)
	c.config.LookFrom = c.config.LookAt.Add(offset)
	c.Initialize()
}
