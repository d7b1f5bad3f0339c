package material

import (
	"github.com/df07/go-glimpse/pkg/core"
)

// DiffuseLight represents a one-sided light-emitting material
type DiffuseLight struct {
	base
	Emit Texture // Emitted radiance
}

// NewDiffuseLight creates a new emitter with solid radiance
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: NewSolidColor(emission)}
}

// NewTexturedDiffuseLight creates a new emitter whose radiance varies over the surface
func NewTexturedDiffuseLight(emit Texture) *DiffuseLight {
	return &DiffuseLight{Emit: emit}
}

// Scatter always absorbs; lights don't reflect
func (e *DiffuseLight) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterRecord, bool) {
	return ScatterRecord{}, false
}

// Emitted returns the light's radiance on the front face only
func (e *DiffuseLight) Emitted(rayIn core.Ray, hit HitRecord) core.Vec3 {
	if !hit.FrontFace {
		return core.Vec3{}
	}
	return e.Emit.Value(hit.U, hit.V, hit.Point)
}
