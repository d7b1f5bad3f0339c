package server

import (
	"fmt"
	"math"
	"net/http"
	"strings"

	"github.com/df07/go-glimpse/pkg/camera"
	"github.com/df07/go-glimpse/pkg/core"
	"github.com/df07/go-glimpse/pkg/material"
	"github.com/df07/go-glimpse/pkg/scene"
)

// InspectResponse describes what the center ray of a pixel hits
type InspectResponse struct {
	Hit       bool       `json:"hit"`
	Material  string     `json:"material,omitempty"`
	Point     *core.Vec3 `json:"point,omitempty"`
	Normal    *core.Vec3 `json:"normal,omitempty"`
	Distance  float64    `json:"distance,omitempty"`
	FrontFace bool       `json:"frontFace,omitempty"`
	Emissive  bool       `json:"emissive,omitempty"`
}

// inspectPixel casts a ray through the center of pixel (x, y), with y = 0 at the top of the image
func inspectPixel(sceneObj *scene.Scene, x, y int) InspectResponse {
	frame := camera.NewFrame(sceneObj.Camera)
	row := frame.ImageHeight - 1 - y
	s := float64(x) / float64(max(1, frame.ImageWidth-1))
	t := float64(row) / float64(max(1, frame.ImageHeight-1))

	// A fixed seed keeps lens and shutter samples repeatable between requests
	sampler := core.NewSeededSampler(0)
	ray := frame.GetRay(s, t, sampler)

	hit, ok := sceneObj.World.Hit(ray, core.NewInterval(0.001, math.Inf(1)), sampler)
	if !ok {
		return InspectResponse{Hit: false}
	}

	emitted := hit.Material.Emitted(ray, *hit)
	return InspectResponse{
		Hit:       true,
		Material:  materialName(hit.Material),
		Point:     &hit.Point,
		Normal:    &hit.Normal,
		Distance:  hit.T * ray.Direction.Length(),
		FrontFace: hit.FrontFace,
		Emissive:  emitted.X > 0 || emitted.Y > 0 || emitted.Z > 0,
	}
}

func materialName(mat material.Material) string {
	name := fmt.Sprintf("%T", mat)
	return name[strings.LastIndex(name, ".")+1:]
}

// handleInspect reports the surface under a pixel of a scene preset
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	sceneObj, err := s.setupScene(req)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	frame := camera.NewFrame(sceneObj.Camera)
	x, err := parseIntParam(query, "x", frame.ImageWidth/2, 0, frame.ImageWidth-1)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	y, err := parseIntParam(query, "y", frame.ImageHeight/2, 0, frame.ImageHeight-1)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	s.writeJSON(w, http.StatusOK, inspectPixel(sceneObj, x, y))
}
