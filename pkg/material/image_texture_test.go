package material

import (
	"testing"

	"github.com/df07/go-glimpse/pkg/core"
)

func TestImageTexture_Value(t *testing.T) {
	red := core.NewVec3(1, 0, 0)
	green := core.NewVec3(0, 1, 0)
	blue := core.NewVec3(0, 0, 1)
	white := core.NewVec3(1, 1, 1)
	// Top row first
	tex := NewImageTexture(2, 2, []core.Vec3{red, green, blue, white})

	tests := []struct {
		name     string
		u, v     float64
		expected core.Vec3
	}{
		{"top left", 0.1, 0.9, red},
		{"top right", 0.9, 0.9, green},
		{"bottom left", 0.1, 0.1, blue},
		{"bottom right", 0.9, 0.1, white},
		{"u = 1 stays in range", 1, 0, white},
		{"clamped below", -3, -3, blue},
		{"clamped above", 7, 7, green},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tex.Value(tt.u, tt.v, core.Vec3{}); got != tt.expected {
				t.Errorf("Value(%v, %v) = %v, expected %v", tt.u, tt.v, got, tt.expected)
			}
		})
	}
}

func TestImageTexture_MissingPixelsAreCyan(t *testing.T) {
	for _, tex := range []*ImageTexture{
		NewImageTexture(0, 0, nil),
		NewImageTexture(4, 4, make([]core.Vec3, 3)),
	} {
		if got := tex.Value(0.5, 0.5, core.Vec3{}); got != core.NewVec3(0, 1, 1) {
			t.Errorf("Expected cyan for a %dx%d texture with %d pixels, got %v", tex.Width, tex.Height, len(tex.Pixels), got)
		}
	}
}

func TestProceduralTextures(t *testing.T) {
	black := core.NewVec3(0, 0, 0)
	white := core.NewVec3(1, 1, 1)

	checker := NewCheckerboardTexture(8, 8, 4, black, white)
	if got := checker.Value(0.1, 0.9, core.Vec3{}); got != black {
		t.Errorf("Expected top left check to be black, got %v", got)
	}
	if got := checker.Value(0.9, 0.9, core.Vec3{}); got != white {
		t.Errorf("Expected top right check to be white, got %v", got)
	}
	if got := checker.Value(0.9, 0.1, core.Vec3{}); got != black {
		t.Errorf("Expected bottom right check to be black, got %v", got)
	}

	uv := NewUVDebugTexture(16, 16)
	if got := uv.Value(0, 1, core.Vec3{}); got != core.NewVec3(0, 1, 0) {
		t.Errorf("Expected green where v = 1, got %v", got)
	}
	if got := uv.Value(1, 0, core.Vec3{}); got != core.NewVec3(1, 0, 0) {
		t.Errorf("Expected red where u = 1 and v = 0, got %v", got)
	}

	gradient := NewGradientTexture(1, 11, white, black)
	if got := gradient.Value(0.5, 1, core.Vec3{}); got != white {
		t.Errorf("Expected the top color at v = 1, got %v", got)
	}
	if got := gradient.Value(0.5, 0, core.Vec3{}); got != black {
		t.Errorf("Expected the bottom color at v = 0, got %v", got)
	}
}

func TestPlanetTexture(t *testing.T) {
	planet := NewPlanetTexture(64, 32, NewPerlin(core.NewSeededSampler(3)))
	if planet.Width != 64 || planet.Height != 32 || len(planet.Pixels) != 64*32 {
		t.Fatalf("Unexpected planet texture size %dx%d with %d pixels", planet.Width, planet.Height, len(planet.Pixels))
	}

	// Both poles are ice
	for _, v := range []float64{0, 1} {
		if got := planet.Value(0.5, v, core.Vec3{}); got != polarIce {
			t.Errorf("Expected ice at v = %v, got %v", v, got)
		}
	}

	// Away from the poles there is both land and sea
	ocean, land := 0, 0
	for y := 8; y < 24; y++ {
		for x := 0; x < 64; x++ {
			c := planet.Pixels[y*64+x]
			if c.Z > c.Y {
				ocean++
			} else {
				land++
			}
		}
	}
	if ocean == 0 || land == 0 {
		t.Errorf("Expected a mix of land and ocean, got %d land and %d ocean", land, ocean)
	}
}
