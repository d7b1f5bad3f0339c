package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-glimpse/pkg/core"
	"github.com/df07/go-glimpse/pkg/material"
)

func TestConstantMedium_DenseAlwaysScattersInside(t *testing.T) {
	boundary := NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial)
	medium := NewConstantMedium(boundary, 1e6, core.NewVec3(0.5, 0.5, 0.5))
	sampler := core.NewSeededSampler(1)

	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	for i := 0; i < 100; i++ {
		hit, ok := medium.Hit(ray, core.NewInterval(0.001, math.Inf(1)), sampler)
		if !ok {
			t.Fatal("A very dense medium should scatter almost immediately")
		}
		if hit.T < 4 || hit.T > 4.01 {
			t.Fatalf("Expected scattering just past the entry at t=4, got %f", hit.T)
		}
		if _, ok := hit.Material.(*material.Isotropic); !ok {
			t.Fatalf("Expected isotropic phase function, got %T", hit.Material)
		}
		if !hit.FrontFace || hit.Normal != core.NewVec3(1, 0, 0) {
			t.Fatalf("Unexpected arbitrary normal %v front=%v", hit.Normal, hit.FrontFace)
		}
	}
}

func TestConstantMedium_ThinMostlyPassesThrough(t *testing.T) {
	boundary := NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial)
	medium := NewConstantMedium(boundary, 0.01, core.NewVec3(1, 1, 1))
	sampler := core.NewSeededSampler(2)

	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))
	hits := 0
	const n = 10000
	for i := 0; i < n; i++ {
		if hit, ok := medium.Hit(ray, core.NewInterval(0.001, math.Inf(1)), sampler); ok {
			hits++
			if hit.T < 4 || hit.T > 6 {
				t.Fatalf("Scattering point t=%f is outside the boundary", hit.T)
			}
		}
	}

	// Probability of scattering over a path of length 2 is 1 - exp(-0.02)
	expected := 1 - math.Exp(-0.02)
	if got := float64(hits) / n; math.Abs(got-expected) > 0.006 {
		t.Errorf("Expected scatter fraction near %f, got %f", expected, got)
	}
}

func TestConstantMedium_RespectsInterval(t *testing.T) {
	boundary := NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial)
	medium := NewConstantMedium(boundary, 1e6, core.NewVec3(1, 1, 1))
	ray := core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1))

	if _, ok := medium.Hit(ray, core.NewInterval(0.001, 3), testSampler); ok {
		t.Error("Medium beyond the interval should not be hit")
	}
	if _, ok := medium.Hit(core.NewRay(core.NewVec3(5, 5, 5), core.NewVec3(0, 0, -1)), hitAll, testSampler); ok {
		t.Error("Ray missing the boundary should not be hit")
	}

	// From inside the medium the free flight starts at the origin
	inside := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	hit, ok := medium.Hit(inside, hitAll, testSampler)
	if !ok || hit.T > 0.01 {
		t.Errorf("Expected immediate scattering from inside, got %v %v", hit, ok)
	}
}

func TestConstantMedium_BoundingBox(t *testing.T) {
	boundary := NewBox(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1), testMaterial)
	medium := NewConstantMedium(boundary, 0.5, core.NewVec3(1, 1, 1))

	if medium.BoundingBox() != boundary.BoundingBox() {
		t.Error("Medium should share its boundary's box")
	}
}
