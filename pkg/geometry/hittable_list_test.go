package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-glimpse/pkg/core"
)

func TestHittableList_NearestHit(t *testing.T) {
	far := NewSphere(core.NewVec3(0, 0, -10), 1, testMaterial)
	near := NewSphere(core.NewVec3(0, 0, -3), 1, testMaterial)

	// Order must not matter
	for _, list := range []*HittableList{NewHittableList(far, near), NewHittableList(near, far)} {
		hit, ok := list.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), hitAll, testSampler)
		if !ok || math.Abs(hit.T-2) > 1e-9 {
			t.Errorf("Expected nearest hit at t=2, got %v %v", hit, ok)
		}
	}
}

func TestHittableList_BoundingBoxGrows(t *testing.T) {
	list := NewHittableList()
	if list.BoundingBox() != core.EmptyAABB {
		t.Error("Empty list should have an empty box")
	}

	list.Add(NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial))
	list.Add(NewSphere(core.NewVec3(5, 0, 0), 1, testMaterial))
	if list.BoundingBox().X != core.NewInterval(-1, 6) {
		t.Errorf("Unexpected box %+v", list.BoundingBox())
	}
	if list.Len() != 2 {
		t.Errorf("Expected 2 objects, got %d", list.Len())
	}

	list.Clear()
	if list.Len() != 0 || list.BoundingBox() != core.EmptyAABB {
		t.Error("Clear should empty the list")
	}
}

func TestHittableList_PDFAveragesMembers(t *testing.T) {
	a := NewQuad(core.NewVec3(-1, 1, -1), core.NewVec3(2, 0, 0), core.NewVec3(0, 0, 2), testMaterial)
	b := NewQuad(core.NewVec3(-1, -1, -1), core.NewVec3(2, 0, 0), core.NewVec3(0, 0, 2), testMaterial)
	list := NewHittableList(a, b)
	origin := core.Vec3{}
	up := core.NewVec3(0, 1, 0)

	expected := 0.5*a.PDFValue(origin, up) + 0.5*b.PDFValue(origin, up)
	if got := list.PDFValue(origin, up); math.Abs(got-expected) > 1e-12 {
		t.Errorf("Expected %f, got %f", expected, got)
	}

	sampler := core.NewSeededSampler(10)
	ups := 0
	for i := 0; i < 1000; i++ {
		if list.Random(origin, sampler).Y > 0 {
			ups++
		}
	}
	if ups < 400 || ups > 600 {
		t.Errorf("Expected both lights to be sampled evenly, got %d of 1000 upward", ups)
	}

	if NewHittableList().PDFValue(origin, up) != 0 {
		t.Error("Empty list should have zero density")
	}
}

func TestHittableList_DensityIntegratesToOne(t *testing.T) {
	// The medium cannot be sampled directly, so it contributes uniform sphere directions
	sphereLight := NewSphere(core.NewVec3(0, 0, -3), 1, testMaterial)
	medium := NewConstantMedium(NewSphere(core.NewVec3(3, 0, 0), 1, testMaterial), 0.5, core.NewVec3(1, 1, 1))
	list := NewHittableList(sphereLight, medium)
	origin := core.Vec3{}

	if got := list.PDFValue(origin, core.NewVec3(0, 1, 0)); math.Abs(got-0.5/(4*math.Pi)) > 1e-12 {
		t.Errorf("Expected half the uniform density away from the sphere, got %f", got)
	}

	sampler := core.NewSeededSampler(33)
	const n = 200000
	sum := 0.0
	for i := 0; i < n; i++ {
		d := core.SampleOnUnitSphere(sampler.Get2D())
		sum += list.PDFValue(origin, d) * 4 * math.Pi
	}
	if integral := sum / n; math.Abs(integral-1) > 0.03 {
		t.Errorf("Expected density to integrate to 1, got %f", integral)
	}
}
