package geometry

import (
	"math"
	"testing"

	"github.com/df07/go-glimpse/pkg/core"
)

func randomScene(sampler core.Sampler, count int) *HittableList {
	list := NewHittableList()
	for i := 0; i < count; i++ {
		center := core.NewVec3(
			core.RandomRange(sampler, -10, 10),
			core.RandomRange(sampler, -10, 10),
			core.RandomRange(sampler, -10, 10),
		)
		switch i % 3 {
		case 0:
			list.Add(NewSphere(center, core.RandomRange(sampler, 0.1, 1.5), testMaterial))
		case 1:
			list.Add(NewQuad(center, core.NewVec3(core.RandomRange(sampler, 0.5, 2), 0, 0),
				core.NewVec3(0, core.RandomRange(sampler, 0.5, 2), core.RandomRange(sampler, -1, 1)), testMaterial))
		default:
			size := core.NewVec3(1, 1, 1).Multiply(core.RandomRange(sampler, 0.2, 1))
			list.Add(NewRotateY(NewBox(center, center.Add(size), testMaterial), core.RandomRange(sampler, 0, 90)))
		}
	}
	return list
}

func TestBVH_MatchesBruteForce(t *testing.T) {
	sampler := core.NewSeededSampler(2024)

	for _, count := range []int{1, 2, 3, 7, 64, 257} {
		list := randomScene(sampler, count)
		bvh := NewBVH(list)

		for i := 0; i < 500; i++ {
			origin := core.NewVec3(
				core.RandomRange(sampler, -15, 15),
				core.RandomRange(sampler, -15, 15),
				core.RandomRange(sampler, -15, 15),
			)
			ray := core.NewRay(origin, core.SampleOnUnitSphere(sampler.Get2D()))
			rayT := core.NewInterval(0.001, math.Inf(1))

			expected, expectedOK := list.Hit(ray, rayT, sampler)
			got, gotOK := bvh.Hit(ray, rayT, sampler)

			if expectedOK != gotOK {
				t.Fatalf("count=%d ray=%v: brute force hit=%v, bvh hit=%v", count, ray, expectedOK, gotOK)
			}
			if expectedOK && math.Abs(expected.T-got.T) > 1e-9 {
				t.Fatalf("count=%d ray=%v: brute force t=%f, bvh t=%f", count, ray, expected.T, got.T)
			}
		}
	}
}

func TestBVH_BoundsChildren(t *testing.T) {
	list := randomScene(core.NewSeededSampler(7), 50)
	bvh := NewBVH(list)

	if bvh.BoundingBox() != list.BoundingBox() {
		t.Errorf("Root box %+v should equal the union of all objects %+v", bvh.BoundingBox(), list.BoundingBox())
	}

	var check func(node *BVHNode)
	check = func(node *BVHNode) {
		expected := node.Left.BoundingBox().Union(node.Right.BoundingBox())
		if node.BoundingBox() != expected {
			t.Errorf("Node box %+v is not the union of its children %+v", node.BoundingBox(), expected)
		}
		for _, child := range []Hittable{node.Left, node.Right} {
			if n, ok := child.(*BVHNode); ok {
				check(n)
			}
		}
	}
	check(bvh)
}

func TestBVH_SingleObjectAliases(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial)
	bvh := NewBVH(NewHittableList(sphere))

	if bvh.Left != Hittable(sphere) || bvh.Right != Hittable(sphere) {
		t.Error("A single object should be referenced by both children")
	}
	hit, ok := bvh.Hit(core.NewRay(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1)), hitAll, testSampler)
	if !ok || math.Abs(hit.T-4) > 1e-9 {
		t.Errorf("Expected hit at t=4, got %v %v", hit, ok)
	}
}

func TestBVH_TwoObjectsOrdered(t *testing.T) {
	far := NewSphere(core.NewVec3(5, 0, 0), 1, testMaterial)
	near := NewSphere(core.NewVec3(-5, 0, 0), 1, testMaterial)
	bvh := NewBVH(NewHittableList(far, near))

	if bvh.Left != Hittable(near) || bvh.Right != Hittable(far) {
		t.Error("Two objects should be ordered by their minimum on the split axis")
	}
}

func TestBVH_Empty(t *testing.T) {
	bvh := NewBVH(NewHittableList())
	if _, ok := bvh.Hit(core.NewRay(core.Vec3{}, core.NewVec3(0, 0, -1)), hitAll, testSampler); ok {
		t.Error("Empty BVH should never be hit")
	}
}

func TestBVH_DoesNotReorderList(t *testing.T) {
	list := randomScene(core.NewSeededSampler(11), 20)
	before := append([]Hittable(nil), list.Objects...)
	NewBVH(list)

	for i := range before {
		if before[i] != list.Objects[i] {
			t.Fatal("Building a BVH must not reorder the source list")
		}
	}
}

func TestBVH_Stats(t *testing.T) {
	list := randomScene(core.NewSeededSampler(5), 16)
	stats := NewBVH(list).Stats()

	if stats.Leaves != 16 {
		t.Errorf("Expected 16 leaf references, got %d", stats.Leaves)
	}
	if stats.MaxDepth < 4 {
		t.Errorf("Expected depth of at least 4 for 16 objects, got %d", stats.MaxDepth)
	}
}
