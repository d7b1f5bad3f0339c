package geometry

import (
	"sort"

	"github.com/df07/go-glimpse/pkg/core"
	"github.com/df07/go-glimpse/pkg/material"
)

// BVHNode is a node of a Bounding Volume Hierarchy over hittables.
// Both children may alias the same object when a range holds a single element.
type BVHNode struct {
	Left  Hittable
	Right Hittable
	bbox  core.AABB
}

// NewBVH constructs a BVH from the objects of a list
func NewBVH(list *HittableList) *BVHNode {
	if list.Len() == 0 {
		return &BVHNode{bbox: core.EmptyAABB}
	}

	// Sort a copy so the list keeps its order
	objects := make([]Hittable, len(list.Objects))
	copy(objects, list.Objects)

	return buildBVH(objects)
}

// buildBVH recursively splits objects at the median of their longest axis
func buildBVH(objects []Hittable) *BVHNode {
	bbox := core.EmptyAABB
	for _, object := range objects {
		bbox = bbox.Union(object.BoundingBox())
	}

	axis := bbox.LongestAxis()
	less := func(a, b Hittable) bool {
		return a.BoundingBox().Axis(axis).Min < b.BoundingBox().Axis(axis).Min
	}

	node := &BVHNode{}
	switch len(objects) {
	case 1:
		node.Left, node.Right = objects[0], objects[0]
	case 2:
		node.Left, node.Right = objects[0], objects[1]
		if less(objects[1], objects[0]) {
			node.Left, node.Right = objects[1], objects[0]
		}
	default:
		sortObjectsByAxis(objects, less)

		mid := len(objects) / 2
		node.Left = buildBVH(objects[:mid])
		node.Right = buildBVH(objects[mid:])
	}

	// The node bounds exactly what its children realized
	node.bbox = node.Left.BoundingBox().Union(node.Right.BoundingBox())
	return node
}

// sortObjectsByAxis orders objects by the minimum of their boxes on the split axis
func sortObjectsByAxis(objects []Hittable, less func(a, b Hittable) bool) {
	sort.Slice(objects, func(i, j int) bool {
		return less(objects[i], objects[j])
	})
}

// Hit tests the node's box, then the left child, then the right child
// with the interval narrowed to the left hit
func (n *BVHNode) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	if n.Left == nil || !n.bbox.Hit(ray, rayT) {
		return nil, false
	}

	leftHit, hitLeft := n.Left.Hit(ray, rayT, sampler)

	rightT := rayT
	if hitLeft {
		rightT.Max = leftHit.T
	}
	rightHit, hitRight := n.Right.Hit(ray, rightT, sampler)

	if hitRight {
		return rightHit, true
	}
	return leftHit, hitLeft
}

// BoundingBox returns the union of the children's boxes
func (n *BVHNode) BoundingBox() core.AABB {
	return n.bbox
}

// Stats describes the shape of a BVH
type Stats struct {
	Nodes    int
	Leaves   int
	MaxDepth int
}

// Stats walks the tree and counts interior nodes, leaf references and depth
func (n *BVHNode) Stats() Stats {
	var stats Stats
	n.collectStats(&stats, 1)
	return stats
}

func (n *BVHNode) collectStats(stats *Stats, depth int) {
	stats.Nodes++
	stats.MaxDepth = max(stats.MaxDepth, depth)
	for _, child := range []Hittable{n.Left, n.Right} {
		if node, ok := child.(*BVHNode); ok {
			node.collectStats(stats, depth+1)
		} else if child != nil {
			stats.Leaves++
		}
	}
}
