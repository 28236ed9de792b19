package geometry

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/rkoval/go-weekend-raytracer/pkg/core"
	"github.com/rkoval/go-weekend-raytracer/pkg/material"
)

// ErrObjectNotBounded is returned by WorldBuilder.Build when an object
// without a finite bounding box is added to the world.
var ErrObjectNotBounded = errors.New("geometry: object has no finite bounding box")

// HitEvent is the result of a ray hitting the world: the geometric hit
// record plus how the surface material scattered the ray. A nil Scatter
// means the material absorbed the ray.
type HitEvent struct {
	Record  material.HitRecord
	Scatter *material.Scatter
}

// bvhNode is one node of the bounding volume hierarchy. Leaves (left ==
// nil) carry an object and its material; internal nodes carry the merged
// box of their two exclusively owned subtrees. Nodes are never mutated
// after construction, so concurrent traversal needs no locks.
type bvhNode struct {
	box    core.AABB
	left   *bvhNode
	right  *bvhNode
	sphere Sphere
	mat    material.Material
}

func (n *bvhNode) isLeaf() bool {
	return n.left == nil
}

func (n *bvhNode) boundingBox() (core.AABB, bool) {
	if n.isLeaf() {
		return n.sphere.BoundingBox()
	}
	return n.box, true
}

// hit queries the subtree for the closest hit in [tMin, tMax] and, for
// leaf hits, asks the leaf's material to scatter the ray.
func (n *bvhNode) hit(random *rand.Rand, ray core.Ray, tMin, tMax float64) (HitEvent, bool) {
	if n.isLeaf() {
		rec, ok := n.sphere.Hit(ray, tMin, tMax)
		if !ok {
			return HitEvent{}, false
		}

		event := HitEvent{Record: rec}
		if scatter, scattered := n.mat.Scatter(random, ray, rec); scattered {
			event.Scatter = &scatter
		}
		return event, true
	}

	if !n.box.Hit(ray, tMin, tMax) {
		return HitEvent{}, false
	}

	leftEvent, leftHit := n.left.hit(random, ray, tMin, tMax)

	// Tighten the right query to the left hit's t: a right hit found
	// under the tightened bound is by construction the closer one.
	rightMax := tMax
	if leftHit {
		rightMax = leftEvent.Record.T
	}
	if rightEvent, rightHit := n.right.hit(random, ray, tMin, rightMax); rightHit {
		return rightEvent, true
	}

	return leftEvent, leftHit
}

// World is a collection of objects with efficient hit detection. It owns
// one BVH root, is immutable after Build, and is safe for unsynchronized
// concurrent reads.
type World struct {
	root *bvhNode
}

// Hit queries the world with a ray over [tMin, tMax]. It returns the hit
// event of the closest surviving intersection, or false on a miss.
func (w *World) Hit(random *rand.Rand, ray core.Ray, tMin, tMax float64) (HitEvent, bool) {
	if w.root == nil {
		return HitEvent{}, false
	}
	return w.root.hit(random, ray, tMin, tMax)
}

// ObjectCount returns the number of objects in the world
func (w *World) ObjectCount() int {
	return countLeaves(w.root)
}

func countLeaves(n *bvhNode) int {
	if n == nil {
		return 0
	}
	if n.isLeaf() {
		return 1
	}
	return countLeaves(n.left) + countLeaves(n.right)
}

// BoundingBox returns the bounding box of the whole world
func (w *World) BoundingBox() (core.AABB, bool) {
	if w.root == nil {
		return core.AABB{}, false
	}
	return w.root.boundingBox()
}

// WorldBuilder collects (object, material) pairs and assembles them into
// a World.
type WorldBuilder struct {
	objects []*bvhNode
}

// NewWorldBuilder initializes a new empty world builder
func NewWorldBuilder() *WorldBuilder {
	return &WorldBuilder{}
}

// Add appends an object with its material to the world under construction
func (b *WorldBuilder) Add(sphere Sphere, mat material.Material) {
	b.objects = append(b.objects, &bvhNode{sphere: sphere, mat: mat})
}

// Build assembles the BVH: repeatedly pick a random axis, sort the node
// pool by the minimum box coordinate along it, then merge nodes pairwise
// from the end of the pool until a single root remains. An odd node
// carries over unmerged to the next round. Every object must have a
// finite bounding box, otherwise Build fails with ErrObjectNotBounded
// before any rendering can start.
func (b *WorldBuilder) Build(random *rand.Rand) (*World, error) {
	for _, obj := range b.objects {
		box, bounded := obj.boundingBox()
		if !bounded || !box.IsFinite() {
			return nil, fmt.Errorf("%w: sphere at %+v with radius %g",
				ErrObjectNotBounded, obj.sphere.Center, obj.sphere.Radius)
		}
	}

	nodes := make([]*bvhNode, len(b.objects))
	copy(nodes, b.objects)

	for len(nodes) > 1 {
		axis := random.Intn(3)
		sortNodesByAxis(nodes, axis)

		merged := make([]*bvhNode, 0, (len(nodes)+1)/2)
		for len(nodes) > 0 {
			left := nodes[len(nodes)-1]
			nodes = nodes[:len(nodes)-1]

			if len(nodes) == 0 {
				// Odd node out: carry it over to the next round.
				merged = append(merged, left)
				break
			}

			right := nodes[len(nodes)-1]
			nodes = nodes[:len(nodes)-1]

			leftBox, _ := left.boundingBox()
			rightBox, _ := right.boundingBox()
			merged = append(merged, &bvhNode{
				box:   leftBox.Union(rightBox),
				left:  left,
				right: right,
			})
		}

		nodes = merged
	}

	if len(nodes) == 0 {
		return &World{}, nil
	}
	return &World{root: nodes[0]}, nil
}

// sortNodesByAxis sorts nodes ascending by the minimum bounding box
// coordinate along the given axis. A NaN sort key means a corrupted
// bounding box and fails fast.
func sortNodesByAxis(nodes []*bvhNode, axis int) {
	for _, node := range nodes {
		if math.IsNaN(minOnAxis(node, axis)) {
			panic(fmt.Sprintf("geometry: NaN bounding box coordinate on axis %d", axis))
		}
	}

	sort.SliceStable(nodes, func(i, j int) bool {
		return minOnAxis(nodes[i], axis) < minOnAxis(nodes[j], axis)
	})
}

func minOnAxis(node *bvhNode, axis int) float64 {
	box, _ := node.boundingBox()
	return box.Min.Component(axis)
}
