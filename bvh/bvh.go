// Package bvh implements a generic bounding volume hierarchy over a
// triangle mesh, parameterized by the concrete bounding-shape type used
// at each branch (AlignedBox, OrientedBox or Sphere from the primitive
// package).
package bvh

import (
	"sort"

	"github.com/jinderamarak/safestage/internal/conc"
	"github.com/jinderamarak/safestage/maths"
	"github.com/jinderamarak/safestage/primitive"
	"github.com/jinderamarak/safestage/tree"
)

// Bound is the capability a bounding-shape type B must have to host a
// BVH: bounds for pruning, a same-type overlap test, a union operation
// to re-derive a branch's bound from its two children, and translation
// (rotation and general transform recompute the bound from the rotated
// triangle instead of transforming B itself - see Rotate/Transform below).
type Bound[B any] interface {
	primitive.Bounded
	CollidesWithSelf(other B) bool
	BoundChildren(other B) B
	Translate(translation maths.Vector3) B
}

// BVH is a bounding volume hierarchy of triangles, using bounding shape B
// (AlignedBox, OrientedBox or Sphere) at every branch and leaf.
type BVH[B Bound[B]] struct {
	root    *tree.Recursive[B, primitive.Triangle]
	boundOf func(primitive.Triangle) B
}

// Build constructs a BVH from a non-empty slice of triangles via
// median-split on the longest axis, recursing until every leaf holds a
// single triangle. boundOf computes a leaf's bounding shape from its
// triangle (e.g. primitive.BoundTriangle for AlignedBox).
func Build[B Bound[B]](triangles []primitive.Triangle, boundOf func(primitive.Triangle) B) *BVH[B] {
	if len(triangles) == 0 {
		panic("bvh: Build requires a non-empty triangle slice")
	}

	leaves := make([]*tree.Recursive[B, primitive.Triangle], len(triangles))
	for i, t := range triangles {
		leaves[i] = tree.NewLeaf(boundOf(t), t)
	}

	return &BVH[B]{root: buildFromLeaves(leaves), boundOf: boundOf}
}

func buildFromLeaves[B Bound[B]](leaves []*tree.Recursive[B, primitive.Triangle]) *tree.Recursive[B, primitive.Triangle] {
	if len(leaves) == 1 {
		return leaves[0]
	}
	if len(leaves) == 2 {
		bound := leaves[0].Key().BoundChildren(leaves[1].Key())
		return tree.NewBranch(bound, leaves[0], leaves[1])
	}

	axis := longestAxis(leaves)
	left, right := splitByAxis(leaves, axis)

	leftNode := buildFromLeaves(left)
	rightNode := buildFromLeaves(right)
	bound := leftNode.Key().BoundChildren(rightNode.Key())
	return tree.NewBranch(bound, leftNode, rightNode)
}

func splitByAxis[B Bound[B]](leaves []*tree.Recursive[B, primitive.Triangle], axis maths.Axis) (left, right []*tree.Recursive[B, primitive.Triangle]) {
	ordered := make([]*tree.Recursive[B, primitive.Triangle], len(leaves))
	copy(ordered, leaves)

	sort.Slice(ordered, func(i, j int) bool {
		return primitive.Center(ordered[i].Key()).Get(axis) < primitive.Center(ordered[j].Key()).Get(axis)
	})

	half := (len(ordered) + 1) / 2
	return ordered[:half], ordered[half:]
}

func longestAxis[B Bound[B]](leaves []*tree.Recursive[B, primitive.Triangle]) maths.Axis {
	min := primitive.Center(leaves[0].Key())
	max := min
	for _, l := range leaves[1:] {
		c := primitive.Center(l.Key())
		min = maths.Min3(min, c)
		max = maths.Max3(max, c)
	}

	diff := max.Sub(min)
	switch {
	case diff.X() >= diff.Y() && diff.X() >= diff.Z():
		return maths.AxisX
	case diff.Y() >= diff.Z():
		return maths.AxisY
	default:
		return maths.AxisZ
	}
}

// Bounds returns the BVH's overall bounding shape.
func (b *BVH[B]) Bounds() B { return b.root.Key() }

// Concat joins two BVHs under a new bounding root.
func (b *BVH[B]) Concat(other *BVH[B]) *BVH[B] {
	bound := b.root.Key().BoundChildren(other.root.Key())
	return &BVH[B]{root: b.root.Concat(other.root, bound), boundOf: b.boundOf}
}

// TriangleBuffer returns every triangle's three vertices, in tree order,
// mapped through fn and fanned out across goroutines for large trees.
func TriangleBuffer[B Bound[B], O any](b *BVH[B], fn func(maths.Vector3) O) []O {
	leaves := collectLeaves(b.root, nil)
	out := make([]O, len(leaves)*3)

	conc.Task(0, len(leaves), func(start, end int) {
		for i := start; i < end; i++ {
			a, bb, c := leaves[i].a, leaves[i].b, leaves[i].c
			out[i*3] = fn(a)
			out[i*3+1] = fn(bb)
			out[i*3+2] = fn(c)
		}
	})

	return out
}

type vertexTriple struct{ a, b, c maths.Vector3 }

func collectLeaves[B Bound[B]](node *tree.Recursive[B, primitive.Triangle], acc []vertexTriple) []vertexTriple {
	if t, ok := node.Value(); ok {
		a, b, c := t.Points()
		return append(acc, vertexTriple{a, b, c})
	}
	left, right, _ := node.Children()
	acc = collectLeaves(left, acc)
	return collectLeaves(right, acc)
}

// CollidesWith reports whether any triangle of b overlaps any triangle of
// other, pruning whole subtrees whenever their bounding shapes don't
// overlap.
func (b *BVH[B]) CollidesWith(other *BVH[B]) bool {
	return collidesWithNode(b.root, other.root)
}

func collidesWithNode[B Bound[B]](left, right *tree.Recursive[B, primitive.Triangle]) bool {
	if !left.Key().CollidesWithSelf(right.Key()) {
		return false
	}

	lt, lIsLeaf := left.Value()
	rt, rIsLeaf := right.Value()

	switch {
	case lIsLeaf && rIsLeaf:
		return lt.CollidesWithTriangle(rt)
	case lIsLeaf && !rIsLeaf:
		rl, rr, _ := right.Children()
		return collidesWithNode(left, rl) || collidesWithNode(left, rr)
	case !lIsLeaf && rIsLeaf:
		ll, lr, _ := left.Children()
		return collidesWithNode(ll, right) || collidesWithNode(lr, right)
	default:
		ll, lr, _ := left.Children()
		rl, rr, _ := right.Children()
		return collidesWithNode(ll, rl) || collidesWithNode(ll, rr) ||
			collidesWithNode(lr, rl) || collidesWithNode(lr, rr)
	}
}

// Rotate rotates every triangle around the BVH's own bounding center,
// recomputing bounding shapes bottom-up from the rotated geometry.
func (b *BVH[B]) Rotate(rotation maths.Quaternion) *BVH[B] {
	return b.RotateAround(rotation, primitive.Center(b.root.Key()))
}

// RotateAround rotates every triangle around pivot.
func (b *BVH[B]) RotateAround(rotation maths.Quaternion, pivot maths.Vector3) *BVH[B] {
	return &BVH[B]{root: rotateAroundNode(b.root, rotation, pivot, b.boundOf), boundOf: b.boundOf}
}

func rotateAroundNode[B Bound[B]](node *tree.Recursive[B, primitive.Triangle], rotation maths.Quaternion, pivot maths.Vector3, boundOf func(primitive.Triangle) B) *tree.Recursive[B, primitive.Triangle] {
	if t, ok := node.Value(); ok {
		rotated := t.RotateAround(rotation, pivot)
		return tree.NewLeaf(boundOf(rotated), rotated)
	}

	left, right, _ := node.Children()
	l := rotateAroundNode(left, rotation, pivot, boundOf)
	r := rotateAroundNode(right, rotation, pivot, boundOf)
	bound := l.Key().BoundChildren(r.Key())
	return tree.NewBranch(bound, l, r)
}

// Translate moves every triangle and every bounding shape by translation.
// Unlike Rotate/Transform, translation doesn't change a bounding shape's
// kind, so bounds are translated directly instead of recomputed.
func (b *BVH[B]) Translate(translation maths.Vector3) *BVH[B] {
	return &BVH[B]{root: translateNode(b.root, translation), boundOf: b.boundOf}
}

func translateNode[B Bound[B]](node *tree.Recursive[B, primitive.Triangle], translation maths.Vector3) *tree.Recursive[B, primitive.Triangle] {
	if t, ok := node.Value(); ok {
		return tree.NewLeaf(node.Key().Translate(translation), t.Translate(translation))
	}
	left, right, _ := node.Children()
	l := translateNode(left, translation)
	r := translateNode(right, translation)
	return tree.NewBranch(node.Key().Translate(translation), l, r)
}

// Transform rotates every triangle around pivot and then translates it.
func (b *BVH[B]) Transform(rotation maths.Quaternion, pivot maths.Vector3, translation maths.Vector3) *BVH[B] {
	return b.RotateAround(rotation, pivot).Translate(translation)
}
