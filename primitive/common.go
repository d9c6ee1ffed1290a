// Package primitive implements the collision primitives - points, spheres,
// axis-aligned boxes, oriented boxes and triangles - and the Collider sum
// type joining them.
package primitive

import "github.com/jinderamarak/safestage/maths"

// Bounded reports the axis-aligned bounding box of a collider.
type Bounded interface {
	Min() maths.Vector3
	Max() maths.Vector3
}

// Center returns the midpoint of a Bounded's bounding box.
func Center(b Bounded) maths.Vector3 {
	return b.Min().Add(b.Max()).Scale(0.5)
}

// Collides reports whether two colliders of (possibly different) types overlap.
type Collides[T any] interface {
	CollidesWith(other T) bool
}

// Projectable projects a collider onto an axis, returning (min, max).
type Projectable interface {
	Project(axis maths.Vector3) (float64, float64)
}

// Rotatable rotates a collider, possibly changing its concrete type (an
// AlignedBox rotates into an OrientedBox).
type Rotatable[T any] interface {
	Rotate(rotation maths.Quaternion) T
	RotateAround(rotation maths.Quaternion, pivot maths.Vector3) T
}

// Translatable moves a collider without changing its orientation.
type Translatable[T any] interface {
	Translate(translation maths.Vector3) T
}

// Transformable rotates around a pivot and then translates, in one step.
type Transformable[T any] interface {
	Transform(rotation maths.Quaternion, pivot maths.Vector3, translation maths.Vector3) T
}

// overlapsOnAxis implements one separating-axis test: true when the
// projections of a and b onto axis overlap. A near-zero axis (from the
// cross product of two parallel directions) carries no information and is
// treated as non-separating.
func overlapsOnAxis(a, b Projectable, axis maths.Vector3) bool {
	if axis.Len() < 1e-9 {
		return true
	}
	axis = axis.Normalize()
	aMin, aMax := a.Project(axis)
	bMin, bMax := b.Project(axis)
	return aMin <= bMax && aMax >= bMin
}
