package maths

import "math"

// Vector2 is a point or direction in 2D space, used by the coplanar branch
// of the triangle-triangle overlap test after dominant-axis projection.
type Vector2 struct {
	x, y float64
}

func NewVector2(x, y float64) Vector2 {
	return Vector2{x: x, y: y}
}

func (a Vector2) X() float64 { return a.x }
func (a Vector2) Y() float64 { return a.y }

func (a Vector2) Sub(b Vector2) Vector2 {
	return Vector2{x: a.x - b.x, y: a.y - b.y}
}

// Cross returns the 2D cross product (a scalar, the signed area of the
// parallelogram spanned by a and b).
func (a Vector2) Cross(b Vector2) float64 {
	return a.x*b.y - a.y*b.x
}

func (a Vector2) Len() float64 {
	return math.Hypot(a.x, a.y)
}
