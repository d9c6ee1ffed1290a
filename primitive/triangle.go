package primitive

import (
	"github.com/jinderamarak/safestage/maths"
	"github.com/jinderamarak/safestage/primitive/algo"
)

// Triangle is a collision primitive backed by three vertices. Unlike the
// other primitives it only participates in triangle-vs-triangle collision
// directly; mixed-type queries go through a BVH or ColliderGroup instead.
type Triangle struct {
	a, b, c maths.Vector3
}

// NewTriangle creates a Triangle from three vertices. Returns
// ErrDegenerateTriangle if any two vertices coincide.
func NewTriangle(a, b, c maths.Vector3) (Triangle, error) {
	if a.Equal(b) || b.Equal(c) || c.Equal(a) {
		return Triangle{}, ErrDegenerateTriangle
	}
	return Triangle{a: a, b: b, c: c}, nil
}

// MustNewTriangle is NewTriangle, panicking on degenerate input. Reserved
// for tests and call sites that already validated their input.
func MustNewTriangle(a, b, c maths.Vector3) Triangle {
	t, err := NewTriangle(a, b, c)
	if err != nil {
		panic(err)
	}
	return t
}

// Points returns the triangle's three vertices.
func (t Triangle) Points() (maths.Vector3, maths.Vector3, maths.Vector3) {
	return t.a, t.b, t.c
}

func (t Triangle) Min() maths.Vector3 {
	return maths.Min3(maths.Min3(t.a, t.b), t.c)
}

func (t Triangle) Max() maths.Vector3 {
	return maths.Max3(maths.Max3(t.a, t.b), t.c)
}

func (t Triangle) Rotate(rotation maths.Quaternion) Triangle {
	center := t.a.Add(t.b).Add(t.c.Scale(1.0 / 3.0))
	return Triangle{
		a: t.a.RotateAround(rotation, center),
		b: t.b.RotateAround(rotation, center),
		c: t.c.RotateAround(rotation, center),
	}
}

func (t Triangle) RotateAround(rotation maths.Quaternion, pivot maths.Vector3) Triangle {
	return Triangle{
		a: t.a.RotateAround(rotation, pivot),
		b: t.b.RotateAround(rotation, pivot),
		c: t.c.RotateAround(rotation, pivot),
	}
}

func (t Triangle) Translate(translation maths.Vector3) Triangle {
	return Triangle{a: t.a.Add(translation), b: t.b.Add(translation), c: t.c.Add(translation)}
}

func (t Triangle) Transform(rotation maths.Quaternion, pivot maths.Vector3, translation maths.Vector3) Triangle {
	return Triangle{
		a: t.a.RotateAround(rotation, pivot).Add(translation),
		b: t.b.RotateAround(rotation, pivot).Add(translation),
		c: t.c.RotateAround(rotation, pivot).Add(translation),
	}
}

// CollidesWithTriangle tests overlap via the Guigue-Devillers (2003)
// robust triangle-triangle intersection algorithm.
func (t Triangle) CollidesWithTriangle(other Triangle) bool {
	return algo.TriTriOverlapTest3D(t.a, t.b, t.c, other.a, other.b, other.c)
}

// BoundTriangle returns the smallest AlignedBox containing tri, used by the
// bvh package when AlignedBox is the bounding-shape type parameter.
func BoundTriangle(tri Triangle) AlignedBox {
	min := tri.Min()
	max := tri.Max()
	return NewAlignedBox(min.Add(max).Scale(0.5), max.Sub(min))
}

// BoundTriangleOriented returns the identity-rotation OrientedBox tightly
// containing tri, used by the bvh package when OrientedBox is the
// bounding-shape type parameter.
func BoundTriangleOriented(tri Triangle) OrientedBox {
	min := tri.Min()
	max := tri.Max()
	return NewOrientedBox(min.Add(max).Scale(0.5), max.Sub(min), maths.IdentityQuaternion())
}

// BoundTriangleSphere returns the smallest Sphere (centered at tri's
// centroid) containing tri's three vertices, used by the bvh package when
// Sphere is the bounding-shape type parameter.
func BoundTriangleSphere(tri Triangle) Sphere {
	center := tri.a.Add(tri.b).Add(tri.c).Scale(1.0 / 3.0)
	radius := tri.a.Sub(center).Len()
	if d := tri.b.Sub(center).Len(); d > radius {
		radius = d
	}
	if d := tri.c.Sub(center).Len(); d > radius {
		radius = d
	}
	return NewSphere(center, radius)
}
