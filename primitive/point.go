package primitive

import "github.com/jinderamarak/safestage/maths"

// Point is a collision primitive representing a single location in space.
type Point struct {
	position maths.Vector3
}

// NewPoint creates a Point at position.
func NewPoint(position maths.Vector3) Point {
	return Point{position: position}
}

// Position returns the point's location.
func (p Point) Position() maths.Vector3 { return p.position }

func (p Point) Min() maths.Vector3 { return p.position }
func (p Point) Max() maths.Vector3 { return p.position }

func (p Point) Project(axis maths.Vector3) (float64, float64) {
	d := p.position.Dot(axis)
	return d, d
}

func (p Point) Rotate(maths.Quaternion) Point { return p }

func (p Point) RotateAround(rotation maths.Quaternion, pivot maths.Vector3) Point {
	return NewPoint(p.position.RotateAround(rotation, pivot))
}

func (p Point) Translate(translation maths.Vector3) Point {
	return NewPoint(p.position.Add(translation))
}

func (p Point) Transform(rotation maths.Quaternion, pivot maths.Vector3, translation maths.Vector3) Point {
	return NewPoint(p.position.RotateAround(rotation, pivot).Add(translation))
}

func (p Point) CollidesWithPoint(other Point) bool {
	return p.position.Equal(other.position)
}

func (p Point) CollidesWithSphere(other Sphere) bool {
	return other.CollidesWithPoint(p)
}

func (p Point) CollidesWithAlignedBox(other AlignedBox) bool {
	return other.CollidesWithPoint(p)
}

func (p Point) CollidesWithOrientedBox(other OrientedBox) bool {
	return other.CollidesWithPoint(p)
}
