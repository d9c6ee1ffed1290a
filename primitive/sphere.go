package primitive

import "github.com/jinderamarak/safestage/maths"

// Sphere is a collision primitive representing a ball of a given radius.
type Sphere struct {
	center maths.Vector3
	radius float64
}

// NewSphere creates a Sphere with center and radius.
func NewSphere(center maths.Vector3, radius float64) Sphere {
	return Sphere{center: center, radius: radius}
}

func (s Sphere) Center() maths.Vector3 { return s.center }
func (s Sphere) Radius() float64       { return s.radius }

func (s Sphere) Min() maths.Vector3 {
	return s.center.Sub(maths.NewVector3(s.radius, s.radius, s.radius))
}

func (s Sphere) Max() maths.Vector3 {
	return s.center.Add(maths.NewVector3(s.radius, s.radius, s.radius))
}

func (s Sphere) Project(axis maths.Vector3) (float64, float64) {
	d := s.center.Dot(axis)
	return d - s.radius, d + s.radius
}

func (s Sphere) Rotate(maths.Quaternion) Sphere { return s }

func (s Sphere) RotateAround(rotation maths.Quaternion, pivot maths.Vector3) Sphere {
	return NewSphere(s.center.RotateAround(rotation, pivot), s.radius)
}

func (s Sphere) Translate(translation maths.Vector3) Sphere {
	return NewSphere(s.center.Add(translation), s.radius)
}

func (s Sphere) Transform(rotation maths.Quaternion, pivot maths.Vector3, translation maths.Vector3) Sphere {
	return NewSphere(s.center.RotateAround(rotation, pivot).Add(translation), s.radius)
}

func (s Sphere) CollidesWithSphere(other Sphere) bool {
	distance2 := s.center.Sub(other.center).Len() * s.center.Sub(other.center).Len()
	max := s.radius + other.radius
	return distance2 <= max*max
}

func (s Sphere) CollidesWithPoint(other Point) bool {
	distance := s.center.Sub(other.Position()).Len()
	return distance <= s.radius
}

// CollidesWithAlignedBox uses strict inequality on the squared distance:
// a sphere exactly tangent to the box does not collide.
func (s Sphere) CollidesWithAlignedBox(other AlignedBox) bool {
	min := other.Min()
	max := other.Max()
	clampedX := clamp(s.center.X(), min.X(), max.X())
	clampedY := clamp(s.center.Y(), min.Y(), max.Y())
	clampedZ := clamp(s.center.Z(), min.Z(), max.Z())

	dx := clampedX - s.center.X()
	dy := clampedY - s.center.Y()
	dz := clampedZ - s.center.Z()
	distance2 := dx*dx + dy*dy + dz*dz

	return distance2 < s.radius*s.radius
}

// CollidesWithOrientedBox uses the same strict inequality as
// CollidesWithAlignedBox, by working in the box's local frame.
func (s Sphere) CollidesWithOrientedBox(other OrientedBox) bool {
	halfs := other.size.Scale(0.5)
	min := other.center.Sub(halfs)
	max := other.center.Add(halfs)

	inverseCenter := other.rotation.Conjugate().RotateVector(s.center.Sub(other.center)).Add(other.center)
	clamped := maths.NewVector3(
		clamp(inverseCenter.X(), min.X(), max.X()),
		clamp(inverseCenter.Y(), min.Y(), max.Y()),
		clamp(inverseCenter.Z(), min.Z(), max.Z()),
	)

	closest := clamped.RotateAround(other.rotation, other.center)
	distance := closest.Sub(s.center).Len()
	return distance*distance < s.radius*s.radius
}

// CollidesWithSelf is CollidesWithSphere under a uniform name, so Sphere
// satisfies bvh.Bound[Sphere].
func (s Sphere) CollidesWithSelf(other Sphere) bool {
	return s.CollidesWithSphere(other)
}

// BoundChildren returns the smallest Sphere enclosing both s and other.
func (s Sphere) BoundChildren(other Sphere) Sphere {
	diff := other.center.Sub(s.center)
	dist := diff.Len()

	if dist+other.radius <= s.radius {
		return s
	}
	if dist+s.radius <= other.radius {
		return other
	}

	radius := (dist + s.radius + other.radius) / 2
	if dist < 1e-12 {
		return NewSphere(s.center, radius)
	}
	center := s.center.Add(diff.Scale((radius - s.radius) / dist))
	return NewSphere(center, radius)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
