package primitive

import "github.com/jinderamarak/safestage/maths"

// Collider is the closed sum of every non-mesh collision primitive: Point,
// Sphere, AlignedBox and OrientedBox. Triangle is intentionally excluded -
// it only ever appears inside a BVH or ColliderGroup, never loose in a
// scene graph.
type Collider interface {
	Bounded
	Projectable
	sealedCollider()
}

// sealed makes Point/Sphere/AlignedBox/OrientedBox the only Collider
// implementations, the idiomatic Go substitute for a Rust closed enum.
type sealed struct{}

func (sealed) sealedCollider() {}

// ColliderPoint, ColliderSphere, ColliderAlignedBox and ColliderOrientedBox
// wrap each primitive so it satisfies Collider while keeping the
// unqualified Point/Sphere/... types free of the marker method.
type ColliderPoint struct {
	sealed
	Point
}

type ColliderSphere struct {
	sealed
	Sphere
}

type ColliderAlignedBox struct {
	sealed
	AlignedBox
}

type ColliderOrientedBox struct {
	sealed
	OrientedBox
}

func FromPoint(p Point) Collider             { return ColliderPoint{Point: p} }
func FromSphere(s Sphere) Collider           { return ColliderSphere{Sphere: s} }
func FromAlignedBox(b AlignedBox) Collider   { return ColliderAlignedBox{AlignedBox: b} }
func FromOrientedBox(b OrientedBox) Collider { return ColliderOrientedBox{OrientedBox: b} }

// NewPointCollider builds a point Collider at (x, y, z).
func NewPointCollider(x, y, z float64) Collider {
	return FromPoint(NewPoint(maths.NewVector3(x, y, z)))
}

// NewSphereCollider builds a sphere Collider at (x, y, z) with radius r.
func NewSphereCollider(x, y, z, r float64) Collider {
	return FromSphere(NewSphere(maths.NewVector3(x, y, z), r))
}

// NewAlignedBoxCollider builds an aligned-box Collider centered at (x, y,
// z) with size (sx, sy, sz).
func NewAlignedBoxCollider(x, y, z, sx, sy, sz float64) Collider {
	return FromAlignedBox(NewAlignedBox(maths.NewVector3(x, y, z), maths.NewVector3(sx, sy, sz)))
}

// NewOrientedBoxCollider builds an oriented-box Collider centered at (x,
// y, z) with size (sx, sy, sz) and the Euler rotation (rx, ry, rz) radians.
func NewOrientedBoxCollider(x, y, z, sx, sy, sz, rx, ry, rz float64) (Collider, error) {
	rotation, err := maths.FromEuler(maths.NewVector3(rx, ry, rz))
	if err != nil {
		return nil, err
	}
	return FromOrientedBox(NewOrientedBox(maths.NewVector3(x, y, z), maths.NewVector3(sx, sy, sz), rotation)), nil
}

// CollidesWith tests overlap between two Colliders of any concrete kind.
func CollidesWith(a, b Collider) bool {
	switch self := a.(type) {
	case ColliderPoint:
		switch other := b.(type) {
		case ColliderPoint:
			return self.Point.CollidesWithPoint(other.Point)
		case ColliderSphere:
			return self.Point.CollidesWithSphere(other.Sphere)
		case ColliderAlignedBox:
			return self.Point.CollidesWithAlignedBox(other.AlignedBox)
		case ColliderOrientedBox:
			return self.Point.CollidesWithOrientedBox(other.OrientedBox)
		}
	case ColliderSphere:
		switch other := b.(type) {
		case ColliderPoint:
			return self.Sphere.CollidesWithPoint(other.Point)
		case ColliderSphere:
			return self.Sphere.CollidesWithSphere(other.Sphere)
		case ColliderAlignedBox:
			return self.Sphere.CollidesWithAlignedBox(other.AlignedBox)
		case ColliderOrientedBox:
			return self.Sphere.CollidesWithOrientedBox(other.OrientedBox)
		}
	case ColliderAlignedBox:
		switch other := b.(type) {
		case ColliderPoint:
			return self.AlignedBox.CollidesWithPoint(other.Point)
		case ColliderSphere:
			return self.AlignedBox.CollidesWithSphere(other.Sphere)
		case ColliderAlignedBox:
			return self.AlignedBox.CollidesWithAlignedBox(other.AlignedBox)
		case ColliderOrientedBox:
			return self.AlignedBox.CollidesWithOrientedBox(other.OrientedBox)
		}
	case ColliderOrientedBox:
		switch other := b.(type) {
		case ColliderPoint:
			return self.OrientedBox.CollidesWithPoint(other.Point)
		case ColliderSphere:
			return self.OrientedBox.CollidesWithSphere(other.Sphere)
		case ColliderAlignedBox:
			return self.OrientedBox.CollidesWithAlignedBox(other.AlignedBox)
		case ColliderOrientedBox:
			return self.OrientedBox.CollidesWithOrientedBox(other.OrientedBox)
		}
	}
	return false
}

// RotateCollider rotates any Collider around its own center, upgrading
// AlignedBox to OrientedBox the same way the original enum's rotate did.
func RotateCollider(c Collider, rotation maths.Quaternion) Collider {
	switch self := c.(type) {
	case ColliderPoint:
		return FromPoint(self.Point.Rotate(rotation))
	case ColliderSphere:
		return FromSphere(self.Sphere.Rotate(rotation))
	case ColliderAlignedBox:
		return FromOrientedBox(self.AlignedBox.Rotate(rotation))
	case ColliderOrientedBox:
		return FromOrientedBox(self.OrientedBox.Rotate(rotation))
	}
	return c
}

// RotateColliderAround rotates any Collider around pivot.
func RotateColliderAround(c Collider, rotation maths.Quaternion, pivot maths.Vector3) Collider {
	switch self := c.(type) {
	case ColliderPoint:
		return FromPoint(self.Point.RotateAround(rotation, pivot))
	case ColliderSphere:
		return FromSphere(self.Sphere.RotateAround(rotation, pivot))
	case ColliderAlignedBox:
		return FromOrientedBox(self.AlignedBox.RotateAround(rotation, pivot))
	case ColliderOrientedBox:
		return FromOrientedBox(self.OrientedBox.RotateAround(rotation, pivot))
	}
	return c
}

// TranslateCollider moves any Collider by translation.
func TranslateCollider(c Collider, translation maths.Vector3) Collider {
	switch self := c.(type) {
	case ColliderPoint:
		return FromPoint(self.Point.Translate(translation))
	case ColliderSphere:
		return FromSphere(self.Sphere.Translate(translation))
	case ColliderAlignedBox:
		return FromAlignedBox(self.AlignedBox.Translate(translation))
	case ColliderOrientedBox:
		return FromOrientedBox(self.OrientedBox.Translate(translation))
	}
	return c
}

// TransformCollider rotates any Collider around pivot and then translates it.
func TransformCollider(c Collider, rotation maths.Quaternion, pivot maths.Vector3, translation maths.Vector3) Collider {
	switch self := c.(type) {
	case ColliderPoint:
		return FromPoint(self.Point.Transform(rotation, pivot, translation))
	case ColliderSphere:
		return FromSphere(self.Sphere.Transform(rotation, pivot, translation))
	case ColliderAlignedBox:
		return FromOrientedBox(self.AlignedBox.Transform(rotation, pivot, translation))
	case ColliderOrientedBox:
		return FromOrientedBox(self.OrientedBox.Transform(rotation, pivot, translation))
	}
	return c
}
