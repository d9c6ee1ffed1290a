package primitive

import "github.com/jinderamarak/safestage/maths"

// Builder assembles a Collider from whichever optional fields a caller
// sets, in any order. This collapses the original's compile-time
// type-state combinator chain into a single runtime builder with
// post-construction validation, per the library's own stated guidance for
// reimplementations that do not have (or want) that type-state machinery.
type Builder struct {
	center   *maths.Vector3
	radius   *float64
	size     *maths.Vector3
	rotation *maths.Quaternion
}

// NewBuilder starts an empty Collider builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// Center sets the collider's center point.
func (b *Builder) Center(center maths.Vector3) *Builder {
	b.center = &center
	return b
}

// CenterXYZ sets the collider's center point from components.
func (b *Builder) CenterXYZ(x, y, z float64) *Builder {
	return b.Center(maths.NewVector3(x, y, z))
}

// Radius sets the radius, producing a Sphere.
func (b *Builder) Radius(radius float64) *Builder {
	b.radius = &radius
	return b
}

// Size sets the box extents, producing an AlignedBox (or OrientedBox if
// Rotation is also set).
func (b *Builder) Size(size maths.Vector3) *Builder {
	b.size = &size
	return b
}

// SizeXYZ sets the box extents from components.
func (b *Builder) SizeXYZ(x, y, z float64) *Builder {
	return b.Size(maths.NewVector3(x, y, z))
}

// Rotation sets the box rotation, requiring Size to also be set.
func (b *Builder) Rotation(rotation maths.Quaternion) *Builder {
	b.rotation = &rotation
	return b
}

// RotationEuler sets the box rotation from intrinsic XYZ Euler angles.
func (b *Builder) RotationEuler(rx, ry, rz float64) *Builder {
	rotation, err := maths.FromEuler(maths.NewVector3(rx, ry, rz))
	if err != nil {
		// Recorded as a degenerate rotation; surfaces as ErrIncompleteBuilder
		// at Build() time rather than changing this method's signature.
		b.rotation = nil
		return b
	}
	return b.Rotation(rotation)
}

// Build produces the Collider matching whichever fields were set:
//
//	center only                    -> Point
//	center + radius                -> Sphere
//	center + size                  -> AlignedBox
//	center + size + rotation       -> OrientedBox
//
// Any other combination (missing center, radius and size both set, a
// rotation without a size, ...) returns ErrIncompleteBuilder.
func (b *Builder) Build() (Collider, error) {
	if b.center == nil {
		return nil, ErrIncompleteBuilder
	}

	switch {
	case b.radius != nil && b.size == nil && b.rotation == nil:
		return FromSphere(NewSphere(*b.center, *b.radius)), nil
	case b.radius == nil && b.size != nil && b.rotation == nil:
		return FromAlignedBox(NewAlignedBox(*b.center, *b.size)), nil
	case b.radius == nil && b.size != nil && b.rotation != nil:
		return FromOrientedBox(NewOrientedBox(*b.center, *b.size, *b.rotation)), nil
	case b.radius == nil && b.size == nil && b.rotation == nil:
		return FromPoint(NewPoint(*b.center)), nil
	default:
		return nil, ErrIncompleteBuilder
	}
}
