package primitive

import "github.com/jinderamarak/safestage/maths"

// OrientedBox is a box collider with an arbitrary rotation.
type OrientedBox struct {
	center   maths.Vector3
	size     maths.Vector3
	rotation maths.Quaternion
}

// NewOrientedBox creates an OrientedBox with center, size (absolute value
// taken component-wise) and rotation.
func NewOrientedBox(center, size maths.Vector3, rotation maths.Quaternion) OrientedBox {
	return OrientedBox{center: center, size: size.Abs(), rotation: rotation}
}

func (b OrientedBox) Center() maths.Vector3      { return b.center }
func (b OrientedBox) Size() maths.Vector3        { return b.size }
func (b OrientedBox) Rotation() maths.Quaternion { return b.rotation }

func (b OrientedBox) corners() [8]maths.Vector3 {
	h := b.size.Scale(0.5)
	lo := b.center.Sub(h)
	hi := b.center.Add(h)
	local := [8]maths.Vector3{
		maths.NewVector3(lo.X(), lo.Y(), lo.Z()),
		maths.NewVector3(hi.X(), lo.Y(), lo.Z()),
		maths.NewVector3(lo.X(), hi.Y(), lo.Z()),
		maths.NewVector3(hi.X(), hi.Y(), lo.Z()),
		maths.NewVector3(lo.X(), lo.Y(), hi.Z()),
		maths.NewVector3(hi.X(), lo.Y(), hi.Z()),
		maths.NewVector3(lo.X(), hi.Y(), hi.Z()),
		maths.NewVector3(hi.X(), hi.Y(), hi.Z()),
	}
	for i, c := range local {
		local[i] = c.RotateAround(b.rotation, b.center)
	}
	return local
}

func (b OrientedBox) separatingAxes() (maths.Vector3, maths.Vector3, maths.Vector3) {
	return b.rotation.RotateVector(maths.NewVector3(1, 0, 0)),
		b.rotation.RotateVector(maths.NewVector3(0, 1, 0)),
		b.rotation.RotateVector(maths.NewVector3(0, 0, 1))
}

func (b OrientedBox) Min() maths.Vector3 {
	corners := b.corners()
	m := corners[0]
	for _, c := range corners[1:] {
		m = maths.Min3(m, c)
	}
	return m
}

func (b OrientedBox) Max() maths.Vector3 {
	corners := b.corners()
	m := corners[0]
	for _, c := range corners[1:] {
		m = maths.Max3(m, c)
	}
	return m
}

func (b OrientedBox) Project(axis maths.Vector3) (float64, float64) {
	corners := b.corners()
	min, max := corners[0].Dot(axis), corners[0].Dot(axis)
	for _, c := range corners[1:] {
		d := c.Dot(axis)
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}

func (b OrientedBox) Rotate(rotation maths.Quaternion) OrientedBox {
	return b.RotateAround(rotation, b.center)
}

func (b OrientedBox) RotateAround(rotation maths.Quaternion, pivot maths.Vector3) OrientedBox {
	newCenter := b.center.RotateAround(rotation, pivot)
	newRotation := rotation.Mul(b.rotation)
	return NewOrientedBox(newCenter, b.size, newRotation)
}

func (b OrientedBox) Translate(translation maths.Vector3) OrientedBox {
	return NewOrientedBox(b.center.Add(translation), b.size, b.rotation)
}

func (b OrientedBox) Transform(rotation maths.Quaternion, pivot maths.Vector3, translation maths.Vector3) OrientedBox {
	return b.RotateAround(rotation, pivot).Translate(translation)
}

func (b OrientedBox) CollidesWithOrientedBox(other OrientedBox) bool {
	ax, ay, az := b.separatingAxes()
	bx, by, bz := other.separatingAxes()

	axes := satAxes(ax, ay, az, bx, by, bz)
	for _, axis := range axes {
		if !overlapsOnAxis(b, other, axis) {
			return false
		}
	}
	return true
}

func (b OrientedBox) CollidesWithAlignedBox(other AlignedBox) bool {
	ax, ay, az := b.separatingAxes()
	bx := maths.NewVector3(1, 0, 0)
	by := maths.NewVector3(0, 1, 0)
	bz := maths.NewVector3(0, 0, 1)

	axes := satAxes(ax, ay, az, bx, by, bz)
	for _, axis := range axes {
		if !overlapsOnAxis(b, other, axis) {
			return false
		}
	}
	return true
}

func satAxes(ax, ay, az, bx, by, bz maths.Vector3) [15]maths.Vector3 {
	return [15]maths.Vector3{
		ax, ay, az, bx, by, bz,
		ax.Cross(bx), ax.Cross(by), ax.Cross(bz),
		ay.Cross(bx), ay.Cross(by), ay.Cross(bz),
		az.Cross(bx), az.Cross(by), az.Cross(bz),
	}
}

func (b OrientedBox) CollidesWithPoint(other Point) bool {
	halfs := b.size.Scale(0.5)
	min := b.center.Sub(halfs)
	max := b.center.Add(halfs)

	inverse := b.rotation.Conjugate().RotateVector(other.Position().Sub(b.center)).Add(b.center)
	return inverse.X() >= min.X() && inverse.X() <= max.X() &&
		inverse.Y() >= min.Y() && inverse.Y() <= max.Y() &&
		inverse.Z() >= min.Z() && inverse.Z() <= max.Z()
}

func (b OrientedBox) CollidesWithSphere(other Sphere) bool {
	return other.CollidesWithOrientedBox(b)
}

// CollidesWithSelf is CollidesWithOrientedBox under a uniform name, so
// OrientedBox satisfies bvh.Bound[OrientedBox].
func (b OrientedBox) CollidesWithSelf(other OrientedBox) bool {
	return b.CollidesWithOrientedBox(other)
}

// BoundChildren returns an axis-aligned (identity-rotation) OrientedBox
// enclosing both b and other. A tight oriented union of two arbitrarily
// rotated boxes isn't generally an oriented box at all, so - like the
// rest of this package's bounding-volume math - it falls back to the
// axis-aligned enclosing box of both sets of corners.
func (b OrientedBox) BoundChildren(other OrientedBox) OrientedBox {
	min := maths.Min3(b.Min(), other.Min())
	max := maths.Max3(b.Max(), other.Max())
	center := min.Add(max).Scale(0.5)
	return NewOrientedBox(center, max.Sub(min), maths.IdentityQuaternion())
}
