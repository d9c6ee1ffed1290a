package primitive

import "github.com/jinderamarak/safestage/maths"

// AlignedBox is a box collider whose faces are aligned with the X, Y, Z axes.
type AlignedBox struct {
	center maths.Vector3
	size   maths.Vector3
}

// NewAlignedBox creates an AlignedBox with center and size, taking the
// absolute value of each size component.
func NewAlignedBox(center, size maths.Vector3) AlignedBox {
	return AlignedBox{center: center, size: size.Abs()}
}

func (b AlignedBox) Center() maths.Vector3 { return b.center }
func (b AlignedBox) Size() maths.Vector3   { return b.size }

func (b AlignedBox) Min() maths.Vector3 { return b.center.Sub(b.size.Scale(0.5)) }
func (b AlignedBox) Max() maths.Vector3 { return b.center.Add(b.size.Scale(0.5)) }

func (b AlignedBox) corners() [8]maths.Vector3 {
	h := b.size.Scale(0.5)
	lo := b.center.Sub(h)
	hi := b.center.Add(h)
	return [8]maths.Vector3{
		maths.NewVector3(lo.X(), lo.Y(), lo.Z()),
		maths.NewVector3(hi.X(), lo.Y(), lo.Z()),
		maths.NewVector3(lo.X(), hi.Y(), lo.Z()),
		maths.NewVector3(hi.X(), hi.Y(), lo.Z()),
		maths.NewVector3(lo.X(), lo.Y(), hi.Z()),
		maths.NewVector3(hi.X(), lo.Y(), hi.Z()),
		maths.NewVector3(lo.X(), hi.Y(), hi.Z()),
		maths.NewVector3(hi.X(), hi.Y(), hi.Z()),
	}
}

func (b AlignedBox) Project(axis maths.Vector3) (float64, float64) {
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

// Rotate returns an OrientedBox, since a rotated aligned box is no longer axis aligned.
func (b AlignedBox) Rotate(rotation maths.Quaternion) OrientedBox {
	return b.asOriented().Rotate(rotation)
}

func (b AlignedBox) RotateAround(rotation maths.Quaternion, pivot maths.Vector3) OrientedBox {
	return b.asOriented().RotateAround(rotation, pivot)
}

func (b AlignedBox) Translate(translation maths.Vector3) AlignedBox {
	return NewAlignedBox(b.center.Add(translation), b.size)
}

func (b AlignedBox) Transform(rotation maths.Quaternion, pivot maths.Vector3, translation maths.Vector3) OrientedBox {
	return b.asOriented().Transform(rotation, pivot, translation)
}

func (b AlignedBox) asOriented() OrientedBox {
	return NewOrientedBox(b.center, b.size, maths.IdentityQuaternion())
}

func (b AlignedBox) CollidesWithAlignedBox(other AlignedBox) bool {
	selfMin, selfMax := b.Min(), b.Max()
	otherMin, otherMax := other.Min(), other.Max()

	return selfMin.X() <= otherMax.X() && selfMax.X() >= otherMin.X() &&
		selfMin.Y() <= otherMax.Y() && selfMax.Y() >= otherMin.Y() &&
		selfMin.Z() <= otherMax.Z() && selfMax.Z() >= otherMin.Z()
}

func (b AlignedBox) CollidesWithPoint(other Point) bool {
	min, max := b.Min(), b.Max()
	p := other.Position()
	return min.X() <= p.X() && max.X() >= p.X() &&
		min.Y() <= p.Y() && max.Y() >= p.Y() &&
		min.Z() <= p.Z() && max.Z() >= p.Z()
}

func (b AlignedBox) CollidesWithSphere(other Sphere) bool {
	return other.CollidesWithAlignedBox(b)
}

func (b AlignedBox) CollidesWithOrientedBox(other OrientedBox) bool {
	return other.CollidesWithAlignedBox(b)
}

// CollidesWithSelf is CollidesWithAlignedBox under a uniform name, so
// AlignedBox satisfies bvh.Bound[AlignedBox].
func (b AlignedBox) CollidesWithSelf(other AlignedBox) bool {
	return b.CollidesWithAlignedBox(other)
}

// BoundChildren returns the smallest AlignedBox enclosing both b and other.
func (b AlignedBox) BoundChildren(other AlignedBox) AlignedBox {
	min := maths.Min3(b.Min(), other.Min())
	max := maths.Max3(b.Max(), other.Max())
	return NewAlignedBox(min.Add(max).Scale(0.5), max.Sub(min))
}
