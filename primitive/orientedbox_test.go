package primitive_test

import (
	"math"
	"testing"

	"github.com/jinderamarak/safestage/maths"
	"github.com/jinderamarak/safestage/primitive"
	"github.com/stretchr/testify/assert"
)

func TestOrientedBoxPivotRotation(t *testing.T) {
	box := primitive.NewOrientedBox(
		maths.NewVector3(5, 0, 0),
		maths.NewVector3(1, 1, 1),
		maths.MustFromEuler(maths.NewVector3(0, 0, math.Pi/4)),
	)

	rotated := box.RotateAround(maths.MustFromEuler(maths.NewVector3(0, 0, math.Pi/2)), maths.NewVector3(0, 0, 0))

	assert.InDelta(t, 0.0, rotated.Center().X(), 1e-9)
	assert.InDelta(t, 5.0, rotated.Center().Y(), 1e-9)
	assert.InDelta(t, 0.0, rotated.Center().Z(), 1e-9)
}

func TestOrientedBoxTranslate(t *testing.T) {
	box := primitive.NewOrientedBox(maths.NewVector3(5, 0, 0), maths.NewVector3(1, 1, 1), maths.IdentityQuaternion())
	translated := box.Translate(maths.NewVector3(1, 1, 1))

	assert.Equal(t, maths.NewVector3(6, 1, 1), translated.Center())
}

func TestOrientedBoxVsOrientedBoxDontCollide(t *testing.T) {
	box := primitive.NewOrientedBox(
		maths.NewVector3(0, 0, 0),
		maths.NewVector3(2, 2, 2),
		maths.MustFromEuler(maths.NewVector3(0, 0, math.Pi/4)),
	)
	other := primitive.NewOrientedBox(maths.NewVector3(1.71, 1.71, 0), maths.NewVector3(2, 2, 2), maths.IdentityQuaternion())

	assert.False(t, box.CollidesWithOrientedBox(other))
	assert.False(t, other.CollidesWithOrientedBox(box))
}

func TestOrientedBoxVsAlignedBoxCorner(t *testing.T) {
	box := primitive.NewOrientedBox(maths.NewVector3(1e-9, 1e-9, 1e-9), maths.NewVector3(1, 1, 1), maths.IdentityQuaternion())
	aabb := primitive.NewAlignedBox(maths.NewVector3(1, 1, 1), maths.NewVector3(1, 1, 1))

	assert.True(t, box.CollidesWithAlignedBox(aabb))
	assert.True(t, aabb.CollidesWithOrientedBox(box))
}

func TestOrientedBoxVsPoint(t *testing.T) {
	box := primitive.NewOrientedBox(
		maths.NewVector3(1e-9, 1e-9, 1e-9),
		maths.NewVector3(2, 2, 2),
		maths.MustFromEuler(maths.NewVector3(0, 0, math.Pi/2)),
	)
	point := primitive.NewPoint(maths.NewVector3(1, 1, 1))

	assert.True(t, box.CollidesWithPoint(point))
	assert.True(t, point.CollidesWithOrientedBox(box))
}

func TestOrientedBoxVsSphereStrictBoundary(t *testing.T) {
	box := primitive.NewOrientedBox(
		maths.NewVector3(0, 0, 0),
		maths.NewVector3(2, 2, 2),
		maths.MustFromEuler(maths.NewVector3(math.Pi/2, math.Pi/2, math.Pi/2)),
	)

	colliding := primitive.NewSphere(maths.NewVector3(1.70, 1.70, 0), 1.0)
	assert.True(t, box.CollidesWithSphere(colliding))

	clear := primitive.NewSphere(maths.NewVector3(1.71, 1.71, 0), 1.0)
	assert.False(t, box.CollidesWithSphere(clear))
}
