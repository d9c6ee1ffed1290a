package primitive_test

import (
	"math"
	"testing"

	"github.com/jinderamarak/safestage/maths"
	"github.com/jinderamarak/safestage/primitive"
	"github.com/stretchr/testify/assert"
)

func TestColliderDispatchAllKinds(t *testing.T) {
	point := primitive.NewPointCollider(0, 0, 0)
	sphere := primitive.NewSphereCollider(0, 0, 0, 1)
	aabb := primitive.NewAlignedBoxCollider(0, 0, 0, 2, 2, 2)
	obb, err := primitive.NewOrientedBoxCollider(0, 0, 0, 2, 2, 2, 0, 0, math.Pi/4)
	assert.NoError(t, err)

	kinds := []primitive.Collider{point, sphere, aabb, obb}
	for _, a := range kinds {
		for _, b := range kinds {
			assert.True(t, primitive.CollidesWith(a, b))
		}
	}

	far := primitive.NewPointCollider(100, 100, 100)
	for _, a := range kinds {
		assert.False(t, primitive.CollidesWith(a, far))
	}
}

func TestOrientedBoxColliderFromDegenerateAxisFails(t *testing.T) {
	_, err := primitive.NewOrientedBoxCollider(0, 0, 0, 1, 1, 1, math.NaN(), 0, 0)
	assert.Error(t, err)
}

func TestRotateColliderUpgradesAlignedBoxToOriented(t *testing.T) {
	aabb := primitive.NewAlignedBoxCollider(0, 0, 0, 1, 1, 1)
	rotated := primitive.RotateCollider(aabb, maths.MustFromEuler(maths.NewVector3(0, 0, math.Pi/4)))

	_, ok := rotated.(primitive.ColliderOrientedBox)
	assert.True(t, ok)
}

func TestTranslateColliderKeepsKind(t *testing.T) {
	aabb := primitive.NewAlignedBoxCollider(0, 0, 0, 1, 1, 1)
	translated := primitive.TranslateCollider(aabb, maths.NewVector3(1, 2, 3))

	moved, ok := translated.(primitive.ColliderAlignedBox)
	assert.True(t, ok)
	assert.Equal(t, maths.NewVector3(1, 2, 3), moved.Center())
}
