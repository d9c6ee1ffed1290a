package group_test

import (
	"testing"

	"github.com/jinderamarak/safestage/bvh"
	"github.com/jinderamarak/safestage/group"
	"github.com/jinderamarak/safestage/maths"
	"github.com/jinderamarak/safestage/primitive"
	"github.com/stretchr/testify/assert"
)

func v(x, y, z float64) maths.Vector3 { return maths.NewVector3(x, y, z) }

type alwaysCollides struct{}

func (alwaysCollides) CollidesWith(alwaysCollides) bool { return true }

func TestAnyCollidesMatchesOriginalColliderGroupCase(t *testing.T) {
	g := group.NewColliderGroup(alwaysCollides{}, alwaysCollides{}, alwaysCollides{})
	single := group.NewColliderGroup(alwaysCollides{})

	assert.True(t, group.CollidesWithSelf(single, g))
	assert.True(t, group.CollidesWithSelf(g, single))
}

func TestAnyCollidesEmptyGroupNeverCollides(t *testing.T) {
	empty := group.NewColliderGroup[alwaysCollides]()
	g := group.NewColliderGroup(alwaysCollides{})

	assert.False(t, group.CollidesWithSelf(empty, g))
}

func triangleOf(a, b, c maths.Vector3) primitive.Triangle {
	return primitive.MustNewTriangle(a, b, c)
}

func TestTriangleBufferKeepsMemberAndVertexOrdering(t *testing.T) {
	first := bvh.Build([]primitive.Triangle{
		triangleOf(v(1, 2, 3), v(3, 2, 1), v(1, 3, 2)),
		triangleOf(v(5, 7, 6), v(9, 8, 7), v(6, 5, 8)),
	}, primitive.BoundTriangle)

	second := bvh.Build([]primitive.Triangle{
		triangleOf(v(1, 1, 1), v(1, 2, 2), v(1, 2, 3)),
	}, primitive.BoundTriangle)

	g := group.NewColliderGroup(first, second)

	actual := group.TriangleBuffer(g,
		func(h *bvh.BVH[primitive.AlignedBox]) []maths.Vector3 {
			return bvh.TriangleBuffer(h, func(p maths.Vector3) maths.Vector3 { return p })
		},
		func(p maths.Vector3) maths.Vector3 { return p },
	)

	expected := [][3]maths.Vector3{
		{v(1, 2, 3), v(3, 2, 1), v(1, 3, 2)},
		{v(5, 7, 6), v(9, 8, 7), v(6, 5, 8)},
		{v(1, 1, 1), v(1, 2, 2), v(1, 2, 3)},
	}

	for _, series := range expected {
		first := indexOf(actual, series[0])
		assert.GreaterOrEqual(t, first, 0)
		assert.Equal(t, series[0], actual[first])
		assert.Equal(t, series[1], actual[first+1])
		assert.Equal(t, series[2], actual[first+2])
	}

	assert.Less(t, indexOf(actual, expected[0][0]), indexOf(actual, expected[2][0]))
	assert.Less(t, indexOf(actual, expected[1][0]), indexOf(actual, expected[2][0]))
}

func indexOf(haystack []maths.Vector3, needle maths.Vector3) int {
	for i, v := range haystack {
		if v.Equal(needle) {
			return i
		}
	}
	return -1
}

func TestIntoBVHFoldsAllMembers(t *testing.T) {
	a := bvh.Build([]primitive.Triangle{triangleOf(v(0, 0, 0), v(1, 0, 0), v(0, 1, 0))}, primitive.BoundTriangle)
	b := bvh.Build([]primitive.Triangle{triangleOf(v(10, 10, 10), v(11, 10, 10), v(10, 11, 10))}, primitive.BoundTriangle)
	c := bvh.Build([]primitive.Triangle{triangleOf(v(20, 20, 20), v(21, 20, 20), v(20, 21, 20))}, primitive.BoundTriangle)

	folded := group.IntoBVH(group.NewColliderGroup(a, b, c))

	buf := bvh.TriangleBuffer(folded, func(p maths.Vector3) maths.Vector3 { return p })
	assert.Equal(t, 9, len(buf))
}
