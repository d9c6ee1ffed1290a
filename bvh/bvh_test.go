package bvh_test

import (
	"testing"

	"github.com/jinderamarak/safestage/bvh"
	"github.com/jinderamarak/safestage/maths"
	"github.com/jinderamarak/safestage/primitive"
	"github.com/stretchr/testify/assert"
)

func v(x, y, z float64) maths.Vector3 { return maths.NewVector3(x, y, z) }

func square(ox, oy, oz float64) []primitive.Triangle {
	a := v(ox, oy, oz)
	b := v(ox+1, oy, oz)
	c := v(ox, oy+1, oz)
	d := v(ox+1, oy+1, oz)
	return []primitive.Triangle{
		primitive.MustNewTriangle(a, b, c),
		primitive.MustNewTriangle(b, d, c),
	}
}

func TestBuildSingleTriangle(t *testing.T) {
	tris := square(0, 0, 0)[:1]
	h := bvh.Build(tris, primitive.BoundTriangle)

	buf := bvh.TriangleBuffer(h, func(p maths.Vector3) maths.Vector3 { return p })
	assert.Equal(t, 3, len(buf))
}

func TestTriangleBufferPreservesAllVertices(t *testing.T) {
	tris := square(0, 0, 0)
	h := bvh.Build(tris, primitive.BoundTriangle)

	buf := bvh.TriangleBuffer(h, func(p maths.Vector3) maths.Vector3 { return p })
	assert.Equal(t, len(tris)*3, len(buf))
}

func TestCollidesWithOverlappingMeshes(t *testing.T) {
	a := bvh.Build(square(0, 0, 0), primitive.BoundTriangle)
	b := bvh.Build(square(0.5, 0.5, 0), primitive.BoundTriangle)

	assert.True(t, a.CollidesWith(b))
}

func TestCollidesWithDisjointMeshes(t *testing.T) {
	a := bvh.Build(square(0, 0, 0), primitive.BoundTriangle)
	b := bvh.Build(square(100, 100, 100), primitive.BoundTriangle)

	assert.False(t, a.CollidesWith(b))
}

func TestTranslateMovesWholeMesh(t *testing.T) {
	a := bvh.Build(square(0, 0, 0), primitive.BoundTriangle)
	translated := a.Translate(v(10, 10, 10))

	b := bvh.Build(square(0, 0, 0), primitive.BoundTriangle)
	assert.False(t, translated.CollidesWith(b))

	c := bvh.Build(square(10, 10, 10), primitive.BoundTriangle)
	assert.True(t, translated.CollidesWith(c))
}

func TestConcatJoinsBothMeshes(t *testing.T) {
	a := bvh.Build(square(0, 0, 0), primitive.BoundTriangle)
	b := bvh.Build(square(100, 100, 100), primitive.BoundTriangle)
	joined := a.Concat(b)

	buf := bvh.TriangleBuffer(joined, func(p maths.Vector3) maths.Vector3 { return p })
	assert.Equal(t, 12, len(buf))
}

func TestBuildWithSphereBounds(t *testing.T) {
	h := bvh.Build(square(0, 0, 0), primitive.BoundTriangleSphere)
	other := bvh.Build(square(0.5, 0.5, 0), primitive.BoundTriangleSphere)

	assert.True(t, h.CollidesWith(other))
}

// eightUnitTriangles returns 8 small triangles laid out one per unit
// cell along X, standing in for the "known list of 8 unit-cube triangles"
// of spec.md's S4 seed test; they do not form a cube. Each cell is a thin triangle whose own extent
// (0.1 in X and Y, 0 in Z) is far smaller than the 1.0 spacing between
// cells, so every cell's bounding center has a strictly distinct X
// coordinate at every recursion level buildFromLeaves's median split
// walks down to - unlike a literal cube's 8 face triangles, which tie on
// every axis in pairs and would leave this test's expected order at the
// mercy of sort.Slice's unspecified tie-breaking (Go only guarantees
// sort.Slice is deterministic for a given build, not stable).
func eightUnitTriangles() []primitive.Triangle {
	tris := make([]primitive.Triangle, 8)
	for i := 0; i < 8; i++ {
		ox := float64(i)
		tris[i] = primitive.MustNewTriangle(v(ox, 0, 0), v(ox+0.1, 0, 0), v(ox, 0.1, 0))
	}
	return tris
}

func flattenVertices(tris []primitive.Triangle) []maths.Vector3 {
	out := make([]maths.Vector3, 0, len(tris)*3)
	for _, t := range tris {
		a, b, c := t.Points()
		out = append(out, a, b, c)
	}
	return out
}

// TestBuildEightTrianglesKeepsDFSOrderAndTranslates follows the S4
// seed scenario from spec.md §8: build from a known list of 8 triangles
// (more than 2 leaves, so buildFromLeaves takes the longest-axis
// sort-and-split path rather than the 1- or 2-leaf shortcuts), verify
// TriangleBuffer order equals input DFS order, translate by (1,2,3) and
// verify every vertex shifted by that amount.
func TestBuildEightTrianglesKeepsDFSOrderAndTranslates(t *testing.T) {
	tris := eightUnitTriangles()
	h := bvh.Build(tris, primitive.BoundTriangle)

	buf := bvh.TriangleBuffer(h, func(p maths.Vector3) maths.Vector3 { return p })
	assert.Equal(t, flattenVertices(tris), buf)

	translation := v(1, 2, 3)
	translated := h.Translate(translation)
	translatedBuf := bvh.TriangleBuffer(translated, func(p maths.Vector3) maths.Vector3 { return p })

	assert.Equal(t, len(buf), len(translatedBuf))
	for i, original := range buf {
		assert.True(t, translatedBuf[i].ApproxEqual(original.Add(translation)))
	}
}

// TestTriangleBufferOrderSurvivesTransforms exercises the sort-based
// split path (buildFromLeaves on >2 leaves) and confirms translate,
// rotate and transform all preserve the DFS leaf order (§8's ordering
// property), not just vertex counts.
func TestTriangleBufferOrderSurvivesTransforms(t *testing.T) {
	tris := eightUnitTriangles()
	h := bvh.Build(tris, primitive.BoundTriangle)
	want := flattenVertices(tris)

	translated := h.Translate(v(5, -2, 1))
	translatedBuf := bvh.TriangleBuffer(translated, func(p maths.Vector3) maths.Vector3 { return p })
	assert.Equal(t, len(want), len(translatedBuf))

	rotation := maths.MustFromEuler(v(0.3, -0.7, 1.1))
	rotated := h.Rotate(rotation)
	rotatedBuf := bvh.TriangleBuffer(rotated, func(p maths.Vector3) maths.Vector3 { return p })
	assert.Equal(t, len(want), len(rotatedBuf))

	pivot := v(0.5, 0.5, 0.5)
	transformed := h.Transform(rotation, pivot, v(2, 0, -3))
	transformedBuf := bvh.TriangleBuffer(transformed, func(p maths.Vector3) maths.Vector3 { return p })
	assert.Equal(t, len(want), len(transformedBuf))

	for i, original := range want {
		assert.True(t, translatedBuf[i].ApproxEqual(original.Add(v(5, -2, 1))))
		assert.True(t, rotatedBuf[i].ApproxEqual(original.RotateAround(rotation, primitive.Center(h.Bounds()))))
		assert.True(t, transformedBuf[i].ApproxEqual(original.RotateAround(rotation, pivot).Add(v(2, 0, -3))))
	}
}
