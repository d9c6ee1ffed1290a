package space_test

import (
	"testing"

	"github.com/jinderamarak/safestage/maths"
	"github.com/jinderamarak/safestage/space"
	"github.com/stretchr/testify/assert"
)

func v(x, y, z float64) maths.Vector3 { return maths.NewVector3(x, y, z) }

func testGrid() *space.Grid3D {
	return space.NewGrid3D(10, 10, 10, v(-1, -2, -3), v(1, 2, 3))
}

func TestLowerGridToGlobal(t *testing.T) {
	g := testGrid()
	assert.Equal(t, v(-1, -2, -3), g.GridToGlobal(space.GridIndex{X: 0, Y: 0, Z: 0}))
}

func TestUpperGridToGlobal(t *testing.T) {
	g := testGrid()
	assert.Equal(t, v(1, 2, 3), g.GridToGlobal(space.GridIndex{X: 9, Y: 9, Z: 9}))
}

func TestLowerGlobalToGrid(t *testing.T) {
	g := testGrid()
	assert.Equal(t, space.GridIndex{X: 0, Y: 0, Z: 0}, g.GlobalToGrid(v(-1, -2, -3)))
}

func TestUpperGlobalToGrid(t *testing.T) {
	g := testGrid()
	assert.Equal(t, space.GridIndex{X: 9, Y: 9, Z: 9}, g.GlobalToGrid(v(1, 2, 3)))
}

func TestGlobalToGridIsClosest(t *testing.T) {
	g := space.NewGrid3D(2, 2, 2, v(-1, -1, -1), v(1, 1, 1))

	assert.Equal(t, space.GridIndex{X: 1, Y: 1, Z: 1}, g.GlobalToGrid(v(0.1, 0.1, 0.1)))
	assert.Equal(t, space.GridIndex{X: 0, Y: 0, Z: 0}, g.GlobalToGrid(v(-0.1, -0.1, -0.1)))
}

func TestAroundOnGridIsSorted(t *testing.T) {
	g := space.NewGrid3D(3, 3, 3, v(-1, -1, -1), v(1, 1, 1))

	expected := [8]space.GridIndex{
		{1, 1, 1}, {1, 1, 2}, {1, 2, 1}, {1, 2, 2},
		{2, 1, 1}, {2, 1, 2}, {2, 2, 1}, {2, 2, 2},
	}
	assert.Equal(t, expected, g.AroundOnGrid(v(0.1, 0.3, 0.5)))
}

func TestOccupancyStartsOccupied(t *testing.T) {
	g := testGrid()
	assert.True(t, g.IsOccupied(5, 5, 5))

	g.SetEmpty(5, 5, 5)
	assert.False(t, g.IsOccupied(5, 5, 5))

	g.SetOccupied(5, 5, 5)
	assert.True(t, g.IsOccupied(5, 5, 5))
}

func TestNeighborsExcludeOutOfBounds(t *testing.T) {
	g := testGrid()
	assert.Len(t, g.Neighbors(0, 0, 0), 3)
	assert.Len(t, g.Neighbors(5, 5, 5), 6)
	assert.Len(t, g.Neighbors(9, 9, 9), 3)
}
