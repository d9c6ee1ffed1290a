package space_test

import (
	"testing"

	"github.com/jinderamarak/safestage/space"
	"github.com/stretchr/testify/assert"
)

func TestLowerGrid1DToGlobal(t *testing.T) {
	g := space.NewGrid1D(10, -1.0, 1.0)
	assert.Equal(t, -1.0, g.GridToGlobal(0))
}

func TestUpperGrid1DToGlobal(t *testing.T) {
	g := space.NewGrid1D(10, -1.0, 1.0)
	assert.Equal(t, 1.0, g.GridToGlobal(9))
}

func TestLowerGlobal1DToGrid(t *testing.T) {
	g := space.NewGrid1D(10, -1.0, 1.0)
	assert.Equal(t, 0, g.GlobalToGrid(-1.0))
}

func TestUpperGlobal1DToGrid(t *testing.T) {
	g := space.NewGrid1D(10, -1.0, 1.0)
	assert.Equal(t, 9, g.GlobalToGrid(1.0))
}

func TestGlobal1DToGridIsClosest(t *testing.T) {
	g := space.NewGrid1D(2, -1.0, 1.0)
	assert.Equal(t, 1, g.GlobalToGrid(0.1))
	assert.Equal(t, 0, g.GlobalToGrid(-0.1))
}

func TestAroundOnGrid1DIsSorted(t *testing.T) {
	g := space.NewGrid1D(3, -1.0, 1.0)
	assert.Equal(t, [2]int{1, 2}, g.AroundOnGrid(0.3))
	assert.Equal(t, [2]int{2, 1}, g.AroundOnGrid(0.5))
}

func TestOccupancy1DStartsOccupied(t *testing.T) {
	g := space.NewGrid1D(10, -1.0, 1.0)
	assert.True(t, g.IsOccupied(5))

	g.SetEmpty(5)
	assert.False(t, g.IsOccupied(5))

	g.SetOccupied(5)
	assert.True(t, g.IsOccupied(5))
}

func TestNeighbors1DExcludeOutOfBounds(t *testing.T) {
	g := space.NewGrid1D(10, -1.0, 1.0)
	assert.Len(t, g.Neighbors(0), 1)
	assert.Len(t, g.Neighbors(5), 2)
	assert.Len(t, g.Neighbors(9), 1)
}
