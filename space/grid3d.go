// Package space implements the occupancy grid pathing plans over: a
// dense 3D grid of boolean cells covering a bounding box in global
// coordinates, with nearest-cell lookup in both directions and a
// 6-connected neighbor walk.
package space

import (
	"math"
	"sort"

	"github.com/jinderamarak/safestage/maths"
)

// Grid3D is a dense dx*dy*dz occupancy grid covering [min, max] in global
// coordinates. Cells start occupied (true) - callers carve out free space
// by calling SetEmpty as a planner samples it.
type Grid3D struct {
	dx, dy, dz int
	min        maths.Vector3
	diff       maths.Vector3
	data       []bool
}

// NewGrid3D builds a Grid3D of the given resolution spanning [min, max],
// every cell initially occupied.
func NewGrid3D(dx, dy, dz int, min, max maths.Vector3) *Grid3D {
	data := make([]bool, dx*dy*dz)
	for i := range data {
		data[i] = true
	}
	return &Grid3D{dx: dx, dy: dy, dz: dz, min: min, diff: max.Sub(min).Abs(), data: data}
}

// Dx, Dy, Dz return the grid's resolution along each axis.
func (g *Grid3D) Dx() int { return g.dx }
func (g *Grid3D) Dy() int { return g.dy }
func (g *Grid3D) Dz() int { return g.dz }

// GridIndex is a single cell's integer coordinate.
type GridIndex struct{ X, Y, Z int }

func axisToGrid(value, min, diff float64, resolution int) int {
	return int(math.Round((value - min) / diff * float64(resolution-1)))
}

// GlobalToGrid rounds global to the nearest cell index.
func (g *Grid3D) GlobalToGrid(global maths.Vector3) GridIndex {
	return GridIndex{
		X: axisToGrid(global.X(), g.min.X(), g.diff.X(), g.dx),
		Y: axisToGrid(global.Y(), g.min.Y(), g.diff.Y(), g.dy),
		Z: axisToGrid(global.Z(), g.min.Z(), g.diff.Z(), g.dz),
	}
}

// GridToGlobal returns the global-space position of a cell index.
func (g *Grid3D) GridToGlobal(grid GridIndex) maths.Vector3 {
	return maths.NewVector3(
		g.min.X()+float64(grid.X)/float64(g.dx-1)*g.diff.X(),
		g.min.Y()+float64(grid.Y)/float64(g.dy-1)*g.diff.Y(),
		g.min.Z()+float64(grid.Z)/float64(g.dz-1)*g.diff.Z(),
	)
}

// AroundOnGrid returns the 8 cell indices of the grid cube containing
// global, ordered nearest-to-farthest from global.
func (g *Grid3D) AroundOnGrid(global maths.Vector3) [8]GridIndex {
	lx := int((global.X() - g.min.X()) / g.diff.X() * float64(g.dx-1))
	ly := int((global.Y() - g.min.Y()) / g.diff.Y() * float64(g.dy-1))
	lz := int((global.Z() - g.min.Z()) / g.diff.Z() * float64(g.dz-1))
	ux, uy, uz := lx+1, ly+1, lz+1

	points := [8]GridIndex{
		{lx, ly, lz}, {lx, ly, uz}, {lx, uy, lz}, {lx, uy, uz},
		{ux, ly, lz}, {ux, ly, uz}, {ux, uy, lz}, {ux, uy, uz},
	}

	sort.Slice(points[:], func(i, j int) bool {
		di := g.GridToGlobal(points[i]).Sub(global).Len()
		dj := g.GridToGlobal(points[j]).Sub(global).Len()
		return di < dj
	})

	return points
}

func (g *Grid3D) flatIndex(x, y, z int) int {
	return x + y*g.dx + z*g.dx*g.dy
}

// IsOccupied reports whether the cell at (x, y, z) is occupied.
func (g *Grid3D) IsOccupied(x, y, z int) bool {
	return g.data[g.flatIndex(x, y, z)]
}

// SetOccupied marks the cell at (x, y, z) occupied.
func (g *Grid3D) SetOccupied(x, y, z int) {
	g.data[g.flatIndex(x, y, z)] = true
}

// SetEmpty marks the cell at (x, y, z) free.
func (g *Grid3D) SetEmpty(x, y, z int) {
	g.data[g.flatIndex(x, y, z)] = false
}

// Neighbors returns the up-to-6 axis-aligned neighbors of (x, y, z) that
// lie within the grid's bounds.
func (g *Grid3D) Neighbors(x, y, z int) []GridIndex {
	neighbors := make([]GridIndex, 0, 6)
	if x < g.dx-1 {
		neighbors = append(neighbors, GridIndex{x + 1, y, z})
	}
	if y < g.dy-1 {
		neighbors = append(neighbors, GridIndex{x, y + 1, z})
	}
	if z < g.dz-1 {
		neighbors = append(neighbors, GridIndex{x, y, z + 1})
	}
	if x > 0 {
		neighbors = append(neighbors, GridIndex{x - 1, y, z})
	}
	if y > 0 {
		neighbors = append(neighbors, GridIndex{x, y - 1, z})
	}
	if z > 0 {
		neighbors = append(neighbors, GridIndex{x, y, z - 1})
	}
	return neighbors
}
