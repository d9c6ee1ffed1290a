package space

import "math"

// Grid1D is a dense d-cell occupancy grid covering [min, max] along a
// single axis - the retract resolver's 1D analogue of Grid3D. Cells start
// occupied (true) - callers carve out free space by calling SetEmpty as a
// planner samples it.
type Grid1D struct {
	d    int
	min  float64
	diff float64
	data []bool
}

// NewGrid1D builds a Grid1D of the given resolution spanning [min, max],
// every cell initially occupied.
func NewGrid1D(d int, min, max float64) *Grid1D {
	data := make([]bool, d)
	for i := range data {
		data[i] = true
	}
	return &Grid1D{d: d, min: min, diff: math.Abs(max - min), data: data}
}

// D returns the grid's resolution.
func (g *Grid1D) D() int { return g.d }

// GlobalToGrid rounds global to the nearest cell index.
func (g *Grid1D) GlobalToGrid(global float64) int {
	return int(math.Round((global - g.min) / g.diff * float64(g.d-1)))
}

// GridToGlobal returns the global-space position of a cell index.
func (g *Grid1D) GridToGlobal(local int) float64 {
	return g.min + float64(local)/float64(g.d-1)*g.diff
}

// AroundOnGrid returns the 2 cell indices straddling global, nearest first.
func (g *Grid1D) AroundOnGrid(global float64) [2]int {
	local := (global - g.min) / g.diff * float64(g.d-1)
	snapped := int(local)
	if math.Mod(local, 1.0) < 0.5 {
		return [2]int{snapped, snapped + 1}
	}
	return [2]int{snapped + 1, snapped}
}

// IsOccupied reports whether the cell at x is occupied.
func (g *Grid1D) IsOccupied(x int) bool { return g.data[x] }

// SetOccupied marks the cell at x occupied.
func (g *Grid1D) SetOccupied(x int) { g.data[x] = true }

// SetEmpty marks the cell at x free.
func (g *Grid1D) SetEmpty(x int) { g.data[x] = false }

// Neighbors returns the up-to-2 neighbors of x that lie within the grid's
// bounds.
func (g *Grid1D) Neighbors(x int) []int {
	neighbors := make([]int, 0, 2)
	if x < g.d-1 {
		neighbors = append(neighbors, x+1)
	}
	if x > 0 {
		neighbors = append(neighbors, x-1)
	}
	return neighbors
}
