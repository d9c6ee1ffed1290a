package resolver

import (
	"github.com/jinderamarak/safestage/pathing"
	"github.com/jinderamarak/safestage/position"
	"github.com/jinderamarak/safestage/scene"
	"github.com/jinderamarak/safestage/space"
)

// RetractResolver is a simpler 1D resolver for the single retract axis: no
// rotation phase, just an occupancy Grid1D over the axis's relative
// [0, 1] range that it walks cell by cell towards the target.
type RetractResolver struct {
	resolution int
	grid       *space.Grid1D
}

// NewRetractResolver builds a RetractResolver sampling the axis into
// resolution cells.
func NewRetractResolver(resolution int) *RetractResolver {
	return &RetractResolver{resolution: resolution}
}

// UpdateState validates pose and, if collision-free, resamples the grid.
func (r *RetractResolver) UpdateState(pose position.LinearState, movable scene.Movable[position.LinearState], immovable scene.Immovable) error {
	if collidesLinear(movable, immovable, pose) {
		return ErrInvalidState
	}

	r.grid = sampleGrid1D(r.resolution, movable, immovable)
	return nil
}

// FindPath walks the sampled grid from from towards to one cell at a
// time, stopping short with PathResult.Kind() == KindUnreachableEnd the
// moment it meets an occupied cell.
func (r *RetractResolver) FindPath(from, to position.LinearState, movable scene.Movable[position.LinearState], immovable scene.Immovable) pathing.PathResult[position.LinearState] {
	if collidesLinear(movable, immovable, from) {
		return pathing.InvalidStart(from)
	}

	grid := r.grid
	if grid == nil {
		grid = sampleGrid1D(r.resolution, movable, immovable)
	}

	fromIdx := grid.GlobalToGrid(from.AsRelative())
	toIdx := grid.GlobalToGrid(to.AsRelative())

	step := 1
	if toIdx < fromIdx {
		step = -1
	}

	nodes := []position.LinearState{from}
	for i := fromIdx; i != toIdx; i += step {
		next := i + step
		if grid.IsOccupied(next) {
			return pathing.UnreachableEnd(nodes)
		}
		nodes = append(nodes, position.Relative(grid.GridToGlobal(next)))
	}

	return pathing.Path(nodes)
}
