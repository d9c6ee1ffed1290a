package neighbors

import (
	"github.com/jinderamarak/safestage/position"
	"github.com/jinderamarak/safestage/space"
)

// SampledGrid3D walks a pre-sampled space.Grid3D instead of re-testing
// collisions on every expansion: a resolver fills the grid's occupancy
// once (typically in parallel, ahead of planning) and AStar then only
// consults IsOccupied while it searches, keeping rotation fixed at
// whatever the current pose carries.
type SampledGrid3D struct {
	Grid *space.Grid3D
}

func (g SampledGrid3D) Neighbors(current position.SixAxis) []position.SixAxis {
	idx := g.Grid.GlobalToGrid(current.Pos)
	cells := g.Grid.Neighbors(idx.X, idx.Y, idx.Z)

	out := make([]position.SixAxis, 0, len(cells))
	for _, cell := range cells {
		if g.Grid.IsOccupied(cell.X, cell.Y, cell.Z) {
			continue
		}
		out = append(out, position.SixAxis{Pos: g.Grid.GridToGlobal(cell), Rot: current.Rot})
	}
	return out
}
