package resolver

import (
	"math"

	"github.com/jinderamarak/safestage/group"
	"github.com/jinderamarak/safestage/internal/conc"
	"github.com/jinderamarak/safestage/maths"
	"github.com/jinderamarak/safestage/position"
	"github.com/jinderamarak/safestage/primitive"
	"github.com/jinderamarak/safestage/scene"
	"github.com/jinderamarak/safestage/space"
)

func gridResolution3D(min, max, step maths.Vector3) (int, int, int) {
	dx := int(math.Ceil(math.Abs(max.X()-min.X())/step.X())) + 1
	dy := int(math.Ceil(math.Abs(max.Y()-min.Y())/step.Y())) + 1
	dz := int(math.Ceil(math.Abs(max.Z()-min.Z())/step.Z())) + 1
	return dx, dy, dz
}

func collides(movable scene.Movable[position.SixAxis], immovable scene.Immovable, pose position.SixAxis) bool {
	return group.AnyCollides(movable.MoveTo(pose), immovable, primitive.CollidesWith)
}

func collidesLinear(movable scene.Movable[position.LinearState], immovable scene.Immovable, pose position.LinearState) bool {
	return group.AnyCollides(movable.MoveTo(pose), immovable, primitive.CollidesWith)
}

// sampleGrid1D fills a fresh Grid1D over the retract axis's [0, 1]
// relative range at the given resolution, marking every cell occupied
// whose pose collides with immovable. Cells are sampled in parallel.
func sampleGrid1D(resolution int, movable scene.Movable[position.LinearState], immovable scene.Immovable) *space.Grid1D {
	grid := space.NewGrid1D(resolution, 0.0, 1.0)

	conc.Task(0, resolution, func(start, end int) {
		for x := start; x < end; x++ {
			pose := position.Relative(grid.GridToGlobal(x))
			if !collidesLinear(movable, immovable, pose) {
				grid.SetEmpty(x)
			}
		}
	})

	return grid
}

// sampleGrid3D fills a fresh Grid3D covering [min, max] at the given
// resolution, marking every cell occupied whose pose (at rotation rot)
// collides with immovable. Rows along X are sampled in parallel.
func sampleGrid3D(min, max, step maths.Vector3, rot maths.Vector3, movable scene.Movable[position.SixAxis], immovable scene.Immovable) *space.Grid3D {
	dx, dy, dz := gridResolution3D(min, max, step)
	grid := space.NewGrid3D(dx, dy, dz, min, max)

	conc.Task(0, dx, func(start, end int) {
		for x := start; x < end; x++ {
			for y := 0; y < dy; y++ {
				for z := 0; z < dz; z++ {
					idx := space.GridIndex{X: x, Y: y, Z: z}
					pose := position.SixAxis{Pos: grid.GridToGlobal(idx), Rot: rot}
					if !collides(movable, immovable, pose) {
						grid.SetEmpty(x, y, z)
					}
				}
			}
		}
	})

	return grid
}
