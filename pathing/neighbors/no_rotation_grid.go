package neighbors

import (
	"github.com/jinderamarak/safestage/maths"
	"github.com/jinderamarak/safestage/position"
)

// NoRotationGrid steps translation only, in both directions along each of
// the three axes, keeping rotation fixed at whatever the current pose has.
type NoRotationGrid struct {
	Step maths.Vector3
}

// NewNoRotationGrid3D builds a NoRotationGrid stepping all three axes.
func NewNoRotationGrid3D(step maths.Vector3) NoRotationGrid {
	return NoRotationGrid{Step: step}
}

// NewNoRotationGrid2D builds a NoRotationGrid that never steps Z.
func NewNoRotationGrid2D(step maths.Vector2) NoRotationGrid {
	return NoRotationGrid{Step: maths.NewVector3(step.X(), step.Y(), 0)}
}

func (g NoRotationGrid) Neighbors(current position.SixAxis) []position.SixAxis {
	pos := current.Pos
	step := g.Step
	return []position.SixAxis{
		{Pos: maths.NewVector3(pos.X()+step.X(), pos.Y(), pos.Z()), Rot: current.Rot},
		{Pos: maths.NewVector3(pos.X()-step.X(), pos.Y(), pos.Z()), Rot: current.Rot},
		{Pos: maths.NewVector3(pos.X(), pos.Y()+step.Y(), pos.Z()), Rot: current.Rot},
		{Pos: maths.NewVector3(pos.X(), pos.Y()-step.Y(), pos.Z()), Rot: current.Rot},
		{Pos: maths.NewVector3(pos.X(), pos.Y(), pos.Z()+step.Z()), Rot: current.Rot},
		{Pos: maths.NewVector3(pos.X(), pos.Y(), pos.Z()-step.Z()), Rot: current.Rot},
	}
}
