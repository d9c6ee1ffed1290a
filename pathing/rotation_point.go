package pathing

import (
	"github.com/jinderamarak/safestage/internal/conc"
	"github.com/jinderamarak/safestage/maths"
	"github.com/jinderamarak/safestage/position"
)

// RotationPointStrategy decouples translation and rotation: it moves
// towards TendPoint (a known-safe point to rotate at) keeping the start
// rotation, finds the first position along that approach where rotating
// all the way to the target is collision-free, then emits a three-waypoint
// path through that position.
//
// Parallel version available in RotationPointParallelStrategy.
type RotationPointStrategy struct {
	TendPoint    maths.Vector3
	MoveStep     maths.Vector3
	RotationStep maths.Vector3
}

func vectorStepping(from, to, step maths.Vector3) int {
	return position.FromPosition(from).Stepping(position.FromPosition(to), position.FromPosition(step))
}

func (s RotationPointStrategy) FindPath(from, to position.SixAxis, movable Movable[position.SixAxis], immovable Immovable) PathResult[position.SixAxis] {
	if groupCollides(immovable, movable.MoveTo(from)) {
		return InvalidStart(from)
	}

	rotationSteps := vectorStepping(from.Rot, to.Rot, s.RotationStep)
	moveSteps := vectorStepping(from.Pos, s.TendPoint, s.MoveStep)

	for i := 0; i <= moveSteps; i++ {
		pos := from.Pos.Lerp(s.TendPoint, sampleT(i, moveSteps))
		if s.rotatesCleanlyAt(pos, from.Rot, to.Rot, rotationSteps, movable, immovable) {
			lowered := position.SixAxis{Pos: pos, Rot: from.Rot}
			rotated := position.SixAxis{Pos: pos, Rot: to.Rot}
			return Path([]position.SixAxis{from, lowered, rotated})
		}
	}

	return UnreachableEnd[position.SixAxis](nil)
}

func (s RotationPointStrategy) rotatesCleanlyAt(pos, fromRot, toRot maths.Vector3, rotationSteps int, movable Movable[position.SixAxis], immovable Immovable) bool {
	for j := 0; j <= rotationSteps; j++ {
		rot := fromRot.Lerp(toRot, sampleT(j, rotationSteps))
		state := position.SixAxis{Pos: pos, Rot: rot}
		if groupCollides(immovable, movable.MoveTo(state)) {
			return false
		}
	}
	return true
}

// RotationPointParallelStrategy is RotationPointStrategy with the
// move-step search fanned across internal/conc.Task.
type RotationPointParallelStrategy struct {
	TendPoint    maths.Vector3
	MoveStep     maths.Vector3
	RotationStep maths.Vector3
}

func (s RotationPointParallelStrategy) FindPath(from, to position.SixAxis, movable Movable[position.SixAxis], immovable Immovable) PathResult[position.SixAxis] {
	if groupCollides(immovable, movable.MoveTo(from)) {
		return InvalidStart(from)
	}

	rotationSteps := vectorStepping(from.Rot, to.Rot, s.RotationStep)
	moveSteps := vectorStepping(from.Pos, s.TendPoint, s.MoveStep)

	clean := make([]bool, moveSteps+1)
	base := RotationPointStrategy{TendPoint: s.TendPoint, MoveStep: s.MoveStep, RotationStep: s.RotationStep}
	conc.Task(0, moveSteps+1, func(start, end int) {
		for i := start; i < end; i++ {
			pos := from.Pos.Lerp(s.TendPoint, sampleT(i, moveSteps))
			clean[i] = base.rotatesCleanlyAt(pos, from.Rot, to.Rot, rotationSteps, movable, immovable)
		}
	})

	for i := 0; i <= moveSteps; i++ {
		if clean[i] {
			pos := from.Pos.Lerp(s.TendPoint, sampleT(i, moveSteps))
			lowered := position.SixAxis{Pos: pos, Rot: from.Rot}
			rotated := position.SixAxis{Pos: pos, Rot: to.Rot}
			return Path([]position.SixAxis{from, lowered, rotated})
		}
	}

	return UnreachableEnd[position.SixAxis](nil)
}
