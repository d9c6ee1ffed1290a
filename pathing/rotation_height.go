package pathing

import (
	"math"

	"github.com/jinderamarak/safestage/internal/conc"
	"github.com/jinderamarak/safestage/maths"
	"github.com/jinderamarak/safestage/position"
)

// RotationHeightStrategy decouples translation and rotation by walking
// straight down (along Z) in fixed steps until it finds a height at which
// rotating all the way to the target is collision-free, then emits a
// three-waypoint path through that height. If HeightMin is reached without
// finding a clean rotation, it falls back to the largest rotation fraction
// that is clean there.
type RotationHeightStrategy struct {
	HeightMin    float64
	HeightStep   float64
	RotationStep maths.Vector3
}

func (s RotationHeightStrategy) FindPath(from, to position.SixAxis, movable Movable[position.SixAxis], immovable Immovable) PathResult[position.SixAxis] {
	if groupCollides(immovable, movable.MoveTo(from)) {
		return InvalidStart(from)
	}

	rotationSteps := position.FromRotation(from.Rot).Stepping(position.FromRotation(to.Rot), position.FromRotation(s.RotationStep))

	currentPos := from.Pos
	for currentPos.Z() >= s.HeightMin {
		collided := false
		for i := 0; i <= rotationSteps; i++ {
			rot := from.Rot.Lerp(to.Rot, sampleT(i, rotationSteps))
			state := position.SixAxis{Pos: currentPos, Rot: rot}
			if groupCollides(immovable, movable.MoveTo(state)) {
				if i == 0 {
					return UnreachableEnd[position.SixAxis](nil)
				}
				collided = true
				break
			}
		}

		if !collided {
			lowered := position.SixAxis{Pos: currentPos, Rot: from.Rot}
			rotated := position.SixAxis{Pos: currentPos, Rot: to.Rot}
			return Path([]position.SixAxis{from, lowered, rotated})
		}

		currentPos = maths.NewVector3(currentPos.X(), currentPos.Y(), currentPos.Z()-s.HeightStep)
	}

	currentPos = maths.NewVector3(from.Pos.X(), from.Pos.Y(), s.HeightMin)
	lowered := position.SixAxis{Pos: currentPos, Rot: from.Rot}

	for i := 0; i <= rotationSteps; i++ {
		rot := from.Rot.Lerp(to.Rot, sampleT(i, rotationSteps))
		state := position.SixAxis{Pos: currentPos, Rot: rot}
		if groupCollides(immovable, movable.MoveTo(state)) {
			if i == 0 {
				return UnreachableEnd[position.SixAxis](nil)
			}
			previousRot := from.Rot.Lerp(to.Rot, sampleT(i-1, rotationSteps))
			maxRotation := position.SixAxis{Pos: currentPos, Rot: previousRot}
			return UnreachableEnd([]position.SixAxis{from, lowered, maxRotation})
		}
	}

	rotated := position.SixAxis{Pos: currentPos, Rot: to.Rot}
	return Path([]position.SixAxis{from, lowered, rotated})
}

// RotationHeightParallelStrategy searches like RotationHeightStrategy, but
// evaluates every candidate height's rotation check across
// internal/conc.Task and then takes the highest clean height. Candidate
// heights are spaced evenly from from's Z down to HeightMin, at most
// HeightStep apart. A height at which the unrotated pose collides ends the
// search with UnreachableEnd and no path. There is no partial-rotation
// fallback at HeightMin: when no height is clean, the result is
// UnreachableEnd with no path.
type RotationHeightParallelStrategy struct {
	HeightMin    float64
	HeightStep   float64
	RotationStep maths.Vector3
}

func heightStepping(from, min, step float64) (int, float64) {
	diff := from - min
	steps := int(math.Ceil(diff / step))
	return steps, diff / float64(steps)
}

func (s RotationHeightParallelStrategy) FindPath(from, to position.SixAxis, movable Movable[position.SixAxis], immovable Immovable) PathResult[position.SixAxis] {
	if groupCollides(immovable, movable.MoveTo(from)) {
		return InvalidStart(from)
	}

	rotationSteps := position.FromRotation(from.Rot).Stepping(position.FromRotation(to.Rot), position.FromRotation(s.RotationStep))
	heightSteps, heightStep := heightStepping(from.Pos.Z(), s.HeightMin, s.HeightStep)

	clean := make([]bool, heightSteps+1)
	blocked := make([]bool, heightSteps+1)
	conc.Task(0, heightSteps+1, func(start, end int) {
		for i := start; i < end; i++ {
			h := math.Max(from.Pos.Z()-float64(i)*heightStep, s.HeightMin)
			ok := true
			for j := 0; j <= rotationSteps; j++ {
				rot := from.Rot.Lerp(to.Rot, sampleT(j, rotationSteps))
				state := position.SixAxis{Pos: maths.NewVector3(from.Pos.X(), from.Pos.Y(), h), Rot: rot}
				if groupCollides(immovable, movable.MoveTo(state)) {
					blocked[i] = j == 0
					ok = false
					break
				}
			}
			clean[i] = ok
		}
	})

	for i := 0; i <= heightSteps; i++ {
		if blocked[i] {
			return UnreachableEnd[position.SixAxis](nil)
		}
		if clean[i] {
			height := from.Pos.Z() - float64(i)*heightStep
			lowered := position.SixAxis{Pos: maths.NewVector3(from.Pos.X(), from.Pos.Y(), height), Rot: from.Rot}
			rotated := position.SixAxis{Pos: maths.NewVector3(from.Pos.X(), from.Pos.Y(), height), Rot: to.Rot}
			return Path([]position.SixAxis{from, lowered, rotated})
		}
	}

	return UnreachableEnd[position.SixAxis](nil)
}
