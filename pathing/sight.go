package pathing

import (
	"math"

	"github.com/jinderamarak/safestage/group"
	"github.com/jinderamarak/safestage/internal/conc"
	"github.com/jinderamarak/safestage/position"
	"github.com/jinderamarak/safestage/primitive"
)

func groupCollides(a, b Immovable) bool {
	return group.AnyCollides(a, b, primitive.CollidesWith)
}

// sampleT turns a sample index into a lerp factor, treating a zero-length
// segment (steps == 0) as a single sample at the start.
func sampleT(i, steps int) float64 {
	t := float64(i) / float64(steps)
	if math.IsNaN(t) {
		return 0.0
	}
	return t
}

// LineOfSight checks whether the straight segment from to can be swept
// without collision, sampling it at step's resolution.
func LineOfSight(from, to position.SixAxis, movable Movable[position.SixAxis], immovable Immovable, step position.SixAxis) bool {
	steps := from.Stepping(to, step)
	for i := 0; i <= steps; i++ {
		state := from.LerpT(to, sampleT(i, steps))
		if groupCollides(immovable, movable.MoveTo(state)) {
			return false
		}
	}
	return true
}

// LineOfSightParallel is LineOfSight with the per-sample collision checks
// fanned across internal/conc.Task.
func LineOfSightParallel(from, to position.SixAxis, movable Movable[position.SixAxis], immovable Immovable, step position.SixAxis) bool {
	steps := from.Stepping(to, step)
	count := steps + 1
	clear := make([]bool, count)

	conc.Task(0, count, func(start, end int) {
		for i := start; i < end; i++ {
			state := from.LerpT(to, sampleT(i, steps))
			clear[i] = !groupCollides(immovable, movable.MoveTo(state))
		}
	})

	for _, ok := range clear {
		if !ok {
			return false
		}
	}
	return true
}
