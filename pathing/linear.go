package pathing

import (
	"github.com/jinderamarak/safestage/internal/conc"
	"github.com/jinderamarak/safestage/position"
)

// LinearStrategy moves in a straight line from start to end at a fixed
// step size, stopping at (and reporting) the last collision-free sample
// if the full path isn't clear.
//
// Parallel version available in LinearParallelStrategy.
type LinearStrategy struct {
	Step position.SixAxis
}

func (s LinearStrategy) FindPath(from, to position.SixAxis, movable Movable[position.SixAxis], immovable Immovable) PathResult[position.SixAxis] {
	if groupCollides(immovable, movable.MoveTo(from)) {
		return InvalidStart(from)
	}

	maxSteps := from.Stepping(to, s.Step)
	for i := 1; i <= maxSteps; i++ {
		state := from.LerpT(to, sampleT(i, maxSteps))
		if groupCollides(immovable, movable.MoveTo(state)) {
			if i == 1 {
				return UnreachableEnd([]position.SixAxis{from})
			}
			previous := from.LerpT(to, sampleT(i-1, maxSteps))
			return UnreachableEnd([]position.SixAxis{from, previous})
		}
	}

	return Path([]position.SixAxis{from, to})
}

// LinearParallelStrategy is LinearStrategy with the per-sample collision
// checks fanned across internal/conc.Task.
type LinearParallelStrategy struct {
	Step position.SixAxis
}

func (s LinearParallelStrategy) FindPath(from, to position.SixAxis, movable Movable[position.SixAxis], immovable Immovable) PathResult[position.SixAxis] {
	if groupCollides(immovable, movable.MoveTo(from)) {
		return InvalidStart(from)
	}

	maxSteps := from.Stepping(to, s.Step)
	first, found := parallelFindFirst(maxSteps, func(i int) bool {
		state := from.LerpT(to, sampleT(i, maxSteps))
		return groupCollides(immovable, movable.MoveTo(state))
	})

	if found {
		if first == 1 {
			return UnreachableEnd([]position.SixAxis{from})
		}
		previous := from.LerpT(to, sampleT(first-1, maxSteps))
		return UnreachableEnd([]position.SixAxis{from, previous})
	}

	return Path([]position.SixAxis{from, to})
}

// LinearRetractStrategy is LinearStrategy for the single-axis LinearState
// a retract moves along.
type LinearRetractStrategy struct {
	Step position.LinearState
}

func (s LinearRetractStrategy) FindPath(from, to position.LinearState, movable Movable[position.LinearState], immovable Immovable) PathResult[position.LinearState] {
	if groupCollides(immovable, movable.MoveTo(from)) {
		return InvalidStart(from)
	}

	steps := retractSteps(from, to, s.Step)
	for i := 1; i <= steps; i++ {
		state := from.Lerp(to, sampleT(i, steps))
		if groupCollides(immovable, movable.MoveTo(state)) {
			if i == 1 {
				return UnreachableEnd([]position.LinearState{from})
			}
			previous := from.Lerp(to, sampleT(i-1, steps))
			return UnreachableEnd([]position.LinearState{from, previous})
		}
	}

	return Path([]position.LinearState{from, to})
}

func retractSteps(from, to, step position.LinearState) int {
	diff := to.AsRelative() - from.AsRelative()
	if diff < 0 {
		diff = -diff
	}
	ratio := diff / step.AsRelative()
	steps := int(ratio)
	if float64(steps) < ratio {
		steps++
	}
	return steps
}

// parallelFindFirst evaluates pred(1)..pred(n) across internal/conc.Task
// and returns the smallest i for which it holds, mirroring rayon's
// find_first over a parallel range.
func parallelFindFirst(n int, pred func(i int) bool) (int, bool) {
	if n <= 0 {
		return 0, false
	}
	hits := make([]bool, n+1)
	conc.Task(0, n, func(start, end int) {
		for i := start; i < end; i++ {
			hits[i+1] = pred(i + 1)
		}
	})

	for i := 1; i <= n; i++ {
		if hits[i] {
			return i, true
		}
	}
	return 0, false
}
