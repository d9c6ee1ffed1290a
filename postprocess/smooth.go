// Package postprocess cleans up a raw PathResult once a pathing.Strategy
// has produced one: dropping skippable waypoints that a direct line of
// sight connects, and re-sampling a path to a uniform step size.
package postprocess

import (
	"github.com/jinderamarak/safestage/pathing"
	"github.com/jinderamarak/safestage/position"
)

// Smooth collapses any waypoint that a straight, collision-free line of
// sight already connects from the current anchor to the waypoint after
// it, advancing the anchor only when a waypoint can't be skipped.
// Idempotent: smoothing an already-smoothed path returns it unchanged.
func Smooth(path pathing.PathResult[position.SixAxis], movable pathing.Movable[position.SixAxis], immovable pathing.Immovable, step position.SixAxis) pathing.PathResult[position.SixAxis] {
	return path.Map(func(nodes []position.SixAxis) []position.SixAxis {
		return smoothNodes(nodes, movable, immovable, step)
	})
}

func smoothNodes(path []position.SixAxis, movable pathing.Movable[position.SixAxis], immovable pathing.Immovable, step position.SixAxis) []position.SixAxis {
	if len(path) < 2 {
		return path
	}

	smooth := []position.SixAxis{path[0]}
	anchor := 0
	for i := 1; i < len(path)-1; i++ {
		if !pathing.LineOfSight(path[anchor], path[i+1], movable, immovable, step) {
			smooth = append(smooth, path[i])
			anchor = i
		}
	}

	smooth = append(smooth, path[len(path)-1])
	return smooth
}

// SmoothParallel is Smooth with each line-of-sight check fanned across
// internal/conc.Task via pathing.LineOfSightParallel.
func SmoothParallel(path pathing.PathResult[position.SixAxis], movable pathing.Movable[position.SixAxis], immovable pathing.Immovable, step position.SixAxis) pathing.PathResult[position.SixAxis] {
	return path.Map(func(nodes []position.SixAxis) []position.SixAxis {
		return smoothNodesParallel(nodes, movable, immovable, step)
	})
}

func smoothNodesParallel(path []position.SixAxis, movable pathing.Movable[position.SixAxis], immovable pathing.Immovable, step position.SixAxis) []position.SixAxis {
	if len(path) < 2 {
		return path
	}

	smooth := []position.SixAxis{path[0]}
	anchor := 0
	for i := 1; i < len(path)-1; i++ {
		if !pathing.LineOfSightParallel(path[anchor], path[i+1], movable, immovable, step) {
			smooth = append(smooth, path[i])
			anchor = i
		}
	}

	smooth = append(smooth, path[len(path)-1])
	return smooth
}
