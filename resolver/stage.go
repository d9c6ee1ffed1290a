package resolver

import (
	"github.com/google/uuid"
	"github.com/jinderamarak/safestage/maths"
	"github.com/jinderamarak/safestage/pathing"
	"github.com/jinderamarak/safestage/pathing/neighbors"
	"github.com/jinderamarak/safestage/position"
	"github.com/jinderamarak/safestage/postprocess"
	"github.com/jinderamarak/safestage/scene"
	"github.com/jinderamarak/safestage/space"
	"golang.org/x/sync/errgroup"
)

// StageResolver is the "down-rotate-find" resolver for the stage's six
// axes: it keeps a sampled occupancy grid of free translations at the
// last rotation it was told about, lowers the stage to a safe tend point
// before any rotation change, A*-searches the (re)sampled grid for the
// rest of the path, and line-of-sight-smooths the result.
type StageResolver struct {
	stage   scene.Stage
	holders map[uuid.UUID]scene.Holder

	downRotation pathing.RotationPointParallelStrategy
	astar        pathing.AStar[neighbors.SampledGrid3D]

	sampleMin, sampleMax, sampleStep maths.Vector3
	smoothingStep                   position.SixAxis

	grid *space.Grid3D
}

// NewStageResolver builds a StageResolver. downPoint is a known-safe
// translation to rotate at; downStep/moveStep/rotateStep/moveCost tune
// the safe-rotation search and the A* heuristic; sampleMin/sampleMax/
// sampleStep bound and resolve the occupancy grid the A* phase walks.
func NewStageResolver(
	stage scene.Stage,
	holders map[uuid.UUID]scene.Holder,
	downPoint maths.Vector3,
	downStep position.SixAxis,
	moveStep, moveCost, rotateStep float64,
	sampleMin, sampleMax, sampleStep maths.Vector3,
	smoothingStep position.SixAxis,
) *StageResolver {
	return &StageResolver{
		stage:   stage,
		holders: holders,
		downRotation: pathing.RotationPointParallelStrategy{
			TendPoint:    downPoint,
			MoveStep:     downStep.Pos,
			RotationStep: downStep.Rot,
		},
		astar: pathing.AStar[neighbors.SampledGrid3D]{
			MoveStep:   moveStep,
			MoveCost:   moveCost,
			RotateStep: rotateStep,
		},
		sampleMin:     sampleMin,
		sampleMax:     sampleMax,
		sampleStep:    sampleStep,
		smoothingStep: smoothingStep,
	}
}

// SwapHolder mounts the holder registered under id, returning ErrInvalidID
// if no holder was ever registered with that identifier.
func (r *StageResolver) SwapHolder(id uuid.UUID) error {
	holder, ok := r.holders[id]
	if !ok {
		return ErrInvalidID
	}
	r.stage.SwapHolder(holder)
	return nil
}

// UpdateState validates pose and, if it is collision-free, resamples the
// occupancy grid at pose's rotation so the next FindPath call that keeps
// the same rotation can skip straight to A*.
func (r *StageResolver) UpdateState(pose position.SixAxis, movable scene.Movable[position.SixAxis], immovable scene.Immovable) error {
	if collides(movable, immovable, pose) {
		return ErrInvalidState
	}

	r.grid = sampleGrid3D(r.sampleMin, r.sampleMax, r.sampleStep, pose.Rot, movable, immovable)
	return nil
}

// FindPath resolves a path from from to to. If the rotation changes, it
// forks a resample of the grid at from's rotation and a safe-rotation
// search towards to concurrently, then continues the rest of the search
// from wherever the safe-rotation search left off; otherwise it reuses
// whatever grid UpdateState last sampled. The rough A* result is always
// smoothed before being returned.
func (r *StageResolver) FindPath(from, to position.SixAxis, movable scene.Movable[position.SixAxis], immovable scene.Immovable) pathing.PathResult[position.SixAxis] {
	if collides(movable, immovable, from) {
		return pathing.InvalidStart(from)
	}

	start := from
	var prepath []position.SixAxis
	grid := r.grid

	if from.Rot != to.Rot {
		var resampled *space.Grid3D
		var down pathing.PathResult[position.SixAxis]

		var group errgroup.Group
		group.Go(func() error {
			resampled = sampleGrid3D(r.sampleMin, r.sampleMax, r.sampleStep, from.Rot, movable, immovable)
			return nil
		})
		group.Go(func() error {
			down = r.downRotation.FindPath(from, to, movable, immovable)
			return nil
		})
		_ = group.Wait()

		grid = resampled
		if down.Kind() != pathing.KindPath {
			return down
		}

		prepath = down.Nodes()
		start = prepath[len(prepath)-1]
	}

	if grid == nil {
		return pathing.UnreachableEnd(prepath)
	}

	astar := r.astar
	astar.Neighbor = neighbors.SampledGrid3D{Grid: grid}
	rough := astar.FindPath(start, to, movable, immovable)

	var full pathing.PathResult[position.SixAxis]
	switch rough.Kind() {
	case pathing.KindPath:
		full = pathing.Path(joinNodes(prepath, rough.Nodes()))
	case pathing.KindUnreachableEnd:
		full = pathing.UnreachableEnd(joinNodes(prepath, rough.Nodes()))
	default:
		return rough
	}

	return postprocess.SmoothParallel(full, movable, immovable, r.smoothingStep)
}

func joinNodes(prepath, rest []position.SixAxis) []position.SixAxis {
	joined := make([]position.SixAxis, 0, len(prepath)+len(rest))
	joined = append(joined, prepath...)
	joined = append(joined, rest...)
	return joined
}
