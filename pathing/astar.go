package pathing

import (
	"container/heap"

	"github.com/jinderamarak/safestage/maths"
	"github.com/jinderamarak/safestage/position"
)

// NeighborStrategy generates the candidate next poses A* should expand
// from a given pose.
type NeighborStrategy interface {
	Neighbors(current position.SixAxis) []position.SixAxis
}

// AStar searches for a path between two SixAxis poses over the states
// NeighborStrategy generates, using Euclidean distance scaled by MoveCost
// as its heuristic. If the open set empties before reaching the goal, it
// falls back to the best partial path found towards the lowest f-score
// frontier state it ever queued.
type AStar[N NeighborStrategy] struct {
	MoveStep   float64
	MoveCost   float64
	RotateStep float64
	Neighbor   N
}

func (a AStar[N]) goalTolerance() position.SixAxis {
	return position.SixAxis{
		Pos: maths.NewVector3(a.MoveStep, a.MoveStep, a.MoveStep),
		Rot: maths.NewVector3(a.RotateStep, a.RotateStep, a.RotateStep),
	}
}

func (a AStar[N]) heuristic(from, to position.SixAxis) float64 {
	return from.EuclideanTo(to) * a.MoveCost
}

func (a AStar[N]) FindPath(from, to position.SixAxis, movable Movable[position.SixAxis], immovable Immovable) PathResult[position.SixAxis] {
	if groupCollides(immovable, movable.MoveTo(from)) {
		return InvalidStart(from)
	}

	openSet := &astarHeap{}
	heap.Init(openSet)
	heap.Push(openSet, astarItem{weight: 0, state: from})

	cameFrom := map[position.SixAxis]position.SixAxis{}
	gScore := map[position.SixAxis]float64{from: 0}
	fScore := map[position.SixAxis]float64{from: a.heuristic(from, to)}

	for openSet.Len() > 0 {
		current := heap.Pop(openSet).(astarItem).state

		if current.CloseTo(to, a.goalTolerance()) {
			if groupCollides(immovable, movable.MoveTo(to)) {
				return UnreachableEnd(reconstructPath(cameFrom, current))
			}
			if current != to {
				cameFrom[to] = current
			}
			return Path(reconstructPath(cameFrom, to))
		}

		for _, neighbor := range a.Neighbor.Neighbors(current) {
			if groupCollides(immovable, movable.MoveTo(neighbor)) {
				continue
			}

			tentative := gScore[current] + current.EuclideanTo(neighbor)*a.MoveCost
			if g, ok := gScore[neighbor]; ok && tentative >= g {
				continue
			}

			f := tentative + a.heuristic(neighbor, to)
			cameFrom[neighbor] = current
			gScore[neighbor] = tentative
			fScore[neighbor] = f
			heap.Push(openSet, astarItem{weight: f, state: neighbor})
		}
	}

	closest := from
	bestScore := fScore[closest]
	for state, score := range fScore {
		if score < bestScore {
			closest, bestScore = state, score
		}
	}

	return UnreachableEnd(reconstructPath(cameFrom, closest))
}

func reconstructPath(cameFrom map[position.SixAxis]position.SixAxis, current position.SixAxis) []position.SixAxis {
	path := []position.SixAxis{current}
	for next, ok := cameFrom[current]; ok; next, ok = cameFrom[current] {
		path = append(path, next)
		current = next
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// astarItem is a single open-set entry ordered by ascending weight (f
// score), matching the original's min-heap-over-reversed-Ord state.
type astarItem struct {
	weight float64
	state  position.SixAxis
}

type astarHeap []astarItem

func (h astarHeap) Len() int            { return len(h) }
func (h astarHeap) Less(i, j int) bool  { return h[i].weight < h[j].weight }
func (h astarHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *astarHeap) Push(x interface{}) { *h = append(*h, x.(astarItem)) }
func (h *astarHeap) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
