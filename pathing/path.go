// Package pathing plans a route for a moving part through an occupancy
// space it shares with fixed and other moving parts, expressed purely in
// terms of the collision-query contracts (Movable, Immovable) rather than
// any concrete geometry.
package pathing

import (
	"github.com/jinderamarak/safestage/group"
	"github.com/jinderamarak/safestage/position"
	"github.com/jinderamarak/safestage/primitive"
)

// Immovable is the frozen collider snapshot a Movable produces for a given
// pose - not a fresh named type, just the generic instantiation every
// strategy already has in hand.
type Immovable = group.ColliderGroup[primitive.Collider]

// Movable reports the Immovable footprint a part occupies at a given
// position, without committing to moving it there.
type Movable[P any] interface {
	MoveTo(position P) Immovable
}

// Kind tags which case a PathResult holds.
type Kind int

const (
	KindInvalidStart Kind = iota
	KindPath
	KindUnreachableEnd
)

// PathResult is the outcome of a pathfinding attempt:
//
//   - InvalidStart: the starting position itself collides, so no search
//     was attempted.
//   - Path: a complete path from start to end.
//   - UnreachableEnd: the goal could not be reached; carries the best
//     partial path found, if the strategy kept one.
type PathResult[P any] struct {
	kind  Kind
	start P
	nodes []P
}

// InvalidStart reports that the given position cannot be used as a start.
func InvalidStart[P any](start P) PathResult[P] {
	return PathResult[P]{kind: KindInvalidStart, start: start}
}

// Path reports a complete path from start to end.
func Path[P any](nodes []P) PathResult[P] {
	return PathResult[P]{kind: KindPath, nodes: nodes}
}

// UnreachableEnd reports that the goal could not be reached. nodes may be
// nil if the strategy found no partial path at all.
func UnreachableEnd[P any](nodes []P) PathResult[P] {
	return PathResult[P]{kind: KindUnreachableEnd, nodes: nodes}
}

// Kind reports which case this result holds.
func (r PathResult[P]) Kind() Kind { return r.kind }

// Start returns the invalid start position and true, if this result is
// InvalidStart.
func (r PathResult[P]) Start() (P, bool) {
	if r.kind == KindInvalidStart {
		return r.start, true
	}
	var zero P
	return zero, false
}

// Nodes returns the path's waypoints, whichever case produced them -
// nil for InvalidStart or an UnreachableEnd with no partial path.
func (r PathResult[P]) Nodes() []P { return r.nodes }

// Len is the number of waypoints Nodes() would return.
func (r PathResult[P]) Len() int { return len(r.nodes) }

// Map returns a new result whose waypoints are fn applied to r's waypoint
// list, preserving which case the result was. A result with no waypoint
// list is returned unchanged, without calling fn.
func (r PathResult[P]) Map(fn func([]P) []P) PathResult[P] {
	if r.nodes == nil {
		return r
	}
	return PathResult[P]{kind: r.kind, start: r.start, nodes: fn(r.nodes)}
}

// TimeLength sums the bottleneck-axis travel time (position.SixAxis.TimeTo)
// across consecutive waypoints of a SixAxis path.
func TimeLength(r PathResult[position.SixAxis], speed position.SixAxis) float64 {
	total := 0.0
	nodes := r.Nodes()
	for i := 0; i+1 < len(nodes); i++ {
		total += nodes[i].TimeTo(nodes[i+1], speed)
	}
	return total
}

// Strategy tries to find a path from one position to another, using
// movable to test candidate positions against the fixed immovable scene.
type Strategy[P any] interface {
	FindPath(from, to P, movable Movable[P], immovable Immovable) PathResult[P]
}
