// Package group implements ColliderGroup, an ordered collection of
// colliders of one concrete kind, with existential (any-with-any)
// collision queries, order-preserving triangle buffering and BVH fan-in.
package group

import (
	"sync"

	"github.com/jinderamarak/safestage/bvh"
	"github.com/jinderamarak/safestage/internal/conc"
	"github.com/jinderamarak/safestage/maths"
)

// ColliderGroup is an ordered, owned slice of colliders of one concrete
// type T. It is the building block the spec calls Immovable when
// instantiated as ColliderGroup[primitive.Collider].
type ColliderGroup[T any] struct {
	items []T
}

// NewColliderGroup builds a group from items, in order.
func NewColliderGroup[T any](items ...T) ColliderGroup[T] {
	return ColliderGroup[T]{items: items}
}

// Items returns the group's members, in order.
func (g ColliderGroup[T]) Items() []T { return g.items }

// Len returns the number of members.
func (g ColliderGroup[T]) Len() int { return len(g.items) }

// Extended returns a new group containing g's members followed by other's.
func (g ColliderGroup[T]) Extended(other ColliderGroup[T]) ColliderGroup[T] {
	merged := make([]T, 0, len(g.items)+len(other.items))
	merged = append(merged, g.items...)
	merged = append(merged, other.items...)
	return ColliderGroup[T]{items: merged}
}

// Extend appends other's members onto g in place.
func (g *ColliderGroup[T]) Extend(other ColliderGroup[T]) {
	g.items = append(g.items, other.items...)
}

// AnyCollides reports whether any member of g collides with any member of
// other, under the supplied collides predicate. Work is fanned out across
// g's members with internal/conc.Task.
func AnyCollides[A, B any](g ColliderGroup[B], other ColliderGroup[A], collides func(B, A) bool) bool {
	if len(g.items) == 0 || len(other.items) == 0 {
		return false
	}

	hits := make([]bool, len(g.items))
	conc.Task(0, len(g.items), func(start, end int) {
		for i := start; i < end; i++ {
			for _, a := range other.items {
				if collides(g.items[i], a) {
					hits[i] = true
					break
				}
			}
		}
	})

	for _, hit := range hits {
		if hit {
			return true
		}
	}
	return false
}

// Collider is satisfied by any type with a same-type overlap test, letting
// CollidesWithSelf avoid passing an explicit predicate for homogeneous
// groups (e.g. ColliderGroup[*bvh.BVH[B]]).
type Collider[T any] interface {
	CollidesWith(other T) bool
}

// CollidesWithSelf is AnyCollides specialized to T's own CollidesWith method.
func CollidesWithSelf[T Collider[T]](g, other ColliderGroup[T]) bool {
	return AnyCollides(g, other, func(a, b T) bool { return a.CollidesWith(b) })
}

// TriangleBuffer flattens every member's own vertex buffer (via bufferOf)
// into one slice, mapped through mapper, preserving both per-member vertex
// ordering and member ordering - grounding the original's
// vertices_keep_ordering guarantee. Collection and mapping are each fanned
// out across members with internal/conc.Task.
func TriangleBuffer[T, O any](g ColliderGroup[T], bufferOf func(T) []maths.Vector3, mapper func(maths.Vector3) O) []O {
	if len(g.items) == 0 {
		return nil
	}

	buffers := make([][]maths.Vector3, len(g.items))
	conc.Task(0, len(g.items), func(start, end int) {
		for i := start; i < end; i++ {
			buffers[i] = bufferOf(g.items[i])
		}
	})

	offsets := make([]int, len(buffers)+1)
	for i, b := range buffers {
		offsets[i+1] = offsets[i] + len(b)
	}

	out := make([]O, offsets[len(buffers)])
	conc.Task(0, len(buffers), func(start, end int) {
		for i := start; i < end; i++ {
			for j, vertex := range buffers[i] {
				out[offsets[i]+j] = mapper(vertex)
			}
		}
	})

	return out
}

// IntoBVH folds every member BVH into a single one via repeated Concat,
// using a parallel divide-and-conquer fan-in instead of a left fold so
// the reduction tree stays balanced and runs across goroutines - the
// original's rayon par_iter().reduce() expressed with plain goroutines,
// since no BVH concatenation in this module needs error propagation.
func IntoBVH[B bvh.Bound[B]](g ColliderGroup[*bvh.BVH[B]]) *bvh.BVH[B] {
	if len(g.items) == 0 {
		panic("group: IntoBVH requires a non-empty group")
	}
	return reduceBVH(g.items)
}

func reduceBVH[B bvh.Bound[B]](items []*bvh.BVH[B]) *bvh.BVH[B] {
	if len(items) == 1 {
		return items[0]
	}

	mid := len(items) / 2
	var left, right *bvh.BVH[B]
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		left = reduceBVH(items[:mid])
	}()
	go func() {
		defer wg.Done()
		right = reduceBVH(items[mid:])
	}()
	wg.Wait()

	return left.Concat(right)
}
