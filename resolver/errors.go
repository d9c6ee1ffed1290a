// Package resolver bundles a scene's parts with a pathing.Strategy and
// post-processing into stateful facades exposing a narrow FindPath/
// UpdateState surface, so callers never touch BVHs, occupancy grids or
// neighbor strategies directly.
package resolver

import "errors"

// ErrInvalidState is returned by UpdateState when the supplied pose already
// collides with the scene's immovable geometry. FindPath reports a
// colliding start through an InvalidStart result instead of an error.
var ErrInvalidState = errors.New("resolver: pose collides with immovable geometry")

// ErrInvalidID is returned when a holder/sample identifier passed to a
// resolver was never registered with it.
var ErrInvalidID = errors.New("resolver: unknown part identifier")

// ErrMissingChamber is returned by Builder when no chamber was supplied.
var ErrMissingChamber = errors.New("resolver: builder has no chamber")

// ErrMissingStage is returned by Builder when the movable part a resolver
// needs (the stage for BuildStageResolver, the retract axis for
// BuildRetractResolver) was never supplied.
var ErrMissingStage = errors.New("resolver: builder has no movable part")
