// Package scene defines the part interfaces a microscope model plugs into
// the collision and pathing stack: movable actors that report the space
// they sweep through, a sample chamber with obstruction levels, equipment
// mounted in it, and the sample holders a stage can carry.
package scene

import (
	"github.com/jinderamarak/safestage/pathing"
	"github.com/jinderamarak/safestage/position"
)

// Immovable is re-exported from pathing for call-site ergonomics - a part
// and the strategy moving it agree on the same collider-group instantiation
// without this package needing its own copy of the definition.
type Immovable = pathing.Immovable

// Movable is re-exported from pathing; see pathing.Movable for the contract.
type Movable[P any] = pathing.Movable[P]

// Chamber is the sample chamber enclosing the stage, reported at three
// obstruction levels so pathing can loosen the envelope where the plan
// allows it.
type Chamber interface {
	// Full is the chamber as built, every door and port closed.
	Full() Immovable
	// LessObstructive is the chamber with retractable obstructions (doors,
	// shutters) withdrawn as far as the current configuration allows.
	LessObstructive() Immovable
	// NonObstructive is the chamber with every obstruction that can be
	// removed from consideration removed, leaving only its immovable walls.
	NonObstructive() Immovable
}

// Equipment is a fixed fixture mounted inside the chamber (a detector, a
// pole piece, a gas injector) that never moves once installed.
type Equipment interface {
	Collider() Immovable
}

// Holder carries a sample on the stage. It is swappable at runtime (a
// different holder can be mounted) and the sample itself is optional and
// swappable independently of the holder.
type Holder interface {
	// Clone returns an independent copy of the holder, sample included.
	Clone() Holder
	// Collider is the full footprint of the holder with its current sample.
	Collider() Immovable
	// SwapSample replaces the carried sample. A nil sample removes it.
	SwapSample(sample *Immovable)
}

// Retract is a single linear retract axis (a door, a shutter, an airlock)
// driven independently of the stage's six axes.
type Retract interface {
	Movable[position.LinearState]
}

// Stage is the sample stage itself: it moves on six axes and carries at
// most one holder at a time.
type Stage interface {
	Movable[position.SixAxis]
	// SwapHolder replaces the mounted holder. A nil holder unmounts it.
	SwapHolder(holder Holder)
	// ActiveHolder is the currently mounted holder, or nil if none.
	ActiveHolder() Holder
}
