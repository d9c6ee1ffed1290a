package resolver

import (
	"github.com/google/uuid"
	"github.com/jinderamarak/safestage/maths"
	"github.com/jinderamarak/safestage/position"
	"github.com/jinderamarak/safestage/scene"
)

// Builder constructs a StageResolver/RetractResolver from optional scene
// parts, validating that the parts a resolver actually needs were
// supplied before building it.
type Builder struct {
	chamber   scene.Chamber
	stage     scene.Stage
	retract   scene.Retract
	equipment []scene.Equipment
	holders   map[uuid.UUID]scene.Holder
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{holders: map[uuid.UUID]scene.Holder{}}
}

// WithChamber sets the chamber a resolver plans against.
func (b *Builder) WithChamber(chamber scene.Chamber) *Builder {
	b.chamber = chamber
	return b
}

// WithStage sets the stage a StageResolver moves.
func (b *Builder) WithStage(stage scene.Stage) *Builder {
	b.stage = stage
	return b
}

// WithRetract sets the retract axis a RetractResolver moves.
func (b *Builder) WithRetract(retract scene.Retract) *Builder {
	b.retract = retract
	return b
}

// WithEquipment registers fixed equipment contributing to the immovable
// collision envelope.
func (b *Builder) WithEquipment(equipment ...scene.Equipment) *Builder {
	b.equipment = append(b.equipment, equipment...)
	return b
}

// WithHolder registers a holder under id so StageResolver.SwapHolder can
// mount it later by identifier.
func (b *Builder) WithHolder(id uuid.UUID, holder scene.Holder) *Builder {
	b.holders[id] = holder
	return b
}

// StageResolverConfig tunes the StageResolver a Builder produces.
type StageResolverConfig struct {
	DownPoint     maths.Vector3
	DownStep      position.SixAxis
	MoveStep      float64
	MoveCost      float64
	RotateStep    float64
	SampleMin     maths.Vector3
	SampleMax     maths.Vector3
	SampleStep    maths.Vector3
	SmoothingStep position.SixAxis
}

// BuildStageResolver validates that a chamber and a stage were supplied
// and constructs a StageResolver from the registered holders.
func (b *Builder) BuildStageResolver(cfg StageResolverConfig) (*StageResolver, error) {
	if b.chamber == nil {
		return nil, ErrMissingChamber
	}
	if b.stage == nil {
		return nil, ErrMissingStage
	}

	return NewStageResolver(
		b.stage,
		b.holders,
		cfg.DownPoint,
		cfg.DownStep,
		cfg.MoveStep,
		cfg.MoveCost,
		cfg.RotateStep,
		cfg.SampleMin,
		cfg.SampleMax,
		cfg.SampleStep,
		cfg.SmoothingStep,
	), nil
}

// BuildRetractResolver validates that a chamber and a retract axis were
// supplied and constructs a RetractResolver at the given grid resolution.
func (b *Builder) BuildRetractResolver(resolution int) (*RetractResolver, error) {
	if b.chamber == nil {
		return nil, ErrMissingChamber
	}
	if b.retract == nil {
		return nil, ErrMissingStage
	}

	return NewRetractResolver(resolution), nil
}

// Immovable folds the chamber's full envelope together with every
// registered piece of equipment into the immovable collision set callers
// pass to FindPath/UpdateState.
func (b *Builder) Immovable() scene.Immovable {
	immovable := b.chamber.Full()
	for _, e := range b.equipment {
		immovable = immovable.Extended(e.Collider())
	}
	return immovable
}
