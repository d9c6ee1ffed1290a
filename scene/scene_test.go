package scene_test

import (
	"testing"

	"github.com/jinderamarak/safestage/group"
	"github.com/jinderamarak/safestage/maths"
	"github.com/jinderamarak/safestage/position"
	"github.com/jinderamarak/safestage/primitive"
	"github.com/jinderamarak/safestage/scene"
	"github.com/stretchr/testify/assert"
)

func sphereCollider(x, y, z, r float64) primitive.Collider {
	c, err := primitive.NewBuilder().
		CenterXYZ(x, y, z).
		Radius(r).
		Build()
	if err != nil {
		panic(err)
	}
	return c
}

type testChamber struct{ full, less, none scene.Immovable }

func (c testChamber) Full() scene.Immovable            { return c.full }
func (c testChamber) LessObstructive() scene.Immovable { return c.less }
func (c testChamber) NonObstructive() scene.Immovable  { return c.none }

func TestChamberReportsThreeLevels(t *testing.T) {
	full := group.NewColliderGroup(sphereCollider(0, 0, 0, 1))
	less := group.NewColliderGroup(sphereCollider(0, 0, 0, 0.5))
	none := group.NewColliderGroup[primitive.Collider]()

	c := testChamber{full: full, less: less, none: none}
	assert.Equal(t, 1, c.Full().Len())
	assert.Equal(t, 1, c.LessObstructive().Len())
	assert.Equal(t, 0, c.NonObstructive().Len())
}

type testEquipment struct{ at scene.Immovable }

func (e testEquipment) Collider() scene.Immovable { return e.at }

func TestEquipmentIsFixed(t *testing.T) {
	e := testEquipment{at: group.NewColliderGroup(sphereCollider(1, 1, 1, 1))}
	assert.Equal(t, 1, e.Collider().Len())
}

type testHolder struct {
	base   scene.Immovable
	sample *scene.Immovable
}

func (h *testHolder) Clone() scene.Holder {
	clone := *h
	return &clone
}

func (h *testHolder) Collider() scene.Immovable {
	if h.sample == nil {
		return h.base
	}
	return h.base.Extended(*h.sample)
}

func (h *testHolder) SwapSample(sample *scene.Immovable) {
	h.sample = sample
}

func TestHolderCollidesSampleInAndOut(t *testing.T) {
	h := &testHolder{base: group.NewColliderGroup(sphereCollider(0, 0, 0, 1))}
	assert.Equal(t, 1, h.Collider().Len())

	sample := group.NewColliderGroup(sphereCollider(0, 0, 5, 0.2))
	h.SwapSample(&sample)
	assert.Equal(t, 2, h.Collider().Len())

	clone := h.Clone()
	h.SwapSample(nil)
	assert.Equal(t, 1, h.Collider().Len())
	assert.Equal(t, 2, clone.Collider().Len())
}

type testRetract struct{}

func (testRetract) MoveTo(p position.LinearState) scene.Immovable {
	return group.NewColliderGroup(sphereCollider(0, 0, p.AsRelative(), 1))
}

func TestRetractMovesAlongRelativeAxis(t *testing.T) {
	var r scene.Retract = testRetract{}
	moved := r.MoveTo(position.Relative(0.5))
	assert.Equal(t, 1, moved.Len())
}

type testStage struct{ holder scene.Holder }

func (s *testStage) MoveTo(p position.SixAxis) scene.Immovable {
	base := group.NewColliderGroup(sphereCollider(p.Pos.X(), p.Pos.Y(), p.Pos.Z(), 1))
	if s.holder == nil {
		return base
	}
	return base.Extended(s.holder.Collider())
}

func (s *testStage) SwapHolder(h scene.Holder) { s.holder = h }
func (s *testStage) ActiveHolder() scene.Holder { return s.holder }

func TestStageCarriesActiveHolder(t *testing.T) {
	s := &testStage{}
	assert.Nil(t, s.ActiveHolder())

	h := &testHolder{base: group.NewColliderGroup(sphereCollider(0, 0, 0, 1))}
	s.SwapHolder(h)
	assert.Same(t, scene.Holder(h), s.ActiveHolder())

	moved := s.MoveTo(position.SixAxis{Pos: maths.NewVector3(1, 2, 3)})
	assert.Equal(t, 2, moved.Len())
}
