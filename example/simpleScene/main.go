// Command simpleScene wires up a toy chamber, stage and sample holder and
// asks a resolver.StageResolver to plan a path between two poses, printing
// the resulting waypoints.
package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/jinderamarak/safestage/group"
	"github.com/jinderamarak/safestage/maths"
	"github.com/jinderamarak/safestage/pathing"
	"github.com/jinderamarak/safestage/position"
	"github.com/jinderamarak/safestage/primitive"
	"github.com/jinderamarak/safestage/resolver"
	"github.com/jinderamarak/safestage/scene"
)

func sphere(x, y, z, r float64) primitive.Collider {
	c, err := primitive.NewBuilder().CenterXYZ(x, y, z).Radius(r).Build()
	if err != nil {
		panic(err)
	}
	return c
}

// simpleChamber is an empty box-shaped room: every obstruction level
// reports the same walls since nothing retractable is modeled.
type simpleChamber struct{ walls scene.Immovable }

func (c simpleChamber) Full() scene.Immovable            { return c.walls }
func (c simpleChamber) LessObstructive() scene.Immovable { return c.walls }
func (c simpleChamber) NonObstructive() scene.Immovable  { return c.walls }

// detector is a fixed piece of equipment mounted inside the chamber.
type detector struct{ at scene.Immovable }

func (d detector) Collider() scene.Immovable { return d.at }

// puckHolder carries an optional sample disc on top of a fixed puck body.
type puckHolder struct {
	base   scene.Immovable
	sample *scene.Immovable
}

func (h *puckHolder) Clone() scene.Holder {
	clone := *h
	return &clone
}

func (h *puckHolder) Collider() scene.Immovable {
	if h.sample == nil {
		return h.base
	}
	return h.base.Extended(*h.sample)
}

func (h *puckHolder) SwapSample(sample *scene.Immovable) { h.sample = sample }

// sixAxisStage is the stage's own moving hardware plus whatever holder is
// currently mounted on it.
type sixAxisStage struct{ holder scene.Holder }

func (s *sixAxisStage) MoveTo(p position.SixAxis) scene.Immovable {
	body := group.NewColliderGroup(sphere(p.Pos.X(), p.Pos.Y(), p.Pos.Z(), 0.3))
	if s.holder == nil {
		return body
	}
	return body.Extended(s.holder.Collider())
}

func (s *sixAxisStage) SwapHolder(h scene.Holder)  { s.holder = h }
func (s *sixAxisStage) ActiveHolder() scene.Holder { return s.holder }

func main() {
	chamber := simpleChamber{walls: group.NewColliderGroup[primitive.Collider]()}
	detectorEquipment := detector{at: group.NewColliderGroup(sphere(3, 0, 0, 0.5))}
	stage := &sixAxisStage{}
	holderID := uuid.New()
	holder := &puckHolder{base: group.NewColliderGroup(sphere(0, 0, 0, 0.2))}

	builder := resolver.NewBuilder().
		WithChamber(chamber).
		WithStage(stage).
		WithEquipment(detectorEquipment).
		WithHolder(holderID, holder)

	res, err := builder.BuildStageResolver(resolver.StageResolverConfig{
			DownPoint:     maths.NewVector3(0, -5, 0),
			DownStep:      position.SixAxis{Pos: maths.NewVector3(0.5, 0.5, 0.5), Rot: maths.NewVector3(0.2, 0.2, 0.2)},
			MoveStep:      0.5,
			MoveCost:      1,
			RotateStep:    0.2,
			SampleMin:     maths.NewVector3(-5, -5, -5),
			SampleMax:     maths.NewVector3(5, 5, 5),
			SampleStep:    maths.NewVector3(0.5, 0.5, 0.5),
			SmoothingStep: position.SixAxis{Pos: maths.NewVector3(0.5, 0.5, 0.5), Rot: maths.NewVector3(0.2, 0.2, 0.2)},
		})
	if err != nil {
		panic(err)
	}

	if err := res.SwapHolder(holderID); err != nil {
		panic(err)
	}

	immovable := chamber.Full().Extended(detectorEquipment.Collider())
	from := position.SixAxis{Pos: maths.NewVector3(-4, 0, 0)}
	to := position.SixAxis{Pos: maths.NewVector3(0, 0, 4)}

	if err := res.UpdateState(from, stage, immovable); err != nil {
		panic(err)
	}

	result := res.FindPath(from, to, stage, immovable)
	switch result.Kind() {
	case pathing.KindPath:
		fmt.Printf("found path with %d waypoints:\n", result.Len())
		for i, node := range result.Nodes() {
			fmt.Printf("  %d: %+v\n", i, node.Pos)
		}
	case pathing.KindInvalidStart:
		fmt.Println("start pose collides with the chamber")
	case pathing.KindUnreachableEnd:
		fmt.Printf("could not reach target, got %d waypoints towards it\n", result.Len())
	}
}
