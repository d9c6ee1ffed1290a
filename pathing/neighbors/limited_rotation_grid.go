package neighbors

import (
	"github.com/jinderamarak/safestage/maths"
	"github.com/jinderamarak/safestage/position"
)

// LimitedRotationGrid steps translation on all three axes and rotation on
// all three axes. The rotation bound of every axis is the single angle
// Start (see NewLimitedRotationGrid): a rotational neighbour is current-step
// raised to at least Start, or current+step lowered to at most Start. End
// only decides whether an axis is stepped at all; an axis whose Start
// equals its End is not.
type LimitedRotationGrid struct {
	Step    position.SixAxis
	Start   maths.Vector3
	End     maths.Vector3
	closest maths.Vector3
}

// NewLimitedRotationGrid builds a LimitedRotationGrid. Its closest bound is
// start plus the shortest rotation from start to start, which is start
// itself, so the stepped rotation range of every axis collapses to start.
func NewLimitedRotationGrid(step position.SixAxis, start, end maths.Vector3) LimitedRotationGrid {
	diff := position.FromRotation(start).ShortestRotation(position.FromRotation(start))
	return LimitedRotationGrid{Step: step, Start: start, End: end, closest: start.Add(diff)}
}

// rotationAxisOptions returns the one or two neighboring rotation values
// reachable from current along a single axis, given the step size and the
// [start, actualEnd] bound for that axis. Both return values nil means the
// axis isn't stepped at all (zero step, or start == end).
func rotationAxisOptions(step, current, start, end, actualEnd float64) (*float64, *float64) {
	if step == 0.0 || start == end {
		return nil, nil
	}

	lower, upper := start, actualEnd
	if lower > upper {
		lower, upper = upper, lower
	}

	switch current {
	case lower:
		v := min(upper, current+step)
		return &v, nil
	case upper:
		v := max(lower, current-step)
		return &v, nil
	default:
		a := max(lower, current-step)
		b := min(upper, current+step)
		return &a, &b
	}
}

func (g LimitedRotationGrid) Neighbors(current position.SixAxis) []position.SixAxis {
	pos, rot := current.Pos, current.Rot
	step := g.Step
	out := []position.SixAxis{
		{Pos: maths.NewVector3(pos.X()+step.Pos.X(), pos.Y(), pos.Z()), Rot: rot},
		{Pos: maths.NewVector3(pos.X()-step.Pos.X(), pos.Y(), pos.Z()), Rot: rot},
		{Pos: maths.NewVector3(pos.X(), pos.Y()+step.Pos.Y(), pos.Z()), Rot: rot},
		{Pos: maths.NewVector3(pos.X(), pos.Y()-step.Pos.Y(), pos.Z()), Rot: rot},
		{Pos: maths.NewVector3(pos.X(), pos.Y(), pos.Z()+step.Pos.Z()), Rot: rot},
		{Pos: maths.NewVector3(pos.X(), pos.Y(), pos.Z()-step.Pos.Z()), Rot: rot},
	}

	if a, b := rotationAxisOptions(step.Rot.X(), rot.X(), g.Start.X(), g.End.X(), g.closest.X()); a != nil {
		out = append(out, position.SixAxis{Pos: pos, Rot: maths.NewVector3(*a, rot.Y(), rot.Z())})
		if b != nil {
			out = append(out, position.SixAxis{Pos: pos, Rot: maths.NewVector3(*b, rot.Y(), rot.Z())})
		}
	}
	if a, b := rotationAxisOptions(step.Rot.Y(), rot.Y(), g.Start.Y(), g.End.Y(), g.closest.Y()); a != nil {
		out = append(out, position.SixAxis{Pos: pos, Rot: maths.NewVector3(rot.X(), *a, rot.Z())})
		if b != nil {
			out = append(out, position.SixAxis{Pos: pos, Rot: maths.NewVector3(rot.X(), *b, rot.Z())})
		}
	}
	if a, b := rotationAxisOptions(step.Rot.Z(), rot.Z(), g.Start.Z(), g.End.Z(), g.closest.Z()); a != nil {
		out = append(out, position.SixAxis{Pos: pos, Rot: maths.NewVector3(rot.X(), rot.Y(), *a)})
		if b != nil {
			out = append(out, position.SixAxis{Pos: pos, Rot: maths.NewVector3(rot.X(), rot.Y(), *b)})
		}
	}

	return out
}
