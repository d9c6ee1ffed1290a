// Package position implements the two pose representations stage motion
// planning works over: SixAxis (three translation + three rotation axes)
// and LinearState (a single 0..1 retract/extend axis).
package position

import (
	"fmt"
	"math"

	"github.com/jinderamarak/safestage/maths"
)

// SixAxis is a pose over three linear axes (Pos) and three rotary axes
// (Rot), used throughout the resolver and pathing layers for both stage
// coordinates and axis speeds/steps/tolerances.
type SixAxis struct {
	Pos maths.Vector3
	Rot maths.Vector3
}

// FromPosition builds a SixAxis with zero rotation.
func FromPosition(position maths.Vector3) SixAxis {
	return SixAxis{Pos: position}
}

// FromRotation builds a SixAxis with zero translation.
func FromRotation(rotation maths.Vector3) SixAxis {
	return SixAxis{Rot: rotation}
}

func (s SixAxis) String() string {
	return fmt.Sprintf(
		"Coordinates{x: %g, y: %g, z: %g, rx: %g (%gdeg), ry: %g (%gdeg), rz: %g (%gdeg)}",
		s.Pos.X(), s.Pos.Y(), s.Pos.Z(),
		s.Rot.X(), s.Rot.X()*180/math.Pi,
		s.Rot.Y(), s.Rot.Y()*180/math.Pi,
		s.Rot.Z(), s.Rot.Z()*180/math.Pi,
	)
}

// Add adds two poses component-wise.
func (s SixAxis) Add(other SixAxis) SixAxis {
	return SixAxis{Pos: s.Pos.Add(other.Pos), Rot: s.Rot.Add(other.Rot)}
}

// Sub subtracts positions directly but takes the shortest angular
// difference per rotation axis, so a subtraction across the +-pi wrap
// never reports more than half a turn.
func (s SixAxis) Sub(other SixAxis) SixAxis {
	return SixAxis{Pos: s.Pos.Sub(other.Pos), Rot: s.ShortestRotation(other)}
}

const twoPi = 2 * math.Pi

func angleDifference(a, b float64) float64 {
	diff := math.Mod(b-a+math.Pi, twoPi) - math.Pi
	if diff < -math.Pi {
		return diff + twoPi
	}
	return diff
}

// ShortestRotation returns, per rotary axis, the signed angular distance
// from s to other (other minus s, wrapped) that never exceeds half a turn
// in magnitude.
func (s SixAxis) ShortestRotation(other SixAxis) maths.Vector3 {
	return maths.NewVector3(
		angleDifference(s.Rot.X(), other.Rot.X()),
		angleDifference(s.Rot.Y(), other.Rot.Y()),
		angleDifference(s.Rot.Z(), other.Rot.Z()),
	)
}

// CloseTo reports whether s and other differ, per axis, by less than the
// corresponding component of tolerance.
func (s SixAxis) CloseTo(other, tolerance SixAxis) bool {
	diff := s.Sub(other).Abs()
	return diff.Pos.X() < tolerance.Pos.X() &&
		diff.Pos.Y() < tolerance.Pos.Y() &&
		diff.Pos.Z() < tolerance.Pos.Z() &&
		diff.Rot.X() < tolerance.Rot.X() &&
		diff.Rot.Y() < tolerance.Rot.Y() &&
		diff.Rot.Z() < tolerance.Rot.Z()
}

// LerpT linearly interpolates from s to other by the same t for both
// position and rotation.
func (s SixAxis) LerpT(other SixAxis, t float64) SixAxis {
	return SixAxis{Pos: s.Pos.Lerp(other.Pos, t), Rot: s.Rot.Lerp(other.Rot, t)}
}

// Abs takes the component-wise absolute value.
func (s SixAxis) Abs() SixAxis {
	return SixAxis{Pos: s.Pos.Abs(), Rot: s.Rot.Abs()}
}

// Dot is the six-component dot product treating Pos and Rot as one
// six-dimensional vector.
func (s SixAxis) Dot(other SixAxis) float64 {
	return s.Pos.Dot(other.Pos) + s.Rot.Dot(other.Rot)
}

// Magnitude is the six-dimensional Euclidean norm of s.
func (s SixAxis) Magnitude() float64 {
	return math.Sqrt(s.Dot(s))
}

// EuclideanTo is the six-dimensional Euclidean distance from s to other.
func (s SixAxis) EuclideanTo(other SixAxis) float64 {
	return other.Sub(s).Magnitude()
}

// ToTime divides every component of s by the matching component of speed,
// converting a distance pose into a duration pose.
func (s SixAxis) ToTime(speed SixAxis) SixAxis {
	return SixAxis{
		Pos: maths.NewVector3(s.Pos.X()/speed.Pos.X(), s.Pos.Y()/speed.Pos.Y(), s.Pos.Z()/speed.Pos.Z()),
		Rot: maths.NewVector3(s.Rot.X()/speed.Rot.X(), s.Rot.Y()/speed.Rot.Y(), s.Rot.Z()/speed.Rot.Z()),
	}
}

// ToDistance multiplies every component of s by the matching component of
// speed, converting a duration pose into a distance pose.
func (s SixAxis) ToDistance(speed SixAxis) SixAxis {
	return SixAxis{
		Pos: maths.NewVector3(s.Pos.X()*speed.Pos.X(), s.Pos.Y()*speed.Pos.Y(), s.Pos.Z()*speed.Pos.Z()),
		Rot: maths.NewVector3(s.Rot.X()*speed.Rot.X(), s.Rot.Y()*speed.Rot.Y(), s.Rot.Z()*speed.Rot.Z()),
	}
}

// TimeTo returns how long, at speed, the slowest of the six axes takes to
// cover the distance from s to other - the bottleneck axis dominates since
// every axis moves concurrently. An axis whose time is NaN (zero distance
// at zero speed, or a NaN input) is skipped; a nonzero distance at zero
// speed gives +Inf. Panics if all six axes are skipped.
func (s SixAxis) TimeTo(other SixAxis, speed SixAxis) float64 {
	pos := s.Pos.Sub(other.Pos).Abs()
	rot := s.ShortestRotation(other)

	times := [6]float64{
		pos.X() / speed.Pos.X(),
		pos.Y() / speed.Pos.Y(),
		pos.Z() / speed.Pos.Z(),
		rot.X() / speed.Rot.X(),
		rot.Y() / speed.Rot.Y(),
		rot.Z() / speed.Rot.Z(),
	}

	best, found := math.Inf(-1), false
	for _, t := range times {
		if math.IsNaN(t) {
			continue
		}
		t = math.Abs(t)
		if t > best {
			best = t
			found = true
		}
	}
	if !found {
		panic(fmt.Sprintf("position: cannot determine TimeTo between %s and %s at speed %s", s, other, speed))
	}
	return best
}

// TimeToPath is the minimum, over every segment of path, of TimeToSegment
// from s - i.e. the time to reach the closest point of the whole path.
func (s SixAxis) TimeToPath(path []SixAxis, speed SixAxis) float64 {
	best := math.Inf(1)
	for i := 0; i+1 < len(path); i++ {
		if t := s.TimeToSegment(path[i], path[i+1], speed); t < best {
			best = t
		}
	}
	return best
}

// TimeToSegment returns the time, at speed, from s to the closest point
// on the segment [start, end].
func (s SixAxis) TimeToSegment(start, end SixAxis, speed SixAxis) float64 {
	ab := end.Sub(start).ToTime(speed)
	ap := s.Sub(start).ToTime(speed)
	dotAPAB := ap.Dot(ab)
	dotABAB := ab.Dot(ab)
	t := dotAPAB / dotABAB

	var closest SixAxis
	if math.IsNaN(t) {
		closest = start
	} else {
		closest = start.LerpT(end, clamp01(t))
	}

	return s.TimeTo(closest, speed)
}

// Stepping returns how many equal steps of at most step's per-axis size
// are needed to go from s to other, rounded up to the slowest axis.
func (s SixAxis) Stepping(other, step SixAxis) int {
	diff := other.Sub(s).Abs()
	steps := [6]float64{
		diff.Pos.X() / step.Pos.X(),
		diff.Pos.Y() / step.Pos.Y(),
		diff.Pos.Z() / step.Pos.Z(),
		diff.Rot.X() / step.Rot.X(),
		diff.Rot.Y() / step.Rot.Y(),
		diff.Rot.Z() / step.Rot.Z(),
	}

	maxSteps, found := 0.0, false
	for _, st := range steps {
		if !math.IsInf(st, 0) && !math.IsNaN(st) {
			if !found || st > maxSteps {
				maxSteps = st
				found = true
			}
		}
	}
	if !found {
		panic("position: Stepping requires at least one finite step size")
	}
	return int(math.Ceil(maxSteps))
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
