package maths

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vector3 is a point or direction in 3D space, backed by mgl64's Vec3.
type Vector3 struct {
	v mgl64.Vec3
}

// NewVector3 builds a Vector3 from its components.
func NewVector3(x, y, z float64) Vector3 {
	return Vector3{v: mgl64.Vec3{x, y, z}}
}

// Zero3 is the zero vector.
func Zero3() Vector3 {
	return Vector3{}
}

func (a Vector3) X() float64 { return a.v[0] }
func (a Vector3) Y() float64 { return a.v[1] }
func (a Vector3) Z() float64 { return a.v[2] }

// Get returns the component along the given axis.
func (a Vector3) Get(axis Axis) float64 {
	return a.v[axis]
}

// Set returns a copy of a with the component along axis replaced.
func (a Vector3) Set(axis Axis, value float64) Vector3 {
	b := a.v
	b[axis] = value
	return Vector3{v: b}
}

// Validate reports an error if any component is NaN, matching the
// construction-time contract the original enforced with debug_assert!.
func (a Vector3) Validate() error {
	if math.IsNaN(a.v[0]) || math.IsNaN(a.v[1]) || math.IsNaN(a.v[2]) {
		return errVectorNaN
	}
	return nil
}

func (a Vector3) Add(b Vector3) Vector3 { return Vector3{v: a.v.Add(b.v)} }
func (a Vector3) Sub(b Vector3) Vector3 { return Vector3{v: a.v.Sub(b.v)} }
func (a Vector3) Scale(s float64) Vector3 { return Vector3{v: a.v.Mul(s)} }
func (a Vector3) Dot(b Vector3) float64 { return a.v.Dot(b.v) }
func (a Vector3) Cross(b Vector3) Vector3 { return Vector3{v: a.v.Cross(b.v)} }
func (a Vector3) Len() float64 { return a.v.Len() }

// Normalize returns a unit vector in the direction of a. The zero vector
// normalizes to itself, matching the teacher's defensive mgl64 usage.
func (a Vector3) Normalize() Vector3 {
	if a.v.ApproxEqual(mgl64.Vec3{0, 0, 0}) {
		return a
	}
	return Vector3{v: a.v.Normalize()}
}

// Abs returns the component-wise absolute value.
func (a Vector3) Abs() Vector3 {
	return NewVector3(math.Abs(a.v[0]), math.Abs(a.v[1]), math.Abs(a.v[2]))
}

// Min3 returns the component-wise minimum of a and b.
func Min3(a, b Vector3) Vector3 {
	return NewVector3(math.Min(a.v[0], b.v[0]), math.Min(a.v[1], b.v[1]), math.Min(a.v[2], b.v[2]))
}

// Max3 returns the component-wise maximum of a and b.
func Max3(a, b Vector3) Vector3 {
	return NewVector3(math.Max(a.v[0], b.v[0]), math.Max(a.v[1], b.v[1]), math.Max(a.v[2], b.v[2]))
}

// Lerp linearly interpolates between a and b by t in [0, 1].
func (a Vector3) Lerp(b Vector3, t float64) Vector3 {
	return Vector3{v: a.v.Add(b.v.Sub(a.v).Mul(t))}
}

// Equal reports exact component equality.
func (a Vector3) Equal(b Vector3) bool {
	return a.v == b.v
}

// ApproxEqual reports component equality within mgl64's default epsilon.
func (a Vector3) ApproxEqual(b Vector3) bool {
	return a.v.ApproxEqual(b.v)
}

// RotateAround rotates a around pivot by rotation.
func (a Vector3) RotateAround(rotation Quaternion, pivot Vector3) Vector3 {
	local := a.Sub(pivot)
	rotated := rotation.RotateVector(local)
	return rotated.Add(pivot)
}
