package maths

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Quaternion is a unit quaternion representing a rotation, backed by
// mgl64's Quat. The zero value has all four components zero and is not a
// valid rotation; use IdentityQuaternion for the identity.
type Quaternion struct {
	q mgl64.Quat
}

// IdentityQuaternion returns the rotation that leaves every vector unchanged.
func IdentityQuaternion() Quaternion {
	return Quaternion{q: mgl64.QuatIdent()}
}

// NewQuaternion builds a quaternion from raw components, skipping the
// NaN guard; prefer FromAxisAngle or FromEuler for user-facing construction.
func NewQuaternion(w, x, y, z float64) Quaternion {
	return Quaternion{q: mgl64.Quat{W: w, V: mgl64.Vec3{x, y, z}}}
}

// FromAxisAngle builds a unit quaternion rotating by angle radians around axis.
// Returns an error if axis is degenerate (zero length) or angle is NaN.
func FromAxisAngle(axis Vector3, angle float64) (Quaternion, error) {
	if math.IsNaN(angle) {
		return Quaternion{}, errQuaternionNaN
	}
	if axis.Len() == 0 {
		return Quaternion{}, errQuaternionDegenerateAxis
	}
	return Quaternion{q: mgl64.QuatRotate(angle, axis.v)}, nil
}

// FromEuler builds a rotation from intrinsic X-Y-Z (roll-pitch-yaw) Euler
// angles in radians, following the right-hand-thumb convention: positive
// angles rotate counter-clockwise when the axis points at the viewer.
func FromEuler(euler Vector3) (Quaternion, error) {
	if err := euler.Validate(); err != nil {
		return Quaternion{}, errQuaternionNaN
	}
	qx := mgl64.QuatRotate(euler.X(), mgl64.Vec3{1, 0, 0})
	qy := mgl64.QuatRotate(euler.Y(), mgl64.Vec3{0, 1, 0})
	qz := mgl64.QuatRotate(euler.Z(), mgl64.Vec3{0, 0, 1})
	return Quaternion{q: qz.Mul(qy).Mul(qx)}, nil
}

// MustFromEuler is FromEuler, panicking on NaN input. Reserved for tests
// and call sites that already validated their input.
func MustFromEuler(euler Vector3) Quaternion {
	q, err := FromEuler(euler)
	if err != nil {
		panic(err)
	}
	return q
}

// ToEuler recovers intrinsic X-Y-Z Euler angles in radians.
func (q Quaternion) ToEuler() Vector3 {
	w, x, y, z := q.q.W, q.q.V[0], q.q.V[1], q.q.V[2]

	sinrCosp := 2 * (w*x + y*z)
	cosrCosp := 1 - 2*(x*x+y*y)
	roll := math.Atan2(sinrCosp, cosrCosp)

	sinp := 2 * (w*y - z*x)
	var pitch float64
	if math.Abs(sinp) >= 1 {
		pitch = math.Copysign(math.Pi/2, sinp)
	} else {
		pitch = math.Asin(sinp)
	}

	sinyCosp := 2 * (w*z + x*y)
	cosyCosp := 1 - 2*(y*y+z*z)
	yaw := math.Atan2(sinyCosp, cosyCosp)

	return NewVector3(roll, pitch, yaw)
}

// Mul composes two rotations: applying the result is the same as applying
// b first, then a (Hamilton product, a*b).
func (a Quaternion) Mul(b Quaternion) Quaternion {
	return Quaternion{q: a.q.Mul(b.q)}
}

// Conjugate returns the inverse rotation for a unit quaternion.
func (a Quaternion) Conjugate() Quaternion {
	return Quaternion{q: a.q.Conjugate()}
}

// RotateVector applies the rotation to v.
func (a Quaternion) RotateVector(v Vector3) Vector3 {
	return Vector3{v: a.q.Rotate(v.v)}
}

// Equal reports exact component equality.
func (a Quaternion) Equal(b Quaternion) bool {
	return a.q == b.q
}

// ApproxEqual reports component equality within mgl64's default epsilon.
func (a Quaternion) ApproxEqual(b Quaternion) bool {
	return a.q.ApproxEqual(b.q)
}
