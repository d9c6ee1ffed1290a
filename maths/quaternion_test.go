package maths_test

import (
	"math"
	"testing"

	"github.com/jinderamarak/safestage/maths"
	"github.com/stretchr/testify/assert"
)

func TestQuaternionIdentityRotatesNothing(t *testing.T) {
	identity := maths.IdentityQuaternion()
	v := maths.NewVector3(1, 2, 3)

	assert.True(t, identity.RotateVector(v).ApproxEqual(v))
}

func TestQuaternionFromEulerRotatesAroundZ(t *testing.T) {
	rotation := maths.MustFromEuler(maths.NewVector3(0, 0, math.Pi/2))
	rotated := rotation.RotateVector(maths.NewVector3(1, 0, 0))

	assert.InDelta(t, 0.0, rotated.X(), 1e-9)
	assert.InDelta(t, 1.0, rotated.Y(), 1e-9)
	assert.InDelta(t, 0.0, rotated.Z(), 1e-9)
}

func TestQuaternionFromEulerRejectsNaN(t *testing.T) {
	_, err := maths.FromEuler(maths.NewVector3(math.NaN(), 0, 0))
	assert.Error(t, err)
}

func TestQuaternionFromAxisAngleRejectsDegenerateAxis(t *testing.T) {
	_, err := maths.FromAxisAngle(maths.NewVector3(0, 0, 0), math.Pi)
	assert.Error(t, err)
}

func TestQuaternionToEulerRoundTrips(t *testing.T) {
	euler := maths.NewVector3(0.1, 0.2, 0.3)
	q := maths.MustFromEuler(euler)
	back := q.ToEuler()

	assert.InDelta(t, euler.X(), back.X(), 1e-9)
	assert.InDelta(t, euler.Y(), back.Y(), 1e-9)
	assert.InDelta(t, euler.Z(), back.Z(), 1e-9)
}
