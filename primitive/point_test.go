package primitive_test

import (
	"math"
	"testing"

	"github.com/jinderamarak/safestage/maths"
	"github.com/jinderamarak/safestage/primitive"
	"github.com/stretchr/testify/assert"
)

func TestPointCollidesWithItself(t *testing.T) {
	p := primitive.NewPoint(maths.NewVector3(0, 0, 0))
	other := primitive.NewPoint(maths.NewVector3(0, 0, 0))

	assert.True(t, p.CollidesWithPoint(other))
}

func TestDifferentPointsDontCollide(t *testing.T) {
	p := primitive.NewPoint(maths.NewVector3(0, 0, 0))
	other := primitive.NewPoint(maths.NewVector3(1, 1, 1))

	assert.False(t, p.CollidesWithPoint(other))
}

func TestPointBoundsAreItsPosition(t *testing.T) {
	p := primitive.NewPoint(maths.NewVector3(1, 2, 3))

	assert.Equal(t, p.Position(), p.Min())
	assert.Equal(t, p.Position(), p.Max())
}

func TestPointTranslate(t *testing.T) {
	p := primitive.NewPoint(maths.NewVector3(1, 2, 3))
	translated := p.Translate(maths.NewVector3(1, 2, 3))

	assert.Equal(t, maths.NewVector3(2, 4, 6), translated.Position())
}

func TestPointRotateAroundPivot(t *testing.T) {
	p := primitive.NewPoint(maths.NewVector3(0, 0, 0))
	pivot := maths.NewVector3(1, 1, 1)
	rotation := maths.MustFromEuler(maths.NewVector3(0, 0, math.Pi/2))

	rotated := p.RotateAround(rotation, pivot)

	assert.InDelta(t, 2.0, rotated.Position().X(), 1e-9)
	assert.InDelta(t, 0.0, rotated.Position().Y(), 1e-9)
	assert.InDelta(t, 0.0, rotated.Position().Z(), 1e-9)
}
