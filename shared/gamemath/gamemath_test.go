package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStepVelocity(t *testing.T) {
	// Acceleration wins over friction and is clamped.
	assert.Equal(t, 100.0, StepVelocity(1, 90, 50, 10, 100))
	// Friction never flips the sign.
	assert.Equal(t, 0.0, StepVelocity(1, 5, 0, 10, 100))
	assert.Equal(t, -15.0, StepVelocity(0.5, -20, 0, 10, 100))
	// Neither only clamps.
	assert.Equal(t, -100.0, StepVelocity(1, -300, 0, 0, 100))
}

func TestReflectAndProject(t *testing.T) {
	up := Vector{X: 0, Y: -1}
	got := Reflect(Vector{X: 3, Y: 4}, up, 0.5)
	assert.InDelta(t, 1.5, got.X, 1e-9)
	assert.InDelta(t, -2.0, got.Y, 1e-9)

	p := Project(Vector{X: 3, Y: 4}, Vector{X: 2, Y: 0})
	assert.Equal(t, Vector{X: 3, Y: 0}, p)
	assert.Equal(t, Vector{}, Project(Vector{X: 1, Y: 1}, Vector{}))
}

func TestSlopeAngleAndLine(t *testing.T) {
	assert.InDelta(t, math.Pi/2, SlopeAngle(1, 0), 1e-9)
	assert.InDelta(t, ToRad(45), SlopeAngle(1, 1), 1e-9)
	assert.Equal(t, 5.0, LineY(0, 0, 10, 10, 5))
	assert.Equal(t, 3.0, LineY(2, 3, 2, 9, 2))
}

func TestRect(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	assert.True(t, a.Overlaps(Rect{X: 9, Y: 9, W: 5, H: 5}))
	assert.False(t, a.Overlaps(Rect{X: 10, Y: 0, W: 5, H: 5}), "shared edge")
	assert.True(t, a.Contains(0, 0))
	assert.False(t, a.Contains(10, 5))
	assert.Equal(t, Vector{X: 5, Y: 5}, a.Center())
	assert.True(t, Rect{W: 0, H: 3}.Empty())
}
