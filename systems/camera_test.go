package systems

import (
	"testing"

	"github.com/automoto/tilephys/components"
	cfg "github.com/automoto/tilephys/config"
	"github.com/stretchr/testify/assert"
)

func TestClampAxis(t *testing.T) {
	// Level wider than the screen: the view stays inside.
	assert.Equal(t, 320.0, clampAxis(10, 640, 0, 960))
	assert.Equal(t, 640.0, clampAxis(900, 640, 0, 960))
	assert.Equal(t, 500.0, clampAxis(500, 640, 0, 960))
	// Smaller levels are centered.
	assert.Equal(t, 200.0, clampAxis(10, 640, 0, 400))
	// Unknown bounds leave the target alone.
	assert.Equal(t, 10.0, clampAxis(10, 640, 0, 0))
}

func TestPlayerInputFrom(t *testing.T) {
	var in components.InputData
	in.Current[cfg.ActionMoveLeft] = true
	in.Current[cfg.ActionShoot] = true

	got := PlayerInputFrom(&in)
	assert.True(t, got.Left)
	assert.True(t, got.Shoot)
	assert.False(t, got.Right)
	assert.False(t, got.Jump)
}
