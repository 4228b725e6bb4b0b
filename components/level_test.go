package components

import (
	"testing"

	cfg "github.com/automoto/tilephys/config"
	"github.com/stretchr/testify/assert"
)

func TestLevelSelection(t *testing.T) {
	var empty LevelData
	assert.Equal(t, "", empty.Current())
	assert.Equal(t, "", empty.Next())

	d := LevelData{Names: []string{"level1", "level2"}}
	assert.Equal(t, "level1", d.Current())
	assert.Equal(t, "level2", d.Next())
	assert.Equal(t, "level1", d.Next())

	assert.True(t, d.Select("level2"))
	assert.Equal(t, 1, d.Index)
	assert.False(t, d.Select("level9"))
	assert.Equal(t, "level2", d.Current())
}

func TestInputAction(t *testing.T) {
	var in InputData
	in.Current[cfg.ActionJump] = true
	assert.Equal(t, ActionState{Pressed: true, JustPressed: true}, in.Action(cfg.ActionJump))

	in.Previous = in.Current
	assert.Equal(t, ActionState{Pressed: true}, in.Action(cfg.ActionJump))

	in.Current[cfg.ActionJump] = false
	assert.Equal(t, ActionState{JustReleased: true}, in.Action(cfg.ActionJump))
}
