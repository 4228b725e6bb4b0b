package leveldata

import (
	"os"
	"testing"

	"github.com/automoto/tilephys/collision"
	"github.com/automoto/tilephys/shared/gamemath"
	"github.com/lafriks/go-tiled"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadLevelGrid(t *testing.T) {
	level, err := LoadLevel(os.DirFS("testdata"), "levels/level1.tmx")
	require.NoError(t, err)

	assert.Equal(t, "level1", level.Name)
	assert.Equal(t, 16, level.TileSize)
	assert.Equal(t, 128, level.PxWidth)
	assert.Equal(t, 96, level.PxHeight)

	want := [][]int{
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 56, 0},
		{4, 0, 0, 0, 0, 5, 1, 1},
		{1, 1, 1, 1, 1, 1, 1, 1},
	}
	assert.Equal(t, want, level.Grid)
}

func TestLoadLevelTileDefs(t *testing.T) {
	level, err := LoadLevel(os.DirFS("testdata"), "levels/level1.tmx")
	require.NoError(t, err)

	assert.Equal(t, collision.TileDefs{
		56: {X1: 0, Y1: 1, X2: 1, Y2: 0.5, Solid: true},
	}, level.Defs)

	m, err := level.CollisionMap()
	require.NoError(t, err)
	assert.Equal(t, 56, m.LastSlope())
	def, ok := m.Def(5)
	assert.True(t, ok, "built-in catalogue is kept")
	assert.Equal(t, collision.DefaultTileDefs()[5], def)
	assert.Equal(t, 56, m.GetTile(6*16+1, 3*16+1))
}

func TestLoadLevelObjects(t *testing.T) {
	level, err := LoadLevel(os.DirFS("testdata"), "levels/level1.tmx")
	require.NoError(t, err)

	require.Len(t, level.Spawns, 3)

	player := level.Spawns[0]
	assert.Equal(t, "player", player.Kind)
	assert.Equal(t, "player", player.Name)
	assert.Equal(t, 16.0, player.X)
	assert.Equal(t, 48.0, player.Y)

	trigger := level.Spawns[1]
	assert.Equal(t, "trigger", trigger.Kind)
	assert.Equal(t, "spikes", trigger.Settings["target.1"])
	assert.Equal(t, "0.5", trigger.Settings["wait"])
	assert.Equal(t, "32", trigger.Settings["width"])
	assert.Equal(t, "16", trigger.Settings["height"])

	hurt := level.SpawnsOf("hurt")
	require.Len(t, hurt, 1)
	assert.Equal(t, "spikes", hurt[0].Name)
	assert.Equal(t, "5", hurt[0].Settings["damage"])

	assert.Equal(t, []gamemath.Rect{{X: 0, Y: 90, W: 128, H: 6}}, level.DeadZones)
}

func TestLoadLevelErrors(t *testing.T) {
	_, err := LoadLevel(os.DirFS("testdata"), "broken/nocollision.tmx")
	assert.ErrorIs(t, err, ErrNoCollisionLayer)

	_, err = LoadLevel(os.DirFS("testdata"), "levels/missing.tmx")
	assert.Error(t, err)

	_, err = LoadLevel(os.DirFS("testdata"), "broken/infinite.tmx")
	assert.Error(t, err)
}

func TestBuildGridChecksTileCount(t *testing.T) {
	tiles := []*tiled.LayerTile{{Nil: true}, {ID: 0}, {ID: 1}}

	_, err := buildGrid(tiles, 2, 2, collision.TileDefs{})
	assert.ErrorIs(t, err, ErrTileCount)

	_, err = buildGrid(nil, 30, 20, collision.TileDefs{})
	assert.ErrorIs(t, err, ErrTileCount)

	grid, err := buildGrid(append(tiles, nil), 2, 2, collision.TileDefs{})
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0, 1}, {2, 0}}, grid)
}

func TestLoadAllLevels(t *testing.T) {
	levels, names, err := LoadAllLevels(os.DirFS("testdata"), "levels")
	require.NoError(t, err)

	assert.Equal(t, []string{"level1", "level2"}, names)
	require.Contains(t, levels, "level2")
	assert.Equal(t, 32, levels["level2"].TileSize)
	assert.Equal(t, [][]int{{0, 0}, {1, 1}}, levels["level2"].Grid)
	assert.Empty(t, levels["level2"].Spawns)

	_, _, err = LoadAllLevels(os.DirFS("testdata"), "empty")
	assert.Error(t, err)
}
