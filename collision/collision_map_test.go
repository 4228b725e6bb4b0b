package collision

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func emptyGrid(w, h int) [][]int {
	grid := make([][]int, h)
	for y := range grid {
		grid[y] = make([]int, w)
	}
	return grid
}

func TestNewCollisionMapValidation(t *testing.T) {
	cases := []struct {
		name     string
		tileSize int
		grid     [][]int
		want     error
	}{
		{"zero_tile_size", 0, emptyGrid(2, 2), ErrInvalidTileSize},
		{"negative_tile_size", -8, emptyGrid(2, 2), ErrInvalidTileSize},
		{"no_rows", 16, nil, ErrEmptyGrid},
		{"no_columns", 16, [][]int{{}}, ErrEmptyGrid},
		{"ragged", 16, [][]int{{0, 0}, {0}}, ErrRaggedGrid},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			m, err := NewCollisionMap(c.tileSize, c.grid, nil)
			assert.ErrorIs(t, err, c.want)
			assert.Nil(t, m)
		})
	}
}

func TestDefaultTileDefs(t *testing.T) {
	defs := DefaultTileDefs()

	assert.Len(t, defs, 48)
	assert.Equal(t, 55, defs.LastSlope())
	assert.Equal(t, TileDef{0, 1, 1, 0, true}, defs[2])
	assert.False(t, defs[12].Solid, "directional tiles are one-way")

	// Copies must not leak into the shared catalogue.
	defs[2] = TileDef{}
	assert.Equal(t, TileDef{0, 1, 1, 0, true}, DefaultTileDefs()[2])
}

func TestTileDefsMergeAndLastSlope(t *testing.T) {
	assert.Equal(t, 1, TileDefs{}.LastSlope())

	merged := DefaultTileDefs().Merge(TileDefs{60: {0, 0, 1, 1, true}})
	assert.Equal(t, 60, merged.LastSlope())

	m, err := NewCollisionMap(16, emptyGrid(4, 4), TileDefs{3: {0, 1, 1, 0, true}})
	require.NoError(t, err)
	assert.Equal(t, 3, m.LastSlope())
	assert.True(t, m.IsSolid(4), "ids past the last slope are solid")
	assert.True(t, m.IsSolid(1))
	assert.False(t, m.IsSolid(2))
}

func TestGetSetTile(t *testing.T) {
	grid := emptyGrid(4, 3)
	grid[1][2] = 7

	m, err := NewCollisionMap(10, grid, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, m.Width)
	assert.Equal(t, 3, m.Height)
	assert.Equal(t, 40, m.PxWidth)
	assert.Equal(t, 30, m.PxHeight)

	assert.Equal(t, 7, m.GetTile(25, 15))
	assert.Equal(t, 0, m.GetTile(-1, 15))
	assert.Equal(t, 0, m.GetTile(25, 300))

	m.SetTile(5, 5, 1)
	assert.Equal(t, 1, m.GetTile(9.9, 9.9))
	assert.Equal(t, 1, m.TileAt(0, 0))

	// Out of bounds writes are ignored.
	m.SetTile(-5, 5, 1)
	m.SetTile(5, 45, 1)
	assert.Equal(t, 0, m.TileAt(0, 2))

	// The map owns its grid.
	grid[0][0] = 9
	assert.Equal(t, 1, m.TileAt(0, 0))
}

func TestNoCollision(t *testing.T) {
	res := NoCollision.Trace(10, 20, 300, -400, 16, 16)
	assert.False(t, res.Collided())
	assert.Equal(t, 310.0, res.Pos.X)
	assert.Equal(t, -380.0, res.Pos.Y)
}
