package collision

import (
	"errors"
	"math"
)

var (
	ErrInvalidTileSize = errors.New("collision: tile size must be positive")
	ErrEmptyGrid       = errors.New("collision: grid has no cells")
	ErrRaggedGrid      = errors.New("collision: grid rows differ in length")
)

// Map is a rectangular grid of tile ids with a fixed tile size in pixels.
type Map struct {
	TileSize int
	Width    int
	Height   int
	PxWidth  int
	PxHeight int

	data [][]int
}

func newMap(tileSize int, grid [][]int) (Map, error) {
	if tileSize <= 0 {
		return Map{}, ErrInvalidTileSize
	}
	if len(grid) == 0 || len(grid[0]) == 0 {
		return Map{}, ErrEmptyGrid
	}
	width := len(grid[0])
	data := make([][]int, len(grid))
	for y, row := range grid {
		if len(row) != width {
			return Map{}, ErrRaggedGrid
		}
		data[y] = append([]int(nil), row...)
	}
	return Map{
		TileSize: tileSize,
		Width:    width,
		Height:   len(grid),
		PxWidth:  width * tileSize,
		PxHeight: len(grid) * tileSize,
		data:     data,
	}, nil
}

// GetTile returns the tile id under the pixel position, or 0 outside the grid.
func (m *Map) GetTile(px, py float64) int {
	tx, ty, ok := m.tileIndex(px, py)
	if !ok {
		return 0
	}
	return m.data[ty][tx]
}

// SetTile writes a tile id at the pixel position. Positions outside the grid are ignored.
func (m *Map) SetTile(px, py float64, tile int) {
	tx, ty, ok := m.tileIndex(px, py)
	if !ok {
		return
	}
	m.data[ty][tx] = tile
}

// TileAt returns the id at tile coordinates, or 0 outside the grid.
func (m *Map) TileAt(tx, ty int) int {
	if tx < 0 || ty < 0 || tx >= m.Width || ty >= m.Height {
		return 0
	}
	return m.data[ty][tx]
}

func (m *Map) tileIndex(px, py float64) (int, int, bool) {
	tx := int(math.Floor(px / float64(m.TileSize)))
	ty := int(math.Floor(py / float64(m.TileSize)))
	if tx < 0 || ty < 0 || tx >= m.Width || ty >= m.Height {
		return 0, 0, false
	}
	return tx, ty, true
}
