package collision

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ts = 32

// floorMap is a 10x10 map with row 5 solid.
func floorMap(t *testing.T) *CollisionMap {
	t.Helper()
	grid := emptyGrid(10, 10)
	for x := range grid[5] {
		grid[5][x] = 1
	}
	m, err := NewCollisionMap(ts, grid, nil)
	require.NoError(t, err)
	return m
}

func TestTraceZeroMotion(t *testing.T) {
	m := floorMap(t)
	for _, pos := range [][2]float64{{0, 0}, {100, 10}, {144, 144}, {33.5, 12.25}} {
		res := m.Trace(pos[0], pos[1], 0, 0, 16, 16)
		assert.Equal(t, pos[0], res.Pos.X)
		assert.Equal(t, pos[1], res.Pos.Y)
		assert.False(t, res.CollisionX)
		assert.False(t, res.CollisionY)
		assert.Nil(t, res.Slope)
	}
}

func TestTraceFloorStop(t *testing.T) {
	m := floorMap(t)

	res := m.Trace(100, 0, 0, 500, 16, 16)
	assert.True(t, res.CollisionY)
	assert.False(t, res.CollisionX)
	assert.Equal(t, 144.0, res.Pos.Y)
	assert.Equal(t, 100.0, res.Pos.X)
	assert.Equal(t, 1, res.TileY)
}

func TestTraceNoTunneling(t *testing.T) {
	m := floorMap(t)

	for _, v := range []float64{10, 50, 100, 145, 200, 500, 1000, 5000, 20000} {
		t.Run(fmt.Sprintf("down_%g", v), func(t *testing.T) {
			res := m.Trace(100, 0, 0, v, 16, 16)
			assert.InDelta(t, math.Min(v, 144), res.Pos.Y, 1e-9)
			assert.Equal(t, v > 144, res.CollisionY)
			assert.LessOrEqual(t, res.Pos.Y+16, 5.0*ts)
		})
	}

	// Ceiling: row 5 from below.
	for _, v := range []float64{100, 400, 9000} {
		t.Run(fmt.Sprintf("up_%g", v), func(t *testing.T) {
			res := m.Trace(100, 250, 0, -v, 16, 16)
			assert.True(t, res.CollisionY)
			assert.Equal(t, 6.0*ts, res.Pos.Y)
		})
	}
}

func TestTraceWalls(t *testing.T) {
	grid := emptyGrid(10, 10)
	for y := range grid {
		grid[y][5] = 1
	}
	m, err := NewCollisionMap(ts, grid, nil)
	require.NoError(t, err)

	for _, v := range []float64{150, 300, 1200} {
		right := m.Trace(0, 40, v, 0, 16, 16)
		assert.True(t, right.CollisionX)
		assert.Equal(t, 5.0*ts-16, right.Pos.X)

		left := m.Trace(300, 40, -v, 0, 16, 16)
		assert.True(t, left.CollisionX)
		assert.Equal(t, 6.0*ts, left.Pos.X)
	}

	// A blocked axis doesn't stop the other one.
	diag := m.Trace(100, 40, 300, 60, 16, 16)
	assert.True(t, diag.CollisionX)
	assert.False(t, diag.CollisionY)
	assert.Equal(t, 144.0, diag.Pos.X)
	assert.Greater(t, diag.Pos.Y, 40.0)
}

func slopeLineY(tileX, tileY int, x float64) float64 {
	return float64(tileY*ts) + ts*(1-(x-float64(tileX*ts))/ts)
}

func TestTraceSlopeLanding(t *testing.T) {
	grid := emptyGrid(10, 10)
	grid[5][3] = 2
	for x := range grid[6] {
		grid[6][x] = 1
	}
	m, err := NewCollisionMap(ts, grid, nil)
	require.NoError(t, err)

	for _, startX := range []float64{96, 100, 104, 110} {
		t.Run(fmt.Sprintf("x_%g", startX), func(t *testing.T) {
			x, y := startX, 100.0
			var res TraceResult
			for i := 0; i < 20; i++ {
				res = m.Trace(x, y, 0, 20, 16, 16)
				x, y = res.Pos.X, res.Pos.Y
				if res.Slope != nil {
					break
				}
			}

			require.NotNil(t, res.Slope)
			assert.False(t, res.CollisionY)

			// The right corner leads on a slope rising to the right.
			cornerX := res.Pos.X + 16
			assert.InDelta(t, slopeLineY(3, 5, cornerX), res.Pos.Y+16, 1e-9)
			assert.InDelta(t, -math.Sqrt2/2, res.Slope.NX, 1e-12)
			assert.InDelta(t, -math.Sqrt2/2, res.Slope.NY, 1e-12)
			assert.Equal(t, 32.0, res.Slope.X)
			assert.Equal(t, -32.0, res.Slope.Y)
		})
	}
}

func TestTraceOneWayLine(t *testing.T) {
	grid := emptyGrid(10, 10)
	grid[5][3] = 12 // line along the top edge, solid from above only
	m, err := NewCollisionMap(ts, grid, nil)
	require.NoError(t, err)

	t.Run("lands_from_above", func(t *testing.T) {
		res := m.Trace(100, 130, 0, 20, 16, 16)
		require.NotNil(t, res.Slope)
		assert.Equal(t, 144.0, res.Pos.Y)
		assert.Equal(t, 0.0, res.Slope.NX)
		assert.Equal(t, -1.0, res.Slope.NY)
	})

	t.Run("passes_from_below", func(t *testing.T) {
		res := m.Trace(100, 170, 0, -30, 16, 16)
		assert.False(t, res.Collided())
		assert.Equal(t, 140.0, res.Pos.Y)
	})
}

func TestTraceUndefinedSlopeIsOpen(t *testing.T) {
	grid := emptyGrid(10, 10)
	grid[5][3] = 7
	grid[5][4] = 11
	m, err := NewCollisionMap(ts, grid, TileDefs{10: {0, 1, 1, 0, true}})
	require.NoError(t, err)

	// 7 has no def: open. 11 is past the last slope: solid.
	res := m.Trace(100, 100, 0, 100, 16, 16)
	assert.False(t, res.Collided())
	assert.Equal(t, 200.0, res.Pos.Y)

	res = m.Trace(132, 100, 0, 100, 16, 16)
	assert.True(t, res.CollisionY)
	assert.Equal(t, 144.0, res.Pos.Y)
	assert.Equal(t, 11, res.TileY)
}

func TestTraceOutsideGridIsOpen(t *testing.T) {
	m := floorMap(t)

	res := m.Trace(-100, 0, -50, 500, 16, 16)
	assert.False(t, res.CollisionX)
	assert.False(t, res.CollisionY)
	assert.Equal(t, -150.0, res.Pos.X)
}

func TestTraceBlockedAxisStaysBlocked(t *testing.T) {
	// A single wall tile: once X stops against it, the rest of the
	// trace must not slide X past it when Y drops below the tile.
	grid := emptyGrid(10, 10)
	grid[1][5] = 1
	m, err := NewCollisionMap(ts, grid, nil)
	require.NoError(t, err)

	res := m.Trace(140, 40, 60, 200, 16, 16)
	assert.True(t, res.CollisionX)
	assert.False(t, res.CollisionY)
	assert.Equal(t, 1, res.TileX)
	assert.Equal(t, 5.0*ts-16, res.Pos.X)
	assert.InDelta(t, 240.0, res.Pos.Y, 1e-9)
}

func TestTraceStopsOnFirstSlopeContact(t *testing.T) {
	grid := emptyGrid(10, 10)
	grid[5][3] = 2
	for x := range grid[6] {
		grid[6][x] = 1
	}
	m, err := NewCollisionMap(ts, grid, nil)
	require.NoError(t, err)

	// Three steps; the second one lands on the slope and ends the trace.
	res := m.Trace(100, 100, 0, 80, 16, 16)
	require.NotNil(t, res.Slope)
	assert.False(t, res.CollisionY)

	cornerX := res.Pos.X + 16
	assert.InDelta(t, slopeLineY(3, 5, cornerX), res.Pos.Y+16, 1e-9)
	assert.InDelta(t, 100-76.0/3, res.Pos.X, 1e-9)
}

func TestTraceSlopeInStartingColumn(t *testing.T) {
	grid := emptyGrid(10, 10)
	grid[5][3] = 2
	m, err := NewCollisionMap(ts, grid, nil)
	require.NoError(t, err)

	// The right edge starts in the slope's column above the line and
	// crosses into the empty column to the right in one step.
	res := m.Trace(100, 154, 20, 0, 16, 16)
	require.NotNil(t, res.Slope)
	assert.False(t, res.CollisionX)
	assert.InDelta(t, 111.0, res.Pos.X, 1e-9)
	assert.InDelta(t, 145.0, res.Pos.Y, 1e-9)
	assert.InDelta(t, slopeLineY(3, 5, res.Pos.X+16), res.Pos.Y+16, 1e-9)
}

func TestTraceOneWayLineTolerance(t *testing.T) {
	grid := emptyGrid(10, 10)
	grid[5][3] = 12
	m, err := NewCollisionMap(ts, grid, nil)
	require.NoError(t, err)

	cases := []struct {
		name    string
		y       float64
		blocked bool
		wantY   float64
	}{
		{"resting_on_line", 144, true, 144},
		{"just_behind_line", 144.01, true, 144},
		{"well_behind_line", 150, false, 170},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			res := m.Trace(100, c.y, 0, 20, 16, 16)
			assert.Equal(t, c.blocked, res.CollisionY)
			assert.Nil(t, res.Slope)
			assert.InDelta(t, c.wantY, res.Pos.Y, 1e-9)
			if c.blocked {
				assert.Equal(t, 12, res.TileY)
			}
		})
	}
}

func TestTraceSlopeProjectionUsesWholeDisplacement(t *testing.T) {
	grid := emptyGrid(10, 10)
	grid[5][3] = 2
	m, err := NewCollisionMap(ts, grid, nil)
	require.NoError(t, err)

	// The slope test projects the corner reached by the whole trace, so a
	// fast fall is pushed out along the normal by far more than one step.
	res := m.Trace(100, 100, 0, 400, 16, 16)
	require.NotNil(t, res.Slope)
	assert.Less(t, res.Pos.X, 0.0)
	assert.InDelta(t, slopeLineY(3, 5, res.Pos.X+16), res.Pos.Y+16, 1e-9)
}
