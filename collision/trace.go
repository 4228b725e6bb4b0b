package collision

import (
	"math"

	"github.com/automoto/tilephys/shared/gamemath"
)

// extraStep forces one more step whenever the displacement is a multiple of
// the tile size, so the first step can't skip the first tile boundary.
const extraStep = 0.1

// Slope is the line a trace was projected onto: its direction (X, Y) in
// pixels and its unit normal (NX, NY).
type Slope struct {
	X, Y   float64
	NX, NY float64
}

// TraceResult describes where a swept rectangle ended up.
type TraceResult struct {
	CollisionX bool
	CollisionY bool
	Slope      *Slope
	Pos        gamemath.Vector
	// TileX and TileY hold the id of the tile that stopped the trace on that axis.
	TileX int
	TileY int
}

// Collided reports whether the trace hit anything.
func (r TraceResult) Collided() bool {
	return r.CollisionX || r.CollisionY || r.Slope != nil
}

// Trace moves a w*h rectangle at (x, y) by (vx, vy) through the map and
// returns the position it can reach.
func (m *CollisionMap) Trace(x, y, vx, vy, w, h float64) TraceResult {
	res := TraceResult{Pos: gamemath.Vector{X: x, Y: y}}

	ts := float64(m.TileSize)
	steps := int(math.Ceil((math.Max(math.Abs(vx), math.Abs(vy)) + extraStep) / ts))
	if steps <= 1 {
		return m.traceStep(res, x, y, vx, vy, w, h, vx, vy, 0)
	}

	sx := vx / float64(steps)
	sy := vy / float64(steps)
	for i := 0; i < steps && (sx != 0 || sy != 0); i++ {
		res = m.traceStep(res, x, y, sx, sy, w, h, vx, vy, i)

		x, y = res.Pos.X, res.Pos.Y
		if res.CollisionX {
			sx, vx = 0, 0
		}
		if res.CollisionY {
			sy, vy = 0, 0
		}
		if res.Slope != nil {
			break
		}
	}
	return res
}

// traceStep advances res by one step of (vx, vy) starting at (x, y). rvx and
// rvy are the full displacement of the trace, used for the slope tests.
func (m *CollisionMap) traceStep(res TraceResult, x, y, vx, vy, width, height, rvx, rvy float64, step int) TraceResult {
	res.Pos.X += vx
	res.Pos.Y += vy

	ts := float64(m.TileSize)

	// Horizontal (walls)
	if vx != 0 {
		pxOffsetX, tileOffsetX := 0.0, 0.0
		if vx > 0 {
			pxOffsetX = width
		} else {
			tileOffsetX = ts
		}

		firstTileY := max(floorDiv(y, ts), 0)
		lastTileY := min(ceilDiv(y+height, ts), m.Height)
		tileX := floorDiv(res.Pos.X+pxOffsetX, ts)

		// The tile we start in can still hold a line we're about to cross.
		prevTileX := floorDiv(x+pxOffsetX, ts)
		if step > 0 || tileX == prevTileX || prevTileX < 0 || prevTileX >= m.Width {
			prevTileX = -1
		}

		if tileX >= 0 && tileX < m.Width {
			for tileY := firstTileY; tileY < lastTileY; tileY++ {
				if prevTileX != -1 {
					if t := m.data[tileY][prevTileX]; m.isSlope(t) {
						var hit bool
						if res, hit = m.checkTileDef(res, t, x, y, rvx, rvy, width, height, prevTileX, tileY); hit {
							break
						}
					}
				}

				t := m.data[tileY][tileX]
				hit := m.IsSolid(t)
				if !hit && t > 1 {
					res, hit = m.checkTileDef(res, t, x, y, rvx, rvy, width, height, tileX, tileY)
				}
				if !hit {
					continue
				}
				if m.isSlope(t) && res.Slope != nil {
					break
				}

				res.CollisionX = true
				res.TileX = t
				res.Pos.X = float64(tileX)*ts - pxOffsetX + tileOffsetX
				x = res.Pos.X
				rvx = 0
				break
			}
		}
	}

	// Vertical (floor, ceiling)
	if vy != 0 {
		pxOffsetY, tileOffsetY := 0.0, 0.0
		if vy > 0 {
			pxOffsetY = height
		} else {
			tileOffsetY = ts
		}

		firstTileX := max(floorDiv(res.Pos.X, ts), 0)
		lastTileX := min(ceilDiv(res.Pos.X+width, ts), m.Width)
		tileY := floorDiv(res.Pos.Y+pxOffsetY, ts)

		prevTileY := floorDiv(y+pxOffsetY, ts)
		if step > 0 || tileY == prevTileY || prevTileY < 0 || prevTileY >= m.Height {
			prevTileY = -1
		}

		if tileY >= 0 && tileY < m.Height {
			for tileX := firstTileX; tileX < lastTileX; tileX++ {
				if prevTileY != -1 {
					if t := m.data[prevTileY][tileX]; m.isSlope(t) {
						var hit bool
						if res, hit = m.checkTileDef(res, t, x, y, rvx, rvy, width, height, tileX, prevTileY); hit {
							break
						}
					}
				}

				t := m.data[tileY][tileX]
				hit := m.IsSolid(t)
				if !hit && t > 1 {
					res, hit = m.checkTileDef(res, t, x, y, rvx, rvy, width, height, tileX, tileY)
				}
				if !hit {
					continue
				}
				if m.isSlope(t) && res.Slope != nil {
					break
				}

				res.CollisionY = true
				res.TileY = t
				res.Pos.Y = float64(tileY)*ts - pxOffsetY + tileOffsetY
				break
			}
		}
	}

	return res
}

// checkTileDef tests the rectangle moved by (vx, vy) from (x, y) against the
// line of tile t at (tileX, tileY). When the rectangle can slide along the
// line it is projected out and the slope recorded in the returned result.
func (m *CollisionMap) checkTileDef(res TraceResult, t int, x, y, vx, vy, width, height float64, tileX, tileY int) (TraceResult, bool) {
	def, ok := m.defs[t]
	if !ok {
		return res, false
	}

	ts := float64(m.TileSize)
	lx := (float64(tileX) + def.X1) * ts
	ly := (float64(tileY) + def.Y1) * ts
	lvx := (def.X2 - def.X1) * ts
	lvy := (def.Y2 - def.Y1) * ts

	// Box corner to test, relative to the line start.
	tx := x + vx - lx
	if lvy < 0 {
		tx += width
	}
	ty := y + vy - ly
	if lvx > 0 {
		ty += height
	}

	// In front of the line?
	if lvx*ty-lvy*tx <= 0 {
		return res, false
	}

	// Lines only block from one side.
	if vx*-lvy+vy*lvx < 0 {
		return res, def.Solid
	}

	length := math.Sqrt(lvx*lvx + lvy*lvy)
	nx := lvy / length
	ny := -lvx / length

	proj := tx*nx + ty*ny
	px := nx * proj
	py := ny * proj

	// Projecting out further than we moved in: full tile for solid tiles,
	// non-solid tiles only if we started in front of the line.
	if px*px+py*py >= vx*vx+vy*vy {
		return res, def.Solid || lvx*(ty-vy)-lvy*(tx-vx) < 0.5
	}

	res.Pos.X = x + vx - px
	res.Pos.Y = y + vy - py
	res.Slope = &Slope{X: lvx, Y: lvy, NX: nx, NY: ny}
	return res, true
}

func (m *CollisionMap) isSlope(t int) bool {
	return t > 1 && t <= m.lastSlope
}

func floorDiv(v, size float64) int {
	return int(math.Floor(v / size))
}

func ceilDiv(v, size float64) int {
	return int(math.Ceil(v / size))
}
