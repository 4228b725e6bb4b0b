package physics

import "math"

type cellKey struct {
	x, y int
}

// SpatialHash is the broad phase. It buckets bodies into square cells and
// hands every overlapping pair on exactly once. Nothing survives between
// two calls to Pairs.
type SpatialHash struct {
	CellSize float64

	cells   map[cellKey][]*Body
	checked map[int]struct{}
}

// NewSpatialHash returns a broad phase with cells of cellSize pixels.
func NewSpatialHash(cellSize float64) *SpatialHash {
	return &SpatialHash{
		CellSize: cellSize,
		cells:    make(map[cellKey][]*Body),
		checked:  make(map[int]struct{}),
	}
}

// Pairs inserts bodies in order and calls fn for every overlapping pair it
// finds. It returns the number of pairs handed to fn.
func (h *SpatialHash) Pairs(bodies []*Body, fn func(a, b *Body)) int {
	clear(h.cells)
	pairs := 0

	for _, body := range bodies {
		if body.Inert() {
			continue
		}
		clear(h.checked)

		xmin := int(math.Floor(body.Pos.X / h.CellSize))
		ymin := int(math.Floor(body.Pos.Y / h.CellSize))
		xmax := int(math.Floor((body.Pos.X+body.Size.X)/h.CellSize)) + 1
		ymax := int(math.Floor((body.Pos.Y+body.Size.Y)/h.CellSize)) + 1

		for x := xmin; x < xmax; x++ {
			for y := ymin; y < ymax; y++ {
				key := cellKey{x, y}
				cell := h.cells[key]
				for _, other := range cell {
					if _, done := h.checked[other.ID]; done || !body.Touches(other) {
						continue
					}
					h.checked[other.ID] = struct{}{}
					pairs++
					fn(body, other)
				}
				h.cells[key] = append(cell, body)
			}
		}
	}
	return pairs
}
