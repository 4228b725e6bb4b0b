// Package collision implements the static tile collision map: the slope tile
// catalogue, pixel accessors for the tile grid and the swept Trace query.
// It has no dependencies on ebitengine or donburi so both the viewer and the
// headless server can use it.
package collision

// TileDef describes the line boundary of a slope tile in unit tile space
// (0..1). Solid reports whether the area behind the line is filled. Non-solid
// defs are one-way lines that only collide when entered from the front.
type TileDef struct {
	X1, Y1 float64
	X2, Y2 float64
	Solid  bool
}

// TileDefs maps tile ids (2 and up) to their line definition.
type TileDefs map[int]TileDef

const (
	half     = 1.0 / 2
	third    = 1.0 / 3
	twoThird = 2.0 / 3
	solid    = true
	nonSolid = false
)

var defaultTileDefs = TileDefs{
	// 15 NE
	5: {0, 1, 1, twoThird, solid},
	6: {0, twoThird, 1, third, solid},
	7: {0, third, 1, 0, solid},
	// 22 NE
	3: {0, 1, 1, half, solid},
	4: {0, half, 1, 0, solid},
	// 45 NE
	2: {0, 1, 1, 0, solid},
	// 67 NE
	10: {half, 1, 1, 0, solid},
	21: {0, 1, half, 0, solid},
	// 75 NE
	32: {twoThird, 1, 1, 0, solid},
	43: {third, 1, twoThird, 0, solid},
	54: {0, 1, third, 0, solid},

	// 15 SE
	27: {0, 0, 1, third, solid},
	28: {0, third, 1, twoThird, solid},
	29: {0, twoThird, 1, 1, solid},
	// 22 SE
	25: {0, 0, 1, half, solid},
	26: {0, half, 1, 1, solid},
	// 45 SE
	24: {0, 0, 1, 1, solid},
	// 67 SE
	11: {0, 0, half, 1, solid},
	22: {half, 0, 1, 1, solid},
	// 75 SE
	33: {0, 0, third, 1, solid},
	44: {third, 0, twoThird, 1, solid},
	55: {twoThird, 0, 1, 1, solid},

	// 15 NW
	16: {1, third, 0, 0, solid},
	17: {1, twoThird, 0, third, solid},
	18: {1, 1, 0, twoThird, solid},
	// 22 NW
	14: {1, half, 0, 0, solid},
	15: {1, 1, 0, half, solid},
	// 45 NW
	13: {1, 1, 0, 0, solid},
	// 67 NW
	8:  {half, 1, 0, 0, solid},
	19: {1, 1, half, 0, solid},
	// 75 NW
	30: {third, 1, 0, 0, solid},
	41: {twoThird, 1, third, 0, solid},
	52: {1, 1, twoThird, 0, solid},

	// 15 SW
	38: {1, twoThird, 0, 1, solid},
	39: {1, third, 0, twoThird, solid},
	40: {1, 0, 0, third, solid},
	// 22 SW
	36: {1, half, 0, 1, solid},
	37: {1, 0, 0, half, solid},
	// 45 SW
	35: {1, 0, 0, 1, solid},
	// 67 SW
	9:  {1, 0, half, 1, solid},
	20: {half, 0, 0, 1, solid},
	// 75 SW
	31: {1, 0, twoThird, 1, solid},
	42: {twoThird, 0, third, 1, solid},
	53: {third, 0, 0, 1, solid},

	// One-way lines: pass through from behind, collide from the front.
	12: {0, 0, 1, 0, nonSolid}, // go N
	23: {1, 1, 0, 1, nonSolid}, // go S
	34: {1, 0, 1, 1, nonSolid}, // go E
	45: {0, 1, 0, 0, nonSolid}, // go W
}

// DefaultTileDefs returns a copy of the built-in slope catalogue.
func DefaultTileDefs() TileDefs {
	defs := make(TileDefs, len(defaultTileDefs))
	for id, def := range defaultTileDefs {
		defs[id] = def
	}
	return defs
}

// Merge returns a copy of d with every entry of overrides applied on top.
func (d TileDefs) Merge(overrides TileDefs) TileDefs {
	out := make(TileDefs, len(d)+len(overrides))
	for id, def := range d {
		out[id] = def
	}
	for id, def := range overrides {
		out[id] = def
	}
	return out
}

// LastSlope returns the highest id in the table, never less than 1.
func (d TileDefs) LastSlope() int {
	last := 1
	for id := range d {
		if id > last {
			last = id
		}
	}
	return last
}
