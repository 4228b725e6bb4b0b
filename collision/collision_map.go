package collision

import "github.com/automoto/tilephys/shared/gamemath"

// Tracer is anything that can sweep a rectangle through the world.
type Tracer interface {
	Trace(x, y, vx, vy, w, h float64) TraceResult
}

// CollisionMap is the static collision layer of a level.
type CollisionMap struct {
	Map

	defs      TileDefs
	lastSlope int
}

// NewCollisionMap builds a collision map from a row-major grid. A nil defs
// table selects the built-in catalogue. The grid is copied.
func NewCollisionMap(tileSize int, grid [][]int, defs TileDefs) (*CollisionMap, error) {
	m, err := newMap(tileSize, grid)
	if err != nil {
		return nil, err
	}
	if defs == nil {
		defs = DefaultTileDefs()
	}
	return &CollisionMap{
		Map:       m,
		defs:      defs,
		lastSlope: defs.LastSlope(),
	}, nil
}

// LastSlope returns the highest tile id treated as a slope; anything above is solid.
func (m *CollisionMap) LastSlope() int {
	return m.lastSlope
}

// Def returns the line definition for a tile id.
func (m *CollisionMap) Def(tile int) (TileDef, bool) {
	def, ok := m.defs[tile]
	return def, ok
}

// IsSolid reports whether a tile id blocks as a full tile.
func (m *CollisionMap) IsSolid(tile int) bool {
	return tile == 1 || tile > m.lastSlope
}

type noCollision struct{}

func (noCollision) Trace(x, y, vx, vy, _, _ float64) TraceResult {
	return TraceResult{Pos: gamemath.Vector{X: x + vx, Y: y + vy}}
}

// NoCollision never collides. It stands in while no level is loaded.
var NoCollision Tracer = noCollision{}
