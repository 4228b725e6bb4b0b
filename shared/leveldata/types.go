// Package leveldata reads TMX levels into the plain data the simulation is
// built from. It has no dependencies on ebitengine or donburi so the viewer
// and the headless server share it.
package leveldata

import (
	"github.com/automoto/tilephys/collision"
	"github.com/automoto/tilephys/shared/gamemath"
)

// Names of the TMX layers and object groups the loader reads.
const (
	CollisionLayerName = "collision"
	EntitiesGroupName  = "Entities"
	DeadZonesGroupName = "DeadZones"
)

// Level holds everything the simulation needs from a TMX level file.
type Level struct {
	Name     string
	TileSize int
	Grid     [][]int // row-major collision tile ids

	// Defs holds the slope geometry declared by the tileset. It is merged
	// over the built-in catalogue when the collision map is built.
	Defs collision.TileDefs

	Spawns    []Spawn
	DeadZones []gamemath.Rect

	PxWidth  int
	PxHeight int
}

// Spawn is one object of the entities group.
type Spawn struct {
	Kind     string
	Name     string
	X, Y     float64
	W, H     float64
	Settings map[string]string
}

// CollisionMap builds the collision map of the level.
func (l *Level) CollisionMap() (*collision.CollisionMap, error) {
	return collision.NewCollisionMap(l.TileSize, l.Grid, collision.DefaultTileDefs().Merge(l.Defs))
}

// SpawnsOf returns the spawns whose kind is kind, in level order.
func (l *Level) SpawnsOf(kind string) []Spawn {
	var out []Spawn
	for _, s := range l.Spawns {
		if s.Kind == kind {
			out = append(out, s)
		}
	}
	return out
}
