package factory

import (
	"log"

	"github.com/automoto/tilephys/archetypes"
	"github.com/automoto/tilephys/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel creates the level selection over names, starting at start.
// An unknown start falls back to the first level.
func CreateLevel(ecs *ecs.ECS, names []string, start string) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)
	data := &components.LevelData{Names: names}
	if start != "" && !data.Select(start) {
		log.Printf("[level] Warning: unknown level %q, starting with %q", start, data.Current())
	}
	components.Level.Set(level, data)
	return level
}
