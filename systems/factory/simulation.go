package factory

import (
	"log"

	"github.com/automoto/tilephys/archetypes"
	"github.com/automoto/tilephys/components"
	"github.com/automoto/tilephys/simulation"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSimulation creates the simulation entity and loads level into it.
// Spawns that fail are logged; the rest of the level still runs.
func CreateSimulation(ecs *ecs.ECS, levels simulation.LevelSource, level string) *donburi.Entry {
	sim := simulation.New(levels)
	if level != "" {
		if err := sim.LoadLevel(level); err != nil {
			log.Printf("[sim] Warning: load %s: %v", level, err)
		}
	}

	entry := archetypes.Simulation.Spawn(ecs)
	components.Simulation.Set(entry, &components.SimulationData{Simulation: sim})
	return entry
}
