package components

import (
	"github.com/automoto/tilephys/simulation"
	"github.com/yohamta/donburi"
)

// SimulationData holds the physics simulation the viewer steps and draws.
type SimulationData struct {
	*simulation.Simulation
}

var Simulation = donburi.NewComponentType[SimulationData]()
