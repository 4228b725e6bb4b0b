package systems

import (
	"errors"
	"fmt"
	"log"

	"github.com/automoto/tilephys/components"
	cfg "github.com/automoto/tilephys/config"
	"github.com/automoto/tilephys/simulation"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSimulation handles the level actions and steps the simulation by
// one frame with the player input of this frame.
func UpdateSimulation(e *ecs.ECS) {
	entry, ok := components.Simulation.First(e.World)
	if !ok {
		return
	}
	sim := components.Simulation.Get(entry).Simulation
	input := GetOrCreateInput(e)
	pause := GetOrCreatePause(e)
	restart := pause.Restart
	pause.Restart = false

	switch {
	case restart || input.Action(cfg.ActionRestart).JustPressed:
		if sim.Level != nil {
			loadLevel(e, sim, sim.Level.Name)
		}
	case input.Action(cfg.ActionNextLevel).JustPressed:
		if level := GetLevel(e); level != nil {
			loadLevel(e, sim, level.Next())
		}
	case input.Action(cfg.ActionSave).JustPressed:
		saveProgress(e, sim)
	case input.Action(cfg.ActionLoad).JustPressed:
		loadProgress(e, sim)
	}

	scale := cfg.Simulation.TimeScale
	if input.Current[cfg.ActionSlowMotion] {
		scale *= cfg.Input.SlowMotionScale
	}
	sim.World.Clock.TimeScale = scale

	sim.SetInput(PlayerInputFrom(input))
	if err := sim.Step(1 / float64(ebiten.TPS())); err != nil {
		log.Printf("[sim] %v", err)
		ShowMessage(e, err.Error())
	}

	// Triggers change levels on their own; keep the selection in step.
	if level := GetLevel(e); level != nil && sim.Level != nil {
		level.Select(sim.Level.Name)
	}
}

// GetLevel returns the level selection, or nil before it is created.
func GetLevel(e *ecs.ECS) *components.LevelData {
	entry, ok := components.Level.First(e.World)
	if !ok {
		return nil
	}
	return components.Level.Get(entry)
}

func loadLevel(e *ecs.ECS, sim *simulation.Simulation, name string) {
	err := sim.LoadLevel(name)
	switch {
	case errors.Is(err, simulation.ErrUnknownLevel):
		log.Printf("[sim] %v", err)
		ShowMessage(e, err.Error())
		return
	case err != nil:
		// The level loaded, some spawns were skipped.
		log.Printf("[sim] Warning: %v", err)
	}
	ShowMessage(e, "level "+name)
}

func saveProgress(e *ecs.ECS, sim *simulation.Simulation) {
	snap, err := sim.Snapshot()
	if err != nil {
		ShowMessage(e, "nothing to save: "+err.Error())
		return
	}
	if err := SaveProgress(snap); err != nil {
		ShowMessage(e, "save failed")
		return
	}
	ShowMessage(e, fmt.Sprintf("saved %s (%d coins)", snap.Level, snap.Coins))
}

func loadProgress(e *ecs.ECS, sim *simulation.Simulation) {
	snap, err := LoadProgress()
	if err != nil || snap == nil {
		ShowMessage(e, "no saved progress")
		return
	}
	if err := sim.Restore(*snap); err != nil {
		log.Printf("[sim] Warning: restore %s: %v", snap.Level, err)
		ShowMessage(e, "restore failed")
		return
	}
	ShowMessage(e, "loaded "+snap.Level)
}
