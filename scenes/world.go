package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/tilephys/components"
	cfg "github.com/automoto/tilephys/config"
	"github.com/automoto/tilephys/simulation"
	"github.com/automoto/tilephys/systems"
	"github.com/automoto/tilephys/systems/factory"
	"github.com/automoto/tilephys/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlatformerScene runs the simulation locally and draws it.
type PlatformerScene struct {
	ecs    *ecs.ECS
	levels simulation.LevelSet
	names  []string
	start  string
	once   sync.Once
	menu   *ui.PauseUI
}

func NewPlatformerScene(levels simulation.LevelSet, names []string, start string) *PlatformerScene {
	return &PlatformerScene{levels: levels, names: names, start: start}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
	updatePauseMenu(ps.ecs, ps.menu)
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
	drawPauseMenu(ps.ecs, ps.menu, screen)
}

func (ps *PlatformerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)
	ecs.AddSystem(systems.UpdateMessage)

	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateSimulation))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))

	ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ecs.AddRenderer(cfg.Default, systems.DrawDeadZones)
	ecs.AddRenderer(cfg.Default, systems.DrawBodies)
	ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ecs.AddRenderer(cfg.Default, systems.DrawMessage)
	ecs.AddRenderer(cfg.Default, systems.DrawPause)

	ps.ecs = ecs
	ps.menu = newPauseMenu(ecs, true)

	level := factory.CreateLevel(ps.ecs, ps.names, ps.start)
	factory.CreateSimulation(ps.ecs, ps.levels, components.Level.Get(level).Current())
	factory.CreateCamera(ps.ecs)

	// Snap camera to the player to prevent panning from (0,0)
	systems.SnapCamera(ps.ecs)
}
