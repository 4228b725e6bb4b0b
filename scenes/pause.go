package scenes

import (
	cfg "github.com/automoto/tilephys/config"
	"github.com/automoto/tilephys/systems"
	"github.com/automoto/tilephys/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// newPauseMenu builds the pause menu acting on the pause state of e.
// Remote views can't restart the server's level, so they pass restart false.
func newPauseMenu(e *ecs.ECS, restart bool) *ui.PauseUI {
	var onRestart func()
	if restart {
		onRestart = func() { systems.RequestRestart(e) }
	}
	return ui.NewPauseUI(
		func() { systems.Resume(e) },
		func() { systems.ToggleDebug(e) },
		func() { systems.CycleScale(e) },
		onRestart,
	)
}

// updatePauseMenu runs the menu while the game is paused.
func updatePauseMenu(e *ecs.ECS, menu *ui.PauseUI) {
	pause := systems.GetOrCreatePause(e)
	if !pause.IsPaused {
		return
	}
	menu.SetSettings(pause.Debug, cfg.C.Scale)
	menu.Update()
}

func drawPauseMenu(e *ecs.ECS, menu *ui.PauseUI, screen *ebiten.Image) {
	if !systems.GetOrCreatePause(e).IsPaused {
		return
	}
	menu.UI.Draw(screen)
}
