package systems

import (
	"log"

	"github.com/automoto/tilephys/components"
	cfg "github.com/automoto/tilephys/config"
	"github.com/automoto/tilephys/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// pauseTitleLift keeps the title clear of the centered menu.
const pauseTitleLift = 70

// UpdatePause toggles the pause and debug overlay flags.
func UpdatePause(ecs *ecs.ECS) {
	input := GetOrCreateInput(ecs)
	pause := GetOrCreatePause(ecs)

	if input.Action(cfg.ActionPause).JustPressed {
		pause.IsPaused = !pause.IsPaused
	}
	if input.Action(cfg.ActionToggleDebug).JustPressed {
		ToggleDebug(ecs)
	}
}

// ToggleDebug flips the debug overlay and stores the setting.
func ToggleDebug(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	pause.Debug = !pause.Debug
	saveViewerSettings(pause)
}

// CycleScale resizes the window to the next scale step and stores it.
func CycleScale(ecs *ecs.ECS) {
	cfg.C.Scale = cfg.C.NextScale(cfg.C.Scale)
	ebiten.SetWindowSize(int(float64(cfg.C.Width)*cfg.C.Scale), int(float64(cfg.C.Height)*cfg.C.Scale))
	saveViewerSettings(GetOrCreatePause(ecs))
}

// Resume leaves the pause state.
func Resume(ecs *ecs.ECS) {
	GetOrCreatePause(ecs).IsPaused = false
}

// RequestRestart resumes and has the simulation reload the current level.
func RequestRestart(ecs *ecs.ECS) {
	pause := GetOrCreatePause(ecs)
	pause.IsPaused = false
	pause.Restart = true
}

func saveViewerSettings(pause *components.PauseData) {
	if err := SaveSettings(&SavedSettings{Debug: pause.Debug, Scale: cfg.C.Scale}); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
	}
}

// WithPauseCheck wraps a system so it only runs while not paused.
func WithPauseCheck(system ecs.System) ecs.System {
	return func(ecs *ecs.ECS) {
		if GetOrCreatePause(ecs).IsPaused {
			return
		}
		system(ecs)
	}
}

// GetOrCreatePause returns the singleton Pause component, creating if needed.
func GetOrCreatePause(ecs *ecs.ECS) *components.PauseData {
	if _, ok := components.Pause.First(ecs.World); !ok {
		ent := ecs.World.Entry(ecs.World.Create(components.Pause))
		components.Pause.SetValue(ent, components.PauseData{
			IsPaused: cfg.Debug.Paused,
			Debug:    cfg.Debug.Overlay,
		})
	}

	ent, _ := components.Pause.First(ecs.World)
	return components.Pause.Get(ent)
}

// DrawPause dims the screen and draws the title above the pause menu.
func DrawPause(ecs *ecs.ECS, screen *ebiten.Image) {
	if !GetOrCreatePause(ecs).IsPaused {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.FillRect(screen, 0, 0, float32(w), float32(h), cfg.BlackOverlay, false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(w)/2, float64(h)/2-pauseTitleLift)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.ColorScale.ScaleWithColor(cfg.Debug.TextColor)
	text.Draw(screen, "PAUSED", fonts.Title.Get(), op)
}
