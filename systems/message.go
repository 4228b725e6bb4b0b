package systems

import (
	"github.com/automoto/tilephys/components"
	cfg "github.com/automoto/tilephys/config"
	"github.com/automoto/tilephys/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
)

// messageFrames is how long a status message stays on screen.
const messageFrames = 120

// ShowMessage replaces the status line.
func ShowMessage(ecs *ecs.ECS, msg string) {
	state := getOrCreateMessageState(ecs)
	state.Text = msg
	state.DisplayTimer = messageFrames
}

// UpdateMessage counts the status line down.
func UpdateMessage(ecs *ecs.ECS) {
	state := getOrCreateMessageState(ecs)
	if state.DisplayTimer > 0 {
		state.DisplayTimer--
		if state.DisplayTimer == 0 {
			state.Text = ""
		}
	}
}

// DrawMessage renders the status line at the bottom of the screen
func DrawMessage(ecs *ecs.ECS, screen *ebiten.Image) {
	state := getOrCreateMessageState(ecs)
	if state.Text == "" {
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(screen.Bounds().Dx())/2, float64(screen.Bounds().Dy()-8))
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignEnd
	op.ColorScale.ScaleWithColor(cfg.Debug.TextColor)
	text.Draw(screen, state.Text, fonts.Regular.Get(), op)
}

func getOrCreateMessageState(ecs *ecs.ECS) *components.MessageStateData {
	entry, ok := components.MessageState.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.MessageState))
	}
	return components.MessageState.Get(entry)
}
