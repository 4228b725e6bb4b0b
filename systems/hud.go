package systems

import (
	"fmt"
	"strings"

	cfg "github.com/automoto/tilephys/config"
	"github.com/automoto/tilephys/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/yohamta/donburi/ecs"
)

const hudLineSpacing = 14

// DrawHUD prints the player status, and the world counters when the debug
// overlay is on.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	sim := getSimulation(e)
	if sim == nil {
		return
	}

	var lines []string
	if b, p := sim.Player(); b != nil && p != nil {
		lines = append(lines, fmt.Sprintf("health %.0f  coins %d", b.Health, p.Coins))
	}

	if GetOrCreatePause(e).Debug {
		level := "-"
		if sim.Level != nil {
			level = sim.Level.Name
		}
		lines = append(lines,
			fmt.Sprintf("level %s  tick %d  reloads %d", level, sim.Ticks, sim.Reloads),
			fmt.Sprintf("bodies %d  pairs %d  time %.2fs x%.2f",
				len(sim.World.Bodies), sim.Pairs, sim.World.Clock.Now(), sim.World.Clock.TimeScale),
			fmt.Sprintf("tps %.0f  fps %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()),
		)
	}
	drawLines(screen, lines, 4, 4)
}

func drawLines(screen *ebiten.Image, lines []string, x, y float64) {
	if len(lines) == 0 {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.LineSpacing = hudLineSpacing
	op.ColorScale.ScaleWithColor(cfg.Debug.TextColor)
	text.Draw(screen, strings.Join(lines, "\n"), fonts.Small.Get(), op)
}

func drawLabel(screen *ebiten.Image, label string, cx, bottom float64) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, bottom)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignEnd
	op.ColorScale.ScaleWithColor(cfg.Debug.TextColor)
	text.Draw(screen, label, fonts.Small.Get(), op)
}
