package systems

import (
	"image/color"
	"math"

	"github.com/automoto/tilephys/collision"
	"github.com/automoto/tilephys/components"
	cfg "github.com/automoto/tilephys/config"
	"github.com/automoto/tilephys/physics"
	"github.com/automoto/tilephys/shared/gamemath"
	"github.com/automoto/tilephys/simulation"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// view is the world-space rectangle on screen plus the offset that maps
// world to screen coordinates.
type view struct {
	gamemath.Rect
	dx, dy float64
}

func newView(e *ecs.ECS, screen *ebiten.Image) (view, bool) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	dx, dy, ok := cameraOffset(e, w, h)
	if !ok {
		return view{}, false
	}
	return view{
		Rect: gamemath.Rect{X: -dx, Y: -dy, W: float64(w), H: float64(h)},
		dx:   dx,
		dy:   dy,
	}, true
}

func (v view) point(x, y float64) (float32, float32) {
	return float32(x + v.dx), float32(y + v.dy)
}

func getSimulation(e *ecs.ECS) *simulation.Simulation {
	entry, ok := components.Simulation.First(e.World)
	if !ok {
		return nil
	}
	return components.Simulation.Get(entry).Simulation
}

// DrawLevel renders the collision tiles in view. Full tiles are filled,
// slope tiles are drawn as their boundary line.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawTiles {
		return
	}
	sim := getSimulation(e)
	if sim == nil {
		return
	}
	m, ok := sim.World.Map.(*collision.CollisionMap)
	if !ok {
		return
	}
	v, ok := newView(e, screen)
	if !ok {
		return
	}

	ts := float64(m.TileSize)
	x0 := max(int(math.Floor(v.X/ts)), 0)
	y0 := max(int(math.Floor(v.Y/ts)), 0)
	x1 := min(int(math.Ceil((v.X+v.W)/ts)), m.Width)
	y1 := min(int(math.Ceil((v.Y+v.H)/ts)), m.Height)

	for ty := y0; ty < y1; ty++ {
		for tx := x0; tx < x1; tx++ {
			tile := m.TileAt(tx, ty)
			if tile == 0 {
				continue
			}
			px, py := v.point(float64(tx)*ts, float64(ty)*ts)
			if m.IsSolid(tile) {
				vector.FillRect(screen, px, py, float32(ts), float32(ts), cfg.Debug.TileColor, false)
				continue
			}
			if def, ok := m.Def(tile); ok {
				drawTileDef(screen, px, py, float32(ts), def)
			}
		}
	}
}

func drawTileDef(screen *ebiten.Image, px, py, ts float32, def collision.TileDef) {
	width := float32(1)
	if def.Solid {
		width = 2
	}
	vector.StrokeLine(screen,
		px+float32(def.X1)*ts, py+float32(def.Y1)*ts,
		px+float32(def.X2)*ts, py+float32(def.Y2)*ts,
		width, cfg.Debug.SlopeColor, true)
}

// DrawDeadZones outlines the dead zones of the level.
func DrawDeadZones(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawDeadZones {
		return
	}
	sim := getSimulation(e)
	if sim == nil || sim.Level == nil {
		return
	}
	v, ok := newView(e, screen)
	if !ok {
		return
	}
	for _, r := range sim.Level.DeadZones {
		if !r.Overlaps(v.Rect) {
			continue
		}
		strokeRect(screen, v, r, cfg.Debug.DeadZoneColor)
	}
}

// DrawBodies draws every live body as a rectangle colored by its state.
func DrawBodies(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawBodies {
		return
	}
	sim := getSimulation(e)
	if sim == nil {
		return
	}
	v, ok := newView(e, screen)
	if !ok {
		return
	}
	debug := GetOrCreatePause(e).Debug

	for _, b := range sim.World.Bodies {
		if b.Killed || !b.Rect().Overlaps(v.Rect) {
			continue
		}
		c := bodyColor(b.Collides, b.Standing)
		if b.Collides == physics.Fixed {
			x, y := v.point(b.Pos.X, b.Pos.Y)
			vector.FillRect(screen, x, y, float32(b.Size.X), float32(b.Size.Y), c, false)
		} else {
			strokeRect(screen, v, b.Rect(), c)
		}

		if debug {
			// Velocity, scaled down to a tenth of a second of travel.
			cx, cy := v.point(b.Center().X, b.Center().Y)
			vector.StrokeLine(screen, cx, cy, cx+float32(b.Vel.X/10), cy+float32(b.Vel.Y/10), 1, cfg.Debug.TextColor, true)
			if b.Name != "" {
				drawLabel(screen, b.Name, float64(cx), float64(cy)-b.Size.Y/2-2)
			}
		}
	}
}

func bodyColor(class physics.CollisionClass, standing bool) color.RGBA {
	switch {
	case class == physics.Fixed:
		return cfg.Debug.FixedColor
	case standing:
		return cfg.Debug.StandingColor
	default:
		return cfg.Debug.BodyColor
	}
}

func strokeRect(screen *ebiten.Image, v view, r gamemath.Rect, c color.RGBA) {
	x, y := v.point(r.X, r.Y)
	vector.StrokeRect(screen, x, y, float32(r.W), float32(r.H), 1, c, false)
}
