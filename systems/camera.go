package systems

import (
	"math"

	"github.com/automoto/tilephys/components"
	"github.com/automoto/tilephys/config"
	"github.com/automoto/tilephys/entities"
	"github.com/automoto/tilephys/shared/gamemath"
	"github.com/automoto/tilephys/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCamera follows the player, keeping the view inside the level.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	target, ok := cameraTarget(e)
	if !ok {
		return // no player (could be dead), keep the camera where it is
	}
	center := target.Center()
	center.Y -= config.Camera.LookUp

	bounds := levelBounds(e)
	targetX := clampAxis(center.X, float64(config.C.Width), bounds.X, bounds.W)
	targetY := clampAxis(center.Y, float64(config.C.Height), bounds.Y, bounds.H)

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}

// SnapCamera moves the camera straight onto the player.
func SnapCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	target, ok := cameraTarget(e)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	bounds := levelBounds(e)
	c := target.Center()
	camera.Position.X = clampAxis(c.X, float64(config.C.Width), bounds.X, bounds.W)
	camera.Position.Y = clampAxis(c.Y-config.Camera.LookUp, float64(config.C.Height), bounds.Y, bounds.H)
}

// clampAxis keeps a camera center so that a view of size screen stays
// inside [start, start+size]. Levels smaller than the view are centered.
func clampAxis(v, screen, start, size float64) float64 {
	if size <= 0 {
		return v
	}
	if size <= screen {
		return start + size/2
	}
	return math.Max(start+screen/2, math.Min(start+size-screen/2, v))
}

// cameraTarget returns the rectangle of the local player, or of the
// replicated player when the viewer watches a server.
func cameraTarget(e *ecs.ECS) (gamemath.Rect, bool) {
	if entry, ok := components.Simulation.First(e.World); ok {
		if b, _ := components.Simulation.Get(entry).Player(); b != nil {
			return b.Rect(), true
		}
	}

	var target gamemath.Rect
	found := false
	esync.NetworkEntityQuery.Each(e.World, func(entry *donburi.Entry) {
		if found || !entry.HasComponent(netcomponents.NetBody) {
			return
		}
		body := netcomponents.NetBody.Get(entry)
		if entities.Kind(body.Kind) == entities.KindPlayer {
			target = gamemath.Rect{X: body.X, Y: body.Y, W: body.W, H: body.H}
			found = true
		}
	})
	return target, found
}

func levelBounds(e *ecs.ECS) gamemath.Rect {
	entry, ok := components.Simulation.First(e.World)
	if !ok {
		return gamemath.Rect{}
	}
	return components.Simulation.Get(entry).World.Bounds
}

// cameraOffset returns the translation from world to screen space.
func cameraOffset(e *ecs.ECS, screenW, screenH int) (float64, float64, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return 0, 0, false
	}
	camera := components.Camera.Get(cameraEntry)
	return float64(screenW)/2 - camera.Position.X, float64(screenH)/2 - camera.Position.Y, true
}
