package systems

import (
	"errors"
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/automoto/tilephys/entities"
	"github.com/automoto/tilephys/network"
	"github.com/automoto/tilephys/physics"
	"github.com/automoto/tilephys/shared/gamemath"
	"github.com/automoto/tilephys/shared/messages"
	"github.com/automoto/tilephys/shared/netcomponents"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/leap-fish/necs/esync"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewRemoteInputSystem sends the held player actions to the server every frame.
func NewRemoteInputSystem(send func(messages.PlayerInput) error) ecs.System {
	return func(e *ecs.ECS) {
		in := PlayerInputFrom(GetOrCreateInput(e))
		err := send(messages.PlayerInput{
			Left:      in.Left,
			Right:     in.Right,
			Jump:      in.Jump,
			Shoot:     in.Shoot,
			Timestamp: time.Now().UnixMilli(),
		})
		if err != nil && !errors.Is(err, network.ErrNotConnected) {
			log.Printf("[remote] send input: %v", err)
		}
	}
}

// RemoteGameState returns the replicated game state, if one arrived yet.
func RemoteGameState(world donburi.World) (netcomponents.NetGameStateData, bool) {
	entry, ok := netcomponents.NetGameState.First(world)
	if !ok {
		return netcomponents.NetGameStateData{}, false
	}
	return *netcomponents.NetGameState.Get(entry), true
}

// DrawRemoteBodies draws the replicated bodies.
func DrawRemoteBodies(e *ecs.ECS, screen *ebiten.Image) {
	v, ok := newView(e, screen)
	if !ok {
		return
	}
	debug := GetOrCreatePause(e).Debug

	esync.NetworkEntityQuery.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(netcomponents.NetBody) {
			return
		}
		body := netcomponents.NetBody.Get(entry)
		r := gamemath.Rect{X: body.X, Y: body.Y, W: body.W, H: body.H}
		if !r.Overlaps(v.Rect) {
			return
		}
		strokeRect(screen, v, r, remoteBodyColor(body))

		if debug && body.Name != "" {
			cx, cy := v.point(r.Center().X, r.Y)
			drawLabel(screen, body.Name, float64(cx), float64(cy)-2)
		}
	})
}

func remoteBodyColor(body *netcomponents.NetBodyData) color.RGBA {
	if entities.Kind(body.Kind) == entities.KindPlatform {
		return bodyColor(physics.Fixed, false)
	}
	return bodyColor(physics.Active, body.Standing)
}

// DrawRemoteHUD prints the replicated game state.
func DrawRemoteHUD(e *ecs.ECS, screen *ebiten.Image) {
	count := 0
	esync.NetworkEntityQuery.Each(e.World, func(_ *donburi.Entry) {
		count++
	})

	lines := []string{fmt.Sprintf("online  entities %d", count)}
	if gs, ok := RemoteGameState(e.World); ok {
		lines = append(lines,
			fmt.Sprintf("level %s  coins %d  watchers %d", gs.Level, gs.Coins, gs.Watchers),
		)
		if GetOrCreatePause(e).Debug {
			lines = append(lines, fmt.Sprintf("tick %d  reloads %d", gs.Tick, gs.Reloads))
		}
	}
	drawLines(screen, lines, 4, 4)
}
