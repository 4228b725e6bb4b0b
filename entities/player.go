package entities

import (
	"strconv"

	"github.com/automoto/tilephys/config"
	"github.com/automoto/tilephys/physics"
)

// PlayerInput is the control state of a player for one tick.
type PlayerInput struct {
	Left, Right bool
	Jump        bool
	Shoot       bool
}

// Player is the body the user controls.
type Player struct {
	Input PlayerInput
	Flip  bool
	Coins int

	shotHeld bool
}

func (p *Player) Kind() Kind { return KindPlayer }

func (p *Player) Reset(b *physics.Body, x, y float64, settings map[string]string) {
	k := config.Kinds
	*p = Player{}

	b.Size.X, b.Size.Y = 16, 24
	b.Friction.X = k.PlayerFriction
	b.MaxVel.X, b.MaxVel.Y = k.PlayerMaxVelX, k.PlayerMaxVelY
	b.Health = settingFloat(settings, "health", k.PlayerHealth)

	b.Type = physics.TypeA
	b.CheckAgainst = physics.TypeNone
	b.Collides = physics.Active
}

// Update turns the input into acceleration, then integrates.
func (p *Player) Update(ctx *physics.Context, self *physics.Body) {
	k := config.Kinds

	accel := k.PlayerAccelAir
	if self.Standing {
		accel = k.PlayerAccelGround
	}

	switch {
	case p.Input.Left && !p.Input.Right:
		self.Accel.X = -accel
		p.Flip = true
	case p.Input.Right && !p.Input.Left:
		self.Accel.X = accel
		p.Flip = false
	default:
		self.Accel.X = 0
	}

	if p.Input.Jump && self.Standing {
		self.Vel.Y = -k.PlayerJump
	}

	if p.Input.Shoot && !p.shotHeld {
		x := self.Pos.X + self.Size.X
		if p.Flip {
			x = self.Pos.X - 24
		}
		ctx.Spawn(physics.SpawnRequest{
			Kind:     uint8(KindFireball),
			X:        x,
			Y:        self.Pos.Y,
			Settings: map[string]string{"flip": strconv.FormatBool(p.Flip)},
		})
	}
	p.shotHeld = p.Input.Shoot

	physics.Integrate(ctx, self)
}

// GiveCoins adds to the coin count of the player.
func (p *Player) GiveCoins(n int) {
	p.Coins += n
}
