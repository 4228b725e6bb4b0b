package entities

import (
	"github.com/automoto/tilephys/collision"
	"github.com/automoto/tilephys/config"
	"github.com/automoto/tilephys/physics"
)

// Fireball is a bouncing projectile. It is pooled since players fire many
// of them.
type Fireball struct {
	Bounces int
}

func (f *Fireball) Kind() Kind { return KindFireball }

func (f *Fireball) Reset(b *physics.Body, _, _ float64, settings map[string]string) {
	k := config.Kinds
	f.Bounces = 0

	b.Size.X, b.Size.Y = 24, 24
	b.Offset.X, b.Offset.Y = 6, 6
	b.MaxVel.X, b.MaxVel.Y = k.FireballSpeed, k.FireballMaxVelY
	b.Bounciness = k.FireballBounce

	b.Vel.X = k.FireballSpeed
	if settingBool(settings, "flip") {
		b.Vel.X = -k.FireballSpeed
	}
	b.Vel.Y = k.FireballFall

	b.Type = physics.TypeNone
	b.CheckAgainst = physics.TypeB
	b.Collides = physics.Passive
}

// HandleTrace counts bounces and burns out after too many.
func (f *Fireball) HandleTrace(ctx *physics.Context, self *physics.Body, res collision.TraceResult) {
	if res.Collided() {
		f.Bounces++
		if f.Bounces > config.Kinds.FireballMaxBounces {
			self.Kill()
			return
		}
	}
	if !ctx.InBounds(self) {
		self.Kill()
	}
}

func (f *Fireball) Check(ctx *physics.Context, self, other *physics.Body) {
	other.ReceiveDamage(ctx, config.Kinds.FireballDamage, self)
	self.Kill()
}
