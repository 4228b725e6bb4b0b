package entities

import (
	"math"

	"github.com/automoto/tilephys/config"
	"github.com/automoto/tilephys/physics"
	"github.com/automoto/tilephys/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Platform is a fixed body that floats back and forth between its spawn
// point and spawn point + (dx, dy). Bodies standing on it ride along.
type Platform struct {
	Start gamemath.Vector
	Delta gamemath.Vector

	tween *gween.Tween
	back  bool
}

func (p *Platform) Kind() Kind { return KindPlatform }

func (p *Platform) Reset(b *physics.Body, x, y float64, settings map[string]string) {
	*p = Platform{
		Start: gamemath.Vector{X: x, Y: y},
		Delta: gamemath.Vector{
			X: settingFloat(settings, "dx", 0),
			Y: settingFloat(settings, "dy", -128),
		},
	}
	speed := settingFloat(settings, "speed", config.Kinds.PlatformSpeed)
	if dist := p.Delta.Len(); dist > 0 && speed > 0 {
		p.tween = gween.New(0, 1, float32(dist/speed), ease.InOutSine)
	}

	b.Size.X = settingFloat(settings, "width", 64)
	b.Size.Y = settingFloat(settings, "height", 16)
	b.GravityFactor = 0
	b.MaxVel.X, b.MaxVel.Y = math.Inf(1), math.Inf(1)

	b.Type = physics.TypeNone
	b.CheckAgainst = physics.TypeNone
	b.Collides = physics.Fixed
}

// Update moves the platform along its path. The map is ignored.
func (p *Platform) Update(ctx *physics.Context, self *physics.Body) {
	self.Last = self.Pos
	if p.tween == nil {
		self.Vel = gamemath.Vector{}
		return
	}

	t, done := p.tween.Update(float32(ctx.Tick))
	f := float64(t)
	if p.back {
		f = 1 - f
	}
	target := p.Start.Add(p.Delta.Scale(f))
	if ctx.Tick > 0 {
		self.Vel = target.Sub(self.Pos).Scale(1 / ctx.Tick)
	}
	self.Pos = target

	if done {
		p.tween.Reset()
		p.back = !p.back
	}
}
