package entities

import (
	"github.com/automoto/tilephys/collision"
	"github.com/automoto/tilephys/config"
	"github.com/automoto/tilephys/physics"
)

type tileReader interface {
	GetTile(px, py float64) int
}

// Blob crawls back and forth on its platform and hurts the player on touch.
type Blob struct {
	Flip  bool
	Speed float64
}

func (bl *Blob) Kind() Kind { return KindBlob }

func (bl *Blob) Reset(b *physics.Body, x, y float64, settings map[string]string) {
	k := config.Kinds
	*bl = Blob{
		Flip:  settingBool(settings, "flip"),
		Speed: settingFloat(settings, "speed", k.BlobSpeed),
	}

	b.Size.X, b.Size.Y = 40, 28
	b.Offset.X = bl.offsetX()
	b.Friction.X = k.BlobFriction
	b.Health = settingFloat(settings, "health", 1)

	b.Type = physics.TypeB
	b.CheckAgainst = physics.TypeA
	b.Collides = physics.Passive
}

// Update turns around when there is no tile ahead of its feet, then crawls
// on. Mid-air the probe finds nothing either, so a falling blob keeps turning.
func (bl *Blob) Update(ctx *physics.Context, self *physics.Body) {
	if tiles, ok := ctx.Map.(tileReader); ok {
		probeX := self.Pos.X + self.Size.X - 4
		if bl.Flip {
			probeX = self.Pos.X + 4
		}
		if tiles.GetTile(probeX, self.Pos.Y+self.Size.Y+1) == 0 {
			bl.turn(self)
		}
	}

	dir := 1.0
	if bl.Flip {
		dir = -1
	}
	self.Vel.X = bl.Speed * dir

	physics.Integrate(ctx, self)
}

// HandleTrace turns around at walls.
func (bl *Blob) HandleTrace(_ *physics.Context, self *physics.Body, res collision.TraceResult) {
	if res.CollisionX {
		bl.turn(self)
	}
}

// turn reverses the blob. The sprite is wider than the hitbox, so the offset
// moves with the head.
func (bl *Blob) turn(self *physics.Body) {
	bl.Flip = !bl.Flip
	self.Offset.X = bl.offsetX()
}

func (bl *Blob) offsetX() float64 {
	if bl.Flip {
		return 0
	}
	return 24
}

func (bl *Blob) Check(ctx *physics.Context, self, other *physics.Body) {
	other.ReceiveDamage(ctx, config.Kinds.BlobDamage, self)
}
