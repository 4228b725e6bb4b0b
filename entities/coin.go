package entities

import "github.com/automoto/tilephys/physics"

// Coin sits still until the player picks it up.
type Coin struct {
	Value int
}

func (c *Coin) Kind() Kind { return KindCoin }

func (c *Coin) Reset(b *physics.Body, _, _ float64, settings map[string]string) {
	c.Value = int(settingFloat(settings, "value", 1))

	b.Size.X, b.Size.Y = 36, 36
	b.Type = physics.TypeNone
	b.CheckAgainst = physics.TypeA
	b.Collides = physics.Never
}

// Update keeps the coin in place: no gravity, no movement.
func (c *Coin) Update(*physics.Context, *physics.Body) {}

func (c *Coin) Check(_ *physics.Context, self, other *physics.Body) {
	p, ok := other.Behavior.(*Player)
	if !ok {
		return
	}
	p.GiveCoins(c.Value)
	self.Kill()
}
