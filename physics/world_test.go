package physics

import (
	"testing"

	"github.com/automoto/tilephys/collision"
	"github.com/automoto/tilephys/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpatialHashPairCount(t *testing.T) {
	h := NewSpatialHash(64)

	bodies := []*Body{
		bodyAt(0, 0, Active),
		bodyAt(200, 0, Active),
		bodyAt(400, 0, Active),
	}
	for i, b := range bodies {
		b.ID = i + 1
	}

	var seen [][2]int
	record := func(a, b *Body) { seen = append(seen, [2]int{a.ID, b.ID}) }

	assert.Equal(t, 0, h.Pairs(bodies, record))
	assert.Empty(t, seen)

	bodies[1].Pos.X = 8
	assert.Equal(t, 1, h.Pairs(bodies, record))
	assert.Equal(t, [][2]int{{2, 1}}, seen)

	// Order does not change the count.
	reversed := []*Body{bodies[2], bodies[1], bodies[0]}
	assert.Equal(t, 1, h.Pairs(reversed, func(a, b *Body) {}))
}

func TestSpatialHashMultiCellPairOnce(t *testing.T) {
	h := NewSpatialHash(64)

	big := bodyAt(0, 0, Active)
	big.ID = 1
	big.Size = gamemath.Vector{X: 200, Y: 200}
	small := bodyAt(60, 60, Active)
	small.ID = 2

	assert.Equal(t, 1, h.Pairs([]*Body{big, small}, func(a, b *Body) {}))
	assert.Equal(t, 1, h.Pairs([]*Body{small, big}, func(a, b *Body) {}))
}

func TestSpatialHashSkipsInertBodies(t *testing.T) {
	h := NewSpatialHash(64)

	a := bodyAt(0, 0, Active)
	a.ID = 1
	ghost := NewBody(4, 4)
	ghost.ID = 2

	assert.Equal(t, 0, h.Pairs([]*Body{a, ghost}, func(a, b *Body) {}))

	// A checking body is not inert even without a collision class.
	ghost.CheckAgainst = TypeA
	assert.Equal(t, 1, h.Pairs([]*Body{a, ghost}, func(a, b *Body) {}))
}

type killer struct{}

func (killer) Check(_ *Context, _ *Body, other *Body) {
	other.Kill()
}

type counter struct {
	updates int
	erased  int
}

func (c *counter) Update(ctx *Context, self *Body) {
	c.updates++
	Integrate(ctx, self)
}

func (c *counter) Erase(*Body) {
	c.erased++
}

func TestWorldDeferredRemoval(t *testing.T) {
	w := NewWorld(64)

	player := NewBody(0, 0)
	player.Name = "player"
	player.Type = TypeA
	player.CheckAgainst = TypeB
	player.Behavior = killer{}
	w.Add(player)

	c := &counter{}
	coin := NewBody(8, 0)
	coin.Name = "coin"
	coin.Type = TypeB
	coin.Behavior = c
	w.Add(coin)

	var removed []*Body
	w.OnRemove = func(b *Body) {
		// Removal hooks run after the pass, with the list already spliced.
		assert.NotContains(t, w.Bodies, b)
		removed = append(removed, b)
	}

	pairs := w.Step(0.1)
	assert.Equal(t, 1, pairs)
	assert.Equal(t, 1, c.updates)
	assert.True(t, coin.Killed)
	assert.Equal(t, []*Body{player}, w.Bodies)
	assert.Equal(t, []*Body{coin}, removed)
	assert.Equal(t, 1, c.erased)
	assert.Nil(t, w.Named("coin"))
	assert.Same(t, player, w.Named("player"))

	// A removed body is inert right away.
	assert.True(t, coin.Inert())
}

func TestWorldSkipsKilledBodies(t *testing.T) {
	w := NewWorld(64)
	c := &counter{}
	b := NewBody(0, 0)
	b.Behavior = c
	w.Add(b)
	w.Add(NewBody(100, 100))

	w.Remove(b)
	w.Step(0.1)
	assert.Equal(t, 0, c.updates)
	assert.Len(t, w.Bodies, 1)
	assert.NotSame(t, b, w.Bodies[0])
}

func TestWorldSorting(t *testing.T) {
	w := NewWorld(64)
	for i, z := range []int{2, 1, 2, 0} {
		b := NewBody(float64(100-i*10), 0)
		b.Name = string(rune('a' + i))
		b.ZIndex = z
		w.Add(b)
	}

	names := func() string {
		s := ""
		for _, b := range w.Bodies {
			s += b.Name
		}
		return s
	}

	w.Step(0.1)
	assert.Equal(t, "abcd", names(), "no sort unless asked")

	w.SortDeferred()
	assert.Equal(t, "abcd", names(), "deferred sorts wait for the tick")
	w.Step(0.1)
	assert.Equal(t, "dbac", names(), "stable by z-index")

	w.SortBy = SortByPosX
	w.AutoSort = true
	w.Step(0.1)
	assert.Equal(t, "dcba", names())
}

func TestSortByName(t *testing.T) {
	for _, name := range []string{"", "z", "x", "y"} {
		fn, err := SortByName(name)
		require.NoError(t, err)
		assert.NotNil(t, fn)
	}
	_, err := SortByName("w")
	assert.Error(t, err)
}

func TestWorldBodiesByKind(t *testing.T) {
	w := NewWorld(64)
	for i := 0; i < 3; i++ {
		b := NewBody(0, 0)
		b.Kind = uint8(i % 2)
		w.Add(b)
	}
	assert.Len(t, w.BodiesByKind(0), 2)
	assert.Len(t, w.BodiesByKind(1), 1)

	w.Bodies[0].Kill()
	assert.Len(t, w.BodiesByKind(0), 1)
}

func TestWorldSetMapAndContext(t *testing.T) {
	w := NewWorld(64)
	w.Gravity = 800

	ctx := w.Context(0.1)
	assert.Same(t, w.Names, ctx.Names)
	assert.Same(t, w.Clock, ctx.Clock)
	assert.Equal(t, collision.NoCollision, ctx.Tracer())
	assert.True(t, ctx.InBounds(NewBody(-5000, -5000)), "no map means no bounds")

	w.SetMap(floorMap(t))
	w.Clock.MaxStep = 0
	w.Clock.Advance(3)
	ctx = w.Context(0.1)
	assert.Equal(t, 0.1, ctx.Tick)
	assert.Equal(t, 3.0, ctx.Time)
	assert.Equal(t, 800.0, ctx.Gravity)
	assert.Equal(t, gamemath.Rect{W: 320, H: 320}, ctx.Bounds)
	assert.True(t, ctx.InBounds(NewBody(10, 10)))
	assert.False(t, ctx.InBounds(NewBody(400, 10)))

	ctx.LoadLevel("second")
	assert.Equal(t, "second", w.Requests.Level)
	ctx.Spawn(SpawnRequest{Kind: 3, X: 1, Y: 2})
	assert.Len(t, w.Requests.Spawns, 1)

	w.SetMap(nil)
	assert.Equal(t, collision.NoCollision, w.Map)
}

func TestWorldClear(t *testing.T) {
	w := NewWorld(64)
	b := NewBody(0, 0)
	b.Name = "door"
	w.Add(b)

	w.Clear()
	assert.Empty(t, w.Bodies)
	assert.Nil(t, w.Named("door"))
	assert.Equal(t, 0, w.Names.Len())
}
