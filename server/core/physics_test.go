package core

import (
	"testing"

	"github.com/automoto/tilephys/shared/leveldata"
	"github.com/automoto/tilephys/shared/netcomponents"
	"github.com/automoto/tilephys/simulation"
	"github.com/automoto/tilephys/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func mirrorLevel() *leveldata.Level {
	grid := make([][]int, 10)
	for y := range grid {
		grid[y] = make([]int, 10)
	}
	for x := range grid[8] {
		grid[8][x] = 1
	}
	return &leveldata.Level{
		Name:     "mirror",
		TileSize: 32,
		Grid:     grid,
		Spawns: []leveldata.Spawn{
			{Kind: "player", Name: "player", X: 32, Y: 200},
			{Kind: "coin", Name: "coin", X: 200, Y: 200},
		},
		PxWidth:  320,
		PxHeight: 320,
	}
}

func TestMirrorSync(t *testing.T) {
	sim := simulation.New(nil)
	require.NoError(t, sim.Load(mirrorLevel()))

	world := donburi.NewWorld()
	m := NewMirror(world)
	created := 0
	m.OnBody = func(*donburi.Entity) error {
		created++
		return nil
	}

	require.NoError(t, m.Sync(sim, 2))
	assert.Equal(t, 2, m.Len())
	assert.Equal(t, 2, created)

	player, _ := sim.Player()
	e, ok := m.Entity(player.ID)
	require.True(t, ok)
	entry := world.Entry(e)
	assert.True(t, entry.HasComponent(tags.Player))
	body := netcomponents.NetBody.Get(entry)
	assert.Equal(t, player.Pos.X, body.X)
	assert.Equal(t, "player", body.Name)

	stateEntry, ok := netcomponents.NetGameState.First(world)
	require.True(t, ok)
	state := netcomponents.NetGameState.Get(stateEntry)
	assert.Equal(t, "mirror", state.Level)
	assert.Equal(t, 2, state.Watchers)

	// A second sync reuses the entities.
	require.NoError(t, m.Sync(sim, 2))
	assert.Equal(t, 2, created)
}

func TestMirrorDropsRemovedBodies(t *testing.T) {
	sim := simulation.New(nil)
	require.NoError(t, sim.Load(mirrorLevel()))

	world := donburi.NewWorld()
	m := NewMirror(world)
	require.NoError(t, m.Sync(sim, 1))

	coin := sim.World.Named("coin")
	require.NotNil(t, coin)
	coinEntity, ok := m.Entity(coin.ID)
	require.True(t, ok)

	coin.Kill()
	require.NoError(t, sim.Step(1.0/60))
	require.NoError(t, m.Sync(sim, 1))

	assert.Equal(t, 1, m.Len())
	assert.False(t, world.Valid(coinEntity))
}

func TestMirrorSyncHookError(t *testing.T) {
	sim := simulation.New(nil)
	require.NoError(t, sim.Load(mirrorLevel()))

	m := NewMirror(donburi.NewWorld())
	m.OnBody = func(*donburi.Entity) error {
		return assert.AnError
	}
	assert.ErrorIs(t, m.Sync(sim, 0), assert.AnError)
	assert.Equal(t, 0, m.Len())
}
