package simulation

import (
	"testing"

	"github.com/automoto/tilephys/entities"
	"github.com/automoto/tilephys/shared/gamemath"
	"github.com/automoto/tilephys/shared/leveldata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = 1.0 / 60

// testLevel is a 10x10 level of 32px tiles. floorRow < 0 leaves it open.
func testLevel(name string, floorRow int, spawns ...leveldata.Spawn) *leveldata.Level {
	grid := make([][]int, 10)
	for y := range grid {
		grid[y] = make([]int, 10)
		if y == floorRow {
			for x := range grid[y] {
				grid[y][x] = 1
			}
		}
	}
	return &leveldata.Level{
		Name:     name,
		TileSize: 32,
		Grid:     grid,
		Spawns:   spawns,
		PxWidth:  320,
		PxHeight: 320,
	}
}

func playerSpawn() leveldata.Spawn {
	return leveldata.Spawn{Kind: "player", Name: "player", X: 32, Y: 200}
}

func TestLoadSkipsUnknownKinds(t *testing.T) {
	s := New(nil)
	err := s.Load(testLevel("a", 8, playerSpawn(), leveldata.Spawn{Kind: "dragon", Name: "smaug"}))

	assert.ErrorIs(t, err, entities.ErrUnknownKind)
	b, p := s.Player()
	require.NotNil(t, b)
	require.NotNil(t, p)
	assert.Len(t, s.World.Bodies, 1)
	assert.Equal(t, "a", s.Level.Name)
}

func TestPlayerLandsOnFloor(t *testing.T) {
	s := New(nil)
	require.NoError(t, s.Load(testLevel("a", 8, playerSpawn())))

	for range 120 {
		require.NoError(t, s.Step(frame))
	}

	b, _ := s.Player()
	require.NotNil(t, b)
	assert.InDelta(t, 256-b.Size.Y, b.Pos.Y, 1e-9)
	assert.True(t, b.Standing)
	assert.Equal(t, uint64(120), s.Ticks)
}

func TestDeadZoneRestartsLevel(t *testing.T) {
	level := testLevel("a", -1, playerSpawn())
	level.DeadZones = []gamemath.Rect{{X: 0, Y: 300, W: 320, H: 20}}

	s := New(nil)
	require.NoError(t, s.Load(level))
	first, _ := s.Player()

	for i := 0; i < 120 && s.Reloads == 0; i++ {
		require.NoError(t, s.Step(frame))
	}

	assert.Equal(t, 1, s.Reloads)
	b, _ := s.Player()
	require.NotNil(t, b)
	assert.NotSame(t, first, b)
	assert.Equal(t, 200.0, b.Pos.Y)
}

func TestLevelChangeBetweenTicks(t *testing.T) {
	levels := LevelSet{
		"a": testLevel("a", 8,
			playerSpawn(),
			leveldata.Spawn{Kind: "trigger", X: 20, Y: 190, Settings: map[string]string{"target.1": "exit"}},
			leveldata.Spawn{Kind: "levelchange", Name: "exit", Settings: map[string]string{"level": "b"}},
		),
		"b": testLevel("b", 9, playerSpawn()),
	}

	s := New(levels)
	require.NoError(t, s.LoadLevel("a"))
	_, p := s.Player()
	require.NotNil(t, p)
	p.Coins = 2

	require.NoError(t, s.Step(frame))

	assert.Equal(t, "b", s.Level.Name)
	assert.Empty(t, s.World.Requests.Level)
	b, p := s.Player()
	require.NotNil(t, b)
	assert.Equal(t, 2, p.Coins)
	assert.Equal(t, 200.0, b.Pos.Y)
}

func TestLoadUnknownLevel(t *testing.T) {
	assert.ErrorIs(t, New(nil).LoadLevel("x"), ErrUnknownLevel)
	assert.ErrorIs(t, New(LevelSet{}).LoadLevel("x"), ErrUnknownLevel)
}

func TestSetInputMovesPlayer(t *testing.T) {
	s := New(nil)
	require.NoError(t, s.Load(testLevel("a", 8, playerSpawn())))

	s.SetInput(entities.PlayerInput{Right: true})
	for range 30 {
		require.NoError(t, s.Step(frame))
	}

	b, p := s.Player()
	assert.Greater(t, b.Pos.X, 32.0)
	assert.False(t, p.Flip)
}

func TestSnapshotRestore(t *testing.T) {
	levels := LevelSet{"a": testLevel("a", 8, playerSpawn())}
	s := New(levels)

	_, err := s.Snapshot()
	assert.ErrorIs(t, err, ErrNoPlayer)

	require.NoError(t, s.LoadLevel("a"))
	b, p := s.Player()
	b.Pos = gamemath.Vector{X: 100, Y: 150}
	b.Health = 2
	p.Coins = 7

	snap, err := s.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, Snapshot{Level: "a", X: 100, Y: 150, Health: 2, Coins: 7}, snap)

	other := New(levels)
	require.NoError(t, other.Restore(snap))
	b, p = other.Player()
	assert.Equal(t, gamemath.Vector{X: 100, Y: 150}, b.Pos)
	assert.Equal(t, 2.0, b.Health)
	assert.Equal(t, 7, p.Coins)
}
