package scenes

import (
	"testing"

	"github.com/automoto/tilephys/shared/netcomponents"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestApplyComponentToEntry(t *testing.T) {
	world := donburi.NewWorld()
	data := []any{
		netcomponents.NetBodyData{BodyID: 3, Name: "player", X: 10, Y: 20},
		netcomponents.NetVelocityData{VX: 5},
		"ignored",
	}

	ctypes := componentTypesFromInstances(data)
	require.Len(t, ctypes, 2)

	entry := world.Entry(world.Create(ctypes...))
	for _, d := range data {
		applyComponentToEntry(entry, d)
	}
	assert.Equal(t, "player", netcomponents.NetBody.Get(entry).Name)
	assert.Equal(t, 5.0, netcomponents.NetVelocity.Get(entry).VX)

	// Components missing at creation are added on the fly.
	applyComponentToEntry(entry, netcomponents.NetGameStateData{Level: "level2"})
	require.True(t, entry.HasComponent(netcomponents.NetGameState))
	assert.Equal(t, "level2", netcomponents.NetGameState.Get(entry).Level)
}
