package protocol

import (
	"github.com/automoto/tilephys/shared/netcomponents"
	"github.com/leap-fish/necs/esync"
)

// Sync ID constants - ID 1 is reserved by necs for NetworkId
const (
	SyncIDNetBody      uint = 10
	SyncIDNetVelocity  uint = 11
	SyncIDNetGameState uint = 12
)

// Interpolation IDs (uint8 for WithInterpFn)
const (
	InterpIDNetBody     uint8 = 10
	InterpIDNetVelocity uint8 = 11
)

// RegisterComponents registers all network components with necs for serialization.
// This must be called by both server and client before any network operations.
func RegisterComponents() error {
	if err := esync.RegisterComponent(
		SyncIDNetBody,
		netcomponents.NetBodyData{},
		netcomponents.NetBody,
		esync.WithInterpFn(InterpIDNetBody, netcomponents.LerpNetBody),
	); err != nil {
		return err
	}

	if err := esync.RegisterComponent(
		SyncIDNetVelocity,
		netcomponents.NetVelocityData{},
		netcomponents.NetVelocity,
		esync.WithInterpFn(InterpIDNetVelocity, netcomponents.LerpNetVelocity),
	); err != nil {
		return err
	}

	// GameState: no interpolation (discrete state)
	return esync.RegisterComponent(
		SyncIDNetGameState,
		netcomponents.NetGameStateData{},
		netcomponents.NetGameState,
	)
}
