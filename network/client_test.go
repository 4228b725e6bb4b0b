package network

import (
	"testing"

	"github.com/automoto/tilephys/shared/messages"
	"github.com/stretchr/testify/assert"
)

func TestClientStartsDisconnected(t *testing.T) {
	c := NewClient()
	assert.Equal(t, StateDisconnected, c.State())
	assert.Nil(t, c.LatestSnapshot())
	assert.ErrorIs(t, c.SendMessage(messages.JoinRequest{}), ErrNotConnected)
	assert.ErrorIs(t, c.SendInput(messages.PlayerInput{Left: true}), ErrNotConnected)
}

func TestClientStateString(t *testing.T) {
	assert.Equal(t, "connecting", StateConnecting.String())
	assert.Equal(t, "connected", StateConnected.String())
	assert.Equal(t, "error", StateError.String())
	assert.Equal(t, "disconnected", StateDisconnected.String())
}
