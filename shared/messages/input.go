package messages

// PlayerInput is sent from client to server each frame with the player's input state.
type PlayerInput struct {
	Sequence  uint32 // Incrementing ID, older inputs are dropped
	Left      bool
	Right     bool
	Jump      bool
	Shoot     bool
	Timestamp int64 // Client timestamp (Unix ms)
}

// Newer reports whether in was sent after prev.
func (in PlayerInput) Newer(prev PlayerInput) bool {
	return in.Sequence > prev.Sequence || prev.Sequence == 0
}
