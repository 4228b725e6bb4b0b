package messages

// JoinRequest is sent by a client right after connecting.
type JoinRequest struct {
	Version    string
	PlayerName string
}
