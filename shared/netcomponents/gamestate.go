package netcomponents

import "github.com/yohamta/donburi"

// NetGameStateData describes the running level as a whole.
type NetGameStateData struct {
	Level    string
	Tick     uint64
	Coins    int
	Reloads  int
	Watchers int // connected clients, the first one drives the player
}

var NetGameState = donburi.NewComponentType[NetGameStateData]()
