package components

import "github.com/yohamta/donburi"

// PauseData stores the pause and debug overlay state
type PauseData struct {
	IsPaused bool
	Debug    bool
	// Restart asks the simulation to reload the level on its next update.
	Restart bool
}

var Pause = donburi.NewComponentType[PauseData]()
