package netcomponents

import "github.com/yohamta/donburi"

// NetBodyData is the replicated part of a physics body.
type NetBodyData struct {
	BodyID   int
	Kind     uint8
	Name     string
	X, Y     float64
	W, H     float64
	Standing bool
	Health   float64
}

var NetBody = donburi.NewComponentType[NetBodyData]()

// LerpNetBody interpolates the position; everything else snaps to the
// newer state.
func LerpNetBody(from, to NetBodyData, t float64) *NetBodyData {
	out := to
	out.X = from.X + (to.X-from.X)*t
	out.Y = from.Y + (to.Y-from.Y)*t
	return &out
}
