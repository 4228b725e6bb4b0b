package tags

import "github.com/yohamta/donburi"

var (
	Body   = donburi.NewTag().SetName("Body")
	Player = donburi.NewTag().SetName("Player")
)

// Resolv tags for the zone field
const (
	ResolvDeadZone = "deadzone"
	ResolvProbe    = "probe"
)
