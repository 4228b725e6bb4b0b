package components

import "github.com/yohamta/donburi"

// MessageStateData is a singleton holding the status line shown on screen
type MessageStateData struct {
	Text         string
	DisplayTimer int // Frames remaining to display the message
}

var MessageState = donburi.NewComponentType[MessageStateData]()
