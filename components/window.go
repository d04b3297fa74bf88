package components

import "github.com/yohamta/donburi"

// WindowData remembers the last position pushed to the OS so the window is only
// moved when the rounded position changes.
type WindowData struct {
	X, Y   int
	Placed bool
}

var Window = donburi.NewComponentType[WindowData]()
