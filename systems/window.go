package systems

import (
	"github.com/automoto/foxpet/components"
	"github.com/automoto/foxpet/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateWindow creates the system that keeps the OS window on the pet.
func NewUpdateWindow(desktop Desktop) ecs.System {
	return func(e *ecs.ECS) {
		entry, ok := components.Pet.First(e.World)
		if !ok {
			return
		}
		pet := components.Pet.Get(entry)
		win := components.Window.Get(entry)

		x, y := gamemath.Round(pet.Position())
		if win.Placed && win.X == x && win.Y == y {
			return
		}
		desktop.MoveWindow(x, y)
		win.X, win.Y, win.Placed = x, y, true
	}
}
