package systems

import (
	"time"

	"github.com/automoto/foxpet/components"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateMotion creates the logic tick system. frame is the wall time one
// ebiten update stands for; the pet's logic ticker turns it into fixed ticks.
func NewUpdateMotion(desktop Desktop, frame time.Duration) ecs.System {
	return func(e *ecs.ECS) {
		entry, ok := components.Pet.First(e.World)
		if !ok {
			return
		}
		pet := components.Pet.Get(entry)

		n := pet.LogicTicker.Advance(frame)
		if n == 0 {
			return
		}

		if b := desktop.ScreenBounds(); b != pet.Bounds() {
			pet.SetBounds(b)
		}
		cursor := desktop.Cursor()
		for i := 0; i < n; i++ {
			pet.Tick(cursor, pet.LogicTicker.Interval)
		}
	}
}
