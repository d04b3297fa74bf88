package systems

import (
	"time"

	"github.com/automoto/foxpet/components"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateAnimation creates the animation clock system. It runs on its own
// ticker, independent of the logic tick.
func NewUpdateAnimation(frame time.Duration) ecs.System {
	return func(e *ecs.ECS) {
		entry, ok := components.Pet.First(e.World)
		if !ok {
			return
		}
		pet := components.Pet.Get(entry)
		anim := components.Animation.Get(entry)

		for n := anim.Ticker.Advance(frame); n > 0; n-- {
			if anim.Clock.Step(pet.Controller) {
				anim.Redraw = true
			}
		}
	}
}
