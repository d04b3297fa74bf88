package systems

import (
	"github.com/automoto/foxpet/components"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateFade creates the spawn fade-in system. dt is seconds per update.
func NewUpdateFade(dt float32) ecs.System {
	return func(e *ecs.ECS) {
		for entry := range components.Fade.Iter(e.World) {
			fade := components.Fade.Get(entry)
			if fade.Done || fade.Tween == nil {
				fade.Alpha = 1
				continue
			}
			v, finished := fade.Tween.Update(dt)
			fade.Alpha = float64(v)
			if finished {
				fade.Alpha = 1
				fade.Done = true
			}
		}
	}
}
