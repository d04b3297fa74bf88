package systems

import (
	"log"

	"github.com/automoto/foxpet/components"
	cfg "github.com/automoto/foxpet/config"
	"github.com/yohamta/donburi/ecs"
)

// NewApplyCommands creates a system that drains menu commands into the pet.
// onExit runs once per Exit command.
func NewApplyCommands(commands <-chan cfg.Command, onExit func()) ecs.System {
	return func(e *ecs.ECS) {
		for _, cmd := range drainChan(commands) {
			ApplyCommand(e, cmd, onExit)
		}
	}
}

// ApplyCommand performs a single menu command on the game loop.
func ApplyCommand(e *ecs.ECS, cmd cfg.Command, onExit func()) {
	if cmd == cfg.CommandExit {
		log.Println("[pet] exit requested")
		if onExit != nil {
			onExit()
		}
		return
	}

	mode, ok := cmd.ModeFor()
	if !ok {
		return
	}
	entry, ok := components.Pet.First(e.World)
	if !ok {
		return
	}
	pet := components.Pet.Get(entry)
	pet.SetMode(mode)
	log.Printf("[pet] mode set to %s", mode)
}

// CurrentMode returns the pet's mode, or follow before the pet exists.
func CurrentMode(e *ecs.ECS) cfg.Mode {
	entry, ok := components.Pet.First(e.World)
	if !ok {
		return cfg.ModeFollow
	}
	return components.Pet.Get(entry).Mode()
}

func drainChan[T any](ch <-chan T) []T {
	var out []T
	for {
		select {
		case v := <-ch:
			out = append(out, v)
		default:
			return out
		}
	}
}
