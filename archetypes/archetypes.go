package archetypes

import (
	"github.com/automoto/foxpet/components"
	cfg "github.com/automoto/foxpet/config"
	"github.com/automoto/foxpet/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Pet = newArchetype(
		tags.Pet,
		components.Pet,
		components.Animation,
		components.Sprite,
		components.Fade,
		components.Window,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
