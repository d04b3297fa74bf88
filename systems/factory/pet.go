package factory

import (
	"image"

	"github.com/automoto/foxpet/archetypes"
	"github.com/automoto/foxpet/components"
	cfg "github.com/automoto/foxpet/config"
	"github.com/automoto/foxpet/shared/petsim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePet spawns the fox at its configured start position.
func CreatePet(ecs *ecs.ECS, sheet *ebiten.Image, bounds petsim.Bounds, rng petsim.Rand) *donburi.Entry {
	pet := archetypes.Pet.Spawn(ecs)

	components.Pet.SetValue(pet, components.PetData{
		Controller:  petsim.NewController(cfg.Pet, bounds, rng),
		LogicTicker: petsim.NewTicker(cfg.Pet.TickInterval),
	})

	clock := petsim.NewAnimationClock(cfg.Animation.Frames, cfg.Animation.IdleFrame)
	components.Animation.SetValue(pet, components.AnimationData{
		Clock:  clock,
		Ticker: petsim.NewTicker(cfg.Animation.Interval),
		Redraw: true,
	})

	components.Sprite.SetValue(pet, components.SpriteData{
		Sheet:        sheet,
		Atlas:        cfg.Sprite,
		CachedFrames: make(map[image.Rectangle]*ebiten.Image),
	})

	components.Fade.SetValue(pet, components.FadeData{
		Tween: gween.New(0, 1, cfg.Animation.FadeInSeconds, ease.OutQuad),
	})

	return pet
}
