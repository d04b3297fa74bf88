package components

import (
	"image"

	"github.com/automoto/foxpet/shared/petsim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
)

type SpriteData struct {
	Sheet        *ebiten.Image
	Atlas        petsim.Atlas
	CachedFrames map[image.Rectangle]*ebiten.Image // Sub-images keyed by source rect
	Image        *ebiten.Image                     // Frame currently shown
}

var Sprite = donburi.NewComponentType[SpriteData]()
