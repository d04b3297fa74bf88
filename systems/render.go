package systems

import (
	"github.com/automoto/foxpet/components"
	"github.com/automoto/foxpet/shared/petsim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

var (
	drawOp = &ebiten.DrawImageOptions{}
)

// DrawPet blits the current atlas cell scaled up with nearest filtering. The
// frame image is only re-sliced when the animation clock asked for a redraw.
func DrawPet(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Pet.First(e.World)
	if !ok {
		return
	}
	pet := components.Pet.Get(entry)
	anim := components.Animation.Get(entry)
	sprite := components.Sprite.Get(entry)

	if anim.Redraw || sprite.Image == nil {
		sprite.Image = frameImage(sprite, pet.Facing(), anim.Clock.Frame())
		anim.Redraw = false
	}
	if sprite.Image == nil {
		return
	}

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()
	drawOp.Filter = ebiten.FilterNearest

	scale := float64(sprite.Atlas.Scale)
	drawOp.GeoM.Scale(scale, scale)

	if entry.HasComponent(components.Fade) {
		drawOp.ColorScale.ScaleAlpha(float32(components.Fade.Get(entry).Alpha))
	}

	screen.DrawImage(sprite.Image, drawOp)
}

func frameImage(sprite *components.SpriteData, dir petsim.Direction, frame int) *ebiten.Image {
	if sprite.Sheet == nil {
		return nil
	}
	rect := sprite.Atlas.Rect(dir, frame)
	if img, ok := sprite.CachedFrames[rect]; ok {
		return img
	}
	img := sprite.Sheet.SubImage(rect).(*ebiten.Image)
	if sprite.CachedFrames != nil {
		sprite.CachedFrames[rect] = img
	}
	return img
}
