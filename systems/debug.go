package systems

import (
	"fmt"

	"github.com/automoto/foxpet/components"
	cfg "github.com/automoto/foxpet/config"
	"github.com/automoto/foxpet/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var debugFace text.Face

func getDebugFace() text.Face {
	if debugFace == nil {
		debugFace = fonts.Regular.Get(cfg.Debug.FontSize)
	}
	return debugFace
}

// DrawDebug overlays the controller state on the sprite.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Overlay {
		return
	}
	entry, ok := components.Pet.First(e.World)
	if !ok {
		return
	}
	face := getDebugFace()
	pet := components.Pet.Get(entry)

	msg := fmt.Sprintf("%s %s %s\nv %.2f wait %d",
		pet.Mode(), pet.Behavior(), pet.Facing(), pet.Speed(), pet.WaitTimer())

	width := float32(screen.Bounds().Dx())
	lineHeight := cfg.Debug.FontSize * 1.2
	vector.FillRect(screen, 0, 0, width, float32(lineHeight*2+4), cfg.BlackOverlay, false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(2, 2)
	op.ColorScale.ScaleWithColor(cfg.Debug.TextColor)
	op.LineSpacing = lineHeight
	text.Draw(screen, msg, face, op)
}
