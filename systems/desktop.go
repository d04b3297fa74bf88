package systems

import (
	cfg "github.com/automoto/foxpet/config"
	"github.com/automoto/foxpet/shared/petsim"
	"github.com/hajimehoshi/ebiten/v2"
	dmath "github.com/yohamta/donburi/features/math"
)

// Desktop is what the pet sees of the OS: the global pointer, the usable
// screen size, and its own window.
type Desktop interface {
	Cursor() dmath.Vec2
	ScreenBounds() petsim.Bounds
	MoveWindow(x, y int)
}

// EbitenDesktop implements Desktop on top of ebiten's window API.
type EbitenDesktop struct{}

// Cursor converts ebiten's window-relative cursor into screen coordinates. The
// layout is 1:1 with the window, so no scaling is needed.
func (EbitenDesktop) Cursor() dmath.Vec2 {
	wx, wy := ebiten.WindowPosition()
	cx, cy := ebiten.CursorPosition()
	return dmath.Vec2{X: float64(wx + cx), Y: float64(wy + cy)}
}

func (EbitenDesktop) ScreenBounds() petsim.Bounds {
	if m := ebiten.Monitor(); m != nil {
		if w, h := m.Size(); w > 0 && h > 0 {
			return petsim.Bounds{Width: float64(w), Height: float64(h)}
		}
	}
	return petsim.Bounds{
		Width:  float64(cfg.Window.FallbackScreenWidth),
		Height: float64(cfg.Window.FallbackScreenHeight),
	}
}

func (EbitenDesktop) MoveWindow(x, y int) {
	ebiten.SetWindowPosition(x, y)
}
