package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FadeData drives the sprite alpha with a tween. Alpha stays at 1 once Done.
type FadeData struct {
	Tween *gween.Tween
	Alpha float64
	Done  bool
}

var Fade = donburi.NewComponentType[FadeData]()
