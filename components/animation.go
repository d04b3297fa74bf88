package components

import (
	"github.com/automoto/foxpet/shared/petsim"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	Clock  *petsim.AnimationClock
	Ticker *petsim.Ticker
	Redraw bool // Set by the clock, cleared once the frame image is refreshed
}

var Animation = donburi.NewComponentType[AnimationData]()
