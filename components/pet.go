package components

import (
	"github.com/automoto/foxpet/shared/petsim"
	"github.com/yohamta/donburi"
)

// PetData is the single fox. The controller is the only source of truth for
// position, mode and facing; everything else reads it.
type PetData struct {
	*petsim.Controller
	LogicTicker *petsim.Ticker
}

var Pet = donburi.NewComponentType[PetData]()
