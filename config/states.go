package config

import "github.com/automoto/foxpet/shared/petsim"

// Type aliases so systems and the tray can use config.Mode etc.
type Mode = petsim.Mode
type Behavior = petsim.Behavior
type Direction = petsim.Direction

// Re-export mode constants.
const (
	ModeFollow = petsim.ModeFollow
	ModeWander = petsim.ModeWander
)

// Re-export facing constants.
const (
	North = petsim.North
	East  = petsim.East
	South = petsim.South
	West  = petsim.West
)

// Command is a request from the tray menu to the game loop.
type Command int

const (
	CommandNone Command = iota
	CommandFollow
	CommandWander
	CommandExit
)

func (c Command) String() string {
	switch c {
	case CommandFollow:
		return "follow"
	case CommandWander:
		return "wander"
	case CommandExit:
		return "exit"
	}
	return "none"
}

// ModeFor returns the mode a command selects. ok is false for commands that do
// not change the mode.
func (c Command) ModeFor() (Mode, bool) {
	switch c {
	case CommandFollow:
		return ModeFollow, true
	case CommandWander:
		return ModeWander, true
	}
	return ModeFollow, false
}
