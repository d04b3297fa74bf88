// Package petsim is the fox's simulation core: movement and behavior selection,
// sprite atlas lookup and animation timing. It must not depend on ebiten so the
// behavior can be stepped and tested headless.
package petsim

// Mode is the externally selected behavior family. Only the tray menu changes it.
type Mode int

const (
	ModeFollow Mode = iota
	ModeWander
)

func (m Mode) String() string {
	switch m {
	case ModeFollow:
		return "follow"
	case ModeWander:
		return "wander"
	}
	return "unknown"
}

// Behavior is the sub-state derived on every tick from distances and the wait timer.
type Behavior int

const (
	BehaviorIdle Behavior = iota
	BehaviorChasing
	BehaviorSprinting
	BehaviorLoitering
	BehaviorRoaming
)

var behaviorNames = map[Behavior]string{
	BehaviorIdle:      "idle",
	BehaviorChasing:   "chasing",
	BehaviorSprinting: "sprinting",
	BehaviorLoitering: "loitering",
	BehaviorRoaming:   "roaming",
}

func (b Behavior) String() string {
	if name, ok := behaviorNames[b]; ok {
		return name
	}
	return "unknown"
}

// Direction is the facing of the sprite. The values double as sheet rows.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	}
	return "?"
}

// Row returns the sprite sheet row for d. Unknown values use the south row.
func (d Direction) Row() int {
	switch d {
	case North, East, South, West:
		return int(d)
	}
	return int(South)
}

// FacingFor picks the cardinal direction of a displacement from its dominant axis.
// Ties go to the horizontal axis.
func FacingFor(dx, dy float64) Direction {
	if abs(dy) > abs(dx) {
		if dy > 0 {
			return South
		}
		return North
	}
	if dx > 0 {
		return East
	}
	return West
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
