package petsim

import (
	"time"

	dmath "github.com/yohamta/donburi/features/math"
)

// Tuning holds the movement constants. Speeds are pixels per logic tick.
type Tuning struct {
	WanderSpeed float64
	LoiterSpeed float64
	ChaseSpeed  float64
	SprintSpeed float64

	Acceleration  float64 // fraction of the speed gap closed per tick, in (0, 1]
	MovingEpsilon float64 // speeds at or below this count as standing still

	StopThreshold  float64
	SprintDistance float64
	LoiterTrigger  float64
	LoiterNear     float64 // minimum loiter radius around the cursor
	WanderRadius   float64 // maximum loiter radius around the cursor

	WaitMinTicks   int
	WaitMaxTicks   int
	LoiterAttempts int
	RetargetChance float64 // per-tick chance of a new wander target once arrived

	TickInterval time.Duration

	LoiterMargin Margins
	WanderMargin Margins

	Start dmath.Vec2

	// Scaled frame size; the cursor is centred by half of it because the
	// position is the window's top-left corner.
	FrameWidth  float64
	FrameHeight float64
}

// Margins describes a usable range [Min, size-Max] on both axes.
type Margins struct {
	Min float64
	Max float64
}

// Bounds is the usable screen size in pixels.
type Bounds struct {
	Width  float64
	Height float64
}

// Range returns the corners of the area left once m is applied to b.
func (b Bounds) Range(m Margins) (min, max dmath.Vec2) {
	min = dmath.Vec2{X: m.Min, Y: m.Min}
	max = dmath.Vec2{X: b.Width - m.Max, Y: b.Height - m.Max}
	return min, max
}

// Rand is the subset of *math/rand/v2.Rand the controller draws from.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// uniform returns a float in [lo, hi).
func uniform(r Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*r.Float64()
}

// randInt returns an int in [lo, hi], collapsing to lo when the range is empty.
func randInt(r Rand, lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.IntN(hi-lo+1)
}
