package petsim

import "time"

// maxCatchUp bounds how many periods a Ticker reports for one Advance call, so a
// stalled loop (window drag, suspend) does not replay seconds of simulation.
const maxCatchUp = 4

// Ticker is a periodic task driven by elapsed time instead of an OS timer.
type Ticker struct {
	Interval time.Duration

	acc     time.Duration
	stopped bool
}

func NewTicker(interval time.Duration) *Ticker {
	return &Ticker{Interval: interval}
}

// Advance adds dt to the accumulator and returns how many periods fired.
func (t *Ticker) Advance(dt time.Duration) int {
	if t.stopped || t.Interval <= 0 {
		return 0
	}
	t.acc += dt
	n := int(t.acc / t.Interval)
	t.acc -= time.Duration(n) * t.Interval
	if n > maxCatchUp {
		n = maxCatchUp
	}
	return n
}

// Stop cancels the ticker for good.
func (t *Ticker) Stop() {
	t.stopped = true
	t.acc = 0
}

func (t *Ticker) Stopped() bool { return t.stopped }

// AnimationClock owns the displayed frame index.
type AnimationClock struct {
	Frames     int
	IdleFrame  int
	RestFacing Direction

	frame int
}

func NewAnimationClock(frames, idleFrame int) *AnimationClock {
	return &AnimationClock{
		Frames:     frames,
		IdleFrame:  idleFrame,
		RestFacing: South,
		frame:      idleFrame,
	}
}

func (a *AnimationClock) Frame() int { return a.frame }

// Step runs one animation period against c. While c moves the frame cycles;
// at rest the frame is pinned to the idle frame and the fox turns to face
// RestFacing. It always requests a redraw.
func (a *AnimationClock) Step(c *Controller) bool {
	if c.IsMoving() && a.Frames > 0 {
		a.frame = (a.frame + 1) % a.Frames
		return true
	}
	a.frame = a.IdleFrame
	c.SetFacing(a.RestFacing)
	return true
}
