package petsim

import (
	"math"
	"time"

	"github.com/automoto/foxpet/shared/gamemath"
	dmath "github.com/yohamta/donburi/features/math"
)

// Controller owns the fox's motion state and advances it one logic tick at a time.
// It is not safe for concurrent use; the game loop is its only writer.
type Controller struct {
	tuning Tuning
	bounds Bounds
	rng    Rand

	pos    dmath.Vec2
	target dmath.Vec2

	// pending is the next loiter destination. It becomes the target once the
	// wait countdown runs out.
	pending dmath.Vec2
	// anchor is the cursor point the current loiter cycle is centred on.
	anchor dmath.Vec2

	mode      Mode
	behavior  Behavior
	speed     float64
	loitering bool
	waitTimer int
	moving    bool
	facing    Direction
}

func NewController(t Tuning, b Bounds, rng Rand) *Controller {
	return &Controller{
		tuning:   t,
		bounds:   b,
		rng:      rng,
		pos:      t.Start,
		target:   t.Start,
		mode:     ModeFollow,
		behavior: BehaviorIdle,
		facing:   South,
	}
}

func (c *Controller) Position() dmath.Vec2 { return c.pos }
func (c *Controller) Target() dmath.Vec2   { return c.target }
func (c *Controller) Mode() Mode           { return c.mode }
func (c *Controller) Behavior() Behavior   { return c.behavior }
func (c *Controller) Facing() Direction    { return c.facing }
func (c *Controller) IsMoving() bool       { return c.moving }
func (c *Controller) Speed() float64       { return c.speed }
func (c *Controller) WaitTimer() int       { return c.waitTimer }
func (c *Controller) IsLoitering() bool    { return c.loitering }
func (c *Controller) Bounds() Bounds       { return c.bounds }

// SetFacing overrides the facing. The animation clock uses it to turn the fox
// south while it rests.
func (c *Controller) SetFacing(d Direction) { c.facing = d }

// SetBounds replaces the usable screen size used for target selection.
func (c *Controller) SetBounds(b Bounds) { c.bounds = b }

// SetMode switches the behavior family, dropping any loiter cycle. Switching to
// wander picks a fresh screen target immediately.
func (c *Controller) SetMode(m Mode) {
	c.mode = m
	c.loitering = false
	c.waitTimer = 0
	if m == ModeWander {
		c.target = c.randomScreenTarget()
	}
}

// CursorCentered converts a pointer location to the window position that would
// put the fox's centre under it.
func (c *Controller) CursorCentered(cursor dmath.Vec2) dmath.Vec2 {
	return dmath.Vec2{
		X: cursor.X - c.tuning.FrameWidth/2,
		Y: cursor.Y - c.tuning.FrameHeight/2,
	}
}

// Tick advances the simulation by one logic tick of length dt.
func (c *Controller) Tick(cursor dmath.Vec2, dt time.Duration) {
	var targetSpeed float64
	switch c.mode {
	case ModeFollow:
		targetSpeed = c.follow(c.CursorCentered(cursor))
	case ModeWander:
		targetSpeed = c.wander()
	}
	c.step(targetSpeed, c.tickScale(dt))
}

func (c *Controller) follow(cursor dmath.Vec2) float64 {
	t := &c.tuning

	distToCursor := gamemath.Distance(c.pos, cursor)
	leash := distToCursor
	if c.loitering {
		leash = gamemath.Distance(c.anchor, cursor)
	}

	if leash > t.LoiterTrigger {
		c.loitering = false
		c.waitTimer = 0
		c.target = cursor
		if distToCursor > t.SprintDistance {
			c.behavior = BehaviorSprinting
			return t.SprintSpeed
		}
		c.behavior = BehaviorChasing
		return t.ChaseSpeed
	}

	// Inside the trigger radius. A fox that has coasted to a halt short of the
	// cursor counts as arrived so a loiter cycle can start.
	arrived := gamemath.Distance(c.pos, c.target) < t.StopThreshold ||
		(!c.loitering && !c.moving)
	if arrived {
		if c.waitTimer <= 0 {
			c.beginWait(cursor)
		} else {
			c.waitTimer--
		}
	}

	if c.loitering && c.waitTimer <= 0 {
		c.target = c.pending
		c.behavior = BehaviorLoitering
		return t.LoiterSpeed
	}
	c.behavior = BehaviorIdle
	return 0
}

func (c *Controller) beginWait(cursor dmath.Vec2) {
	c.waitTimer = randInt(c.rng, c.tuning.WaitMinTicks, c.tuning.WaitMaxTicks)
	c.loitering = true
	c.anchor = cursor
	c.pending = c.pickLoiterTarget(cursor)
	c.target = c.pos
}

func (c *Controller) wander() float64 {
	c.behavior = BehaviorRoaming
	if gamemath.Distance(c.pos, c.target) < c.tuning.StopThreshold &&
		c.rng.Float64() < c.tuning.RetargetChance {
		c.target = c.randomScreenTarget()
	}
	return c.tuning.WanderSpeed
}

func (c *Controller) step(targetSpeed, scale float64) {
	t := &c.tuning

	k := t.Acceleration
	if scale != 1 {
		k = 1 - math.Pow(1-k, scale)
	}
	c.speed += (targetSpeed - c.speed) * k
	if c.speed < 0 {
		c.speed = 0
	}

	diff := gamemath.Sub(c.target, c.pos)
	distance := gamemath.Length(diff)
	if distance > t.StopThreshold && c.speed > t.MovingEpsilon {
		c.moving = true
		dir := gamemath.Normalize(diff)
		c.pos = gamemath.Add(c.pos, gamemath.Scale(dir, c.speed*scale))
		c.facing = FacingFor(diff.X, diff.Y)
		return
	}
	c.moving = false
}

// tickScale is dt relative to the nominal tick. The scheduler always passes the
// nominal interval, so this is 1 outside of tests.
func (c *Controller) tickScale(dt time.Duration) float64 {
	if dt <= 0 || c.tuning.TickInterval <= 0 {
		return 1
	}
	return float64(dt) / float64(c.tuning.TickInterval)
}

// pickLoiterTarget samples points on a ring around the cursor until one lands
// inside the loiter area, falling back to the cursor itself.
func (c *Controller) pickLoiterTarget(cursor dmath.Vec2) dmath.Vec2 {
	t := &c.tuning
	min, max := c.bounds.Range(t.LoiterMargin)
	for i := 0; i < t.LoiterAttempts; i++ {
		angle := uniform(c.rng, 0, 2*math.Pi)
		dist := uniform(c.rng, t.LoiterNear, t.WanderRadius)
		candidate := dmath.Vec2{
			X: cursor.X + math.Cos(angle)*dist,
			Y: cursor.Y + math.Sin(angle)*dist,
		}
		if gamemath.InRect(candidate, min, max) {
			return candidate
		}
	}
	return cursor
}

func (c *Controller) randomScreenTarget() dmath.Vec2 {
	min, max := c.bounds.Range(c.tuning.WanderMargin)
	return dmath.Vec2{
		X: float64(randInt(c.rng, int(math.Ceil(min.X)), int(math.Floor(max.X)))),
		Y: float64(randInt(c.rng, int(math.Ceil(min.Y)), int(math.Floor(max.Y)))),
	}
}
