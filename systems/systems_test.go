package systems

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/automoto/foxpet/components"
	cfg "github.com/automoto/foxpet/config"
	"github.com/automoto/foxpet/shared/petsim"
	"github.com/automoto/foxpet/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

type fakeDesktop struct {
	cursor dmath.Vec2
	bounds petsim.Bounds
	moves  int
	x, y   int
}

func (d *fakeDesktop) Cursor() dmath.Vec2          { return d.cursor }
func (d *fakeDesktop) ScreenBounds() petsim.Bounds { return d.bounds }
func (d *fakeDesktop) MoveWindow(x, y int) {
	d.moves++
	d.x, d.y = x, y
}

func newTestWorld(t *testing.T) (*ecs.ECS, *donburi.Entry) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	pet := factory.CreatePet(e, nil, petsim.Bounds{Width: 1920, Height: 1080}, rand.New(rand.NewPCG(1, 2)))
	return e, pet
}

func TestApplyCommandsSwitchesModeAndExits(t *testing.T) {
	e, entry := newTestWorld(t)
	commands := make(chan cfg.Command, 4)
	exits := 0
	system := NewApplyCommands(commands, func() { exits++ })

	commands <- cfg.CommandWander
	system(e)
	if got := components.Pet.Get(entry).Mode(); got != cfg.ModeWander {
		t.Fatalf("mode = %v, want wander", got)
	}
	if CurrentMode(e) != cfg.ModeWander {
		t.Errorf("CurrentMode = %v, want wander", CurrentMode(e))
	}

	commands <- cfg.CommandFollow
	commands <- cfg.CommandExit
	system(e)
	if got := components.Pet.Get(entry).Mode(); got != cfg.ModeFollow {
		t.Errorf("mode = %v, want follow", got)
	}
	if exits != 1 {
		t.Errorf("exit callback ran %d times, want 1", exits)
	}

	system(e)
	if exits != 1 {
		t.Error("drained commands were applied twice")
	}
}

func TestUpdateMotionTicksController(t *testing.T) {
	e, entry := newTestWorld(t)
	desktop := &fakeDesktop{
		cursor: dmath.Vec2{X: 1000, Y: 600},
		bounds: petsim.Bounds{Width: 2560, Height: 1440},
	}
	system := NewUpdateMotion(desktop, 16*time.Millisecond)

	start := components.Pet.Get(entry).Position()
	system(e)

	pet := components.Pet.Get(entry)
	if pet.Position() == start {
		t.Error("pet did not move toward a distant cursor")
	}
	if pet.Bounds() != desktop.bounds {
		t.Errorf("bounds = %+v, want %+v", pet.Bounds(), desktop.bounds)
	}
	if pet.Behavior() != petsim.BehaviorChasing {
		t.Errorf("behavior = %v, want chasing", pet.Behavior())
	}
}

func TestUpdateMotionWaitsForInterval(t *testing.T) {
	e, entry := newTestWorld(t)
	desktop := &fakeDesktop{cursor: dmath.Vec2{X: 1400, Y: 600}, bounds: petsim.Bounds{Width: 1920, Height: 1080}}
	system := NewUpdateMotion(desktop, 10*time.Millisecond)

	start := components.Pet.Get(entry).Position()
	system(e)
	if components.Pet.Get(entry).Position() != start {
		t.Fatal("ticked before a full interval elapsed")
	}
	system(e)
	if components.Pet.Get(entry).Position() == start {
		t.Error("no tick after a full interval")
	}
}

func TestUpdateWindowMovesOnlyOnChange(t *testing.T) {
	e, _ := newTestWorld(t)
	desktop := &fakeDesktop{}
	system := NewUpdateWindow(desktop)

	system(e)
	system(e)
	if desktop.moves != 1 {
		t.Fatalf("moves = %d, want 1", desktop.moves)
	}
	if desktop.x != 500 || desktop.y != 500 {
		t.Errorf("window at (%d, %d), want (500, 500)", desktop.x, desktop.y)
	}
}

func TestUpdateAnimationRequestsRedraw(t *testing.T) {
	e, entry := newTestWorld(t)
	anim := components.Animation.Get(entry)
	anim.Redraw = false
	pet := components.Pet.Get(entry)
	pet.SetFacing(petsim.West)

	system := NewUpdateAnimation(100 * time.Millisecond)
	system(e)
	if anim.Redraw {
		t.Fatal("redraw requested before the animation interval")
	}
	system(e)
	if !anim.Redraw {
		t.Fatal("no redraw after the animation interval")
	}
	if anim.Clock.Frame() != cfg.Animation.IdleFrame {
		t.Errorf("frame = %d, want idle frame", anim.Clock.Frame())
	}
	if pet.Facing() != petsim.South {
		t.Errorf("facing = %v, want S at rest", pet.Facing())
	}
}

func TestUpdateFadeReachesFullAlpha(t *testing.T) {
	e, entry := newTestWorld(t)
	system := NewUpdateFade(0.1)

	system(e)
	fade := components.Fade.Get(entry)
	if fade.Alpha <= 0 || fade.Alpha >= 1 {
		t.Fatalf("alpha = %f after first step, want (0, 1)", fade.Alpha)
	}
	for i := 0; i < 10; i++ {
		system(e)
	}
	if !fade.Done || fade.Alpha != 1 {
		t.Errorf("alpha = %f done = %v, want 1 and done", fade.Alpha, fade.Done)
	}
}
