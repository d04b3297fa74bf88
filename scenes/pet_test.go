package scenes

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/automoto/foxpet/components"
	cfg "github.com/automoto/foxpet/config"
	"github.com/automoto/foxpet/shared/petsim"
	"github.com/hajimehoshi/ebiten/v2"
	dmath "github.com/yohamta/donburi/features/math"
)

type fakeDesktop struct {
	cursor dmath.Vec2
	moves  int
}

func (d *fakeDesktop) Cursor() dmath.Vec2 { return d.cursor }
func (d *fakeDesktop) ScreenBounds() petsim.Bounds {
	return petsim.Bounds{Width: 1920, Height: 1080}
}
func (d *fakeDesktop) MoveWindow(x, y int) { d.moves++ }

type recordingView struct {
	synced []cfg.Mode
}

func (v *recordingView) Sync(mode cfg.Mode) { v.synced = append(v.synced, mode) }

func newTestScene() (*PetScene, chan cfg.Command, *recordingView) {
	commands := make(chan cfg.Command, cfg.Tray.CommandBuffer)
	view := &recordingView{}
	desktop := &fakeDesktop{cursor: dmath.Vec2{X: 1000, Y: 600}}
	scene := NewPetScene(nil, desktop, commands, view, rand.New(rand.NewPCG(7, 7)))
	return scene, commands, view
}

func TestPetSceneSyncsModeChanges(t *testing.T) {
	scene, commands, view := newTestScene()

	if err := scene.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(view.synced) != 0 {
		t.Fatalf("view synced %v before any mode change", view.synced)
	}

	commands <- cfg.CommandWander
	if err := scene.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(view.synced) != 1 || view.synced[0] != cfg.ModeWander {
		t.Fatalf("synced = %v, want [wander]", view.synced)
	}
	if scene.Mode() != cfg.ModeWander {
		t.Errorf("Mode = %s, want wander", scene.Mode())
	}

	// Re-selecting the current mode is applied but is not a change.
	commands <- cfg.CommandWander
	if err := scene.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if len(view.synced) != 1 {
		t.Errorf("synced = %v, want a single entry", view.synced)
	}
}

func TestPetSceneExitTerminates(t *testing.T) {
	scene, commands, _ := newTestScene()
	if err := scene.Update(); err != nil {
		t.Fatalf("Update: %v", err)
	}

	commands <- cfg.CommandExit
	err := scene.Update()
	if !errors.Is(err, ebiten.Termination) {
		t.Fatalf("Update = %v, want ebiten.Termination", err)
	}

	entry, ok := components.Pet.First(scene.ecs.World)
	if !ok {
		t.Fatal("pet entity missing")
	}
	if !components.Pet.Get(entry).LogicTicker.Stopped() {
		t.Error("logic ticker still running after exit")
	}
	if !components.Animation.Get(entry).Ticker.Stopped() {
		t.Error("animation ticker still running after exit")
	}
}
