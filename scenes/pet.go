package scenes

import (
	"sync"
	"time"

	"github.com/automoto/foxpet/components"
	cfg "github.com/automoto/foxpet/config"
	"github.com/automoto/foxpet/shared/petsim"
	"github.com/automoto/foxpet/systems"
	"github.com/automoto/foxpet/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ModeView is told whenever the pet's mode changes.
type ModeView interface {
	Sync(mode cfg.Mode)
}

// PetScene runs the fox: commands, motion, animation, fade-in and window
// placement, in that order, every update.
type PetScene struct {
	ecs      *ecs.ECS
	sheet    *ebiten.Image
	desktop  systems.Desktop
	commands <-chan cfg.Command
	view     ModeView
	rng      petsim.Rand

	mode    cfg.Mode
	exiting bool
	once    sync.Once
}

// NewPetScene creates the pet scene. view may be nil.
func NewPetScene(sheet *ebiten.Image, desktop systems.Desktop, commands <-chan cfg.Command, view ModeView, rng petsim.Rand) *PetScene {
	return &PetScene{
		sheet:    sheet,
		desktop:  desktop,
		commands: commands,
		view:     view,
		rng:      rng,
		mode:     cfg.ModeFollow,
	}
}

func (ps *PetScene) Update() error {
	ps.once.Do(ps.configure)
	ps.ecs.Update()

	if mode := systems.CurrentMode(ps.ecs); mode != ps.mode {
		ps.mode = mode
		if ps.view != nil {
			ps.view.Sync(mode)
		}
	}

	if ps.exiting {
		ps.shutdown()
		return ebiten.Termination
	}
	return nil
}

func (ps *PetScene) Draw(screen *ebiten.Image) {
	// The window is transparent; anything not drawn by the pet must stay clear.
	screen.Clear()

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

// Mode returns the mode last reported to the view.
func (ps *PetScene) Mode() cfg.Mode {
	return ps.mode
}

func (ps *PetScene) configure() {
	frame := time.Second / time.Duration(cfg.Window.TPS)

	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.NewApplyCommands(ps.commands, func() { ps.exiting = true }))
	ecs.AddSystem(systems.NewUpdateMotion(ps.desktop, frame))
	ecs.AddSystem(systems.NewUpdateAnimation(frame))
	ecs.AddSystem(systems.NewUpdateFade(float32(frame.Seconds())))
	ecs.AddSystem(systems.NewUpdateWindow(ps.desktop))

	ecs.AddRenderer(cfg.Default, systems.DrawPet)
	ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	ps.ecs = ecs

	factory.CreatePet(ps.ecs, ps.sheet, ps.desktop.ScreenBounds(), ps.rng)
}

// shutdown stops both timers so nothing else fires while ebiten tears down.
func (ps *PetScene) shutdown() {
	entry, ok := components.Pet.First(ps.ecs.World)
	if !ok {
		return
	}
	components.Pet.Get(entry).LogicTicker.Stop()
	components.Animation.Get(entry).Ticker.Stop()
}
