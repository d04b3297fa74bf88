package main

import (
	"image"
	"log"
	"math/rand/v2"
	"time"

	"github.com/automoto/foxpet/assets"
	"github.com/automoto/foxpet/config"
	"github.com/automoto/foxpet/fonts"
	"github.com/automoto/foxpet/scenes"
	"github.com/automoto/foxpet/systems"
	"github.com/automoto/foxpet/tray"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(scene Scene) *Game {
	return &Game{
		bounds: image.Rectangle{},
		scene:  scene,
	}
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	sheet, err := assets.LoadSpriteSheet(assets.ResourcePath(config.Assets.SpriteSheet), config.Sprite)
	if err != nil {
		log.Fatalf("Failed to load sprite sheet: %v", err)
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	commands := make(chan config.Command, config.Tray.CommandBuffer)
	menu := tray.New(commands, assets.LoadTrayIcon(assets.ResourcePath(config.Assets.TrayIcon)))
	stopTray := menu.Start()
	defer stopTray()

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle(config.Window.Title)
	ebiten.SetWindowDecorated(false)
	ebiten.SetWindowFloating(true)
	ebiten.SetWindowMousePassthrough(true)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetTPS(config.Window.TPS)
	x, y := int(config.Pet.Start.X), int(config.Pet.Start.Y)
	ebiten.SetWindowPosition(x, y)

	seed := uint64(time.Now().UnixNano())
	rng := rand.New(rand.NewPCG(seed, seed>>32))

	scene := scenes.NewPetScene(sheet, systems.EbitenDesktop{}, commands, menu, rng)
	opts := &ebiten.RunGameOptions{
		ScreenTransparent: true,
		SkipTaskbar:       true,
		InitUnfocused:     true,
	}
	if err := ebiten.RunGameWithOptions(NewGame(scene), opts); err != nil {
		log.Fatal(err)
	}
}
