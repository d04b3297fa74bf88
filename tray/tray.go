// Package tray owns the system tray icon and its menu. The menu never changes
// pet state itself: clicks become commands for the game loop, and the check
// marks are redrawn from whatever mode the game reports back through Sync.
package tray

import (
	"log"
	"sync"

	"fyne.io/systray"
	cfg "github.com/automoto/foxpet/config"
	"github.com/pkg/browser"
)

// Menu is the tray's view of the pet.
type Menu struct {
	commands chan<- cfg.Command
	icon     []byte

	mu     sync.Mutex
	mode   cfg.Mode
	follow *systray.MenuItem
	wander *systray.MenuItem

	quit     chan struct{}
	quitOnce sync.Once
}

// New creates a menu that posts clicks to commands. icon may be nil.
func New(commands chan<- cfg.Command, icon []byte) *Menu {
	return &Menu{
		commands: commands,
		icon:     icon,
		mode:     cfg.ModeFollow,
		quit:     make(chan struct{}),
	}
}

// Start registers the tray with the OS alongside the ebiten main loop and
// returns the function that removes it again.
func (m *Menu) Start() (stop func()) {
	start, end := systray.RunWithExternalLoop(m.onReady, m.onExit)
	start()
	return end
}

// Checks reports which mode entries carry a check mark.
func Checks(mode cfg.Mode) (follow, wander bool) {
	return mode == cfg.ModeFollow, mode == cfg.ModeWander
}

// Sync redraws the check marks for mode. Safe to call before the tray is ready.
func (m *Menu) Sync(mode cfg.Mode) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mode = mode
	m.render()
}

// Mode returns the last mode the menu was synced to.
func (m *Menu) Mode() cfg.Mode {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mode
}

// render requires m.mu.
func (m *Menu) render() {
	if m.follow == nil || m.wander == nil {
		return
	}
	follow, wander := Checks(m.mode)
	setChecked(m.follow, follow)
	setChecked(m.wander, wander)
}

func setChecked(item *systray.MenuItem, on bool) {
	if on {
		item.Check()
	} else {
		item.Uncheck()
	}
}

func (m *Menu) send(cmd cfg.Command) bool {
	select {
	case m.commands <- cmd:
		return true
	default:
		log.Printf("[tray] Warning: dropping %s command, queue full", cmd)
		return false
	}
}

func (m *Menu) onReady() {
	if len(m.icon) > 0 {
		systray.SetIcon(m.icon)
	}
	systray.SetTitle(cfg.Tray.Title)
	systray.SetTooltip(cfg.Tray.Tooltip)

	info := systray.AddMenuItem(cfg.Tray.InfoLabel, "")
	info.Disable()
	link := systray.AddMenuItem(cfg.Tray.LinkLabel, cfg.Tray.LinkURL)
	systray.AddSeparator()

	follow := systray.AddMenuItemCheckbox(cfg.Tray.FollowLabel, "", false)
	wander := systray.AddMenuItemCheckbox(cfg.Tray.WanderLabel, "", false)
	systray.AddSeparator()
	exit := systray.AddMenuItem(cfg.Tray.ExitLabel, "")

	m.mu.Lock()
	m.follow, m.wander = follow, wander
	m.render()
	m.mu.Unlock()

	go m.loop(link, follow, wander, exit)
}

func (m *Menu) onExit() {
	m.quitOnce.Do(func() { close(m.quit) })
}

func (m *Menu) loop(link, follow, wander, exit *systray.MenuItem) {
	for {
		select {
		case <-link.ClickedCh:
			if err := browser.OpenURL(cfg.Tray.LinkURL); err != nil {
				log.Printf("[tray] Warning: could not open %s: %v", cfg.Tray.LinkURL, err)
			}
		case <-follow.ClickedCh:
			m.send(cfg.CommandFollow)
			m.rerender()
		case <-wander.ClickedCh:
			m.send(cfg.CommandWander)
			m.rerender()
		case <-exit.ClickedCh:
			m.send(cfg.CommandExit)
		case <-m.quit:
			return
		}
	}
}

// rerender undoes any check toggle the platform applied on click until the
// game confirms the new mode.
func (m *Menu) rerender() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.render()
}
