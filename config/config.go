package config

import (
	"image/color"
	"time"

	"github.com/automoto/foxpet/shared/petsim"
	dmath "github.com/yohamta/donburi/features/math"
)

// Default is the ECS layer everything is drawn on.
const Default = 0

// AnimationConfig contains animation clock configuration values
type AnimationConfig struct {
	Interval  time.Duration // Time between frame advances
	Frames    int           // Frames per direction used while moving
	IdleFrame int           // Frame shown while resting

	FadeInSeconds float32 // Spawn fade-in duration
}

// WindowConfig contains the overlay window configuration
type WindowConfig struct {
	Title string
	TPS   int // Ebiten updates per second

	// Used when the monitor size cannot be queried
	FallbackScreenWidth  int
	FallbackScreenHeight int
}

// TrayConfig contains tray menu labels and behavior
type TrayConfig struct {
	Title       string
	Tooltip     string
	InfoLabel   string // Static, disabled entry
	LinkLabel   string
	LinkURL     string
	FollowLabel string
	WanderLabel string
	ExitLabel   string

	CommandBuffer int // Pending menu commands before clicks are dropped
}

// AssetsConfig contains asset file names, resolved next to the executable
type AssetsConfig struct {
	SpriteSheet string // Required; the process exits without it
	TrayIcon    string // Optional
}

// DebugConfig contains compiled-in debugging switches
type DebugConfig struct {
	Overlay   bool // Draw mode, behavior and timer over the sprite
	TextColor color.RGBA
	FontSize  float64
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Pet petsim.Tuning
var Sprite petsim.Atlas
var Animation AnimationConfig
var Window WindowConfig
var Tray TrayConfig
var Assets AssetsConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	Sprite = petsim.Atlas{
		CellWidth:  48,
		CellHeight: 64,
		Columns:    3,
		Scale:      2,
	}

	w, h := Sprite.FrameSize()
	C = &Config{
		Width:  w,
		Height: h,
	}

	Pet = petsim.Tuning{
		// Speeds (pixels per logic tick)
		WanderSpeed: 1.2,
		LoiterSpeed: 0.8,
		ChaseSpeed:  2.8,
		SprintSpeed: 7.5,

		Acceleration:  0.15, // Exponential smoothing toward the target speed
		MovingEpsilon: 0.1,

		// Distances
		StopThreshold:  5.0,
		SprintDistance: 800.0,
		LoiterTrigger:  60.0,
		LoiterNear:     150.0,
		WanderRadius:   500.0,

		// Loitering
		WaitMinTicks:   180,
		WaitMaxTicks:   480,
		LoiterAttempts: 20,

		RetargetChance: 0.005, // Per tick, once a wander target is reached

		TickInterval: 16 * time.Millisecond,

		LoiterMargin: petsim.Margins{Min: 30, Max: 150},
		WanderMargin: petsim.Margins{Min: 100, Max: 200},

		Start: dmath.Vec2{X: 500, Y: 500},

		FrameWidth:  float64(w),
		FrameHeight: float64(h),
	}

	Animation = AnimationConfig{
		Interval:      150 * time.Millisecond,
		Frames:        3,
		IdleFrame:     1,
		FadeInSeconds: 0.4,
	}

	Window = WindowConfig{
		Title:                "Fox Companion",
		TPS:                  60,
		FallbackScreenWidth:  1920,
		FallbackScreenHeight: 1080,
	}

	Tray = TrayConfig{
		Title:         "Fox",
		Tooltip:       "Fox Companion",
		InfoLabel:     "by Glitchchh",
		LinkLabel:     "GitHub Profile",
		LinkURL:       "https://github.com/glitchchh",
		FollowLabel:   "Follow Cursor",
		WanderLabel:   "Full Wander",
		ExitLabel:     "Exit",
		CommandBuffer: 8,
	}

	Assets = AssetsConfig{
		SpriteSheet: "fox-NESW-bright.png",
		TrayIcon:    "icon.ico",
	}

	Debug = DebugConfig{
		Overlay:   false,
		TextColor: White,
		FontSize:  9,
	}
}
