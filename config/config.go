package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer every client system draws on.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// NetConfig contains connection settings
type NetConfig struct {
	ServerAddr     string // host:port of the game server
	Version        string // sent in LoginRequest, must match the server
	SnapshotBuffer int    // pending snapshots before the transport drops one
	EventBuffer    int    // pending events before the transport drops one
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing float64 // How fast camera follows player (0.0-1.0)
}

// ScreenShakeConfig contains screen shake effect configuration
type ScreenShakeConfig struct {
	CritIntensity  float64 // pixels
	CritDuration   int     // frames
	BurstIntensity float64
	BurstDuration  int
}

// WorldConfig contains world drawing configuration
type WorldConfig struct {
	TileSize       float64
	TileColors     map[uint8]color.RGBA
	EntityRadius   float64
	ItemSize       float64
	PropSize       float64
	LabelOffsetY   float64
	HealthBarWidth float64
	HealthBarH     float64
	EntityColors   map[int]color.RGBA
	LocalPlayer    color.RGBA
	ItemColor      color.RGBA
	PropColor      color.RGBA
}

// FogConfig contains darkness layer configuration
type FogConfig struct {
	ExploredAlpha float64
	LightRadius   float64
	Falloff       float64
	NoiseAlpha    float64 // grain overlay strength (0 disables it)
	NoiseSeed     int64
}

// AimConfig contains angle resolution configuration
type AimConfig struct {
	TargetRadiusTiles float64 // auto-target search radius in tiles
	MoveDeadzone      float64 // axis magnitude below which movement gives no direction
}

// UIConfig contains UI-related configuration values
type UIConfig struct {
	// HUD dimensions
	BarWidth  float64
	BarHeight float64
	BarMargin float64

	// Colors
	HPColor      color.RGBA
	MPColor      color.RGBA
	XPColor      color.RGBA
	BarBgColor   color.RGBA
	PanelBg      color.RGBA
	SlotBg       color.RGBA
	SlotFocused  color.RGBA
	SlotDisabled color.RGBA
	TextColor    color.RGBA
	DimText      color.RGBA
	StaleColor   color.RGBA

	// Font sizes
	HUDFontSize   float64
	LargeFontSize float64
	PanelFontSize float64
	TitleFontSize float64

	SlotSize    int
	SlotSpacing int
}

// DesktopConfig contains desktop integration settings
type DesktopConfig struct {
	DiscordAppID  string // empty disables rich presence
	Notifications bool
}

// Global configuration instances
var C *Config
var Net NetConfig
var Camera CameraConfig
var ScreenShake ScreenShakeConfig
var World WorldConfig
var Fog FogConfig
var Aim AimConfig
var UI UIConfig
var Desktop DesktopConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Focused panel cells
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "Emberveil",
	}

	Net = NetConfig{
		ServerAddr:     "localhost:7373",
		Version:        "0.1.0",
		SnapshotBuffer: 8,
		EventBuffer:    64,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.12,
	}

	ScreenShake = ScreenShakeConfig{
		CritIntensity:  3.0,
		CritDuration:   8,
		BurstIntensity: 4.0,
		BurstDuration:  10,
	}

	World = WorldConfig{
		TileSize: 32,
		// Keys are netconfig.TileKind values.
		TileColors: map[uint8]color.RGBA{
			1: {R: 70, G: 64, B: 58, A: 255},  // floor
			2: {R: 34, G: 30, B: 36, A: 255},  // wall
			3: {R: 30, G: 60, B: 110, A: 255}, // water
			4: {R: 48, G: 92, B: 52, A: 255},  // grass
		},
		EntityRadius:   10,
		ItemSize:       8,
		PropSize:       12,
		LabelOffsetY:   -22,
		HealthBarWidth: 24,
		HealthBarH:     3,
		// Keys are netconfig.EntityKind values.
		EntityColors: map[int]color.RGBA{
			0: {R: 120, G: 170, B: 255, A: 255}, // other players
			1: {R: 210, G: 70, B: 60, A: 255},   // mobs
			2: {R: 240, G: 210, B: 120, A: 255}, // npcs
			3: {R: 110, G: 110, B: 110, A: 255}, // static
			4: {R: 90, G: 200, B: 120, A: 255},  // resources
		},
		LocalPlayer: color.RGBA{R: 255, G: 255, B: 255, A: 255},
		ItemColor:   color.RGBA{R: 255, G: 215, B: 0, A: 255},
		PropColor:   color.RGBA{R: 90, G: 80, B: 70, A: 255},
	}

	Fog = FogConfig{
		ExploredAlpha: 0.6,
		LightRadius:   180,
		Falloff:       60,
		NoiseAlpha:    0.06,
		NoiseSeed:     7,
	}

	Aim = AimConfig{
		TargetRadiusTiles: 8,
		MoveDeadzone:      0.1,
	}

	UI = UIConfig{
		BarWidth:  120,
		BarHeight: 8,
		BarMargin: 6,

		HPColor:      color.RGBA{R: 200, G: 40, B: 40, A: 255},
		MPColor:      color.RGBA{R: 50, G: 90, B: 220, A: 255},
		XPColor:      color.RGBA{R: 220, G: 180, B: 40, A: 255},
		BarBgColor:   color.RGBA{R: 20, G: 20, B: 20, A: 200},
		PanelBg:      color.RGBA{R: 16, G: 14, B: 20, A: 230},
		SlotBg:       color.RGBA{R: 44, G: 40, B: 52, A: 255},
		SlotFocused:  LightBlue,
		SlotDisabled: color.RGBA{R: 30, G: 28, B: 34, A: 255},
		TextColor:    White,
		DimText:      color.RGBA{R: 150, G: 150, B: 150, A: 255},
		StaleColor:   BrightOrange,

		HUDFontSize:   12,
		LargeFontSize: 20,
		PanelFontSize: 12,
		TitleFontSize: 32,

		SlotSize:    28,
		SlotSpacing: 4,
	}

	Desktop = DesktopConfig{
		DiscordAppID:  "",
		Notifications: true,
	}
}
