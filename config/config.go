package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Render layers
const (
	Default ecs.LayerID = iota
	Overlay
)

// ArenaConfig describes the fixed playfield. The arena map can override
// the size and spawn points at load time.
type ArenaConfig struct {
	Width     int
	Height    int
	CellSize  int // resolv space cell size
	MapPath   string
	BlueSpawn Point
	RedSpawn  Point
}

// Point is a top-left position in arena pixels.
type Point struct {
	X, Y float64
}

// CubeConfig holds the shared actor constants.
type CubeConfig struct {
	Size      float64
	MaxHealth int
	MoveSpeed float64 // pixels per frame for human-controlled cubes
}

// ChargeConfig holds the dash attack tuning. PvP values apply when red is
// controlled by a second player.
type ChargeConfig struct {
	Chance        float64 // per-frame probability for the AI
	FlashDuration time.Duration
	FlashCycles   int
	Speed         float64 // pixels per frame
	Endlag        time.Duration
	Damage        int
	InstantKill   bool // AI charge contact defeats the target outright

	PvPFlashCycles    int
	PvPSpeedScale     float64
	PvPBoundaryDamage int
	PvPBoundaryStun   time.Duration
}

// BeamConfig holds the telegraphed beam special tuning.
type BeamConfig struct {
	Chance        float64 // per-frame probability for the AI once in range
	Range         float64
	FlashDuration time.Duration
	FlashCycles   int
	Width         float64
	Length        float64
	Damage        int
	Linger        time.Duration
	Cooldown      time.Duration
}

// MeleeConfig holds the blue slash tuning.
type MeleeConfig struct {
	Damage   int
	Linger   time.Duration
	Cooldown time.Duration
}

// ParryConfig holds the cosmetic parry indicator durations.
type ParryConfig struct {
	SuccessWindow time.Duration
	FailWindow    time.Duration
}

// ScreenShakeConfig holds hit feedback values.
type ScreenShakeConfig struct {
	Intensity float64 // pixels
	Duration  time.Duration
}

// ColorConfig maps actor and effect colours.
type ColorConfig struct {
	Background  color.RGBA
	Blue        color.RGBA
	Red         color.RGBA
	Flash       color.RGBA // telegraph blink
	Release     color.RGBA // final beam blinks
	Melee       color.RGBA
	Beam        color.RGBA
	ParryOK     color.RGBA
	ParryFail   color.RGBA
	HealthBack  color.RGBA
	HealthFront color.RGBA
	Text        color.RGBA

	// Roster colour names to display colours
	Named map[string]color.RGBA
}

// UIConfig holds HUD layout values.
type UIConfig struct {
	HealthBarWidth  float64
	HealthBarHeight float64
	Margin          float64
}

// Config holds window values.
type Config struct {
	Width  int
	Height int
	TPS    int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu   bool   // Skip menu and go directly to a match
	ForceDebug bool   // Debug mode regardless of the stored flag
	StartMode  string // "ai" or "pvp" when skipping the menu
	AppName    string // gdata namespace
	TuningPath string
	DrawBodies bool // outline resolv bodies
}

var C *Config
var Arena ArenaConfig
var Cube CubeConfig
var Charge ChargeConfig
var Beam BeamConfig
var Melee MeleeConfig
var Parry ParryConfig
var ScreenShake ScreenShakeConfig
var Colors ColorConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black      = color.RGBA{A: 255}
	Gray       = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	Yellow     = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red        = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green      = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue       = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	Cyan       = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Purple     = color.RGBA{R: 128, G: 0, B: 128, A: 255}
	Pink       = color.RGBA{R: 255, G: 192, B: 203, A: 255}
	Brown      = color.RGBA{R: 139, G: 69, B: 19, A: 255}
	DarkBlue   = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	LightBlue  = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	BlackAlpha = color.RGBA{A: 180}
)

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
		TPS:    60,
	}

	Arena = ArenaConfig{
		Width:     800,
		Height:    600,
		CellSize:  25,
		MapPath:   "arenas/arena.tmx",
		BlueSpawn: Point{X: 20, Y: 275},
		RedSpawn:  Point{X: 800 - 50 - 20, Y: 275},
	}

	Cube = CubeConfig{
		Size:      50,
		MaxHealth: 100,
		MoveSpeed: 5,
	}

	Charge = ChargeConfig{
		Chance:        0.001,
		FlashDuration: 200 * time.Millisecond,
		FlashCycles:   2,
		Speed:         15,
		Endlag:        2000 * time.Millisecond,
		Damage:        25,
		InstantKill:   true,

		PvPFlashCycles:    3,
		PvPSpeedScale:     1.5,
		PvPBoundaryDamage: 25,
		PvPBoundaryStun:   3000 * time.Millisecond,
	}

	Beam = BeamConfig{
		Chance:        0.05,
		Range:         200,
		FlashDuration: 150 * time.Millisecond,
		FlashCycles:   4,
		Width:         10,
		Length:        700,
		Damage:        30,
		Linger:        600 * time.Millisecond,
		Cooldown:      4000 * time.Millisecond,
	}

	Melee = MeleeConfig{
		Damage:   25,
		Linger:   500 * time.Millisecond,
		Cooldown: 3000 * time.Millisecond,
	}

	Parry = ParryConfig{
		SuccessWindow: 200 * time.Millisecond,
		FailWindow:    100 * time.Millisecond,
	}

	ScreenShake = ScreenShakeConfig{
		Intensity: 6,
		Duration:  250 * time.Millisecond,
	}

	Colors = ColorConfig{
		Background:  White,
		Blue:        Blue,
		Red:         Red,
		Flash:       Black,
		Release:     Cyan,
		Melee:       Purple,
		Beam:        Cyan,
		ParryOK:     Yellow,
		ParryFail:   Gray,
		HealthBack:  Red,
		HealthFront: Green,
		Text:        Black,
		Named: map[string]color.RGBA{
			"blue":        Blue,
			"red":         Red,
			"green":       Green,
			"pink":        Pink,
			"brown":       Brown,
			"dark blue":   DarkBlue,
			"<undefined>": Gray,
		},
	}

	UI = UIConfig{
		HealthBarWidth:  200,
		HealthBarHeight: 20,
		Margin:          10,
	}

	Debug = DebugConfig{
		AppName: "cubecombat",
	}
}

// NamedColor returns the display colour for a roster colour name, gray
// when unknown.
func NamedColor(name string) color.RGBA {
	if c, ok := Colors.Named[name]; ok {
		return c
	}
	return Gray
}
