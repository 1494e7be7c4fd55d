package config

import (
	"image/color"
	"time"
)

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Dimensions
	Width  float64
	Height float64

	// Movement
	Speed float64 // units per tick

	// Combat
	MaxHealth            int
	MaxShield            int
	HitDamage            int           // health lost per unshielded hit
	ShieldDrain          int           // shield lost per shielded hit
	ShieldBrokenDuration time.Duration // real time the broken flag stays set

	// Spawn points, indexed by slot-1
	SpawnX [2]float64
	SpawnY float64

	Colors [2]color.RGBA
}

// BulletConfig contains projectile configuration
type BulletConfig struct {
	Width  float64
	Height float64
	Speed  float64 // units per tick along the facing axis

	Colors [2]color.RGBA // indexed by owner slot-1
}

// BotConfig contains the solo-mode opponent tuning
type BotConfig struct {
	SpeedFactor   float64       // fraction of Player.Speed
	ShootChance   float64       // per-tick probability of pulling the trigger
	ShootCooldown time.Duration // real time before the bot may shoot again
	Seed          int64         // RNG seed, fixed for deterministic replays
}

// MatchConfig contains match flow configuration
type MatchConfig struct {
	CountdownFrom int
	CountdownStep time.Duration

	DropTargetY float64
	DropSpeed   float64 // units per frame
	ReadyHold   time.Duration

	DefaultNames [2]string
	ComputerName string
}

// HUDConfig contains the in-game overlay layout
type HUDConfig struct {
	Margin        float64
	BarWidth      float64
	BarHeight     float64
	BarGap        float64
	NameBoxWidth  float64
	NameBoxHeight float64

	ControlsBoxWidth  float64
	ControlsBoxHeight float64

	BannerWidth  float64
	BannerHeight float64
	BannerY      float64

	ShieldRingWidth float32

	HealthColor       color.RGBA
	ShieldColor       color.RGBA
	ShieldEmptyColor  color.RGBA
	OutlineColor      color.RGBA
	NameBoxColor      color.RGBA
	ControlsBoxColor  color.RGBA
	ShieldRingColor   color.RGBA
	ShieldBrokenColor color.RGBA
	OverlayColor      color.RGBA
	BackgroundColor   color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Bullet BulletConfig
var Bot BotConfig
var Match MatchConfig
var HUD HUDConfig
var Debug DebugConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu      bool // Start the countdown immediately with default names
	ShowCollision bool // Outline collision objects and print match internals
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 0, B: 255, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 165, B: 0, A: 255}
	Gray         = color.RGBA{R: 119, G: 119, B: 119, A: 255}
	DarkGray     = color.RGBA{R: 68, G: 68, B: 68, A: 255}
	ShieldBlue   = color.RGBA{R: 74, G: 144, B: 226, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  800,
		Height: 600,
		Title:  "Arena Duel",
	}

	Player = PlayerConfig{
		Width:                40,
		Height:               40,
		Speed:                5,
		MaxHealth:            100,
		MaxShield:            100,
		HitDamage:            10,
		ShieldDrain:          10,
		ShieldBrokenDuration: 500 * time.Millisecond,
		SpawnX:               [2]float64{100, 600},
		SpawnY:               0,
		Colors:               [2]color.RGBA{Blue, Red},
	}

	Bullet = BulletConfig{
		Width:  10,
		Height: 4,
		Speed:  10,
		Colors: [2]color.RGBA{Cyan, Orange},
	}

	Bot = BotConfig{
		SpeedFactor:   0.6,
		ShootChance:   0.01, // ~1 shot per 100 ticks when unblocked
		ShootCooldown: 500 * time.Millisecond,
		Seed:          42,
	}

	Match = MatchConfig{
		CountdownFrom: 3,
		CountdownStep: time.Second,
		DropTargetY:   300,
		DropSpeed:     5,
		ReadyHold:     2 * time.Second,
		DefaultNames:  [2]string{"Player 1", "Player 2"},
		ComputerName:  "Computer",
	}

	HUD = HUDConfig{
		Margin:            20,
		BarWidth:          200,
		BarHeight:         15,
		BarGap:            5,
		NameBoxWidth:      220,
		NameBoxHeight:     30,
		ControlsBoxWidth:  300,
		ControlsBoxHeight: 50,
		BannerWidth:       500,
		BannerHeight:      50,
		BannerY:           100,
		ShieldRingWidth:   3,
		HealthColor:       Red,
		ShieldColor:       ShieldBlue,
		ShieldEmptyColor:  Gray,
		OutlineColor:      White,
		NameBoxColor:      White,
		ControlsBoxColor:  DarkGray,
		ShieldRingColor:   Cyan,
		ShieldBrokenColor: Orange,
		OverlayColor:      BlackOverlay,
		BackgroundColor:   color.RGBA{R: 17, G: 17, B: 17, A: 255},
	}

	Debug = DebugConfig{
		SkipMenu:      false,
		ShowCollision: false,
	}
}
