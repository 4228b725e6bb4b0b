package config

import (
	"image/color"
	"math"

	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/colornames"
)

// Default is the only layer the viewer draws on.
const Default ecs.LayerID = 0

// SimulationConfig contains world-level physics configuration values
type SimulationConfig struct {
	Gravity   float64 // px/s², applied to every body scaled by its gravity factor
	CellSize  float64 // broad phase cell edge in pixels
	MaxStep   float64 // longest tick the clock hands out, in seconds
	TimeScale float64
	AutoSort  bool   // re-sort the body list after every tick
	SortBy    string // "z", "x" or "y"
}

// BodyConfig contains the defaults a freshly spawned body starts from
type BodyConfig struct {
	Width             float64
	Height            float64
	MaxVelX           float64
	MaxVelY           float64
	GravityFactor     float64
	MinBounceVelocity float64
	SlopeStandingMin  float64 // radians
	SlopeStandingMax  float64 // radians
	Health            float64
}

// KindConfig tunes the sample body kinds
type KindConfig struct {
	PlayerAccelGround float64
	PlayerAccelAir    float64
	PlayerFriction    float64
	PlayerJump        float64
	PlayerMaxVelX     float64
	PlayerMaxVelY     float64
	PlayerHealth      float64

	BlobSpeed    float64
	BlobFriction float64
	BlobDamage   float64

	FireballSpeed      float64
	FireballFall       float64 // initial downward speed
	FireballMaxVelY    float64
	FireballBounce     float64
	FireballMaxBounces int
	FireballDamage     float64

	TriggerWait float64 // seconds between two fires; -1 fires once
	HurtDamage  float64

	PlatformSpeed float64 // px/s along the platform path
}

// ServerConfig contains headless server configuration values
type ServerConfig struct {
	TickRate int
	Port     int
	AppName  string
}

// DebugConfig contains debug/testing command-line options and draw colors
type DebugConfig struct {
	DrawBodies    bool
	DrawTiles     bool
	DrawDeadZones bool
	Overlay       bool // start with the debug overlay on
	Paused        bool // start paused

	TileColor     color.RGBA
	SlopeColor    color.RGBA
	BodyColor     color.RGBA
	StandingColor color.RGBA
	FixedColor    color.RGBA
	DeadZoneColor color.RGBA
	TextColor     color.RGBA
}

// CameraConfig contains camera follow values
type CameraConfig struct {
	FollowSmoothing float64 // fraction of the distance covered per frame
	LookUp          float64 // px the camera keeps above the player center
}

// Config holds general viewer configuration
type Config struct {
	Width  int
	Height int
	Scale  float64
	Title  string
	// ScaleSteps are the window scales the pause menu cycles through.
	ScaleSteps []float64
}

// Global configuration instances
var C *Config
var Simulation SimulationConfig
var Body BodyConfig
var Kinds KindConfig
var Server ServerConfig
var Debug DebugConfig
var Camera CameraConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Scale:  2,
		Title:  "tilephys",

		ScaleSteps: []float64{1, 2, 3},
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.15,
		LookUp:          24,
	}

	Simulation = SimulationConfig{
		Gravity:   800,
		CellSize:  64,
		MaxStep:   0.05,
		TimeScale: 1,
		AutoSort:  false,
		SortBy:    "z",
	}

	Body = BodyConfig{
		Width:             16,
		Height:            16,
		MaxVelX:           100,
		MaxVelY:           100,
		GravityFactor:     1,
		MinBounceVelocity: 40,
		SlopeStandingMin:  44 * math.Pi / 180,
		SlopeStandingMax:  136 * math.Pi / 180,
		Health:            10,
	}

	Kinds = KindConfig{
		PlayerAccelGround: 400,
		PlayerAccelAir:    200,
		PlayerFriction:    600,
		PlayerJump:        320,
		PlayerMaxVelX:     100,
		PlayerMaxVelY:     400,
		PlayerHealth:      3,

		BlobSpeed:    36,
		BlobFriction: 150,
		BlobDamage:   1,

		FireballSpeed:      800,
		FireballFall:       200,
		FireballMaxVelY:    400,
		FireballBounce:     0.8,
		FireballMaxBounces: 3,
		FireballDamage:     1,

		TriggerWait: -1,
		HurtDamage:  10,

		PlatformSpeed: 40,
	}

	Server = ServerConfig{
		TickRate: 60,
		Port:     7373,
		AppName:  "tilephys",
	}

	Debug = DebugConfig{
		DrawBodies:    true,
		DrawTiles:     true,
		DrawDeadZones: true,

		TileColor:     colornames.Slategray,
		SlopeColor:    colornames.Lightseagreen,
		BodyColor:     colornames.Orange,
		StandingColor: colornames.Limegreen,
		FixedColor:    colornames.Cornflowerblue,
		DeadZoneColor: colornames.Crimson,
		TextColor:     White,
	}
}

// NextScale returns the scale step after cur, wrapping to the first one.
// A scale between steps moves to the next larger step.
func (c *Config) NextScale(cur float64) float64 {
	if len(c.ScaleSteps) == 0 {
		return cur
	}
	for _, s := range c.ScaleSteps {
		if s > cur {
			return s
		}
	}
	return c.ScaleSteps[0]
}
