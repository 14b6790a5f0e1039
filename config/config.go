package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// MatchConfig contains round and match flow configuration values
type MatchConfig struct {
	MinPlayers     int `yaml:"min_players"`
	MaxPlayers     int `yaml:"max_players"`
	DefaultPlayers int `yaml:"default_players"`

	// RoundsBudget is divided by the starting player count to get the rounds needed to win
	// (9/2=4, 9/3=3, 9/4=2).
	RoundsBudget int `yaml:"rounds_budget"`

	// Phase waits in seconds
	StartDelay float64 `yaml:"start_delay"`
	EndDelay   float64 `yaml:"end_delay"`

	// Proximity camera policy
	CameraSwapCheckFrequency     int     `yaml:"camera_swap_check_frequency"` // ticks between checks
	DistanceToSwapToGlobalCamera float64 `yaml:"distance_to_swap_to_global_camera"`

	// Scene loaded when a game winner is found
	MenuSceneIndex int `yaml:"menu_scene_index"`
}

// TankConfig contains tank movement and durability values
type TankConfig struct {
	Speed         float64 `yaml:"speed"`      // units per second
	TurnSpeed     float64 `yaml:"turn_speed"` // degrees per second
	Health        float64 `yaml:"health"`
	CollisionSize float64 `yaml:"collision_size"`
	BarrelLength  float64 `yaml:"barrel_length"`
}

// ShellConfig contains shooting and shell explosion values
type ShellConfig struct {
	MinLaunchForce   float64 `yaml:"min_launch_force"`
	MaxLaunchForce   float64 `yaml:"max_launch_force"`
	MaxChargeTime    float64 `yaml:"max_charge_time"`    // seconds to reach max force
	AltForceScale    float64 `yaml:"alt_force_scale"`    // alternate fire charges to MaxLaunchForce*AltForceScale
	AltVelocityScale float64 `yaml:"alt_velocity_scale"` // alternate shells fly this much faster
	FlightTime       float64 `yaml:"flight_time"`        // seconds before a shell lands
	Radius           float64 `yaml:"radius"`
	MaxDamage        float64 `yaml:"max_damage"`
	ExplosionRadius  float64 `yaml:"explosion_radius"`
	ExplosionFrames  int     `yaml:"explosion_frames"`
}

// CameraConfig contains camera rig behavior values
type CameraConfig struct {
	FollowSmoothing   float64 `yaml:"follow_smoothing"`   // How fast cameras approach their target (0.0-1.0)
	ZoomSmoothing     float64 `yaml:"zoom_smoothing"`     // How fast the overview camera resizes (0.0-1.0)
	ScreenEdgeBuffer  float64 `yaml:"screen_edge_buffer"` // Space between the outermost tank and the screen edge
	MinSize           float64 `yaml:"min_size"`           // Smallest overview half-height in world units
	CombatantCamSize  float64 `yaml:"combatant_cam_size"` // Half-height of a combatant camera in world units
	OverviewStartSize float64 `yaml:"overview_start_size"`
}

// Rect is a normalized viewport rectangle, origin at the bottom-left of the screen.
type Rect struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// MinimapConfig contains the fixed minimap camera slot used in 3 player games
type MinimapConfig struct {
	Viewport    Rect    `yaml:"viewport"`
	DefaultSize float64 `yaml:"default_size"`
	MinSize     float64 `yaml:"min_size"`
	MaxSize     float64 `yaml:"max_size"`
	ZoomSpeed   float64 `yaml:"zoom_speed"` // units per second
}

// AnnouncementConfig contains round/game message overlay values
type AnnouncementConfig struct {
	FadeInSeconds float32    `yaml:"fade_in_seconds"`
	LineHeight    int        `yaml:"line_height"`
	TextColor     color.RGBA `yaml:"-"`
	ShadowColor   color.RGBA `yaml:"-"`
}

// MenuConfig contains player count menu configuration values
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	Title           string
}

// RenderConfig contains world drawing values
type RenderConfig struct {
	BackgroundColor color.RGBA
	GroundColor     color.RGBA
	ObstacleColor   color.RGBA
	BorderColor     color.RGBA
	ShellColor      color.RGBA
	ExplosionColor  color.RGBA
	HealthBarWidth  float64 // world units
	HealthBarHeight float64
}

// PlayerColorConfig holds the color of every player slot
type PlayerColorConfig struct {
	Colors []color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int // simulation ticks per second
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool // Skip menu and go directly to a battle
	Players  int  // Player count used when skipping the menu
	Overlay  bool // Draw collision shapes and camera state
}

// Hard player count limits: one camera slot per quadrant, and a game needs an opponent.
const (
	PlayerLimitMin = 2
	PlayerLimitMax = 4
)

// Render layers
const (
	Default ecs.LayerID = iota
	HUD
)

// Global configuration instances
var C *Config
var Match MatchConfig
var Tank TankConfig
var Shell ShellConfig
var Camera CameraConfig
var Minimap MinimapConfig
var Announcement AnnouncementConfig
var Menu MenuConfig
var Render RenderConfig
var PlayerColors PlayerColorConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	BrightGreen  = color.RGBA{R: 0, G: 255, B: 60, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Ticks converts a duration in seconds to simulation ticks.
func Ticks(seconds float64) int {
	return int(seconds*float64(C.TPS) + 0.5)
}

// DeltaTime is the simulated time of one tick in seconds.
func DeltaTime() float64 {
	return 1.0 / float64(C.TPS)
}

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		TPS:    60,
	}

	Match = MatchConfig{
		MinPlayers:     2,
		MaxPlayers:     4,
		DefaultPlayers: 2,
		RoundsBudget:   9,

		StartDelay: 3.0,
		EndDelay:   3.0,

		CameraSwapCheckFrequency:     60, // once a second at 60 TPS
		DistanceToSwapToGlobalCamera: 25.0,

		MenuSceneIndex: 0,
	}

	Tank = TankConfig{
		Speed:         12.0,
		TurnSpeed:     180.0,
		Health:        100.0,
		CollisionSize: 3.0,
		BarrelLength:  2.5,
	}

	Shell = ShellConfig{
		MinLaunchForce:   15.0,
		MaxLaunchForce:   30.0,
		MaxChargeTime:    0.75,
		AltForceScale:    1.5,
		AltVelocityScale: 1.5,
		FlightTime:       1.0,
		Radius:           0.5,
		MaxDamage:        100.0,
		ExplosionRadius:  5.0,
		ExplosionFrames:  30,
	}

	Camera = CameraConfig{
		FollowSmoothing:   0.1,
		ZoomSmoothing:     0.05,
		ScreenEdgeBuffer:  4.0,
		MinSize:           6.5,
		CombatantCamSize:  14.0,
		OverviewStartSize: 20.0,
	}

	Minimap = MinimapConfig{
		Viewport:    Rect{X: 0.5, Y: 0, W: 0.5, H: 0.5},
		DefaultSize: 38.0,
		MinSize:     30.0,
		MaxSize:     45.0,
		ZoomSpeed:   4.0,
	}

	Announcement = AnnouncementConfig{
		FadeInSeconds: 0.4,
		LineHeight:    16,
		TextColor:     White,
		ShadowColor:   BlackOverlay,
	}

	Menu = MenuConfig{
		BackgroundColor: color.RGBA{R: 25, G: 30, B: 20, A: 255},
		TitleColor:      BrightOrange,
		Title:           "TANKS!",
	}

	Render = RenderConfig{
		BackgroundColor: color.RGBA{R: 10, G: 10, B: 10, A: 255},
		GroundColor:     color.RGBA{R: 196, G: 160, B: 110, A: 255},
		ObstacleColor:   color.RGBA{R: 110, G: 85, B: 60, A: 255},
		BorderColor:     color.RGBA{R: 0, G: 0, B: 0, A: 255},
		ShellColor:      color.RGBA{R: 40, G: 40, B: 40, A: 255},
		ExplosionColor:  color.RGBA{R: 255, G: 150, B: 30, A: 200},
		HealthBarWidth:  3.5,
		HealthBarHeight: 0.5,
	}

	// Slot colors: blue, red, green, yellow
	PlayerColors = PlayerColorConfig{
		Colors: []color.RGBA{
			{R: 42, G: 100, B: 178, A: 255},
			{R: 229, G: 46, B: 40, A: 255},
			{R: 60, G: 170, B: 60, A: 255},
			{R: 230, G: 200, B: 40, A: 255},
		},
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		SkipMenu: false,
		Players:  2,
	}
}
