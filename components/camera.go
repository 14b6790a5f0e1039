package components

import (
	cfg "github.com/automoto/tanks-mp/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is one rendering viewport. Viewport is in normalized screen
// coordinates with the origin at the bottom-left corner.
type CameraData struct {
	Kind     cfg.CameraKindID
	Slot     int // 1-based player slot for combatant cameras, 0 otherwise
	Active   bool
	Viewport cfg.Rect
	Follow   *donburi.Entry
	LookAt   *donburi.Entry
	Position math.Vec2 // World-space center
	Size     float64   // Half of the visible world height
	Snap     bool      // Jump to the target on the next update
}

func (c *CameraData) SetActive(active bool) {
	c.Active = active
}

func (c *CameraData) SetViewportRect(r cfg.Rect) {
	c.Viewport = r
}

func (c *CameraData) SetFollowTarget(e *donburi.Entry) {
	c.Follow = e
}

func (c *CameraData) SetLookAtTarget(e *donburi.Entry) {
	c.LookAt = e
}

// HasFollowTarget reports whether the camera follows a live entity.
func (c *CameraData) HasFollowTarget() bool {
	return c.Follow != nil && c.Follow.Valid()
}

var Camera = donburi.NewComponentType[CameraData]()

// CameraTargetsData lists the entities the overview camera frames.
type CameraTargetsData struct {
	Targets []*donburi.Entry
}

var CameraTargets = donburi.NewComponentType[CameraTargetsData]()

type ScreenShakeData struct {
	Intensity float64 // world units
	Duration  int     // frames
	Elapsed   int
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()
