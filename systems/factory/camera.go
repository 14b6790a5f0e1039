package factory

import (
	"github.com/automoto/tanks-mp/archetypes"
	"github.com/automoto/tanks-mp/components"
	cfg "github.com/automoto/tanks-mp/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateOverviewCamera creates the full-screen camera framing every tank.
func CreateOverviewCamera(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{
		Kind:     cfg.CameraOverview,
		Active:   true,
		Viewport: cfg.Rect{X: 0, Y: 0, W: 1, H: 1},
		Size:     cfg.Camera.OverviewStartSize,
		Snap:     true,
	})
	components.Camera.Get(camera).Position.X = x
	components.Camera.Get(camera).Position.Y = y
	return camera
}

// CreateCombatantCamera creates a split-screen camera for a 1-based player slot.
func CreateCombatantCamera(ecs *ecs.ECS, slot int) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{
		Kind: cfg.CameraCombatant,
		Slot: slot,
		Size: cfg.Camera.CombatantCamSize,
		Snap: true,
	})
	return camera
}

// CreateMinimapCamera creates the fixed camera for the empty quadrant of 3 player games.
func CreateMinimapCamera(ecs *ecs.ECS, x, y, size float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{
		Kind:     cfg.CameraMinimap,
		Viewport: cfg.Minimap.Viewport,
		Size:     size,
	})
	components.Camera.Get(camera).Position.X = x
	components.Camera.Get(camera).Position.Y = y
	return camera
}

// CreateCameraRig creates the overview camera, one combatant camera per slot and the minimap camera,
// all centered on the given point.
func CreateCameraRig(ecs *ecs.ECS, slots int, x, y, minimapSize float64) {
	CreateOverviewCamera(ecs, x, y)
	for slot := 1; slot <= slots; slot++ {
		CreateCombatantCamera(ecs, slot)
	}
	CreateMinimapCamera(ecs, x, y, minimapSize)
}
