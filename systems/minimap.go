package systems

import (
	"math"

	"github.com/automoto/tanks-mp/components"
	cfg "github.com/automoto/tanks-mp/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMinimapZoom resizes the minimap camera while the zoom keys are held.
func UpdateMinimapZoom(e *ecs.ECS) {
	entry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	in := components.Input.Get(entry)
	zoomIn, zoomOut := in.Held(cfg.ActionMinimapZoomIn), in.Held(cfg.ActionMinimapZoomOut)

	components.Camera.Each(e.World, func(entry *donburi.Entry) {
		cam := components.Camera.Get(entry)
		if cam.Kind != cfg.CameraMinimap {
			return
		}
		cam.Size = ZoomMinimap(cam.Size, zoomIn, zoomOut, cfg.DeltaTime())
	})
}

// ZoomMinimap grows the size while zoomIn is held and shrinks it while zoomOut is held,
// staying within the configured bounds.
func ZoomMinimap(size float64, zoomIn, zoomOut bool, dt float64) float64 {
	if zoomIn {
		size += cfg.Minimap.ZoomSpeed * dt
	}
	if zoomOut {
		size -= cfg.Minimap.ZoomSpeed * dt
	}
	return clampMinimapSize(size)
}

// MinimapSize returns the current minimap camera size, or the default when there is none.
func MinimapSize(e *ecs.ECS) float64 {
	if cam := cameraOfKind(e, cfg.CameraMinimap); cam != nil {
		return cam.Size
	}
	return cfg.Minimap.DefaultSize
}

func clampMinimapSize(size float64) float64 {
	return math.Max(cfg.Minimap.MinSize, math.Min(cfg.Minimap.MaxSize, size))
}
