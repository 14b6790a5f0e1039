package systems

import (
	"math"

	"github.com/automoto/tanks-mp/components"
	cfg "github.com/automoto/tanks-mp/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateCameras moves every camera toward its framing target.
func UpdateCameras(e *ecs.ECS) {
	var targets []*donburi.Entry
	if entry, ok := components.CameraTargets.First(e.World); ok {
		targets = components.CameraTargets.Get(entry).Targets
	}

	components.Camera.Each(e.World, func(entry *donburi.Entry) {
		cam := components.Camera.Get(entry)
		switch cam.Kind {
		case cfg.CameraOverview:
			x, y, size, ok := overviewFraming(cam, targets)
			if !ok {
				break
			}
			if cam.Snap {
				cam.Position.X, cam.Position.Y, cam.Size = x, y, size
				cam.Snap = false
				break
			}
			cam.Position.X += (x - cam.Position.X) * cfg.Camera.FollowSmoothing
			cam.Position.Y += (y - cam.Position.Y) * cfg.Camera.FollowSmoothing
			cam.Size += (size - cam.Size) * cfg.Camera.ZoomSmoothing
		case cfg.CameraCombatant:
			if !cam.HasFollowTarget() || !cam.Follow.HasComponent(components.Object) {
				break
			}
			x, y := components.Object.Get(cam.Follow).Center()
			if cam.Snap {
				cam.Position.X, cam.Position.Y = x, y
				cam.Snap = false
				break
			}
			cam.Position.X += (x - cam.Position.X) * cfg.Camera.FollowSmoothing
			cam.Position.Y += (y - cam.Position.Y) * cfg.Camera.FollowSmoothing
		}
	})

	updateScreenShake(e)
}

// overviewFraming returns the center and half-height that fit every active target.
func overviewFraming(cam *components.CameraData, targets []*donburi.Entry) (x, y, size float64, ok bool) {
	n := 0
	for _, t := range targets {
		if !targetActive(t) {
			continue
		}
		tx, ty := components.Object.Get(t).Center()
		x += tx
		y += ty
		n++
	}
	if n == 0 {
		return 0, 0, 0, false
	}
	x /= float64(n)
	y /= float64(n)

	aspect := viewportAspect(cam.Viewport)
	for _, t := range targets {
		if !targetActive(t) {
			continue
		}
		tx, ty := components.Object.Get(t).Center()
		size = math.Max(size, math.Abs(ty-y))
		size = math.Max(size, math.Abs(tx-x)/aspect)
	}
	size += cfg.Camera.ScreenEdgeBuffer
	size = math.Max(size, cfg.Camera.MinSize)
	return x, y, size, true
}

func targetActive(t *donburi.Entry) bool {
	if t == nil || !t.Valid() || !t.HasComponent(components.Object) {
		return false
	}
	if t.HasComponent(components.Tank) {
		return components.Tank.Get(t).Active
	}
	return true
}

func viewportAspect(r cfg.Rect) float64 {
	if r.H <= 0 {
		return 1
	}
	return (r.W * float64(cfg.C.Width)) / (r.H * float64(cfg.C.Height))
}

// SetCameraTargets rebuilds the overview camera's target list from the roster.
func SetCameraTargets(e *ecs.ECS, roster *components.RosterData) {
	entry, ok := components.CameraTargets.First(e.World)
	if !ok {
		return
	}
	targets := make([]*donburi.Entry, 0, roster.Len())
	for _, c := range roster.Combatants {
		if c.Instance != nil {
			targets = append(targets, c.Instance)
		}
	}
	components.CameraTargets.Get(entry).Targets = targets
}

// SnapOverviewCamera jumps the overview camera to its framing on the next update.
func SnapOverviewCamera(e *ecs.ECS) {
	if cam := cameraOfKind(e, cfg.CameraOverview); cam != nil {
		cam.Snap = true
	}
}

func cameraOfKind(e *ecs.ECS, kind cfg.CameraKindID) *components.CameraData {
	var found *components.CameraData
	components.Camera.Each(e.World, func(entry *donburi.Entry) {
		if cam := components.Camera.Get(entry); found == nil && cam.Kind == kind {
			found = cam
		}
	})
	return found
}

func combatantCamera(e *ecs.ECS, slot int) *components.CameraData {
	var found *components.CameraData
	components.Camera.Each(e.World, func(entry *donburi.Entry) {
		cam := components.Camera.Get(entry)
		if cam.Kind == cfg.CameraCombatant && cam.Slot == slot {
			found = cam
		}
	})
	return found
}

// bindCombatantCamera points the combatant's camera at its current tank.
func bindCombatantCamera(e *ecs.ECS, c *components.CombatantData) *components.CameraData {
	cam := combatantCamera(e, c.PlayerIndex)
	if cam == nil {
		return nil
	}
	cam.SetFollowTarget(c.Instance)
	cam.SetLookAtTarget(c.Instance)
	cam.Snap = true
	return cam
}

// ActiveCameraCount returns how many cameras of a kind are active.
func ActiveCameraCount(e *ecs.ECS, kind cfg.CameraKindID) int {
	n := 0
	components.Camera.Each(e.World, func(entry *donburi.Entry) {
		if cam := components.Camera.Get(entry); cam.Kind == kind && cam.Active {
			n++
		}
	})
	return n
}

// updateScreenShake advances and expires shakes on every camera.
func updateScreenShake(e *ecs.ECS) {
	var done []*donburi.Entry
	components.ScreenShake.Each(e.World, func(entry *donburi.Entry) {
		shake := components.ScreenShake.Get(entry)
		shake.Elapsed++
		if shake.Elapsed >= shake.Duration {
			done = append(done, entry)
		}
	})
	for _, entry := range done {
		entry.RemoveComponent(components.ScreenShake)
	}
}

// ShakeOffset returns the current shake displacement of a camera.
func ShakeOffset(entry *donburi.Entry) (float64, float64) {
	if !entry.HasComponent(components.ScreenShake) {
		return 0, 0
	}
	shake := components.ScreenShake.Get(entry)

	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	intensity := shake.Intensity * progress

	return math.Sin(float64(shake.Elapsed)*1.1) * intensity, math.Cos(float64(shake.Elapsed)*1.3) * intensity
}

// TriggerScreenShake starts a shake on every camera, keeping any stronger shake in progress.
func TriggerScreenShake(e *ecs.ECS, intensity float64, duration int) {
	var fresh []*donburi.Entry
	components.Camera.Each(e.World, func(entry *donburi.Entry) {
		if !entry.HasComponent(components.ScreenShake) {
			fresh = append(fresh, entry)
			return
		}
		shake := components.ScreenShake.Get(entry)
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
	})
	for _, entry := range fresh {
		entry.AddComponent(components.ScreenShake)
		components.ScreenShake.Set(entry, &components.ScreenShakeData{
			Intensity: intensity,
			Duration:  duration,
		})
	}
}
