package systems

import (
	"github.com/automoto/tanks-mp/components"
	cfg "github.com/automoto/tanks-mp/config"
	"github.com/yohamta/donburi/ecs"
)

// ViewportRect returns the normalized split-screen rectangle for a 0-based combatant index.
// Rectangles use a bottom-left origin, so Y 0.5 is the top half.
func ViewportRect(index, numPlayers int) cfg.Rect {
	if numPlayers <= 2 {
		if index == 0 {
			return cfg.Rect{X: 0, Y: 0.5, W: 1, H: 0.5}
		}
		return cfg.Rect{X: 0, Y: 0, W: 1, H: 0.5}
	}

	r := cfg.Rect{W: 0.5, H: 0.5}
	if index%2 == 1 {
		r.X = 0.5
	}
	if index < 2 {
		r.Y = 0.5
	}
	return r
}

// ApplyViewportLayout reassigns the rectangle of every bound combatant camera,
// toggles the minimap for 3 player games and rebuilds the overview targets.
func ApplyViewportLayout(e *ecs.ECS, roster *components.RosterData) {
	n := roster.Len()
	for _, c := range roster.Combatants {
		cam := combatantCamera(e, c.PlayerIndex)
		if cam == nil {
			continue
		}
		cam.SetViewportRect(ViewportRect(c.PlayerIndex-1, n))
	}

	if minimap := cameraOfKind(e, cfg.CameraMinimap); minimap != nil {
		minimap.SetActive(n == 3)
	}

	SetCameraTargets(e, roster)
}
