package systems

import (
	"math"

	"github.com/automoto/tanks-mp/components"
	cfg "github.com/automoto/tanks-mp/config"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ProximityPolicy switches between the overview camera and split viewports
// depending on how far apart the active combatants are.
type ProximityPolicy struct {
	Threshold float64
}

func NewProximityPolicy() *ProximityPolicy {
	return &ProximityPolicy{Threshold: cfg.Match.DistanceToSwapToGlobalCamera}
}

// MaxDistance is the largest distance between any two active combatants.
func (p *ProximityPolicy) MaxDistance(roster *components.RosterData) float64 {
	maxDist := 0.0
	for i, a := range roster.Combatants {
		if !a.IsActive() {
			continue
		}
		ax, ay := a.Position()
		for _, b := range roster.Combatants[i+1:] {
			if !b.IsActive() {
				continue
			}
			bx, by := b.Position()
			if d := math.Hypot(ax-bx, ay-by); d > maxDist {
				maxDist = d
			}
		}
	}
	return maxDist
}

// Apply activates the overview camera when everyone is close and the split
// viewports otherwise. Reports whether the overview is now showing.
func (p *ProximityPolicy) Apply(e *ecs.ECS, roster *components.RosterData) bool {
	overview := p.MaxDistance(roster) <= p.Threshold

	if cam := cameraOfKind(e, cfg.CameraOverview); cam != nil {
		if cam.Active != overview {
			log.Debug("camera mode", "overview", overview)
		}
		cam.SetActive(overview)
	}

	components.Camera.Each(e.World, func(entry *donburi.Entry) {
		cam := components.Camera.Get(entry)
		if cam.Kind == cfg.CameraCombatant && cam.Follow != nil {
			cam.SetActive(!overview)
		}
	})

	if roster.Len() == 3 {
		if minimap := cameraOfKind(e, cfg.CameraMinimap); minimap != nil {
			minimap.SetActive(!overview)
		}
	}
	return overview
}
