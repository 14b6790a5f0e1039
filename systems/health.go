package systems

import (
	"github.com/automoto/tanks-mp/components"
	"github.com/automoto/tanks-mp/tags"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// NewUpdateHealth creates a system that deactivates tanks whose health ran out.
func NewUpdateHealth(spawner Spawner) ecs.System {
	return func(e *ecs.ECS) {
		var destroyed []*donburi.Entry
		tags.Tank.Each(e.World, func(entry *donburi.Entry) {
			if components.Tank.Get(entry).Active && components.Health.Get(entry).Current <= 0 {
				destroyed = append(destroyed, entry)
			}
		})
		for _, entry := range destroyed {
			log.Info("tank destroyed", "player", components.Tank.Get(entry).PlayerIndex)
			spawner.SetActive(e, entry, false)
		}
	}
}
