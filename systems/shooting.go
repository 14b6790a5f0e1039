package systems

import (
	"github.com/automoto/tanks-mp/components"
	cfg "github.com/automoto/tanks-mp/config"
	"github.com/automoto/tanks-mp/systems/factory"
	"github.com/automoto/tanks-mp/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type pendingShot struct {
	owner *donburi.Entry
	shot  components.Shot
}

// UpdateShooting charges and releases shells for every controllable tank.
func UpdateShooting(e *ecs.ECS) {
	dt := cfg.DeltaTime()
	var shots []pendingShot

	tags.Tank.Each(e.World, func(entry *donburi.Entry) {
		tank := components.Tank.Get(entry)
		shooting := components.Shooting.Get(entry)
		if !tank.Active || !tank.ControlEnabled {
			shooting.Cancel()
			return
		}

		in := components.PlayerInput.Get(entry)
		triggers := components.Triggers{
			MainDown: in.JustPressed(cfg.ActionFire),
			MainHeld: in.Held(cfg.ActionFire),
			MainUp:   in.JustReleased(cfg.ActionFire),
			AltDown:  in.JustPressed(cfg.ActionAltFire),
			AltHeld:  in.Held(cfg.ActionAltFire),
			AltUp:    in.JustReleased(cfg.ActionAltFire),
		}
		if shot, fired := shooting.Update(triggers, dt); fired {
			shots = append(shots, pendingShot{owner: entry, shot: shot})
		}
	})

	for _, p := range shots {
		factory.CreateShell(e, p.owner, p.shot)
	}
}
