package systems

import (
	"math"

	"github.com/automoto/tanks-mp/components"
	cfg "github.com/automoto/tanks-mp/config"
	"github.com/automoto/tanks-mp/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTanks turns and drives every controllable tank, stopping at obstacles and other tanks.
func UpdateTanks(e *ecs.ECS) {
	dt := cfg.DeltaTime()
	tags.Tank.Each(e.World, func(entry *donburi.Entry) {
		tank := components.Tank.Get(entry)
		if !tank.Active || !tank.ControlEnabled {
			return
		}
		in := components.PlayerInput.Get(entry)

		turn := 0.0
		if in.Held(cfg.ActionTurnLeft) {
			turn--
		}
		if in.Held(cfg.ActionTurnRight) {
			turn++
		}
		tank.Rotation = normalizeAngle(tank.Rotation + turn*cfg.Tank.TurnSpeed*math.Pi/180*dt)

		drive := 0.0
		if in.Held(cfg.ActionForward) {
			drive++
		}
		if in.Held(cfg.ActionBack) {
			drive--
		}
		if drive == 0 {
			return
		}

		fx, fy := tank.Forward()
		moveTank(components.Object.Get(entry), fx*drive*cfg.Tank.Speed*dt, fy*drive*cfg.Tank.Speed*dt)
	})
}

// moveTank applies a displacement one axis at a time, snapping to contact on collision.
func moveTank(obj *components.ObjectData, dx, dy float64) {
	if check := obj.Check(dx, 0, tags.ResolvSolid, tags.ResolvTank); check != nil {
		if blockers := blockingObjects(check); len(blockers) > 0 {
			dx = check.ContactWithObject(blockers[0]).X()
		}
	}
	obj.X += dx

	if check := obj.Check(0, dy, tags.ResolvSolid, tags.ResolvTank); check != nil {
		if blockers := blockingObjects(check); len(blockers) > 0 {
			dy = check.ContactWithObject(blockers[0]).Y()
		}
	}
	obj.Y += dy

	obj.Update()
}

func blockingObjects(check *resolv.Collision) []*resolv.Object {
	return append(check.ObjectsByTags(tags.ResolvSolid), check.ObjectsByTags(tags.ResolvTank)...)
}

func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}
