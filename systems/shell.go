package systems

import (
	"math"

	"github.com/automoto/tanks-mp/components"
	cfg "github.com/automoto/tanks-mp/config"
	"github.com/automoto/tanks-mp/systems/factory"
	"github.com/automoto/tanks-mp/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateShells moves shells and detonates them on impact or when their flight time runs out.
func UpdateShells(e *ecs.ECS) {
	dt := cfg.DeltaTime()
	var landed []*donburi.Entry

	tags.Shell.Each(e.World, func(entry *donburi.Entry) {
		shell := components.Shell.Get(entry)
		obj := components.Object.Get(entry)

		shell.TimeLeft--
		dx, dy := shell.VX*dt, shell.VY*dt
		if check := obj.Check(dx, dy, tags.ResolvSolid, tags.ResolvTank); check != nil {
			hit := len(check.ObjectsByTags(tags.ResolvSolid)) > 0
			for _, o := range check.ObjectsByTags(tags.ResolvTank) {
				if owner, ok := o.Data.(*donburi.Entry); !ok || owner != shell.Owner {
					hit = true
				}
			}
			if hit {
				landed = append(landed, entry)
				return
			}
		}
		obj.X += dx
		obj.Y += dy
		obj.Update()

		if shell.TimeLeft <= 0 {
			landed = append(landed, entry)
		}
	})

	for _, entry := range landed {
		x, y := components.Object.Get(entry).Center()
		factory.DestroyShell(e, entry)
		Explode(e, x, y)
	}
}

// Explode damages every active tank in range and spawns the explosion effect.
func Explode(e *ecs.ECS, x, y float64) {
	tags.Tank.Each(e.World, func(entry *donburi.Entry) {
		if !components.Tank.Get(entry).Active {
			return
		}
		tx, ty := components.Object.Get(entry).Center()
		if damage := ExplosionDamage(math.Hypot(tx-x, ty-y)); damage > 0 {
			components.Health.Get(entry).Current -= damage
		}
	})
	factory.CreateExplosion(e, x, y)
	TriggerScreenShake(e, 0.3, 12)
}

// ExplosionDamage falls off linearly from MaxDamage at the center to zero at ExplosionRadius.
func ExplosionDamage(distance float64) float64 {
	r := cfg.Shell.ExplosionRadius
	if r <= 0 || distance >= r {
		return 0
	}
	return cfg.Shell.MaxDamage * (1 - distance/r)
}

// UpdateExplosions expires finished explosion effects.
func UpdateExplosions(e *ecs.ECS) {
	var done []*donburi.Entry
	components.Explosion.Each(e.World, func(entry *donburi.Entry) {
		ex := components.Explosion.Get(entry)
		if ex.Frames--; ex.Frames <= 0 {
			done = append(done, entry)
		}
	})
	for _, entry := range done {
		e.World.Remove(entry.Entity())
	}
}

// ClearShells removes every shell and explosion, used when a round resets.
func ClearShells(e *ecs.ECS) {
	var shells, explosions []*donburi.Entry
	tags.Shell.Each(e.World, func(entry *donburi.Entry) {
		shells = append(shells, entry)
	})
	components.Explosion.Each(e.World, func(entry *donburi.Entry) {
		explosions = append(explosions, entry)
	})
	for _, entry := range shells {
		factory.DestroyShell(e, entry)
	}
	for _, entry := range explosions {
		e.World.Remove(entry.Entity())
	}
}
