package factory

import (
	"github.com/automoto/tanks-mp/archetypes"
	"github.com/automoto/tanks-mp/components"
	cfg "github.com/automoto/tanks-mp/config"
	"github.com/automoto/tanks-mp/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateShell launches a shell from the tip of the owner's barrel.
func CreateShell(ecs *ecs.ECS, owner *donburi.Entry, shot components.Shot) *donburi.Entry {
	shell := archetypes.Shell.Spawn(ecs)

	td := components.Tank.Get(owner)
	fx, fy := td.Forward()
	cx, cy := components.Object.Get(owner).Center()
	reach := cfg.Tank.CollisionSize + cfg.Tank.BarrelLength
	x, y := cx+fx*reach, cy+fy*reach

	speed := shot.Force
	if shot.Gun == cfg.GunAlt {
		speed *= cfg.Shell.AltVelocityScale
	}

	r := cfg.Shell.Radius
	obj := resolv.NewObject(x-r, y-r, r*2, r*2, tags.ResolvShell)
	obj.SetShape(resolv.NewRectangle(0, 0, r*2, r*2))
	obj.Data = shell
	components.Object.SetValue(shell, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Shell.SetValue(shell, components.ShellData{
		Owner:    owner,
		Gun:      shot.Gun,
		VX:       fx * speed,
		VY:       fy * speed,
		TimeLeft: cfg.Ticks(cfg.Shell.FlightTime),
	})
	return shell
}

// DestroyShell removes a shell and its collision object.
func DestroyShell(ecs *ecs.ECS, shell *donburi.Entry) {
	removeFromSpace(ecs, components.Object.Get(shell).Object)
	ecs.World.Remove(shell.Entity())
}

func CreateExplosion(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	explosion := archetypes.Explosion.Spawn(ecs)
	components.Explosion.SetValue(explosion, components.ExplosionData{
		X:      x,
		Y:      y,
		Radius: cfg.Shell.ExplosionRadius,
		Frames: cfg.Shell.ExplosionFrames,
		Total:  cfg.Shell.ExplosionFrames,
	})
	return explosion
}
