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

// CreateTank spawns a tank centered on t for the 1-based player index.
// The tank starts active with controls locked.
func CreateTank(ecs *ecs.ECS, t components.Transform, playerIndex int) *donburi.Entry {
	tank := archetypes.Tank.Spawn(ecs)

	size := cfg.Tank.CollisionSize * 2
	obj := resolv.NewObject(t.X-size/2, t.Y-size/2, size, size, tags.ResolvTank)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = tank
	components.Object.SetValue(tank, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	components.Tank.SetValue(tank, components.TankData{
		PlayerIndex: playerIndex,
		Rotation:    t.Rotation,
		Active:      true,
	})
	components.Health.SetValue(tank, components.HealthData{
		Current: cfg.Tank.Health,
		Max:     cfg.Tank.Health,
	})
	components.Shooting.SetValue(tank, components.ShootingData{
		MinForce:    cfg.Shell.MinLaunchForce,
		MaxForce:    cfg.Shell.MaxLaunchForce,
		AltMaxForce: cfg.Shell.MaxLaunchForce * cfg.Shell.AltForceScale,
		ChargeSpeed: (cfg.Shell.MaxLaunchForce - cfg.Shell.MinLaunchForce) / cfg.Shell.MaxChargeTime,
		LaunchForce: cfg.Shell.MinLaunchForce,
	})
	components.PlayerInput.SetValue(tank, components.PlayerInputData{
		Scheme: playerIndex - 1,
	})

	return tank
}

// SetTankActive shows or hides a tank. Hidden tanks leave the collision space.
func SetTankActive(ecs *ecs.ECS, tank *donburi.Entry, active bool) {
	if tank == nil || !tank.Valid() {
		return
	}
	td := components.Tank.Get(tank)
	if td.Active == active {
		return
	}
	td.Active = active
	obj := components.Object.Get(tank).Object
	if active {
		addToSpace(ecs, obj)
	} else {
		removeFromSpace(ecs, obj)
		components.Shooting.Get(tank).Cancel()
	}
}

// DestroyTank removes a tank entity and its collision object.
func DestroyTank(ecs *ecs.ECS, tank *donburi.Entry) {
	if tank == nil || !tank.Valid() {
		return
	}
	if components.Tank.Get(tank).Active {
		removeFromSpace(ecs, components.Object.Get(tank).Object)
	}
	ecs.World.Remove(tank.Entity())
}

// TankSpawner spawns tanks into the world and its collision space.
type TankSpawner struct{}

func (TankSpawner) Spawn(e *ecs.ECS, t components.Transform, playerIndex int) *donburi.Entry {
	return CreateTank(e, t, playerIndex)
}

func (TankSpawner) SetActive(e *ecs.ECS, tank *donburi.Entry, active bool) {
	SetTankActive(e, tank, active)
}

func (TankSpawner) Destroy(e *ecs.ECS, tank *donburi.Entry) {
	DestroyTank(e, tank)
}
