package archetypes

import (
	"github.com/automoto/tanks-mp/components"
	cfg "github.com/automoto/tanks-mp/config"
	"github.com/automoto/tanks-mp/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Tank = newArchetype(
		tags.Tank,
		components.Tank,
		components.Object,
		components.Health,
		components.Shooting,
		components.PlayerInput,
	)
	Obstacle = newArchetype(
		tags.Obstacle,
		components.Object,
	)
	Shell = newArchetype(
		tags.Shell,
		components.Shell,
		components.Object,
	)
	Explosion = newArchetype(
		components.Explosion,
	)
	Space = newArchetype(
		components.Space,
		components.Arena,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Rig = newArchetype(
		components.Round,
		components.Roster,
		components.CameraTargets,
		components.Announcement,
		components.Input,
	)
	Menu = newArchetype(
		components.PlayerCountMenu,
		components.Input,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
