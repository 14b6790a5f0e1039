package factory

import (
	"github.com/automoto/tanks-mp/archetypes"
	"github.com/automoto/tanks-mp/assets"
	"github.com/automoto/tanks-mp/components"
	"github.com/automoto/tanks-mp/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// arenaCellSize is the resolv broadphase cell size in world units.
const arenaCellSize = 4

// CreateArena builds the collision space and obstacles and returns the spawn slots.
func CreateArena(ecs *ecs.ECS, arena assets.Arena) []components.Transform {
	space := CreateSpace(ecs, arena.Width, arena.Height, arenaCellSize, arenaCellSize)
	components.Arena.SetValue(space, components.ArenaData{
		Width:  float64(arena.Width),
		Height: float64(arena.Height),
	})
	for _, o := range arena.Obstacles {
		CreateObstacle(ecs, o.X, o.Y, o.Width, o.Height)
	}

	slots := make([]components.Transform, len(arena.Spawns))
	for i, s := range arena.Spawns {
		slots[i] = components.Transform{X: s.X, Y: s.Y, Rotation: s.Rotation}
	}
	return slots
}

func CreateObstacle(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	obstacle := archetypes.Obstacle.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = obstacle

	components.Object.SetValue(obstacle, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return obstacle
}
