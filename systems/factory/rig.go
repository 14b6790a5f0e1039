package factory

import (
	"github.com/automoto/tanks-mp/archetypes"
	"github.com/automoto/tanks-mp/components"
	cfg "github.com/automoto/tanks-mp/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateRig creates the singleton holding round state, the roster and the announcement.
func CreateRig(ecs *ecs.ECS, slots []components.Transform) *donburi.Entry {
	rig := archetypes.Rig.Spawn(ecs)
	components.Roster.SetValue(rig, components.NewRoster(slots, cfg.PlayerColors.Colors, cfg.Match.MaxPlayers))
	components.Round.SetValue(rig, components.RoundData{Phase: cfg.PhaseSetup})
	return rig
}

func CreatePlayerCountMenu(ecs *ecs.ECS, count int) *donburi.Entry {
	menu := archetypes.Menu.Spawn(ecs)
	components.PlayerCountMenu.SetValue(menu, components.PlayerCountMenuData{
		Count: count,
		Min:   cfg.Match.MinPlayers,
		Max:   cfg.Match.MaxPlayers,
	})
	return menu
}
