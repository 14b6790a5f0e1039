package systems

import (
	"github.com/automoto/tanks-mp/components"
	cfg "github.com/automoto/tanks-mp/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayerCountMenu applies keyboard shortcuts to the player count menu.
func UpdatePlayerCountMenu(e *ecs.ECS) {
	menuEntry, ok := components.PlayerCountMenu.First(e.World)
	if !ok {
		return
	}
	menu := components.PlayerCountMenu.Get(menuEntry)
	input := components.Input.Get(menuEntry)

	if input.JustPressed(cfg.ActionMenuDecrease) {
		menu.Decrease()
	}
	if input.JustPressed(cfg.ActionMenuIncrease) {
		menu.Increase()
	}
	if input.JustPressed(cfg.ActionMenuSelect) {
		menu.Started = true
	}
	if input.JustPressed(cfg.ActionQuit) {
		menu.Quit = true
	}
}
