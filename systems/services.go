package systems

import (
	"github.com/automoto/tanks-mp/components"
	cfg "github.com/automoto/tanks-mp/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// InputSource answers level queries for global actions.
type InputSource interface {
	Held(action cfg.ActionID) bool
}

// Spawner owns the in-world representation of combatants.
type Spawner interface {
	Spawn(e *ecs.ECS, t components.Transform, playerIndex int) *donburi.Entry
	SetActive(e *ecs.ECS, instance *donburi.Entry, active bool)
	Destroy(e *ecs.ECS, instance *donburi.Entry)
}

// TextSurface displays round and game announcements.
type TextSurface interface {
	SetText(text string)
}

// SceneLoader hands control back to another scene.
type SceneLoader interface {
	LoadScene(index int)
}
