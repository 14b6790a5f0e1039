package components

import (
	"fmt"
	"image/color"

	"github.com/yohamta/donburi"
)

// Transform is a spawn position and facing (radians, clockwise from +X with Y down).
type Transform struct {
	X, Y     float64
	Rotation float64
}

// CombatantData is the per-player record that outlives the tank entities spawned for it.
type CombatantData struct {
	Spawn       Transform      // Fixed spawn slot from the arena
	Instance    *donburi.Entry // Current tank entity (nil before first spawn)
	PlayerIndex int            // 1-based player number
	Wins        int            // Rounds won in the current game
	Color       color.RGBA
}

// Label returns the colored player name used in announcements.
func (c *CombatantData) Label() string {
	return fmt.Sprintf("<color=#%02X%02X%02X>PLAYER %d</color>", c.Color.R, c.Color.G, c.Color.B, c.PlayerIndex)
}

// IsActive reports whether the combatant's tank is spawned and still alive this round.
func (c *CombatantData) IsActive() bool {
	if c.Instance == nil || !c.Instance.Valid() || !c.Instance.HasComponent(Tank) {
		return false
	}
	return Tank.Get(c.Instance).Active
}

// Position returns the tank position, or the spawn point when no tank exists.
func (c *CombatantData) Position() (float64, float64) {
	if c.Instance == nil || !c.Instance.Valid() || !c.Instance.HasComponent(Object) {
		return c.Spawn.X, c.Spawn.Y
	}
	return Object.Get(c.Instance).Center()
}
