package systems

import (
	"github.com/automoto/tanks-mp/components"
	cfg "github.com/automoto/tanks-mp/config"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi/ecs"
)

// RosterMutator adds one combatant to a game in progress.
type RosterMutator struct {
	Spawner Spawner
}

func NewRosterMutator(spawner Spawner) *RosterMutator {
	return &RosterMutator{Spawner: spawner}
}

// AddCombatant spawns the next player at the next unused spawn slot, gives it a
// camera and relayouts every viewport. It is a no-op outside the Playing phase,
// once the round's join has been used, or when the roster is full.
func (m *RosterMutator) AddCombatant(e *ecs.ECS, roster *components.RosterData, round *components.RoundData) bool {
	if round.Phase != cfg.PhasePlaying || !round.CanAddAnother || roster.Full() {
		return false
	}

	c, err := roster.Insert()
	if err != nil {
		log.Warn("add combatant rejected", "err", err)
		return false
	}
	c.Instance = m.Spawner.Spawn(e, c.Spawn, c.PlayerIndex)
	setControl(c, true)

	if cam := bindCombatantCamera(e, c); cam != nil {
		cam.SetActive(true)
	}
	ApplyViewportLayout(e, roster)

	log.Info("combatant joined", "player", c.PlayerIndex, "players", roster.Len())
	return true
}

func setControl(c *components.CombatantData, enabled bool) {
	if c.Instance == nil || !c.Instance.Valid() {
		return
	}
	components.Tank.Get(c.Instance).ControlEnabled = enabled
}
