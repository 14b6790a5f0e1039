package components

import (
	cfg "github.com/automoto/tanks-mp/config"
	"github.com/yohamta/donburi"
)

// RoundData stores the round state machine. Singleton.
type RoundData struct {
	Phase         cfg.RoundPhaseID
	RoundNumber   int
	RoundsToWin   int
	Timer         int  // Ticks left in the current wait
	CanAddAnother bool // Cleared once a combatant joins mid-round or when the roster started full
	SwapCounter   int  // Ticks since the last proximity camera check
	RoundWinner   *CombatantData
	GameWinner    *CombatantData
	Message       string
	MenuRequested bool
}

var Round = donburi.NewComponentType[RoundData]()
