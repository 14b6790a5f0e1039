package config

// RoundPhaseID represents the current phase of the round state machine.
type RoundPhaseID int

const (
	PhaseSetup    RoundPhaseID = iota // Roster not spawned yet
	PhaseStarting                     // Tanks reset, "ROUND n" shown, controls locked
	PhasePlaying                      // Active gameplay
	PhaseEnding                       // Round result shown, controls locked
	PhaseGameOver                     // A game winner was found
)

func (p RoundPhaseID) String() string {
	switch p {
	case PhaseSetup:
		return "setup"
	case PhaseStarting:
		return "starting"
	case PhasePlaying:
		return "playing"
	case PhaseEnding:
		return "ending"
	case PhaseGameOver:
		return "game-over"
	}
	return "unknown"
}

// CameraKindID identifies the role of a camera entity.
type CameraKindID int

const (
	CameraOverview  CameraKindID = iota // Full map camera framing every tank
	CameraCombatant                     // Split-screen camera following one tank
	CameraMinimap                       // Fixed camera filling the empty quadrant in 3 player games
)

// GunID identifies which trigger launched a shell.
type GunID int

const (
	GunMain GunID = iota
	GunAlt
)
