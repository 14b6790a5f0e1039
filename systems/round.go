package systems

import (
	"fmt"
	"strings"

	"github.com/automoto/tanks-mp/components"
	cfg "github.com/automoto/tanks-mp/config"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// RoundDeps are the collaborators of the round state machine.
// Input and Text fall back to the rig's own components when nil.
type RoundDeps struct {
	Input     InputSource
	Text      TextSurface
	Spawner   Spawner
	Scenes    SceneLoader
	Proximity *ProximityPolicy
	Mutator   *RosterMutator
}

// RoundSystem drives Starting -> Playing -> Ending -> (Starting | GameOver),
// advancing at most one phase per tick.
type RoundSystem struct {
	deps RoundDeps
}

func NewRoundSystem(deps RoundDeps) *RoundSystem {
	if deps.Proximity == nil {
		deps.Proximity = NewProximityPolicy()
	}
	if deps.Mutator == nil {
		deps.Mutator = NewRosterMutator(deps.Spawner)
	}
	return &RoundSystem{deps: deps}
}

// ClampPlayers bounds a requested player count to the configured range and the arena capacity.
func ClampPlayers(requested, capacity int) int {
	hi := cfg.Match.MaxPlayers
	if capacity < hi {
		hi = capacity
	}
	if requested > hi {
		requested = hi
	}
	if requested < cfg.Match.MinPlayers {
		requested = cfg.Match.MinPlayers
	}
	return requested
}

// RoundsToWin is the number of round wins needed to take the game.
func RoundsToWin(numPlayers int) int {
	return cfg.Match.RoundsBudget / numPlayers
}

// StartGame spawns the roster for a new game and enters the first round.
func (s *RoundSystem) StartGame(e *ecs.ECS, requestedPlayers int) {
	rig, ok := components.Round.First(e.World)
	if !ok {
		return
	}
	round := components.Round.Get(rig)
	roster := components.Roster.Get(rig)

	n := ClampPlayers(requestedPlayers, roster.Capacity)
	if n != requestedPlayers {
		log.Warn("player count clamped", "requested", requestedPlayers, "players", n)
	}
	for roster.Len() < n {
		c, err := roster.Insert()
		if err != nil {
			break
		}
		c.Instance = s.deps.Spawner.Spawn(e, c.Spawn, c.PlayerIndex)
	}
	roster.ResetWins()

	for _, c := range roster.Combatants {
		if cam := bindCombatantCamera(e, c); cam != nil {
			cam.SetActive(true)
		}
	}
	ApplyViewportLayout(e, roster)
	if overview := cameraOfKind(e, cfg.CameraOverview); overview != nil {
		overview.SetActive(false)
	}

	*round = components.RoundData{RoundsToWin: RoundsToWin(roster.Len())}
	log.Info("game started", "players", roster.Len(), "roundsToWin", round.RoundsToWin)

	s.enterStarting(e, rig, round, roster)
}

func (s *RoundSystem) Update(e *ecs.ECS) {
	rig, ok := components.Round.First(e.World)
	if !ok {
		return
	}
	round := components.Round.Get(rig)
	roster := components.Roster.Get(rig)

	switch round.Phase {
	case cfg.PhaseStarting:
		if round.Timer--; round.Timer > 0 {
			return
		}
		s.enterPlaying(e, rig, round, roster)

	case cfg.PhasePlaying:
		s.updatePlaying(e, rig, round, roster)

	case cfg.PhaseEnding:
		if round.Timer--; round.Timer > 0 {
			return
		}
		s.finishRound(e, rig, round, roster)
	}
}

func (s *RoundSystem) enterStarting(e *ecs.ECS, rig *donburi.Entry, round *components.RoundData, roster *components.RosterData) {
	ClearShells(e)
	for _, c := range roster.Combatants {
		s.deps.Spawner.Destroy(e, c.Instance)
		c.Instance = s.deps.Spawner.Spawn(e, c.Spawn, c.PlayerIndex)
		bindCombatantCamera(e, c)
		setControl(c, false)
	}
	SetCameraTargets(e, roster)

	round.CanAddAnother = !roster.Full()
	SnapOverviewCamera(e)

	round.RoundNumber++
	round.RoundWinner = nil
	round.GameWinner = nil
	round.Phase = cfg.PhaseStarting
	round.Timer = cfg.Ticks(cfg.Match.StartDelay)

	s.announce(rig, round, fmt.Sprintf("ROUND %d", round.RoundNumber))
	log.Info("round starting", "round", round.RoundNumber, "players", roster.Len())
}

func (s *RoundSystem) enterPlaying(e *ecs.ECS, rig *donburi.Entry, round *components.RoundData, roster *components.RosterData) {
	for _, c := range roster.Combatants {
		setControl(c, true)
	}
	s.announce(rig, round, "")
	round.Phase = cfg.PhasePlaying
}

func (s *RoundSystem) updatePlaying(e *ecs.ECS, rig *donburi.Entry, round *components.RoundData, roster *components.RosterData) {
	if roster.ActiveCount() <= 1 {
		s.enterEnding(rig, round, roster)
		return
	}

	if round.CanAddAnother && s.input(rig).Held(cfg.ActionAddCombatant) {
		s.deps.Mutator.AddCombatant(e, roster, round)
		round.CanAddAnother = false
	}

	if round.SwapCounter >= cfg.Match.CameraSwapCheckFrequency {
		s.deps.Proximity.Apply(e, roster)
		round.SwapCounter = 0
	}
	round.SwapCounter++
}

func (s *RoundSystem) enterEnding(rig *donburi.Entry, round *components.RoundData, roster *components.RosterData) {
	for _, c := range roster.Combatants {
		setControl(c, false)
	}

	round.RoundWinner = roster.FirstActive()
	if round.RoundWinner != nil {
		round.RoundWinner.Wins++
	}

	round.GameWinner = nil
	for _, c := range roster.Combatants {
		if c.Wins == round.RoundsToWin {
			round.GameWinner = c
			break
		}
	}

	round.Phase = cfg.PhaseEnding
	round.Timer = cfg.Ticks(cfg.Match.EndDelay)
	s.announce(rig, round, EndMessage(roster.Combatants, round.RoundWinner, round.GameWinner))

	winner := 0
	if round.RoundWinner != nil {
		winner = round.RoundWinner.PlayerIndex
	}
	log.Info("round ended", "round", round.RoundNumber, "winner", winner, "gameOver", round.GameWinner != nil)
}

func (s *RoundSystem) finishRound(e *ecs.ECS, rig *donburi.Entry, round *components.RoundData, roster *components.RosterData) {
	if round.GameWinner == nil {
		s.enterStarting(e, rig, round, roster)
		return
	}

	round.Phase = cfg.PhaseGameOver
	log.Info("game over", "winner", round.GameWinner.PlayerIndex, "rounds", round.RoundNumber)
	if s.deps.Scenes != nil && !round.MenuRequested {
		round.MenuRequested = true
		s.deps.Scenes.LoadScene(cfg.Match.MenuSceneIndex)
	}
}

func (s *RoundSystem) announce(rig *donburi.Entry, round *components.RoundData, text string) {
	round.Message = text
	if s.deps.Text != nil {
		s.deps.Text.SetText(text)
		return
	}
	if rig != nil && rig.HasComponent(components.Announcement) {
		components.Announcement.Get(rig).SetText(text)
	}
}

func (s *RoundSystem) input(rig *donburi.Entry) InputSource {
	if s.deps.Input != nil {
		return s.deps.Input
	}
	return components.Input.Get(rig)
}

// EndMessage composes the end of round announcement. A game winner replaces
// the round breakdown entirely.
func EndMessage(combatants []*components.CombatantData, roundWinner, gameWinner *components.CombatantData) string {
	if gameWinner != nil {
		return gameWinner.Label() + " WINS THE GAME!"
	}

	var b strings.Builder
	if roundWinner != nil {
		b.WriteString(roundWinner.Label() + " WINS THE ROUND!")
	} else {
		b.WriteString("DRAW!")
	}
	b.WriteString("\n\n\n\n")
	for _, c := range combatants {
		fmt.Fprintf(&b, "%s: %d WINS\n", c.Label(), c.Wins)
	}
	return b.String()
}
