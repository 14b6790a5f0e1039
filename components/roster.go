package components

import (
	"errors"
	"image/color"

	"github.com/yohamta/donburi"
)

// ErrRosterFull is returned when inserting past the roster capacity.
var ErrRosterFull = errors.New("roster is full")

// RosterData owns the combatants of a game, ordered by player index.
// Capacity is fixed when the arena is loaded and never grows.
type RosterData struct {
	SpawnSlots []Transform
	Colors     []color.RGBA
	Combatants []*CombatantData
	Capacity   int
}

var Roster = donburi.NewComponentType[RosterData]()

// NewRoster creates a roster for the given spawn slots, capped at maxPlayers.
func NewRoster(slots []Transform, colors []color.RGBA, maxPlayers int) RosterData {
	capacity := len(slots)
	if capacity > maxPlayers {
		capacity = maxPlayers
	}
	return RosterData{
		SpawnSlots: slots,
		Colors:     colors,
		Combatants: make([]*CombatantData, 0, capacity),
		Capacity:   capacity,
	}
}

// Len returns the number of combatants in the game.
func (r *RosterData) Len() int {
	return len(r.Combatants)
}

// Full reports whether another combatant can join.
func (r *RosterData) Full() bool {
	return len(r.Combatants) >= r.Capacity
}

// Insert appends the combatant for the next unused spawn slot.
func (r *RosterData) Insert() (*CombatantData, error) {
	if r.Full() {
		return nil, ErrRosterFull
	}
	i := len(r.Combatants)
	c := &CombatantData{
		Spawn:       r.SpawnSlots[i],
		PlayerIndex: i + 1,
	}
	if len(r.Colors) > 0 {
		c.Color = r.Colors[i%len(r.Colors)]
	}
	r.Combatants = append(r.Combatants, c)
	return c, nil
}

// ActiveCount returns how many combatants are still alive this round.
func (r *RosterData) ActiveCount() int {
	n := 0
	for _, c := range r.Combatants {
		if c.IsActive() {
			n++
		}
	}
	return n
}

// FirstActive returns the lowest indexed active combatant, or nil.
func (r *RosterData) FirstActive() *CombatantData {
	for _, c := range r.Combatants {
		if c.IsActive() {
			return c
		}
	}
	return nil
}

// ResetWins zeroes every score for a new game.
func (r *RosterData) ResetWins() {
	for _, c := range r.Combatants {
		c.Wins = 0
	}
}
