package components

import (
	cfg "github.com/automoto/tanks-mp/config"
	"github.com/yohamta/donburi"
)

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
// The global singleton merges every keyboard binding; each tank carries its own copy.
type InputData struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
	primed   bool
}

// Advance shifts the current frame into the previous slot and installs a new frame.
// The first frame seeds both slots, so keys held when the input is created must be
// released before they count as pressed.
func (i *InputData) Advance(next [cfg.ActionCount]bool) {
	if !i.primed {
		i.Current = next
		i.primed = true
	}
	i.Previous = i.Current
	i.Current = next
}

func (i *InputData) Held(a cfg.ActionID) bool {
	return i.Current[a]
}

func (i *InputData) JustPressed(a cfg.ActionID) bool {
	return i.Current[a] && !i.Previous[a]
}

func (i *InputData) JustReleased(a cfg.ActionID) bool {
	return !i.Current[a] && i.Previous[a]
}

var Input = donburi.NewComponentType[InputData]()

// PlayerInputData binds a tank to one keyboard control scheme.
type PlayerInputData struct {
	Scheme int // index into cfg.Input.ControlSchemes
	InputData
}

var PlayerInput = donburi.NewComponentType[PlayerInputData]()
