package systems

import (
	"github.com/automoto/tanks-mp/components"
	cfg "github.com/automoto/tanks-mp/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// InputState answers raw keyboard and gamepad queries for one frame.
// Gamepads are addressed by connection order.
type InputState interface {
	KeyPressed(key ebiten.Key) bool
	GamepadCount() int
	GamepadButtonPressed(pad int, button ebiten.StandardGamepadButton) bool
	GamepadAxis(pad int, axis ebiten.StandardGamepadAxis) float64
}

// KeyState is a keyboard-only InputState.
type KeyState func(ebiten.Key) bool

func (k KeyState) KeyPressed(key ebiten.Key) bool { return k(key) }

func (KeyState) GamepadCount() int { return 0 }

func (KeyState) GamepadButtonPressed(int, ebiten.StandardGamepadButton) bool { return false }

func (KeyState) GamepadAxis(int, ebiten.StandardGamepadAxis) float64 { return 0 }

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// ebitenInput reads live device state from ebiten.
type ebitenInput struct {
	pads []ebiten.GamepadID
}

func (in ebitenInput) KeyPressed(key ebiten.Key) bool { return ebiten.IsKeyPressed(key) }

func (in ebitenInput) GamepadCount() int { return len(in.pads) }

func (in ebitenInput) GamepadButtonPressed(pad int, button ebiten.StandardGamepadButton) bool {
	id := in.pads[pad]
	return ebiten.IsStandardGamepadLayoutAvailable(id) && ebiten.IsStandardGamepadButtonPressed(id, button)
}

func (in ebitenInput) GamepadAxis(pad int, axis ebiten.StandardGamepadAxis) float64 {
	id := in.pads[pad]
	if !ebiten.IsStandardGamepadLayoutAvailable(id) {
		return 0
	}
	return ebiten.StandardGamepadAxisValue(id, axis)
}

// UpdateInput polls the keyboard and gamepads into the global input and every tank's control scheme.
// Must run BEFORE the round, tank and shooting systems.
func UpdateInput(e *ecs.ECS) {
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])
	PollInput(e, ebitenInput{pads: gamepadIDs})
}

// PollInput fills input components from an arbitrary device state. Global bindings
// read every gamepad; a tank's scheme reads the gamepad with the same index.
func PollInput(e *ecs.ECS, state InputState) {
	global := pollBindings(cfg.Input.Bindings, state, -1)
	components.Input.Each(e.World, func(entry *donburi.Entry) {
		components.Input.Get(entry).Advance(global)
	})

	components.PlayerInput.Each(e.World, func(entry *donburi.Entry) {
		pi := components.PlayerInput.Get(entry)
		var frame [cfg.ActionCount]bool
		if pi.Scheme >= 0 && pi.Scheme < len(cfg.Input.ControlSchemes) {
			frame = pollBindings(cfg.Input.ControlSchemes[pi.Scheme], state, pi.Scheme)
			if pi.Scheme < state.GamepadCount() {
				pollStick(&frame, state, pi.Scheme)
			}
		}
		pi.Advance(frame)
	})
}

// pollBindings evaluates bindings against the keyboard and gamepad pad, or every gamepad when pad is negative.
func pollBindings(bindings map[cfg.ActionID]cfg.InputBinding, state InputState, pad int) [cfg.ActionCount]bool {
	var frame [cfg.ActionCount]bool
	for actionID, binding := range bindings {
		if anyPressed(binding.Modifiers, state, true) && anyPressed(binding.Keys, state, false) {
			frame[actionID] = true
			continue
		}
		if anyButtonPressed(binding.StandardGamepadButtons, state, pad) {
			frame[actionID] = true
		}
	}
	return frame
}

func anyPressed(keys []ebiten.Key, state InputState, emptyResult bool) bool {
	if len(keys) == 0 {
		return emptyResult
	}
	for _, k := range keys {
		if state.KeyPressed(k) {
			return true
		}
	}
	return false
}

func anyButtonPressed(buttons []ebiten.StandardGamepadButton, state InputState, pad int) bool {
	if len(buttons) == 0 {
		return false
	}
	first, last := pad, pad
	if pad < 0 {
		first, last = 0, state.GamepadCount()-1
	} else if pad >= state.GamepadCount() {
		return false
	}
	for p := first; p <= last; p++ {
		for _, b := range buttons {
			if state.GamepadButtonPressed(p, b) {
				return true
			}
		}
	}
	return false
}

// pollStick merges the left stick into the drive and turn actions.
func pollStick(frame *[cfg.ActionCount]bool, state InputState, pad int) {
	dz := cfg.Input.StickDeadzone
	h := state.GamepadAxis(pad, ebiten.StandardGamepadAxisLeftStickHorizontal)
	v := state.GamepadAxis(pad, ebiten.StandardGamepadAxisLeftStickVertical)
	if h < -dz {
		frame[cfg.ActionTurnLeft] = true
	}
	if h > dz {
		frame[cfg.ActionTurnRight] = true
	}
	if v < -dz {
		frame[cfg.ActionForward] = true
	}
	if v > dz {
		frame[cfg.ActionBack] = true
	}
}
