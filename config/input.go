package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota

	// Per-tank actions
	ActionForward
	ActionBack
	ActionTurnLeft
	ActionTurnRight
	ActionFire
	ActionAltFire

	// Global actions
	ActionAddCombatant
	ActionMinimapZoomIn
	ActionMinimapZoomOut
	ActionQuit

	// Menu actions
	ActionMenuDecrease
	ActionMenuIncrease
	ActionMenuSelect

	// Display
	ActionToggleFullscreen

	ActionCount // Must be last - used for array sizing
)

// InputBinding represents the keys and gamepad buttons bound to an action. Any key in Keys
// triggers the action; when Modifiers is non-empty one of them must be held as well.
// Gamepad buttons ignore Modifiers.
type InputBinding struct {
	Keys                   []ebiten.Key
	Modifiers              []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	// Global bindings, merged for every keyboard user and every gamepad
	Bindings map[ActionID]InputBinding

	// ControlSchemes holds one binding set per player slot (index 0 = player 1).
	// Gamepad buttons in a scheme are read from the gamepad connected in the same order.
	ControlSchemes []map[ActionID]InputBinding

	// Left stick deflection needed to count as a drive or turn input
	StickDeadzone float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		Bindings: map[ActionID]InputBinding{
			ActionAddCombatant: {
				Keys:      []ebiten.Key{ebiten.KeyA},
				Modifiers: []ebiten.Key{ebiten.KeyShiftLeft, ebiten.KeyShiftRight},
				// Start on any gamepad
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
			},
			ActionMinimapZoomIn: {
				Keys: []ebiten.Key{ebiten.KeyNumpadAdd},
			},
			ActionMinimapZoomOut: {
				Keys: []ebiten.Key{ebiten.KeyNumpadSubtract},
			},
			ActionQuit: {
				Keys:                   []ebiten.Key{ebiten.KeyEscape},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterLeft},
			},
			ActionMenuDecrease: {
				Keys:                   []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyMinus},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
			},
			ActionMenuIncrease: {
				Keys:                   []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyEqual},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
			},
			ActionMenuSelect: {
				Keys:                   []ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
			},
			ActionToggleFullscreen: {
				Keys: []ebiten.Key{ebiten.KeyF11},
			},
		},
		ControlSchemes: []map[ActionID]InputBinding{
			// Player 1: WASD + Space / E
			{
				ActionForward:   {Keys: []ebiten.Key{ebiten.KeyW}},
				ActionBack:      {Keys: []ebiten.Key{ebiten.KeyS}},
				ActionTurnLeft:  {Keys: []ebiten.Key{ebiten.KeyA}},
				ActionTurnRight: {Keys: []ebiten.Key{ebiten.KeyD}},
				ActionFire:      {Keys: []ebiten.Key{ebiten.KeySpace}},
				ActionAltFire:   {Keys: []ebiten.Key{ebiten.KeyE}},
			},
			// Player 2: Arrows + Enter / Period
			{
				ActionForward:   {Keys: []ebiten.Key{ebiten.KeyArrowUp}},
				ActionBack:      {Keys: []ebiten.Key{ebiten.KeyArrowDown}},
				ActionTurnLeft:  {Keys: []ebiten.Key{ebiten.KeyArrowLeft}},
				ActionTurnRight: {Keys: []ebiten.Key{ebiten.KeyArrowRight}},
				ActionFire:      {Keys: []ebiten.Key{ebiten.KeyEnter}},
				ActionAltFire:   {Keys: []ebiten.Key{ebiten.KeyPeriod}},
			},
			// Player 3: IJKL + U / O
			{
				ActionForward:   {Keys: []ebiten.Key{ebiten.KeyI}},
				ActionBack:      {Keys: []ebiten.Key{ebiten.KeyK}},
				ActionTurnLeft:  {Keys: []ebiten.Key{ebiten.KeyJ}},
				ActionTurnRight: {Keys: []ebiten.Key{ebiten.KeyL}},
				ActionFire:      {Keys: []ebiten.Key{ebiten.KeyU}},
				ActionAltFire:   {Keys: []ebiten.Key{ebiten.KeyO}},
			},
			// Player 4: Numpad 8456 + 0 / 9
			{
				ActionForward:   {Keys: []ebiten.Key{ebiten.KeyNumpad8}},
				ActionBack:      {Keys: []ebiten.Key{ebiten.KeyNumpad5}},
				ActionTurnLeft:  {Keys: []ebiten.Key{ebiten.KeyNumpad4}},
				ActionTurnRight: {Keys: []ebiten.Key{ebiten.KeyNumpad6}},
				ActionFire:      {Keys: []ebiten.Key{ebiten.KeyNumpad0}},
				ActionAltFire:   {Keys: []ebiten.Key{ebiten.KeyNumpad9}},
			},
		},
		StickDeadzone: 0.5,
	}

	// Every scheme also answers to its own gamepad
	tankButtons := map[ActionID]ebiten.StandardGamepadButton{
		ActionForward:   ebiten.StandardGamepadButtonLeftTop,
		ActionBack:      ebiten.StandardGamepadButtonLeftBottom,
		ActionTurnLeft:  ebiten.StandardGamepadButtonLeftLeft,
		ActionTurnRight: ebiten.StandardGamepadButtonLeftRight,
		ActionFire:      ebiten.StandardGamepadButtonRightBottom,
		ActionAltFire:   ebiten.StandardGamepadButtonRightLeft,
	}
	for _, scheme := range Input.ControlSchemes {
		for action, button := range tankButtons {
			binding := scheme[action]
			binding.StandardGamepadButtons = []ebiten.StandardGamepadButton{button}
			scheme[action] = binding
		}
	}
}
