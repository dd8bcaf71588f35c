package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota

	// Player one (blue)
	ActionP1Left
	ActionP1Right
	ActionP1Up
	ActionP1Down
	ActionP1Slash
	ActionP1Parry

	// Player two (red, PvP only)
	ActionP2Left
	ActionP2Right
	ActionP2Up
	ActionP2Down
	ActionP2Beam
	ActionP2Charge

	ActionRestart
	ActionBack
	ActionToggleBodies
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings       map[ActionID]InputBinding
	AnalogDeadzone float64 // left stick drives player one's movement past this
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		Bindings: map[ActionID]InputBinding{
			ActionP1Left: {
				Keys:                   []ebiten.Key{ebiten.KeyA},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
			},
			ActionP1Right: {
				Keys:                   []ebiten.Key{ebiten.KeyD},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
			},
			ActionP1Up: {
				Keys:                   []ebiten.Key{ebiten.KeyW},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
			},
			ActionP1Down: {
				Keys:                   []ebiten.Key{ebiten.KeyS},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
			},
			ActionP1Slash: {
				Keys: []ebiten.Key{ebiten.KeySpace},
				// X / Square button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightLeft,
				},
			},
			ActionP1Parry: {
				Keys: []ebiten.Key{ebiten.KeyF},
				// B / Circle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
			},

			ActionP2Left:   {Keys: []ebiten.Key{ebiten.KeyLeft}},
			ActionP2Right:  {Keys: []ebiten.Key{ebiten.KeyRight}},
			ActionP2Up:     {Keys: []ebiten.Key{ebiten.KeyUp}},
			ActionP2Down:   {Keys: []ebiten.Key{ebiten.KeyDown}},
			ActionP2Beam:   {Keys: []ebiten.Key{ebiten.KeyL}},
			ActionP2Charge: {Keys: []ebiten.Key{ebiten.KeyK}},

			ActionRestart: {
				Keys: []ebiten.Key{ebiten.KeyR},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionBack: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
				// Back / Share button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterLeft,
				},
			},
			ActionToggleBodies: {Keys: []ebiten.Key{ebiten.KeyF3}},
		},
	}
}
