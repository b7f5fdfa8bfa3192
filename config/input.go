package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	// Keyboard stand-ins for the left stick
	ActionLeftArmUp
	ActionLeftArmDown
	ActionLeftArmLeft
	ActionLeftArmRight
	// Keyboard stand-ins for the right stick
	ActionRightArmUp
	ActionRightArmDown
	ActionRightArmLeft
	ActionRightArmRight
	ActionGrabLeft
	ActionGrabRight
	ActionReset
	ActionToggleSpiderman
	ActionToggleHandRotation
	ActionToggleDebug
	ActionSwitchEngine
	ActionPause
	ActionStep
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0), applied radially
	AnalogDeadzone float64
	// Trigger travel (0.0 to 1.0) past which a grab is held
	TriggerThreshold float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		AnalogDeadzone:   0.25,
		TriggerThreshold: 0.5,
		Bindings: map[ActionID]InputBinding{
			ActionLeftArmUp:    {Keys: []ebiten.Key{ebiten.KeyW}},
			ActionLeftArmDown:  {Keys: []ebiten.Key{ebiten.KeyS}},
			ActionLeftArmLeft:  {Keys: []ebiten.Key{ebiten.KeyA}},
			ActionLeftArmRight: {Keys: []ebiten.Key{ebiten.KeyD}},

			ActionRightArmUp:    {Keys: []ebiten.Key{ebiten.KeyI}},
			ActionRightArmDown:  {Keys: []ebiten.Key{ebiten.KeyK}},
			ActionRightArmLeft:  {Keys: []ebiten.Key{ebiten.KeyJ}},
			ActionRightArmRight: {Keys: []ebiten.Key{ebiten.KeyL}},

			ActionGrabLeft: {
				Keys: []ebiten.Key{ebiten.KeyQ},
				// LB / L1 (the analog trigger is read separately)
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopLeft,
				},
			},
			ActionGrabRight: {
				Keys: []ebiten.Key{ebiten.KeyO},
				// RB / R1 (the analog trigger is read separately)
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopRight,
				},
			},
			ActionReset: {
				Keys: []ebiten.Key{ebiten.KeyR, ebiten.KeyBackspace},
				// Back / Share button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterLeft,
				},
			},
			ActionToggleSpiderman: {
				Keys: []ebiten.Key{ebiten.KeyF1},
				// Y / Triangle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightTop,
				},
			},
			ActionToggleHandRotation: {
				Keys: []ebiten.Key{ebiten.KeyF2},
				// X / Square button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightLeft,
				},
			},
			ActionToggleDebug: {
				Keys: []ebiten.Key{ebiten.KeyF3, ebiten.KeyBackquote},
			},
			ActionSwitchEngine: {
				Keys: []ebiten.Key{ebiten.KeyF4},
			},
			ActionPause: {
				Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionStep: {
				Keys: []ebiten.Key{ebiten.KeyN},
			},
		},
	}
}
