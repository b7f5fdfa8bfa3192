package systems

import (
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/slothgame/sloth/components"
	cfg "github.com/slothgame/sloth/config"
	"github.com/slothgame/sloth/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE UpdateSloth in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	// Get connected gamepads
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	// Track which input method was used this frame
	var keyboardUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	// Poll all actions - only set Pressed state
	for actionID, binding := range cfg.Input.Bindings {
		// Check keyboard keys
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		// Check gamepad buttons
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	// Triggers hold a grab just like the shoulder buttons
	for _, gpID := range gamepadIDs {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		if ebiten.StandardGamepadButtonValue(gpID, ebiten.StandardGamepadButtonFrontBottomLeft) > cfg.Input.TriggerThreshold {
			input.Current[cfg.ActionGrabLeft] = true
			gamepadUsed = true
			activeGamepadID = gpID
		}
		if ebiten.StandardGamepadButtonValue(gpID, ebiten.StandardGamepadButtonFrontBottomRight) > cfg.Input.TriggerThreshold {
			input.Current[cfg.ActionGrabRight] = true
			gamepadUsed = true
			activeGamepadID = gpID
		}
	}

	// Read analog stick state (clamped, with deadzone)
	left, right, stickGpID, ok := getAnalogSticks(gamepadIDs)
	if ok {
		gamepadUsed = true
		activeGamepadID = stickGpID
	}
	// Keyboard arm keys stand in for a stick at rest
	input.LeftStick = mergeKeyboardStick(left, input, cfg.ActionLeftArmLeft, cfg.ActionLeftArmRight, cfg.ActionLeftArmUp, cfg.ActionLeftArmDown)
	input.RightStick = mergeKeyboardStick(right, input, cfg.ActionRightArmLeft, cfg.ActionRightArmRight, cfg.ActionRightArmUp, cfg.ActionRightArmDown)

	// Update last input method - gamepad takes priority if both used
	if gamepadUsed {
		input.LastInputMethod = getControllerType(activeGamepadID)
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

// getAnalogSticks returns both sticks of the first gamepad that has either
// stick outside the deadzone. Stick y grows downward.
func getAnalogSticks(gamepads []ebiten.GamepadID) (left, right mgl64.Vec2, gpID ebiten.GamepadID, ok bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, id := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}

		// Read both sticks, deadzone applied per stick
		left = readStick(id, ebiten.StandardGamepadAxisLeftStickHorizontal, ebiten.StandardGamepadAxisLeftStickVertical, deadzone)
		right = readStick(id, ebiten.StandardGamepadAxisRightStickHorizontal, ebiten.StandardGamepadAxisRightStickVertical, deadzone)
		if left != (mgl64.Vec2{}) || right != (mgl64.Vec2{}) {
			return left, right, id, true
		}
	}
	return mgl64.Vec2{}, mgl64.Vec2{}, 0, false
}

// readStick reads one stick, clamping each axis to [-1, 1] and zeroing
// non-finite values before the radial deadzone.
func readStick(id ebiten.GamepadID, horizontal, vertical ebiten.StandardGamepadAxis, deadzone float64) mgl64.Vec2 {
	x := gamemath.ClampAxis(ebiten.StandardGamepadAxisValue(id, horizontal))
	y := gamemath.ClampAxis(ebiten.StandardGamepadAxisValue(id, vertical))
	x, y = gamemath.ApplyRadialDeadzone(x, y, deadzone)
	return mgl64.Vec2{x, y}
}

// mergeKeyboardStick falls back to the keyboard when the analog stick is at
// rest.
func mergeKeyboardStick(analog mgl64.Vec2, input *components.InputData, left, right, up, down cfg.ActionID) mgl64.Vec2 {
	if analog != (mgl64.Vec2{}) {
		return analog
	}
	// Opposite keys cancel, diagonals are scaled back onto the unit circle
	x := gamemath.KeyAxis(input.Current[left], input.Current[right])
	y := gamemath.KeyAxis(input.Current[up], input.Current[down])
	x, y = gamemath.NormalizeStick(x, y)
	return mgl64.Vec2{x, y}
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	// Detect and cache controller type
	name := strings.ToLower(ebiten.GamepadName(gpID))
	var method components.InputMethod
	if strings.Contains(name, "ps4") || strings.Contains(name, "ps5") ||
		strings.Contains(name, "playstation") || strings.Contains(name, "dualshock") ||
		strings.Contains(name, "dualsense") {
		method = components.InputPlayStation
	} else {
		// Default gamepad to Xbox-style
		method = components.InputXbox
	}

	controllerTypeCache[gpID] = method
	return method
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		// Zero-value InputData is correct (all bools false, sticks at rest)
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
