package systems

import (
	"github.com/automoto/cubecombat/combat"
	"github.com/automoto/cubecombat/components"
	cfg "github.com/automoto/cubecombat/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input into the Input singleton.
// Must run BEFORE UpdateArena in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	// Merge analog stick into player one's directions
	left, right, up, down := getAnalogStickState(gamepadIDs)
	input.Current[cfg.ActionP1Left] = input.Current[cfg.ActionP1Left] || left
	input.Current[cfg.ActionP1Right] = input.Current[cfg.ActionP1Right] || right
	input.Current[cfg.ActionP1Up] = input.Current[cfg.ActionP1Up] || up
	input.Current[cfg.ActionP1Down] = input.Current[cfg.ActionP1Down] || down
}

// getAnalogStickState reads the left analog stick from all gamepads
func getAnalogStickState(gamepads []ebiten.GamepadID) (left, right, up, down bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		left = left || horizontal < -deadzone
		right = right || horizontal > deadzone
		up = up || vertical < -deadzone
		down = down || vertical > deadzone
	}
	return
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
	}
	return components.Input.Get(entry)
}

// FrameControls maps the polled actions to both players' controls.
// Attack actions are edge-triggered.
func FrameControls(in *components.InputData) (p1, p2 combat.Controls) {
	p1 = combat.Controls{
		Left:  in.Pressed(cfg.ActionP1Left),
		Right: in.Pressed(cfg.ActionP1Right),
		Up:    in.Pressed(cfg.ActionP1Up),
		Down:  in.Pressed(cfg.ActionP1Down),
		Slash: in.JustPressed(cfg.ActionP1Slash),
		Parry: in.JustPressed(cfg.ActionP1Parry),
	}
	p2 = combat.Controls{
		Left:   in.Pressed(cfg.ActionP2Left),
		Right:  in.Pressed(cfg.ActionP2Right),
		Up:     in.Pressed(cfg.ActionP2Up),
		Down:   in.Pressed(cfg.ActionP2Down),
		Beam:   in.JustPressed(cfg.ActionP2Beam),
		Charge: in.JustPressed(cfg.ActionP2Charge),
	}
	return p1, p2
}
