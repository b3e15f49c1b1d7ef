package main

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/cartcourse/input"
	"github.com/milk9111/cartcourse/physics"
)

const stickDeadzone = 0.2

// readSnapshot maps keyboard and gamepad state onto the mechanism input
// channels: Z/X are the two hold-buttons, arrow keys emulate the left
// stick, B is the blow signal.
func readSnapshot() input.Snapshot {
	snap := input.Snapshot{
		LeftHeld:  ebiten.IsKeyPressed(ebiten.KeyZ),
		RightHeld: ebiten.IsKeyPressed(ebiten.KeyX),
		Blow:      ebiten.IsKeyPressed(ebiten.KeyB),
	}

	switch {
	case ebiten.IsKeyPressed(ebiten.KeyArrowUp):
		snap.LeftStick = input.Joystick{Angle: math.Pi / 2, Magnitude: 1}
	case ebiten.IsKeyPressed(ebiten.KeyArrowDown):
		snap.LeftStick = input.Joystick{Angle: -math.Pi / 2, Magnitude: 1}
	}

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		snap.LeftHeld = snap.LeftHeld || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomLeft)
		snap.RightHeld = snap.RightHeld || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonFrontBottomRight)
		snap.Blow = snap.Blow || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)

		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if mag := math.Hypot(lx, ly); mag > stickDeadzone {
			snap.LeftStick = input.Joystick{Angle: math.Atan2(-ly, lx), Magnitude: math.Min(1, mag)}
		}

		rx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal)
		ry := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical)
		if mag := math.Hypot(rx, ry); mag > stickDeadzone {
			snap.RightStick = input.Joystick{Angle: math.Atan2(-ry, rx), Magnitude: math.Min(1, mag)}
		}
	}

	return snap
}

// driveCart applies simple A/D horizontal control so the cart can be moved
// onto mechanisms.
func driveCart(cart *physics.Cart, _ input.Snapshot) {
	if cart == nil || cart.Body() == nil {
		return
	}
	vx := 0.0
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		vx -= cartSpeed
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		vx += cartSpeed
	}
	v := cart.Velocity()
	cart.Body().SetVelocityVector(cp.Vector{X: vx, Y: v.Y})
}
