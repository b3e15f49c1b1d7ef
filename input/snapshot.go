package input

// Joystick is one analog stick sample: direction in radians and deflection
// magnitude in [0,1].
type Joystick struct {
	Angle     float64
	Magnitude float64
}

// Snapshot is the complete per-frame input state the mechanism system
// consumes. The host must fill every channel every frame; mechanisms pick
// the channel their control type designates.
type Snapshot struct {
	LeftHeld   bool
	RightHeld  bool
	LeftStick  Joystick
	RightStick Joystick
	Blow       bool
}
