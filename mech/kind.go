package mech

// Kind identifies one of the fixed mechanism variants.
type Kind int

const (
	KindRotatingGear Kind = iota
	KindJoystickGear
	KindLiftPlatform
	KindFanPlatform
	KindLauncher
	KindAutoRotate
	KindConveyorBelt
)

func (k Kind) String() string {
	switch k {
	case KindRotatingGear:
		return "rotating_gear"
	case KindJoystickGear:
		return "joystick_gear"
	case KindLiftPlatform:
		return "lift_platform"
	case KindFanPlatform:
		return "fan_platform"
	case KindLauncher:
		return "launcher"
	case KindAutoRotate:
		return "auto_rotate"
	case KindConveyorBelt:
		return "conveyor_belt"
	}
	return "unknown"
}

// State is the phase a mechanism's state machine is currently in.
type State int

const (
	StateIdle State = iota
	StateActive
	StateReturning
	StateTransitioning
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateActive:
		return "active"
	case StateReturning:
		return "returning"
	case StateTransitioning:
		return "transitioning"
	}
	return "unknown"
}

// ControlType designates which input channel drives a mechanism.
type ControlType int

const (
	ControlNone ControlType = iota
	ControlLeftButton
	ControlRightButton
	ControlLeftStick
	ControlRightStick
	ControlBlow
)

func (c ControlType) String() string {
	switch c {
	case ControlNone:
		return "none"
	case ControlLeftButton:
		return "left_button"
	case ControlRightButton:
		return "right_button"
	case ControlLeftStick:
		return "left_stick"
	case ControlRightStick:
		return "right_stick"
	case ControlBlow:
		return "blow"
	}
	return "unknown"
}

// PivotPoint selects which edge an auto-rotate platform rotates around.
type PivotPoint int

const (
	PivotCenter PivotPoint = iota
	PivotLeft
	PivotRight
)

func (p PivotPoint) String() string {
	switch p {
	case PivotCenter:
		return "center"
	case PivotLeft:
		return "left"
	case PivotRight:
		return "right"
	}
	return "unknown"
}
