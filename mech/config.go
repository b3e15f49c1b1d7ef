package mech

import (
	"math"
	"time"

	"github.com/jakecoffman/cp"
)

// Easing fractions for the button-driven gear. These are applied per update
// call, not per second, so the gear's feel depends on a stable call cadence.
const (
	gearHeldEase     = 0.20
	gearReleasedEase = 0.15
)

// stickEaseScale converts a gear speed into the joystick gear's
// time-scaled easing fraction: min(1, speed*dt*stickEaseScale).
const stickEaseScale = 0.1

// Config holds the resolved tunables for one mechanism. Numeric fields left
// at zero are filled from the kind defaults at creation time; booleans and
// the launch direction are taken as authored. Angles are radians, speeds
// are per second, distances are pixels.
type Config struct {
	Control ControlType

	// Gears.
	RotationSpeed   float64
	ReturnSpeed     float64
	RangeMin        float64
	RangeMax        float64
	MaxRotation     float64
	Deadzone        float64
	ArmLength       float64
	ReturnToNeutral bool

	// Lift and fan platforms.
	MoveSpeed      float64
	DescentSpeed   float64
	LiftHeight     float64
	HoldToMaintain bool

	// Launcher.
	ChargeTime       float64
	MaxLaunchForce   float64
	ActivationRadius float64
	LaunchDirection  cp.Vector

	// Auto-rotate.
	FullRotationAngle float64
	ResetDelay        time.Duration
	TriggerOnce       bool
	Pivot             PivotPoint
	PivotOffset       float64

	// Conveyor belt.
	BeltSpeed     float64
	BeltDirection float64
	Enabled       bool

	// Platform geometry.
	PlatformWidth  float64
	PlatformHeight float64
}

func defaultConfig(kind Kind) Config {
	cfg := Config{
		PlatformWidth:  96,
		PlatformHeight: 16,
	}
	switch kind {
	case KindRotatingGear:
		cfg.Control = ControlLeftButton
		cfg.RotationSpeed = 2.0
		cfg.ReturnSpeed = 3.0
		cfg.RangeMax = math.Pi / 2
		cfg.ArmLength = 80
	case KindJoystickGear:
		cfg.Control = ControlLeftStick
		cfg.RotationSpeed = 8.0
		cfg.ReturnSpeed = 6.0
		cfg.MaxRotation = math.Pi / 4
		cfg.Deadzone = 0.2
		cfg.ArmLength = 80
	case KindLiftPlatform:
		cfg.Control = ControlRightButton
		cfg.MoveSpeed = 100
		cfg.ReturnSpeed = 120
		cfg.LiftHeight = 150
	case KindFanPlatform:
		cfg.Control = ControlBlow
		cfg.MoveSpeed = 80
		cfg.DescentSpeed = 60
		cfg.LiftHeight = 120
	case KindLauncher:
		cfg.Control = ControlRightButton
		cfg.ChargeTime = 1.5
		cfg.MaxLaunchForce = 600
		cfg.ActivationRadius = 50
		cfg.LaunchDirection = cp.Vector{X: 0, Y: -1}
	case KindAutoRotate:
		cfg.RotationSpeed = math.Pi / 2
		cfg.FullRotationAngle = math.Pi / 2
		cfg.ResetDelay = time.Second
		cfg.PivotOffset = 48
	case KindConveyorBelt:
		cfg.BeltSpeed = 120
		cfg.BeltDirection = 1
		cfg.PlatformWidth = 128
	}
	return cfg
}

// resolved merges the kind defaults into zero-valued numeric fields.
func (c Config) resolved(kind Kind) Config {
	def := defaultConfig(kind)
	if c.Control == ControlNone {
		c.Control = def.Control
	}
	if c.RotationSpeed == 0 {
		c.RotationSpeed = def.RotationSpeed
	}
	if c.ReturnSpeed == 0 {
		c.ReturnSpeed = def.ReturnSpeed
	}
	if c.RangeMax == 0 {
		c.RangeMax = def.RangeMax
	}
	if c.MaxRotation == 0 {
		c.MaxRotation = def.MaxRotation
	}
	if c.Deadzone == 0 {
		c.Deadzone = def.Deadzone
	}
	if c.ArmLength == 0 {
		c.ArmLength = def.ArmLength
	}
	if c.MoveSpeed == 0 {
		c.MoveSpeed = def.MoveSpeed
	}
	if c.DescentSpeed == 0 {
		c.DescentSpeed = def.DescentSpeed
	}
	if c.LiftHeight == 0 {
		c.LiftHeight = def.LiftHeight
	}
	if c.ChargeTime == 0 {
		c.ChargeTime = def.ChargeTime
	}
	if c.MaxLaunchForce == 0 {
		c.MaxLaunchForce = def.MaxLaunchForce
	}
	if c.ActivationRadius == 0 {
		c.ActivationRadius = def.ActivationRadius
	}
	if c.LaunchDirection.Length() == 0 {
		c.LaunchDirection = def.LaunchDirection
	}
	if c.FullRotationAngle == 0 {
		c.FullRotationAngle = def.FullRotationAngle
	}
	if c.ResetDelay == 0 {
		c.ResetDelay = def.ResetDelay
	}
	if c.PivotOffset == 0 {
		c.PivotOffset = def.PivotOffset
	}
	if c.BeltSpeed == 0 {
		c.BeltSpeed = def.BeltSpeed
	}
	if c.BeltDirection == 0 {
		c.BeltDirection = def.BeltDirection
	}
	if c.PlatformWidth == 0 {
		c.PlatformWidth = def.PlatformWidth
	}
	if c.PlatformHeight == 0 {
		c.PlatformHeight = def.PlatformHeight
	}
	return c
}
