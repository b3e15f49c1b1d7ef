package prefabs

import (
	"fmt"
	"time"

	"github.com/jakecoffman/cp"
	"gopkg.in/yaml.v3"

	"github.com/milk9111/cartcourse/mech"
)

// MechanismSpec is the yaml form of one mechanism's tunables. Fields the
// kind does not use are simply left out of its file.
type MechanismSpec struct {
	Name    string `yaml:"name"`
	Kind    string `yaml:"kind"`
	Control string `yaml:"control"`

	PlatformWidth  float64 `yaml:"platform_width"`
	PlatformHeight float64 `yaml:"platform_height"`

	RotationSpeed   float64 `yaml:"rotation_speed"`
	ReturnSpeed     float64 `yaml:"return_speed"`
	RangeMin        float64 `yaml:"range_min"`
	RangeMax        float64 `yaml:"range_max"`
	MaxRotation     float64 `yaml:"max_rotation"`
	Deadzone        float64 `yaml:"deadzone"`
	ArmLength       float64 `yaml:"arm_length"`
	ReturnToNeutral bool    `yaml:"return_to_neutral"`

	MoveSpeed      float64 `yaml:"move_speed"`
	DescentSpeed   float64 `yaml:"descent_speed"`
	LiftHeight     float64 `yaml:"lift_height"`
	HoldToMaintain bool    `yaml:"hold_to_maintain"`

	ChargeTime       float64 `yaml:"charge_time"`
	MaxLaunchForce   float64 `yaml:"max_launch_force"`
	ActivationRadius float64 `yaml:"activation_radius"`
	LaunchDirectionX float64 `yaml:"launch_direction_x"`
	LaunchDirectionY float64 `yaml:"launch_direction_y"`

	FullRotationAngle float64 `yaml:"full_rotation_angle"`
	ResetDelayMS      int     `yaml:"reset_delay_ms"`
	TriggerOnce       bool    `yaml:"trigger_once"`
	Pivot             string  `yaml:"pivot"`
	PivotOffset       float64 `yaml:"pivot_offset"`

	BeltSpeed     float64 `yaml:"belt_speed"`
	BeltDirection float64 `yaml:"belt_direction"`
	Enabled       bool    `yaml:"enabled"`
}

// LoadSpec loads and unmarshals any yaml prefab.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// LoadMechanismSpec loads one mechanism prefab by file name.
func LoadMechanismSpec(filename string) (*MechanismSpec, error) {
	spec, err := LoadSpec[MechanismSpec](filename)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// MechKind resolves the spec's kind tag.
func (s *MechanismSpec) MechKind() (mech.Kind, error) {
	return ParseKind(s.Kind)
}

// Config maps the spec onto mechanism tunables. Unset numeric fields stay
// zero and fall back to the kind defaults at creation time.
func (s *MechanismSpec) Config() (mech.Config, error) {
	control, err := ParseControl(s.Control)
	if err != nil {
		return mech.Config{}, err
	}
	pivot, err := ParsePivot(s.Pivot)
	if err != nil {
		return mech.Config{}, err
	}
	return mech.Config{
		Control:           control,
		PlatformWidth:     s.PlatformWidth,
		PlatformHeight:    s.PlatformHeight,
		RotationSpeed:     s.RotationSpeed,
		ReturnSpeed:       s.ReturnSpeed,
		RangeMin:          s.RangeMin,
		RangeMax:          s.RangeMax,
		MaxRotation:       s.MaxRotation,
		Deadzone:          s.Deadzone,
		ArmLength:         s.ArmLength,
		ReturnToNeutral:   s.ReturnToNeutral,
		MoveSpeed:         s.MoveSpeed,
		DescentSpeed:      s.DescentSpeed,
		LiftHeight:        s.LiftHeight,
		HoldToMaintain:    s.HoldToMaintain,
		ChargeTime:        s.ChargeTime,
		MaxLaunchForce:    s.MaxLaunchForce,
		ActivationRadius:  s.ActivationRadius,
		LaunchDirection:   cp.Vector{X: s.LaunchDirectionX, Y: s.LaunchDirectionY},
		FullRotationAngle: s.FullRotationAngle,
		ResetDelay:        time.Duration(s.ResetDelayMS) * time.Millisecond,
		TriggerOnce:       s.TriggerOnce,
		Pivot:             pivot,
		PivotOffset:       s.PivotOffset,
		BeltSpeed:         s.BeltSpeed,
		BeltDirection:     s.BeltDirection,
		Enabled:           s.Enabled,
	}, nil
}

// ParseKind resolves a yaml kind tag.
func ParseKind(tag string) (mech.Kind, error) {
	switch tag {
	case "rotating_gear":
		return mech.KindRotatingGear, nil
	case "joystick_gear":
		return mech.KindJoystickGear, nil
	case "lift_platform":
		return mech.KindLiftPlatform, nil
	case "fan_platform":
		return mech.KindFanPlatform, nil
	case "launcher":
		return mech.KindLauncher, nil
	case "auto_rotate":
		return mech.KindAutoRotate, nil
	case "conveyor_belt":
		return mech.KindConveyorBelt, nil
	}
	return 0, fmt.Errorf("prefabs: unknown mechanism kind %q", tag)
}

// ParseControl resolves a yaml control tag. Empty means none.
func ParseControl(tag string) (mech.ControlType, error) {
	switch tag {
	case "", "none":
		return mech.ControlNone, nil
	case "left_button":
		return mech.ControlLeftButton, nil
	case "right_button":
		return mech.ControlRightButton, nil
	case "left_stick":
		return mech.ControlLeftStick, nil
	case "right_stick":
		return mech.ControlRightStick, nil
	case "blow":
		return mech.ControlBlow, nil
	}
	return 0, fmt.Errorf("prefabs: unknown control %q", tag)
}

// ParsePivot resolves a yaml pivot tag. Empty means center.
func ParsePivot(tag string) (mech.PivotPoint, error) {
	switch tag {
	case "", "center":
		return mech.PivotCenter, nil
	case "left":
		return mech.PivotLeft, nil
	case "right":
		return mech.PivotRight, nil
	}
	return 0, fmt.Errorf("prefabs: unknown pivot %q", tag)
}
