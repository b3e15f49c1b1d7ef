package mech

import (
	"math"

	"github.com/milk9111/cartcourse/common"
	"github.com/milk9111/cartcourse/input"
)

// UpdateRotatingGear advances a button-driven gear arm. Holding winds the
// target angle up at RotationSpeed; releasing unwinds it at ReturnSpeed when
// ReturnToNeutral is set. The current angle chases the target by a fixed
// per-call fraction (0.20 held, 0.15 released), so the gear's feel depends
// on a stable update cadence, not on dt.
func (m *Mechanism) UpdateRotatingGear(held bool, dt float64) {
	m.mustKind(KindRotatingGear, "UpdateRotatingGear")
	cfg := &m.Config
	ease := gearReleasedEase
	switch {
	case held:
		m.State = StateActive
		m.targetAngle = common.Clamp(m.targetAngle+cfg.RotationSpeed*dt, cfg.RangeMin, cfg.RangeMax)
		ease = gearHeldEase
	case cfg.ReturnToNeutral:
		if m.currentAngle != 0 {
			m.State = StateReturning
		} else {
			m.State = StateIdle
		}
		m.targetAngle = math.Max(0, m.targetAngle-cfg.ReturnSpeed*dt)
	default:
		m.State = StateIdle
	}

	m.currentAngle += (m.targetAngle - m.currentAngle) * ease
	m.currentAngle = common.Clamp(m.currentAngle, cfg.RangeMin, cfg.RangeMax)

	m.Progress = 0
	if cfg.RangeMax != 0 {
		m.Progress = math.Abs(m.currentAngle) / math.Abs(cfg.RangeMax)
	}
	m.placeArm()
}

// UpdateJoystickGear advances a stick-driven gear arm. The stick's vertical
// component maps directly onto the target angle within ±MaxRotation. Unlike
// the button gear, the easing fraction here scales with dt.
func (m *Mechanism) UpdateJoystickGear(stick input.Joystick, dt float64) {
	m.mustKind(KindJoystickGear, "UpdateJoystickGear")
	cfg := &m.Config
	ease := math.Min(1, cfg.ReturnSpeed*dt*stickEaseScale)
	switch {
	case stick.Magnitude > cfg.Deadzone:
		m.State = StateActive
		vertical := -math.Sin(stick.Angle) * stick.Magnitude
		m.targetAngle = common.Clamp(vertical*cfg.MaxRotation, -cfg.MaxRotation, cfg.MaxRotation)
		ease = math.Min(1, cfg.RotationSpeed*dt*stickEaseScale)
	case cfg.ReturnToNeutral:
		if m.currentAngle != 0 {
			m.State = StateReturning
		} else {
			m.State = StateIdle
		}
		m.targetAngle = 0
	default:
		// No drive and no return: the gear freezes where it is.
		m.State = StateIdle
	}

	m.currentAngle += (m.targetAngle - m.currentAngle) * ease
	m.currentAngle = common.Clamp(m.currentAngle, -cfg.MaxRotation, cfg.MaxRotation)

	m.Progress = 0
	if cfg.MaxRotation != 0 {
		m.Progress = m.currentAngle / cfg.MaxRotation
	}
	m.placeArm()
}
