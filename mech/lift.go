package mech

import "math"

// UpdateLiftPlatform raises the platform while the button is held and
// always lowers it otherwise.
func (m *Mechanism) UpdateLiftPlatform(held bool, dt float64) {
	m.mustKind(KindLiftPlatform, "UpdateLiftPlatform")
	m.stepLift(held, dt, m.Config.ReturnSpeed, true)
}

// UpdateFanPlatform raises the platform while the blow signal is active.
// When the signal stops the platform descends only if HoldToMaintain is
// set; otherwise it holds its height.
func (m *Mechanism) UpdateFanPlatform(blowing bool, dt float64) {
	m.mustKind(KindFanPlatform, "UpdateFanPlatform")
	if blowing {
		m.blowDuration += dt
	} else {
		m.blowDuration = 0
	}
	m.stepLift(blowing, dt, m.Config.DescentSpeed, m.Config.HoldToMaintain)
}

// stepLift integrates the normalized lift. The raise and lower rates are
// pixel speeds divided by the full travel distance, so currentLift reaches
// 1.0 after exactly liftDistance/MoveSpeed seconds of drive.
func (m *Mechanism) stepLift(driving bool, dt, lowerSpeed float64, lowers bool) {
	dist := m.baseY - m.ceilingY
	switch {
	case driving:
		m.State = StateActive
		if dist > 0 {
			m.currentLift = math.Min(1, m.currentLift+m.Config.MoveSpeed*dt/dist)
		}
	case lowers:
		if m.currentLift > 0 {
			m.State = StateReturning
		} else {
			m.State = StateIdle
		}
		if dist > 0 {
			m.currentLift = math.Max(0, m.currentLift-lowerSpeed*dt/dist)
		}
	default:
		m.State = StateIdle
	}

	m.Progress = m.currentLift
	m.placeLift()
}
