package mech

import (
	"math"
	"time"
)

// UpdateAutoRotate advances a contact-triggered rotator. Arrival is
// edge-detected: the cart landing on the platform arms the rotation toward
// the full angle. Once the cart has left and ResetDelay has elapsed on the
// sim clock, the platform unwinds and re-arms, unless TriggerOnce keeps it
// latched. now must come from the same clock that accumulates dt.
func (m *Mechanism) UpdateAutoRotate(cartOn bool, dt float64, now time.Duration) {
	m.mustKind(KindAutoRotate, "UpdateAutoRotate")
	cfg := &m.Config

	if cartOn && !m.cartOnPlatform && !m.isTriggered {
		m.isTriggered = true
		m.lastTriggerAt = now
		m.targetAngle = cfg.FullRotationAngle
		m.State = StateActive
	}

	if m.isTriggered && !cfg.TriggerOnce && !cartOn && now-m.lastTriggerAt >= cfg.ResetDelay {
		m.targetAngle = 0
		if m.currentAngle != 0 {
			m.State = StateReturning
		}
	}

	// Constant-rate advance toward the target, never overshooting.
	step := cfg.RotationSpeed * dt
	switch {
	case m.currentAngle < m.targetAngle:
		m.currentAngle = math.Min(m.targetAngle, m.currentAngle+step)
	case m.currentAngle > m.targetAngle:
		m.currentAngle = math.Max(m.targetAngle, m.currentAngle-step)
	}

	if m.State == StateReturning && m.currentAngle == 0 && !cartOn {
		m.State = StateIdle
		m.isTriggered = false
	}

	m.cartOnPlatform = cartOn

	m.Progress = 0
	if cfg.FullRotationAngle != 0 {
		m.Progress = math.Abs(m.currentAngle) / math.Abs(cfg.FullRotationAngle)
	}
	m.placeRotator()
}
