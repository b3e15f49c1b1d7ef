package mech

import (
	"math"
	"time"

	"github.com/milk9111/cartcourse/physics"
)

// UpdateLauncher accumulates charge while the button is held. When the
// button is released with charge banked, the state moves to transitioning
// and stays there until the caller settles the launch with EvaluateLaunch.
// The mechanism cannot launch by itself: only the caller sees the release
// edge and the cart overlap in the same frame, and deciding here would
// double-count across frames.
func (m *Mechanism) UpdateLauncher(held bool, dt float64) {
	m.mustKind(KindLauncher, "UpdateLauncher")
	cfg := &m.Config
	switch {
	case held:
		m.isCharging = true
		m.State = StateActive
		if cfg.ChargeTime > 0 {
			m.chargeLevel = math.Min(1, m.chargeLevel+dt/cfg.ChargeTime)
		} else {
			m.chargeLevel = 1
		}
	case m.isCharging:
		if m.chargeLevel > 0 {
			m.State = StateTransitioning
		} else {
			// Released before any charge accumulated (zero-dt hold):
			// nothing to settle, so skip the transition entirely.
			m.isCharging = false
			m.State = StateIdle
		}
	default:
		m.State = StateIdle
	}
	m.Progress = m.chargeLevel
}

// EvaluateLaunch settles a release-while-charged transition. The cart
// receives the impulse only when it sits inside the activation radius; a
// whiffed launch discards the charge silently. The mechanism returns to
// idle either way. Reports whether the impulse was applied.
//
// Calling this without a banked charge is a contract violation.
func (m *Mechanism) EvaluateLaunch(cart *physics.Cart, now time.Duration) bool {
	m.mustKind(KindLauncher, "EvaluateLaunch")
	if !m.isCharging || m.chargeLevel <= 0 {
		panic("mech: EvaluateLaunch without a banked charge")
	}

	launched := false
	if cart != nil && cart.Position().Distance(m.Anchor) <= m.Config.ActivationRadius {
		dir := m.Config.LaunchDirection
		if dir.Length() > 0 {
			impulse := dir.Normalize().Mult(m.Config.MaxLaunchForce * m.chargeLevel)
			cart.ApplyImpulse(impulse)
			m.lastLaunchAt = now
			launched = true
		}
	}

	m.chargeLevel = 0
	m.isCharging = false
	m.State = StateIdle
	m.Progress = 0
	return launched
}
