package mech

// UpdateConveyorBelt keeps the belt's surface velocity in sync with its
// enabled flag. The physics solver drags resting bodies along through
// friction; the platform itself never moves.
func (m *Mechanism) UpdateConveyorBelt(dt float64) {
	m.mustKind(KindConveyorBelt, "UpdateConveyorBelt")
	_ = dt
	if m.beltEnabled {
		m.State = StateActive
		m.Progress = 1
	} else {
		m.State = StateIdle
		m.Progress = 0
	}
	m.applyBeltSurface()
}

// SetBeltEnabled toggles the belt effect without removing the mechanism.
func (m *Mechanism) SetBeltEnabled(enabled bool) {
	m.mustKind(KindConveyorBelt, "SetBeltEnabled")
	m.beltEnabled = enabled
}

// BeltEnabled reports whether the belt effect is on.
func (m *Mechanism) BeltEnabled() bool { return m.beltEnabled }
