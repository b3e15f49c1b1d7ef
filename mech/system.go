package mech

import (
	"time"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/cartcourse/input"
	"github.com/milk9111/cartcourse/physics"
)

// DefaultContactThreshold is the vertical slack, in pixels, used when
// deciding whether the cart rests on a platform.
const DefaultContactThreshold = 4.0

// EventSink receives mechanism lifecycle events after each frame's updates.
// Events: "triggered", "launched", "whiffed", "attached", "detached".
type EventSink interface {
	MechanismEvent(event string, m *Mechanism)
}

// System drives every live mechanism once per frame and resolves which
// mechanism, if any, the cart currently rests on. It owns the monotonic
// simulation clock that timestamped mechanisms (launcher, auto-rotate)
// read, accumulated from the dt stream so tests can drive time exactly.
type System struct {
	mechanisms []*Mechanism
	simTime    time.Duration
	threshold  float64
	sink       EventSink
	attached   *Mechanism
}

// NewSystem creates an orchestrator over a set of mechanisms.
func NewSystem(mechanisms []*Mechanism) *System {
	return &System{
		mechanisms: mechanisms,
		threshold:  DefaultContactThreshold,
	}
}

// Add registers another mechanism. Iteration (and therefore the attachment
// tie-break) follows registration order.
func (s *System) Add(m *Mechanism) {
	if s == nil || m == nil {
		return
	}
	s.mechanisms = append(s.mechanisms, m)
}

// Mechanisms returns the registered mechanisms in iteration order.
func (s *System) Mechanisms() []*Mechanism {
	if s == nil {
		return nil
	}
	return s.mechanisms
}

// SetEventSink attaches an optional sink for mechanism events.
func (s *System) SetEventSink(sink EventSink) {
	if s == nil {
		return
	}
	s.sink = sink
}

// SetContactThreshold overrides the attachment slack in pixels.
func (s *System) SetContactThreshold(px float64) {
	if s == nil {
		return
	}
	s.threshold = px
}

// Now returns the accumulated simulation clock.
func (s *System) Now() time.Duration {
	if s == nil {
		return 0
	}
	return s.simTime
}

// Attached returns the mechanism the cart rested on after the last update,
// or nil.
func (s *System) Attached() *Mechanism {
	if s == nil {
		return nil
	}
	return s.attached
}

// Update advances every mechanism from the input snapshot and resolves cart
// attachment. It returns the first mechanism (in registration order) the
// cart rests on, or nil. Mechanisms never read each other's output within a
// frame, so the iteration order matters only as the documented attachment
// tie-break. Removed mechanisms and unknown kinds are skipped.
func (s *System) Update(in input.Snapshot, cart *physics.Cart, dt float64) *Mechanism {
	if s == nil {
		return nil
	}
	s.simTime += time.Duration(dt * float64(time.Second))

	for _, m := range s.mechanisms {
		if m == nil || m.Removed() {
			continue
		}
		switch m.Kind {
		case KindRotatingGear:
			m.UpdateRotatingGear(buttonFor(in, m.Config.Control), dt)
		case KindJoystickGear:
			m.UpdateJoystickGear(stickFor(in, m.Config.Control), dt)
		case KindLiftPlatform:
			m.UpdateLiftPlatform(buttonFor(in, m.Config.Control), dt)
		case KindFanPlatform:
			m.UpdateFanPlatform(buttonFor(in, m.Config.Control), dt)
		case KindLauncher:
			m.UpdateLauncher(buttonFor(in, m.Config.Control), dt)
			if m.State == StateTransitioning {
				if m.EvaluateLaunch(cart, s.simTime) {
					s.emit("launched", m)
				} else {
					s.emit("whiffed", m)
				}
			}
		case KindAutoRotate:
			wasTriggered := m.Triggered()
			m.UpdateAutoRotate(m.IsCartOn(cart, s.threshold), dt, s.simTime)
			if !wasTriggered && m.Triggered() {
				s.emit("triggered", m)
			}
		case KindConveyorBelt:
			m.UpdateConveyorBelt(dt)
		default:
			// Unregistered kind: skip.
		}
	}

	prev := s.attached
	s.attached = s.resolveAttachment(cart)
	if s.attached != prev {
		if prev != nil {
			s.emit("detached", prev)
		}
		if s.attached != nil {
			s.emit("attached", s.attached)
		}
	}
	return s.attached
}

func (s *System) resolveAttachment(cart *physics.Cart) *Mechanism {
	for _, m := range s.mechanisms {
		if m == nil || m.Removed() {
			continue
		}
		if m.IsCartOn(cart, s.threshold) {
			return m
		}
	}
	return nil
}

func (s *System) emit(event string, m *Mechanism) {
	if s.sink != nil {
		s.sink.MechanismEvent(event, m)
	}
}

// PlatformBodies lists every live mechanism's platform body.
func (s *System) PlatformBodies() []*cp.Body {
	if s == nil {
		return nil
	}
	bodies := make([]*cp.Body, 0, len(s.mechanisms))
	for _, m := range s.mechanisms {
		if m == nil || m.Removed() {
			continue
		}
		bodies = append(bodies, m.PlatformBody())
	}
	return bodies
}

// FindByPlatformBody returns the live mechanism owning a platform body, or
// nil.
func (s *System) FindByPlatformBody(body *cp.Body) *Mechanism {
	if s == nil || body == nil {
		return nil
	}
	for _, m := range s.mechanisms {
		if m == nil || m.Removed() {
			continue
		}
		if m.PlatformBody() == body {
			return m
		}
	}
	return nil
}

// ResetAll restores every live mechanism to its authored pose, e.g. on a
// course retry. The simulation clock keeps running.
func (s *System) ResetAll() {
	if s == nil {
		return
	}
	for _, m := range s.mechanisms {
		if m == nil || m.Removed() {
			continue
		}
		m.Reset()
	}
	s.attached = nil
}

// RemoveAll detaches every mechanism's bodies from the world on course
// unload.
func (s *System) RemoveAll(w *physics.World) {
	if s == nil {
		return
	}
	for _, m := range s.mechanisms {
		if m != nil {
			m.Remove(w)
		}
	}
	s.attached = nil
}

func buttonFor(in input.Snapshot, control ControlType) bool {
	switch control {
	case ControlLeftButton:
		return in.LeftHeld
	case ControlRightButton:
		return in.RightHeld
	case ControlBlow:
		return in.Blow
	}
	return false
}

func stickFor(in input.Snapshot, control ControlType) input.Joystick {
	switch control {
	case ControlLeftStick:
		return in.LeftStick
	case ControlRightStick:
		return in.RightStick
	}
	return input.Joystick{}
}
