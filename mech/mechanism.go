package mech

import (
	"math"
	"time"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/cartcourse/common"
	"github.com/milk9111/cartcourse/physics"
)

const pivotRadius = 6.0

// Mechanism is one interactive course element: an owned physics body (two
// for gear arms) plus a small per-kind state machine advanced every
// simulation tick. Body handles are exclusive to the mechanism; nothing
// else may move them.
type Mechanism struct {
	ID     int
	Kind   Kind
	Anchor cp.Vector
	Config Config

	State    State
	Progress float64

	platformBody  *cp.Body
	platformShape *cp.Shape
	pivotBody     *cp.Body
	pivotShape    *cp.Shape

	removed bool

	// Gears and auto-rotate.
	currentAngle float64
	targetAngle  float64

	// Lift and fan platforms.
	baseY        float64
	ceilingY     float64
	currentLift  float64
	blowDuration float64

	// Launcher.
	chargeLevel  float64
	isCharging   bool
	lastLaunchAt time.Duration

	// Auto-rotate.
	isTriggered    bool
	cartOnPlatform bool
	lastTriggerAt  time.Duration

	// Conveyor belt.
	beltEnabled bool
}

// NewRotatingGear creates a button-driven gear arm: a rotating pivot at the
// anchor and a platform at the end of a fixed-length arm.
func NewRotatingGear(w *physics.World, id int, anchor cp.Vector, cfg Config) *Mechanism {
	m := newMechanism(id, KindRotatingGear, anchor, cfg)
	m.pivotBody, m.pivotShape = w.AddPivot(anchor, pivotRadius)
	m.platformBody, m.platformShape = w.AddPlatform(anchor, m.Config.PlatformWidth, m.Config.PlatformHeight)
	m.placeArm()
	return m
}

// NewJoystickGear creates a stick-driven gear arm.
func NewJoystickGear(w *physics.World, id int, anchor cp.Vector, cfg Config) *Mechanism {
	m := newMechanism(id, KindJoystickGear, anchor, cfg)
	m.pivotBody, m.pivotShape = w.AddPivot(anchor, pivotRadius)
	m.platformBody, m.platformShape = w.AddPlatform(anchor, m.Config.PlatformWidth, m.Config.PlatformHeight)
	m.placeArm()
	return m
}

// NewLiftPlatform creates a button-driven vertical lift. The anchor is the
// base (lowered) position; the raised position sits LiftHeight above it.
func NewLiftPlatform(w *physics.World, id int, anchor cp.Vector, cfg Config) *Mechanism {
	m := newMechanism(id, KindLiftPlatform, anchor, cfg)
	m.baseY = anchor.Y
	m.ceilingY = anchor.Y - m.Config.LiftHeight
	m.platformBody, m.platformShape = w.AddPlatform(anchor, m.Config.PlatformWidth, m.Config.PlatformHeight)
	return m
}

// NewFanPlatform creates a blow-driven vertical lift.
func NewFanPlatform(w *physics.World, id int, anchor cp.Vector, cfg Config) *Mechanism {
	m := newMechanism(id, KindFanPlatform, anchor, cfg)
	m.baseY = anchor.Y
	m.ceilingY = anchor.Y - m.Config.LiftHeight
	m.platformBody, m.platformShape = w.AddPlatform(anchor, m.Config.PlatformWidth, m.Config.PlatformHeight)
	return m
}

// NewLauncher creates a charge-and-release pad. The platform never moves;
// releasing a banked charge flings the cart if it is inside the activation
// radius.
func NewLauncher(w *physics.World, id int, anchor cp.Vector, cfg Config) *Mechanism {
	m := newMechanism(id, KindLauncher, anchor, cfg)
	m.platformBody, m.platformShape = w.AddPlatform(anchor, m.Config.PlatformWidth, m.Config.PlatformHeight)
	return m
}

// NewAutoRotate creates a contact-triggered rotator.
func NewAutoRotate(w *physics.World, id int, anchor cp.Vector, cfg Config) *Mechanism {
	m := newMechanism(id, KindAutoRotate, anchor, cfg)
	m.platformBody, m.platformShape = w.AddPlatform(anchor, m.Config.PlatformWidth, m.Config.PlatformHeight)
	return m
}

// NewConveyorBelt creates a motion belt. The platform stays put; its
// surface velocity drags resting bodies sideways while enabled.
func NewConveyorBelt(w *physics.World, id int, anchor cp.Vector, cfg Config) *Mechanism {
	m := newMechanism(id, KindConveyorBelt, anchor, cfg)
	m.beltEnabled = m.Config.Enabled
	m.platformBody, m.platformShape = w.AddPlatform(anchor, m.Config.PlatformWidth, m.Config.PlatformHeight)
	m.applyBeltSurface()
	return m
}

func newMechanism(id int, kind Kind, anchor cp.Vector, cfg Config) *Mechanism {
	return &Mechanism{
		ID:     id,
		Kind:   kind,
		Anchor: anchor,
		Config: cfg.resolved(kind),
		State:  StateIdle,
	}
}

// PlatformBody returns the mechanism's platform body for read-only queries.
func (m *Mechanism) PlatformBody() *cp.Body {
	if m == nil {
		return nil
	}
	return m.platformBody
}

// PlatformBB returns the platform's current axis-aligned bounds.
func (m *Mechanism) PlatformBB() cp.BB {
	if m == nil || m.platformShape == nil {
		return cp.BB{}
	}
	return m.platformShape.BB()
}

// Angle returns the current rotation for gear and auto-rotate mechanisms.
func (m *Mechanism) Angle() float64 { return m.currentAngle }

// Lift returns the normalized lift for lift and fan platforms.
func (m *Mechanism) Lift() float64 { return m.currentLift }

// ChargeLevel returns the launcher's banked charge in [0,1].
func (m *Mechanism) ChargeLevel() float64 { return m.chargeLevel }

// Charging reports whether the launcher is accumulating charge.
func (m *Mechanism) Charging() bool { return m.isCharging }

// Triggered reports whether an auto-rotate mechanism has fired.
func (m *Mechanism) Triggered() bool { return m.isTriggered }

// BlowDuration returns how long the fan's blow signal has been held, in
// seconds. Resets to zero when the signal stops.
func (m *Mechanism) BlowDuration() float64 { return m.blowDuration }

// LastLaunchAt returns the sim-clock time of the last applied launch.
func (m *Mechanism) LastLaunchAt() time.Duration { return m.lastLaunchAt }

// LastTriggerAt returns the sim-clock time of the last auto-rotate trigger.
func (m *Mechanism) LastTriggerAt() time.Duration { return m.lastTriggerAt }

// Removed reports whether the mechanism's bodies have been detached.
func (m *Mechanism) Removed() bool { return m == nil || m.removed }

// Reset restores the mechanism to its authored pose and clears all
// triggered, charging, and contact flags. Bodies are kept in the world.
func (m *Mechanism) Reset() {
	m.ensureLive()
	m.State = StateIdle
	m.Progress = 0
	m.currentAngle = 0
	m.targetAngle = 0
	m.currentLift = 0
	m.blowDuration = 0
	m.chargeLevel = 0
	m.isCharging = false
	m.lastLaunchAt = 0
	m.isTriggered = false
	m.cartOnPlatform = false
	m.lastTriggerAt = 0
	m.beltEnabled = m.Config.Enabled
	m.restorePose()
}

// Remove detaches the mechanism's bodies from the world. The record is dead
// afterwards; updating it panics.
func (m *Mechanism) Remove(w *physics.World) {
	if m == nil || m.removed {
		return
	}
	w.Remove(m.platformBody, m.platformShape)
	if m.pivotBody != nil {
		w.Remove(m.pivotBody, m.pivotShape)
	}
	m.removed = true
}

func (m *Mechanism) ensureLive() {
	if m.removed {
		panic("mech: use of removed mechanism " + m.Kind.String())
	}
}

func (m *Mechanism) mustKind(k Kind, op string) {
	m.ensureLive()
	if m.Kind != k {
		panic("mech: " + op + " called on " + m.Kind.String() + " mechanism")
	}
}

func (m *Mechanism) restorePose() {
	switch m.Kind {
	case KindRotatingGear, KindJoystickGear:
		m.placeArm()
	case KindLiftPlatform, KindFanPlatform:
		m.placeLift()
	case KindAutoRotate:
		m.placeRotator()
	case KindConveyorBelt:
		m.applyBeltSurface()
		m.platformBody.SetPosition(m.Anchor)
		m.platformShape.CacheBB()
	default:
		m.platformBody.SetPosition(m.Anchor)
		m.platformBody.SetAngle(0)
		m.platformShape.CacheBB()
	}
}

// placeArm writes the gear arm pose: the platform swings around the anchor
// at the end of the arm and tilts with it; the pivot only spins.
func (m *Mechanism) placeArm() {
	pos := cp.Vector{
		X: m.Anchor.X + math.Cos(m.currentAngle)*m.Config.ArmLength,
		Y: m.Anchor.Y + math.Sin(m.currentAngle)*m.Config.ArmLength,
	}
	m.platformBody.SetPosition(pos)
	m.platformBody.SetAngle(m.currentAngle)
	m.platformShape.CacheBB()
	if m.pivotBody != nil {
		m.pivotBody.SetAngle(m.currentAngle)
	}
}

// placeLift writes the vertical platform pose from the normalized lift.
func (m *Mechanism) placeLift() {
	y := common.Lerp(m.baseY, m.ceilingY, m.currentLift)
	m.platformBody.SetPosition(cp.Vector{X: m.Anchor.X, Y: y})
	m.platformShape.CacheBB()
}

// placeRotator writes the auto-rotate pose. With an off-center pivot the
// platform's center shifts so the rotation visually hinges on the
// configured edge instead of the centroid.
func (m *Mechanism) placeRotator() {
	pos := m.Anchor
	if m.Config.Pivot != PivotCenter {
		off := m.Config.PivotOffset
		if m.Config.Pivot == PivotLeft {
			off = -off
		}
		pos.X += -off * (1 - math.Cos(m.currentAngle))
		pos.Y += off * math.Sin(m.currentAngle)
	}
	m.platformBody.SetPosition(pos)
	m.platformBody.SetAngle(m.currentAngle)
	m.platformShape.CacheBB()
}

func (m *Mechanism) applyBeltSurface() {
	v := cp.Vector{}
	if m.beltEnabled {
		// Chipmunk surface velocity points opposite the direction the
		// surface carries resting bodies.
		v.X = -m.Config.BeltSpeed * m.Config.BeltDirection
	}
	m.platformShape.SetSurfaceV(v)
}
