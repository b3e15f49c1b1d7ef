package mech

import (
	"math"
	"testing"
	"time"

	"github.com/jakecoffman/cp"
)

func autoRotateConfig() Config {
	return Config{
		FullRotationAngle: math.Pi / 2,
		RotationSpeed:     math.Pi / 2,
		ResetDelay:        time.Second,
	}
}

func TestAutoRotateTriggerOnArrival(t *testing.T) {
	w := newTestWorld()
	m := NewAutoRotate(w, 1, cp.Vector{X: 500, Y: 400}, autoRotateConfig())

	now := time.Duration(0)
	m.UpdateAutoRotate(true, testDT, now)
	if !m.Triggered() || m.State != StateActive {
		t.Fatalf("expected trigger on arrival, triggered=%v state=%s", m.Triggered(), m.State)
	}
	if m.LastTriggerAt() != now {
		t.Fatalf("expected trigger stamped at %s, got %s", now, m.LastTriggerAt())
	}

	// Constant rate pi/2 rad/s reaches the full angle in exactly 1s and
	// never overshoots.
	for i := 0; i < 120; i++ {
		now += time.Second / 60
		m.UpdateAutoRotate(true, testDT, now)
		if m.Angle() > math.Pi/2+1e-9 {
			t.Fatalf("step %d: overshot full rotation: %f", i, m.Angle())
		}
	}
	if !almostEqual(m.Angle(), math.Pi/2, 1e-9) {
		t.Fatalf("expected full rotation, got %f", m.Angle())
	}
	if !almostEqual(m.Progress, 1, 1e-9) {
		t.Fatalf("expected progress 1, got %f", m.Progress)
	}
}

func TestAutoRotateRearmAfterResetDelay(t *testing.T) {
	// The reset delay counts from the trigger timestamp, so it must outlast
	// the contact phase for the latch window to be observable.
	cfg := autoRotateConfig()
	cfg.ResetDelay = 3 * time.Second
	w := newTestWorld()
	m := NewAutoRotate(w, 1, cp.Vector{X: 500, Y: 400}, cfg)

	now := time.Duration(0)
	step := func(cartOn bool, n int) {
		for i := 0; i < n; i++ {
			now += time.Second / 60
			m.UpdateAutoRotate(cartOn, testDT, now)
		}
	}

	step(true, 120) // trigger and rotate out
	step(false, 30) // cart leaves; still inside the reset delay
	if m.State == StateReturning {
		t.Fatal("unwound before the reset delay elapsed")
	}

	step(false, 200) // delay elapses, platform unwinds
	if !almostEqual(m.Angle(), 0, 1e-9) {
		t.Fatalf("expected unwound platform, got angle %f", m.Angle())
	}
	if m.State != StateIdle || m.Triggered() {
		t.Fatalf("expected re-armed idle platform, got state=%s triggered=%v", m.State, m.Triggered())
	}

	// A fresh arrival triggers again.
	step(true, 1)
	if !m.Triggered() {
		t.Fatal("expected re-armed platform to trigger on the next arrival")
	}
}

func TestAutoRotateTriggerOnceLatches(t *testing.T) {
	cfg := autoRotateConfig()
	cfg.TriggerOnce = true
	w := newTestWorld()
	m := NewAutoRotate(w, 1, cp.Vector{X: 500, Y: 400}, cfg)

	now := time.Duration(0)
	for i := 0; i < 120; i++ {
		now += time.Second / 60
		m.UpdateAutoRotate(true, testDT, now)
	}
	// Cart gone and the reset delay long past: the latch holds.
	for i := 0; i < 600; i++ {
		now += time.Second / 60
		m.UpdateAutoRotate(false, testDT, now)
	}
	if !almostEqual(m.Angle(), math.Pi/2, 1e-9) {
		t.Fatalf("trigger-once platform unwound to %f", m.Angle())
	}
	if !m.Triggered() {
		t.Fatal("trigger-once platform lost its latch")
	}
}

func TestAutoRotateNoRetriggerWhileCartStays(t *testing.T) {
	w := newTestWorld()
	m := NewAutoRotate(w, 1, cp.Vector{X: 500, Y: 400}, autoRotateConfig())

	m.UpdateAutoRotate(true, testDT, 0)
	first := m.LastTriggerAt()
	for i := 1; i <= 300; i++ {
		m.UpdateAutoRotate(true, testDT, time.Duration(i)*time.Second/60)
	}
	if m.LastTriggerAt() != first {
		t.Fatalf("continuous contact restamped the trigger: %s -> %s", first, m.LastTriggerAt())
	}
}

func TestAutoRotateOffCenterPivotPose(t *testing.T) {
	anchor := cp.Vector{X: 500, Y: 400}
	cfg := autoRotateConfig()
	cfg.Pivot = PivotRight
	cfg.PivotOffset = 48
	w := newTestWorld()
	m := NewAutoRotate(w, 1, anchor, cfg)

	now := time.Duration(0)
	for i := 0; i < 120; i++ {
		now += time.Second / 60
		m.UpdateAutoRotate(true, testDT, now)
	}

	// At a quarter turn around the right edge the center shifts left by the
	// offset and down by the same amount.
	pos := m.PlatformBody().Position()
	if !almostEqual(pos.X, anchor.X-48, 1e-9) || !almostEqual(pos.Y, anchor.Y+48, 1e-9) {
		t.Fatalf("platform at (%f, %f), want (%f, %f)", pos.X, pos.Y, anchor.X-48, anchor.Y+48)
	}
	if !almostEqual(m.PlatformBody().Angle(), math.Pi/2, 1e-9) {
		t.Fatalf("platform angle %f, want %f", m.PlatformBody().Angle(), math.Pi/2)
	}
}
