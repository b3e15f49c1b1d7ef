package mech

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func TestConveyorBeltStateTracksEnabled(t *testing.T) {
	w := newTestWorld()
	m := NewConveyorBelt(w, 1, cp.Vector{X: 400, Y: 400}, Config{Enabled: true})

	m.UpdateConveyorBelt(testDT)
	if m.State != StateActive || m.Progress != 1 {
		t.Fatalf("expected active belt, got state=%s progress=%f", m.State, m.Progress)
	}

	m.SetBeltEnabled(false)
	m.UpdateConveyorBelt(testDT)
	if m.State != StateIdle || m.Progress != 0 {
		t.Fatalf("expected idle belt, got state=%s progress=%f", m.State, m.Progress)
	}
}

func TestConveyorBeltDragsCart(t *testing.T) {
	cases := []struct {
		name      string
		direction float64
	}{
		{"rightward", 1},
		{"leftward", -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			anchor := cp.Vector{X: 400, Y: 400}
			w := newTestWorld()
			m := NewConveyorBelt(w, 1, anchor, Config{
				Enabled:       true,
				BeltSpeed:     120,
				BeltDirection: c.direction,
			})
			cart := newTestCart(w, anchor.X, cartOnPlatformPos(anchor, m.Config.PlatformHeight).Y)

			for i := 0; i < 90; i++ {
				m.UpdateConveyorBelt(testDT)
				w.Step(testDT)
			}

			drift := cart.Position().X - anchor.X
			if drift*c.direction <= 0 {
				t.Fatalf("expected drift in belt direction %v, cart moved %f", c.direction, drift)
			}
			if v := cart.Velocity().X; v*c.direction <= 0 {
				t.Fatalf("expected velocity in belt direction %v, got %f", c.direction, v)
			}
		})
	}
}

func TestConveyorBeltDisabledDoesNotDrag(t *testing.T) {
	anchor := cp.Vector{X: 400, Y: 400}
	w := newTestWorld()
	m := NewConveyorBelt(w, 1, anchor, Config{Enabled: false})
	cart := newTestCart(w, anchor.X, cartOnPlatformPos(anchor, m.Config.PlatformHeight).Y)

	for i := 0; i < 90; i++ {
		m.UpdateConveyorBelt(testDT)
		w.Step(testDT)
	}

	if drift := cart.Position().X - anchor.X; !almostEqual(drift, 0, 0.5) {
		t.Fatalf("disabled belt moved the cart by %f", drift)
	}
}
