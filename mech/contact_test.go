package mech

import (
	"testing"

	"github.com/jakecoffman/cp"
)

func TestRestingOn(t *testing.T) {
	// Platform top edge (visual) at y=392: a 96x16 box centered at (400, 400).
	plat := cp.BB{L: 352, B: 392, R: 448, T: 408}

	cases := []struct {
		name      string
		cart      cp.BB
		threshold float64
		want      bool
	}{
		{"exact_contact", cp.BB{L: 384, B: 368, R: 416, T: 392}, 4, true},
		{"hovering_inside_threshold", cp.BB{L: 384, B: 365, R: 416, T: 389}, 4, true},
		{"hovering_beyond_threshold", cp.BB{L: 384, B: 360, R: 416, T: 384}, 4, false},
		{"sunk_inside_threshold", cp.BB{L: 384, B: 371, R: 416, T: 395}, 4, true},
		{"sunk_beyond_threshold", cp.BB{L: 384, B: 376, R: 416, T: 400}, 4, false},
		{"partial_horizontal_overlap", cp.BB{L: 440, B: 368, R: 472, T: 392}, 4, true},
		{"no_horizontal_overlap", cp.BB{L: 460, B: 368, R: 492, T: 392}, 4, false},
		{"edges_touching_sideways", cp.BB{L: 448, B: 368, R: 480, T: 392}, 4, false},
		{"zero_threshold_exact", cp.BB{L: 384, B: 368, R: 416, T: 392}, 0, true},
		{"zero_threshold_hovering", cp.BB{L: 384, B: 367, R: 416, T: 391}, 0, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := restingOn(c.cart, plat, c.threshold); got != c.want {
				t.Fatalf("restingOn(%+v, %+v, %f) = %v, want %v", c.cart, plat, c.threshold, got, c.want)
			}
		})
	}
}

func TestIsCartOnTracksPlatformMotion(t *testing.T) {
	anchor := cp.Vector{X: 400, Y: 400}
	w := newTestWorld()
	m := NewLiftPlatform(w, 1, anchor, Config{
		MoveSpeed:  100,
		LiftHeight: 150,
	})
	cart := newTestCart(w, anchor.X, cartOnPlatformPos(anchor, m.Config.PlatformHeight).Y)

	if !m.IsCartOn(cart, DefaultContactThreshold) {
		t.Fatal("expected contact at the authored pose")
	}

	// Raise the platform out from under the cart; the predicate must see the
	// fresh bounds without stepping the space.
	for i := 0; i < 30; i++ {
		m.UpdateLiftPlatform(true, testDT)
	}
	if m.IsCartOn(cart, DefaultContactThreshold) {
		t.Fatalf("expected lost contact after the platform rose %f px", m.Lift()*m.Config.LiftHeight)
	}
}

func TestIsCartOnNilCart(t *testing.T) {
	w := newTestWorld()
	m := NewConveyorBelt(w, 1, cp.Vector{X: 400, Y: 400}, Config{})
	if m.IsCartOn(nil, DefaultContactThreshold) {
		t.Fatal("nil cart cannot rest on anything")
	}
}
