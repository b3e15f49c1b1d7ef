package mech

import (
	"github.com/jakecoffman/cp"

	"github.com/milk9111/cartcourse/physics"
)

// IsCartOn reports whether the cart currently rests on this mechanism's
// platform: its bottom edge sits within threshold pixels of the platform's
// top edge and the two overlap horizontally. Every kind shares the same
// test because Chipmunk keeps each shape's bounds current even for rotated
// gear platforms.
func (m *Mechanism) IsCartOn(cart *physics.Cart, threshold float64) bool {
	m.ensureLive()
	if cart == nil || m.platformShape == nil {
		return false
	}
	return restingOn(cart.BB(), m.platformShape.BB(), threshold)
}

// restingOn is the shared bounds test. Screen coordinates put +Y downward,
// so a BB's numeric minimum (B) is its visual top edge and the maximum (T)
// is its visual bottom.
func restingOn(cartBB, platBB cp.BB, threshold float64) bool {
	if cartBB.R <= platBB.L || cartBB.L >= platBB.R {
		return false
	}
	gap := platBB.B - cartBB.T
	return gap >= -threshold && gap <= threshold
}
