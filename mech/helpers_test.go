package mech

import (
	"math"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/cartcourse/physics"
)

const testDT = 1.0 / 60.0

func newTestWorld() *physics.World {
	return physics.NewWorld()
}

func newTestCart(w *physics.World, x, y float64) *physics.Cart {
	return w.NewCart(cp.Vector{X: x, Y: y}, 32, 24, 1)
}

// cartOnPlatformPos returns a cart position whose bottom edge touches the
// top edge of a platform centered at center with the given height.
func cartOnPlatformPos(center cp.Vector, platformHeight float64) cp.Vector {
	return cp.Vector{X: center.X, Y: center.Y - platformHeight/2 - 12}
}

func almostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
