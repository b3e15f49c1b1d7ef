package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Cart is the player-controlled actor body. Mechanisms treat it as
// read-only; ApplyImpulse is the single sanctioned mutation and belongs to
// the launcher's release step.
type Cart struct {
	body  *cp.Body
	shape *cp.Shape
}

// NewCart inserts a dynamic box body for the cart. Rotation is fixed so the
// cart never tips over.
func (w *World) NewCart(pos cp.Vector, width, height, mass float64) *Cart {
	if w == nil || w.space == nil {
		return nil
	}
	body := cp.NewBody(mass, math.Inf(1))
	body.SetPosition(pos)
	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(cartFriction)
	shape.SetCollisionType(CollisionTypeCart)
	w.space.AddBody(body)
	w.space.AddShape(shape)
	shape.CacheBB()
	return &Cart{body: body, shape: shape}
}

// Body returns the underlying Chipmunk body.
func (c *Cart) Body() *cp.Body {
	if c == nil {
		return nil
	}
	return c.body
}

// Position returns the cart's center of mass.
func (c *Cart) Position() cp.Vector {
	if c == nil || c.body == nil {
		return cp.Vector{}
	}
	return c.body.Position()
}

// Velocity returns the cart's current velocity.
func (c *Cart) Velocity() cp.Vector {
	if c == nil || c.body == nil {
		return cp.Vector{}
	}
	return c.body.Velocity()
}

// BB returns the cart's axis-aligned bounds.
func (c *Cart) BB() cp.BB {
	if c == nil || c.shape == nil {
		return cp.BB{}
	}
	return c.shape.BB()
}

// SetPosition teleports the cart, e.g. on respawn. Host-side only.
func (c *Cart) SetPosition(pos cp.Vector) {
	if c == nil || c.body == nil {
		return
	}
	c.body.SetPosition(pos)
	c.shape.CacheBB()
}

// ApplyImpulse applies a world-space impulse at the cart's center of mass.
func (c *Cart) ApplyImpulse(impulse cp.Vector) {
	if c == nil || c.body == nil {
		return
	}
	c.body.ApplyImpulseAtWorldPoint(impulse, c.body.Position())
}
