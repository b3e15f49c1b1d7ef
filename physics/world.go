package physics

import (
	"github.com/jakecoffman/cp"
)

// Gravity is the downward acceleration applied to dynamic bodies. Screen
// coordinates: +Y points down.
const Gravity = 900.0

const (
	CollisionTypeSolid cp.CollisionType = iota + 1
	CollisionTypePlatform
	CollisionTypePivot
	CollisionTypeCart
)

const (
	platformFriction = 0.8
	cartFriction     = 0.8
)

// World owns the Chipmunk space the mechanisms and the cart live in.
type World struct {
	space *cp.Space
}

// NewWorld creates an empty physics world with gravity pointing down.
func NewWorld() *World {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: Gravity})
	return &World{space: space}
}

// Space returns the underlying Chipmunk space.
func (w *World) Space() *cp.Space {
	if w == nil {
		return nil
	}
	return w.space
}

// Step advances the physics simulation.
func (w *World) Step(dt float64) {
	if w == nil || w.space == nil {
		return
	}
	w.space.Step(dt)
}

// AddPlatform inserts a kinematic box body at pos. The caller owns the
// returned handles and is the only component allowed to move them.
func (w *World) AddPlatform(pos cp.Vector, width, height float64) (*cp.Body, *cp.Shape) {
	if w == nil || w.space == nil {
		return nil, nil
	}
	body := cp.NewKinematicBody()
	body.SetPosition(pos)
	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(platformFriction)
	shape.SetCollisionType(CollisionTypePlatform)
	w.space.AddBody(body)
	w.space.AddShape(shape)
	shape.CacheBB()
	return body, shape
}

// AddPivot inserts a small kinematic sensor body at pos. Pivots rotate for
// presentation but never collide.
func (w *World) AddPivot(pos cp.Vector, radius float64) (*cp.Body, *cp.Shape) {
	if w == nil || w.space == nil {
		return nil, nil
	}
	body := cp.NewKinematicBody()
	body.SetPosition(pos)
	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetSensor(true)
	shape.SetCollisionType(CollisionTypePivot)
	w.space.AddBody(body)
	w.space.AddShape(shape)
	shape.CacheBB()
	return body, shape
}

// AddGround inserts a static segment, e.g. the course floor.
func (w *World) AddGround(a, b cp.Vector) *cp.Shape {
	if w == nil || w.space == nil {
		return nil
	}
	shape := cp.NewSegment(w.space.StaticBody, a, b, 1)
	shape.SetFriction(platformFriction)
	shape.SetCollisionType(CollisionTypeSolid)
	w.space.AddShape(shape)
	return shape
}

// Remove detaches a body and its shapes from the space.
func (w *World) Remove(body *cp.Body, shapes ...*cp.Shape) {
	if w == nil || w.space == nil {
		return
	}
	for _, s := range shapes {
		if s != nil {
			w.space.RemoveShape(s)
		}
	}
	if body != nil {
		w.space.RemoveBody(body)
	}
}
