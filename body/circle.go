package body

import "github.com/akmonengine/rigid2d/vec2"

// Color is an RGBA color in [0,1], carried for the renderer's benefit
// only; the core never reads it.
type Color [4]float32

// Circle is a disc shape: center, radius, mass, and the common Body
// state (velocity, pivot, anchors, ...).
type Circle struct {
	id       uint64
	center   vec2.Vec2
	radius   float64
	mass     float64
	velocity vec2.Vec2
	angVel   float64
	friction float64
	isStatic bool
	pivot    Joint
	anchors  Anchors
	Color    Color
}

// NewCircle builds a Circle with a dynamic pivot anchored at its center,
// matching the reference implementation's constructor default.
func NewCircle(mass float64, center vec2.Vec2, radius float64) *Circle {
	return &Circle{
		center:   center,
		radius:   radius,
		mass:     mass,
		pivot:    NewJoint(true, center),
		anchors:  make(Anchors),
		Color:    Color{0, 0, 0, 1},
		isStatic: false,
	}
}

func (c *Circle) Kind() Kind { return KindCircle }

func (c *Circle) ID() uint64     { return c.id }
func (c *Circle) SetID(id uint64) { c.id = id }

func (c *Circle) COM() vec2.Vec2 { return c.center }

func (c *Circle) SetCOM(p vec2.Vec2) {
	delta := p.Sub(c.center)
	c.anchors.translate(delta)
	c.center = p
	if c.pivot.Dynamic {
		c.pivot.Position = c.pivot.Position.Add(delta)
	}
}

func (c *Circle) Mass() float64      { return c.mass }
func (c *Circle) SetMass(m float64)  { c.mass = m }

func (c *Circle) Velocity() vec2.Vec2     { return c.velocity }
func (c *Circle) SetVelocity(v vec2.Vec2) { c.velocity = v }

func (c *Circle) AngularVelocity() float64    { return c.angVel }
func (c *Circle) SetAngularVelocity(w float64) { c.angVel = w }

func (c *Circle) Friction() float64     { return c.friction }
func (c *Circle) SetFriction(k float64) { c.friction = k }

func (c *Circle) IsStatic() bool     { return c.isStatic }
func (c *Circle) SetStatic(b bool)   { c.isStatic = b }

func (c *Circle) Pivot() Joint      { return c.pivot }
func (c *Circle) SetPivot(j Joint)  { c.pivot = j }

func (c *Circle) Anchors() Anchors { return c.anchors }
func (c *Circle) AddAnchor(id uint64, pos vec2.Vec2) { c.anchors[id] = pos }
func (c *Circle) Anchor(id uint64) (vec2.Vec2, bool) {
	p, ok := c.anchors[id]
	return p, ok
}

func (c *Circle) Rotate(angle float64, pivotPoint vec2.Vec2) {
	c.center = vec2.RotateAbout(c.center, angle, pivotPoint)
	if c.pivot.Dynamic {
		c.pivot.Position = vec2.RotateAbout(c.pivot.Position, angle, pivotPoint)
	}
	c.anchors.rotate(angle, pivotPoint)
}

// MomentOfInertiaAboutCOM is 1/2 * m * r^2, the disc formula.
func (c *Circle) MomentOfInertiaAboutCOM() float64 {
	return 0.5 * c.mass * c.radius * c.radius
}

func (c *Circle) ApplyImpulse(dp, point, pivot vec2.Vec2) {
	applyImpulse(c, dp, point, pivot)
}

// Center, Radius are renderer-facing read accessors (spec.md §6.2).
func (c *Circle) Center() vec2.Vec2 { return c.center }
func (c *Circle) Radius() float64   { return c.radius }
