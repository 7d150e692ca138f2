// Package body implements the shape primitives (Circle, Line, Group) and
// the uniform Body contract the rest of the engine drives them through.
package body

import "github.com/akmonengine/rigid2d/vec2"

// Kind tags a Body's concrete variant, e.g. for a renderer that needs the
// variant tag. The collision matrix does not read it; it dispatches with a
// type switch on the concrete types.
type Kind int

const (
	KindCircle Kind = iota
	KindLine
	KindGroup
)

func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "Circle"
	case KindLine:
		return "Line"
	case KindGroup:
		return "Group"
	default:
		return "Unknown"
	}
}

// Body is the capability contract every shape variant implements. The
// World and the collision matrix operate exclusively through this
// interface; only the collision matrix downcasts to concrete types (via
// a type switch, see collision.go), and only to read variant-specific
// geometry.
type Body interface {
	Kind() Kind

	ID() uint64
	SetID(id uint64)

	COM() vec2.Vec2
	SetCOM(p vec2.Vec2)

	Mass() float64
	SetMass(m float64)

	Velocity() vec2.Vec2
	SetVelocity(v vec2.Vec2)

	AngularVelocity() float64
	SetAngularVelocity(w float64)

	Friction() float64
	SetFriction(k float64)

	IsStatic() bool
	SetStatic(b bool)

	Pivot() Joint
	SetPivot(j Joint)

	Anchors() Anchors
	AddAnchor(id uint64, pos vec2.Vec2)
	Anchor(id uint64) (vec2.Vec2, bool)

	// Rotate rotates all owned geometry, anchors, and (if dynamic) the
	// pivot by angle radians about pivotPoint.
	Rotate(angle float64, pivotPoint vec2.Vec2)

	// MomentOfInertiaAboutCOM is I_com, used by ApplyImpulse via the
	// Parallel-Axis Theorem.
	MomentOfInertiaAboutCOM() float64

	// ApplyImpulse updates angular velocity only: dw = (r x dp) / I_pivot,
	// r = point - pivot, I_pivot = I_com + m*|pivot-com|^2. Linear
	// velocity is never touched here.
	ApplyImpulse(dp, point, pivot vec2.Vec2)
}

// applyImpulse is the shared Parallel-Axis-Theorem impulse response used
// by every variant's ApplyImpulse method.
func applyImpulse(b Body, dp, point, pivot vec2.Vec2) {
	r := point.Sub(pivot)
	dAngularMomentum := vec2.Cross2D(r, dp)

	d := pivot.Sub(b.COM()).Len()
	iPivot := b.MomentOfInertiaAboutCOM() + b.Mass()*d*d
	if iPivot == 0 {
		return
	}

	b.SetAngularVelocity(b.AngularVelocity() + dAngularMomentum/iPivot)
}
