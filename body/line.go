package body

import "github.com/akmonengine/rigid2d/vec2"

// Line is a straight segment shape. Its center of mass is the midpoint
// of Start and End.
type Line struct {
	id       uint64
	start    vec2.Vec2
	end      vec2.Vec2
	mass     float64
	velocity vec2.Vec2
	angVel   float64
	friction float64
	isStatic bool
	pivot    Joint
	anchors  Anchors
	Color    Color
}

// NewLine builds a Line. Mass defaults to 1.0 and is_static defaults to
// true, matching the reference constructor (a bare Line is typically
// used as static scenery, e.g. a wall or floor segment).
func NewLine(start, end vec2.Vec2) *Line {
	com := start.Add(end.Sub(start).Mul(0.5))
	return &Line{
		start:    start,
		end:      end,
		mass:     1.0,
		pivot:    NewJoint(true, com),
		anchors:  make(Anchors),
		Color:    Color{0, 0, 0, 1},
		isStatic: true,
	}
}

func (l *Line) Kind() Kind { return KindLine }

func (l *Line) ID() uint64      { return l.id }
func (l *Line) SetID(id uint64) { l.id = id }

func (l *Line) COM() vec2.Vec2 {
	return l.start.Add(l.end.Sub(l.start).Mul(0.5))
}

func (l *Line) SetCOM(p vec2.Vec2) {
	delta := p.Sub(l.COM())
	l.anchors.translate(delta)
	l.start = l.start.Add(delta)
	l.end = l.end.Add(delta)
	if l.pivot.Dynamic {
		l.pivot.Position = l.pivot.Position.Add(delta)
	}
}

func (l *Line) Mass() float64     { return l.mass }
func (l *Line) SetMass(m float64) { l.mass = m }

func (l *Line) Velocity() vec2.Vec2     { return l.velocity }
func (l *Line) SetVelocity(v vec2.Vec2) { l.velocity = v }

func (l *Line) AngularVelocity() float64     { return l.angVel }
func (l *Line) SetAngularVelocity(w float64) { l.angVel = w }

func (l *Line) Friction() float64     { return l.friction }
func (l *Line) SetFriction(k float64) { l.friction = k }

func (l *Line) IsStatic() bool   { return l.isStatic }
func (l *Line) SetStatic(b bool) { l.isStatic = b }

func (l *Line) Pivot() Joint     { return l.pivot }
func (l *Line) SetPivot(j Joint) { l.pivot = j }

func (l *Line) Anchors() Anchors                     { return l.anchors }
func (l *Line) AddAnchor(id uint64, pos vec2.Vec2)    { l.anchors[id] = pos }
func (l *Line) Anchor(id uint64) (vec2.Vec2, bool) {
	p, ok := l.anchors[id]
	return p, ok
}

func (l *Line) Rotate(angle float64, pivotPoint vec2.Vec2) {
	l.start = vec2.RotateAbout(l.start, angle, pivotPoint)
	l.end = vec2.RotateAbout(l.end, angle, pivotPoint)
	if l.pivot.Dynamic {
		l.pivot.Position = vec2.RotateAbout(l.pivot.Position, angle, pivotPoint)
	}
	l.anchors.rotate(angle, pivotPoint)
}

// MomentOfInertiaAboutCOM is (1/12) * m * L^2, the thin-rod formula.
func (l *Line) MomentOfInertiaAboutCOM() float64 {
	length := l.end.Sub(l.start).Len()
	return (1.0 / 12.0) * l.mass * length * length
}

func (l *Line) ApplyImpulse(dp, point, pivot vec2.Vec2) {
	applyImpulse(l, dp, point, pivot)
}

// Start, End are renderer-facing read accessors (spec.md §6.2).
func (l *Line) Start() vec2.Vec2 { return l.start }
func (l *Line) End() vec2.Vec2   { return l.end }
