package body

import "github.com/akmonengine/rigid2d/vec2"

// Group is a composite body: an ordered sequence of owned children whose
// mass and center of mass are kept as a running aggregate. Mass is
// read-only after construction (SetMass is a no-op, matching the
// reference implementation: mass only changes by adding children).
type Group struct {
	id      uint64
	objects []Body
	com     vec2.Vec2
	// weightedSum is the running sum(mass_i * com_i) over children, kept
	// so AddChild can update com incrementally instead of re-summing
	// every prior child on each call.
	weightedSum vec2.Vec2
	mass        float64
	velocity    vec2.Vec2
	angVel      float64
	friction    float64
	isStatic    bool
	pivot       Joint
	anchors     Anchors
}

// NewGroup builds an empty Group with a dynamic pivot at the origin.
func NewGroup() *Group {
	return &Group{
		pivot:   NewJoint(true, vec2.Zero),
		anchors: make(Anchors),
	}
}

// AddChild extends the child sequence, sums mass, updates COM as the
// mass-weighted mean of children, and merges the child's anchor table
// into the group's. If the pivot is dynamic, it is re-anchored to the
// new COM. Cost is O(1) amortized: only the new child's mass, COM, and
// anchors are folded into the running aggregate, not every prior child.
func (g *Group) AddChild(child Body) {
	g.mass += child.Mass()
	g.objects = append(g.objects, child)
	g.weightedSum = g.weightedSum.Add(child.COM().Mul(child.Mass()))
	g.anchors.merge(child.Anchors())

	if g.mass != 0 {
		g.com = g.weightedSum.Mul(1 / g.mass)
	} else {
		g.com = vec2.Zero
	}

	if g.pivot.Dynamic {
		g.pivot.Position = g.com
	}
}

// Children returns the owned child sequence in insertion order, for
// renderer recursion (spec.md §6.2) and the collision matrix.
func (g *Group) Children() []Body { return g.objects }

func (g *Group) Kind() Kind { return KindGroup }

func (g *Group) ID() uint64      { return g.id }
func (g *Group) SetID(id uint64) { g.id = id }

func (g *Group) COM() vec2.Vec2 { return g.com }

// SetCOM translates the group and, recursively, every child by the
// displacement. On an empty group (no children, mass 0) this is a no-op:
// there is nothing to translate, and COM is reported as zero per
// spec.md §7.
func (g *Group) SetCOM(p vec2.Vec2) {
	if len(g.objects) == 0 {
		return
	}
	delta := p.Sub(g.com)
	g.anchors.translate(delta)
	for _, obj := range g.objects {
		obj.SetCOM(obj.COM().Add(delta))
	}
	g.com = p
	g.weightedSum = p.Mul(g.mass)
	if g.pivot.Dynamic {
		g.pivot.Position = g.pivot.Position.Add(delta)
	}
}

func (g *Group) Mass() float64 { return g.mass }

// SetMass is a no-op: a Group's mass only changes via AddChild.
func (g *Group) SetMass(float64) {}

func (g *Group) Velocity() vec2.Vec2     { return g.velocity }
func (g *Group) SetVelocity(v vec2.Vec2) { g.velocity = v }

func (g *Group) AngularVelocity() float64     { return g.angVel }
func (g *Group) SetAngularVelocity(w float64) { g.angVel = w }

func (g *Group) Friction() float64     { return g.friction }
func (g *Group) SetFriction(k float64) { g.friction = k }

func (g *Group) IsStatic() bool   { return g.isStatic }
func (g *Group) SetStatic(b bool) { g.isStatic = b }

func (g *Group) Pivot() Joint     { return g.pivot }
func (g *Group) SetPivot(j Joint) { g.pivot = j }

func (g *Group) Anchors() Anchors                  { return g.anchors }
func (g *Group) AddAnchor(id uint64, pos vec2.Vec2) { g.anchors[id] = pos }
func (g *Group) Anchor(id uint64) (vec2.Vec2, bool) {
	p, ok := g.anchors[id]
	return p, ok
}

// Rotate rotates every child about pivotPoint (not about the group's own
// COM), then rotates the cached COM, dynamic pivot, and anchors about the
// same point. Rotating children about pivotPoint rather than g.com
// preserves invariant 3 (spec.md §3) for nested groups.
func (g *Group) Rotate(angle float64, pivotPoint vec2.Vec2) {
	for _, obj := range g.objects {
		obj.Rotate(angle, pivotPoint)
	}
	g.com = vec2.RotateAbout(g.com, angle, pivotPoint)
	g.weightedSum = g.com.Mul(g.mass)
	if g.pivot.Dynamic {
		g.pivot.Position = vec2.RotateAbout(g.pivot.Position, angle, pivotPoint)
	}
	g.anchors.rotate(angle, pivotPoint)
}

// MomentOfInertiaAboutCOM composes children's moments about the group's
// COM via the Parallel-Axis Theorem: sum(I_child + m_child*d^2).
func (g *Group) MomentOfInertiaAboutCOM() float64 {
	var total float64
	for _, obj := range g.objects {
		d := obj.COM().Sub(g.com).Len()
		total += obj.MomentOfInertiaAboutCOM() + obj.Mass()*d*d
	}
	return total
}

func (g *Group) ApplyImpulse(dp, point, pivot vec2.Vec2) {
	applyImpulse(g, dp, point, pivot)
}

// CreatePolygon builds a Group of Line segments joining consecutive
// points, each with mass totalMass/n and is_static=false. The caller
// decides whether the point list is closed (repeats points[0] at the
// end) or an open polyline; CreatePolygon only connects consecutive
// pairs.
func CreatePolygon(points []vec2.Vec2, totalMass float64) *Group {
	g := NewGroup()
	n := len(points) - 1
	if n <= 0 {
		return g
	}
	perSegment := totalMass / float64(n)
	for i := 0; i < n; i++ {
		line := NewLine(points[i], points[i+1])
		line.SetStatic(false)
		line.SetMass(perSegment)
		g.AddChild(line)
	}
	return g
}
