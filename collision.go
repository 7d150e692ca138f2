package rigid2d

import (
	"github.com/akmonengine/rigid2d/body"
	"github.com/akmonengine/rigid2d/vec2"
)

// Contact is the result of a successful Collide test: the direction
// along which restitution is applied and the world-space point the
// impulse is applied at. The normal's sign is not guaranteed to point
// outward from either body; only its direction matters downstream.
type Contact struct {
	Normal vec2.Vec2
	Point  vec2.Vec2
}

// Collide reports whether a and b overlap and, if so, their contact
// geometry. It implements the full 3x3 collision matrix (Circle, Line,
// Group) via a type switch on the concrete body types, with Group handled by
// recursing into children on either or both sides (spec.md §4.3).
func Collide(a, b body.Body) (Contact, bool) {
	switch av := a.(type) {
	case *body.Circle:
		switch bv := b.(type) {
		case *body.Circle:
			return circleCircle(av, bv)
		case *body.Line:
			return circleLine(av, bv)
		case *body.Group:
			return groupAny(bv, a)
		}
	case *body.Line:
		switch bv := b.(type) {
		case *body.Circle:
			c, ok := circleLine(bv, av)
			return c, ok
		case *body.Line:
			return lineLine(av, bv)
		case *body.Group:
			return groupAny(bv, a)
		}
	case *body.Group:
		if bg, ok := b.(*body.Group); ok {
			return groupGroup(av, bg)
		}
		return groupAny(av, b)
	}
	return Contact{}, false
}

// circleCircle: collide iff |c1-c2| < r1+r2 (strict).
func circleCircle(a, b *body.Circle) (Contact, bool) {
	delta := b.Center().Sub(a.Center())
	if delta.Len() >= a.Radius()+b.Radius() {
		return Contact{}, false
	}
	point := a.Center().Add(delta.Mul(a.Radius() / (a.Radius() + b.Radius())))
	return Contact{Normal: delta, Point: point}, true
}

// circleLine: collide if either endpoint is within radius, or the foot
// of the perpendicular from the center lies within the segment and
// within radius.
func circleLine(c *body.Circle, l *body.Line) (Contact, bool) {
	start, end := l.Start(), l.End()
	seg := end.Sub(start)
	segLen := seg.Len()

	distToEnd := end.Sub(c.Center()).Len()
	distToStart := start.Sub(c.Center()).Len()

	toCenter := c.Center().Sub(start)
	foot := start.Add(vec2.ProjOn(toCenter, seg))
	perpDist := vec2.RejectOn(toCenter, seg).Len()

	footWithinSegment := foot.Sub(end).Len() < segLen && foot.Sub(start).Len() < segLen

	collides := distToStart < c.Radius() || distToEnd < c.Radius() ||
		(perpDist < c.Radius() && footWithinSegment)
	if !collides {
		return Contact{}, false
	}

	return Contact{Normal: vec2.Perp(seg), Point: foot}, true
}

// lineLine: parametrize both segments as P + t*d and solve for (t1,t2).
// Collide iff both lie strictly in (0,1); parallel segments never
// collide. The contact normal comes from whichever segment's parameter
// is closer to 0.5.
func lineLine(a, b *body.Line) (Contact, bool) {
	d1 := a.End().Sub(a.Start())
	d2 := b.End().Sub(b.Start())

	// Parallel slope test. A vertical segment's slope is +Inf or -Inf, so
	// two vertical segments pointing the same way match here as parallel,
	// while a vertical segment against a non-vertical one falls through
	// to the general solve below. A zero-length segment's slope is NaN,
	// which compares false against everything; the solve below then
	// yields NaN parameters, which fail the range check.
	if d1.Y()/d1.X() == d2.Y()/d2.X() {
		return Contact{}, false
	}

	denom := d2.X()*d1.Y() - d1.X()*d2.Y()
	t1 := (d2.X()*(b.Start().Y()-a.Start().Y()) - d2.Y()*(b.Start().X()-a.Start().X())) / denom
	t2 := (d1.X()*(b.Start().Y()-a.Start().Y()) - d1.Y()*(b.Start().X()-a.Start().X())) / denom

	if !(t1 > 0 && t1 < 1 && t2 > 0 && t2 < 1) {
		return Contact{}, false
	}

	if absDist(t1, 0.5) < absDist(t2, 0.5) {
		return Contact{Normal: vec2.Perp(d1), Point: a.Start().Add(d1.Mul(t1))}, true
	}
	return Contact{Normal: vec2.Perp(d2), Point: b.Start().Add(d2.Mul(t2))}, true
}

func absDist(t, center float64) float64 {
	d := t - center
	if d < 0 {
		return -d
	}
	return d
}

// groupAny: iterate a Group's children against a single other body; the
// first child that reports a contact short-circuits (spec.md §4.3: "no
// aggregation"). The normal's orientation is not canonical (spec.md
// §4.3), so child-vs-other is tested in a fixed order regardless of
// which side of the original Collide call the group was on.
func groupAny(g *body.Group, other body.Body) (Contact, bool) {
	for _, child := range g.Children() {
		if c, ok := Collide(child, other); ok {
			return c, true
		}
	}
	return Contact{}, false
}

// groupGroup iterates the Cartesian product of both groups' children,
// reporting the first contact found.
func groupGroup(a, b *body.Group) (Contact, bool) {
	for _, ca := range a.Children() {
		for _, cb := range b.Children() {
			if c, ok := Collide(ca, cb); ok {
				return c, true
			}
		}
	}
	return Contact{}, false
}
