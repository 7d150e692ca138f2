package rigid2d

import (
	"github.com/akmonengine/rigid2d/body"
	"github.com/akmonengine/rigid2d/vec2"
)

// rotationalDamping is the fixed empirical factor applied when turning a
// linear velocity change into the impulse fed to ApplyImpulse. It scales
// only the rotational response, never the linear velocity update itself
// (spec.md §4.4, §9 design note a).
const rotationalDamping = 0.05

// resolvePair applies one tick's collision response for a single
// colliding pair, following spec.md §4.4. Both sides' pre-collision
// state is read before either side is mutated, since a and b may be
// re-used across other pairs in the same Update.
func resolvePair(a, b body.Body, c Contact) {
	if !a.IsStatic() && !b.IsStatic() {
		resolveDynamicPair(a, b, c)
		return
	}
	resolveStaticPair(a, b, c)
}

// resolveDynamicPair is the "both non-static" branch: elastic exchange
// of the velocity component along the contact normal, tangential
// component preserved, rotational impulse applied to both sides.
func resolveDynamicPair(a, b body.Body, c Contact) {
	aPivot := a.Pivot().Position
	bPivot := b.Pivot().Position

	aVelAtContact := velocityAtContact(a, aPivot, c.Point)
	bVelAtContact := velocityAtContact(b, bPivot, c.Point)

	aParallel := vec2.ProjOn(aVelAtContact, c.Normal)
	aTangent := vec2.RejectOn(aVelAtContact, c.Normal)
	bParallel := vec2.ProjOn(bVelAtContact, c.Normal)
	bTangent := vec2.RejectOn(bVelAtContact, c.Normal)

	aParallelNew, bParallelNew := elastic1D(aParallel, bParallel, a.Mass(), b.Mass())

	aNewVelAtContact := aParallelNew.Add(aTangent)
	bNewVelAtContact := bParallelNew.Add(bTangent)

	applyResolvedVelocity(a, aPivot, c.Point, aVelAtContact, aNewVelAtContact)
	applyResolvedVelocity(b, bPivot, c.Point, bVelAtContact, bNewVelAtContact)
}

// resolveStaticPair is the "at least one static" branch: each side is
// resolved independently. A static side is simply pinned to zero linear
// velocity; a non-static side reflects its linear velocity about the
// contact normal. The rotational impulse fed to each side scales by the
// *other* side's mass (original_source/src/physics/mod.rs:289-292,
// :314-317), not its own.
func resolveStaticPair(a, b body.Body, c Contact) {
	resolveAgainstStatic(a, b.Mass(), c)
	resolveAgainstStatic(b, a.Mass(), c)
}

// resolveAgainstStatic resolves one side of a pair where at least one
// body is static. A static side is simply zeroed. A non-static side
// unconditionally reflects its linear velocity about the contact normal
// — regardless of whether its pivot is dynamic, spec.md §4.4 and
// original_source/src/physics/mod.rs:283-301 give it no such gate; only
// the pivot relocation itself is gated on Dynamic.
func resolveAgainstStatic(side body.Body, partnerMass float64, c Contact) {
	if side.IsStatic() {
		side.SetVelocity(vec2.Zero)
		return
	}

	pivot := side.Pivot().Position
	v := side.Velocity()
	reflected := vec2.ProjOn(v, c.Normal).Mul(-1).Add(vec2.RejectOn(v, c.Normal))

	deltaV := reflected.Sub(v)
	impulse := deltaV.Mul(partnerMass * rotationalDamping)
	side.ApplyImpulse(impulse, c.Point, pivot)

	side.SetVelocity(reflected)

	if side.Pivot().Dynamic {
		j := side.Pivot()
		j.Position = c.Point
		side.SetPivot(j)
	}
}

// velocityAtContact is the pre-collision velocity of body at point:
// v_linear + perp(r)*w, r = point - pivot.
func velocityAtContact(b body.Body, pivot, point vec2.Vec2) vec2.Vec2 {
	r := point.Sub(pivot)
	return b.Velocity().Add(vec2.Perp(r).Mul(b.AngularVelocity()))
}

// applyResolvedVelocity is used by the both-non-static branch
// (resolveDynamicPair). It converts the linear velocity change at the
// contact point into a damped rotational impulse, and — only if the
// body's pivot is dynamic — writes the new linear velocity and
// relocates the pivot to the contact point for the remainder of the
// tick (spec.md §4.4). If the pivot is static, linear velocity is left
// untouched: the body spins in place about its fixed joint. The
// at-least-one-static branch has its own unconditional-velocity variant,
// see resolveAgainstStatic.
func applyResolvedVelocity(b body.Body, pivot, point, oldVelAtContact, newVelAtContact vec2.Vec2) {
	deltaV := newVelAtContact.Sub(oldVelAtContact)
	impulse := deltaV.Mul(b.Mass() * rotationalDamping)
	b.ApplyImpulse(impulse, point, pivot)

	if b.Pivot().Dynamic {
		j := b.Pivot()
		j.Position = point
		b.SetPivot(j)
		b.SetVelocity(newVelAtContact)
	}
}

// elastic1D is the canonical 1D elastic collision formula along the
// contact normal (spec.md §4.4, §9 design note b — implemented directly
// rather than via the original's algebraically-equivalent intermediate
// expression).
func elastic1D(vA, vB vec2.Vec2, mA, mB float64) (vec2.Vec2, vec2.Vec2) {
	total := mA + mB
	vANew := vA.Mul(mA - mB).Add(vB.Mul(2 * mB)).Mul(1 / total)
	vBNew := vA.Sub(vB).Add(vANew)
	return vANew, vBNew
}

// applyFriction applies spec.md §4.4 step 2 to a single body: a
// friction force of magnitude m*|gravity|*k*timestep, directed opposite
// the body's current linear velocity, never reversing its direction.
func applyFriction(b body.Body, gravity, timestep float64) {
	v := b.Velocity()
	mag := b.Mass() * absFloat(gravity) * b.Friction() * timestep
	frictionForce := vec2.Unit(v).Mul(mag)

	if frictionForce.Len() >= v.Len() {
		b.SetVelocity(vec2.Zero)
		return
	}
	b.SetVelocity(v.Sub(frictionForce))
}

func absFloat(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

// integrate applies spec.md §4.4 step 3: advance COM by v*dt, rotate by
// w*dt about the pivot, and — if the pivot is dynamic — retire the
// transient contact-point relocation by resetting it to the new COM.
//
// SetCOM already carries a dynamic pivot along with the translation (see
// Circle/Group.SetCOM), so the pivot to rotate about must be re-read
// after SetCOM, not the pre-translation value: rotating about the stale
// pivot would spuriously mix the tick's rotation into the translation.
func integrate(b body.Body, timestep float64) {
	com := b.COM()
	v := b.Velocity()
	w := b.AngularVelocity()
	pivot := b.Pivot()

	b.SetCOM(com.Add(v.Mul(timestep)))

	rotateAbout := pivot.Position
	if pivot.Dynamic {
		rotateAbout = b.Pivot().Position
	}
	b.Rotate(w*timestep, rotateAbout)

	if pivot.Dynamic {
		j := b.Pivot()
		j.Position = b.COM()
		b.SetPivot(j)
	}
}
