// Package rigid2d is a 2D rigid-body simulation engine: a World holds a
// collection of Circle, Line, and Group bodies and advances them one
// fixed-size tick at a time, resolving pairwise collisions with elastic
// impulses along the contact normal and rotational response about each
// body's pivot.
package rigid2d

import (
	"sort"

	"github.com/akmonengine/rigid2d/body"
)

// World owns a registry of bodies keyed by id and advances them in
// fixed-size ticks. Scheduling is single-threaded and cooperative:
// Update runs one tick to completion with no suspension point (spec.md
// §5); callers invoke it once per frame, strictly sequentially with
// renderer reads.
type World struct {
	Gravity  float64
	Timestep float64

	bodies map[uint64]body.Body
	nextID uint64
}

// NewWorld builds an empty World. gravity is used only as a friction
// coefficient (spec.md §4.4, §9): no directional acceleration is ever
// applied during integration.
func NewWorld(gravity, timestep float64) *World {
	return &World{
		Gravity:  gravity,
		Timestep: timestep,
		bodies:   make(map[uint64]body.Body),
		nextID:   1,
	}
}

// Add registers b with the World, taking ownership of it. If b's id is
// 0, the World assigns the next free id (linear-probing past any
// occupied slot, per spec.md §9); if non-zero, the id must be unique or
// Add panics with a DuplicateIDError.
func (w *World) Add(b body.Body) {
	id := b.ID()
	if id != 0 {
		if _, taken := w.bodies[id]; taken {
			panic(DuplicateIDError{ID: id})
		}
		w.bodies[id] = b
		return
	}

	for {
		id = w.nextID
		w.nextID++
		if _, taken := w.bodies[id]; !taken {
			break
		}
	}
	b.SetID(id)
	w.bodies[id] = b
}

// Remove drops a body from the registry. An id the World assigned itself
// is never handed out again, since the id counter only moves forward; a
// removed user-assigned id that the counter has not yet reached can be
// assigned to a later body.
func (w *World) Remove(id uint64) {
	delete(w.bodies, id)
}

// Body looks up a registered body by id.
func (w *World) Body(id uint64) (body.Body, bool) {
	b, ok := w.bodies[id]
	return b, ok
}

// Bodies returns every registered body, ordered by ascending id, for a
// renderer to read between ticks (spec.md §6.2). The slice is a
// snapshot; mutating it does not affect the World.
func (w *World) Bodies() []body.Body {
	ids := w.sortedIDs()
	out := make([]body.Body, len(ids))
	for i, id := range ids {
		out[i] = w.bodies[id]
	}
	return out
}

func (w *World) sortedIDs() []uint64 {
	ids := make([]uint64, 0, len(w.bodies))
	for id := range w.bodies {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Update advances the simulation by one tick: pairwise collision
// resolution, then friction, then integration, in that order (spec.md
// §4.4, §5).
func (w *World) Update() {
	ids := w.sortedIDs()

	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			a, b := w.bodies[ids[i]], w.bodies[ids[j]]
			c, collided := Collide(a, b)
			if !collided {
				continue
			}
			resolvePair(a, b, c)
		}
	}

	for _, id := range ids {
		applyFriction(w.bodies[id], w.Gravity, w.Timestep)
	}

	for _, id := range ids {
		integrate(w.bodies[id], w.Timestep)
	}
}
