package body

import "github.com/akmonengine/rigid2d/vec2"

// Anchors is a bookkeeping table from anchor id to world position. It
// carries no physical effect in the core; it exists so callers can mark
// points on a body that must keep tracking its rigid motion (translate
// with COM, rotate with orientation).
type Anchors map[uint64]vec2.Vec2

func (a Anchors) translate(delta vec2.Vec2) {
	for id, p := range a {
		a[id] = p.Add(delta)
	}
}

func (a Anchors) rotate(angle float64, pivot vec2.Vec2) {
	for id, p := range a {
		a[id] = vec2.RotateAbout(p, angle, pivot)
	}
}

// merge copies every entry of other into a, overwriting on id collision.
func (a Anchors) merge(other Anchors) {
	for id, p := range other {
		a[id] = p
	}
}
