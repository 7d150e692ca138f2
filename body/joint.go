package body

import "github.com/akmonengine/rigid2d/vec2"

// Joint is a body's pivot: the point rotation is computed about. A
// dynamic joint tracks the body's center of mass between ticks and is
// temporarily relocated to the contact point during collision
// resolution; a static joint stays pinned in world coordinates.
type Joint struct {
	Dynamic  bool
	Position vec2.Vec2
}

// NewJoint builds a Joint at the given position.
func NewJoint(dynamic bool, position vec2.Vec2) Joint {
	return Joint{Dynamic: dynamic, Position: position}
}
