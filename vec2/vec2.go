// Package vec2 provides the 2D vector algebra the physics core is built
// on. It is a thin layer over github.com/go-gl/mathgl/mgl64: Vec2 is an
// alias of mgl64.Vec2, so callers already using mathgl elsewhere (a
// renderer, say) can pass values through without conversion.
package vec2

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec2 is a pair of 64-bit floats. It is an alias, not a new type, so
// every method mgl64.Vec2 defines (Add, Sub, Mul, Dot, Len, ApproxEqual,
// ...) is usable directly.
type Vec2 = mgl64.Vec2

// New builds a Vec2 from its components.
func New(x, y float64) Vec2 {
	return Vec2{x, y}
}

// Zero is the additive identity.
var Zero = Vec2{0, 0}

// Unit returns v scaled to length 1. A zero vector maps to itself rather
// than dividing by zero; callers (friction, degenerate contact math) rely
// on this to absorb the zero-length case instead of propagating NaN.
func Unit(v Vec2) Vec2 {
	l := v.Len()
	if l == 0 {
		return Zero
	}
	return v.Mul(1 / l)
}

// ProjOn returns the component of v along other, as a vector.
func ProjOn(v, other Vec2) Vec2 {
	ol := other.Len()
	if ol == 0 {
		return Zero
	}
	return Unit(other).Mul(v.Dot(other) / ol)
}

// RejectOn returns the component of v orthogonal to other.
func RejectOn(v, other Vec2) Vec2 {
	return v.Sub(ProjOn(v, other))
}

// Perp rotates v by 90 degrees counter-clockwise: (x, y) -> (-y, x).
func Perp(v Vec2) Vec2 {
	return Vec2{-v.Y(), v.X()}
}

// Cross2D is the scalar (z-component) of the 3D cross product of two
// planar vectors: a.x*b.y - a.y*b.x.
func Cross2D(a, b Vec2) float64 {
	return a.X()*b.Y() - a.Y()*b.X()
}

// RotateAbout rotates v by angle radians (counter-clockwise) about pivot.
func RotateAbout(v Vec2, angle float64, pivot Vec2) Vec2 {
	shifted := v.Sub(pivot)
	cos, sin := math.Cos(angle), math.Sin(angle)
	rotated := Vec2{
		shifted.Dot(Vec2{cos, -sin}),
		shifted.Dot(Vec2{sin, cos}),
	}
	return pivot.Add(rotated)
}
