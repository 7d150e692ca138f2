package body

import (
	"math"
	"testing"

	"github.com/akmonengine/rigid2d/vec2"
)

func TestNewLineDefaults(t *testing.T) {
	l := NewLine(vec2.New(0, 0), vec2.New(4, 0))

	if l.Mass() != 1.0 {
		t.Errorf("Mass() = %v, want 1.0", l.Mass())
	}
	if !l.IsStatic() {
		t.Error("new Line should default to static")
	}
	if got := l.COM(); !approxEqualVec(got, vec2.New(2, 0)) {
		t.Errorf("COM() = %v, want (2,0)", got)
	}
}

func TestLineMomentOfInertia(t *testing.T) {
	l := NewLine(vec2.New(0, 0), vec2.New(3, 0))
	l.SetMass(6)
	want := (1.0 / 12.0) * 6 * 3 * 3
	if got := l.MomentOfInertiaAboutCOM(); math.Abs(got-want) > eps {
		t.Errorf("I_com = %v, want %v", got, want)
	}
}

func TestLineSetCOMTranslatesEndpoints(t *testing.T) {
	l := NewLine(vec2.New(0, 0), vec2.New(2, 0))
	l.SetCOM(vec2.New(10, 10))

	if got := l.Start(); !approxEqualVec(got, vec2.New(9, 10)) {
		t.Errorf("Start() = %v, want (9,10)", got)
	}
	if got := l.End(); !approxEqualVec(got, vec2.New(11, 10)) {
		t.Errorf("End() = %v, want (11,10)", got)
	}
}

func TestLineRotateRoundTripPreservesLength(t *testing.T) {
	l := NewLine(vec2.New(0, 0), vec2.New(4, 0))
	lengthBefore := l.End().Sub(l.Start()).Len()

	l.Rotate(1.1, vec2.New(1, 1))
	l.Rotate(-1.1, vec2.New(1, 1))

	if got := l.Start(); !approxEqualVec(got, vec2.New(0, 0)) {
		t.Errorf("Start() after round trip = %v, want (0,0)", got)
	}
	if got := l.End(); !approxEqualVec(got, vec2.New(4, 0)) {
		t.Errorf("End() after round trip = %v, want (4,0)", got)
	}
	lengthAfter := l.End().Sub(l.Start()).Len()
	if math.Abs(lengthBefore-lengthAfter) > eps {
		t.Errorf("length changed: %v vs %v", lengthBefore, lengthAfter)
	}
}
