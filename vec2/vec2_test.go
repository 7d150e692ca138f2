package vec2

import (
	"math"
	"testing"
)

const eps = 1e-9

func approxEqual(a, b Vec2) bool {
	return math.Abs(a.X()-b.X()) < eps && math.Abs(a.Y()-b.Y()) < eps
}

func TestUnitZero(t *testing.T) {
	got := Unit(Zero)
	if got != Zero {
		t.Errorf("Unit(Zero) = %v, want Zero", got)
	}
}

func TestUnitNormalizes(t *testing.T) {
	got := Unit(New(3, 4))
	want := New(0.6, 0.8)
	if !approxEqual(got, want) {
		t.Errorf("Unit(3,4) = %v, want %v", got, want)
	}
}

func TestProjRejectDecompose(t *testing.T) {
	v := New(3, 4)
	axis := New(1, 0)
	proj := ProjOn(v, axis)
	reject := RejectOn(v, axis)
	if !approxEqual(proj.Add(reject), v) {
		t.Errorf("proj+reject = %v, want %v", proj.Add(reject), v)
	}
	if !approxEqual(proj, New(3, 0)) {
		t.Errorf("proj = %v, want (3,0)", proj)
	}
}

func TestProjOnZeroOther(t *testing.T) {
	got := ProjOn(New(1, 1), Zero)
	if got != Zero {
		t.Errorf("ProjOn(v, Zero) = %v, want Zero", got)
	}
}

func TestPerpIsNinetyDegreesCCW(t *testing.T) {
	got := Perp(New(1, 0))
	want := New(0, 1)
	if !approxEqual(got, want) {
		t.Errorf("Perp(1,0) = %v, want %v", got, want)
	}
}

func TestCross2D(t *testing.T) {
	if got := Cross2D(New(1, 0), New(0, 1)); math.Abs(got-1) > eps {
		t.Errorf("Cross2D(x,y) = %v, want 1", got)
	}
}

func TestRotateAboutRoundTrip(t *testing.T) {
	p := New(5, 2)
	pivot := New(1, 1)
	rotated := RotateAbout(p, math.Pi/3, pivot)
	back := RotateAbout(rotated, -math.Pi/3, pivot)
	if !approxEqual(back, p) {
		t.Errorf("round trip rotate = %v, want %v", back, p)
	}
}

func TestRotateAboutPreservesDistance(t *testing.T) {
	p := New(5, 2)
	pivot := New(1, 1)
	before := p.Sub(pivot).Len()
	rotated := RotateAbout(p, 1.234, pivot)
	after := rotated.Sub(pivot).Len()
	if math.Abs(before-after) > eps {
		t.Errorf("distance not preserved: %v vs %v", before, after)
	}
}
