package sines

import (
	"math"
	"testing"
)

func TestRectangleArea(t *testing.T) {
	tests := []struct {
		a, b float64
	}{
		{0, 0},
		{1, 1},
		{2, 3},
		{0.5, 4},
		{10, 0},
		{-2, 3},
	}

	for _, tt := range tests {
		r := NewRectangle(tt.a, tt.b)
		if r.Area() != tt.a*tt.b {
			t.Errorf("rectangle %vx%v: expected area %f, got %f", tt.a, tt.b, tt.a*tt.b, r.Area())
		}
	}
}

func TestSquare(t *testing.T) {
	for _, s := range []float64{0, 1, 2.5, 7} {
		sq := NewSquare(s)
		if sq.A != s || sq.B != s || sq.Side() != s {
			t.Errorf("square %v: expected both sides %v, got %v and %v", s, s, sq.A, sq.B)
		}
		if math.Abs(sq.Area()-s*s) > 1e-12 {
			t.Errorf("square %v: expected area %f, got %f", s, s*s, sq.Area())
		}
	}
}

func TestSquareString(t *testing.T) {
	if got := NewSquare(3).String(); got != "Square\n side 3" {
		t.Errorf("unexpected string %q", got)
	}
}

func TestTotalArea(t *testing.T) {
	got := TotalArea(NewRectangle(2, 3), NewSquare(2))
	if got != 10 {
		t.Errorf("expected total area 10, got %f", got)
	}
	if TotalArea() != 0 {
		t.Error("expected zero area for no shapes")
	}
}
