package rectclip

import (
	"errors"
	"math"
	"testing"
)

func TestRectContainsBoundary(t *testing.T) {
	r := Rect{0, 0, 10, 10}
	tests := []struct {
		pt   Point
		want bool
	}{
		{Pt(5, 5), true},
		{Pt(0, 0), true},   // corner
		{Pt(10, 10), true}, // opposite corner
		{Pt(10, 5), true},  // right edge
		{Pt(5, 0), true},   // bottom edge
		{Pt(-1e-9, 5), false},
		{Pt(5, 10.000001), false},
	}
	for _, tt := range tests {
		if got := r.Contains(tt.pt); got != tt.want {
			t.Errorf("Contains(%s) = %t, want %t", tt.pt, got, tt.want)
		}
	}
}

func TestRectDisjoint(t *testing.T) {
	r := Rect{0, 0, 10, 10}
	if r.Disjoint(Rect{10, 0, 20, 10}) {
		t.Error("rectangles sharing an edge aren't disjoint")
	}
	if r.Disjoint(Rect{10, 10, 20, 20}) {
		t.Error("rectangles sharing a corner aren't disjoint")
	}
	if !r.Disjoint(Rect{10.5, 0, 20, 10}) {
		t.Error("expected disjoint rectangles")
	}
	if !r.ContainsRect(Rect{0, 0, 10, 5}) {
		t.Error("expected contained rectangle")
	}
	if r.ContainsRect(Rect{-1, 0, 10, 5}) {
		t.Error("rectangle isn't contained")
	}
}

func TestRectValidate(t *testing.T) {
	valid := []Rect{
		{0, 0, 10, 10},
		{5, 0, 5, 10}, // zero width
		{0, 0, 0, 0},  // single point
	}
	for _, r := range valid {
		if err := r.Validate(); err != nil {
			t.Errorf("Validate(%v) = %v, want nil", r, err)
		}
	}

	invalid := []Rect{
		{10, 0, 0, 10},
		{0, 10, 10, 0},
		{math.NaN(), 0, 10, 10},
	}
	for _, r := range invalid {
		err := r.Validate()
		if !errors.Is(err, ErrInvalidRectangle) {
			t.Errorf("Validate(%v) = %v, want ErrInvalidRectangle", r, err)
		}
		var ierr *InvalidRectangleError
		if !errors.As(err, &ierr) {
			t.Fatalf("got error of type %T, want *InvalidRectangleError", err)
		}
		diff(t, r, ierr.Rect, approxNaN)
	}
}

func TestNewRectFromPoints(t *testing.T) {
	diff(t, Rect{0, 0, 10, 20}, NewRectFromPoints(Pt(10, 0), Pt(0, 20)))
}

func TestRectRing(t *testing.T) {
	r := Rect{0, 0, 10, 20}
	ring := r.Ring()
	if a := ring.SignedArea(); a != r.Area() {
		t.Errorf("got area %v, want %v", a, r.Area())
	}
	if w := ring.Winding(r.Center()); w != 1 {
		t.Errorf("got winding %d, want 1", w)
	}
}
