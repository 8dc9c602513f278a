package rectclip

import (
	"errors"
	"testing"
)

func TestCountReference(t *testing.T) {
	p, err := ClipPolygon(referencePolygon(), referenceRect)
	if err != nil {
		t.Fatal(err)
	}
	// 15 exterior points and 12 hole points, each ring closed by a LineTo and
	// a ClosePath.
	if n := Count(NewCursor(p)); n != 31 {
		t.Errorf("got %d commands, want 31", n)
	}

	c, err := NewLazyCursor(referencePolygon(), referenceRect, ClipRingOrb)
	if err != nil {
		t.Fatal(err)
	}
	if n := Count(c); n != 31 {
		t.Errorf("orb: got %d commands, want 31", n)
	}
}

func TestCollectRoundTrip(t *testing.T) {
	p, err := ClipPolygon(referencePolygon(), referenceRect)
	if err != nil {
		t.Fatal(err)
	}
	got, err := Collect(NewCursor(p))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, p, got)
}

func TestCollectNesting(t *testing.T) {
	outer := Ring{Pt(0, 0), Pt(10, 0), Pt(10, 10), Pt(0, 10)}
	hole := Ring{Pt(2, 2), Pt(2, 8), Pt(8, 8), Pt(8, 2)}
	island := Ring{Pt(4, 4), Pt(6, 4), Pt(6, 6), Pt(4, 6)}
	other := Ring{Pt(20, 0), Pt(30, 0), Pt(30, 10)}
	src := NewCursor(Polygon{Exteriors: []Ring{outer, hole, island, other}})
	got, err := Collect(src)
	if err != nil {
		t.Fatal(err)
	}
	want := Polygon{
		Exteriors: []Ring{outer, island, other},
		Holes:     []Ring{hole},
	}
	diff(t, want, got)
}

func TestCollectMalformed(t *testing.T) {
	pt := Pt(1, 1)
	tests := []struct {
		name string
		cmds []Command
	}{
		{"LineTo without MoveTo", []Command{LineTo(pt), ClosePath(), End()}},
		{"ClosePath without MoveTo", []Command{ClosePath(), End()}},
		{"MoveTo inside ring", []Command{MoveTo(pt), LineTo(pt), MoveTo(pt), End()}},
		{"unterminated ring", []Command{MoveTo(pt), LineTo(pt)}},
		{"unknown kind", []Command{{Kind: 42}, End()}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Collect(&sliceSource{cmds: tt.cmds})
			if !errors.Is(err, ErrMalformedStream) {
				t.Errorf("got error %v, want ErrMalformedStream", err)
			}
		})
	}
}

func TestCollectSkipsDegenerateRings(t *testing.T) {
	cmds := []Command{
		MoveTo(Pt(0, 0)), LineTo(Pt(1, 1)), LineTo(Pt(0, 0)), ClosePath(),
		End(),
	}
	got, err := Collect(&sliceSource{cmds: cmds})
	if err != nil {
		t.Fatal(err)
	}
	if !got.IsEmpty() {
		t.Errorf("got %v, want empty polygon", got)
	}
}

func TestCountRewinds(t *testing.T) {
	src := &sliceSource{cmds: []Command{MoveTo(Pt(0, 0)), ClosePath(), End()}}
	src.Next()
	if n := Count(src); n != 2 {
		t.Errorf("got %d, want 2", n)
	}
}

func TestCollectHoleOnClipBoundary(t *testing.T) {
	p := NewPolygon(
		Ring{Pt(0, 0), Pt(20, 0), Pt(20, 20), Pt(0, 20)},
		Ring{Pt(5, 15), Pt(5, 5), Pt(15, 5), Pt(15, 15)},
	)
	clipped, err := ClipPolygon(p, Rect{0, 0, 10, 10})
	if err != nil {
		t.Fatal(err)
	}
	// The clipped hole starts on the top edge it shares with the exterior.
	diff(t, []Ring{{Pt(5, 10), Pt(5, 5), Pt(10, 5), Pt(10, 10)}}, clipped.Holes)

	got, err := Collect(NewCursor(clipped))
	if err != nil {
		t.Fatal(err)
	}
	diff(t, clipped, got)
	if a := got.Area(); a != 75 {
		t.Errorf("got area %v, want 75", a)
	}
}
