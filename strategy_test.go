package rectclip

import (
	"errors"
	"math"
	"math/rand/v2"
	"strings"
	"testing"
)

func TestStrategies(t *testing.T) {
	diff(t, []string{"boolean", "halfplane", "orb"}, Strategies())
	for _, name := range Strategies() {
		if _, err := LookupStrategy(name); err != nil {
			t.Errorf("LookupStrategy(%q): %s", name, err)
		}
	}
	if _, err := LookupStrategy(DefaultStrategy); err != nil {
		t.Errorf("default strategy isn't registered: %s", err)
	}
}

func TestLookupUnknownStrategy(t *testing.T) {
	_, err := LookupStrategy("scanline")
	if !errors.Is(err, ErrUnknownStrategy) {
		t.Fatalf("got error %v, want ErrUnknownStrategy", err)
	}
	if !strings.Contains(err.Error(), `"scanline"`) {
		t.Errorf("error %q doesn't name the strategy", err)
	}
}

func TestClipRingOrbReference(t *testing.T) {
	diff(t, []Ring{referenceClippedExterior}, ClipRingOrb(referenceExterior, referenceRect), approx)
	diff(t, []Ring{referenceHole}, ClipRingOrb(referenceHole, referenceRect))
}

func TestClipRingOrbMatchesHalfPlane(t *testing.T) {
	rng := rand.New(rand.NewPCG(9, 10))
	rect := Rect{0, 0, 100, 100}
	for i := range 200 {
		ring := randomConvexRing(rng, 3+rng.IntN(30), Rect{-50, -30, 130, 170})
		want := ClipRing(ring, rect)
		got := ClipRingOrb(ring, rect)
		if len(got) != len(want) {
			t.Fatalf("ring %d: got %d rings, want %d", i, len(got), len(want))
		}
		for j := range got {
			if len(got[j]) != len(want[j]) {
				t.Errorf("ring %d: got %d points, want %d", i, len(got[j]), len(want[j]))
			}
			assertArea(t, want[j].SignedArea(), got[j].SignedArea(), 1e-9)
		}
	}
}

func TestClipRingBooleanReference(t *testing.T) {
	got := ClipRingBoolean(referenceExterior, referenceRect)
	if len(got) != 1 {
		t.Fatalf("got %d rings, want 1", len(got))
	}
	assertArea(t,
		math.Abs(referenceClippedExterior.SignedArea()),
		math.Abs(got[0].SignedArea()),
		1e-6)
	assertInside(t, referenceRect, got, 1e-9)
}

func TestClipRingBooleanSplits(t *testing.T) {
	rect := Rect{0, 20, 30, 40}
	got := ClipRingBoolean(uShape, rect)
	if len(got) != 2 {
		t.Fatalf("got %d rings, want 2", len(got))
	}
	var area float64
	for _, r := range got {
		area += math.Abs(r.SignedArea())
	}
	assertArea(t, 200, area, 1e-9)
	assertInside(t, rect, got, 1e-9)

	// The half-plane clipper keeps the two parts in one ring.
	hp := ClipRing(uShape, rect)
	if len(hp) != 1 {
		t.Fatalf("got %d rings, want 1", len(hp))
	}
	assertArea(t, 200, hp[0].SignedArea(), 1e-12)
}

func TestClipPolygonWithBoolean(t *testing.T) {
	got, err := ClipPolygonWith(referencePolygon(), referenceRect, ClipRingBoolean)
	if err != nil {
		t.Fatal(err)
	}
	want, err := ClipPolygon(referencePolygon(), referenceRect)
	if err != nil {
		t.Fatal(err)
	}
	assertArea(t, want.Area(), got.Area(), 1e-6)
	for i, r := range got.Exteriors {
		if (r.SignedArea() < 0) != (referenceExterior.SignedArea() < 0) {
			t.Errorf("exterior %d changed orientation", i)
		}
	}
	for i, r := range got.Holes {
		if (r.SignedArea() < 0) != (referenceHole.SignedArea() < 0) {
			t.Errorf("hole %d changed orientation", i)
		}
	}
}

func TestStrategiesAgreeOnTrivialCases(t *testing.T) {
	inside := Ring{Pt(1, 1), Pt(5, 1), Pt(5, 5), Pt(1, 5)}
	outside := Ring{Pt(20, 20), Pt(30, 20), Pt(30, 30)}
	rect := Rect{0, 0, 10, 10}
	for _, name := range Strategies() {
		clip, _ := LookupStrategy(name)
		t.Run(name, func(t *testing.T) {
			diff(t, []Ring{inside}, clip(inside, rect))
			diff(t, []Ring(nil), clip(outside, rect))
			diff(t, []Ring(nil), clip(nil, rect))
			diff(t, []Ring(nil), clip(Ring{Pt(5, 5), Pt(math.NaN(), 20), Pt(20, 5), Pt(8, 2)}, rect))
		})
	}
}

func assertArea(t *testing.T, want, got, rel float64) {
	t.Helper()
	if math.Abs(got-want) > rel*math.Max(math.Abs(want), 1) {
		t.Errorf("got area %v, want %v", got, want)
	}
}

func assertInside(t *testing.T, r Rect, rings []Ring, eps float64) {
	t.Helper()
	r = r.Inflate(eps, eps)
	for i, ring := range rings {
		for _, pt := range ring {
			if !r.Contains(pt) {
				t.Errorf("ring %d: point %s outside of %v", i, pt, r)
			}
		}
	}
}
