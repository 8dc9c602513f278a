package rectclip

import (
	"fmt"
	"maps"
	"slices"
)

// DefaultStrategy names the strategy used by [ClipPolygon].
const DefaultStrategy = "halfplane"

var strategies = map[string]RingClipper{
	"halfplane": ClipRing,
	"orb":       ClipRingOrb,
	"boolean":   ClipRingBoolean,
}

// LookupStrategy returns the ring clipper registered under name:
//
//   - "halfplane": [ClipRing]
//   - "orb": [ClipRingOrb]
//   - "boolean": [ClipRingBoolean]
//
// Unknown names return an error matching [ErrUnknownStrategy].
func LookupStrategy(name string) (RingClipper, error) {
	clip, ok := strategies[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownStrategy, name)
	}
	return clip, nil
}

// Strategies returns the names of all registered strategies in sorted order.
func Strategies() []string {
	return slices.Sorted(maps.Keys(strategies))
}

// trivialClip handles rings that lie entirely inside or entirely outside of
// r, using the union and intersection of the points' outcodes. Rings with
// fewer than three points or a NaN coordinate clip to nothing. ok is false if
// the ring crosses the boundary of r.
func trivialClip(in Ring, r Rect) (res []Ring, ok bool) {
	if len(in) < 3 || in.IsNaN() {
		return nil, true
	}
	and, or := Outcode(0xf), Outcode(0)
	for _, pt := range in {
		c := r.Outcode(pt)
		and &= c
		or |= c
	}
	if and != 0 {
		// Every point is outside of the same half-plane.
		return nil, true
	}
	if or == 0 {
		if in.degenerate() {
			return nil, true
		}
		return []Ring{in}, true
	}
	return nil, false
}
