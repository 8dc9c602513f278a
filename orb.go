package rectclip

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/clip"
)

// ClipRingOrb clips ring against r with the ring clipper of
// github.com/paulmach/orb/clip, a port of mapbox's lineclip.
//
// It belongs to the same half-plane family as [ClipRing] and also never
// splits rings. It produces the same points, but walks each pass from the
// edge closing the ring, so its output may start at a different vertex.
func ClipRingOrb(ring Ring, r Rect) []Ring {
	in := ring.Normalize()
	if res, ok := trivialClip(in, r); ok {
		return res
	}
	out := RingFromOrb(clip.Ring(r.Bound(), in.Orb())).Normalize()
	if out.degenerate() {
		return nil
	}
	return []Ring{out}
}

// Bound converts r to an orb.Bound.
func (r Rect) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{r.X0, r.Y0},
		Max: orb.Point{r.X1, r.Y1},
	}
}

// RectFromBound converts an orb.Bound to a Rect.
func RectFromBound(b orb.Bound) Rect {
	return Rect{b.Min[0], b.Min[1], b.Max[0], b.Max[1]}
}

// Orb converts r to an explicitly closed orb.Ring, whose last point repeats
// its first.
func (r Ring) Orb() orb.Ring {
	if len(r) == 0 {
		return nil
	}
	out := make(orb.Ring, 0, len(r)+1)
	for _, pt := range r {
		out = append(out, orb.Point{pt.X, pt.Y})
	}
	if r[len(r)-1] != r[0] {
		out = append(out, out[0])
	}
	return out
}

// RingFromOrb converts an orb.Ring to a Ring. A closing point is kept; use
// [Ring.Normalize] to drop it.
func RingFromOrb(r orb.Ring) Ring {
	if len(r) == 0 {
		return nil
	}
	out := make(Ring, len(r))
	for i, pt := range r {
		out[i] = Point{pt[0], pt[1]}
	}
	return out
}

// Orb converts p to an orb.MultiPolygon with one member per exterior ring.
// Each hole is attached to the first exterior it lies within, as decided by
// [Ring.Within], or to the first exterior if there is none.
func (p Polygon) Orb() orb.MultiPolygon {
	if len(p.Exteriors) == 0 {
		return nil
	}
	mp := make(orb.MultiPolygon, len(p.Exteriors))
	for i, ext := range p.Exteriors {
		mp[i] = orb.Polygon{ext.Orb()}
	}
	for _, hole := range p.Holes {
		if len(hole) == 0 {
			continue
		}
		owner := 0
		for i, ext := range p.Exteriors {
			if hole.Within(ext) {
				owner = i
				break
			}
		}
		mp[owner] = append(mp[owner], hole.Orb())
	}
	return mp
}

// PolygonFromOrb converts an orb.Polygon, whose first ring is the exterior, to
// a Polygon. Closing points are kept.
func PolygonFromOrb(p orb.Polygon) Polygon {
	if len(p) == 0 {
		return Polygon{}
	}
	out := Polygon{Exteriors: []Ring{RingFromOrb(p[0])}}
	for _, hole := range p[1:] {
		out.Holes = append(out.Holes, RingFromOrb(hole))
	}
	return out
}

// PolygonFromOrbMulti merges the members of an orb.MultiPolygon into a single
// Polygon.
func PolygonFromOrbMulti(mp orb.MultiPolygon) Polygon {
	var out Polygon
	for _, p := range mp {
		pp := PolygonFromOrb(p)
		out.Exteriors = append(out.Exteriors, pp.Exteriors...)
		out.Holes = append(out.Holes, pp.Holes...)
	}
	return out
}
