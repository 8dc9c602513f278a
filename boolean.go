package rectclip

import (
	"github.com/ctessum/polyclip-go"
)

// ClipRingBoolean clips ring against r by intersecting it with the rectangle's
// outline using the boolean polygon operations of
// github.com/ctessum/polyclip-go.
//
// Unlike [ClipRing], this splitting policy returns one ring per disjoint part
// of the clipped ring. Points may be ordered and oriented differently from
// the half-plane clippers; [ClipPolygonWith] restores the orientation.
func ClipRingBoolean(ring Ring, r Rect) []Ring {
	in := ring.Normalize()
	if res, ok := trivialClip(in, r); ok {
		return res
	}
	subject := polyclip.Polygon{toContour(in)}
	window := polyclip.Polygon{toContour(r.Ring())}
	var out []Ring
	for _, c := range subject.Construct(polyclip.INTERSECTION, window) {
		res := fromContour(c).Normalize()
		if res.degenerate() {
			continue
		}
		out = append(out, res)
	}
	return out
}

func toContour(r Ring) polyclip.Contour {
	c := make(polyclip.Contour, len(r))
	for i, pt := range r {
		c[i] = polyclip.Point{X: pt.X, Y: pt.Y}
	}
	return c
}

func fromContour(c polyclip.Contour) Ring {
	r := make(Ring, len(c))
	for i, pt := range c {
		r[i] = Point{pt.X, pt.Y}
	}
	return r
}
