package rectclip

// RingClipper clips one ring against a rectangle and returns the resulting
// rings, of which there may be none, one or several. Implementations must not
// modify the input ring and must not return rings with fewer than three
// points. They may assume that the rectangle is valid.
//
// [ClipRing], [ClipRingOrb] and [ClipRingBoolean] are RingClippers.
type RingClipper func(ring Ring, r Rect) []Ring

// ClipPolygon clips p against r using [ClipRing]. See [ClipPolygonWith].
func ClipPolygon(p Polygon, r Rect) (Polygon, error) {
	return ClipPolygonWith(p, r, ClipRing)
}

// ClipPolygonWith clips every ring of p against r using clip and assembles
// the results into a new polygon.
//
// Every ring produced from an exterior ring becomes an exterior ring of the
// result, and every ring produced from a hole becomes a hole, in input order.
// Rings that clip to nothing are dropped. A hole clipped against the same
// rectangle as its exterior remains a hole of the same region, so no
// containment test is needed.
//
// Each output ring keeps the orientation of the ring it was produced from:
// if clip returns a ring wound the other way, it is reversed.
//
// The only error is an [*InvalidRectangleError] for invalid r. p is never
// modified, and the result shares no memory with it.
func ClipPolygonWith(p Polygon, r Rect, clip RingClipper) (Polygon, error) {
	if err := r.Validate(); err != nil {
		return Polygon{}, err
	}
	var out Polygon
	for i, ring := range p.Exteriors {
		res := clipOriented(ring, r, clip)
		if len(res) == 0 {
			Logger().Debug("dropped exterior ring", "ring", i, "points", len(ring))
		}
		out.Exteriors = append(out.Exteriors, res...)
	}
	for i, ring := range p.Holes {
		res := clipOriented(ring, r, clip)
		if len(res) == 0 {
			Logger().Debug("dropped hole ring", "ring", i, "points", len(ring))
		}
		out.Holes = append(out.Holes, res...)
	}
	return out, nil
}

func clipOriented(ring Ring, r Rect, clip RingClipper) []Ring {
	res := clip(ring, r)
	if len(res) == 0 {
		return nil
	}
	sign := ring.SignedArea()
	for i, c := range res {
		if area := c.SignedArea(); (sign < 0 && area > 0) || (sign > 0 && area < 0) {
			res[i] = c.Reverse()
		}
	}
	return res
}
