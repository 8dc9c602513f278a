package rectclip

// ClipRing clips a single ring against r using four sequential half-plane
// passes (left, right, bottom, top), in the manner of Sutherland–Hodgman.
//
// ClipRing implements the non-splitting policy: it returns at most one ring.
// A non-convex ring whose inside parts are disjoint comes back as one ring in
// which the parts are joined by edges running along the rectangle's
// boundary. Consumers filling with the non-zero or even-odd rule see these
// connecting edges as zero-width pinches.
//
// Points on the boundary of r are inside. The ring is normalized before
// clipping, so zero-length edges are never classified, and again after
// clipping. If the result has fewer than three points or encloses no area,
// ClipRing returns nil. This includes zero-area rings lying entirely inside r,
// such as collinear points, which are dropped rather than returned unchanged.
// Rings with a NaN coordinate also return nil. ClipRing does not validate r;
// see [ClipPolygon].
//
// For each edge cur→next of the working ring, cur is kept if it is inside the
// half-plane, and the crossing point is added if cur and next lie on
// different sides. Indexing the decision by the edge's start point keeps a
// ring's first inside vertex in first position across all four passes.
func ClipRing(ring Ring, r Rect) []Ring {
	in := ring.Normalize()
	if res, ok := trivialClip(in, r); ok {
		return res
	}

	out := make(Ring, 0, len(in)+4)
	for _, e := range clipOrder {
		out = clipHalfPlane(out[:0], in, e, r)
		if len(out) == 0 {
			return nil
		}
		// The next pass reads from what this one wrote; reuse the old input
		// as its output buffer.
		in, out = out, in
	}

	res := in.Normalize()
	if res.degenerate() {
		return nil
	}
	return []Ring{res}
}

// clipHalfPlane appends the part of ring in that lies inside the half-plane e
// of r to out.
func clipHalfPlane(out, in Ring, e Edge, r Rect) Ring {
	if len(in) == 0 {
		return out
	}
	curInside := e.Inside(r, in[0])
	for i, cur := range in {
		next := in[(i+1)%len(in)]
		nextInside := e.Inside(r, next)
		if curInside {
			out = append(out, cur)
		}
		if curInside != nextInside {
			out = append(out, e.Intersect(r, cur, next))
		}
		curInside = nextInside
	}
	return out
}
