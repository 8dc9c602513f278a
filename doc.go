// Package rectclip clips polygons with holes against axis-aligned rectangles
// and exposes the result as a restartable stream of vertex commands.
//
// # Geometry
//
// A [Ring] is a closed loop of points; the segment from the last point back to
// the first is implicit. A [Polygon] consists of exterior rings and hole
// rings. Input polygons normally have one exterior ring, see [NewPolygon].
// A [Rect] is a closed clip window: points on its boundary are inside.
//
// # Clipping
//
// [ClipRing] clips a single ring with four sequential half-plane passes, one
// per rectangle edge, in the order left, right, bottom, top. [ClipPolygon]
// clips the exterior and every hole independently and reassembles them:
// results of exteriors stay exteriors, results of holes stay holes, and rings
// that clip to nothing are dropped. The only error is an
// [*InvalidRectangleError] for a rectangle whose minimum corner exceeds its
// maximum corner.
//
// Clipping never modifies its input and never returns memory shared with it.
// All clipping functions are safe for concurrent use.
//
// # Strategies
//
// A clipping strategy is a [RingClipper]: a function from a ring and a
// rectangle to zero or more rings. [ClipPolygonWith] accepts any strategy,
// and [LookupStrategy] selects one by name. Three are provided:
//
//   - "halfplane" ([ClipRing]) never splits a ring. Parts of a non-convex ring
//     that end up disjoint stay connected by edges along the clip boundary.
//   - "orb" ([ClipRingOrb]) uses github.com/paulmach/orb/clip and produces the
//     same points as "halfplane", possibly starting at a different vertex.
//   - "boolean" ([ClipRingBoolean]) intersects the ring with the rectangle
//     using github.com/ctessum/polyclip-go and returns disjoint parts as
//     separate rings.
//
// The strategies agree on area but not necessarily on vertex count: how a
// ring that touches a corner exactly is resolved depends on the algorithm.
//
// # Command streams
//
// Clipped geometry is exchanged as a stream of [Command] values. Each ring is
// emitted as a MoveTo to its first point, a LineTo to each following point, a
// LineTo back to the first point and a ClosePath. The stream ends with
// exactly one End.
//
// A [CommandSource] is a pull-based cursor with Rewind and Next. [Cursor]
// walks an already clipped polygon; [LazyCursor] clips ring by ring as it
// goes. [Stream] and [Polygon.Commands] adapt command streams to iterators,
// and [Count], [Collect] and [WriteSVG] consume them.
package rectclip
