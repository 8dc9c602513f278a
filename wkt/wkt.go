// Package wkt reads and writes rectclip polygons as well-known text, using
// github.com/paulmach/orb/encoding/wkt.
package wkt

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"

	"honnef.co/go/rectclip"
)

// ErrNotPolygon is returned by ParsePolygon for geometries other than
// POLYGON and MULTIPOLYGON.
var ErrNotPolygon = errors.New("wkt: geometry is not a polygon")

// ParsePolygon parses a POLYGON or MULTIPOLYGON. The first ring of each
// polygon is an exterior ring and the others are holes. Closing points are
// kept as written; clipping removes them.
func ParsePolygon(s string) (rectclip.Polygon, error) {
	g, err := wkt.Unmarshal(strings.TrimSpace(s))
	if err != nil {
		return rectclip.Polygon{}, fmt.Errorf("wkt: parsing polygon: %w", err)
	}
	switch g := g.(type) {
	case orb.Polygon:
		return rectclip.PolygonFromOrb(g), nil
	case orb.MultiPolygon:
		return rectclip.PolygonFromOrbMulti(g), nil
	default:
		return rectclip.Polygon{}, fmt.Errorf("%w: got %s", ErrNotPolygon, g.GeoJSONType())
	}
}

// ParseRect parses a clip rectangle. It accepts either four numbers
// "minx miny maxx maxy", separated by commas or spaces, or any WKT geometry,
// whose bounding box is used. The result is not validated.
func ParseRect(s string) (rectclip.Rect, error) {
	s = strings.TrimSpace(s)
	fields := strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' || r == '\t' })
	if len(fields) == 4 {
		var v [4]float64
		ok := true
		for i, f := range fields {
			n, err := strconv.ParseFloat(f, 64)
			if err != nil {
				ok = false
				break
			}
			v[i] = n
		}
		if ok {
			return rectclip.Rect{X0: v[0], Y0: v[1], X1: v[2], Y1: v[3]}, nil
		}
	}
	g, err := wkt.Unmarshal(s)
	if err != nil {
		return rectclip.Rect{}, fmt.Errorf("wkt: parsing rectangle: %w", err)
	}
	return rectclip.RectFromBound(g.Bound()), nil
}

// FormatPolygon formats p as a POLYGON, or as a MULTIPOLYGON if p has more than
// one exterior ring. Rings are written explicitly closed.
func FormatPolygon(p rectclip.Polygon) string {
	mp := p.Orb()
	switch len(mp) {
	case 0:
		return wkt.MarshalString(orb.Polygon{})
	case 1:
		return wkt.MarshalString(mp[0])
	default:
		return wkt.MarshalString(mp)
	}
}
