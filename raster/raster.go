// Package raster fills rectclip command streams into images using the
// anti-aliasing rasterizer of golang.org/x/image/vector.
//
// The rasterizer accumulates signed coverage and takes its absolute value, so
// holes must be wound opposite to their exterior ring to stay empty. Clipping
// preserves ring orientation, so holes that were wound correctly before
// clipping remain so.
package raster

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"

	"honnef.co/go/rectclip"
)

// ViewTransform returns the transform that maps extent, grown by pad on every
// side, onto a w×h pixel grid. World y points up and device y points down, as
// in a map view.
func ViewTransform(extent rectclip.Rect, w, h int, pad float64) rectclip.Affine {
	ext := extent.Inflate(pad, pad)
	sx, sy := 1.0, 1.0
	if ext.Width() > 0 {
		sx = float64(w) / ext.Width()
	}
	if ext.Height() > 0 {
		sy = float64(h) / ext.Height()
	}
	return rectclip.Translate(rectclip.Vec(-ext.X0, -ext.Y1)).ThenScale(sx, -sy)
}

// AddPath rewinds src and adds its commands, transformed by tr, to z.
func AddPath(z *vector.Rasterizer, src rectclip.CommandSource, tr rectclip.Affine) {
	src.Rewind()
	for {
		cmd := src.Next().Transform(tr)
		switch cmd.Kind {
		case rectclip.MoveToKind:
			z.MoveTo(float32(cmd.Pt.X), float32(cmd.Pt.Y))
		case rectclip.LineToKind:
			z.LineTo(float32(cmd.Pt.X), float32(cmd.Pt.Y))
		case rectclip.ClosePathKind:
			z.ClosePath()
		case rectclip.EndKind:
			return
		}
	}
}

// Fill draws the area described by src onto dst in color c.
func Fill(dst draw.Image, src rectclip.CommandSource, tr rectclip.Affine, c color.Color) {
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	AddPath(z, src, tr)
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// Render returns a w×h coverage mask of src, viewing extent grown by pad.
func Render(src rectclip.CommandSource, extent rectclip.Rect, w, h int, pad float64) *image.Alpha {
	dst := image.NewAlpha(image.Rect(0, 0, w, h))
	Fill(dst, src, ViewTransform(extent, w, h, pad), color.Opaque)
	return dst
}

// Coverage returns the mean coverage of img, between 0 and 1.
func Coverage(img *image.Alpha) float64 {
	b := img.Bounds()
	if b.Empty() {
		return 0
	}
	var sum uint64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			sum += uint64(img.AlphaAt(x, y).A)
		}
	}
	return float64(sum) / 255 / float64(b.Dx()*b.Dy())
}
