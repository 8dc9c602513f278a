package rectclip_test

import (
	"fmt"

	"honnef.co/go/rectclip"
)

func ExampleClipPolygon() {
	square := rectclip.Ring{
		rectclip.Pt(-10, -10), rectclip.Pt(20, -10),
		rectclip.Pt(20, 20), rectclip.Pt(-10, 20),
	}
	hole := rectclip.Ring{
		rectclip.Pt(2, 2), rectclip.Pt(2, 4),
		rectclip.Pt(4, 4), rectclip.Pt(4, 2),
	}
	clipped, err := rectclip.ClipPolygon(rectclip.NewPolygon(square, hole), rectclip.Rect{X0: 0, Y0: 0, X1: 10, Y1: 10})
	if err != nil {
		panic(err)
	}
	fmt.Println(clipped.Exteriors)
	fmt.Println(clipped.Holes)
	fmt.Println(rectclip.Count(rectclip.NewCursor(clipped)))
	fmt.Println(rectclip.SVG(clipped.Commands(), rectclip.SVGOptions{}))
	// Output:
	// [[(10, 0) (10, 10) (0, 10) (0, 0)]]
	// [[(2, 2) (2, 4) (4, 4) (4, 2)]]
	// 12
	// M10,0 L10,10 L0,10 L0,0 L10,0 Z M2,2 L2,4 L4,4 L4,2 L2,2 Z
}

func ExampleLazyCursor() {
	tri := rectclip.Ring{rectclip.Pt(0, 0), rectclip.Pt(4, 0), rectclip.Pt(0, 4)}
	c, err := rectclip.NewLazyCursor(rectclip.NewPolygon(tri), rectclip.Rect{X0: 0, Y0: 0, X1: 2, Y1: 2}, nil)
	if err != nil {
		panic(err)
	}
	for cmd := range rectclip.Stream(c) {
		fmt.Println(cmd)
	}
	// Output:
	// MoveTo(0, 0)
	// LineTo(2, 0)
	// LineTo(2, 2)
	// LineTo(0, 2)
	// LineTo(0, 0)
	// ClosePath
	// End
}

func ExampleLookupStrategy() {
	for _, name := range rectclip.Strategies() {
		fmt.Println(name)
	}
	_, err := rectclip.LookupStrategy("scanline")
	fmt.Println(err)
	// Output:
	// boolean
	// halfplane
	// orb
	// unknown clipping strategy "scanline"
}
