// SPDX-License-Identifier: Unlicense OR MIT

package flow

import "image"

// Orientation is the packing direction of a Flow.
type Orientation uint8

// Alignment is the cross axis alignment of a child within its rank.
type Alignment uint8

const (
	// RowWrap packs children left to right and wraps top to bottom.
	RowWrap Orientation = iota
	// ColumnWrap packs children top to bottom and wraps left to right.
	ColumnWrap
)

const (
	Center Alignment = iota
	Start
	End
)

// Edges are distances from the four sides of a box.
type Edges struct {
	Top, Bottom, Start, End int
}

// main returns the main axis component of p.
func (o Orientation) main(p image.Point) int {
	if o == RowWrap {
		return p.X
	}
	return p.Y
}

// cross returns the cross axis component of p.
func (o Orientation) cross(p image.Point) int {
	if o == RowWrap {
		return p.Y
	}
	return p.X
}

// point converts a main and cross position into an image.Point.
func (o Orientation) point(main, cross int) image.Point {
	if o == RowWrap {
		return image.Point{X: main, Y: cross}
	}
	return image.Point{X: cross, Y: main}
}

// mainEdges returns the leading and trailing edges along the main axis.
func (o Orientation) mainEdges(e Edges) (int, int) {
	if o == RowWrap {
		return e.Start, e.End
	}
	return e.Top, e.Bottom
}

// crossEdges returns the leading and trailing edges along the cross axis.
func (o Orientation) crossEdges(e Edges) (int, int) {
	if o == RowWrap {
		return e.Top, e.Bottom
	}
	return e.Start, e.End
}

func (o Orientation) String() string {
	switch o {
	case RowWrap:
		return "RowWrap"
	case ColumnWrap:
		return "ColumnWrap"
	default:
		panic("unreachable")
	}
}

func (a Alignment) String() string {
	switch a {
	case Center:
		return "Center"
	case Start:
		return "Start"
	case End:
		return "End"
	default:
		panic("unreachable")
	}
}
