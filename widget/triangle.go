// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image/color"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
)

// Direction is the direction from the apex of a Triangle to its base.
type Direction uint8

const (
	// Down puts the apex at the top centre.
	Down Direction = iota
	// Up puts the apex at the bottom centre.
	Up
	// Right puts the apex at the left centre.
	Right
	// Left puts the apex at the right centre.
	Left
)

// Triangle fills the minimum constraint with an isosceles triangle.
type Triangle struct {
	Color     color.NRGBA
	Direction Direction
}

// Layout fills the minimum constraint with the triangle and returns it
// as the size. A zero minimum draws nothing.
func (t Triangle) Layout(gtx layout.Context) layout.Dimensions {
	sz := gtx.Constraints.Min
	if sz.X > 0 && sz.Y > 0 {
		w, h := float32(sz.X), float32(sz.Y)
		var apex, b1, b2 f32.Point
		switch t.Direction {
		case Down:
			apex, b1, b2 = f32.Pt(w/2, 0), f32.Pt(w, h), f32.Pt(0, h)
		case Up:
			apex, b1, b2 = f32.Pt(w/2, h), f32.Pt(0, 0), f32.Pt(w, 0)
		case Right:
			apex, b1, b2 = f32.Pt(0, h/2), f32.Pt(w, 0), f32.Pt(w, h)
		case Left:
			apex, b1, b2 = f32.Pt(w, h/2), f32.Pt(0, h), f32.Pt(0, 0)
		default:
			panic("unreachable")
		}
		var p clip.Path
		p.Begin(gtx.Ops)
		p.MoveTo(apex)
		p.LineTo(b1)
		p.LineTo(b2)
		p.Close()
		paint.FillShape(gtx.Ops, t.Color, clip.Outline{Path: p.End()}.Op())
	}
	return layout.Dimensions{Size: sz}
}

func (d Direction) String() string {
	switch d {
	case Down:
		return "Down"
	case Up:
		return "Up"
	case Right:
		return "Right"
	case Left:
		return "Left"
	default:
		panic("unreachable")
	}
}
