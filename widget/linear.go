// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"

	"gioui.org/layout"
	"gioui.org/op"
)

// Linear stacks its children vertically, each with its own margin.
type Linear struct{}

// LinearChild is a child of a Linear.
type LinearChild struct {
	Margin layout.Inset
	Widget layout.Widget
}

// Layout lays out the children top to bottom. The width is that of the
// widest child including its margins, and the height is the sum of the
// children's heights and margins. A child reporting a width larger than
// the space left by its margins is clamped to that space.
func (l Linear) Layout(gtx layout.Context, children ...LinearChild) layout.Dimensions {
	cs := gtx.Constraints
	var size image.Point
	for _, c := range children {
		top, bottom := gtx.Dp(c.Margin.Top), gtx.Dp(c.Margin.Bottom)
		start, end := gtx.Dp(c.Margin.Left), gtx.Dp(c.Margin.Right)
		avail := max(cs.Max.X-start-end, 0)
		cgtx := gtx
		cgtx.Constraints = layout.Constraints{
			Max: image.Pt(avail, max(cs.Max.Y-size.Y-top-bottom, 0)),
		}
		macro := op.Record(gtx.Ops)
		dims := c.Widget(cgtx)
		call := macro.Stop()
		w := min(dims.Size.X, avail)

		trans := op.Offset(image.Pt(start, size.Y+top)).Push(gtx.Ops)
		call.Add(gtx.Ops)
		trans.Pop()

		size.X = max(size.X, start+w+end)
		size.Y += top + dims.Size.Y + bottom
	}
	return layout.Dimensions{Size: cs.Constrain(size)}
}
