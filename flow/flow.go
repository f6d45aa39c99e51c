// SPDX-License-Identifier: Unlicense OR MIT

// Package flow implements a wrapping container that packs children in
// rows or columns and starts a new rank when space runs out.
package flow

import (
	"image"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
)

// Flow lays out children in ranks along its Orientation.
type Flow struct {
	Orientation Orientation
	// Alignment is the alignment of children within their rank.
	Alignment Alignment
	// MainSpacing separates neighbours inside a rank.
	MainSpacing unit.Dp
	// CrossSpacing separates ranks.
	CrossSpacing unit.Dp
	// Inset is the padding between the container edges and its
	// children.
	Inset layout.Inset
}

// FlowChild is the descriptor for a Flow child.
type FlowChild struct {
	margin layout.Inset
	widget layout.Widget

	// Scratch space.
	call op.CallOp
}

// Child returns a Flow child without margins.
func Child(w layout.Widget) FlowChild {
	return FlowChild{widget: w}
}

// Margined returns a Flow child surrounded by margin. Left is the
// start margin, Right the end margin.
func Margined(margin layout.Inset, w layout.Widget) FlowChild {
	return FlowChild{margin: margin, widget: w}
}

// Layout children. Each child is measured with the container's maximum
// size, less padding, then placed by the rank computation.
func (f Flow) Layout(gtx layout.Context, children ...FlowChild) layout.Dimensions {
	padding := edges(gtx, f.Inset)
	cs := Constraints{
		Max:         gtx.Constraints.Max,
		ExactWidth:  gtx.Constraints.Min.X == gtx.Constraints.Max.X,
		ExactHeight: gtx.Constraints.Min.Y == gtx.Constraints.Max.Y,
		Padding:     padding,
	}
	e := Engine{
		Orientation:  f.Orientation,
		Alignment:    f.Alignment,
		MainSpacing:  gtx.Dp(f.MainSpacing),
		CrossSpacing: gtx.Dp(f.CrossSpacing),
	}
	avail := image.Point{
		X: max(gtx.Constraints.Max.X-padding.Start-padding.End, 0),
		Y: max(gtx.Constraints.Max.Y-padding.Top-padding.Bottom, 0),
	}
	boxes := make([]Box, len(children))
	for i := range children {
		child := &children[i]
		macro := op.Record(gtx.Ops)
		cgtx := gtx
		cgtx.Constraints = layout.Constraints{Max: avail}
		dims := child.widget(cgtx)
		child.call = macro.Stop()
		boxes[i] = Box{Size: dims.Size, Margin: edges(gtx, child.margin)}
	}
	size, ranks := e.Measure(boxes, cs)
	rects := e.Place(boxes, ranks, cs, make([]image.Rectangle, 0, len(boxes)))
	for i, r := range rects {
		trans := op.Offset(r.Min).Push(gtx.Ops)
		children[i].call.Add(gtx.Ops)
		trans.Pop()
	}
	return layout.Dimensions{Size: gtx.Constraints.Constrain(size)}
}

func edges(gtx layout.Context, in layout.Inset) Edges {
	return Edges{
		Top:    gtx.Dp(in.Top),
		Bottom: gtx.Dp(in.Bottom),
		Start:  gtx.Dp(in.Left),
		End:    gtx.Dp(in.Right),
	}
}
