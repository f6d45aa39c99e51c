// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
)

// Default Bubble proportions, relative to the laid out child.
const (
	bubbleArrowScale  = 2. / 9
	bubbleCornerScale = 1. / 18
	bubbleShadowScale = 7. / 90
)

// Side is an edge of a rectangle.
type Side uint8

const (
	SideTop Side = iota
	SideBottom
	SideLeft
	SideRight
)

// Bubble lays out a single child on a speech bubble: a rounded
// rectangle with a triangular arrow pointing out of one side.
//
// Zero sizes are derived from the child's dimensions, including its
// margin.
type Bubble struct {
	Color color.NRGBA
	// Side carries the arrow.
	Side Side
	// ArrowWidth is the width of the arrow's base. Zero selects 2/9 of
	// the child's extent along Side.
	ArrowWidth unit.Dp
	// ArrowHeight is the distance from the base to the tip. Zero
	// selects 2/9 of the child's extent along Side.
	ArrowHeight unit.Dp
	// ArrowOffset is the distance of the tip from the left or top end of
	// Side. Zero centres the arrow. The arrow never overlaps a corner
	// that leaves room for it.
	ArrowOffset unit.Dp
	// CornerRadius of the body. Zero selects 1/18 of the child's
	// smaller side.
	CornerRadius unit.Dp
	Shadow       bool
	ShadowColor  color.NRGBA
	// ShadowRadius is the shadow's extent around the bubble. Zero
	// selects 7/90 of the child's larger side.
	ShadowRadius                 unit.Dp
	ShadowOffsetX, ShadowOffsetY unit.Dp
	// Margin surrounds the child inside the body.
	Margin layout.Inset
}

// bubbleShape is the resolved geometry of a Bubble, in pixels.
type bubbleShape struct {
	size image.Point
	// body is the rounded rectangle, excluding the arrow and shadow.
	body   image.Rectangle
	shadow int
	// tip is the arrow tip's distance from the start of the side.
	tip, arrowW, arrowH, corner float32
}

// Layout lays out the child, if any. Bubbles take at most one child.
func (b Bubble) Layout(gtx layout.Context, children ...layout.Widget) layout.Dimensions {
	if len(children) > 1 {
		panic("widget: Bubble accepts at most one child")
	}
	if len(children) == 0 {
		return layout.Dimensions{Size: gtx.Constraints.Min}
	}
	cgtx := gtx
	cgtx.Constraints.Min = image.Point{}
	cgtx.Constraints.Max = gtx.Constraints.Max.Sub(b.reserved(gtx))
	cgtx.Constraints.Max.X = max(cgtx.Constraints.Max.X, 0)
	cgtx.Constraints.Max.Y = max(cgtx.Constraints.Max.Y, 0)
	macro := op.Record(gtx.Ops)
	dims := b.Margin.Layout(cgtx, children[0])
	call := macro.Stop()

	s := b.shape(gtx, dims.Size)
	if !s.body.Empty() {
		if s.shadow > 0 {
			off := image.Pt(gtx.Dp(b.ShadowOffsetX), gtx.Dp(b.ShadowOffsetY))
			layoutShadow(gtx, b.ShadowColor, s.shadow, func(grow int) clip.Op {
				g := s.grow(grow)
				g.body = g.body.Add(off)
				return clip.Outline{Path: g.path(gtx.Ops, b.Side)}.Op()
			})
		}
		paint.FillShape(gtx.Ops, b.Color, clip.Outline{Path: s.path(gtx.Ops, b.Side)}.Op())
	}
	t := op.Offset(s.body.Min).Push(gtx.Ops)
	call.Add(gtx.Ops)
	t.Pop()
	return layout.Dimensions{Size: s.size}
}

// reserved returns the space taken by explicitly sized shadow and
// arrow, unavailable to the child.
func (b Bubble) reserved(gtx layout.Context) image.Point {
	var r image.Point
	if b.Shadow {
		sr := gtx.Dp(b.ShadowRadius)
		r = image.Pt(2*sr, 2*sr)
	}
	ah := gtx.Dp(b.ArrowHeight)
	if b.Side.vertical() {
		r.X += ah
	} else {
		r.Y += ah
	}
	return r
}

// shape resolves the geometry around a child of the given size.
func (b Bubble) shape(gtx layout.Context, content image.Point) bubbleShape {
	along := content.X
	if b.Side.vertical() {
		along = content.Y
	}
	var s bubbleShape
	if b.Shadow {
		s.shadow = gtx.Dp(b.ShadowRadius)
		if s.shadow <= 0 {
			s.shadow = scaled(max(content.X, content.Y), bubbleShadowScale)
		}
	}
	ah := gtx.Dp(b.ArrowHeight)
	if ah <= 0 {
		ah = scaled(along, bubbleArrowScale)
	}
	s.arrowH = float32(ah)
	s.arrowW = float32(gtx.Dp(b.ArrowWidth))
	if s.arrowW <= 0 {
		s.arrowW = float32(along) * bubbleArrowScale
	}

	size := content.Add(image.Pt(2*s.shadow, 2*s.shadow))
	if b.Side.vertical() {
		size.X += ah
	} else {
		size.Y += ah
	}
	s.size = gtx.Constraints.Constrain(size)
	s.body = image.Rectangle{
		Min: image.Pt(s.shadow, s.shadow),
		Max: s.size.Sub(image.Pt(s.shadow, s.shadow)),
	}
	switch b.Side {
	case SideTop:
		s.body.Min.Y += ah
	case SideBottom:
		s.body.Max.Y -= ah
	case SideLeft:
		s.body.Min.X += ah
	case SideRight:
		s.body.Max.X -= ah
	default:
		panic("unreachable")
	}
	if s.body.Empty() {
		return s
	}

	bw, bh := float32(s.body.Dx()), float32(s.body.Dy())
	s.corner = float32(gtx.Dp(b.CornerRadius))
	if s.corner <= 0 {
		s.corner = float32(min(content.X, content.Y)) * bubbleCornerScale
	}
	s.corner = min(s.corner, bw/2, bh/2)

	edge := bw
	if b.Side.vertical() {
		edge = bh
	}
	s.arrowW = min(s.arrowW, edge)
	s.tip = edge / 2
	if off := float32(gtx.Dp(b.ArrowOffset)); off > 0 {
		s.tip = off
	}
	lo, hi := s.corner+s.arrowW/2, edge-s.corner-s.arrowW/2
	if lo <= hi {
		s.tip = max(lo, min(s.tip, hi))
	} else {
		s.tip = edge / 2
	}
	return s
}

// grow returns the shape outset by d pixels, with the arrow tip kept
// over the same point.
func (s bubbleShape) grow(d int) bubbleShape {
	s.body = s.body.Inset(-d)
	s.corner += float32(d)
	s.tip += float32(d)
	return s
}

// path traces the body clockwise from the end of the top left corner,
// inserting the arrow into the edge on side.
func (s bubbleShape) path(ops *op.Ops, side Side) clip.PathSpec {
	x0, y0 := float32(s.body.Min.X), float32(s.body.Min.Y)
	x1, y1 := float32(s.body.Max.X), float32(s.body.Max.Y)
	r, k := s.corner, s.corner*arcK
	half := s.arrowW / 2

	var p clip.Path
	p.Begin(ops)
	p.MoveTo(f32.Pt(x0+r, y0))
	if side == SideTop {
		p.LineTo(f32.Pt(x0+s.tip-half, y0))
		p.LineTo(f32.Pt(x0+s.tip, y0-s.arrowH))
		p.LineTo(f32.Pt(x0+s.tip+half, y0))
	}
	p.LineTo(f32.Pt(x1-r, y0))
	p.CubeTo(f32.Pt(x1-r+k, y0), f32.Pt(x1, y0+r-k), f32.Pt(x1, y0+r))
	if side == SideRight {
		p.LineTo(f32.Pt(x1, y0+s.tip-half))
		p.LineTo(f32.Pt(x1+s.arrowH, y0+s.tip))
		p.LineTo(f32.Pt(x1, y0+s.tip+half))
	}
	p.LineTo(f32.Pt(x1, y1-r))
	p.CubeTo(f32.Pt(x1, y1-r+k), f32.Pt(x1-r+k, y1), f32.Pt(x1-r, y1))
	if side == SideBottom {
		p.LineTo(f32.Pt(x0+s.tip+half, y1))
		p.LineTo(f32.Pt(x0+s.tip, y1+s.arrowH))
		p.LineTo(f32.Pt(x0+s.tip-half, y1))
	}
	p.LineTo(f32.Pt(x0+r, y1))
	p.CubeTo(f32.Pt(x0+r-k, y1), f32.Pt(x0, y1-r+k), f32.Pt(x0, y1-r))
	if side == SideLeft {
		p.LineTo(f32.Pt(x0, y0+s.tip+half))
		p.LineTo(f32.Pt(x0-s.arrowH, y0+s.tip))
		p.LineTo(f32.Pt(x0, y0+s.tip-half))
	}
	p.LineTo(f32.Pt(x0, y0+r))
	p.CubeTo(f32.Pt(x0, y0+r-k), f32.Pt(x0+r-k, y0), f32.Pt(x0+r, y0))
	p.Close()
	return p.End()
}

// vertical reports whether the side runs along the y axis.
func (s Side) vertical() bool {
	return s == SideLeft || s == SideRight
}

func scaled(v int, f float32) int {
	return int(math.Round(float64(float32(v) * f)))
}

func (s Side) String() string {
	switch s {
	case SideTop:
		return "SideTop"
	case SideBottom:
		return "SideBottom"
	case SideLeft:
		return "SideLeft"
	case SideRight:
		return "SideRight"
	default:
		panic("unreachable")
	}
}
