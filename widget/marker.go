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
	"gioui.org/widget/material"
)

// Position is the corner a Marker occupies.
type Position uint8

const (
	TopLeft Position = iota
	BottomLeft
	TopRight
	BottomRight
)

// MarkerStyle is the shape of a Marker's corner.
type MarkerStyle uint8

const (
	// TriangleMarker draws a plain right isosceles triangle.
	TriangleMarker MarkerStyle = iota
	// RoundedTriangle rounds the right-angle corner.
	RoundedTriangle
	// TruncatedTriangle cuts the right-angle corner off, leaving a
	// trapezoid.
	TruncatedTriangle
)

// Proportions of the marker side used for unset sizes.
const (
	markerTextScale   = 42.0 / 179.0
	markerCornerScale = 27.0 / 179.0
	markerCutScale    = 27.0 / 179.0
)

// arcK is the control point distance of a cubic quarter circle of
// unit radius.
const arcK = 0.5522847498

// Marker is a corner badge: a right isosceles triangle filling the
// chosen corner of a square, with a label running along its
// hypotenuse.
type Marker struct {
	Text      string
	TextColor color.NRGBA
	Color     color.NRGBA
	Position  Position
	Style     MarkerStyle
	// TextSize of the label. Zero selects a size proportional to the
	// marker.
	TextSize unit.Sp
	// CornerRadius of a RoundedTriangle. Zero selects a radius
	// proportional to the marker.
	CornerRadius unit.Dp
	// Cut is the leg length of the corner removed from a
	// TruncatedTriangle. Zero selects a length proportional to the
	// marker.
	Cut unit.Dp
	// Offset moves the label from the triangle's centroid towards the
	// hypotenuse.
	Offset unit.Dp
}

// Layout draws the marker in a square whose side is the smaller of the
// maximum constraints.
func (m Marker) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	side := min(gtx.Constraints.Max.X, gtx.Constraints.Max.Y)
	if side <= 0 {
		return layout.Dimensions{}
	}
	s := float32(side)
	paint.FillShape(gtx.Ops, m.Color, clip.Outline{Path: m.path(gtx, s)}.Op())
	if m.Text != "" && th != nil {
		m.layoutLabel(gtx, th, s)
	}
	return layout.Dimensions{Size: image.Pt(side, side)}
}

// path returns the marker outline for a square of side s. The shape is
// built for TopLeft and mirrored into the other corners.
func (m Marker) path(gtx layout.Context, s float32) clip.PathSpec {
	mx, my := m.Position == TopRight || m.Position == BottomRight, m.Position == BottomLeft || m.Position == BottomRight
	pt := func(x, y float32) f32.Point {
		if mx {
			x = s - x
		}
		if my {
			y = s - y
		}
		return f32.Pt(x, y)
	}
	var p clip.Path
	p.Begin(gtx.Ops)
	switch m.Style {
	case TriangleMarker:
		p.MoveTo(pt(0, 0))
		p.LineTo(pt(s, 0))
		p.LineTo(pt(0, s))
	case RoundedTriangle:
		r := min(m.cornerRadius(gtx, s), s/2)
		p.MoveTo(pt(r, 0))
		p.LineTo(pt(s, 0))
		p.LineTo(pt(0, s))
		p.LineTo(pt(0, r))
		p.CubeTo(pt(0, r-arcK*r), pt(r-arcK*r, 0), pt(r, 0))
	case TruncatedTriangle:
		c := min(m.cut(gtx, s), s)
		p.MoveTo(pt(c, 0))
		p.LineTo(pt(s, 0))
		p.LineTo(pt(0, s))
		p.LineTo(pt(0, c))
	default:
		panic("unreachable")
	}
	p.Close()
	return p.End()
}

func (m Marker) layoutLabel(gtx layout.Context, th *material.Theme, s float32) {
	size := m.TextSize
	if size <= 0 {
		size = gtx.Metric.PxToSp(int(math.Round(float64(s * markerTextScale))))
	}
	lbl := material.Label(th, size, m.Text)
	lbl.Color = m.TextColor
	lbl.MaxLines = 1

	hyp := int(s * math.Sqrt2)
	lgtx := gtx
	lgtx.Constraints = layout.Constraints{Max: image.Pt(hyp, int(s))}
	macro := op.Record(gtx.Ops)
	dims := lbl.Layout(lgtx)
	call := macro.Stop()

	// The label is centred on the triangle's centroid, shifted along the
	// corner's diagonal by Offset.
	d := float32(gtx.Dp(m.Offset)) / math.Sqrt2
	cx, cy := s/3+d, s/3+d
	angle := float32(-math.Pi / 4)
	switch m.Position {
	case TopRight:
		cx = s - cx
		angle = -angle
	case BottomLeft:
		cy = s - cy
		angle = -angle
	case BottomRight:
		cx, cy = s-cx, s-cy
	}
	half := layout.FPt(dims.Size).Mul(0.5)
	tr := f32.Affine2D{}.
		Offset(half.Mul(-1)).
		Rotate(f32.Point{}, angle).
		Offset(f32.Pt(cx, cy))
	defer op.Affine(tr).Push(gtx.Ops).Pop()
	call.Add(gtx.Ops)
}

func (m Marker) cornerRadius(gtx layout.Context, s float32) float32 {
	if m.CornerRadius > 0 {
		return float32(gtx.Dp(m.CornerRadius))
	}
	return s * markerCornerScale
}

func (m Marker) cut(gtx layout.Context, s float32) float32 {
	if m.Cut > 0 {
		return float32(gtx.Dp(m.Cut))
	}
	return s * markerCutScale
}

func (p Position) String() string {
	switch p {
	case TopLeft:
		return "TopLeft"
	case BottomLeft:
		return "BottomLeft"
	case TopRight:
		return "TopRight"
	case BottomRight:
		return "BottomRight"
	default:
		panic("unreachable")
	}
}

func (s MarkerStyle) String() string {
	switch s {
	case TriangleMarker:
		return "Triangle"
	case RoundedTriangle:
		return "RoundedTriangle"
	case TruncatedTriangle:
		return "TruncatedTriangle"
	default:
		panic("unreachable")
	}
}
