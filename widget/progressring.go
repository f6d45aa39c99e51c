// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"gioui.org/f32"
	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

// ProgressPlaceholder is replaced by the formatted progress in
// ProgressRing.Text.
const ProgressPlaceholder = "%progress"

const (
	// defaultTotal is the total of a ProgressRing with no Total.
	defaultTotal = 100
	// Default ring thickness and text size, relative to the side.
	ringThicknessScale = 1. / 15
	ringTextScale      = 1 / 2.2
	// maxArcSegment bounds the length in pixels of each quadratic
	// segment approximating an arc.
	maxArcSegment = 20.
)

// Winding is the direction a ProgressRing fills in.
type Winding uint8

const (
	Clockwise Winding = iota
	CounterClockwise
)

// RingStart is the point of a ProgressRing where the progress arc
// begins.
type RingStart uint8

const (
	StartTop RingStart = iota
	StartBottom
	StartLeft
	StartRight
)

// ProgressFormat selects how a ProgressRing prints its progress.
type ProgressFormat uint8

const (
	// FormatPercent prints the truncated percentage of Total.
	FormatPercent ProgressFormat = iota
	// FormatValue prints the truncated progress value.
	FormatValue
)

// ProgressRing draws progress as an arc over a background ring, with
// an optional label in the centre. It occupies the largest square that
// fits the constraints.
type ProgressRing struct {
	Color           color.NRGBA
	BackgroundColor color.NRGBA
	TextColor       color.NRGBA
	// Thickness of the rings. Zero selects a fifteenth of the side.
	Thickness unit.Dp
	// TextSize of the label. Zero scales the label with the side.
	TextSize unit.Sp
	// Text is the label template. Every ProgressPlaceholder in it is
	// replaced by the formatted progress; an empty Text prints the
	// progress alone.
	Text     string
	HideText bool
	Bold     bool
	// Total is the progress of a full ring. Zero means 100.
	Total float32
	// Progress is clamped to [0, Total].
	Progress float32
	Format   ProgressFormat
	Winding  Winding
	Start    RingStart
}

// Layout draws the ring. The theme supplies the label's shaper and may
// be nil when HideText is set.
func (r ProgressRing) Layout(gtx layout.Context, th *material.Theme) layout.Dimensions {
	side := min(gtx.Constraints.Max.X, gtx.Constraints.Max.Y)
	sz := gtx.Constraints.Constrain(image.Pt(side, side))
	side = min(sz.X, sz.Y)
	if side <= 0 {
		return layout.Dimensions{Size: sz}
	}
	s := float32(side)
	thick := float32(gtx.Dp(r.Thickness))
	if thick <= 0 {
		thick = s * ringThicknessScale
	}
	c := f32.Pt(s/2, s/2)
	radius := float64(s/2 - thick/2)
	if radius > 0 {
		r.stroke(gtx, r.BackgroundColor, c, radius, 0, 2*math.Pi, thick)
		if sweep := r.Sweep(); sweep != 0 {
			r.stroke(gtx, r.Color, c, radius, r.startAngle(), sweep, thick)
		}
	}
	if !r.HideText && th != nil {
		r.layoutLabel(gtx, th, side)
	}
	return layout.Dimensions{Size: sz}
}

func (r ProgressRing) stroke(gtx layout.Context, col color.NRGBA, c f32.Point, radius, start, sweep float64, width float32) {
	var p clip.Path
	p.Begin(gtx.Ops)
	p.MoveTo(c.Add(polar(radius, start)))
	arcTo(&p, c, radius, start, sweep)
	if math.Abs(sweep) >= 2*math.Pi {
		p.Close()
	}
	paint.FillShape(gtx.Ops, col, clip.Stroke{Path: p.End(), Width: width}.Op())
}

func (r ProgressRing) layoutLabel(gtx layout.Context, th *material.Theme, side int) {
	size := r.TextSize
	if size <= 0 {
		size = gtx.Metric.PxToSp(int(math.Round(float64(side) * ringTextScale)))
	}
	lbl := material.Label(th, size, r.Label())
	lbl.Color = r.TextColor
	lbl.Alignment = text.Middle
	lbl.MaxLines = 1
	if r.Bold {
		lbl.Font.Weight = font.Bold
	}
	gtx.Constraints = layout.Exact(image.Pt(side, side))
	layout.Center.Layout(gtx, lbl.Layout)
}

func (r ProgressRing) total() float32 {
	if r.Total <= 0 {
		return defaultTotal
	}
	return r.Total
}

// Value returns the progress clamped to [0, Total].
func (r ProgressRing) Value() float32 {
	return max(0, min(r.Progress, r.total()))
}

// Sweep returns the angle of the progress arc in radians. Positive
// angles run clockwise on screen.
func (r ProgressRing) Sweep() float64 {
	a := 2 * math.Pi * float64(r.Value()) / float64(r.total())
	if r.Winding == CounterClockwise {
		return -a
	}
	return a
}

// Label returns the text drawn in the centre of the ring.
func (r ProgressRing) Label() string {
	var v int
	switch r.Format {
	case FormatPercent:
		v = int(r.Value() * 100 / r.total())
	case FormatValue:
		v = int(r.Value())
	default:
		panic("unreachable")
	}
	s := strconv.Itoa(v)
	if r.Text == "" {
		return s
	}
	return strings.ReplaceAll(r.Text, ProgressPlaceholder, s)
}

// startAngle returns the angle of Start, measured clockwise from the
// positive x axis.
func (r ProgressRing) startAngle() float64 {
	switch r.Start {
	case StartTop:
		return -math.Pi / 2
	case StartBottom:
		return math.Pi / 2
	case StartLeft:
		return math.Pi
	case StartRight:
		return 0
	default:
		panic("unreachable")
	}
}

// polar returns the point at distance radius and angle a from the
// origin, with y pointing down.
func polar(radius, a float64) f32.Point {
	sin, cos := math.Sincos(a)
	return f32.Pt(float32(radius*cos), float32(radius*sin))
}

// arcTo extends p from the point at angle start along the circle
// around c, by sweep radians. The arc is split into quadratic curves
// whose control points lie where the tangents of their ends meet.
func arcTo(p *clip.Path, c f32.Point, radius, start, sweep float64) {
	n := int(math.Ceil(math.Abs(sweep) * radius / maxArcSegment))
	n = max(n, 4)
	step := sweep / float64(n)
	for i := 1; i <= n; i++ {
		mid := start + step*(float64(i)-.5)
		ctrl := polar(radius/math.Cos(step/2), mid)
		end := polar(radius, start+step*float64(i))
		p.QuadTo(c.Add(ctrl), c.Add(end))
	}
}

func (w Winding) String() string {
	switch w {
	case Clockwise:
		return "Clockwise"
	case CounterClockwise:
		return "CounterClockwise"
	default:
		panic("unreachable")
	}
}

func (s RingStart) String() string {
	switch s {
	case StartTop:
		return "StartTop"
	case StartBottom:
		return "StartBottom"
	case StartLeft:
		return "StartLeft"
	case StartRight:
		return "StartRight"
	default:
		panic("unreachable")
	}
}
