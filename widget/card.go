// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"

	"github.com/widgetcollection/giox/internal/colorutil"
)

// shadowLayers is the maximum number of rounded rectangles a Card
// shadow is drawn with.
const shadowLayers = 8

// Card lays out a single child on a rounded rectangle with a soft drop
// shadow. The child is inset by the shadow radius on every side so the
// shadow fits inside the card's dimensions.
type Card struct {
	Color        color.NRGBA
	ShadowColor  color.NRGBA
	CornerRadius unit.Dp
	ShadowRadius unit.Dp
	// ShadowOffset shifts the shadow relative to the card body.
	ShadowOffsetX, ShadowOffsetY unit.Dp
	DisableShadow                bool
	// Margin surrounds the child inside the card body.
	Margin layout.Inset
}

// Layout lays out the child, if any. Cards take at most one child.
func (c Card) Layout(gtx layout.Context, children ...layout.Widget) layout.Dimensions {
	if len(children) > 1 {
		panic("widget: Card accepts at most one child")
	}
	if len(children) == 0 {
		return layout.Dimensions{Size: gtx.Constraints.Min}
	}
	var sr unit.Dp
	if !c.DisableShadow {
		sr = c.ShadowRadius
	}
	inset := layout.Inset{
		Top:    c.Margin.Top + sr,
		Bottom: c.Margin.Bottom + sr,
		Left:   c.Margin.Left + sr,
		Right:  c.Margin.Right + sr,
	}
	macro := op.Record(gtx.Ops)
	dims := inset.Layout(gtx, children[0])
	call := macro.Stop()

	if dims.Size.X > 0 && dims.Size.Y > 0 {
		r := gtx.Dp(sr)
		body := image.Rectangle{Min: image.Pt(r, r), Max: dims.Size.Sub(image.Pt(r, r))}
		rr := gtx.Dp(c.CornerRadius)
		if r > 0 {
			off := image.Pt(gtx.Dp(c.ShadowOffsetX), gtx.Dp(c.ShadowOffsetY))
			shadow := body.Add(off)
			layoutShadow(gtx, c.ShadowColor, r, func(grow int) clip.Op {
				return clip.UniformRRect(shadow.Inset(-grow), rr+grow).Op(gtx.Ops)
			})
		}
		paint.FillShape(gtx.Ops, c.Color, clip.UniformRRect(body, rr).Op(gtx.Ops))
	}
	call.Add(gtx.Ops)
	return dims
}

// layoutShadow approximates a blurred shadow by stacking translucent
// copies of a shape grown by up to radius pixels, from the outermost
// inwards.
func layoutShadow(gtx layout.Context, col color.NRGBA, radius int, shape func(grow int) clip.Op) {
	n := min(radius, shadowLayers)
	col = colorutil.MulAlpha(col, uint8(0xFF/(n+1)))
	for i := n; i >= 1; i-- {
		paint.FillShape(gtx.Ops, col, shape(radius*i/n))
	}
}
