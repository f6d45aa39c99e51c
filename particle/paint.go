// SPDX-License-Identifier: Unlicense OR MIT

package particle

import (
	"image/color"
	"math"

	"gioui.org/f32"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"

	"github.com/widgetcollection/giox/internal/colorutil"
)

// Paint draws the particles as filled circles of col, faded by their
// Alpha. Nothing is drawn during warm-up.
func (f *Field) Paint(ops *op.Ops, col color.NRGBA) {
	if !f.Visible() || f.radius <= 0 {
		return
	}
	for _, p := range f.particles {
		a := Alpha(p)
		if a == 0 {
			continue
		}
		paint.FillShape(ops, colorutil.MulAlpha(col, a), circle(ops, p.Pos, f.radius))
	}
}

func circle(ops *op.Ops, c f32.Point, r float32) clip.Op {
	var p clip.Path
	p.Begin(ops)
	p.MoveTo(f32.Pt(c.X+r, c.Y))
	p.ArcTo(c, c, 2*math.Pi)
	p.Close()
	return clip.Outline{Path: p.End()}.Op()
}
