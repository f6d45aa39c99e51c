// SPDX-License-Identifier: Unlicense OR MIT

package particle

import (
	"math"

	"gioui.org/f32"
)

// ring is the circle particles spawn on. Arc length is measured from
// the rightmost point, travelling counter-clockwise as seen on screen.
type ring struct {
	center f32.Point
	radius float32
}

func (r ring) length() float32 {
	return 2 * math.Pi * r.radius
}

// at returns the point at arc length d along the ring.
func (r ring) at(d float32) f32.Point {
	if r.radius <= 0 {
		return r.center
	}
	sin, cos := math.Sincos(float64(d / r.radius))
	return f32.Pt(
		r.center.X+r.radius*float32(cos),
		r.center.Y-r.radius*float32(sin),
	)
}
