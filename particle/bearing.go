// SPDX-License-Identifier: Unlicense OR MIT

package particle

import "math"

// Bearing returns the clockwise angle in radians, in [0, 2π), of the
// vector (dx, dy) measured from the positive x axis. The vector is in
// y-up coordinates: (0, 1) points up and has bearing 3π/2. The zero
// vector has bearing 0.
//
// Interpreted in y-down screen space, (cos b, sin b) points the same
// way as (dx, -dy).
func Bearing(dx, dy float64) float64 {
	if dx == 0 && dy == 0 {
		return 0
	}
	b := -math.Atan2(dy, dx)
	if b < 0 {
		b += 2 * math.Pi
	}
	if b >= 2*math.Pi {
		b = 0
	}
	return b
}
