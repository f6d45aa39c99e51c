// SPDX-License-Identifier: Unlicense OR MIT

package particle

import (
	"image"
	"image/color"
	"sync/atomic"
	"time"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	"golang.org/x/exp/rand"

	"github.com/widgetcollection/giox/anim"
)

// Diffuser is a widget animating a particle Field. It fills the
// available space and centres the field square within it.
//
// All methods except Refresh must be called from the goroutine that
// lays out the widget and drains the queue passed to Attach.
type Diffuser struct {
	// Color of the particles. The particle fade multiplies its alpha.
	Color color.NRGBA
	// InnerRadius of the spawn ring. Zero selects a quarter of the
	// field size.
	InnerRadius unit.Dp
	// Count of particles. The field holds Count+1 particles.
	Count int

	field  *Field
	ticker *anim.Ticker
	queue  atomic.Pointer[anim.Queue]

	// Inputs of the current field.
	built  bool
	size   image.Point
	radius float32
	count  int
}

// NewDiffuser returns a Diffuser of DefaultCount opaque white particles
// drawing randomness from rng.
func NewDiffuser(rng *rand.Rand) *Diffuser {
	return &Diffuser{
		Color: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Count: DefaultCount,
		field: NewField(rng),
	}
}

// Layout paints the current frame. The field is rebuilt when the
// available size, the inner radius or the count changed since the
// previous layout.
func (d *Diffuser) Layout(gtx layout.Context) layout.Dimensions {
	size := gtx.Constraints.Max
	radius := float32(gtx.Dp(d.InnerRadius))
	if !d.built || size != d.size || radius != d.radius || d.Count != d.count {
		d.reset(size, radius)
	}
	side := int(d.field.Geometry().Size)
	off := image.Pt((size.X-side)/2, (size.Y-side)/2)
	t := op.Offset(off).Push(gtx.Ops)
	d.field.Paint(gtx.Ops, d.Color)
	t.Pop()
	return layout.Dimensions{Size: size}
}

func (d *Diffuser) reset(size image.Point, radius float32) {
	d.built = true
	d.size, d.radius, d.count = size, radius, d.Count
	d.field.Reset(NewGeometry(size, radius), d.Count)
}

// SetInnerRadius changes the spawn ring radius and forces a rebuild on
// the next layout.
func (d *Diffuser) SetInnerRadius(r unit.Dp) {
	d.InnerRadius = r
	d.built = false
}

// Attach starts ticking the field through q at the given interval.
// Zero durations select the anim defaults. The cycle is nominal: every
// tick advances the particles by their own speed, so only the interval
// changes how fast they move. Attaching an attached Diffuser restarts
// its ticker.
func (d *Diffuser) Attach(q *anim.Queue, interval, cycle time.Duration) {
	d.Detach()
	d.queue.Store(q)
	d.ticker = anim.NewTicker(q, interval, cycle)
	d.ticker.Start(func(float32) {
		d.field.Tick()
	})
}

// Detach stops the ticker. No tick reaches the field after Detach
// returns, even if one was already queued.
func (d *Diffuser) Detach() {
	if d.ticker == nil {
		return
	}
	d.ticker.Stop()
	d.ticker = nil
	d.queue.Store(nil)
}

// Attached reports whether the Diffuser is ticking.
func (d *Diffuser) Attached() bool {
	return d.ticker != nil && d.ticker.Running()
}

// Refresh requests a rebuild of the field with the last laid out size.
// It may be called from any goroutine and returns immediately; the
// rebuild runs on the next drain of the attached queue. Refresh does
// nothing while detached.
func (d *Diffuser) Refresh() {
	q := d.queue.Load()
	if q == nil {
		return
	}
	q.Post(func() {
		if d.built {
			d.reset(d.size, d.radius)
		}
	})
}

// Field returns the simulated field.
func (d *Diffuser) Field() *Field {
	return d.field
}
