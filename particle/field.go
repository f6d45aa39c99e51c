// SPDX-License-Identifier: Unlicense OR MIT

// Package particle implements a particle diffusion animation: particles
// spawn on an inner ring and drift radially outward, fading as they go,
// until they respawn at a random point of the ring.
package particle

import (
	"image"
	"math"

	"gioui.org/f32"
	"golang.org/x/exp/rand"
)

// DefaultCount is the particle count used when none is configured.
const DefaultCount = 2000

// Quantities proportional to the field size.
const (
	radiusScale  = 1.7e-3
	speedScale   = 1.5e-3
	jitterScale  = 9.6e-3
	autoInnerDiv = 4
)

// Geometry describes the square area a Field animates in.
type Geometry struct {
	// Size is the side of the square.
	Size float32
	// InnerRadius is the radius of the spawn ring.
	InnerRadius float32
	// RingThickness is the distance between the spawn ring and the
	// edge of the square.
	RingThickness float32
}

// Particle is the state of a single particle.
type Particle struct {
	Pos f32.Point
	// Speed is the radial distance travelled per tick.
	Speed float32
	// Angle is the direction of travel in radians, clockwise from the
	// positive x axis in screen space.
	Angle float64
	// Offset is the distance travelled past the spawn ring.
	Offset float32
	// MaxOffset is the distance at which the particle respawns.
	MaxOffset float32
}

// Field is a particle diffusion simulation. It is not safe for
// concurrent use.
type Field struct {
	rng *rand.Rand

	geom      Geometry
	spawn     ring
	particles []Particle

	slowest float32
	jitter  float32
	radius  float32

	ticks  int
	warmup int
}

// NewGeometry returns the geometry for an area of the given size. The
// field occupies the largest centred square. A zero innerRadius selects
// a quarter of the square's side.
func NewGeometry(size image.Point, innerRadius float32) Geometry {
	s := float32(max(min(size.X, size.Y), 0))
	r := innerRadius
	if r <= 0 {
		r = s / autoInnerDiv
	}
	return Geometry{
		Size:          s,
		InnerRadius:   r,
		RingThickness: max(s/2-r, 0),
	}
}

// Center returns the centre of the field square.
func (g Geometry) Center() f32.Point {
	return f32.Pt(g.Size/2, g.Size/2)
}

// PointAt returns the point at distance offset past the spawn ring in
// the direction angle.
func (g Geometry) PointAt(angle float64, offset float32) f32.Point {
	c := g.Center()
	d := g.InnerRadius + offset
	sin, cos := math.Sincos(angle)
	return f32.Pt(c.X+d*float32(cos), c.Y+d*float32(sin))
}

// NewField returns an empty field drawing randomness from rng.
func NewField(rng *rand.Rand) *Field {
	return &Field{rng: rng}
}

// Reset rebuilds the field for geometry g. Particles are spawned at
// count+1 evenly spaced points of the spawn ring, the first and last
// coinciding. A count of zero or less leaves the field empty.
func (f *Field) Reset(g Geometry, count int) {
	f.geom = g
	f.spawn = ring{center: g.Center(), radius: g.InnerRadius}
	f.slowest = speedScale * g.Size
	f.jitter = jitterScale * g.Size
	f.radius = radiusScale * g.Size

	f.particles = f.particles[:0]
	if count > 0 {
		if cap(f.particles) < count+1 {
			f.particles = make([]Particle, 0, count+1)
		}
		length := f.spawn.length()
		for i := 0; i <= count; i++ {
			var p Particle
			f.respawn(&p, f.spawn.at(float32(i)/float32(count)*length))
			f.particles = append(f.particles, p)
		}
	}

	f.ticks = 0
	f.warmup = 0
	if f.slowest > 0 {
		f.warmup = int(g.RingThickness / f.slowest)
	}
}

// Tick advances the simulation one step. Particles that reached their
// maximum offset respawn at a random point of the spawn ring; the
// others move outward by their speed.
func (f *Field) Tick() {
	for i := range f.particles {
		p := &f.particles[i]
		if p.Offset >= p.MaxOffset {
			f.respawn(p, f.spawn.at(f.rng.Float32()*f.spawn.length()))
			continue
		}
		p.Offset = min(p.Offset+p.Speed, p.MaxOffset)
		p.Pos = f.geom.PointAt(p.Angle, p.Offset)
	}
	f.ticks++
}

// respawn starts p over from the spawn point at. The direction of
// travel points away from the field centre through at.
func (f *Field) respawn(p *Particle, at f32.Point) {
	c := f.spawn.center
	p.Angle = Bearing(float64(at.X-c.X), float64(c.Y-at.Y))
	p.Speed = f.slowest + f.rng.Float32()*f.slowest
	p.Offset = 0
	p.MaxOffset = 0
	if n := int(f.geom.RingThickness); n > 0 {
		p.MaxOffset = float32(f.rng.Intn(n))
	}
	p.Pos = f32.Pt(at.X+f.jitterDelta(), at.Y+f.jitterDelta())
}

// jitterDelta returns a uniform value in [-jitter, jitter).
func (f *Field) jitterDelta() float32 {
	return (2*f.rng.Float32() - 1) * f.jitter
}

// Visible reports whether the warm-up period has passed.
func (f *Field) Visible() bool {
	return f.ticks >= f.warmup
}

// Ticks returns the number of ticks since the last Reset.
func (f *Field) Ticks() int {
	return f.ticks
}

// Warmup returns the number of ticks after Reset before the field is
// drawn.
func (f *Field) Warmup() int {
	return f.warmup
}

// Geometry returns the geometry of the last Reset.
func (f *Field) Geometry() Geometry {
	return f.geom
}

// Particles returns the particle state. The slice is owned by the field
// and is only valid until the next Tick or Reset.
func (f *Field) Particles() []Particle {
	return f.particles
}

// ParticleRadius returns the radius particles are painted with.
func (f *Field) ParticleRadius() float32 {
	return f.radius
}

// Alpha returns the opacity of p. Particles fade linearly from opaque
// at the spawn ring to transparent at their maximum offset.
func Alpha(p Particle) uint8 {
	if p.MaxOffset <= 0 {
		return 0
	}
	a := math.Round(255 * (1 - float64(p.Offset)/float64(p.MaxOffset)))
	return uint8(max(0, min(255, a)))
}
