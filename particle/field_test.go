// SPDX-License-Identifier: Unlicense OR MIT

package particle

import (
	"image"
	"math"
	"testing"

	"gioui.org/f32"
	"golang.org/x/exp/rand"
)

func newTestField(seed uint64) *Field {
	return NewField(rand.New(rand.NewSource(seed)))
}

func near(a, b, eps float32) bool {
	return float32(math.Abs(float64(a-b))) <= eps
}

func nearAngle(a, b float64) bool {
	d := math.Mod(math.Abs(a-b), 2*math.Pi)
	return min(d, 2*math.Pi-d) < 1e-4
}

func TestNewGeometry(t *testing.T) {
	tests := []struct {
		size  image.Point
		inner float32
		want  Geometry
	}{
		{image.Pt(200, 200), 0, Geometry{Size: 200, InnerRadius: 50, RingThickness: 50}},
		{image.Pt(300, 200), 0, Geometry{Size: 200, InnerRadius: 50, RingThickness: 50}},
		{image.Pt(200, 200), 30, Geometry{Size: 200, InnerRadius: 30, RingThickness: 70}},
		{image.Pt(200, 200), 150, Geometry{Size: 200, InnerRadius: 150, RingThickness: 0}},
		{image.Pt(0, 0), 0, Geometry{}},
	}
	for _, tc := range tests {
		if got := NewGeometry(tc.size, tc.inner); got != tc.want {
			t.Errorf("NewGeometry(%v, %v) = %+v, want %+v", tc.size, tc.inner, got, tc.want)
		}
	}
}

func TestPointAt(t *testing.T) {
	g := NewGeometry(image.Pt(200, 200), 0)
	if got, want := g.PointAt(0, 10), f32.Pt(160, 100); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got := g.PointAt(math.Pi/2, 0); !near(got.X, 100, 1e-3) || !near(got.Y, 150, 1e-3) {
		t.Errorf("angle π/2 points to %v, want (100, 150)", got)
	}
}

func TestRingSamples(t *testing.T) {
	r := ring{center: f32.Pt(100, 100), radius: 50}
	want := []f32.Point{
		{X: 150, Y: 100},
		{X: 100, Y: 50},
		{X: 50, Y: 100},
		{X: 100, Y: 150},
		{X: 150, Y: 100},
	}
	for i, w := range want {
		got := r.at(float32(i) / 4 * r.length())
		if !near(got.X, w.X, 1e-3) || !near(got.Y, w.Y, 1e-3) {
			t.Errorf("sample %d: got %v, want %v", i, got, w)
		}
	}
}

func TestResetSpawnsOnRing(t *testing.T) {
	f := newTestField(1)
	g := NewGeometry(image.Pt(200, 200), 0)
	f.Reset(g, 4)
	ps := f.Particles()
	if len(ps) != 5 {
		t.Fatalf("got %d particles, want 5", len(ps))
	}
	jitter := float32(jitterScale*200) + 1e-3
	ring := []f32.Point{{X: 150, Y: 100}, {X: 100, Y: 50}, {X: 50, Y: 100}, {X: 100, Y: 150}, {X: 150, Y: 100}}
	angles := []float64{0, 3 * math.Pi / 2, math.Pi, math.Pi / 2, 0}
	slowest := speedScale * g.Size
	for i, p := range ps {
		if !near(p.Pos.X, ring[i].X, jitter) || !near(p.Pos.Y, ring[i].Y, jitter) {
			t.Errorf("particle %d at %v, too far from %v", i, p.Pos, ring[i])
		}
		if !nearAngle(p.Angle, angles[i]) {
			t.Errorf("particle %d: angle %v, want %v", i, p.Angle, angles[i])
		}
		if p.Offset != 0 {
			t.Errorf("particle %d: offset %v, want 0", i, p.Offset)
		}
		if p.MaxOffset < 0 || p.MaxOffset >= g.RingThickness || p.MaxOffset != float32(int(p.MaxOffset)) {
			t.Errorf("particle %d: max offset %v not an integer in [0, %v)", i, p.MaxOffset, g.RingThickness)
		}
		if p.Speed < slowest || p.Speed >= 2*slowest {
			t.Errorf("particle %d: speed %v outside [%v, %v)", i, p.Speed, slowest, 2*slowest)
		}
	}
	if f.Ticks() != 0 {
		t.Errorf("ticks = %d after Reset", f.Ticks())
	}
}

func TestWarmup(t *testing.T) {
	f := newTestField(1)
	f.Reset(NewGeometry(image.Pt(200, 200), 0), 10)
	// 50 / 0.3
	if got := f.Warmup(); got != 166 {
		t.Fatalf("warmup = %d, want 166", got)
	}
	for i := 0; i < 166; i++ {
		if f.Visible() {
			t.Fatalf("visible after %d ticks", i)
		}
		f.Tick()
	}
	if !f.Visible() {
		t.Error("not visible after warm-up")
	}
	f.Reset(f.Geometry(), 10)
	if f.Visible() {
		t.Error("Reset did not restart warm-up")
	}
}

func TestOffsetInvariant(t *testing.T) {
	f := newTestField(42)
	g := NewGeometry(image.Pt(320, 240), 0)
	f.Reset(g, 200)
	for tick := 0; tick < 2000; tick++ {
		f.Tick()
		for i, p := range f.Particles() {
			if p.Offset < 0 || p.Offset > p.MaxOffset || p.MaxOffset > g.RingThickness {
				t.Fatalf("tick %d: particle %d violates 0 <= %v <= %v <= %v",
					tick, i, p.Offset, p.MaxOffset, g.RingThickness)
			}
		}
	}
	if got, want := len(f.Particles()), 201; got != want {
		t.Errorf("particle count changed to %d, want %d", got, want)
	}
}

func TestTickMoves(t *testing.T) {
	f := newTestField(3)
	g := NewGeometry(image.Pt(200, 200), 0)
	f.Reset(g, 4)
	p := &f.Particles()[1]
	p.Offset, p.MaxOffset = 10, 40
	angle, speed := p.Angle, p.Speed
	f.Tick()
	if p.Angle != angle {
		t.Errorf("angle changed while travelling")
	}
	if got, want := p.Offset, 10+speed; got != want {
		t.Errorf("offset = %v, want %v", got, want)
	}
	if got, want := p.Pos, g.PointAt(angle, 10+speed); got != want {
		t.Errorf("position = %v, want %v", got, want)
	}

	// Travel is capped at the maximum offset.
	p.Offset = 39.9
	f.Tick()
	if p.Offset != 40 {
		t.Errorf("offset = %v, want 40", p.Offset)
	}
}

func TestRespawn(t *testing.T) {
	f := newTestField(5)
	g := NewGeometry(image.Pt(200, 200), 0)
	f.Reset(g, 8)
	p := &f.Particles()[0]
	p.MaxOffset = 12
	p.Offset = 12
	f.Tick()
	if p.Offset != 0 {
		t.Errorf("offset after respawn = %v, want 0", p.Offset)
	}
	if p.MaxOffset < 0 || p.MaxOffset >= g.RingThickness {
		t.Errorf("max offset after respawn = %v", p.MaxOffset)
	}
	// The new direction points away from the centre through the spawn
	// point, up to jitter.
	c := g.Center()
	dir := f32.Pt(float32(math.Cos(p.Angle)), float32(math.Sin(p.Angle)))
	spawn := c.Add(dir.Mul(g.InnerRadius))
	jitter := float32(jitterScale*200) + 1e-3
	if !near(p.Pos.X, spawn.X, jitter) || !near(p.Pos.Y, spawn.Y, jitter) {
		t.Errorf("respawned at %v, too far from %v", p.Pos, spawn)
	}
}

func TestEmptyField(t *testing.T) {
	f := newTestField(1)
	f.Reset(NewGeometry(image.Pt(200, 200), 0), 0)
	if n := len(f.Particles()); n != 0 {
		t.Errorf("got %d particles, want 0", n)
	}
	f.Tick()
	if f.Ticks() != 1 {
		t.Errorf("ticks = %d, want 1", f.Ticks())
	}

	// A degenerate geometry respawns in place every tick.
	f.Reset(NewGeometry(image.Pt(0, 0), 0), 3)
	for i := 0; i < 3; i++ {
		f.Tick()
	}
	for _, p := range f.Particles() {
		if p.Offset != 0 || p.MaxOffset != 0 {
			t.Errorf("degenerate particle %+v", p)
		}
	}
}

func TestDeterminism(t *testing.T) {
	g := NewGeometry(image.Pt(200, 200), 0)
	a, b := newTestField(7), newTestField(7)
	a.Reset(g, 50)
	b.Reset(g, 50)
	for i := 0; i < 300; i++ {
		a.Tick()
		b.Tick()
	}
	pa, pb := a.Particles(), b.Particles()
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatalf("particle %d diverged: %+v != %+v", i, pa[i], pb[i])
		}
	}
}

func TestAlpha(t *testing.T) {
	tests := []struct {
		p    Particle
		want uint8
	}{
		{Particle{Offset: 0, MaxOffset: 10}, 255},
		{Particle{Offset: 10, MaxOffset: 10}, 0},
		{Particle{Offset: 5, MaxOffset: 10}, 128},
		{Particle{Offset: 12, MaxOffset: 10}, 0},
		{Particle{Offset: 0, MaxOffset: 0}, 0},
	}
	for _, tc := range tests {
		if got := Alpha(tc.p); got != tc.want {
			t.Errorf("Alpha(%+v) = %d, want %d", tc.p, got, tc.want)
		}
	}
}

func TestTickAllocs(t *testing.T) {
	f := newTestField(1)
	f.Reset(NewGeometry(image.Pt(400, 400), 0), DefaultCount)
	if a := testing.AllocsPerRun(100, f.Tick); a > 0 {
		t.Errorf("Tick allocated %v times", a)
	}
}

func TestResetReusesStorage(t *testing.T) {
	f := newTestField(1)
	g := NewGeometry(image.Pt(400, 400), 0)
	f.Reset(g, 100)
	if a := testing.AllocsPerRun(10, func() { f.Reset(g, 100) }); a > 0 {
		t.Errorf("Reset allocated %v times", a)
	}
}

func BenchmarkTick(b *testing.B) {
	f := newTestField(1)
	f.Reset(NewGeometry(image.Pt(1000, 1000), 0), DefaultCount)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Tick()
	}
}
