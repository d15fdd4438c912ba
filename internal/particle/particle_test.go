package particle

import (
	"image/color"
	"math"
	"math/rand"
	"testing"
)

func TestCount(t *testing.T) {
	tests := []struct {
		width int
		want  int
	}{
		{1600, 80},
		{400, 20},
		{3000, 80},
		{19, 0},
		{0, 0},
		{-50, 0},
	}
	for _, tt := range tests {
		if got := Count(tt.width); got != tt.want {
			t.Errorf("Count(%d): expected %d, got %d", tt.width, tt.want, got)
		}
	}
}

func TestSpawnRanges(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const w, h = 640.0, 480.0
	ps := Spawn(rng, w, h, 500)
	if len(ps) != 500 {
		t.Fatalf("Expected 500 particles, got %d", len(ps))
	}
	for i, p := range ps {
		if p.X < 0 || p.X >= w || p.Y < 0 || p.Y >= h {
			t.Errorf("particle %d: position (%v, %v) outside surface", i, p.X, p.Y)
		}
		if math.Abs(p.VX) > 0.25 || math.Abs(p.VY) > 0.25 {
			t.Errorf("particle %d: velocity (%v, %v) outside [-0.25, 0.25]", i, p.VX, p.VY)
		}
		if p.Radius < 1 || p.Radius >= 3 {
			t.Errorf("particle %d: radius %v outside [1, 3)", i, p.Radius)
		}
	}
}

func TestAdvanceBouncesOncePerCrossing(t *testing.T) {
	p := Particle{X: 99.9, Y: 50, VX: 0.25, VY: 0}
	p.Advance(100, 100)
	if p.VX != -0.25 {
		t.Fatalf("Expected vx flipped to -0.25 after crossing, got %v", p.VX)
	}
	if p.X <= 100 {
		t.Errorf("Expected position left outside bounds, got %v", p.X)
	}

	flips := 0
	prev := p.VX
	for i := 0; i < 100; i++ {
		p.Advance(100, 100)
		if p.VX != prev {
			flips++
			prev = p.VX
		}
	}
	if flips != 0 {
		t.Errorf("Expected no further flips after returning inside, got %d", flips)
	}
}

func TestAdvanceBouncesTopEdge(t *testing.T) {
	p := Particle{X: 10, Y: 0.1, VX: 0, VY: -0.2}
	p.Advance(100, 100)
	if p.VY != 0.2 {
		t.Errorf("Expected vy flipped to 0.2, got %v", p.VY)
	}
	if p.VX != 0 {
		t.Errorf("Expected vx untouched, got %v", p.VX)
	}
}

func TestLinkAlpha(t *testing.T) {
	if got := LinkAlpha(0); got != 0.2 {
		t.Errorf("Expected 0.2 at distance 0, got %v", got)
	}
	if got := LinkAlpha(150); got != 0 {
		t.Errorf("Expected 0 at distance 150, got %v", got)
	}
	if got := LinkAlpha(400); got != 0 {
		t.Errorf("Expected 0 beyond 150, got %v", got)
	}
	prev := LinkAlpha(0)
	for d := 1.0; d <= 150; d++ {
		a := LinkAlpha(d)
		if a > prev {
			t.Fatalf("Expected non-increasing alpha, got %v at %v after %v", a, d, prev)
		}
		prev = a
	}
	if got := LinkAlpha(75); math.Abs(got-0.1) > 1e-12 {
		t.Errorf("Expected 0.1 at distance 75, got %v", got)
	}
}

type line struct{ x0, y0, x1, y1 float64 }

type recordingCanvas struct {
	clears  int
	circles int
	lines   []line
	alphas  []uint8
}

func (c *recordingCanvas) Clear() { c.clears++ }

func (c *recordingCanvas) FillCircle(x, y, r float64, clr color.Color) { c.circles++ }

func (c *recordingCanvas) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	c.lines = append(c.lines, line{x0, y0, x1, y1})
	c.alphas = append(c.alphas, clr.(color.NRGBA).A)
}

func TestFrameLinksEachPairOnce(t *testing.T) {
	f := &Field{
		Width:  500,
		Height: 500,
		Particles: []Particle{
			{X: 100, Y: 100, Radius: 1},
			{X: 110, Y: 100, Radius: 1},
			{X: 100, Y: 130, Radius: 1},
			{X: 400, Y: 400, Radius: 1},
		},
	}
	c := &recordingCanvas{}
	stats := f.Frame(c)

	if c.clears != 1 {
		t.Errorf("Expected one clear per frame, got %d", c.clears)
	}
	if c.circles != 4 || stats.Particles != 4 {
		t.Errorf("Expected 4 circles, got %d (stats %d)", c.circles, stats.Particles)
	}
	if len(c.lines) != 3 || stats.Links != 3 {
		t.Fatalf("Expected 3 links among the close triple, got %d (stats %d)", len(c.lines), stats.Links)
	}
	seen := map[line]bool{}
	for _, l := range c.lines {
		rev := line{l.x1, l.y1, l.x0, l.y0}
		if seen[l] || seen[rev] {
			t.Errorf("Expected pair %+v drawn once", l)
		}
		seen[l] = true
	}
	// 10px apart links brighter than 30px apart
	if c.alphas[0] <= c.alphas[1] {
		t.Errorf("Expected closer link to be more opaque, got %d and %d", c.alphas[0], c.alphas[1])
	}
}

func TestFrameUsesMovedPositionForEarlierParticle(t *testing.T) {
	f := &Field{
		Width:  500,
		Height: 500,
		Particles: []Particle{
			{X: 100, Y: 100, VX: 0.2, Radius: 1},
			{X: 200, Y: 100, VX: 0.2, Radius: 1},
		},
	}
	c := &recordingCanvas{}
	f.Frame(c)
	if len(c.lines) != 1 {
		t.Fatalf("Expected 1 link, got %d", len(c.lines))
	}
	got := c.lines[0]
	if math.Abs(got.x0-100.2) > 1e-9 || got.x1 != 200 {
		t.Errorf("Expected link from 100.2 to 200, got %v to %v", got.x0, got.x1)
	}
}

func TestNewFieldReplacesPopulation(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	a := NewField(rng, 1600, 900)
	b := NewField(rng, 400, 900)
	if len(a.Particles) != 80 {
		t.Errorf("Expected 80 particles for width 1600, got %d", len(a.Particles))
	}
	if len(b.Particles) != 20 {
		t.Errorf("Expected 20 particles for width 400, got %d", len(b.Particles))
	}
	if &a.Particles[0] == &b.Particles[0] {
		t.Error("Expected a new backing slice")
	}
}

func TestParallaxOffset(t *testing.T) {
	tests := []struct {
		scroll float64
		want   float64
	}{
		{0, 0},
		{500, 150},
		{1000, 300},
		{2000, 300},
		{-100, 0},
	}
	for _, tt := range tests {
		if got := ParallaxOffset(tt.scroll); got != tt.want {
			t.Errorf("ParallaxOffset(%v): expected %v, got %v", tt.scroll, tt.want, got)
		}
	}
}

func TestLinearMapDegenerateInput(t *testing.T) {
	if got := LinearMap(5, 3, 3, 10, 20); got != 10 {
		t.Errorf("Expected out0 for empty input range, got %v", got)
	}
	if got := LinearMap(5, 10, 0, 0, 100); got != 50 {
		t.Errorf("Expected 50 for reversed input range, got %v", got)
	}
}
