package particle

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/iburimskiy/particle-field/internal/config"
)

// Canvas is the 2D drawing context a Field renders into.
type Canvas interface {
	Clear()
	FillCircle(x, y, r float64, clr color.Color)
	StrokeLine(x0, y0, x1, y1, width float64, clr color.Color)
}

// Field is the particle population of one surface size.
type Field struct {
	Width, Height float64
	Particles     []Particle
}

// FrameStats counts what a single Frame drew.
type FrameStats struct {
	Particles int
	Links     int
}

// NewField builds a fresh population for a width x height surface.
func NewField(rng *rand.Rand, width, height int) *Field {
	w, h := float64(width), float64(height)
	return &Field{
		Width:     w,
		Height:    h,
		Particles: Spawn(rng, w, h, Count(width)),
	}
}

// LinkAlpha returns the opacity of a connection line between two particles
// that are d pixels apart.
func LinkAlpha(d float64) float64 {
	if d >= config.LinkDistance || d < 0 {
		return 0
	}
	return config.LinkMaxAlpha * (1 - d/config.LinkDistance)
}

// Frame advances and draws every particle in slice order. After particle i
// is moved and drawn, it is linked to each j > i within LinkDistance, so
// every unordered pair is examined once. Particles later in the slice are
// still at their previous position when i links to them.
func (f *Field) Frame(c Canvas) FrameStats {
	var stats FrameStats
	c.Clear()

	dot := accent(config.ParticleAlpha)
	for i := range f.Particles {
		p := &f.Particles[i]
		p.Advance(f.Width, f.Height)
		c.FillCircle(p.X, p.Y, p.Radius, dot)
		stats.Particles++

		for j := i + 1; j < len(f.Particles); j++ {
			o := &f.Particles[j]
			d := math.Hypot(p.X-o.X, p.Y-o.Y)
			if d >= config.LinkDistance {
				continue
			}
			c.StrokeLine(p.X, p.Y, o.X, o.Y, config.LinkWidth, accent(LinkAlpha(d)))
			stats.Links++
		}
	}
	return stats
}

func accent(alpha float64) color.NRGBA {
	return color.NRGBA{
		R: config.Accent[0],
		G: config.Accent[1],
		B: config.Accent[2],
		A: uint8(math.Round(clamp01(alpha) * 255)),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
