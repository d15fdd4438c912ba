// Package particle simulates the drifting points of the background network
// and draws them, with their connection lines, onto a Canvas.
package particle

import (
	"math/rand"

	"github.com/iburimskiy/particle-field/internal/config"
)

// Particle is a point moving at constant speed that bounces off the
// surface edges.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Radius float64
}

// Count returns how many particles a viewport of the given width gets.
func Count(viewportWidth int) int {
	if viewportWidth <= 0 {
		return 0
	}
	return min(config.MaxParticles, viewportWidth/config.WidthPerParticle)
}

// Spawn creates n particles placed uniformly within width x height.
func Spawn(rng *rand.Rand, width, height float64, n int) []Particle {
	ps := make([]Particle, n)
	for i := range ps {
		ps[i] = Particle{
			X:      rng.Float64() * width,
			Y:      rng.Float64() * height,
			VX:     (rng.Float64() - 0.5) * 2 * config.MaxSpeed,
			VY:     (rng.Float64() - 0.5) * 2 * config.MaxSpeed,
			Radius: config.MinRadius + rng.Float64()*(config.MaxRadius-config.MinRadius),
		}
	}
	return ps
}

// Advance moves p by one frame of velocity. A coordinate that ends up
// outside [0, width] or [0, height] has its velocity component inverted;
// the position itself is left where it is.
func (p *Particle) Advance(width, height float64) {
	p.X += p.VX
	p.Y += p.VY

	if p.X < 0 || p.X > width {
		p.VX = -p.VX
	}
	if p.Y < 0 || p.Y > height {
		p.VY = -p.VY
	}
}
