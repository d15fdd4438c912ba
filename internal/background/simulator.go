// Package background runs the particle network behind the page: it owns
// the particle field, sizes it to the viewport, and keeps one frame
// scheduled while mounted.
package background

import (
	"math/rand"

	"github.com/iburimskiy/particle-field/internal/particle"
)

// Host is the environment the simulator is mounted into.
type Host interface {
	Scheduler

	// Viewport returns the current viewport size in pixels.
	Viewport() (width, height int)

	// ScrollY returns the latest page scroll position. The simulator only
	// reads it.
	ScrollY() float64

	// OnResize registers fn for viewport size changes and returns a func
	// that removes it.
	OnResize(fn func(width, height int)) (remove func())
}

// Surface is the drawing target sized to the viewport.
type Surface interface {
	Resize(width, height int)

	// Canvas returns the drawing context, or nil when it is not available.
	Canvas() particle.Canvas

	// SetOffsetY moves the rendered surface vertically.
	SetOffsetY(y float64)
}

type Simulator struct {
	host    Host
	surface Surface
	rng     *rand.Rand

	field        *particle.Field
	frame        FrameID
	removeResize func()
	stats        particle.FrameStats
}

// New returns an unmounted simulator. surface may be nil, in which case
// Mount does nothing.
func New(host Host, surface Surface, rng *rand.Rand) *Simulator {
	return &Simulator{host: host, surface: surface, rng: rng}
}

// Mount sizes the surface to the viewport, seeds the particles and starts
// the frame loop. It does nothing if the drawing surface is unavailable or
// the simulator is already mounted.
func (s *Simulator) Mount() {
	if s.Mounted() || s.surface == nil || s.surface.Canvas() == nil {
		return
	}
	w, h := s.host.Viewport()
	s.removeResize = s.host.OnResize(s.resize)
	s.reset(w, h)
	s.schedule()
}

// Unmount stops the frame loop and drops the resize listener. Calling it
// again, or before Mount, is a no-op.
func (s *Simulator) Unmount() {
	s.cancel()
	if s.removeResize != nil {
		s.removeResize()
		s.removeResize = nil
	}
}

func (s *Simulator) Mounted() bool {
	return s.removeResize != nil
}

// Field returns the current particle field, nil before the first mount.
func (s *Simulator) Field() *particle.Field {
	return s.field
}

// Stats returns the counts drawn by the most recent frame.
func (s *Simulator) Stats() particle.FrameStats {
	return s.stats
}

// resize replaces the whole population for the new viewport. Degenerate
// sizes keep the current field.
func (s *Simulator) resize(width, height int) {
	if !s.Mounted() || width <= 0 || height <= 0 {
		return
	}
	s.cancel()
	s.reset(width, height)
	s.schedule()
}

func (s *Simulator) reset(width, height int) {
	if width <= 0 || height <= 0 {
		s.field = &particle.Field{}
		return
	}
	s.surface.Resize(width, height)
	s.field = particle.NewField(s.rng, width, height)
}

func (s *Simulator) step() {
	s.frame = 0
	c := s.surface.Canvas()
	if c == nil {
		// Surface detached since the last frame; keep waiting for it.
		s.schedule()
		return
	}
	s.stats = s.field.Frame(c)
	s.surface.SetOffsetY(particle.ParallaxOffset(s.host.ScrollY()))
	s.schedule()
}

func (s *Simulator) schedule() {
	s.frame = s.host.RequestFrame(s.step)
}

func (s *Simulator) cancel() {
	if s.frame != 0 {
		s.host.CancelFrame(s.frame)
		s.frame = 0
	}
}
