package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/particle-field/internal/particle"
)

// layerSurface is the offscreen image the particle network is painted on.
// It is composited onto the screen at its parallax offset.
type layerSurface struct {
	img     *ebiten.Image
	offsetY float64
}

func newLayerSurface(width, height int) *layerSurface {
	s := &layerSurface{}
	s.Resize(width, height)
	return s
}

func (s *layerSurface) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if s.img != nil {
		if b := s.img.Bounds(); b.Dx() == width && b.Dy() == height {
			return
		}
		s.img.Deallocate()
	}
	s.img = ebiten.NewImage(width, height)
}

func (s *layerSurface) Canvas() particle.Canvas {
	if s.img == nil {
		return nil
	}
	return imageCanvas{s.img}
}

func (s *layerSurface) SetOffsetY(y float64) { s.offsetY = y }

func (s *layerSurface) draw(screen *ebiten.Image, opacity float64) {
	if s.img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, s.offsetY)
	op.ColorScale.ScaleAlpha(float32(opacity))
	screen.DrawImage(s.img, op)
}

type imageCanvas struct {
	img *ebiten.Image
}

func (c imageCanvas) Clear() { c.img.Clear() }

func (c imageCanvas) FillCircle(x, y, r float64, clr color.Color) {
	vector.DrawFilledCircle(c.img, float32(x), float32(y), float32(r), clr, true)
}

func (c imageCanvas) StrokeLine(x0, y0, x1, y1, width float64, clr color.Color) {
	vector.StrokeLine(c.img, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), clr, true)
}
