package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/particle-field/internal/config"
)

const (
	topFadeHeight = 128
	hudX          = 12
	hudY          = 12
	sparkWidth    = 240
	sparkHeight   = 40
)

// drawGrid paints the drifting grid that sits in the same parallax layer
// as the particles.
func (g *Game) drawGrid(screen *ebiten.Image, offsetY float64) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	clr := rgbA(config.Accent, config.GridOpacity*0.25)
	step := float64(config.GridSpacing)
	shift := math.Mod(g.gridPhase, step)

	for x := shift; x < float64(w); x += step {
		vector.StrokeLine(screen, float32(x), 0, float32(x), float32(h), 1, clr, false)
	}
	for y := math.Mod(shift+offsetY, step); y < float64(h); y += step {
		vector.StrokeLine(screen, 0, float32(y), float32(w), float32(y), 1, clr, false)
	}
}

// drawGradient fades the backdrop into the page colour: a short fade from
// the top edge and a fade over the lower half toward the bottom.
func (g *Game) drawGradient(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	if g.gradient == nil || g.gradient.Bounds().Dx() != w || g.gradient.Bounds().Dy() != h {
		if g.gradient != nil {
			g.gradient.Deallocate()
		}
		g.gradient = buildGradient(w, h)
	}
	screen.DrawImage(g.gradient, nil)
}

func buildGradient(w, h int) *ebiten.Image {
	img := ebiten.NewImage(w, h)
	for y := 0; y < h; y++ {
		ratio := float64(y) / float64(h)
		// transparent at the top, half at the middle, opaque at the bottom
		alpha := ratio
		if y < topFadeHeight {
			alpha = math.Max(alpha, 1-float64(y)/topFadeHeight)
		}
		vector.DrawFilledRect(img, 0, float32(y), float32(w), 1, rgbA(config.Background, alpha), false)
	}
	return img
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	stats := g.sim.Stats()
	offset := g.surface.offsetY
	lines := fmt.Sprintf(
		"particles: %d  links: %d\nscroll: %.0f / %.0f  offset: %.1f\nTPS: %.1f  FPS: %.1f",
		stats.Particles, stats.Links,
		g.scrollY, g.maxScroll(), offset,
		ebiten.ActualTPS(), ebiten.ActualFPS(),
	)
	ebitenutil.DebugPrintAt(screen, lines, hudX, hudY)
	g.drawHistory(screen, hudX, hudY+56)
}

// drawHistory plots recent link counts as a line scaled to the largest
// value in view.
func (g *Game) drawHistory(screen *ebiten.Image, x, y int) {
	vector.DrawFilledRect(screen, float32(x), float32(y), sparkWidth, sparkHeight, color.NRGBA{R: 20, G: 25, B: 35, A: 200}, false)
	vector.StrokeRect(screen, float32(x), float32(y), sparkWidth, sparkHeight, 1, color.NRGBA{R: 60, G: 70, B: 90, A: 255}, false)

	values := g.history.snapshot(sparkWidth)
	if len(values) < 2 {
		return
	}
	peak := 1
	for _, v := range values {
		peak = max(peak, v)
	}
	clr := rgbA(config.Accent, 0.9)
	stepX := float64(sparkWidth) / float64(len(values)-1)
	plot := func(i int) (float32, float32) {
		px := float64(x) + float64(i)*stepX
		py := float64(y+sparkHeight) - float64(values[i])/float64(peak)*float64(sparkHeight-4)
		return float32(px), float32(py)
	}
	for i := 1; i < len(values); i++ {
		x0, y0 := plot(i - 1)
		x1, y1 := plot(i)
		vector.StrokeLine(screen, x0, y0, x1, y1, 1, clr, false)
	}
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	status := ""
	if g.paused {
		status = "Paused - P to resume"
	}
	if g.lastErr != nil {
		if status != "" {
			status += " | "
		}
		status += "Error: " + g.lastErr.Error()
	}
	if status == "" {
		return
	}
	ebitenutil.DebugPrintAt(screen, status, hudX, screen.Bounds().Dy()-24)
}
