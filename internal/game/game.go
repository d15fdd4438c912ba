// Package game hosts the particle network in an Ebitengine window: it
// supplies the viewport, scroll signal and frame schedule, and composites
// the particle layer with the page overlays.
package game

import (
	"image"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/particle-field/internal/background"
	"github.com/iburimskiy/particle-field/internal/config"
)

// Game implements ebiten.Game and background.Host.
type Game struct {
	settings *config.Settings
	rng      *rand.Rand

	// host
	frames       *background.FrameQueue
	width        int
	height       int
	layoutW      int
	layoutH      int
	scrollY      float64
	listeners    map[int]func(width, height int)
	nextListener int

	// viz
	sim       *background.Simulator
	surface   *layerSurface
	gradient  *ebiten.Image
	history   *frameTap
	gridPhase float64

	// state
	paused      bool
	showGrid    bool
	showHUD     bool
	captureNext bool
	snapshot    *image.RGBA
	lastErr     error
}

func NewGame(settings *config.Settings, rng *rand.Rand) *Game {
	return &Game{
		settings:  settings,
		rng:       rng,
		frames:    background.NewFrameQueue(),
		width:     settings.WindowWidth,
		height:    settings.WindowHeight,
		listeners: map[int]func(int, int){},
		history:   newFrameTap(config.HistorySize),
		showGrid:  settings.ShowGrid,
		showHUD:   settings.ShowHUD,
	}
}

func (g *Game) RequestFrame(fn func()) background.FrameID { return g.frames.RequestFrame(fn) }

func (g *Game) CancelFrame(id background.FrameID) { g.frames.CancelFrame(id) }

func (g *Game) Viewport() (int, int) { return g.width, g.height }

func (g *Game) ScrollY() float64 { return g.scrollY }

func (g *Game) OnResize(fn func(width, height int)) func() {
	g.nextListener++
	id := g.nextListener
	g.listeners[id] = fn
	return func() { delete(g.listeners, id) }
}

// mount creates the particle layer once the first layout size is known.
func (g *Game) mount() {
	g.surface = newLayerSurface(g.width, g.height)
	g.sim = background.New(g, g.surface, g.rng)
	g.sim.Mount()
	if !g.sim.Mounted() {
		log.Printf("particle field not mounted: no drawing surface at %dx%d", g.width, g.height)
		return
	}
	log.Printf("particle field mounted at %dx%d with %d particles", g.width, g.height, len(g.sim.Field().Particles))
}

// Close stops the frame loop and releases the resize listener.
func (g *Game) Close() {
	if g.sim != nil {
		g.sim.Unmount()
	}
}

func (g *Game) Update() error {
	g.applyLayout()
	if g.sim == nil {
		g.mount()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.Close()
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.showGrid = !g.showGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.captureNext = true
	}
	g.updateScroll()

	if g.snapshot != nil {
		img := g.snapshot
		g.snapshot = nil
		path, err := saveSnapshotDialog(img)
		g.lastErr = err
		if err == nil && path != "" {
			log.Printf("screenshot saved to %s", path)
		}
	}

	if g.paused {
		return nil
	}
	g.gridPhase += config.GridDriftSpeed
	if g.frames.Tick() > 0 {
		g.history.record(g.sim.Stats().Links)
	}
	return nil
}

// applyLayout notifies resize listeners when the outside size changed
// since the last tick. Empty layouts, as reported while minimised, are
// ignored.
func (g *Game) applyLayout() {
	if g.layoutW <= 0 || g.layoutH <= 0 {
		return
	}
	if g.layoutW == g.width && g.layoutH == g.height {
		return
	}
	g.width, g.height = g.layoutW, g.layoutH
	g.scrollY = clampRange(g.scrollY, 0, g.maxScroll())
	for _, fn := range g.listeners {
		fn(g.width, g.height)
	}
}

func (g *Game) maxScroll() float64 {
	return float64(g.settings.PageHeight - g.height)
}

func (g *Game) updateScroll() {
	step := g.settings.ScrollStep
	_, wheel := ebiten.Wheel()
	delta := -wheel * step

	switch {
	case repeating(ebiten.KeyArrowDown):
		delta += step
	case repeating(ebiten.KeyArrowUp):
		delta -= step
	case repeating(ebiten.KeyPageDown), repeating(ebiten.KeySpace):
		delta += float64(g.height) * 0.9
	case repeating(ebiten.KeyPageUp):
		delta -= float64(g.height) * 0.9
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		delta = -g.scrollY
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		delta = g.maxScroll() - g.scrollY
	}
	g.scrollY = clampRange(g.scrollY+delta, 0, g.maxScroll())
}

// repeating reports a key press on its first tick and then every few
// ticks while held.
func repeating(key ebiten.Key) bool {
	const delay, interval = 24, 4
	d := inpututil.KeyPressDuration(key)
	if d == 1 {
		return true
	}
	return d >= delay && (d-delay)%interval == 0
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(rgbA(config.Background, 1))

	if g.surface != nil {
		g.surface.draw(screen, config.CanvasOpacity)
		if g.showGrid {
			g.drawGrid(screen, g.surface.offsetY)
		}
	}
	if g.settings.ShowGradient {
		g.drawGradient(screen)
	}
	if g.showHUD && g.sim != nil {
		g.drawHUD(screen)
	}
	g.drawStatus(screen)

	if g.captureNext {
		g.captureNext = false
		g.snapshot = captureScreen(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.layoutW, g.layoutH = outsideWidth, outsideHeight
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return g.width, g.height
	}
	return outsideWidth, outsideHeight
}
