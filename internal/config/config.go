package config

const (
	WindowWidth  = 1280
	WindowHeight = 800

	// Particle population
	MaxParticles     = 80
	WidthPerParticle = 20

	// Particle motion and shape
	MaxSpeed  = 0.25
	MinRadius = 1.0
	MaxRadius = 3.0

	// Connection lines
	LinkDistance = 150.0
	LinkMaxAlpha = 0.2
	LinkWidth    = 1.0

	ParticleAlpha = 0.6

	// Parallax: scroll range mapped onto a vertical offset
	ParallaxScrollMax = 1000.0
	ParallaxOffsetMax = 300.0

	// Compositing
	CanvasOpacity  = 0.4
	GridOpacity    = 0.2
	GridSpacing    = 50
	GridDriftSpeed = 0.3

	HistorySize = 240
)

// Accent is the teal used for particles and links.
var Accent = [3]uint8{100, 255, 218}

// Background is the page colour behind the canvas.
var Background = [3]uint8{10, 14, 23}
