package main

import (
	"errors"
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/game"
)

func main() {
	configPath := flag.String("config", "particle-field.json", "path to the JSON settings file")
	seed := flag.Int64("seed", 0, "random seed for particle placement (0 uses the settings file, then the clock)")
	saveConfig := flag.Bool("save-config", false, "write the effective settings to -config and exit")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		fatal(err)
	}
	if *seed != 0 {
		settings.Seed = *seed
	}
	if *saveConfig {
		if err := config.Save(settings, *configPath); err != nil {
			fatal(err)
		}
		log.Printf("settings written to %s", *configPath)
		return
	}

	if settings.Seed == 0 {
		settings.Seed = time.Now().UnixNano()
	}
	log.Printf("seed %d", settings.Seed)

	ebiten.SetWindowSize(settings.WindowWidth, settings.WindowHeight)
	ebiten.SetWindowTitle("Particle Field - Wheel/arrows: scroll, H: HUD, G: grid, P: pause, S: screenshot, Esc/Q: quit")
	ebiten.SetTPS(settings.TPS)
	ebiten.SetFullscreen(settings.Fullscreen)
	if settings.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	g := game.NewGame(settings, rand.New(rand.NewSource(settings.Seed)))
	defer g.Close()
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		fatal(err)
	}
}

// fatal reports a start-up failure in a dialog as well as the log, since
// the program is usually launched without a terminal.
func fatal(err error) {
	_ = zenity.Error(err.Error(), zenity.Title("Particle Field"), zenity.ErrorIcon)
	log.Fatal(err)
}
