// Command nightfall plays the looping hero-versus-monsters cinematic in a
// resizable window with the beat timeline along the bottom edge.
//
// Usage:
//
//	nightfall [-debug] [-still out.png [-t seconds]]
//
// With -still the frame at loop time -t is written to a PNG and the
// program exits without opening an interactive window session.
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/marrowlight/nightfall"
)

const (
	windowTitle = "Nightfall"
	windowW     = 1280
	windowH     = 720
)

func main() {
	debug := flag.Bool("debug", false, "show FPS and loop-time readout")
	still := flag.String("still", "", "render a single frame to this PNG path and exit")
	at := flag.Float64("t", 0, "loop time in seconds for -still")
	flag.Parse()

	renderer, err := nightfall.NewRenderer()
	if err != nil {
		log.Fatal(err)
	}

	if *still != "" {
		if err := runStill(renderer, *still, *at); err != nil {
			log.Fatal(err)
		}
		return
	}

	driver := nightfall.NewDriver(renderer)
	driver.SetDebug(*debug)

	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowSize(windowW, windowH)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(driver); err != nil {
		log.Fatal(err)
	}
}

// stillGame renders one frame offscreen, saves it, and terminates. GPU
// image reads need a live Ebitengine context, so the export runs as a
// one-shot game.
type stillGame struct {
	renderer *nightfall.Renderer
	path     string
	at       float64
	err      error
}

func (g *stillGame) Update() error {
	g.err = nightfall.RenderStill(g.renderer, g.path, windowW, windowH, g.at)
	return ebiten.Termination
}

func (g *stillGame) Draw(*ebiten.Image) {}

func (g *stillGame) Layout(int, int) (int, int) { return 1, 1 }

func runStill(renderer *nightfall.Renderer, path string, at float64) error {
	g := &stillGame{renderer: renderer, path: path, at: at}
	ebiten.SetWindowSize(1, 1)
	if err := ebiten.RunGame(g); err != nil {
		return err
	}
	return g.err
}
