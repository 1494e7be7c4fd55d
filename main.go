package main

import (
	"flag"
	"image"
	"log"

	"github.com/automoto/arena-duel/config"
	"github.com/automoto/arena-duel/fonts"
	"github.com/automoto/arena-duel/scenes"
	"github.com/automoto/arena-duel/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

func NewGame(opts factory.ArenaOptions) *Game {
	fonts.LoadDefaults()

	return &Game{
		bounds: image.Rectangle{},
		scene:  scenes.NewArenaScene(opts),
	}
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	opts := factory.DefaultArenaOptions()

	mode := flag.String("mode", opts.Mode.String(), "starting mode: duo or solo")
	seed := flag.Int64("seed", opts.Seed, "random seed for the computer opponent")
	volume := flag.Int("volume", opts.Volume, "initial volume (0-100)")
	scale := flag.Float64("scale", 1, "window scale factor")
	flag.BoolVar(&config.Debug.SkipMenu, "skip-menu", false, "start a match immediately with default names")
	flag.BoolVar(&config.Debug.ShowCollision, "debug", false, "outline collision boxes")
	flag.Parse()

	switch *mode {
	case "duo":
		opts.Mode = config.GameModeDuo
	case "solo":
		opts.Mode = config.GameModeSolo
	default:
		log.Fatalf("unknown mode %q (want duo or solo)", *mode)
	}
	opts.Seed = *seed
	opts.Volume = *volume
	if *scale <= 0 {
		log.Fatalf("invalid scale %v", *scale)
	}

	ebiten.SetWindowTitle(config.C.Title)
	w := float64(config.C.Width) * *scale
	h := float64(config.C.Height) * *scale
	ebiten.SetWindowSize(int(w), int(h))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	log.Printf("Starting %s in %s mode (seed %d)", config.C.Title, opts.Mode, opts.Seed)
	if err := ebiten.RunGame(NewGame(opts)); err != nil {
		log.Fatal(err)
	}
}
