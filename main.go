package main

import (
	"errors"
	"flag"
	"image"
	"log"

	"github.com/automoto/cubecombat/config"
	"github.com/automoto/cubecombat/fonts"
	"github.com/automoto/cubecombat/scenes"
	"github.com/automoto/cubecombat/systems"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
	quit   bool
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

// Quit ends the game after the current frame.
func (g *Game) Quit() {
	g.quit = true
}

func NewGame() *Game {
	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewArenaScene(g, scenes.ArenaConfig{
			Mode: config.ParseMatchMode(config.Debug.StartMode),
		})
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	if g.quit {
		return ebiten.Termination
	}
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
	flag.StringVar(&config.Debug.TuningPath, "tuning", "", "TOML file overriding combat tuning")
	flag.BoolVar(&config.Debug.ForceDebug, "debug", false, "force debug mode regardless of the stored flag")
	flag.StringVar(&config.Debug.StartMode, "mode", "ai", "match mode when skipping the menu: ai or pvp")
	flag.BoolVar(&config.Debug.SkipMenu, "skip-menu", false, "start directly in a match")
	flag.StringVar(&config.Debug.AppName, "app-name", config.Debug.AppName, "storage namespace for stats and flags")
	flag.BoolVar(&config.Debug.DrawBodies, "bodies", false, "outline collision bodies")
	flag.Parse()

	if config.Debug.TuningPath != "" {
		if err := config.LoadTuning(config.Debug.TuningPath); err != nil {
			log.Printf("Warning: Could not load tuning, using defaults: %v", err)
		}
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Cube Combat")
	ebiten.SetTPS(config.C.TPS)

	// Without storage the game still runs on defaults
	_ = systems.InitPersistence(config.Debug.AppName, config.Debug.ForceDebug)

	if err := ebiten.RunGame(NewGame()); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
