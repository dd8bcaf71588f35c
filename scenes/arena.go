package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/cubecombat/assets"
	"github.com/automoto/cubecombat/combat"
	cfg "github.com/automoto/cubecombat/config"
	"github.com/automoto/cubecombat/shared/roster"
	"github.com/automoto/cubecombat/systems"
	"github.com/automoto/cubecombat/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaConfig is what the screens before a match hand to it. Blue and Red
// are the character select picks, nil outside PvP.
type ArenaConfig struct {
	Mode      cfg.MatchModeID
	Blue, Red *roster.Cube
}

// ArenaScene runs one match until the player leaves with Escape.
type ArenaScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	config       ArenaConfig
	once         sync.Once
}

func NewArenaScene(sc SceneChanger, config ArenaConfig) *ArenaScene {
	return &ArenaScene{sceneChanger: sc, config: config}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.ecs.Update()
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
}

func (as *ArenaScene) configure() {
	e := ecs.NewECS(donburi.NewWorld())

	createMenuScene := func() interface{} {
		return NewMenuScene(as.sceneChanger)
	}
	rng := combat.NewRand(cfg.AI.RandomSeed)

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.NewUpdateArena(as.sceneChanger, rng, createMenuScene))
	e.AddSystem(systems.UpdateEffects)

	e.AddRenderer(cfg.Default, systems.DrawArena)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	e.AddRenderer(cfg.Overlay, systems.DrawHUD)
	e.AddRenderer(cfg.Overlay, systems.DrawGameOver)

	as.ecs = e

	factory.CreateArena(e.World, as.arenaSpec(assets.LoadArena()))
	log.Printf("Match started: %s mode", as.config.Mode)
}

func (as *ArenaScene) arenaSpec(a assets.Arena) factory.ArenaSpec {
	spec := factory.ArenaSpec{
		Width:  a.Width,
		Height: a.Height,
		Mode:   as.config.Mode,
		Blue:   factory.CubeSpec{X: a.Blue.X, Y: a.Blue.Y, Facing: factory.ParseFacing(a.BlueFace)},
		Red:    factory.CubeSpec{X: a.Red.X, Y: a.Red.Y, Facing: factory.ParseFacing(a.RedFace)},
		Stats:  systems.LoadStats(),
	}
	if c := as.config.Blue; c != nil {
		spec.Blue.Name, spec.Blue.Color = c.Name, c.Color
	}
	if c := as.config.Red; c != nil {
		spec.Red.Name, spec.Red.Color = c.Name, c.Color
	}
	return spec
}
