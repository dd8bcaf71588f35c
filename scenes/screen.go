package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/cubecombat/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UIScene is a widget screen that returns to the menu on Escape.
type UIScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	ui           *ebitenui.UI
	once         sync.Once

	build  func() *ebitenui.UI
	update func() // replaces ui.Update when set
}

func newUIScene(sc SceneChanger, build func() *ebitenui.UI) *UIScene {
	return &UIScene{sceneChanger: sc, build: build}
}

func (s *UIScene) Update() {
	s.once.Do(s.configure)

	if s.update != nil {
		s.update()
	} else {
		s.ui.Update()
	}
	s.ecs.Update()
}

func (s *UIScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 20, 30, 255})

	if s.ui == nil {
		return
	}
	s.ui.Draw(screen)
}

func (s *UIScene) configure() {
	s.ecs = ecs.NewECS(donburi.NewWorld())

	createMenuScene := func() interface{} {
		return NewMenuScene(s.sceneChanger)
	}
	s.ecs.AddSystem(systems.UpdateInput)
	s.ecs.AddSystem(systems.NewUpdateBack(s.sceneChanger, createMenuScene))

	s.ui = s.build()
}
