package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/cubecombat/systems"
	"github.com/automoto/cubecombat/ui"
	"github.com/hajimehoshi/ebiten/v2"
)

// SceneChanger allows scenes to trigger transitions and end the game.
type SceneChanger interface {
	ChangeScene(scene interface{})
	Quit()
}

// MenuScene displays the title screen.
type MenuScene struct {
	sceneChanger SceneChanger
	menuUI       *ui.MenuUI
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.menuUI.UI.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.menuUI == nil {
		return
	}
	ms.menuUI.UI.Draw(screen)
}

func (ms *MenuScene) configure() {
	sc := ms.sceneChanger
	ms.menuUI = ui.NewMenuUI(
		systems.LoadStats(),
		func() { sc.ChangeScene(NewModeSelectScene(sc)) },
		func() { sc.ChangeScene(NewGalleryScene(sc)) },
		func() { sc.ChangeScene(NewAchievementsScene(sc)) },
		sc.Quit,
	)
}
