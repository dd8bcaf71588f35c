package scenes

import (
	"github.com/automoto/cubecombat/systems"
	"github.com/automoto/cubecombat/ui"
	"github.com/ebitenui/ebitenui"
)

func NewGalleryScene(sc SceneChanger) *UIScene {
	return newUIScene(sc, func() *ebitenui.UI {
		cubes, _ := systems.LoadRoster()
		return ui.NewGalleryUI(cubes, func() { sc.ChangeScene(NewMenuScene(sc)) }).UI
	})
}

func NewAchievementsScene(sc SceneChanger) *UIScene {
	return newUIScene(sc, func() *ebitenui.UI {
		_, list := systems.LoadRoster()
		return ui.NewAchievementsUI(list, func() { sc.ChangeScene(NewMenuScene(sc)) }).UI
	})
}
