package scenes

import (
	cfg "github.com/automoto/cubecombat/config"
	"github.com/automoto/cubecombat/ui"
	"github.com/ebitenui/ebitenui"
)

// NewModeSelectScene picks AI or PvP. AI goes straight into a match,
// PvP goes through character select first.
func NewModeSelectScene(sc SceneChanger) *UIScene {
	return newUIScene(sc, func() *ebitenui.UI {
		return ui.NewModeUI(
			func(mode cfg.MatchModeID) {
				if mode == cfg.MatchModePvP {
					sc.ChangeScene(NewCharSelectScene(sc))
					return
				}
				sc.ChangeScene(NewArenaScene(sc, ArenaConfig{Mode: mode}))
			},
			func() { sc.ChangeScene(NewMenuScene(sc)) },
		).UI
	})
}
