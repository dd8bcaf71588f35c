package scenes

import (
	"log"

	cfg "github.com/automoto/cubecombat/config"
	"github.com/automoto/cubecombat/shared/roster"
	"github.com/automoto/cubecombat/systems"
	"github.com/automoto/cubecombat/ui"
	"github.com/ebitenui/ebitenui"
)

// NewCharSelectScene lets both players pick a cube before a PvP match.
func NewCharSelectScene(sc SceneChanger) *UIScene {
	s := newUIScene(sc, nil)
	s.build = func() *ebitenui.UI {
		cubes, _ := systems.LoadRoster()
		sel := ui.NewSelectUI(cubes,
			func(p1, p2 roster.Cube) {
				log.Printf("Character select: P1 %s, P2 %s", p1.Name, p2.Name)
				sc.ChangeScene(NewArenaScene(sc, ArenaConfig{
					Mode: cfg.MatchModePvP,
					Blue: &p1,
					Red:  &p2,
				}))
			},
			func() { sc.ChangeScene(NewMenuScene(sc)) },
		)
		s.update = sel.Update
		return sel.UI
	}
	return s
}
