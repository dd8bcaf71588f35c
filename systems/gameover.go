package systems

import (
	"image/color"

	"github.com/automoto/cubecombat/components"
	cfg "github.com/automoto/cubecombat/config"
	"github.com/automoto/cubecombat/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// DrawGameOver renders the winner banner once the match has ended.
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Match.First(e.World)
	if !ok {
		return
	}
	match := components.Match.Get(entry)
	if !match.GameOver {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	drawCenteredText(screen, WinnerMessage(match.Winner), fonts.Title.Face(), width/2, height/2, winnerColor(match.Winner))
}

// WinnerMessage is the banner text for a finished match.
func WinnerMessage(winner components.Side) string {
	return winner.String() + " Cube Wins! Press R to Restart"
}

func winnerColor(winner components.Side) color.Color {
	if winner == components.SideRed {
		return cfg.Colors.Red
	}
	return cfg.Colors.Blue
}
