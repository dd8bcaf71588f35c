package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/cubecombat/combat"
	"github.com/automoto/cubecombat/components"
	cfg "github.com/automoto/cubecombat/config"
	"github.com/automoto/cubecombat/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

var outlineColor = color.RGBA{100, 100, 100, 255}

// DrawHUD renders both health bars, the kill counters, red's current
// mode and the debug marker.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Match.First(ecs.World)
	if !ok {
		return
	}
	match := components.Match.Get(entry)
	blue, red, ok := combat.Fighters(ecs.World)
	if !ok {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())
	barW, margin := cfg.UI.HealthBarWidth, cfg.UI.Margin
	face := fonts.Regular.Face()

	// Red on the left, blue on the right
	drawHealthBar(screen, margin, margin, red.Health, cfg.Colors.Red)
	drawHealthBar(screen, width-barW-margin, margin, blue.Health, cfg.Colors.Blue)

	textY := margin + cfg.UI.HealthBarHeight + 5
	drawText(screen, HealthLabel(RedLabel(match.PvP()), red.Health), face, margin, textY, cfg.Colors.Text)
	drawText(screen, HealthLabel("P1 (Blue)", blue.Health), face, width-barW-margin, textY, cfg.Colors.Text)

	if !match.PvP() {
		drawText(screen, ModeLabel(red.Attack, red.Bot), fonts.Small.Face(), margin, textY+22, cfg.Colors.Text)
	}

	drawText(screen, fmt.Sprintf("Red Kills: %d", match.Stats.RedKills), face, margin, height-40, cfg.Colors.Red)
	drawText(screen, fmt.Sprintf("Blue Kills: %d", match.Stats.BlueKills), face, width-150, height-40, cfg.Colors.Blue)

	if match.Debug {
		drawCenteredText(screen, "DEBUG", fonts.Small.Face(), width/2, margin+8, cfg.Colors.Text)
	}
}

func drawHealthBar(screen *ebiten.Image, x, y float64, h *components.HealthData, fill color.Color) {
	w, bh := cfg.UI.HealthBarWidth, cfg.UI.HealthBarHeight
	vector.FillRect(screen, float32(x), float32(y), float32(w*h.Ratio()), float32(bh), fill, false)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(bh), 1, outlineColor, false)
}

// RedLabel names the red cube's controller.
func RedLabel(pvp bool) string {
	if pvp {
		return "P2 (Red)"
	}
	return "AI (Red)"
}

// HealthLabel formats a bar caption; health is never shown negative.
func HealthLabel(name string, h *components.HealthData) string {
	return fmt.Sprintf("%s: %d", name, h.Display())
}

// ModeLabel shows the attack phase while one runs, otherwise the AI
// movement mode.
func ModeLabel(a *components.AttackData, bot *components.BotData) string {
	if a != nil && !a.Idle() {
		if a.Parried {
			return "Mode: Parried (Stun)"
		}
		return "Mode: " + a.Phase().String()
	}
	if bot != nil {
		return "Mode: " + bot.Mode.String()
	}
	return ""
}

func drawText(screen *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, face, op)
}

func drawCenteredText(screen *ebiten.Image, s string, face text.Face, cx, cy float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, face, op)
}
