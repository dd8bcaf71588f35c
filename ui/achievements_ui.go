package ui

import (
	"image/color"

	"github.com/automoto/cubecombat/shared/roster"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
)

type AchievementsUI struct {
	UI *ebitenui.UI
}

// NewAchievementsUI lists achievements, unlocked ones on a light card.
func NewAchievementsUI(list []roster.Achievement, onBack func()) *AchievementsUI {
	t := DefaultTheme()
	root, content := screen(8)

	header := row(20)
	header.AddChild(button("Back (ESC)", &t.SmallFace, buttonImage(), 120, 32, onBack))
	header.AddChild(label("--- ACHIEVEMENTS ---", &t.TitleFace, white))
	content.AddChild(header)

	if len(list) == 0 {
		content.AddChild(label("No achievements found.", &t.NormalFace, muted))
	}
	for _, a := range list {
		content.AddChild(achievementCard(a))
	}

	return &AchievementsUI{UI: &ebitenui.UI{Container: root}}
}

func achievementCard(a roster.Achievement) *widget.Container {
	t := DefaultTheme()

	bg, fg := color.Color(panel), color.Color(white)
	status := color.Color(warning)
	if a.Unlocked {
		bg, fg = color.RGBA{200, 200, 200, 255}, color.RGBA{0, 0, 0, 255}
		status = color.RGBA{0, 120, 0, 255}
	}

	padding := widget.Insets{Top: 4, Bottom: 4, Left: 10, Right: 10}
	card := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(bg)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(2),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(600, 0)),
	)

	top := row(20)
	top.AddChild(label(a.Title(), &t.NormalFace, fg))
	top.AddChild(label(a.Status(), &t.SmallFace, status))
	card.AddChild(top)
	card.AddChild(label("Des: "+a.Description, &t.SmallFace, fg))
	card.AddChild(label("Unlocks: "+a.Unlocks, &t.SmallFace, fg))
	return card
}
