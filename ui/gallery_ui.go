package ui

import (
	"github.com/automoto/cubecombat/config"
	"github.com/automoto/cubecombat/shared/roster"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
)

// GalleryUI shows the collected cubes with a detail panel for the
// selected one.
type GalleryUI struct {
	UI       *ebitenui.UI
	Selected *roster.Cube

	cubes  []roster.Cube
	detail *widget.Container
}

func NewGalleryUI(cubes []roster.Cube, onBack func()) *GalleryUI {
	g := &GalleryUI{cubes: cubes}
	t := DefaultTheme()
	root, content := screen(10)

	header := row(20)
	header.AddChild(button("Back (ESC)", &t.SmallFace, buttonImage(), 120, 32, onBack))
	header.AddChild(label("COLLECTED CUBES", &t.TitleFace, white))
	content.AddChild(header)

	body := row(40)

	grid := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(3),
			widget.GridLayoutOpts.Spacing(20, 20),
		)),
	)
	for i := range cubes {
		cube := cubes[i]
		grid.AddChild(button(cube.ShortHand, &t.SmallFace, swatchImage(config.NamedColor(cube.Color)), 60, 60, func() {
			g.Select(cube)
		}))
	}
	body.AddChild(grid)

	padding := widget.Insets{Top: 8, Bottom: 8, Left: 10, Right: 10}
	g.detail = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(panel)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(6),
		)),
		widget.ContainerOpts.WidgetOpts(widget.WidgetOpts.MinSize(300, 360)),
	)
	g.showPlaceholder()
	body.AddChild(g.detail)

	content.AddChild(body)
	g.UI = &ebitenui.UI{Container: root}
	return g
}

// Select fills the detail panel. Selecting the shown cube again clears it.
func (g *GalleryUI) Select(c roster.Cube) {
	if g.Selected != nil && g.Selected.ID == c.ID {
		g.Selected = nil
		g.showPlaceholder()
		return
	}
	g.Selected = &c

	t := DefaultTheme()
	g.detail.RemoveChildren()
	for i, line := range c.Details() {
		switch {
		case i == 0:
			g.detail.AddChild(label(line, &t.NormalFace, white))
		case line == "Attacks:":
			g.detail.AddChild(label(line, &t.NormalFace, config.Cyan))
		default:
			g.detail.AddChild(label(line, &t.SmallFace, white))
		}
	}
}

func (g *GalleryUI) showPlaceholder() {
	t := DefaultTheme()
	g.detail.RemoveChildren()
	g.detail.AddChild(label("Click a Cube to View Details", &t.NormalFace, muted))
}
