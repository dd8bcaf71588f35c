// Package ui builds the ebitenui widget trees for the screens around a
// match: main menu, mode select, character select, cube gallery and
// achievements.
package ui

import (
	"bytes"
	"image/color"
	"log"
	"sync"

	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// Theme holds the faces and colours shared by every screen.
type Theme struct {
	TitleFace  text.Face
	NormalFace text.Face
	SmallFace  text.Face
}

var (
	theme     *Theme
	themeOnce sync.Once

	background = color.RGBA{20, 20, 30, 255}
	panel      = color.RGBA{30, 30, 45, 255}
	white      = color.RGBA{255, 255, 255, 255}
	muted      = color.RGBA{180, 180, 180, 255}
	warning    = color.RGBA{255, 100, 100, 255}
	highlight  = color.RGBA{255, 255, 100, 255}
)

// DefaultTheme loads the go regular faces once.
func DefaultTheme() *Theme {
	themeOnce.Do(func() {
		src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			log.Fatalf("failed to load UI font: %v", err)
		}
		theme = &Theme{
			TitleFace:  &text.GoTextFace{Source: src, Size: 36},
			NormalFace: &text.GoTextFace{Source: src, Size: 20},
			SmallFace:  &text.GoTextFace{Source: src, Size: 14},
		}
	})
	return theme
}

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

func startButtonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{40, 100, 40, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{60, 140, 60, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{30, 80, 30, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 50, 40, 255}),
	}
}

// swatch is a flat colour tile for a cube button.
func swatchImage(c color.RGBA) *widget.ButtonImage {
	lighter := color.RGBA{lift(c.R), lift(c.G), lift(c.B), 255}
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(c),
		Hover:    image.NewNineSliceColor(lighter),
		Pressed:  image.NewNineSliceColor(c),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

func lift(v uint8) uint8 {
	if v > 215 {
		return 255
	}
	return v + 40
}

// screen is the root anchor container with a centred vertical column.
func screen(spacing int) (root, content *widget.Container) {
	root = widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(background)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	content = widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(12)),
			widget.RowLayoutOpts.Spacing(spacing),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	root.AddChild(content)
	return root, content
}

func row(spacing int) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(spacing),
		)),
	)
}

func label(s string, face *text.Face, c color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(s, face, &widget.LabelColor{Idle: c}),
	)
}

func button(s string, face *text.Face, img *widget.ButtonImage, w, h int, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(w, h)),
		widget.ButtonOpts.Image(img),
		widget.ButtonOpts.Text(s, face, &widget.ButtonTextColor{
			Idle:     white,
			Hover:    color.RGBA{255, 255, 200, 255},
			Pressed:  color.RGBA{200, 200, 200, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if onClick != nil {
				onClick()
			}
		}),
	)
}
