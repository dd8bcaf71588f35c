package ui

import (
	"github.com/automoto/cubecombat/config"
	"github.com/automoto/cubecombat/shared/roster"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
)

// SelectUI is the two player character select.
type SelectUI struct {
	UI    *ebitenui.UI
	Picks *roster.Picks

	cubes       []roster.Cube
	cubeButtons []*widget.Button
	promptLabel *widget.Label
	pickLabel   *widget.Label
	msgLabel    *widget.Label
	startButton *widget.Button

	initialized bool
}

// NewSelectUI lists every roster cube. onStart fires once both players
// have picked.
func NewSelectUI(cubes []roster.Cube, onStart func(p1, p2 roster.Cube), onBack func()) *SelectUI {
	s := &SelectUI{
		Picks: &roster.Picks{},
		cubes: cubes,
	}
	t := DefaultTheme()
	root, content := screen(8)

	content.AddChild(label("CHARACTER SELECT", &t.TitleFace, white))
	s.promptLabel = label(s.Picks.Prompt(), &t.NormalFace, config.Blue)
	content.AddChild(s.promptLabel)

	grid := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewGridLayout(
			widget.GridLayoutOpts.Columns(3),
			widget.GridLayoutOpts.Spacing(20, 20),
		)),
	)
	for _, c := range cubes {
		cube := c
		btn := button(cube.ShortHand, &t.SmallFace, swatchImage(config.NamedColor(cube.Color)), 60, 60, func() {
			s.choose(cube)
		})
		s.cubeButtons = append(s.cubeButtons, btn)
		grid.AddChild(btn)
	}
	content.AddChild(grid)

	s.pickLabel = label("", &t.SmallFace, muted)
	content.AddChild(s.pickLabel)
	s.msgLabel = label("", &t.SmallFace, warning)
	content.AddChild(s.msgLabel)

	buttons := row(10)
	buttons.AddChild(button("Back (ESC)", &t.SmallFace, buttonImage(), 120, 32, onBack))
	s.startButton = button("START GAME", &t.NormalFace, startButtonImage(), 200, 40, func() {
		if !s.Picks.Ready() {
			return
		}
		p1, _ := roster.Find(s.cubes, s.Picks.P1)
		p2, _ := roster.Find(s.cubes, s.Picks.P2)
		onStart(p1, p2)
	})
	buttons.AddChild(s.startButton)
	content.AddChild(buttons)

	s.UI = &ebitenui.UI{Container: root}
	return s
}

func (s *SelectUI) choose(c roster.Cube) {
	s.Picks.Choose(c)
	s.UpdateUI()
}

// UpdateUI refreshes labels and button states from the picks.
func (s *SelectUI) UpdateUI() {
	s.promptLabel.Label = s.Picks.Prompt()
	s.pickLabel.Label = s.pickSummary()
	s.msgLabel.Label = s.Picks.Message

	for i, btn := range s.cubeButtons {
		id := s.cubes[i].ID
		taken := id == s.Picks.P1 || id == s.Picks.P2
		btn.GetWidget().Disabled = taken || s.Picks.Ready()
	}
	s.startButton.GetWidget().Disabled = !s.Picks.Ready()
}

func (s *SelectUI) pickSummary() string {
	out := ""
	if c, ok := roster.Find(s.cubes, s.Picks.P1); ok {
		out = "P1: " + c.Name
	}
	if c, ok := roster.Find(s.cubes, s.Picks.P2); ok {
		out += "   P2: " + c.Name
	}
	return out
}

// Update runs the widget tree, syncing state on the first frame.
func (s *SelectUI) Update() {
	s.UI.Update()
	if !s.initialized {
		s.initialized = true
		s.UpdateUI()
	}
}
