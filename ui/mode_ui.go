package ui

import (
	"github.com/automoto/cubecombat/config"
	"github.com/ebitenui/ebitenui"
)

// ModeUI picks who drives the red cube.
type ModeUI struct {
	UI *ebitenui.UI
}

// NewModeUI builds the mode select screen. onPick receives the chosen
// match mode.
func NewModeUI(onPick func(config.MatchModeID), onBack func()) *ModeUI {
	t := DefaultTheme()
	root, content := screen(14)

	content.AddChild(label("SELECT GAME MODE", &t.TitleFace, white))
	content.AddChild(button("PLAYER vs. AI", &t.NormalFace, buttonImage(), 300, 48, func() {
		onPick(config.MatchModeAI)
	}))
	content.AddChild(button("PLAYER vs. PLAYER", &t.NormalFace, buttonImage(), 300, 48, func() {
		onPick(config.MatchModePvP)
	}))
	content.AddChild(button("Back (ESC)", &t.SmallFace, buttonImage(), 150, 32, onBack))

	return &ModeUI{UI: &ebitenui.UI{Container: root}}
}
