package ui

import (
	"fmt"

	"github.com/automoto/cubecombat/config"
	"github.com/automoto/cubecombat/shared/savedata"
	"github.com/ebitenui/ebitenui"
)

// MenuUI is the title screen.
type MenuUI struct {
	UI *ebitenui.UI

	OnStart        func()
	OnGallery      func()
	OnAchievements func()
	OnQuit         func()
}

// NewMenuUI builds the title screen. The persisted kill counters are
// shown under the buttons.
func NewMenuUI(stats savedata.Stats, onStart, onGallery, onAchievements, onQuit func()) *MenuUI {
	m := &MenuUI{
		OnStart:        onStart,
		OnGallery:      onGallery,
		OnAchievements: onAchievements,
		OnQuit:         onQuit,
	}
	t := DefaultTheme()

	root, content := screen(12)
	content.AddChild(label("CUBE COMBAT", &t.TitleFace, config.Red))

	content.AddChild(button("START GAME", &t.NormalFace, startButtonImage(), 260, 44, m.OnStart))
	content.AddChild(button("COLLECTED CUBES", &t.NormalFace, buttonImage(), 260, 44, m.OnGallery))
	content.AddChild(button("ACHIEVEMENTS", &t.NormalFace, buttonImage(), 260, 44, m.OnAchievements))
	content.AddChild(button("QUIT", &t.NormalFace, buttonImage(), 260, 44, m.OnQuit))

	content.AddChild(label(StatsLine(stats), &t.SmallFace, muted))

	m.UI = &ebitenui.UI{Container: root}
	return m
}

// StatsLine summarises the kill counters for the title screen.
func StatsLine(s savedata.Stats) string {
	return fmt.Sprintf("Red Kills: %d   Blue Kills: %d", s.RedKills, s.BlueKills)
}
