package components

import (
	cfg "github.com/automoto/cubecombat/config"
	"github.com/automoto/cubecombat/shared/savedata"
	"github.com/yohamta/donburi"
)

// MatchData stores the current match state and the persisted kill
// counters. This is a singleton component - only one match exists at a
// time.
type MatchData struct {
	Mode     cfg.MatchModeID
	Debug    bool
	GameOver bool
	Winner   Side

	Width, Height float64

	Stats savedata.Stats
}

// PvP reports whether red is a second player.
func (m *MatchData) PvP() bool {
	return m.Mode == cfg.MatchModePvP
}

var Match = donburi.NewComponentType[MatchData]()
