package config

// MatchModeID selects who controls the red cube.
type MatchModeID int

const (
	MatchModeAI MatchModeID = iota
	MatchModePvP
)

func (m MatchModeID) String() string {
	switch m {
	case MatchModePvP:
		return "PvP"
	default:
		return "AI"
	}
}

// ParseMatchMode maps a CLI value to a mode, defaulting to AI.
func ParseMatchMode(s string) MatchModeID {
	if s == "pvp" || s == "PvP" || s == "PVP" {
		return MatchModePvP
	}
	return MatchModeAI
}
