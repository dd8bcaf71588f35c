package components

import "github.com/yohamta/donburi"

// BotMode is the AI movement mode picked from distance and health.
type BotMode int

const (
	BotMaintain BotMode = iota
	BotAttack
	BotCloseGap
	BotBackOff
	BotDefensiveRetreat
)

func (m BotMode) String() string {
	switch m {
	case BotAttack:
		return "Attack"
	case BotCloseGap:
		return "Close Gap"
	case BotBackOff:
		return "Back Off"
	case BotDefensiveRetreat:
		return "Defensive Retreat"
	default:
		return "Maintain"
	}
}

// Directed reports whether the mode moves the cube.
func (m BotMode) Directed() bool {
	return m != BotMaintain
}

// BotData marks the red cube as computer-controlled.
type BotData struct {
	Mode BotMode
}

var Bot = donburi.NewComponentType[BotData]()
