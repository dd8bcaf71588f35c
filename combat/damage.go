package combat

import (
	"github.com/automoto/cubecombat/components"
	cfg "github.com/automoto/cubecombat/config"
	"github.com/yohamta/donburi"
)

// checkDefeats retires a cube whose health ran out. The Active guard
// keeps the kill counters from moving twice for one life.
func (t *tick) checkDefeats() {
	if t.blue.Actor.Active && t.blue.Health.Depleted() {
		t.defeat(t.blue)
	}
	if t.red.Actor.Active && t.red.Health.Depleted() {
		if t.debug() && !t.pvp() && cfg.AI.DebugRespawn {
			t.countKill(components.SideRed)
			t.emit(EventDefeat, components.SideRed, 0)
			resetFighter(t.red)
			t.emit(EventRespawn, components.SideRed, 0)
			return
		}
		t.defeat(t.red)
	}
}

func (t *tick) defeat(f *Fighter) {
	side := f.Actor.Side
	f.Actor.Active = false
	t.countKill(side)
	t.emit(EventDefeat, side, 0)

	if !t.match.GameOver {
		t.match.GameOver = true
		t.match.Winner = side.Opponent()
	}
}

// countKill credits the opponent of the defeated cube.
func (t *tick) countKill(defeated components.Side) {
	if defeated == components.SideBlue {
		t.match.Stats.RedKills++
	} else {
		t.match.Stats.BlueKills++
	}
}

// Reset restores both cubes and the match to their starting state. Kill
// counters are kept.
func Reset(w donburi.World) {
	if me, ok := components.Match.First(w); ok {
		m := components.Match.Get(me)
		m.GameOver = false
		m.Winner = components.SideBlue
	}
	blue, red, ok := Fighters(w)
	if !ok {
		return
	}
	resetFighter(blue)
	resetFighter(red)
}

func resetFighter(f *Fighter) {
	f.Actor.Active = true
	f.Actor.Facing = f.Actor.SpawnFacing
	f.Health.Current = f.Health.Max
	f.Body.MoveTo(f.Actor.SpawnX, f.Actor.SpawnY)

	if f.Attack != nil {
		*f.Attack = components.AttackData{}
	}
	if f.Bot != nil {
		*f.Bot = components.BotData{}
	}
	if f.Melee != nil {
		*f.Melee = components.MeleeData{}
	}
	if f.Parry != nil {
		*f.Parry = components.ParryData{}
	}
}
