// Package combat holds the match rules: AI movement, the red cube's
// charge and beam machines, the blue cube's slash and parry, damage and
// defeat. It reads and writes donburi components and never touches
// ebiten, so every rule runs headless in tests.
package combat

import (
	"time"

	"github.com/automoto/cubecombat/components"
	"github.com/yohamta/donburi"
)

// Controls is one player's input for a tick. Direction fields are held
// keys; the attack fields are edge-triggered presses.
type Controls struct {
	Left, Right, Up, Down bool

	Slash  bool
	Parry  bool
	Beam   bool
	Charge bool
}

// Frame is the input to Step.
type Frame struct {
	Dt    time.Duration
	Debug bool

	P1 Controls // blue
	P2 Controls // red, read only in PvP
}

type tick struct {
	match     *components.MatchData
	blue, red *Fighter
	rng       Rand
	frame     Frame
	events    []Event
}

func (t *tick) emit(kind EventKind, side components.Side, damage int) {
	t.events = append(t.events, Event{Kind: kind, Side: side, Damage: damage})
}

func (t *tick) dt() time.Duration { return t.frame.Dt }
func (t *tick) debug() bool       { return t.match.Debug }
func (t *tick) pvp() bool         { return t.match.PvP() }

// Step advances the match by one tick and returns what happened. Nothing
// moves once the match is over; Reset starts a new one.
func Step(w donburi.World, rng Rand, f Frame) []Event {
	me, ok := components.Match.First(w)
	if !ok {
		return nil
	}
	blue, red, ok := Fighters(w)
	if !ok {
		return nil
	}

	t := &tick{
		match: components.Match.Get(me),
		blue:  blue,
		red:   red,
		rng:   rng,
		frame: f,
	}
	t.match.Debug = f.Debug

	if t.match.GameOver {
		return nil
	}

	t.handleActions()
	t.moveHumans()
	t.tickTimers()
	if t.pvp() {
		t.updateRedPvP()
	} else {
		t.updateRedAI()
	}
	t.updateBeamLinger()
	t.chargeContact()
	t.checkDefeats()

	return t.events
}

func (t *tick) handleActions() {
	if t.blue.Actor.Active {
		if t.frame.P1.Slash {
			t.slash()
		}
		if t.frame.P1.Parry {
			t.parry()
		}
	}

	if !t.pvp() || !t.red.Actor.Active {
		return
	}
	a := t.red.Attack
	if t.frame.P2.Beam && a.Idle() && (a.BeamCooldown == 0 || t.debug()) {
		if angle, ok := FacingAngle(t.red.Actor.Facing); ok {
			t.startBeam(angle)
		}
	}
	if t.frame.P2.Charge && a.Idle() {
		if dx, dy := t.red.Actor.Facing.Vector(); dx != 0 || dy != 0 {
			t.startCharge(dx, dy)
		}
	}
}

func (t *tick) moveHumans() {
	w, h := t.match.Width, t.match.Height
	if t.blue.Actor.Active {
		moveHuman(t.blue, t.frame.P1, w, h)
	}
	if t.pvp() && t.red.Actor.Active && !t.red.Stuck() {
		moveHuman(t.red, t.frame.P2, w, h)
	}
}

func (t *tick) tickTimers() {
	dt := t.dt()

	p := t.blue.Parry
	if p.Active {
		if p.Fade != nil {
			p.Alpha, _ = p.Fade.Update(float32(dt.Seconds()))
		}
		tickDown(&p.Timer, dt)
		if p.Timer == 0 {
			p.Active = false
			p.Success = false
		}
	}

	m := t.blue.Melee
	tickDown(&m.Linger, dt)
	tickDown(&m.Cooldown, dt)

	a := t.red.Attack
	tickDown(&a.BeamCooldown, dt)

	if t.debug() {
		m.Cooldown = 0
		a.BeamCooldown = 0
	}
}
