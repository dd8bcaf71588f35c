package combat

import (
	"github.com/automoto/cubecombat/components"
	cfg "github.com/automoto/cubecombat/config"
	"github.com/automoto/cubecombat/shared/gamemath"
)

// updateRedAI runs the computer-controlled red cube: beam trigger, beam
// windup, then charge trigger or normal movement.
func (t *tick) updateRedAI() {
	red, blue := t.red, t.blue
	if !red.Actor.Active {
		return
	}
	a := red.Attack

	// top-left distance equals center distance for equal squares
	dist := gamemath.Distance(red.Body.X, red.Body.Y, blue.Body.X, blue.Body.Y)

	if a.Idle() && a.BeamCooldown == 0 && dist < cfg.Beam.Range && chance(t.rng, cfg.Beam.Chance) {
		t.startBeam(t.aimAtBlue())
	}
	if a.Beam == components.BeamWindup {
		t.updateBeamWindup()
	}
	if a.Beam == components.BeamWindup {
		return
	}

	if a.Charge != components.ChargeIdle {
		t.updateCharge()
		return
	}

	if chance(t.rng, cfg.Charge.Chance) {
		t.startCharge(gamemath.Unit(gamemath.Angle(red.Body.X, red.Body.Y, blue.Body.X, blue.Body.Y)))
		return
	}

	mv := PlanMove(t.rng, red.Body.X, red.Body.Y, blue.Body.X, blue.Body.Y,
		red.Health.Current, t.match.Width, t.match.Height)
	red.Bot.Mode = mv.Mode
	if mv.Facing != components.FacingNone {
		red.Actor.Facing = mv.Facing
	}
	red.Body.MoveTo(mv.X, mv.Y)
}

// updateRedPvP advances whichever machine the second player started.
func (t *tick) updateRedPvP() {
	if !t.red.Actor.Active {
		return
	}
	a := t.red.Attack
	if a.Beam == components.BeamWindup {
		t.updateBeamWindup()
		return
	}
	t.updateCharge()
}

// aimAtBlue returns the angle from the red center to the blue center.
func (t *tick) aimAtBlue() float64 {
	rx, ry := t.red.Center()
	bx, by := t.blue.Center()
	return gamemath.Angle(rx, ry, bx, by)
}
