package combat

import (
	"time"

	"github.com/automoto/cubecombat/components"
	cfg "github.com/automoto/cubecombat/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// FinalBlink reports whether a windup sits on its last blink before
// release, the only window in which a parry lands.
func FinalBlink(a *components.AttackData, pvp bool) bool {
	if a.FlashTimer <= 0 {
		return false
	}
	switch {
	case a.Charge == components.ChargeWindup:
		return a.FlashCount == ChargeCycles(pvp)*2
	case a.Beam == components.BeamWindup:
		return a.FlashCount == cfg.Beam.FlashCycles*2
	}
	return false
}

// parry cancels red's windup on the final blink and stuns it for twice
// the charge endlag. A miss only shows the failed indicator.
func (t *tick) parry() {
	a := t.red.Attack
	if !t.red.Actor.Active || !FinalBlink(a, t.pvp()) {
		showParry(t.blue.Parry, false, cfg.Parry.FailWindow)
		t.emit(EventParryMiss, components.SideBlue, 0)
		return
	}

	a.Charge = components.ChargeEndlag
	a.Endlag = 2 * cfg.Charge.Endlag
	a.Parried = true
	a.Beam = components.BeamIdle
	a.FlashCount = 0
	a.FlashTimer = 0

	showParry(t.blue.Parry, true, cfg.Parry.SuccessWindow)
	t.emit(EventParry, components.SideRed, 0)
}

func showParry(p *components.ParryData, success bool, window time.Duration) {
	p.Active = true
	p.Success = success
	p.Timer = window
	p.Fade = gween.New(1, 0, float32(window.Seconds()), ease.OutQuad)
	p.Alpha = 1
}
