package combat

import (
	"time"

	"github.com/automoto/cubecombat/components"
	cfg "github.com/automoto/cubecombat/config"
	"github.com/automoto/cubecombat/shared/gamemath"
	"github.com/automoto/cubecombat/tags"
)

// ChargeCycles is the number of dark/light blink pairs before a charge.
func ChargeCycles(pvp bool) int {
	if pvp {
		return cfg.Charge.PvPFlashCycles
	}
	return cfg.Charge.FlashCycles
}

func chargeSpeed(pvp bool) float64 {
	if pvp {
		return cfg.Charge.Speed * cfg.Charge.PvPSpeedScale
	}
	return cfg.Charge.Speed
}

// blink advances the windup flash counter. It reports true on the ticks
// where a blink expired.
func blink(a *components.AttackData, dt, duration time.Duration) bool {
	a.FlashTimer -= dt
	if a.FlashTimer > 0 {
		return false
	}
	a.FlashCount++
	a.FlashTimer = duration
	return true
}

func (t *tick) startCharge(dirX, dirY float64) {
	a := t.red.Attack
	a.Charge = components.ChargeWindup
	a.FlashCount = 0
	a.FlashTimer = cfg.Charge.FlashDuration
	a.DirX, a.DirY = gamemath.Normalize(dirX, dirY)
	a.Parried = false
	a.BoundaryHit = false
	t.emit(EventChargeWindup, components.SideRed, 0)
}

func (t *tick) updateCharge() {
	a := t.red.Attack
	switch a.Charge {
	case components.ChargeWindup:
		if blink(a, t.dt(), cfg.Charge.FlashDuration) && a.FlashCount > ChargeCycles(t.pvp())*2 {
			a.Charge = components.ChargeCharging
		}
	case components.ChargeCharging:
		t.advanceCharge()
	case components.ChargeEndlag:
		tickDown(&a.Endlag, t.dt())
		if a.Endlag == 0 {
			a.Charge = components.ChargeIdle
			a.Parried = false
			a.BoundaryHit = false
			if t.red.Bot != nil {
				t.red.Bot.Mode = components.BotMaintain
			}
		}
	}
}

// advanceCharge dashes along the locked direction. Reaching an arena edge
// clamps the cube and ends the run in the same tick.
func (t *tick) advanceCharge() {
	red, a := t.red, t.red.Attack
	speed := chargeSpeed(t.pvp())
	size := cfg.Cube.Size
	w, h := t.match.Width, t.match.Height

	x := red.Body.X + a.DirX*speed
	y := red.Body.Y + a.DirY*speed

	if gamemath.OutOfArena(x, y, size, w, h) {
		x, y = gamemath.ClampToArena(x, y, size, w, h)
		a.Charge = components.ChargeEndlag
		a.Endlag = cfg.Charge.Endlag
		a.BoundaryHit = true

		damage := 0
		if t.pvp() {
			a.Endlag = cfg.Charge.PvPBoundaryStun
			if !t.debug() {
				damage = cfg.Charge.PvPBoundaryDamage
				red.Health.Current -= damage
			}
		}
		t.emit(EventChargeBoundary, components.SideRed, damage)
	}
	red.Body.MoveTo(x, y)
}

// chargeContact ends a charge that reaches the blue cube.
func (t *tick) chargeContact() {
	red, blue := t.red, t.blue
	a := red.Attack
	if a.Charge != components.ChargeCharging || !blue.Actor.Active || blue.Health.Current <= 0 {
		return
	}
	if !touching(red, blue) {
		return
	}

	damage := 0
	if !t.debug() {
		damage = cfg.Charge.Damage
		if cfg.Charge.InstantKill {
			damage = blue.Health.Current
		}
		blue.Health.Current -= damage
	}
	a.Charge = components.ChargeEndlag
	a.Endlag = cfg.Charge.Endlag
	t.emit(EventChargeHit, components.SideBlue, damage)
}

// touching runs the space broad-phase and confirms with an exact
// rectangle overlap.
func touching(a, b *Fighter) bool {
	if a.Body.Space == nil || a.Body.Check(0, 0, sideTag(b.Actor.Side)) == nil {
		return false
	}
	return gamemath.RectsOverlap(a.Body.X, a.Body.Y, a.Body.W, a.Body.H,
		b.Body.X, b.Body.Y, b.Body.W, b.Body.H)
}

func sideTag(s components.Side) string {
	if s == components.SideRed {
		return tags.ResolvRed
	}
	return tags.ResolvBlue
}
