package combat

import (
	"github.com/automoto/cubecombat/components"
	cfg "github.com/automoto/cubecombat/config"
	"github.com/automoto/cubecombat/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

func (t *tick) startBeam(angle float64) {
	a := t.red.Attack
	a.Beam = components.BeamWindup
	a.FlashCount = 0
	a.FlashTimer = cfg.Beam.FlashDuration
	a.BeamAngle = angle
	t.emit(EventBeamWindup, components.SideRed, 0)
}

// updateBeamWindup counts blinks and fires after the release blinks. The
// AI keeps aiming at blue while winding up; a player's aim stays locked.
func (t *tick) updateBeamWindup() {
	a := t.red.Attack
	if !t.pvp() {
		a.BeamAngle = t.aimAtBlue()
	}
	if blink(a, t.dt(), cfg.Beam.FlashDuration) && a.FlashCount > cfg.Beam.FlashCycles*2+1 {
		t.fireBeam()
	}
}

// BeamSegment returns the beam line from a cube center along angle. It
// starts at the cube edge and runs cfg.Beam.Length from the center.
func BeamSegment(cx, cy, angle float64) (x1, y1, x2, y2 float64) {
	ux, uy := gamemath.Unit(angle)
	start := cfg.Cube.Size / 2
	return cx + ux*start, cy + uy*start, cx + ux*cfg.Beam.Length, cy + uy*cfg.Beam.Length
}

// fireBeam resolves the beam hit once, then leaves the line on screen for
// the linger time.
func (t *tick) fireBeam() {
	red, blue, a := t.red, t.blue, t.red.Attack
	cx, cy := red.Center()
	a.BeamX1, a.BeamY1, a.BeamX2, a.BeamY2 = BeamSegment(cx, cy, a.BeamAngle)

	t.emit(EventBeamFired, components.SideRed, 0)
	if blue.Actor.Active && gamemath.SegmentHitsRect(a.BeamX1, a.BeamY1, a.BeamX2, a.BeamY2,
		blue.Body.X, blue.Body.Y, blue.Body.W, blue.Body.H) {
		damage := 0
		if !t.debug() {
			damage = cfg.Beam.Damage
			blue.Health.Current -= damage
		}
		t.emit(EventBeamHit, components.SideBlue, damage)
	}

	a.Beam = components.BeamIdle
	a.FlashCount = 0
	a.FlashTimer = 0
	a.BeamCooldown = cfg.Beam.Cooldown
	a.BeamLinger = cfg.Beam.Linger
	a.BeamFade = gween.New(1, 0, float32(cfg.Beam.Linger.Seconds()), ease.OutQuad)
	a.BeamAlpha = 1
}

// updateBeamLinger fades the fired beam. In PvP the drawn line follows
// blue until it clears; it never deals damage again.
func (t *tick) updateBeamLinger() {
	a := t.red.Attack
	if a.BeamLinger <= 0 {
		return
	}
	if t.pvp() {
		a.BeamAngle = t.aimAtBlue()
		cx, cy := t.red.Center()
		a.BeamX1, a.BeamY1, a.BeamX2, a.BeamY2 = BeamSegment(cx, cy, a.BeamAngle)
	}
	if a.BeamFade != nil {
		a.BeamAlpha, _ = a.BeamFade.Update(float32(t.dt().Seconds()))
	}
	if tickDown(&a.BeamLinger, t.dt()) {
		a.BeamAlpha = 0
	}
}
