package combat

import "github.com/automoto/cubecombat/components"

// Telegraph is the colour state a cube is drawn in.
type Telegraph int

const (
	TelegraphNone    Telegraph = iota // the cube's own colour
	TelegraphDark                     // windup blink, endlag, parry flash
	TelegraphRelease                  // beam about to fire
)

// RedTelegraph maps the red machines to a colour state. Odd flash counts
// blink dark; beam counts past the normal cycles show the release colour.
func RedTelegraph(a *components.AttackData, beamCycles int) Telegraph {
	switch {
	case a.Beam == components.BeamWindup:
		if a.FlashCount > beamCycles*2 {
			return TelegraphRelease
		}
		if a.FlashCount%2 == 1 {
			return TelegraphDark
		}
	case a.Charge == components.ChargeEndlag:
		return TelegraphDark
	case a.Charge == components.ChargeWindup:
		if a.FlashCount%2 == 1 {
			return TelegraphDark
		}
	}
	return TelegraphNone
}

// BlueTelegraph darkens the blue cube while the parry indicator shows.
func BlueTelegraph(p *components.ParryData) Telegraph {
	if p != nil && p.Active {
		return TelegraphDark
	}
	return TelegraphNone
}
