package components

import (
	"time"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ChargePhase is the dash attack sub-machine.
type ChargePhase int

const (
	ChargeIdle ChargePhase = iota
	ChargeWindup
	ChargeCharging
	ChargeEndlag
)

func (p ChargePhase) String() string {
	switch p {
	case ChargeWindup:
		return "Windup"
	case ChargeCharging:
		return "Charging"
	case ChargeEndlag:
		return "Endlag"
	default:
		return "Idle"
	}
}

// BeamPhase is the special beam sub-machine.
type BeamPhase int

const (
	BeamIdle BeamPhase = iota
	BeamWindup
)

// AttackPhase is the combined view of both sub-machines.
type AttackPhase int

const (
	PhaseIdle AttackPhase = iota
	PhaseChargeWindup
	PhaseCharging
	PhaseEndlag
	PhaseSpecialWindup
)

func (p AttackPhase) String() string {
	switch p {
	case PhaseChargeWindup:
		return "Charge (Windup)"
	case PhaseCharging:
		return "Charge"
	case PhaseEndlag:
		return "Charge (Endlag)"
	case PhaseSpecialWindup:
		return "Special (Windup)"
	default:
		return "Idle"
	}
}

// AttackData holds the red cube's charge and beam state. The two
// sub-machines share the flash counters; only one of them leaves Idle at
// a time.
type AttackData struct {
	Charge ChargePhase
	Beam   BeamPhase

	FlashCount int
	FlashTimer time.Duration

	// Locked at windup start, unit length.
	DirX, DirY float64

	Endlag      time.Duration
	Parried     bool // current endlag came from a parry
	BoundaryHit bool // current endlag came from hitting the arena edge

	BeamAngle    float64
	BeamCooldown time.Duration
	BeamLinger   time.Duration
	BeamFade     *gween.Tween
	BeamAlpha    float32

	// Fired segment, kept for drawing while the beam lingers.
	BeamX1, BeamY1 float64
	BeamX2, BeamY2 float64
}

// Phase folds both sub-machines into one value.
func (a *AttackData) Phase() AttackPhase {
	if a.Beam == BeamWindup {
		return PhaseSpecialWindup
	}
	switch a.Charge {
	case ChargeWindup:
		return PhaseChargeWindup
	case ChargeCharging:
		return PhaseCharging
	case ChargeEndlag:
		return PhaseEndlag
	default:
		return PhaseIdle
	}
}

// Idle reports whether both sub-machines are idle.
func (a *AttackData) Idle() bool {
	return a.Charge == ChargeIdle && a.Beam == BeamIdle
}

// BeamVisible reports whether a fired beam is still on screen.
func (a *AttackData) BeamVisible() bool {
	return a.BeamLinger > 0
}

var Attack = donburi.NewComponentType[AttackData]()
