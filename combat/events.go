package combat

import (
	"fmt"

	"github.com/automoto/cubecombat/components"
)

// EventKind names something that happened during a tick.
type EventKind int

const (
	EventParry EventKind = iota
	EventParryMiss
	EventSlash
	EventSlashHit
	EventChargeWindup
	EventChargeHit
	EventChargeBoundary
	EventBeamWindup
	EventBeamFired
	EventBeamHit
	EventDefeat
	EventRespawn
)

var eventNames = [...]string{
	EventParry:          "parry",
	EventParryMiss:      "parry miss",
	EventSlash:          "slash",
	EventSlashHit:       "slash hit",
	EventChargeWindup:   "charge windup",
	EventChargeHit:      "charge hit",
	EventChargeBoundary: "charge boundary",
	EventBeamWindup:     "beam windup",
	EventBeamFired:      "beam fired",
	EventBeamHit:        "beam hit",
	EventDefeat:         "defeat",
	EventRespawn:        "respawn",
}

func (k EventKind) String() string {
	if int(k) < len(eventNames) {
		return eventNames[k]
	}
	return fmt.Sprintf("event(%d)", int(k))
}

// Event is reported by Step. Side is the cube the event happened to: the
// victim of a hit, the defeated cube, or the cube that acted.
type Event struct {
	Kind   EventKind
	Side   components.Side
	Damage int
}

func (e Event) String() string {
	if e.Damage != 0 {
		return fmt.Sprintf("%s %s (%d)", e.Side, e.Kind, e.Damage)
	}
	return fmt.Sprintf("%s %s", e.Side, e.Kind)
}

// Hit reports whether the event dealt damage to a cube.
func (e Event) Hit() bool {
	return e.Damage > 0
}
