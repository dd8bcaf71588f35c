package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// MeleeData is the blue slash. Damage is resolved when the slash is
// cast; the hitbox only stays for display.
type MeleeData struct {
	Cooldown time.Duration
	Linger   time.Duration

	X, Y, W, H float64
}

// HitboxVisible reports whether the slash box is still drawn.
func (m *MeleeData) HitboxVisible() bool {
	return m.Linger > 0
}

var Melee = donburi.NewComponentType[MeleeData]()
