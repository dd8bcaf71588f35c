package components

import (
	"time"

	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ParryData is the cosmetic parry indicator on the defender.
type ParryData struct {
	Active  bool
	Success bool
	Timer   time.Duration

	Fade  *gween.Tween
	Alpha float32
}

var Parry = donburi.NewComponentType[ParryData]()
