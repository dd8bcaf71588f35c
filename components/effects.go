package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScreenShakeData tracks an active screen shake. Decay eases the
// intensity from its peak to zero.
type ScreenShakeData struct {
	Decay     *gween.Tween
	Intensity float64 // current max offset in pixels
	Elapsed   int     // frames elapsed (for oscillation)
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()
