package systems

import (
	"math"
	"time"

	"github.com/automoto/cubecombat/archetypes"
	"github.com/automoto/cubecombat/combat"
	"github.com/automoto/cubecombat/components"
	cfg "github.com/automoto/cubecombat/config"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects decays the screen shake.
func UpdateEffects(ecs *ecs.ECS) {
	updateScreenShake(ecs.World, combat.FrameDuration(cfg.C.TPS))
}

func updateScreenShake(w donburi.World, dt time.Duration) {
	entry, ok := components.ScreenShake.First(w)
	if !ok {
		return
	}
	shake := components.ScreenShake.Get(entry)
	if shake.Decay == nil {
		return
	}

	v, finished := shake.Decay.Update(float32(dt.Seconds()))
	shake.Intensity = float64(v)
	shake.Elapsed++
	if finished {
		shake.Decay = nil
		shake.Intensity = 0
	}
}

// TriggerScreenShake starts a screen shake effect. A stronger shake
// already running is kept.
func TriggerScreenShake(w donburi.World, intensity float64, duration time.Duration) {
	entry, ok := components.ScreenShake.First(w)
	if !ok {
		entry = archetypes.ScreenShake.Spawn(w)
	}
	shake := components.ScreenShake.Get(entry)
	if shake.Decay != nil && shake.Intensity > intensity {
		return
	}
	shake.Decay = gween.New(float32(intensity), 0, float32(duration.Seconds()), ease.OutQuad)
	shake.Intensity = intensity
	shake.Elapsed = 0
}

// ShakeOffset returns the current draw offset.
func ShakeOffset(w donburi.World) (x, y float64) {
	entry, ok := components.ScreenShake.First(w)
	if !ok {
		return 0, 0
	}
	shake := components.ScreenShake.Get(entry)
	if shake.Intensity == 0 {
		return 0, 0
	}
	// Oscillating offset using sine/cosine for smooth shake
	x = math.Sin(float64(shake.Elapsed)*1.1) * shake.Intensity
	y = math.Cos(float64(shake.Elapsed)*1.3) * shake.Intensity
	return x, y
}
