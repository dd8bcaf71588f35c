package systems

import (
	"testing"
	"time"

	"github.com/automoto/cubecombat/combat"
	"github.com/automoto/cubecombat/components"
	cfg "github.com/automoto/cubecombat/config"
	"github.com/automoto/cubecombat/shared/savedata"
	"github.com/automoto/cubecombat/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

type memStore map[string][]byte

func (m memStore) LoadItem(key string) ([]byte, error) { return m[key], nil }
func (m memStore) SaveItem(key string, data []byte) error {
	m[key] = data
	return nil
}

func newWorld(t *testing.T) (donburi.World, *components.MatchData) {
	t.Helper()
	w := donburi.NewWorld()
	a := factory.CreateArena(w, factory.ArenaSpec{
		Width:  800,
		Height: 600,
		Mode:   cfg.MatchModeAI,
		Blue:   factory.CubeSpec{X: 20, Y: 275, Facing: components.FacingRight},
		Red:    factory.CubeSpec{X: 730, Y: 275, Facing: components.FacingLeft},
	})
	return w, components.Match.Get(a.Match)
}

func TestHandleEventsPersistsOnDefeat(t *testing.T) {
	st := memStore{}
	UsePersistence(st, false)
	t.Cleanup(func() { UsePersistence(nil, false) })

	w, match := newWorld(t)
	match.Stats = savedata.Stats{RedKills: 2, BlueKills: 1}

	HandleEvents(w, match, []combat.Event{
		{Kind: combat.EventChargeHit, Side: components.SideBlue, Damage: 100},
		{Kind: combat.EventDefeat, Side: components.SideBlue},
	})

	assert.Equal(t, savedata.Stats{RedKills: 2, BlueKills: 1}, LoadStats())

	entry, ok := components.ScreenShake.First(w)
	require.True(t, ok, "damage shakes the screen")
	assert.Equal(t, cfg.ScreenShake.Intensity, components.ScreenShake.Get(entry).Intensity)
}

func TestHandleEventsNoShakeWithoutDamage(t *testing.T) {
	w, match := newWorld(t)
	HandleEvents(w, match, []combat.Event{
		{Kind: combat.EventParryMiss, Side: components.SideBlue},
		{Kind: combat.EventBeamFired, Side: components.SideRed},
	})
	_, ok := components.ScreenShake.First(w)
	assert.False(t, ok)
}

func TestScreenShakeDecays(t *testing.T) {
	w := donburi.NewWorld()
	assert.Zero(t, firstOffset(w))

	TriggerScreenShake(w, 6, 100*time.Millisecond)
	TriggerScreenShake(w, 2, time.Second) // weaker shake keeps the running one
	entry, _ := components.ScreenShake.First(w)
	shake := components.ScreenShake.Get(entry)
	assert.Equal(t, 6.0, shake.Intensity)

	x, y := ShakeOffset(w)
	assert.InDelta(t, 0, x, 1e-9)
	assert.InDelta(t, 6, y, 1e-9)

	for i := 0; i < 10; i++ {
		updateScreenShake(w, 16*time.Millisecond)
	}
	assert.Nil(t, shake.Decay)
	assert.Zero(t, shake.Intensity)
	assert.Zero(t, firstOffset(w))
}

func firstOffset(w donburi.World) float64 {
	x, y := ShakeOffset(w)
	return x*x + y*y
}

func TestFrameControlsEdgeTriggersAttacks(t *testing.T) {
	in := &components.InputData{}
	in.Current[cfg.ActionP1Left] = true
	in.Current[cfg.ActionP1Slash] = true
	in.Current[cfg.ActionP2Beam] = true
	in.Previous[cfg.ActionP2Beam] = true

	p1, p2 := FrameControls(in)
	assert.True(t, p1.Left)
	assert.True(t, p1.Slash)
	assert.False(t, p1.Parry)
	assert.False(t, p2.Beam, "held beam does not refire")
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "AI (Red)", RedLabel(false))
	assert.Equal(t, "P2 (Red)", RedLabel(true))
	assert.Equal(t, "Blue: 0", HealthLabel("Blue", &components.HealthData{Current: -30, Max: 100}))

	assert.Equal(t, "Mode: Close Gap", ModeLabel(&components.AttackData{}, &components.BotData{Mode: components.BotCloseGap}))
	assert.Equal(t, "Mode: Charge (Windup)", ModeLabel(&components.AttackData{Charge: components.ChargeWindup}, nil))
	assert.Equal(t, "Mode: Parried (Stun)", ModeLabel(&components.AttackData{Charge: components.ChargeEndlag, Parried: true}, nil))
	assert.Empty(t, ModeLabel(nil, nil))

	assert.Equal(t, "Red Cube Wins! Press R to Restart", WinnerMessage(components.SideRed))
	assert.Equal(t, "Blue Cube Wins! Press R to Restart", WinnerMessage(components.SideBlue))
}

func TestCubeColor(t *testing.T) {
	red := &components.ActorData{Side: components.SideRed}
	assert.Equal(t, cfg.Colors.Red, CubeColor(red, combat.TelegraphNone))
	assert.Equal(t, cfg.Colors.Flash, CubeColor(red, combat.TelegraphDark))
	assert.Equal(t, cfg.Colors.Release, CubeColor(red, combat.TelegraphRelease))

	picked := &components.ActorData{Side: components.SideBlue, Color: "pink"}
	assert.Equal(t, cfg.Pink, CubeColor(picked, combat.TelegraphNone))
	assert.Equal(t, cfg.Colors.Blue, CubeColor(&components.ActorData{}, combat.TelegraphNone))
}
