package combat

import (
	"testing"
	"time"

	"github.com/automoto/cubecombat/components"
	cfg "github.com/automoto/cubecombat/config"
	"github.com/automoto/cubecombat/shared/savedata"
	"github.com/automoto/cubecombat/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"pgregory.net/rapid"
)

// fixedRand returns the same value forever. 0.5 fails every trigger
// roll and produces zero jitter.
type fixedRand float64

func (r fixedRand) Float64() float64 { return float64(r) }

const calm = fixedRand(0.5)

func newMatch(t *testing.T, mode cfg.MatchModeID) (donburi.World, *Fighter, *Fighter) {
	t.Helper()
	w := donburi.NewWorld()
	factory.CreateArena(w, factory.ArenaSpec{
		Width:  800,
		Height: 600,
		Mode:   mode,
		Blue:   factory.CubeSpec{X: 20, Y: 275, Facing: components.FacingRight},
		Red:    factory.CubeSpec{X: 730, Y: 275, Facing: components.FacingLeft},
	})
	blue, red, ok := Fighters(w)
	require.True(t, ok)
	return w, blue, red
}

func match(t *testing.T, w donburi.World) *components.MatchData {
	t.Helper()
	e, ok := components.Match.First(w)
	require.True(t, ok)
	return components.Match.Get(e)
}

func kinds(events []Event) []EventKind {
	out := make([]EventKind, 0, len(events))
	for _, e := range events {
		out = append(out, e.Kind)
	}
	return out
}

func startWindup(a *components.AttackData) {
	a.Charge = components.ChargeWindup
	a.FlashCount = 0
	a.FlashTimer = cfg.Charge.FlashDuration
	a.DirX, a.DirY = -1, 0
}

func TestChargeWindupTransitionsAfterExactCycles(t *testing.T) {
	for _, mode := range []cfg.MatchModeID{cfg.MatchModeAI, cfg.MatchModePvP} {
		t.Run(mode.String(), func(t *testing.T) {
			w, _, red := newMatch(t, mode)
			startWindup(red.Attack)

			expiries := ChargeCycles(mode == cfg.MatchModePvP)*2 + 1
			frame := Frame{Dt: cfg.Charge.FlashDuration}
			for i := 1; i < expiries; i++ {
				Step(w, calm, frame)
				require.Equal(t, components.ChargeWindup, red.Attack.Charge, "expiry %d", i)
				require.Equal(t, i, red.Attack.FlashCount)
			}
			Step(w, calm, frame)
			assert.Equal(t, components.ChargeCharging, red.Attack.Charge)
		})
	}
}

func TestChargeWindupWaitsForTimer(t *testing.T) {
	w, _, red := newMatch(t, cfg.MatchModeAI)
	startWindup(red.Attack)

	for i := 0; i < 11; i++ {
		Step(w, calm, Frame{Dt: 16 * time.Millisecond})
	}
	assert.Equal(t, 0, red.Attack.FlashCount)

	Step(w, calm, Frame{Dt: 30 * time.Millisecond})
	assert.Equal(t, 1, red.Attack.FlashCount)
	assert.Equal(t, cfg.Charge.FlashDuration, red.Attack.FlashTimer)
}

func TestParryLandsOnlyOnFinalBlink(t *testing.T) {
	dt := time.Millisecond

	cases := []struct {
		name  string
		mode  cfg.MatchModeID
		beam  bool
		final int
		last  int // highest count the windup can sit on
	}{
		{"charge AI", cfg.MatchModeAI, false, ChargeCycles(false) * 2, ChargeCycles(false) * 2},
		{"charge PvP", cfg.MatchModePvP, false, ChargeCycles(true) * 2, ChargeCycles(true) * 2},
		{"beam AI", cfg.MatchModeAI, true, cfg.Beam.FlashCycles * 2, cfg.Beam.FlashCycles*2 + 1},
		{"beam PvP", cfg.MatchModePvP, true, cfg.Beam.FlashCycles * 2, cfg.Beam.FlashCycles*2 + 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for count := 0; count <= tc.last; count++ {
				w, blue, red := newMatch(t, tc.mode)
				a := red.Attack
				if tc.beam {
					a.Beam = components.BeamWindup
					a.FlashTimer = cfg.Beam.FlashDuration
					a.BeamAngle = 0
				} else {
					startWindup(a)
				}
				a.FlashCount = count

				events := Step(w, calm, Frame{Dt: dt, P1: Controls{Parry: true}})

				if count == tc.final {
					assert.Equal(t, components.ChargeEndlag, a.Charge)
					assert.Equal(t, components.BeamIdle, a.Beam)
					assert.Equal(t, components.PhaseEndlag, a.Phase())
					assert.Equal(t, 2*cfg.Charge.Endlag-dt, a.Endlag)
					assert.True(t, a.Parried)
					assert.Zero(t, a.FlashCount)
					assert.Zero(t, a.BeamLinger, "a parried beam never fires")
					assert.True(t, blue.Parry.Success)
					assert.Contains(t, kinds(events), EventParry)
					continue
				}

				if tc.beam {
					assert.Equal(t, components.BeamWindup, a.Beam, "count %d", count)
					assert.Equal(t, components.ChargeIdle, a.Charge, "count %d", count)
				} else {
					assert.Equal(t, components.ChargeWindup, a.Charge, "count %d", count)
				}
				assert.Equal(t, count, a.FlashCount)
				assert.False(t, a.Parried)
				assert.False(t, blue.Parry.Success)
				assert.True(t, blue.Parry.Active)
				assert.Equal(t, cfg.Parry.FailWindow-dt, blue.Parry.Timer)
				assert.Contains(t, kinds(events), EventParryMiss)
			}
		})
	}
}

func TestParryIndicatorExpires(t *testing.T) {
	w, blue, _ := newMatch(t, cfg.MatchModeAI)

	Step(w, calm, Frame{Dt: time.Millisecond, P1: Controls{Parry: true}})
	require.True(t, blue.Parry.Active)

	Step(w, calm, Frame{Dt: cfg.Parry.FailWindow})
	assert.False(t, blue.Parry.Active)
	assert.Zero(t, blue.Parry.Timer)
}

func TestChargeAtRightBoundaryClampsAndEndsSameTick(t *testing.T) {
	w, _, red := newMatch(t, cfg.MatchModeAI)
	red.Body.MoveTo(740, 275)
	red.Attack.Charge = components.ChargeCharging
	red.Attack.DirX, red.Attack.DirY = 1, 0

	events := Step(w, calm, Frame{Dt: 16 * time.Millisecond})

	assert.Equal(t, 750.0, red.Body.X)
	assert.Equal(t, components.ChargeEndlag, red.Attack.Charge)
	assert.Equal(t, cfg.Charge.Endlag, red.Attack.Endlag)
	assert.True(t, red.Attack.BoundaryHit)
	assert.Equal(t, 100, red.Health.Current)
	assert.Contains(t, events, Event{Kind: EventChargeBoundary, Side: components.SideRed})
}

func TestPvPBoundaryCostsHealth(t *testing.T) {
	for _, debug := range []bool{false, true} {
		w, _, red := newMatch(t, cfg.MatchModePvP)
		red.Body.MoveTo(400, 10)
		red.Attack.Charge = components.ChargeCharging
		red.Attack.DirX, red.Attack.DirY = 0, -1

		Step(w, calm, Frame{Dt: 16 * time.Millisecond, Debug: debug})

		assert.Equal(t, 0.0, red.Body.Y)
		assert.Equal(t, cfg.Charge.PvPBoundaryStun, red.Attack.Endlag)
		if debug {
			assert.Equal(t, 100, red.Health.Current)
		} else {
			assert.Equal(t, 100-cfg.Charge.PvPBoundaryDamage, red.Health.Current)
		}
	}
}

func TestEndlagReturnsToIdleAndMaintain(t *testing.T) {
	w, _, red := newMatch(t, cfg.MatchModeAI)
	red.Attack.Charge = components.ChargeEndlag
	red.Attack.Endlag = 20 * time.Millisecond
	red.Bot.Mode = components.BotAttack

	Step(w, calm, Frame{Dt: 16 * time.Millisecond})
	assert.Equal(t, components.ChargeEndlag, red.Attack.Charge)

	Step(w, calm, Frame{Dt: 16 * time.Millisecond})
	assert.Equal(t, components.ChargeIdle, red.Attack.Charge)
	assert.Equal(t, components.BotMaintain, red.Bot.Mode)
}

func TestChargeContactDefeatsOnce(t *testing.T) {
	w, blue, red := newMatch(t, cfg.MatchModeAI)
	red.Body.MoveTo(80, 275)
	red.Attack.Charge = components.ChargeCharging
	red.Attack.DirX, red.Attack.DirY = -1, 0

	events := Step(w, calm, Frame{Dt: 16 * time.Millisecond})

	m := match(t, w)
	assert.Equal(t, []EventKind{EventChargeHit, EventDefeat}, kinds(events))
	assert.Equal(t, 0, blue.Health.Current)
	assert.False(t, blue.Actor.Active)
	assert.True(t, m.GameOver)
	assert.Equal(t, components.SideRed, m.Winner)
	assert.Equal(t, 1, m.Stats.RedKills)
	assert.Equal(t, components.ChargeEndlag, red.Attack.Charge)

	assert.Empty(t, Step(w, calm, Frame{Dt: 16 * time.Millisecond}))
	assert.Equal(t, 1, m.Stats.RedKills)
	assert.Zero(t, m.Stats.BlueKills)
}

func TestBlueDefeatCreditsRedKillsLine(t *testing.T) {
	w, blue, _ := newMatch(t, cfg.MatchModeAI)
	m := match(t, w)
	m.Stats = savedata.Stats{RedKills: 3, BlueKills: 2}
	blue.Health.Current = 0

	Step(w, calm, Frame{Dt: time.Millisecond})

	data, err := m.Stats.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "red cube killed: 4\nblue cube killed: 2\n", string(data))
}

func TestChargeContactFixedDamage(t *testing.T) {
	saved := cfg.Charge
	t.Cleanup(func() { cfg.Charge = saved })
	cfg.Charge.InstantKill = false

	w, blue, red := newMatch(t, cfg.MatchModeAI)
	red.Body.MoveTo(80, 275)
	red.Attack.Charge = components.ChargeCharging
	red.Attack.DirX, red.Attack.DirY = -1, 0

	Step(w, calm, Frame{Dt: 16 * time.Millisecond})
	assert.Equal(t, 100-cfg.Charge.Damage, blue.Health.Current)
	assert.True(t, blue.Actor.Active)
}

func TestDebugMakesBlueImmuneToCharge(t *testing.T) {
	w, blue, red := newMatch(t, cfg.MatchModeAI)
	red.Body.MoveTo(80, 275)
	red.Attack.Charge = components.ChargeCharging
	red.Attack.DirX, red.Attack.DirY = -1, 0

	events := Step(w, calm, Frame{Dt: 16 * time.Millisecond, Debug: true})
	assert.Equal(t, 100, blue.Health.Current)
	assert.Equal(t, []Event{{Kind: EventChargeHit, Side: components.SideBlue}}, events)
}

func TestAIBeamFiresAfterReleaseBlinks(t *testing.T) {
	w, blue, red := newMatch(t, cfg.MatchModeAI)
	red.Body.MoveTo(300, 275)
	a := red.Attack
	a.Beam = components.BeamWindup
	a.FlashTimer = cfg.Beam.FlashDuration

	frame := Frame{Dt: cfg.Beam.FlashDuration}
	fireAt := cfg.Beam.FlashCycles*2 + 2
	for i := 1; i < fireAt; i++ {
		Step(w, calm, frame)
		require.Equal(t, components.BeamWindup, a.Beam, "expiry %d", i)
	}

	events := Step(w, calm, frame)
	assert.Equal(t, []EventKind{EventBeamFired, EventBeamHit}, kinds(events))
	assert.Equal(t, 100-cfg.Beam.Damage, blue.Health.Current)
	assert.Equal(t, components.BeamIdle, a.Beam)
	assert.Equal(t, cfg.Beam.Cooldown, a.BeamCooldown)
	assert.Equal(t, cfg.Beam.Linger-frame.Dt, a.BeamLinger)
	assert.True(t, a.BeamVisible())

	// lingering beam never hits again
	for a.BeamVisible() {
		assert.NotContains(t, kinds(Step(w, calm, Frame{Dt: 16 * time.Millisecond})), EventBeamHit)
	}
	assert.Equal(t, 100-cfg.Beam.Damage, blue.Health.Current)
	assert.Zero(t, a.BeamAlpha)
}

func TestPvPBeamAimLocksToFacing(t *testing.T) {
	w, blue, red := newMatch(t, cfg.MatchModePvP)
	blue.Body.MoveTo(20, 20)

	events := Step(w, calm, Frame{Dt: time.Millisecond, P2: Controls{Beam: true}})
	require.Contains(t, kinds(events), EventBeamWindup)
	require.Equal(t, components.BeamWindup, red.Attack.Beam)

	var fired []Event
	for i := 0; i < 20 && red.Attack.Beam == components.BeamWindup; i++ {
		fired = Step(w, calm, Frame{Dt: cfg.Beam.FlashDuration})
	}
	assert.Equal(t, []EventKind{EventBeamFired}, kinds(fired), "a horizontal beam misses a cube above it")
	assert.Equal(t, 100, blue.Health.Current)
}

func TestPvPBeamRespectsCooldown(t *testing.T) {
	w, _, red := newMatch(t, cfg.MatchModePvP)
	red.Attack.BeamCooldown = time.Second

	Step(w, calm, Frame{Dt: time.Millisecond, P2: Controls{Beam: true}})
	assert.Equal(t, components.BeamIdle, red.Attack.Beam)

	Step(w, calm, Frame{Dt: time.Millisecond, Debug: true, P2: Controls{Beam: true}})
	assert.Equal(t, components.BeamWindup, red.Attack.Beam)
}

func TestPvPChargeUsesFacing(t *testing.T) {
	w, _, red := newMatch(t, cfg.MatchModePvP)
	red.Actor.Facing = components.FacingUp

	Step(w, calm, Frame{Dt: time.Millisecond, P2: Controls{Charge: true}})
	assert.Equal(t, components.ChargeWindup, red.Attack.Charge)
	assert.Equal(t, 0.0, red.Attack.DirX)
	assert.Equal(t, -1.0, red.Attack.DirY)
}

func TestSlashNeedsFacing(t *testing.T) {
	w, blue, _ := newMatch(t, cfg.MatchModeAI)
	blue.Actor.Facing = components.FacingNone

	events := Step(w, calm, Frame{Dt: time.Millisecond, P1: Controls{Slash: true}})
	assert.Empty(t, events)
	assert.Zero(t, blue.Melee.Cooldown)
	assert.False(t, blue.Melee.HitboxVisible())
}

func TestSlashHitsAdjacentRed(t *testing.T) {
	w, blue, red := newMatch(t, cfg.MatchModeAI)
	blue.Body.MoveTo(300, 275)
	red.Body.MoveTo(350, 275)
	dt := time.Millisecond

	events := Step(w, calm, Frame{Dt: dt, P1: Controls{Slash: true}})
	assert.Equal(t, []EventKind{EventSlash, EventSlashHit}, kinds(events))
	assert.Equal(t, 100-cfg.Melee.Damage, red.Health.Current)
	assert.Equal(t, cfg.Melee.Cooldown-dt, blue.Melee.Cooldown)
	assert.Equal(t, 350.0, blue.Melee.X)

	// cooling down
	events = Step(w, calm, Frame{Dt: dt, P1: Controls{Slash: true}})
	assert.NotContains(t, kinds(events), EventSlash)

	// debug ignores the cooldown
	events = Step(w, calm, Frame{Dt: dt, Debug: true, P1: Controls{Slash: true}})
	assert.Contains(t, kinds(events), EventSlash)
}

func TestSlashMissesDistantRed(t *testing.T) {
	w, blue, red := newMatch(t, cfg.MatchModeAI)
	blue.Actor.Facing = components.FacingUp

	events := Step(w, calm, Frame{Dt: time.Millisecond, P1: Controls{Slash: true}})
	assert.Equal(t, []EventKind{EventSlash}, kinds(events))
	assert.Equal(t, 100, red.Health.Current)
	assert.Equal(t, 225.0, blue.Melee.Y)
}

func TestDebugRespawnsRedInAIMode(t *testing.T) {
	w, _, red := newMatch(t, cfg.MatchModeAI)
	red.Body.MoveTo(400, 100)
	red.Health.Current = 0

	events := Step(w, calm, Frame{Dt: time.Millisecond, Debug: true})

	m := match(t, w)
	assert.Equal(t, []EventKind{EventDefeat, EventRespawn}, kinds(events))
	assert.True(t, red.Actor.Active)
	assert.Equal(t, red.Health.Max, red.Health.Current)
	assert.Equal(t, 730.0, red.Body.X)
	assert.Equal(t, 1, m.Stats.BlueKills)
	assert.False(t, m.GameOver)
}

func TestRedDefeatEndsMatch(t *testing.T) {
	w, _, red := newMatch(t, cfg.MatchModeAI)
	red.Health.Current = -5

	Step(w, calm, Frame{Dt: time.Millisecond})

	m := match(t, w)
	assert.True(t, m.GameOver)
	assert.Equal(t, components.SideBlue, m.Winner)
	assert.False(t, red.Actor.Active)
	assert.Equal(t, 0, red.Health.Display())
}

func TestResetRestoresStart(t *testing.T) {
	w, blue, red := newMatch(t, cfg.MatchModeAI)
	blue.Body.MoveTo(400, 400)
	blue.Health.Current = 10
	blue.Actor.Facing = components.FacingDown
	red.Health.Current = 0
	red.Attack.Charge = components.ChargeCharging
	red.Attack.BeamCooldown = time.Second
	red.Bot.Mode = components.BotBackOff
	Step(w, calm, Frame{Dt: time.Millisecond})
	m := match(t, w)
	require.True(t, m.GameOver)

	Reset(w)

	assert.False(t, m.GameOver)
	assert.Equal(t, 1, m.Stats.BlueKills, "kill counters survive a reset")
	assert.Equal(t, 20.0, blue.Body.X)
	assert.Equal(t, 275.0, blue.Body.Y)
	assert.Equal(t, 100, blue.Health.Current)
	assert.Equal(t, components.FacingRight, blue.Actor.Facing)
	assert.True(t, red.Actor.Active)
	assert.Equal(t, components.FacingLeft, red.Actor.Facing)
	assert.Equal(t, components.AttackData{}, *red.Attack)
	assert.Equal(t, components.BotMaintain, red.Bot.Mode)
}

func TestDebugZeroesCooldowns(t *testing.T) {
	w, blue, red := newMatch(t, cfg.MatchModeAI)
	blue.Melee.Cooldown = time.Second
	red.Attack.BeamCooldown = time.Second

	Step(w, calm, Frame{Dt: time.Millisecond, Debug: true})
	assert.Zero(t, blue.Melee.Cooldown)
	assert.Zero(t, red.Attack.BeamCooldown)
	assert.True(t, match(t, w).Debug)
}

func TestHumanMovement(t *testing.T) {
	w, blue, red := newMatch(t, cfg.MatchModePvP)

	Step(w, calm, Frame{Dt: time.Millisecond, P1: Controls{Left: true, Up: true}})
	assert.Equal(t, 15.0, blue.Body.X)
	assert.Equal(t, 270.0, blue.Body.Y)
	assert.Equal(t, components.FacingUp, blue.Actor.Facing, "last key in left, right, up, down order wins")

	blue.Body.MoveTo(0, 0)
	Step(w, calm, Frame{Dt: time.Millisecond, P1: Controls{Left: true}})
	assert.Equal(t, 0.0, blue.Body.X)

	Step(w, calm, Frame{Dt: time.Millisecond, P2: Controls{Right: true}})
	assert.Equal(t, 735.0, red.Body.X)
	assert.Equal(t, components.FacingRight, red.Actor.Facing)

	red.Attack.Charge = components.ChargeEndlag
	red.Attack.Endlag = time.Second
	Step(w, calm, Frame{Dt: time.Millisecond, P2: Controls{Left: true}})
	assert.Equal(t, 735.0, red.Body.X, "red cannot move while stuck")
}

func TestAIMovesTowardDistantBlue(t *testing.T) {
	w, _, red := newMatch(t, cfg.MatchModeAI)

	Step(w, calm, Frame{Dt: 16 * time.Millisecond})
	assert.Equal(t, components.BotCloseGap, red.Bot.Mode)
	assert.InDelta(t, 730-cfg.AI.MoveSpeed, red.Body.X, 1e-9)
	assert.Equal(t, components.FacingLeft, red.Actor.Facing)
}

func TestAITriggersChargeOnRoll(t *testing.T) {
	w, _, red := newMatch(t, cfg.MatchModeAI)

	events := Step(w, fixedRand(0), Frame{Dt: 16 * time.Millisecond})
	assert.Equal(t, []EventKind{EventChargeWindup}, kinds(events), "beam is out of range")
	assert.InDelta(t, -1.0, red.Attack.DirX, 1e-9)
	assert.InDelta(t, 0.0, red.Attack.DirY, 1e-9)
}

func TestAITriggersBeamInRange(t *testing.T) {
	w, _, red := newMatch(t, cfg.MatchModeAI)
	red.Body.MoveTo(150, 275)

	events := Step(w, fixedRand(0), Frame{Dt: 16 * time.Millisecond})
	assert.Equal(t, []EventKind{EventBeamWindup}, kinds(events))
	assert.Equal(t, components.PhaseSpecialWindup, red.Attack.Phase())
}

func TestStepWithoutMatchIsNoop(t *testing.T) {
	assert.Nil(t, Step(donburi.NewWorld(), calm, Frame{Dt: time.Millisecond}))
}

func TestHealthOnlyRisesOnRespawn(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		mode := cfg.MatchModeID(rapid.IntRange(0, 1).Draw(t, "mode"))
		debug := rapid.Bool().Draw(t, "debug")
		rng := NewRand(rapid.Int64Range(1, 1<<40).Draw(t, "seed"))

		w := donburi.NewWorld()
		factory.CreateArena(w, factory.ArenaSpec{
			Width:  800,
			Height: 600,
			Mode:   mode,
			Blue:   factory.CubeSpec{X: 20, Y: 275, Facing: components.FacingRight},
			Red:    factory.CubeSpec{X: 730, Y: 275, Facing: components.FacingLeft},
		})
		blue, red, _ := Fighters(w)

		controls := func(label string) Controls {
			return Controls{
				Left:   rapid.Bool().Draw(t, label+" left"),
				Right:  rapid.Bool().Draw(t, label+" right"),
				Up:     rapid.Bool().Draw(t, label+" up"),
				Down:   rapid.Bool().Draw(t, label+" down"),
				Slash:  rapid.Bool().Draw(t, label+" slash"),
				Parry:  rapid.Bool().Draw(t, label+" parry"),
				Beam:   rapid.Bool().Draw(t, label+" beam"),
				Charge: rapid.Bool().Draw(t, label+" charge"),
			}
		}

		frames := rapid.IntRange(1, 200).Draw(t, "frames")
		for i := 0; i < frames; i++ {
			prevBlue, prevRed := blue.Health.Current, red.Health.Current
			events := Step(w, rng, Frame{
				Dt:    time.Duration(rapid.IntRange(1, 250).Draw(t, "dt ms")) * time.Millisecond,
				Debug: debug,
				P1:    controls("p1"),
				P2:    controls("p2"),
			})

			respawned := false
			for _, ev := range events {
				if ev.Kind == EventRespawn && ev.Side == components.SideRed {
					respawned = true
				}
			}
			if blue.Health.Current > prevBlue {
				t.Fatalf("frame %d: blue health rose %d -> %d", i, prevBlue, blue.Health.Current)
			}
			if red.Health.Current > prevRed && !respawned {
				t.Fatalf("frame %d: red health rose %d -> %d without a respawn", i, prevRed, red.Health.Current)
			}
		}
	})
}
