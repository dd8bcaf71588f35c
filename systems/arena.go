package systems

import (
	"log"

	"github.com/automoto/cubecombat/combat"
	"github.com/automoto/cubecombat/components"
	cfg "github.com/automoto/cubecombat/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateArena creates the match system. It polls the debug flag, feeds
// the frame's controls to combat.Step and handles restart and leaving.
func NewUpdateArena(sceneChanger SceneChanger, rng combat.Rand, createMenuScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		debug := PollDebug()

		entry, ok := components.Match.First(e.World)
		if !ok {
			return
		}
		match := components.Match.Get(entry)
		input := getOrCreateInput(e)

		if input.JustPressed(cfg.ActionToggleBodies) {
			cfg.Debug.DrawBodies = !cfg.Debug.DrawBodies
		}

		if match.GameOver {
			match.Debug = debug
			if input.JustPressed(cfg.ActionRestart) {
				combat.Reset(e.World)
				log.Printf("Match restarted")
			}
			return
		}

		if input.JustPressed(cfg.ActionBack) {
			sceneChanger.ChangeScene(createMenuScene())
			return
		}

		p1, p2 := FrameControls(input)
		events := combat.Step(e.World, rng, combat.Frame{
			Dt:    combat.FrameDuration(cfg.C.TPS),
			Debug: debug,
			P1:    p1,
			P2:    p2,
		})
		HandleEvents(e.World, match, events)
	}
}

// HandleEvents logs match events, persists the counters on a defeat and
// shakes the screen on damage.
func HandleEvents(w donburi.World, match *components.MatchData, events []combat.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case combat.EventDefeat:
			log.Printf("%s cube defeated", ev.Side)
			SaveStats(match.Stats)
		case combat.EventRespawn:
			log.Printf("Debug mode: %s cube respawning", ev.Side)
		case combat.EventParry:
			log.Printf("Parry! %s cube stunned", ev.Side)
		case combat.EventChargeBoundary:
			if ev.Hit() {
				log.Printf("%s cube hit the wall (%d)", ev.Side, ev.Damage)
			}
		}
		if ev.Hit() {
			TriggerScreenShake(w, cfg.ScreenShake.Intensity, cfg.ScreenShake.Duration)
		}
	}
}
