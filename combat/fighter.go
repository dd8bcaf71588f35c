package combat

import (
	"github.com/automoto/cubecombat/components"
	"github.com/automoto/cubecombat/tags"
	"github.com/yohamta/donburi"
)

// Fighter bundles the component pointers of one cube. Kit components the
// cube's archetype lacks are nil: blue has no Attack or Bot, red has no
// Melee or Parry.
type Fighter struct {
	Entry  *donburi.Entry
	Actor  *components.ActorData
	Body   *components.ObjectData
	Health *components.HealthData

	Attack *components.AttackData
	Bot    *components.BotData
	Melee  *components.MeleeData
	Parry  *components.ParryData
}

// FighterOf reads the components of a cube entry.
func FighterOf(e *donburi.Entry) *Fighter {
	f := &Fighter{
		Entry:  e,
		Actor:  components.Actor.Get(e),
		Body:   components.Object.Get(e),
		Health: components.Health.Get(e),
	}
	if e.HasComponent(components.Attack) {
		f.Attack = components.Attack.Get(e)
	}
	if e.HasComponent(components.Bot) {
		f.Bot = components.Bot.Get(e)
	}
	if e.HasComponent(components.Melee) {
		f.Melee = components.Melee.Get(e)
	}
	if e.HasComponent(components.Parry) {
		f.Parry = components.Parry.Get(e)
	}
	return f
}

// Fighters returns the blue and red cubes of the world.
func Fighters(w donburi.World) (blue, red *Fighter, ok bool) {
	be, ok := tags.BlueCube.First(w)
	if !ok {
		return nil, nil, false
	}
	re, ok := tags.RedCube.First(w)
	if !ok {
		return nil, nil, false
	}
	return FighterOf(be), FighterOf(re), true
}

// Center returns the body center.
func (f *Fighter) Center() (float64, float64) {
	return f.Body.Center()
}

// Stuck reports whether the red machines hold the cube in place.
func (f *Fighter) Stuck() bool {
	return f.Attack != nil && !f.Attack.Idle()
}
