package archetypes

import (
	"github.com/automoto/cubecombat/components"
	"github.com/automoto/cubecombat/tags"
	"github.com/yohamta/donburi"
)

var (
	BlueCube = newArchetype(
		tags.Cube,
		tags.BlueCube,
		components.Actor,
		components.Object,
		components.Health,
		components.Melee,
		components.Parry,
	)
	RedCube = newArchetype(
		tags.Cube,
		tags.RedCube,
		components.Actor,
		components.Object,
		components.Health,
		components.Attack,
		components.Bot,
	)
	Space = newArchetype(
		components.Space,
	)
	Match = newArchetype(
		components.Match,
	)
	Input = newArchetype(
		components.Input,
	)
	ScreenShake = newArchetype(
		components.ScreenShake,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype's components.
func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(append(a.components, cs...)...))
	return e
}
