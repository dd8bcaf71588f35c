package factory

import (
	"github.com/automoto/cubecombat/archetypes"
	"github.com/automoto/cubecombat/components"
	cfg "github.com/automoto/cubecombat/config"
	"github.com/automoto/cubecombat/shared/savedata"
	"github.com/automoto/cubecombat/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CubeSpec places one cube.
type CubeSpec struct {
	X, Y   float64
	Facing components.Facing
	Human  bool
	Name   string
	Color  string
}

// ArenaSpec describes a fresh match.
type ArenaSpec struct {
	Width, Height float64
	Mode          cfg.MatchModeID
	Blue, Red     CubeSpec
	Stats         savedata.Stats
}

// Arena holds the entries a match scene keeps handles to.
type Arena struct {
	Match *donburi.Entry
	Space *donburi.Entry
	Blue  *donburi.Entry
	Red   *donburi.Entry
}

// CreateArena spawns the space, both cubes and the match singleton.
func CreateArena(w donburi.World, spec ArenaSpec) Arena {
	var a Arena

	a.Space = CreateSpace(w, int(spec.Width), int(spec.Height), cfg.Arena.CellSize, cfg.Arena.CellSize)
	space := components.Space.Get(a.Space)

	a.Match = archetypes.Match.Spawn(w)
	components.Match.SetValue(a.Match, components.MatchData{
		Mode:   spec.Mode,
		Width:  spec.Width,
		Height: spec.Height,
		Stats:  spec.Stats,
	})

	spec.Blue.Human = true
	spec.Red.Human = spec.Mode == cfg.MatchModePvP
	a.Blue = CreateCube(w, space, components.SideBlue, spec.Blue)
	a.Red = CreateCube(w, space, components.SideRed, spec.Red)
	return a
}

func CreateSpace(w donburi.World, width, height, cellWidth, cellHeight int) *donburi.Entry {
	entry := archetypes.Space.Spawn(w)
	components.Space.Set(entry, resolv.NewSpace(width, height, cellWidth, cellHeight))
	return entry
}

// CreateCube spawns a cube body into space. Blue gets the slash and
// parry kit, red the charge and beam kit.
func CreateCube(w donburi.World, space *resolv.Space, side components.Side, spec CubeSpec) *donburi.Entry {
	var cube *donburi.Entry
	sideTag := tags.ResolvBlue
	if side == components.SideRed {
		cube = archetypes.RedCube.Spawn(w)
		sideTag = tags.ResolvRed
	} else {
		cube = archetypes.BlueCube.Spawn(w)
	}

	size := cfg.Cube.Size
	obj := resolv.NewObject(spec.X, spec.Y, size, size, tags.ResolvCube, sideTag)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = cube
	space.Add(obj)
	components.Object.SetValue(cube, components.ObjectData{Object: obj})

	components.Actor.SetValue(cube, components.ActorData{
		Side:        side,
		Active:      true,
		Facing:      spec.Facing,
		Human:       spec.Human,
		SpawnX:      spec.X,
		SpawnY:      spec.Y,
		SpawnFacing: spec.Facing,
		Name:        spec.Name,
		Color:       spec.Color,
	})
	components.Health.SetValue(cube, components.HealthData{
		Current: cfg.Cube.MaxHealth,
		Max:     cfg.Cube.MaxHealth,
	})

	return cube
}

// ParseFacing maps a map or config facing name to the component value.
func ParseFacing(s string) components.Facing {
	switch s {
	case "up":
		return components.FacingUp
	case "down":
		return components.FacingDown
	case "left":
		return components.FacingLeft
	case "right":
		return components.FacingRight
	default:
		return components.FacingNone
	}
}
