package components

import "github.com/yohamta/donburi"

// Side identifies which cube an entity is.
type Side int

const (
	SideBlue Side = iota
	SideRed
)

func (s Side) String() string {
	if s == SideRed {
		return "Red"
	}
	return "Blue"
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == SideRed {
		return SideBlue
	}
	return SideRed
}

// Facing is the last cardinal direction a cube moved in. FacingNone
// means no direction has been set, and facing-dependent attacks no-op.
type Facing int

const (
	FacingNone Facing = iota
	FacingUp
	FacingDown
	FacingLeft
	FacingRight
)

func (f Facing) String() string {
	switch f {
	case FacingUp:
		return "up"
	case FacingDown:
		return "down"
	case FacingLeft:
		return "left"
	case FacingRight:
		return "right"
	default:
		return "none"
	}
}

// Vector returns the unit step for the facing, (0, 0) for none.
func (f Facing) Vector() (x, y float64) {
	switch f {
	case FacingUp:
		return 0, -1
	case FacingDown:
		return 0, 1
	case FacingLeft:
		return -1, 0
	case FacingRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// ActorData is the per-cube identity and life state.
type ActorData struct {
	Side   Side
	Active bool // false once defeated
	Facing Facing
	Human  bool // driven by keyboard input

	SpawnX, SpawnY float64
	SpawnFacing    Facing

	// Cosmetic roster pick
	Name  string
	Color string
}

var Actor = donburi.NewComponentType[ActorData]()
