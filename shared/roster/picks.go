package roster

// PickTurn is whose choice the character select is waiting on.
type PickTurn int

const (
	TurnP1 PickTurn = iota
	TurnP2
	TurnDone
)

// PlaceholderNote is shown when a cube past the first two is picked.
const PlaceholderNote = "First 2 cubes work but rest are only placeholders"

// Picks is the character select state. Player one picks first; a cube
// taken by one player cannot be picked by the other.
type Picks struct {
	P1, P2  int // cube ids, 0 when unpicked
	Turn    PickTurn
	Message string
}

// Choose records the current player's pick. It reports false when the
// cube is already taken or both players have picked.
func (p *Picks) Choose(c Cube) bool {
	switch p.Turn {
	case TurnP1:
		if c.ID == p.P2 {
			return false
		}
		p.P1 = c.ID
		p.Turn = TurnP2
	case TurnP2:
		if c.ID == p.P1 {
			return false
		}
		p.P2 = c.ID
		p.Turn = TurnDone
	default:
		return false
	}

	p.Message = ""
	if c.ID > 2 {
		p.Message = PlaceholderNote
	}
	return true
}

// Ready reports whether both players have picked.
func (p *Picks) Ready() bool {
	return p.Turn == TurnDone
}

// Prompt is the instruction line for the current turn.
func (p *Picks) Prompt() string {
	switch p.Turn {
	case TurnP1:
		return "PLAYER 1: CHOOSE YOUR CUBE"
	case TurnP2:
		return "PLAYER 2: CHOOSE YOUR CUBE"
	default:
		return "BOTH PLAYERS SELECTED"
	}
}
