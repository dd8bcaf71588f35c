package combat

import (
	"math"

	"github.com/automoto/cubecombat/components"
	cfg "github.com/automoto/cubecombat/config"
	"github.com/automoto/cubecombat/shared/gamemath"
)

// ClassifyMode picks the AI movement mode from the distance between the
// cube centers and the AI's health. Jitter never affects the mode.
func ClassifyMode(distance float64, health int) components.BotMode {
	ai := cfg.AI
	switch {
	case health <= ai.RetreatHealth && distance > ai.MaintainMax:
		return components.BotDefensiveRetreat
	case distance < ai.AttackRange:
		return components.BotAttack
	case distance > ai.MaintainMax:
		return components.BotCloseGap
	case distance < ai.MaintainMin:
		return components.BotBackOff
	default:
		return components.BotMaintain
	}
}

// Move is one planned AI displacement.
type Move struct {
	Mode   components.BotMode
	X, Y   float64
	Facing components.Facing // FacingNone when unchanged
}

// PlanMove computes the AI's next top-left position. Maintain keeps the
// cube in place; the other modes walk at cfg.AI.MoveSpeed toward or away
// from the target, jittered on both axes and clamped to the arena.
func PlanMove(rng Rand, x, y, targetX, targetY float64, health int, width, height float64) Move {
	dist := gamemath.Distance(x, y, targetX, targetY)
	m := Move{Mode: ClassifyMode(dist, health), X: x, Y: y}

	var angle float64
	switch m.Mode {
	case components.BotAttack, components.BotCloseGap:
		angle = gamemath.Angle(x, y, targetX, targetY)
	case components.BotBackOff, components.BotDefensiveRetreat:
		angle = gamemath.Angle(targetX, targetY, x, y)
	default:
		return m
	}

	ux, uy := gamemath.Unit(angle)
	dx, dy := ux*cfg.AI.MoveSpeed, uy*cfg.AI.MoveSpeed
	m.Facing = FacingFor(dx, dy)

	dx += jitter(rng, cfg.AI.Jitter)
	dy += jitter(rng, cfg.AI.Jitter)
	m.X, m.Y = gamemath.ClampToArena(x+dx, y+dy, cfg.Cube.Size, width, height)
	return m
}

// FacingFor maps a displacement to the cardinal facing of its larger
// axis. Ties favour horizontal; the zero vector yields FacingNone.
func FacingFor(dx, dy float64) components.Facing {
	horizontal, ok := gamemath.HorizontalDominant(dx, dy)
	switch {
	case !ok:
		return components.FacingNone
	case horizontal && dx > 0:
		return components.FacingRight
	case horizontal:
		return components.FacingLeft
	case dy > 0:
		return components.FacingDown
	default:
		return components.FacingUp
	}
}

// FacingAngle is the beam angle for a facing: right 0, down π/2, left π,
// up -π/2.
func FacingAngle(f components.Facing) (float64, bool) {
	switch f {
	case components.FacingRight:
		return 0, true
	case components.FacingDown:
		return math.Pi / 2, true
	case components.FacingLeft:
		return math.Pi, true
	case components.FacingUp:
		return -math.Pi / 2, true
	default:
		return 0, false
	}
}

// moveHuman applies held direction keys. Each key moves the cube by
// cfg.Cube.MoveSpeed; facing follows the last held key in left, right,
// up, down order.
func moveHuman(f *Fighter, c Controls, width, height float64) {
	speed := cfg.Cube.MoveSpeed
	x, y := f.Body.X, f.Body.Y
	moved := false

	step := func(held bool, dx, dy float64, facing components.Facing) {
		if !held {
			return
		}
		x += dx * speed
		y += dy * speed
		f.Actor.Facing = facing
		moved = true
	}
	step(c.Left, -1, 0, components.FacingLeft)
	step(c.Right, 1, 0, components.FacingRight)
	step(c.Up, 0, -1, components.FacingUp)
	step(c.Down, 0, 1, components.FacingDown)

	if moved {
		f.Body.MoveTo(gamemath.ClampToArena(x, y, cfg.Cube.Size, width, height))
	}
}
