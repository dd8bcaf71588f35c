package systems

import (
	"image/color"

	"github.com/automoto/cubecombat/combat"
	"github.com/automoto/cubecombat/components"
	cfg "github.com/automoto/cubecombat/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawArena renders the background, both cubes, the slash box and the
// beam. Everything except the background follows the screen shake.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Colors.Background)

	blue, red, ok := combat.Fighters(ecs.World)
	if !ok {
		return
	}
	ox, oy := ShakeOffset(ecs.World)

	if m := blue.Melee; m.HitboxVisible() {
		vector.FillRect(screen,
			float32(m.X+ox), float32(m.Y+oy), float32(m.W), float32(m.H),
			cfg.Colors.Melee, false)
	}

	if blue.Actor.Active {
		drawCube(screen, blue, CubeColor(blue.Actor, combat.BlueTelegraph(blue.Parry)), ox, oy)
		drawParry(screen, blue, ox, oy)
	}
	if red.Actor.Active {
		drawCube(screen, red, CubeColor(red.Actor, combat.RedTelegraph(red.Attack, cfg.Beam.FlashCycles)), ox, oy)
	}

	if a := red.Attack; a.BeamVisible() {
		vector.StrokeLine(screen,
			float32(a.BeamX1+ox), float32(a.BeamY1+oy),
			float32(a.BeamX2+ox), float32(a.BeamY2+oy),
			float32(cfg.Beam.Width), fade(cfg.Colors.Beam, a.BeamAlpha), true)
	}
}

// CubeColor picks the draw colour for a cube: the telegraph colour while
// one shows, otherwise the roster colour or the side default.
func CubeColor(actor *components.ActorData, t combat.Telegraph) color.RGBA {
	switch t {
	case combat.TelegraphDark:
		return cfg.Colors.Flash
	case combat.TelegraphRelease:
		return cfg.Colors.Release
	}
	if actor.Color != "" {
		return cfg.NamedColor(actor.Color)
	}
	if actor.Side == components.SideRed {
		return cfg.Colors.Red
	}
	return cfg.Colors.Blue
}

func drawCube(screen *ebiten.Image, f *combat.Fighter, c color.Color, ox, oy float64) {
	b := f.Body
	vector.FillRect(screen, float32(b.X+ox), float32(b.Y+oy), float32(b.W), float32(b.H), c, false)
}

func drawParry(screen *ebiten.Image, f *combat.Fighter, ox, oy float64) {
	p := f.Parry
	if p == nil || !p.Active {
		return
	}
	c := cfg.Colors.ParryFail
	if p.Success {
		c = cfg.Colors.ParryOK
	}
	b := f.Body
	vector.StrokeRect(screen,
		float32(b.X+ox-3), float32(b.Y+oy-3), float32(b.W+6), float32(b.H+6),
		3, fade(c, p.Alpha), false)
}

// fade scales a colour's alpha by a in [0, 1].
func fade(c color.RGBA, a float32) color.NRGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(float32(c.A) * a)}
}
