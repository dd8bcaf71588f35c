package combat

import (
	"github.com/automoto/cubecombat/components"
	cfg "github.com/automoto/cubecombat/config"
	"github.com/automoto/cubecombat/shared/gamemath"
	"github.com/automoto/cubecombat/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// slash places a cube-sized hitbox one cube away in the facing direction
// and damages red at once. The box then only lingers for display.
func (t *tick) slash() {
	blue, m := t.blue, t.blue.Melee
	if m.Cooldown > 0 && !t.debug() {
		return
	}
	dx, dy := blue.Actor.Facing.Vector()
	if dx == 0 && dy == 0 {
		return
	}

	size := cfg.Cube.Size
	m.X, m.Y = blue.Body.X+dx*size, blue.Body.Y+dy*size
	m.W, m.H = size, size
	m.Linger = cfg.Melee.Linger
	m.Cooldown = cfg.Melee.Cooldown
	t.emit(EventSlash, components.SideBlue, 0)

	if t.red.Actor.Active && slashHits(blue.Body.Space, m, t.red.Entry) {
		t.red.Health.Current -= cfg.Melee.Damage
		t.emit(EventSlashHit, components.SideRed, cfg.Melee.Damage)
	}
}

// slashHits drops a transient hitbox into the space and looks for the
// target among the objects it touches.
func slashHits(space *resolv.Space, m *components.MeleeData, target *donburi.Entry) bool {
	if space == nil {
		return false
	}
	hitbox := resolv.NewObject(m.X, m.Y, m.W, m.H)
	hitbox.SetShape(resolv.NewRectangle(0, 0, m.W, m.H))
	space.Add(hitbox)
	defer space.Remove(hitbox)

	check := hitbox.Check(0, 0, tags.ResolvRed)
	if check == nil {
		return false
	}
	for _, obj := range check.Objects {
		if e, ok := obj.Data.(*donburi.Entry); ok && e.Entity() == target.Entity() {
			return gamemath.RectsOverlap(m.X, m.Y, m.W, m.H, obj.X, obj.Y, obj.W, obj.H)
		}
	}
	return false
}
