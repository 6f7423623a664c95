package swarm

import (
	"github.com/vovakirdan/tui-swarm/internal/core"
)

// Collision dispatch. Every check goes through core.Rect.Intersects, which
// uses strict inequality: sprites sharing only an edge never collide.
// Non-piercing shots are consumed by their first hit in a single pass;
// piercing shots keep damaging everything along their path.

// dispatchPlayerShots resolves player fire against obstacles, hostiles and
// the boss, in that order. An obstacle stops even a piercing shot.
func (w *World) dispatchPlayerShots() {
	for _, shot := range w.shots {
		if !shot.Active {
			continue
		}
		rect := shot.Bounds()

		blocked := false
		for _, o := range w.obstacles {
			if !o.Active || !o.BlocksShots() {
				continue
			}
			if rect.Intersects(o.Bounds()) {
				o.HitByShot(w, shot.Damage)
				shot.Active = false
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}

		for _, h := range w.hostiles {
			if !h.Active {
				continue
			}
			if !rect.Intersects(h.Bounds()) {
				continue
			}
			w.hitHostile(h, shot)
			if !shot.Piercing {
				shot.Active = false
				break
			}
		}
		if !shot.Active {
			continue
		}

		if w.boss != nil && w.boss.Vulnerable() && rect.Intersects(w.boss.Bounds()) {
			w.boss.Hit(w, shot.Damage)
			if !shot.Piercing {
				shot.Active = false
			}
		}
	}
}

// hitHostile applies one shot's damage to one hostile, including splash
// for bomb shots, and settles the kill if the target dies.
func (w *World) hitHostile(h *Hostile, shot *Projectile) {
	w.emit(core.EventHit)
	if h.Hit(shot.Damage) {
		w.killHostile(h)
	}
	if shot.Splash > 0 {
		w.applySplash(h.X, h.Y, shot.Splash, shot.Damage/2, h)
	}
}

// applySplash damages every hostile within radius cells of the blast
// center, excluding the directly hit target.
func (w *World) applySplash(x, y Fixed, radius, damage int, exclude *Hostile) {
	if damage < 1 {
		damage = 1
	}
	r := ToFixed(radius)
	for _, other := range w.hostiles {
		if !other.Active || other == exclude {
			continue
		}
		if other.X.Sub(x).Abs() > r || other.Y.Sub(y).Abs() > r {
			continue
		}
		if other.Hit(damage) {
			w.killHostile(other)
		}
	}
	w.emit(core.EventExplosion)
}

// killHostile settles rewards for a destroyed hostile and handles kind
// specific death behavior.
func (w *World) killHostile(h *Hostile) {
	w.registerKill(h.X, h.Y, h.Points)
	w.addGold(h.Gold)
	w.trySpawnDrop(h.X, h.Y)
	if h.Kind == KindBrood {
		w.spawnBroodChildren(h)
	}
	w.emit(core.EventExplosion)
}

// spawnBroodChildren releases grunts where a brood carrier died. Children
// inherit the current wave's ramp but never roll elite.
func (w *World) spawnBroodChildren(parent *Hostile) {
	count := w.cfg.Spawner.BroodChildCount
	for i := 0; i < count; i++ {
		child := newHostile(KindGrunt, w.cfg.Hostiles.Grunt, w.ramp, w.cfg.Difficulty.Elite, w.mode.Wave, false)
		spread := ToFixed(i - count/2)
		child.X = parent.X.Add(spread.Mul(2))
		child.Y = parent.Y
		child.driftVX = spread.Mul(60)
		w.hostiles = append(w.hostiles, child)
	}
}

// dispatchHostileShots resolves hostile fire against barriers, the wing
// and the player. Wing companions absorb a shot and are lost.
func (w *World) dispatchHostileShots() {
	for _, shot := range w.hostileShots {
		if !shot.Active {
			continue
		}
		rect := shot.Bounds()

		blocked := false
		for _, o := range w.obstacles {
			if !o.Active || !o.BlocksShots() {
				continue
			}
			if rect.Intersects(o.Bounds()) {
				shot.Active = false
				blocked = true
				break
			}
		}
		if blocked {
			continue
		}

		for _, c := range w.wing {
			if !c.Active {
				continue
			}
			if rect.Intersects(c.Bounds()) {
				c.Active = false
				w.setWingSize(w.wingSize - 1)
				shot.Active = false
				w.emit(core.EventExplosion)
				break
			}
		}
		if !shot.Active {
			continue
		}

		if w.player.Active && rect.Intersects(w.player.Bounds()) {
			w.damagePlayer(shot.Damage)
			shot.Active = false
		}
	}
}

// dispatchHostileContact resolves hostile bodies touching the player or a
// wing companion. The hostile dies on impact in both cases.
func (w *World) dispatchHostileContact() {
	playerRect := w.player.Bounds()
	for _, h := range w.hostiles {
		if !h.Active {
			continue
		}
		rect := h.Bounds()

		hit := false
		for _, c := range w.wing {
			if !c.Active {
				continue
			}
			if rect.Intersects(c.Bounds()) {
				c.Active = false
				w.setWingSize(w.wingSize - 1)
				hit = true
				break
			}
		}
		if !hit && w.player.Active && rect.Intersects(playerRect) {
			w.damagePlayer(h.Damage)
			hit = true
		}
		if hit {
			h.Active = false
			w.emit(core.EventExplosion)
		}
	}
}

// dispatchPickups resolves drops touching the player. The Active flag
// gates every pickup so one cannot apply twice.
func (w *World) dispatchPickups() {
	if !w.player.Active {
		return
	}
	playerRect := w.player.Bounds()
	for _, p := range w.pickups {
		if !p.Active {
			continue
		}
		if p.Bounds().Intersects(playerRect) {
			p.Active = false
			w.applyPickup(p)
		}
	}
}

// dispatchObstaclePush keeps the player out of barriers.
func (w *World) dispatchObstaclePush() {
	if !w.player.Active {
		return
	}
	playerRect := w.player.Bounds()
	for _, o := range w.obstacles {
		if !o.Active || !o.BlocksPlayer() {
			continue
		}
		if o.Bounds().Intersects(playerRect) {
			o.pushPlayer(w)
		}
	}
}

// dispatchGates duplicates player shots passing through a gate. A shot
// carries a flag so chained gates cannot multiply it more than once.
func (w *World) dispatchGates() {
	for _, g := range w.gates {
		if !g.Active {
			continue
		}
		bounds := g.Bounds()
		for _, shot := range w.shots {
			if !shot.Active || shot.Duplicated {
				continue
			}
			if shot.Bounds().Intersects(bounds) {
				g.duplicateShot(w, shot)
			}
		}
	}
}

// dispatchConvoys resolves player fire against convoys, engine sub-rect
// first. Convoy hits always consume the shot.
func (w *World) dispatchConvoys() {
	for _, c := range w.convoys {
		if !c.Active {
			continue
		}
		bounds := c.Bounds()
		for _, shot := range w.shots {
			if !shot.Active {
				continue
			}
			rect := shot.Bounds()
			if rect.Intersects(bounds) {
				c.HitByShot(w, rect, shot.Damage)
				shot.Active = false
			}
		}
	}
}
