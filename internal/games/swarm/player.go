package swarm

import (
	"github.com/vovakirdan/tui-swarm/internal/core"
)

// Player is the single controllable ship. It sits on a fixed row near the
// bottom; lane modes snap its x to one of three lanes, other modes move it
// freely along the row.
type Player struct {
	X, Y   Fixed
	W, H   int
	Health int
	Max    int
	Active bool

	fireClock    int // Clock units until next automatic shot
	specialClock int // Clock units until the special weapon is ready
	invulnUntil  int // Absolute clock time
	lane         int // Current lane in lane modes (0..2)
}

// Bounds returns the collision rectangle in cell coordinates.
func (p *Player) Bounds() core.Rect {
	return core.NewRect(p.X.ToCell(), p.Y.ToCell(), p.W, p.H)
}

// Invulnerable reports whether respawn protection or a shield is active.
func (p *Player) Invulnerable(w *World) bool {
	return w.clock < p.invulnUntil || w.clock < w.shieldUntil
}

// Companion is one drone of the wing formation trailing the player.
// Only the display-capped head of the wing is simulated; overflow
// companions exist purely as a damage multiplier.
type Companion struct {
	X, Y      Fixed
	Active    bool
	slot      int // Formation slot index
	fireClock int
}

// Bounds returns the collision rectangle in cell coordinates.
func (c *Companion) Bounds() core.Rect {
	return core.NewRect(c.X.ToCell(), c.Y.ToCell(), 1, 1)
}

// formationOffset returns the cell offset of a wing slot relative to the
// player: a widening V behind the ship.
func formationOffset(slot, spacing int) (int, int) {
	row := slot/2 + 1
	dx := row * spacing
	if slot%2 == 0 {
		dx = -dx
	}
	return dx, row
}

// updatePlayer applies movement intent, firing, and special weapons.
// Fired shots are appended to the world's player-side shot list.
func (w *World) updatePlayer(in core.InputFrame) {
	p := w.player
	if p == nil || !p.Active {
		return
	}

	speed := Fixed(w.cfg.Player.Speed).scaled(w.timeScale)

	if w.rules.Lanes > 0 {
		w.movePlayerLanes(in)
	} else {
		if x, ok := in.Target(); ok {
			// Absolute intent: walk toward the target, don't teleport
			target := ToFixed(x - p.W/2)
			diff := target.Sub(p.X)
			p.X = p.X.Add(ClampFixed(diff, -speed, speed))
		}
		if in.Has(core.ActionLeft) {
			p.X = p.X.Sub(speed)
		}
		if in.Has(core.ActionRight) {
			p.X = p.X.Add(speed)
		}
		if w.rules.FreeMove {
			vspeed := speed
			if in.Has(core.ActionUp) {
				p.Y = p.Y.Sub(vspeed)
			}
			if in.Has(core.ActionDown) {
				p.Y = p.Y.Add(vspeed)
			}
			minY := ToFixed(w.screenH / 2)
			maxY := ToFixed(w.screenH - p.H - 1)
			p.Y = ClampFixed(p.Y, minY, maxY)
		}
	}

	p.X = ClampFixed(p.X, 0, ToFixed(w.screenW-p.W))

	// Swipe gestures: sideways dash, upward boost
	switch in.Swipe {
	case core.SwipeLeft:
		p.X = ClampFixed(p.X.Sub(ToFixed(6)), 0, ToFixed(w.screenW-p.W))
	case core.SwipeRight:
		p.X = ClampFixed(p.X.Add(ToFixed(6)), 0, ToFixed(w.screenW-p.W))
	case core.SwipeUp:
		if w.clock >= w.boostUntil {
			w.boostUntil = w.clock + w.cfg.Player.BoostTime*100
		}
	case core.SwipeDown, core.SwipeNone:
	}
}

// movePlayerLanes snaps movement to the three fixed lanes.
func (w *World) movePlayerLanes(in core.InputFrame) {
	p := w.player
	moved := false

	if in.Has(core.ActionLeft) && !w.laneHeld {
		p.lane--
		moved = true
	}
	if in.Has(core.ActionRight) && !w.laneHeld {
		p.lane++
		moved = true
	}
	w.laneHeld = in.Has(core.ActionLeft) || in.Has(core.ActionRight)

	if p.lane < 0 {
		p.lane = 0
	}
	if p.lane > 2 {
		p.lane = 2
	}

	target := ToFixed(laneX(p.lane, w.screenW) - p.W/2)
	if moved || p.X != target {
		// Glide toward the lane center
		speed := Fixed(w.cfg.Player.Speed).Mul(2).scaled(w.timeScale)
		diff := target.Sub(p.X)
		p.X = p.X.Add(ClampFixed(diff, -speed, speed))
	}
}

// updateAutoFire handles the automatic gun and the tap-triggered special.
func (w *World) updateAutoFire(in core.InputFrame) {
	p := w.player
	if p == nil || !p.Active {
		return
	}

	fireEvery := w.cfg.Player.FireEvery - w.upgrades.FireRate*w.cfg.Shop.FireRateStep
	if fireEvery < 3 {
		fireEvery = 3
	}
	if w.clock < w.rapidUntil {
		fireEvery = (fireEvery + 1) / 2
	}

	p.fireClock += w.timeScale
	threshold := fireEvery * 100
	for p.fireClock >= threshold {
		p.fireClock -= threshold
		w.firePlayerShot(ShotStandard)
	}

	if p.specialClock > 0 {
		p.specialClock -= w.timeScale
	}
	if in.Has(core.ActionTap) && p.specialClock <= 0 {
		if kind, ok := w.bestSpecial(); ok {
			w.firePlayerShot(kind)
			p.specialClock = 90 * 100 // Special weapon cooldown
		}
	}
}

// bestSpecial returns the strongest unlocked special weapon.
func (w *World) bestSpecial() (ProjectileKind, bool) {
	switch {
	case w.weapons[ShotLaser]:
		return ShotLaser, true
	case w.weapons[ShotBomb]:
		return ShotBomb, true
	case w.weapons[ShotHoming]:
		return ShotHoming, true
	default:
		return ShotStandard, false
	}
}

// firePlayerShot emits one projectile of the given kind from the ship's nose.
func (w *World) firePlayerShot(kind ProjectileKind) {
	p := w.player

	damage := w.cfg.Player.ShotDamage + w.upgrades.Damage*w.cfg.Shop.DamageStep
	damage = damage * w.wingDamagePercent() / 100

	shot := &Projectile{
		Kind:   kind,
		X:      p.X.Add(ToFixed(p.W / 2)),
		Y:      p.Y.Sub(ToFixed(1)),
		VY:     -Fixed(w.cfg.Player.ShotSpeed),
		W:      1,
		H:      1,
		Damage: damage,
		Active: true,
	}

	switch kind {
	case ShotHoming:
		shot.Damage = damage * 3 / 2
	case ShotBomb:
		shot.VY = shot.VY.Div(2)
		shot.Damage = damage * 2
		shot.Splash = 4
	case ShotLaser:
		shot.VY = shot.VY.Mul(2)
		shot.Damage = damage * 2
		shot.Piercing = true
	case ShotStandard:
	}

	w.shots = append(w.shots, shot)
	w.emit(core.EventFired)
}

// wingDamagePercent is 100 plus the bonus from companions beyond the
// display cap. True wing size scales damage; only the cap is drawn.
func (w *World) wingDamagePercent() int {
	overflow := w.wingSize - w.cfg.Wing.DisplayCap
	if overflow < 0 {
		overflow = 0
	}
	return 100 + overflow*w.cfg.Wing.DamageBonus
}

// updateWing keeps the displayed companions in formation and fires their
// guns on their own cadence.
func (w *World) updateWing() {
	p := w.player
	spacing := w.cfg.Wing.Spacing

	for _, c := range w.wing {
		if !c.Active {
			continue
		}
		dx, dy := formationOffset(c.slot, spacing)
		target := p.X.Add(ToFixed(dx))
		diff := target.Sub(c.X)
		step := Fixed(w.cfg.Player.Speed).Mul(2).scaled(w.timeScale)
		c.X = c.X.Add(ClampFixed(diff, -step, step))
		c.Y = p.Y.Add(ToFixed(dy))

		c.fireClock += w.timeScale
		threshold := w.cfg.Wing.FireEvery * 100
		for c.fireClock >= threshold {
			c.fireClock -= threshold
			shot := &Projectile{
				Kind:   ShotStandard,
				X:      c.X,
				Y:      c.Y.Sub(ToFixed(1)),
				VY:     -Fixed(w.cfg.Player.ShotSpeed),
				W:      1,
				H:      1,
				Damage: w.cfg.Wing.ShotDamage,
				Active: true,
			}
			w.shots = append(w.shots, shot)
		}
	}
}

// setWingSize reconciles the displayed companions with the true wing size.
func (w *World) setWingSize(size int) {
	if size < 0 {
		size = 0
	}
	w.wingSize = size

	shown := size
	if shown > w.cfg.Wing.DisplayCap {
		shown = w.cfg.Wing.DisplayCap
	}

	// Drop downed companions first so shrinking never trims a live one,
	// then close up the formation slots
	live := w.wing[:0]
	for _, c := range w.wing {
		if c.Active {
			c.slot = len(live)
			live = append(live, c)
		}
	}
	w.wing = live

	// Grow
	for len(w.wing) < shown {
		slot := len(w.wing)
		dx, dy := formationOffset(slot, w.cfg.Wing.Spacing)
		c := &Companion{
			X:      w.player.X.Add(ToFixed(dx)),
			Y:      w.player.Y.Add(ToFixed(dy)),
			slot:   slot,
			Active: true,
		}
		w.wing = append(w.wing, c)
	}

	// Shrink
	for len(w.wing) > shown {
		w.wing = w.wing[:len(w.wing)-1]
	}

	// Weapon unlocks ride on wing milestones
	unlocks := w.cfg.Shop.WeaponUnlocks
	milestones := []int{4, 8, 12}
	for i, name := range unlocks {
		if i < len(milestones) && size >= milestones[i] {
			w.unlockWeapon(name)
		}
	}
}

// unlockWeapon enables a special weapon by config name. Unknown names are
// ignored.
func (w *World) unlockWeapon(name string) {
	var kind ProjectileKind
	switch name {
	case "homing":
		kind = ShotHoming
	case "bomb":
		kind = ShotBomb
	case "laser":
		kind = ShotLaser
	default:
		return
	}
	if w.weapons[kind] {
		return
	}
	w.weapons[kind] = true
	w.unlockedWeapons = append(w.unlockedWeapons, name)
	w.addFloat(w.player.X, w.player.Y.Sub(ToFixed(2)), name+" unlocked", core.ColorBrightGreen)
}

// laneX returns the center x of one of the three fixed lanes.
func laneX(lane, screenW int) int {
	switch lane {
	case 0:
		return screenW / 4
	case 2:
		return screenW * 3 / 4
	default:
		return screenW / 2
	}
}
