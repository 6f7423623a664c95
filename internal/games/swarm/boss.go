package swarm

import (
	"github.com/vovakirdan/tui-swarm/internal/config"
	"github.com/vovakirdan/tui-swarm/internal/core"
)

// BossPhase tracks the boss lifecycle.
type BossPhase int

const (
	BossEntering BossPhase = iota
	BossActive
	BossDying
)

func (p BossPhase) String() string {
	switch p {
	case BossEntering:
		return "entering"
	case BossActive:
		return "active"
	case BossDying:
		return "dying"
	default:
		return "unknown"
	}
}

// Boss is the wave-end miniboss. It descends to its hold depth, then cycles
// attack patterns until destroyed. While entering or dying it cannot be hurt.
type Boss struct {
	Phase        BossPhase
	X, Y         Fixed
	W, H         int
	Health       int
	MaxHealth    int
	Active       bool
	patternIndex int
	cooldown     int // Clock units until the next attack
	deathClock   int // Clock units left in the death animation
	driftRight   bool
}

func newBoss(w *World) *Boss {
	cfg := w.cfg.Boss
	health := config.Scale(cfg.BaseHealth+cfg.HealthPerWave*w.mode.Wave, w.ramp.Health(w.mode.Wave))
	return &Boss{
		Phase:     BossEntering,
		X:         ToFixed(w.screenW/2 - cfg.Width/2),
		Y:         ToFixed(-cfg.Height),
		W:         cfg.Width,
		H:         cfg.Height,
		Health:    health,
		MaxHealth: health,
		Active:    true,
	}
}

// Bounds returns the boss hitbox in cell coordinates.
func (b *Boss) Bounds() core.Rect {
	return core.NewRect(b.X.ToCell(), b.Y.ToCell(), b.W, b.H)
}

// Vulnerable reports whether shots can damage the boss right now.
func (b *Boss) Vulnerable() bool {
	return b.Active && b.Phase == BossActive
}

// Hit applies damage; kills flip the boss into its dying phase and cancel
// any volley shots still waiting in the delay queue.
func (b *Boss) Hit(w *World, damage int) {
	if !b.Vulnerable() {
		return
	}
	b.Health -= damage
	w.emit(core.EventHit)
	if b.Health > 0 {
		return
	}
	b.Health = 0
	b.Phase = BossDying
	b.deathClock = ticksU(w.cfg.Boss.DeathTime)
	w.delays.CancelOwner(b)
	w.shake = ticksU(45)
	w.emit(core.EventExplosion)
}

// Update advances the boss one frame.
func (b *Boss) Update(w *World) {
	if !b.Active {
		return
	}
	cfg := w.cfg.Boss
	dt := w.scrollScale()

	switch b.Phase {
	case BossEntering:
		b.Y = b.Y.Add(Fixed(cfg.EntrySpeed).scaled(dt))
		if b.Y.ToCell() >= cfg.EntryDepth {
			b.Y = ToFixed(cfg.EntryDepth)
			b.Phase = BossActive
			b.cooldown = ticksU(cfg.AttackCooldown)
		}

	case BossActive:
		b.drift(w, dt)
		b.cooldown -= w.timeScale
		if b.cooldown <= 0 {
			b.cooldown += ticksU(cfg.AttackCooldown)
			b.attack(w)
			b.patternIndex++
		}

	case BossDying:
		b.deathClock -= w.timeScale
		if b.deathClock <= 0 {
			b.Active = false
			w.score += cfg.Points
			w.addGold(cfg.Gold)
			w.addFloat(b.X.Add(ToFixed(b.W/2)), b.Y, "BOSS DOWN", core.ColorBrightMagenta)
			w.emit(core.EventBossDefeated)
		}
	}
}

// drift sways the boss between the side margins while it fights.
func (b *Boss) drift(w *World, dt int) {
	speed := Fixed(200).scaled(dt)
	if b.driftRight {
		b.X = b.X.Add(speed)
		if b.X.ToCell()+b.W >= w.screenW-2 {
			b.driftRight = false
		}
	} else {
		b.X = b.X.Sub(speed)
		if b.X.ToCell() <= 2 {
			b.driftRight = true
		}
	}
}

// attack fires the next pattern in the fixed cycle.
func (b *Boss) attack(w *World) {
	switch b.patternIndex % 3 {
	case 0:
		b.fireSpread(w)
	case 1:
		b.fireAimed(w)
	case 2:
		b.scheduleVolley(w)
	}
}

// fireSpread emits a fan of three shots. The angled side shots ricochet
// off the screen edges once, so hugging a wall is no refuge.
func (b *Boss) fireSpread(w *World) {
	cfg := w.cfg.Boss
	cx := b.X.Add(ToFixed(b.W / 2))
	muzzle := b.Y.Add(ToFixed(b.H))
	for _, vx := range []Fixed{-300, 0, 300} {
		w.hostileShots = append(w.hostileShots, &Projectile{
			Kind:    ShotStandard,
			X:       cx,
			Y:       muzzle,
			VX:      vx,
			VY:      Fixed(cfg.ShotSpeed),
			W:       1,
			H:       1,
			Damage:  cfg.ShotDamage,
			Hostile: true,
			Bounce:  vx != 0,
			Active:  true,
		})
	}
	w.emit(core.EventFired)
}

// fireAimed emits a single shot at the player's current position.
func (b *Boss) fireAimed(w *World) {
	cfg := w.cfg.Boss
	cx := b.X.Add(ToFixed(b.W / 2))
	muzzle := b.Y.Add(ToFixed(b.H))
	dx := w.player.X.Sub(cx)
	vx := ClampFixed(dx/8, -Fixed(cfg.ShotSpeed), Fixed(cfg.ShotSpeed))
	w.hostileShots = append(w.hostileShots, &Projectile{
		Kind:    ShotStandard,
		X:       cx,
		Y:       muzzle,
		VX:      vx,
		VY:      Fixed(cfg.ShotSpeed),
		W:       1,
		H:       1,
		Damage:  cfg.ShotDamage,
		Hostile: true,
		Active:  true,
	})
	w.emit(core.EventFired)
}

// scheduleVolley queues a staggered burst through the delay queue. The
// shots materialize on later frames at the boss's then-scheduled offsets;
// if the boss dies first the queue drops them.
func (b *Boss) scheduleVolley(w *World) {
	cfg := w.cfg.Boss
	cx := b.X.Add(ToFixed(b.W / 2))
	muzzle := b.Y.Add(ToFixed(b.H))
	span := ToFixed(b.W)
	for i := 0; i < cfg.VolleyCount; i++ {
		offset := span*Fixed(i)/Fixed(cfg.VolleyCount) - span/2
		w.delays.Schedule(DelayedShot{
			Due:   w.clock + ticksU(cfg.VolleyStagger)*(i+1),
			Owner: b,
			Shot: Projectile{
				Kind:    ShotStandard,
				X:       cx.Add(offset),
				Y:       muzzle,
				VY:      Fixed(cfg.ShotSpeed),
				W:       1,
				H:       1,
				Damage:  cfg.ShotDamage,
				Hostile: true,
				Active:  true,
			},
		})
	}
}
