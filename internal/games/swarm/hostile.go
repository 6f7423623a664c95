package swarm

import (
	"github.com/vovakirdan/tui-swarm/internal/config"
	"github.com/vovakirdan/tui-swarm/internal/core"
)

// HostileKind identifies the hostile archetype.
type HostileKind int

const (
	KindGrunt HostileKind = iota
	KindRammer
	KindCharger
	KindShielded
	KindBrood
	KindKamikaze
	KindSwarmUnit // Tiny homing unit, spawned in batches (gauntlet)
)

// String returns the archetype name.
func (k HostileKind) String() string {
	switch k {
	case KindRammer:
		return "rammer"
	case KindCharger:
		return "charger"
	case KindShielded:
		return "shielded"
	case KindBrood:
		return "brood"
	case KindKamikaze:
		return "kamikaze"
	case KindSwarmUnit:
		return "swarm_unit"
	default:
		return "grunt"
	}
}

// Hostile is a single enemy. Its stat block is a scaled copy of the
// archetype template; the template itself is never touched.
type Hostile struct {
	Kind      HostileKind
	X, Y      Fixed
	W, H      int
	Health    int
	MaxHealth int
	Damage    int
	Speed     Fixed // Base downward speed per tick
	FireEvery int   // Ticks between shots, 0 = never
	Points    int
	Gold      int
	Elite     bool
	Active    bool

	fireClock int   // Clock units until next shot
	charging  bool  // Charger has started its dash
	locked    bool  // Kamikaze has committed to its dive
	driftVX   Fixed // Sideways drift (swarm units)
}

// Bounds returns the collision rectangle in cell coordinates.
func (h *Hostile) Bounds() core.Rect {
	return core.NewRect(h.X.ToCell(), h.Y.ToCell(), h.W, h.H)
}

// Hit applies damage and reports whether the hostile was destroyed.
// Shielded hostiles take half damage (rounded up, always at least 1).
func (h *Hostile) Hit(damage int) bool {
	if !h.Active {
		return false
	}
	if h.Kind == KindShielded {
		damage = (damage + 1) / 2
		if damage < 1 {
			damage = 1
		}
	}
	h.Health -= damage
	if h.Health <= 0 {
		h.Active = false
		return true
	}
	return false
}

// Update advances the hostile one frame and returns any shots it fired.
// Movement scales with the world scroll (boost speeds up the approach).
func (h *Hostile) Update(w *World) []*Projectile {
	if !h.Active {
		return nil
	}

	scale := w.scrollScale()
	vy := h.Speed

	switch h.Kind {
	case KindRammer:
		// Accelerates the deeper it gets
		depth := h.Y.ToCell()
		if depth > 0 {
			vy = vy.Add(Fixed(depth * 10))
		}

	case KindCharger:
		// Creeps to mid-screen, pauses, then dashes
		mid := ToFixed(w.screenH / 3)
		if !h.charging {
			if h.Y >= mid {
				h.charging = true
			}
		} else {
			vy = vy.Mul(4)
		}

	case KindKamikaze:
		if !h.locked && w.player != nil && w.player.Active {
			dx := w.player.X.Sub(h.X).Abs()
			if dx < ToFixed(w.cfg.Spawner.KamikazeLockRange) {
				h.locked = true
			}
		}
		if h.locked {
			vy = vy.Mul(3)
			if w.player != nil && w.player.Active {
				diff := w.player.X.Sub(h.X)
				h.X = h.X.Add(ClampFixed(diff, -vy, vy).scaled(scale))
			}
		}

	case KindSwarmUnit:
		// Homes on the player horizontally while sinking
		if w.player != nil && w.player.Active {
			turn := Fixed(w.cfg.Gauntlet.HomingTurn)
			diff := w.player.X.Sub(h.X)
			if diff > 0 {
				h.driftVX = h.driftVX.Add(turn)
			} else if diff < 0 {
				h.driftVX = h.driftVX.Sub(turn)
			}
			h.driftVX = ClampFixed(h.driftVX, -h.Speed, h.Speed)
		}
		h.X = h.X.Add(h.driftVX.scaled(scale))

	case KindGrunt, KindShielded, KindBrood:
		// Straight descent
	}

	h.Y = h.Y.Add(vy.scaled(scale))

	// Fell off the bottom
	if h.Y > ToFixed(w.screenH+2) {
		h.Active = false
		return nil
	}

	return h.updateFire(w)
}

// updateFire counts down the fire clock and emits a shot when it elapses.
// The threshold is subtracted, not reset, so slow motion cannot drift it.
func (h *Hostile) updateFire(w *World) []*Projectile {
	if h.FireEvery <= 0 {
		return nil
	}

	h.fireClock += w.timeScale
	threshold := h.FireEvery * 100
	if h.fireClock < threshold {
		return nil
	}
	h.fireClock -= threshold

	// Don't fire before fully on screen
	if h.Y < 0 {
		return nil
	}

	shot := &Projectile{
		Kind:    ShotStandard,
		X:       h.X.Add(ToFixed(h.W / 2)),
		Y:       h.Y.Add(ToFixed(h.H)),
		VY:      Fixed(w.cfg.Boss.ShotSpeed),
		W:       1,
		H:       1,
		Damage:  h.Damage,
		Hostile: true,
		Active:  true,
	}
	w.emit(core.EventFired)
	return []*Projectile{shot}
}

// newHostile builds a hostile from its archetype template, scaled by the
// current wave's difficulty multipliers. An elite roll multiplies health
// and damage by the configured bonuses.
func newHostile(kind HostileKind, tpl config.HostileTemplate, ramp config.Ramp, elite config.EliteConfig, wave int, isElite bool) *Hostile {
	h := &Hostile{
		Kind:      kind,
		W:         tpl.Width,
		H:         tpl.Height,
		Health:    config.Scale(tpl.Health, ramp.Health(wave)),
		Damage:    config.Scale(tpl.Damage, ramp.Damage(wave)),
		Speed:     Fixed(config.Scale(tpl.Speed, ramp.Speed(wave))),
		FireEvery: tpl.FireEvery,
		Points:    tpl.Points,
		Gold:      tpl.Gold,
		Active:    true,
	}

	if isElite {
		h.Elite = true
		h.Health = config.Scale(h.Health, elite.HealthBonus)
		h.Damage = config.Scale(h.Damage, elite.DamageBonus)
		h.Points = h.Points * 2
		h.Gold = h.Gold * 2
	}

	h.MaxHealth = h.Health
	return h
}
