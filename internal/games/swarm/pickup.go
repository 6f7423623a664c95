package swarm

import (
	"strconv"

	"github.com/vovakirdan/tui-swarm/internal/core"
)

// PickupKind identifies a drifting collectible. Gold variants carry value
// (possibly negative for the bomb), the rest are instant-effect power-ups.
type PickupKind int

const (
	PickupGold     PickupKind = iota // Currency drop
	PickupGoldRich                   // Rare high-value currency drop
	PickupBomb                       // Negative: costs gold on touch
	PickupRapid                      // Temporary fire-rate boost
	PickupShield                     // Temporary invulnerability
	PickupWing                       // Instant +1 companion
	PickupSlow                       // Temporary slow motion
)

// Glyph returns the display character for a pickup kind.
func (k PickupKind) Glyph() rune {
	switch k {
	case PickupGold:
		return '$'
	case PickupGoldRich:
		return '◈'
	case PickupBomb:
		return '✶'
	case PickupRapid:
		return '»'
	case PickupShield:
		return '◯'
	case PickupWing:
		return '+'
	case PickupSlow:
		return '~'
	default:
		return '?'
	}
}

// String returns the pickup name.
func (k PickupKind) String() string {
	switch k {
	case PickupGold:
		return "gold"
	case PickupGoldRich:
		return "gold_rich"
	case PickupBomb:
		return "bomb"
	case PickupRapid:
		return "rapid"
	case PickupShield:
		return "shield"
	case PickupWing:
		return "wing"
	case PickupSlow:
		return "slow"
	default:
		return "?"
	}
}

// Pickup is a falling collectible. Once collected it flips Active, and an
// inactive pickup can never trigger again.
type Pickup struct {
	Kind   PickupKind
	X, Y   Fixed
	VY     Fixed
	Value  int // Gold delta; negative for the bomb
	Active bool
}

// Bounds returns the collision rectangle in cell coordinates.
func (p *Pickup) Bounds() core.Rect {
	return core.NewRect(p.X.ToCell(), p.Y.ToCell(), 1, 1)
}

// Update advances the pickup one frame; off-screen pickups deactivate.
func (p *Pickup) Update(w *World) {
	if !p.Active {
		return
	}
	p.Y = p.Y.Add(p.VY.scaled(w.scrollScale()))
	if p.Y > ToFixed(w.screenH+1) {
		p.Active = false
	}
}

// applyPickup resolves a collected pickup against the world.
func (w *World) applyPickup(p *Pickup) {
	p.Active = false
	w.emit(core.EventPickup)

	switch p.Kind {
	case PickupGold, PickupGoldRich:
		w.addGold(p.Value)
		w.addFloat(p.X, p.Y, "+"+strconv.Itoa(p.Value*w.rules.GoldMult/100), core.ColorBrightYellow)

	case PickupBomb:
		w.gold -= p.Value
		if w.gold < 0 {
			w.gold = 0
		}
		w.addFloat(p.X, p.Y, "-"+strconv.Itoa(p.Value), core.ColorBrightRed)
		w.shake = 30 * 100
		w.emit(core.EventExplosion)

	case PickupRapid:
		w.rapidUntil = w.clock + w.cfg.Pickups.RapidTime*100

	case PickupShield:
		w.shieldUntil = w.clock + w.cfg.Pickups.ShieldTime*100

	case PickupWing:
		w.setWingSize(w.wingSize + 1)

	case PickupSlow:
		w.slowUntil = w.clock + w.cfg.Pickups.SlowTime*100
	}
}

// rollDrop picks a random pickup kind using the configured weights.
func (w *World) rollDrop() PickupKind {
	pc := w.cfg.Pickups
	weights := []struct {
		kind   PickupKind
		weight int
	}{
		{PickupGold, pc.WeightGold},
		{PickupBomb, pc.WeightBomb},
		{PickupRapid, pc.WeightRapid},
		{PickupShield, pc.WeightShield},
		{PickupWing, pc.WeightWing},
		{PickupSlow, pc.WeightSlow},
	}

	total := 0
	for _, entry := range weights {
		total += entry.weight
	}
	if total <= 0 {
		return PickupGold
	}

	roll := w.rng.Intn(total)
	cumulative := 0
	kind := PickupGold
	for _, entry := range weights {
		cumulative += entry.weight
		if roll < cumulative {
			kind = entry.kind
			break
		}
	}

	// A gold drop occasionally upgrades to the rich variant
	if kind == PickupGold && pc.RichChance > 0 && w.rng.Intn(100) < pc.RichChance {
		kind = PickupGoldRich
	}
	return kind
}

// trySpawnDrop rolls the configured drop chance at a kill position.
func (w *World) trySpawnDrop(x, y Fixed) {
	if w.rules.PickupsDisabled {
		return
	}
	if w.rng.Intn(100) >= w.cfg.Spawner.PickupChance {
		return
	}

	kind := w.rollDrop()
	p := &Pickup{
		Kind:   kind,
		X:      x,
		Y:      y,
		VY:     Fixed(w.cfg.Pickups.FallSpeed),
		Active: true,
	}

	switch kind {
	case PickupGold:
		p.Value = w.cfg.Pickups.GoldValue
	case PickupGoldRich:
		p.Value = w.cfg.Pickups.GoldValue * w.cfg.Pickups.GoldRichness
	case PickupBomb:
		p.Value = w.cfg.Pickups.BombPenalty
	case PickupRapid, PickupShield, PickupWing, PickupSlow:
	}

	w.pickups = append(w.pickups, p)
}
