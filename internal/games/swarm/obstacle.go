package swarm

import (
	"strconv"

	"github.com/vovakirdan/tui-swarm/internal/core"
)

// ObstacleKind identifies blocking geometry. Variants differ in what they
// block and whether they can be destroyed.
type ObstacleKind int

const (
	// ObstacleBarrier blocks both shots and the player, destructible.
	ObstacleBarrier ObstacleKind = iota
	// ObstacleCrate is a hit-counter reward box: shots chip it, the player
	// is pushed around it.
	ObstacleCrate
	// ObstacleRareCrate is the high-value crate variant.
	ObstacleRareCrate
)

// CrateState is the explicit state machine for hit-counter crates.
// Replaces the pile of booleans such states tend to degenerate into.
type CrateState int

const (
	CrateIdle CrateState = iota
	CrateHitCountPending
	CrateTriggered
	CrateDestroyed
)

// Obstacle scrolls down with the world. Barriers absorb shots until their
// health runs out; crates count hits and pay out once triggered.
type Obstacle struct {
	Kind   ObstacleKind
	X, Y   Fixed
	W, H   int
	Health int // Barrier durability
	Hits   int // Remaining hits for a crate trigger
	Gold   int // Crate payout
	State  CrateState
	Active bool
}

// Bounds returns the collision rectangle in cell coordinates.
func (o *Obstacle) Bounds() core.Rect {
	return core.NewRect(o.X.ToCell(), o.Y.ToCell(), o.W, o.H)
}

// BlocksShots reports whether projectiles stop on this obstacle.
func (o *Obstacle) BlocksShots() bool {
	return o.Active
}

// BlocksPlayer reports whether the player is pushed by this obstacle.
// Only barriers shove the ship; crates are soft.
func (o *Obstacle) BlocksPlayer() bool {
	return o.Active && o.Kind == ObstacleBarrier
}

// Update scrolls the obstacle downward; off-screen obstacles deactivate.
func (o *Obstacle) Update(w *World) {
	if !o.Active {
		return
	}
	o.Y = o.Y.Add(Fixed(300).scaled(w.scrollScale()))
	if o.Y > ToFixed(w.screenH+1) {
		o.Active = false
	}
}

// HitByShot resolves one projectile impact.
func (o *Obstacle) HitByShot(w *World, damage int) {
	switch o.Kind {
	case ObstacleBarrier:
		if o.Health <= 0 {
			return // Indestructible variant
		}
		o.Health -= damage
		if o.Health <= 0 {
			o.Active = false
			w.emit(core.EventExplosion)
		}

	case ObstacleCrate, ObstacleRareCrate:
		o.crateHit(w)
	}
}

// crateHit advances the crate state machine by one hit.
func (o *Obstacle) crateHit(w *World) {
	switch o.State {
	case CrateIdle:
		o.State = CrateHitCountPending
		o.Hits--
	case CrateHitCountPending:
		o.Hits--
		if o.Hits <= 0 {
			o.State = CrateTriggered
		}
	case CrateTriggered, CrateDestroyed:
		return
	}

	if o.State == CrateTriggered {
		w.addGold(o.Gold)
		w.addFloat(o.X, o.Y, "+"+strconv.Itoa(o.Gold*w.rules.GoldMult/100), core.ColorBrightYellow)
		w.emit(core.EventPickup)
		o.State = CrateDestroyed
		o.Active = false
	}
}

// pushPlayer shoves the player out of a blocking obstacle horizontally,
// toward the nearer free side.
func (o *Obstacle) pushPlayer(w *World) {
	p := w.player
	if p == nil || !p.Active {
		return
	}

	push := Fixed(w.cfg.Obstacles.PushBack)
	oc, _ := o.Bounds().Center()
	pc, _ := p.Bounds().Center()
	if pc < oc {
		p.X = p.X.Sub(push)
	} else {
		p.X = p.X.Add(push)
	}
	p.X = ClampFixed(p.X, 0, ToFixed(w.screenW-p.W))
}
