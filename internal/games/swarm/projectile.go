package swarm

import (
	"github.com/vovakirdan/tui-swarm/internal/core"
)

// ProjectileKind tags the projectile variant. Behavior differences are
// switched on this tag exhaustively; there are no ad hoc projectile records.
type ProjectileKind int

const (
	ShotStandard ProjectileKind = iota
	ShotHoming
	ShotBomb
	ShotLaser
)

// String returns the kind name for snapshots and logs.
func (k ProjectileKind) String() string {
	switch k {
	case ShotHoming:
		return "homing"
	case ShotBomb:
		return "bomb"
	case ShotLaser:
		return "laser"
	default:
		return "standard"
	}
}

// Projectile is a shot owned by either the player side or the hostile side.
type Projectile struct {
	Kind   ProjectileKind
	X, Y   Fixed // Top-left corner
	VX, VY Fixed // Velocity per tick
	W, H   int
	Damage int

	Hostile  bool // Owned by the hostile side
	Piercing bool // Keeps going after a hit
	Splash   int  // Splash radius in cells, 0 = none
	Bounce   bool // Reflects off screen edges once

	// Duplicated marks a shot already cloned by a gate, so neither the
	// same gate nor another one can clone it again. Lives on the shot,
	// not in the dispatcher.
	Duplicated bool

	bounced bool
	Active  bool
}

// Bounds returns the collision rectangle in cell coordinates.
func (p *Projectile) Bounds() core.Rect {
	return core.NewRect(p.X.ToCell(), p.Y.ToCell(), p.W, p.H)
}

// Update advances the projectile one frame. Homing shots steer toward the
// nearest opposing target; bounce-flagged shots reflect off the side walls
// once. Shots leaving the screen become inactive.
func (p *Projectile) Update(w *World) {
	if !p.Active {
		return
	}

	switch p.Kind {
	case ShotHoming:
		p.steer(w)
	case ShotBomb, ShotLaser, ShotStandard:
		// Straight flight
	}

	p.X = p.X.Add(p.VX.scaled(w.timeScale))
	p.Y = p.Y.Add(p.VY.scaled(w.timeScale))

	if p.Bounce && !p.bounced {
		maxX := ToFixed(w.screenW - p.W)
		if p.X < 0 || p.X > maxX {
			p.VX = -p.VX
			p.X = ClampFixed(p.X, 0, maxX)
			p.bounced = true
		}
	}

	if p.Y < ToFixed(-2) || p.Y > ToFixed(w.screenH+2) {
		p.Active = false
	}
	if !p.Bounce && (p.X < ToFixed(-2) || p.X > ToFixed(w.screenW+2)) {
		p.Active = false
	}
}

// steer bends a homing shot's horizontal velocity toward its target side.
func (p *Projectile) steer(w *World) {
	var targetX Fixed
	found := false

	if p.Hostile {
		if w.player != nil && w.player.Active {
			targetX = w.player.X
			found = true
		}
	} else {
		best := Fixed(0)
		bestDist := Fixed(-1)
		for _, h := range w.hostiles {
			if !h.Active {
				continue
			}
			d := h.X.Sub(p.X).Abs().Add(h.Y.Sub(p.Y).Abs())
			if bestDist < 0 || d < bestDist {
				bestDist = d
				best = h.X
				found = true
			}
		}
		targetX = best
	}

	if !found {
		return
	}

	turn := Fixed(w.cfg.Gauntlet.HomingTurn)
	diff := targetX.Sub(p.X)
	if diff > 0 {
		p.VX = p.VX.Add(turn.scaled(w.timeScale))
	} else if diff < 0 {
		p.VX = p.VX.Sub(turn.scaled(w.timeScale))
	}

	limit := p.VY.Abs()
	p.VX = ClampFixed(p.VX, -limit, limit)
}
