package swarm

import (
	"github.com/vovakirdan/tui-swarm/internal/core"
)

// Hazard is the rising zone in flood mode. It climbs from the bottom of the
// screen; the run ends instantly if it reaches the player's row.
type Hazard struct {
	Row       int // Topmost hazardous row
	riseClock int // Clock units toward the next climb
}

// newHazard places the hazard startGap rows below the bottom edge.
func newHazard(screenH, startGap int) *Hazard {
	return &Hazard{Row: screenH - 1 + startGap}
}

// Update climbs the hazard one row each time its interval elapses.
func (hz *Hazard) Update(w *World) {
	hz.riseClock += w.timeScale
	threshold := w.cfg.Flood.RiseEvery * 100
	for hz.riseClock >= threshold {
		hz.riseClock -= threshold
		hz.Row--
	}
}

// Reached reports whether the hazard has reached the given row.
func (hz *Hazard) Reached(row int) bool {
	return hz.Row <= row
}

// Convoy is a drifting ship crossing the top of the screen in flood mode.
// Its engine is a destructible sub-component: killing the engine stops the
// drift and pays a bonus; killing the hull destroys the whole ship.
type Convoy struct {
	X, Y   Fixed
	W, H   int
	VX     Fixed
	Health int
	Active bool

	EngineHealth    int
	EngineDestroyed bool
}

// Bounds returns the hull collision rectangle in cell coordinates.
func (c *Convoy) Bounds() core.Rect {
	return core.NewRect(c.X.ToCell(), c.Y.ToCell(), c.W, c.H)
}

// EngineBounds returns the engine sub-rectangle: the rear third of the hull.
func (c *Convoy) EngineBounds() core.Rect {
	b := c.Bounds()
	ew := core.Max(1, b.W/3)
	if c.VX >= 0 {
		return core.NewRect(b.X, b.Y, ew, b.H)
	}
	return core.NewRect(b.Right()-ew, b.Y, ew, b.H)
}

// Update drifts the convoy across the screen. A convoy whose engine is dead
// stays put; one that leaves the far edge deactivates.
func (c *Convoy) Update(w *World) {
	if !c.Active {
		return
	}
	if !c.EngineDestroyed {
		c.X = c.X.Add(c.VX.scaled(w.timeScale))
	}
	if c.X > ToFixed(w.screenW+2) || c.X < ToFixed(-c.W-2) {
		c.Active = false
	}
}

// HitByShot resolves a projectile impact against hull or engine. The engine
// check runs first so a shot landing on the overlap damages the
// sub-component, not the hull.
func (c *Convoy) HitByShot(w *World, shotRect core.Rect, damage int) {
	if !c.EngineDestroyed && shotRect.Intersects(c.EngineBounds()) {
		c.EngineHealth -= damage
		if c.EngineHealth <= 0 {
			c.EngineDestroyed = true
			w.addGold(w.cfg.Flood.EngineBonus)
			w.emit(core.EventExplosion)
		}
		return
	}

	c.Health -= damage
	if c.Health <= 0 {
		c.Active = false
		w.addGold(w.cfg.Flood.ConvoyGold)
		w.registerKill(c.X, c.Y, 300)
		w.emit(core.EventExplosion)
	}
}

// Gate duplicates player projectiles that pass through it. Each shot can be
// duplicated at most once per life, tracked on the shot itself.
type Gate struct {
	X, Y   Fixed
	W      int
	Active bool
}

// Bounds returns the gate's one-row collision rectangle.
func (g *Gate) Bounds() core.Rect {
	return core.NewRect(g.X.ToCell(), g.Y.ToCell(), g.W, 1)
}

// Update scrolls the gate downward; past the player's row it deactivates,
// a spent gate must not follow the ship off-screen.
func (g *Gate) Update(w *World) {
	if !g.Active {
		return
	}
	g.Y = g.Y.Add(Fixed(250).scaled(w.scrollScale()))
	if g.Y > ToFixed(w.screenH-2) {
		g.Active = false
	}
}

// duplicateShot clones a passing projectile with a sideways offset and
// marks both copies so no gate touches them again this life.
func (g *Gate) duplicateShot(w *World, shot *Projectile) {
	if shot.Duplicated || shot.Hostile {
		return
	}
	shot.Duplicated = true

	clone := *shot
	clone.X = clone.X.Add(ToFixed(1))
	clone.VX = clone.VX.Add(Fixed(150))
	clone.Duplicated = true
	clone.Active = true
	w.shots = append(w.shots, &clone)
}
