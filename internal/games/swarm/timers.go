package swarm

import (
	"strconv"

	"github.com/vovakirdan/tui-swarm/internal/core"
)

// Clock units: the world clock advances by the frame time scale each tick
// (100 per normal-speed frame). A duration of N ticks is N*100 units, so
// slow motion stretches every timer identically.

// ticksU converts a tick count to clock units.
func ticksU(ticks int) int {
	return ticks * 100
}

// DelayedShot is a scheduled projectile keyed to the simulation clock,
// not an OS timer: pausing or slowing the game delays it identically.
type DelayedShot struct {
	Due   int // Absolute clock time
	Shot  Projectile
	Owner *Boss // Cancelled if the owner dies first; nil means unowned
}

// DelayQueue holds pending deferred shots in schedule order.
type DelayQueue struct {
	pending []DelayedShot
}

// Schedule inserts a shot keeping the queue sorted by due time.
func (q *DelayQueue) Schedule(d DelayedShot) {
	i := len(q.pending)
	for i > 0 && q.pending[i-1].Due > d.Due {
		i--
	}
	q.pending = append(q.pending, DelayedShot{})
	copy(q.pending[i+1:], q.pending[i:])
	q.pending[i] = d
}

// CancelOwner drops every pending shot belonging to the given boss.
// Called when a boss is defeated mid-volley.
func (q *DelayQueue) CancelOwner(b *Boss) {
	kept := q.pending[:0]
	for _, d := range q.pending {
		if d.Owner != b {
			kept = append(kept, d)
		}
	}
	q.pending = kept
}

// Collect removes and returns every shot due at or before now. Shots whose
// owner has died are dropped silently.
func (q *DelayQueue) Collect(now int) []Projectile {
	var due []Projectile
	kept := q.pending[:0]
	for _, d := range q.pending {
		if d.Due > now {
			kept = append(kept, d)
			continue
		}
		if d.Owner != nil && (!d.Owner.Active || d.Owner.Phase == BossDying) {
			continue
		}
		due = append(due, d.Shot)
	}
	q.pending = kept
	return due
}

// Len returns the number of pending shots.
func (q *DelayQueue) Len() int {
	return len(q.pending)
}

// Reset clears the queue.
func (q *DelayQueue) Reset() {
	q.pending = q.pending[:0]
}

// FloatingText is a short-lived HUD label rising from an event position.
type FloatingText struct {
	Text  string
	X, Y  Fixed
	Color core.Color
	TTL   int // Clock units remaining
}

// addFloat spawns a floating label at a world position.
func (w *World) addFloat(x, y Fixed, text string, c core.Color) {
	w.floats = append(w.floats, FloatingText{
		Text:  text,
		X:     x,
		Y:     y,
		Color: c,
		TTL:   ticksU(60),
	})
}

// updateSharedTimers advances every mode-independent timer by the frame's
// scaled delta: combo decay, power-up expiry, floating text, screen shake.
func (w *World) updateSharedTimers() {
	dt := w.timeScale

	// Combo decays to zero when its window closes
	if w.combo > 0 {
		w.comboClock -= dt
		if w.comboClock <= 0 {
			w.combo = 0
			w.comboClock = 0
		}
	}

	// Floating text drifts up and expires
	kept := w.floats[:0]
	for i := range w.floats {
		f := w.floats[i]
		f.TTL -= dt
		f.Y = f.Y.Sub(Fixed(120).scaled(dt))
		if f.TTL > 0 {
			kept = append(kept, f)
		}
	}
	w.floats = kept

	// Screen effects decay on the same clock
	if w.shake > 0 {
		w.shake -= dt
		if w.shake < 0 {
			w.shake = 0
		}
	}
	if w.flash > 0 {
		w.flash -= dt
		if w.flash < 0 {
			w.flash = 0
		}
	}

	// Wave announcement banner
	if w.announceTTL > 0 {
		w.announceTTL -= dt
	}
}

// registerKill applies the shared kill bookkeeping: combo, score, kill
// count, and a floating score label.
func (w *World) registerKill(x, y Fixed, points int) {
	w.combo++
	if w.combo > w.maxCombo {
		w.maxCombo = w.combo
	}
	w.comboClock = ticksU(120) // Combo window

	multiplier := 100 + (w.combo-1)*10
	if multiplier > 300 {
		multiplier = 300
	}
	gained := points * multiplier / 100

	w.score += gained
	w.kills++
	w.addFloat(x, y, "+"+strconv.Itoa(gained), core.ColorBrightCyan)
	w.emit(core.EventKilled)
}

// addGold credits gold through the mode's reward multiplier and tracks the
// session total.
func (w *World) addGold(base int) {
	v := base * w.rules.GoldMult / 100
	w.gold += v
	w.totalGold += v
}
