package swarm

import (
	"math/rand"

	"github.com/vovakirdan/tui-swarm/internal/config"
	"github.com/vovakirdan/tui-swarm/internal/core"
)

// World holds the full simulation state for one run. Everything is integer
// math driven by a deterministic clock: two worlds built from the same
// config, seed and input sequence stay identical forever.
type World struct {
	cfg   config.SwarmConfig
	rules Rules
	ramp  config.Ramp
	mode  ModeState

	behavior ModeBehavior
	spawner  *Spawner
	rng      *rand.Rand

	screenW, screenH int

	// The clock advances by timeScale per frame: 100 at normal speed,
	// less under a slow-time pickup. All durations are in clock units.
	clock     int
	timeScale int

	player *Player
	wing   []*Companion
	// wingSize is the earned wing strength; companions on screen are
	// capped below it and the overflow converts to bonus damage.
	wingSize int

	hostiles     []*Hostile
	shots        []*Projectile
	hostileShots []*Projectile
	pickups      []*Pickup
	obstacles    []*Obstacle
	gates        []*Gate
	convoys      []*Convoy
	hazard       *Hazard
	boss         *Boss

	floats []FloatingText
	delays DelayQueue
	events []core.Event

	score      int
	gold       int
	totalGold  int
	kills      int
	combo      int
	comboClock int
	maxCombo   int

	boostUntil  int
	rapidUntil  int
	shieldUntil int
	slowUntil   int

	shake       int
	flash       int
	announceTTL int

	laneHeld bool

	upgrades struct {
		Damage   int
		FireRate int
		Wing     int
	}
	weapons         map[ProjectileKind]bool
	unlockedWeapons []string

	bossSpawned  bool
	bossDefeated bool
	waveCleared  bool
}

func newWorld(mode ModeID, cfg config.SwarmConfig, rc core.RuntimeConfig) *World {
	w := &World{cfg: cfg}
	w.reset(mode, rc)
	return w
}

// reset rebuilds the world for a fresh run with the same config.
func (w *World) reset(mode ModeID, rc core.RuntimeConfig) {
	rules := RulesFor(mode)
	spawner := w.spawner
	if spawner == nil {
		spawner = newSpawner(w.cfg.Spawner)
	} else {
		spawner.Reset(w.cfg.Spawner)
	}
	*w = World{
		cfg:       w.cfg,
		rules:     rules,
		ramp:      config.Ramp{Curve: rules.Ramp, Caps: w.cfg.Difficulty.Caps},
		mode:      newModeState(mode),
		behavior:  behaviorFor(mode),
		spawner:   spawner,
		rng:       rand.New(rand.NewSource(rc.Seed)),
		screenW:   rc.ScreenW,
		screenH:   rc.ScreenH,
		timeScale: 100,
		weapons:   map[ProjectileKind]bool{ShotStandard: true},
	}

	pc := w.cfg.Player
	w.player = &Player{
		X:      ToFixed(w.screenW/2 - pc.Width/2),
		Y:      ToFixed(w.screenH - 1 - pc.Height),
		W:      pc.Width,
		H:      pc.Height,
		Health: 100,
		Max:    100,
		Active: true,
		lane:   1,
	}
	if w.rules.Lanes > 0 {
		w.player.X = ToFixed(laneX(1, w.screenW) - pc.Width/2)
	}

	if w.mode.Mode == ModeFlood {
		w.hazard = newHazard(w.screenH, w.cfg.Flood.StartGap)
	}

	w.announceTTL = ticksU(90)
	w.emit(core.EventWaveStarted)
}

// step advances the simulation exactly one frame.
func (w *World) step(in core.InputFrame) {
	w.events = w.events[:0]

	// Time scale first: every accumulator below sees the same delta
	if w.clock < w.slowUntil {
		w.timeScale = w.cfg.Pickups.SlowScale
	} else {
		w.timeScale = 100
	}
	w.clock += w.timeScale

	w.updatePlayer(in)
	w.updateAutoFire(in)
	w.updateWing()

	w.behavior.UpdateSpawning(w)

	w.updateEntities()

	w.dispatchPlayerShots()
	w.behavior.ResolveModeCollisions(w)
	w.dispatchHostileShots()
	w.dispatchHostileContact()
	w.dispatchPickups()
	w.dispatchObstaclePush()

	w.updateSharedTimers()
	w.purge()
}

// updateEntities moves everything that is not the player.
func (w *World) updateEntities() {
	for _, h := range w.hostiles {
		if fired := h.Update(w); len(fired) > 0 {
			w.hostileShots = append(w.hostileShots, fired...)
		}
	}
	for _, p := range w.shots {
		p.Update(w)
	}
	for _, p := range w.hostileShots {
		p.Update(w)
	}
	for _, p := range w.pickups {
		p.Update(w)
	}
	for _, o := range w.obstacles {
		o.Update(w)
	}
	for _, g := range w.gates {
		g.Update(w)
	}
	for _, c := range w.convoys {
		c.Update(w)
	}
	if w.hazard != nil {
		w.hazard.Update(w)
	}

	if w.boss != nil {
		w.boss.Update(w)
		if !w.boss.Active {
			w.boss = nil
			w.bossDefeated = true
			w.completeWave()
		}
	}

	// Deferred boss shots come due on the simulation clock
	for _, shot := range w.delays.Collect(w.clock) {
		s := shot
		w.hostileShots = append(w.hostileShots, &s)
		w.emit(core.EventFired)
	}
}

// endWave runs when the wave timer elapses. A boss wave holds open until
// its boss is down; otherwise the next wave starts immediately.
func (w *World) endWave() {
	if !w.bossSpawned && w.mode.ShouldSpawnBoss(w.rules, w.mode.Wave) {
		w.spawnBoss()
		return
	}
	w.completeWave()
}

// completeWave marks the wave cleared and advances unless this was the
// winning wave.
func (w *World) completeWave() {
	w.waveCleared = true
	if w.rules.Winnable && w.rules.FinalWave > 0 && w.mode.Wave >= w.rules.FinalWave {
		return
	}
	w.advanceWave()
}

func (w *World) advanceWave() {
	w.mode.Wave++
	w.bossSpawned = false
	w.bossDefeated = false
	w.waveCleared = false
	w.announceTTL = ticksU(90)
	w.emit(core.EventWaveStarted)
}

func (w *World) spawnBoss() {
	w.boss = newBoss(w)
	w.bossSpawned = true
	// The boss holds the wave open, so discard the partial wave clock
	w.spawner.ResetWaveClock()
	w.emit(core.EventBossAppeared)
}

// damagePlayer applies contact or shot damage through every protection
// layer: mode invincibility, respawn grace, and the shield pickup.
func (w *World) damagePlayer(amount int) {
	if w.rules.Invincible || w.player.Invulnerable(w) {
		return
	}
	w.player.Health -= amount
	w.shake = ticksU(20)
	w.emit(core.EventPlayerDamaged)
	if w.player.Health <= 0 {
		w.player.Health = 0
		w.player.Active = false
		w.emit(core.EventPlayerDied)
	}
}

// respawn returns the player to the start position with a grace window.
func (w *World) respawn() {
	pc := w.cfg.Player
	w.player.Health = w.player.Max
	w.player.Active = true
	w.player.X = ToFixed(w.screenW/2 - pc.Width/2)
	if w.rules.Lanes > 0 {
		w.player.lane = 1
		w.player.X = ToFixed(laneX(1, w.screenW) - pc.Width/2)
	}
	w.player.invulnUntil = w.clock + ticksU(pc.InvulnTime)
	w.combo = 0
	w.comboClock = 0
}

// scrollScale is the percent applied to world scroll speeds: the frame's
// time scale times the boost multiplier while a boost is live.
func (w *World) scrollScale() int {
	if w.clock < w.boostUntil {
		return w.timeScale * w.cfg.Player.BoostScale / 100
	}
	return w.timeScale
}

func (w *World) emit(e core.Event) {
	w.events = append(w.events, e)
}

// hostileTemplate maps an archetype to its configured stat block.
func (w *World) hostileTemplate(kind HostileKind) config.HostileTemplate {
	hc := w.cfg.Hostiles
	switch kind {
	case KindRammer:
		return hc.Rammer
	case KindCharger:
		return hc.Charger
	case KindShielded:
		return hc.Shielded
	case KindBrood:
		return hc.Brood
	case KindKamikaze:
		return hc.Kamikaze
	default:
		return hc.Grunt
	}
}

// purge drops dead entities in place, preserving relative order. Removal
// happens once per frame, after all dispatch passes, so iteration above
// never sees a mutated slice.
func (w *World) purge() {
	hostiles := w.hostiles[:0]
	for _, h := range w.hostiles {
		if h.Active {
			hostiles = append(hostiles, h)
		}
	}
	w.hostiles = hostiles

	shots := w.shots[:0]
	for _, p := range w.shots {
		if p.Active {
			shots = append(shots, p)
		}
	}
	w.shots = shots

	hostileShots := w.hostileShots[:0]
	for _, p := range w.hostileShots {
		if p.Active {
			hostileShots = append(hostileShots, p)
		}
	}
	w.hostileShots = hostileShots

	pickups := w.pickups[:0]
	for _, p := range w.pickups {
		if p.Active {
			pickups = append(pickups, p)
		}
	}
	w.pickups = pickups

	obstacles := w.obstacles[:0]
	for _, o := range w.obstacles {
		if o.Active {
			obstacles = append(obstacles, o)
		}
	}
	w.obstacles = obstacles

	gates := w.gates[:0]
	for _, g := range w.gates {
		if g.Active {
			gates = append(gates, g)
		}
	}
	w.gates = gates

	convoys := w.convoys[:0]
	for _, c := range w.convoys {
		if c.Active {
			convoys = append(convoys, c)
		}
	}
	w.convoys = convoys

	wing := w.wing[:0]
	for _, c := range w.wing {
		if c.Active {
			wing = append(wing, c)
		}
	}
	w.wing = wing
}
