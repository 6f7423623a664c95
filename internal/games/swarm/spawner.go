package swarm

import (
	"github.com/vovakirdan/tui-swarm/internal/config"
)

// Spawner owns every timed spawn category. Each category keeps its own
// accumulator in clock units; when an accumulator crosses its threshold the
// threshold is subtracted rather than the accumulator being reset, so
// fractional progress survives the trigger and a huge delta fires at most
// once per call.
type Spawner struct {
	hostileAcc  int
	obstacleAcc int
	convoyAcc   int
	swarmAcc    int
	crateAcc    int
	rareAcc     int
	gateAcc     int
	waveAcc     int

	convoyEvery int // Current convoy interval in ticks, shrinks per spawn
	sinceElite  int // Spawns since the last elite
}

func newSpawner(cfg config.SpawnerConfig) *Spawner {
	return &Spawner{convoyEvery: cfg.ConvoyBaseEvery}
}

// Reset returns every accumulator to zero for a fresh run.
func (s *Spawner) Reset(cfg config.SpawnerConfig) {
	*s = Spawner{convoyEvery: cfg.ConvoyBaseEvery}
}

// fire advances one accumulator and reports whether it crossed its
// threshold. At most one trigger per call: a backlog larger than the
// threshold stays in the accumulator for the next frame.
func (s *Spawner) fire(acc *int, dt, threshold int) bool {
	if threshold <= 0 {
		return false
	}
	*acc += dt
	if *acc < threshold {
		return false
	}
	*acc -= threshold
	return true
}

// WaveElapsed advances the wave clock and reports whether the current
// wave's time is up.
func (s *Spawner) WaveElapsed(w *World) bool {
	return s.fire(&s.waveAcc, w.timeScale, ticksU(w.cfg.Spawner.WaveLength))
}

// ResetWaveClock discards partial wave progress. Used when a boss fight
// holds the wave open past its timer.
func (s *Spawner) ResetWaveClock() {
	s.waveAcc = 0
}

// SpawnHostiles emits regular wave hostiles. The interval shortens as the
// ramp's spawn-rate multiplier grows, pinned by the configured cap.
func (s *Spawner) SpawnHostiles(w *World) {
	rate := w.ramp.SpawnRate(w.mode.Wave)
	threshold := ticksU(w.cfg.Spawner.SpawnEvery) * 100 / rate
	if !s.fire(&s.hostileAcc, w.timeScale, threshold) {
		return
	}

	kind := s.pickKind(w)
	tpl := w.hostileTemplate(kind)
	isElite := s.rollElite(w)
	h := newHostile(kind, tpl, w.ramp, w.cfg.Difficulty.Elite, w.mode.Wave, isElite)
	h.X = s.topSpawnX(w, h.W)
	h.Y = ToFixed(-h.H)
	w.hostiles = append(w.hostiles, h)
}

// pickKind selects an archetype from the pool the current wave has
// unlocked. Later archetypes enter the pool as waves climb.
func (s *Spawner) pickKind(w *World) HostileKind {
	pool := []HostileKind{KindGrunt, KindGrunt}
	wave := w.mode.Wave
	if wave >= 3 {
		pool = append(pool, KindRammer)
	}
	if wave >= 5 {
		pool = append(pool, KindCharger)
	}
	if wave >= 7 {
		pool = append(pool, KindShielded)
	}
	if wave >= 9 {
		pool = append(pool, KindBrood)
	}
	if wave >= 11 {
		pool = append(pool, KindKamikaze)
	}
	return pool[w.rng.Intn(len(pool))]
}

// rollElite rolls the wave-scaled elite chance. A dry streak longer than
// EliteEvery spawns forces one, so elites keep appearing on unlucky seeds.
func (s *Spawner) rollElite(w *World) bool {
	s.sinceElite++
	if every := w.cfg.Spawner.EliteEvery; every > 0 && s.sinceElite >= every {
		s.sinceElite = 0
		return true
	}
	chance := w.cfg.Difficulty.Elite.EliteChance(w.mode.Wave)
	if chance > 0 && w.rng.Intn(100) < chance {
		s.sinceElite = 0
		return true
	}
	return false
}

// topSpawnX picks a spawn column: a random lane center in lane modes, a
// random free column otherwise.
func (s *Spawner) topSpawnX(w *World, width int) Fixed {
	if w.rules.Lanes > 0 {
		lane := w.rng.Intn(w.rules.Lanes)
		return ToFixed(laneX(lane, w.screenW) - width/2)
	}
	max := w.screenW - width
	if max < 1 {
		max = 1
	}
	return ToFixed(w.rng.Intn(max))
}

// SpawnObstacles drops a barrier on its own timer in modes that carry
// obstacles.
func (s *Spawner) SpawnObstacles(w *World) {
	if !s.fire(&s.obstacleAcc, w.timeScale, ticksU(w.cfg.Spawner.ObstacleEvery)) {
		return
	}
	oc := w.cfg.Obstacles
	o := &Obstacle{
		Kind:   ObstacleBarrier,
		W:      oc.BarrierWidth,
		H:      1,
		Health: oc.BarrierHealth,
		Active: true,
	}
	o.X = s.topSpawnX(w, o.W)
	o.Y = ToFixed(-1)
	w.obstacles = append(w.obstacles, o)
}

// SpawnConvoy launches a convoy across the top. Each launch shrinks the
// interval toward the configured floor, so flood pressure keeps climbing.
func (s *Spawner) SpawnConvoy(w *World) {
	if !s.fire(&s.convoyAcc, w.timeScale, ticksU(s.convoyEvery)) {
		return
	}
	s.convoyEvery -= w.cfg.Spawner.ConvoyShrink
	if s.convoyEvery < w.cfg.Spawner.ConvoyMinEvery {
		s.convoyEvery = w.cfg.Spawner.ConvoyMinEvery
	}

	fc := w.cfg.Flood
	c := &Convoy{
		W:            7,
		H:            2,
		Health:       fc.ConvoyHealth,
		EngineHealth: fc.EngineHealth,
		Active:       true,
	}
	c.Y = ToFixed(2 + w.rng.Intn(4))
	if w.rng.Intn(2) == 0 {
		c.X = ToFixed(-c.W)
		c.VX = Fixed(fc.ConvoySpeed)
	} else {
		c.X = ToFixed(w.screenW)
		c.VX = -Fixed(fc.ConvoySpeed)
	}
	w.convoys = append(w.convoys, c)
}

// SpawnSwarmBatch releases a cluster of homing swarm units at once.
func (s *Spawner) SpawnSwarmBatch(w *World) {
	if !s.fire(&s.swarmAcc, w.timeScale, ticksU(w.cfg.Spawner.SwarmBatchEvery)) {
		return
	}
	gc := w.cfg.Gauntlet
	tpl := config.HostileTemplate{
		Health: gc.SwarmHealth,
		Speed:  gc.SwarmSpeed,
		Damage: gc.SwarmDamage,
		Points: 40,
		Gold:   2,
		Width:  1,
		Height: 1,
	}
	baseX := s.topSpawnX(w, 1)
	for i := 0; i < w.cfg.Spawner.SwarmBatchSize; i++ {
		u := newHostile(KindSwarmUnit, tpl, w.ramp, w.cfg.Difficulty.Elite, w.mode.Wave, false)
		u.X = baseX.Add(ToFixed(i % 3))
		u.Y = ToFixed(-1 - i/3)
		w.hostiles = append(w.hostiles, u)
	}
}

// SpawnCrates drops scoring crates, with a separate slower timer for rare
// crates that pay out more.
func (s *Spawner) SpawnCrates(w *World) {
	oc := w.cfg.Obstacles
	if s.fire(&s.crateAcc, w.timeScale, ticksU(w.cfg.Spawner.CrateEvery)) {
		o := &Obstacle{
			Kind:   ObstacleCrate,
			W:      2,
			H:      1,
			Hits:   oc.CrateHits,
			Gold:   oc.CrateGold,
			Active: true,
		}
		o.X = s.topSpawnX(w, o.W)
		o.Y = ToFixed(-1)
		w.obstacles = append(w.obstacles, o)
	}
	if s.fire(&s.rareAcc, w.timeScale, ticksU(w.cfg.Spawner.RareCrateEvery)) {
		if w.rng.Intn(100) >= w.cfg.Spawner.RareCrateChance {
			return
		}
		o := &Obstacle{
			Kind:   ObstacleRareCrate,
			W:      2,
			H:      1,
			Hits:   oc.CrateHits,
			Gold:   oc.RareCrateGold,
			Active: true,
		}
		o.X = s.topSpawnX(w, o.W)
		o.Y = ToFixed(-1)
		w.obstacles = append(w.obstacles, o)
	}
}

// SpawnGates drops a duplication gate on its own timer.
func (s *Spawner) SpawnGates(w *World) {
	if !s.fire(&s.gateAcc, w.timeScale, ticksU(w.cfg.Spawner.GateEvery)) {
		return
	}
	g := &Gate{
		W:      w.cfg.Gauntlet.GateWidth,
		Active: true,
	}
	g.X = s.topSpawnX(w, g.W)
	g.Y = ToFixed(-1)
	w.gates = append(w.gates, g)
}
