package swarm

import (
	"testing"

	"github.com/vovakirdan/tui-swarm/internal/config"
)

func TestFireSubtractsThresholdNotReset(t *testing.T) {
	s := &Spawner{}
	acc := 0

	// 30 units short of the threshold
	if s.fire(&acc, 70, 100) {
		t.Error("Accumulator below threshold should not fire")
	}
	// Crossing by 20: fires, and the overshoot survives
	if !s.fire(&acc, 50, 100) {
		t.Error("Accumulator crossing threshold should fire")
	}
	if acc != 20 {
		t.Errorf("Overshoot should be preserved: acc = %d, want 20", acc)
	}
	// The preserved 20 means only 80 more is needed
	if !s.fire(&acc, 80, 100) {
		t.Error("Preserved progress should count toward the next trigger")
	}
	if acc != 0 {
		t.Errorf("acc = %d, want 0", acc)
	}
}

func TestFireAtMostOncePerCall(t *testing.T) {
	s := &Spawner{}
	acc := 0

	// A delta worth three periods fires once and banks the rest
	if !s.fire(&acc, 350, 100) {
		t.Error("Large delta should fire")
	}
	if acc != 250 {
		t.Errorf("Backlog should stay in the accumulator: acc = %d, want 250", acc)
	}
	// The backlog drains one trigger per call
	if !s.fire(&acc, 0, 100) {
		t.Error("Backlog should trigger on the next call")
	}
	if acc != 150 {
		t.Errorf("acc = %d, want 150", acc)
	}
}

func TestFireZeroThresholdNeverFires(t *testing.T) {
	s := &Spawner{}
	acc := 0
	if s.fire(&acc, 1000, 0) {
		t.Error("Zero threshold must never fire")
	}
}

func TestSpawnHostilesDoesNotMutateTemplate(t *testing.T) {
	w := testWorld(t, ModeClassic)
	w.mode.Wave = 10 // Strong ramp multipliers

	before := w.cfg.Hostiles.Grunt
	h := newHostile(KindGrunt, w.cfg.Hostiles.Grunt, w.ramp, w.cfg.Difficulty.Elite, w.mode.Wave, true)

	if w.cfg.Hostiles.Grunt != before {
		t.Error("Spawning must scale a copy, never the template")
	}
	if h.Health <= before.Health {
		t.Errorf("Wave 10 elite should be scaled up: health = %d, base %d", h.Health, before.Health)
	}
	if h.MaxHealth != h.Health {
		t.Errorf("MaxHealth should track scaled health: %d vs %d", h.MaxHealth, h.Health)
	}
	if h.Points != before.Points*2 || h.Gold != before.Gold*2 {
		t.Error("Elite should double points and gold")
	}
}

func TestSpawnHostilesInterval(t *testing.T) {
	w := testWorld(t, ModeClassic)

	// Step the hostile timer alone: at wave 1 the ramp multiplier is 100,
	// so the interval is exactly SpawnEvery ticks
	ticks := w.cfg.Spawner.SpawnEvery
	for i := 0; i < ticks-1; i++ {
		w.spawner.SpawnHostiles(w)
	}
	if len(w.hostiles) != 0 {
		t.Fatalf("No hostile should spawn before the interval: got %d", len(w.hostiles))
	}
	w.spawner.SpawnHostiles(w)
	if len(w.hostiles) != 1 {
		t.Fatalf("Exactly one hostile should spawn on the interval: got %d", len(w.hostiles))
	}

	h := w.hostiles[0]
	if h.Y.ToCell() >= 0 {
		t.Error("Hostiles should spawn above the top edge")
	}
	if x := h.X.ToCell(); x < 0 || x+h.W > w.screenW {
		t.Errorf("Spawn column out of bounds: x = %d, w = %d", x, h.W)
	}
}

func TestLaneModeSpawnsOnLaneCenters(t *testing.T) {
	w := testWorld(t, ModeGauntlet)

	centers := map[int]bool{
		laneX(0, w.screenW): true,
		laneX(1, w.screenW): true,
		laneX(2, w.screenW): true,
	}

	for i := 0; i < 20; i++ {
		x := w.spawner.topSpawnX(w, 1).ToCell()
		if !centers[x] {
			t.Fatalf("Lane-mode spawn x = %d is not a lane center", x)
		}
	}
}

func TestWavePoolGrowsWithWave(t *testing.T) {
	w := testWorld(t, ModeClassic)

	w.mode.Wave = 1
	for i := 0; i < 50; i++ {
		if k := w.spawner.pickKind(w); k != KindGrunt {
			t.Fatalf("Wave 1 should only spawn grunts, got %v", k)
		}
	}

	// By wave 11 everything is in the pool; drawing enough samples
	// should surface the late archetypes
	w.mode.Wave = 11
	seen := map[HostileKind]bool{}
	for i := 0; i < 500; i++ {
		seen[w.spawner.pickKind(w)] = true
	}
	for _, k := range []HostileKind{KindRammer, KindCharger, KindShielded, KindBrood, KindKamikaze} {
		if !seen[k] {
			t.Errorf("Archetype %v never drawn from the wave 11 pool", k)
		}
	}
}

func TestElitePityTimerForcesElite(t *testing.T) {
	w := testWorld(t, ModeClassic)
	// Remove the random path so only the pity timer can trigger
	w.cfg.Difficulty.Elite.BaseChance = 0
	w.cfg.Difficulty.Elite.PerWave = 0
	w.cfg.Difficulty.Elite.MaxChance = 0
	w.cfg.Spawner.EliteEvery = 10

	elites := 0
	for i := 0; i < 30; i++ {
		if w.spawner.rollElite(w) {
			elites++
		}
	}
	if elites != 3 {
		t.Errorf("Pity timer should force exactly one elite per 10 spawns: got %d in 30", elites)
	}
}

func TestConvoyIntervalShrinksToFloor(t *testing.T) {
	w := testWorld(t, ModeFlood)
	s := w.spawner

	if s.convoyEvery != w.cfg.Spawner.ConvoyBaseEvery {
		t.Fatalf("Initial convoy interval = %d, want %d", s.convoyEvery, w.cfg.Spawner.ConvoyBaseEvery)
	}

	// Force many launches
	for i := 0; i < 50; i++ {
		s.convoyAcc = ticksU(s.convoyEvery)
		s.SpawnConvoy(w)
	}

	if s.convoyEvery != w.cfg.Spawner.ConvoyMinEvery {
		t.Errorf("Convoy interval should bottom out at the floor: %d, want %d",
			s.convoyEvery, w.cfg.Spawner.ConvoyMinEvery)
	}
	if len(w.convoys) != 50 {
		t.Errorf("Expected 50 convoys, got %d", len(w.convoys))
	}
}

func TestWaveElapsedUsesWaveLength(t *testing.T) {
	w := testWorld(t, ModeClassic)

	for i := 0; i < w.cfg.Spawner.WaveLength-1; i++ {
		if w.spawner.WaveElapsed(w) {
			t.Fatalf("Wave ended early at tick %d", i)
		}
	}
	if !w.spawner.WaveElapsed(w) {
		t.Error("Wave should end after WaveLength ticks")
	}
}

func TestBossSpawnDiscardsWaveProgress(t *testing.T) {
	w := testWorld(t, ModeClassic)
	w.mode.Wave = 5
	w.spawner.waveAcc = 1234

	w.spawnBoss()

	if w.spawner.waveAcc != 0 {
		t.Errorf("A boss fight should restart the wave clock, acc = %d", w.spawner.waveAcc)
	}
}

func TestSpawnerResetClearsAccumulators(t *testing.T) {
	cfg := config.DefaultSwarmConfig().Spawner
	s := newSpawner(cfg)
	s.hostileAcc = 500
	s.waveAcc = 900
	s.convoyEvery = 1
	s.sinceElite = 40

	s.Reset(cfg)

	if s.hostileAcc != 0 || s.waveAcc != 0 || s.sinceElite != 0 {
		t.Error("Reset should zero every accumulator")
	}
	if s.convoyEvery != cfg.ConvoyBaseEvery {
		t.Errorf("Reset should restore the convoy interval: %d, want %d", s.convoyEvery, cfg.ConvoyBaseEvery)
	}
}
