package swarm

import (
	"testing"
)

func TestRulesTablePerMode(t *testing.T) {
	classic := RulesFor(ModeClassic)
	if classic.FinalWave != 30 || !classic.Winnable || !classic.FinalBoss {
		t.Error("Classic should be a 30-wave campaign ending on a boss")
	}
	if !classic.ShopEnabled || !classic.Obstacles || !classic.RecordScore {
		t.Error("Classic should carry shop, obstacles and scoring")
	}

	endless := RulesFor(ModeEndless)
	if endless.FinalWave != 0 || endless.Winnable {
		t.Error("Endless must have no finish line")
	}
	if endless.GoldMult <= classic.GoldMult {
		t.Error("Endless should pay a gold premium")
	}

	flood := RulesFor(ModeFlood)
	if flood.StartLives != 1 {
		t.Errorf("Flood is one life, got %d", flood.StartLives)
	}
	if flood.ShopEnabled || flood.Obstacles {
		t.Error("Flood should run without shop or barriers")
	}

	gauntlet := RulesFor(ModeGauntlet)
	if !gauntlet.Invincible || !gauntlet.PickupsDisabled {
		t.Error("Gauntlet is a no-damage, no-pickup dodge mode")
	}
	if gauntlet.Lanes != 3 {
		t.Errorf("Gauntlet uses 3 lanes, got %d", gauntlet.Lanes)
	}
	if gauntlet.RecordScore {
		t.Error("Gauntlet should not write to the scoreboard")
	}
}

func TestRulesForUnknownFallsBackToClassic(t *testing.T) {
	if RulesFor("nope") != RulesFor(ModeClassic) {
		t.Error("Unknown mode should fall back to the classic rules")
	}
}

func TestLoseLifeBounded(t *testing.T) {
	m := newModeState(ModeClassic)
	if m.Lives != 3 {
		t.Fatalf("Classic starts with 3 lives, got %d", m.Lives)
	}
	if m.LoseLife() {
		t.Error("First death should not end the run")
	}
	if m.LoseLife() {
		t.Error("Second death should not end the run")
	}
	if !m.LoseLife() {
		t.Error("Losing the last life should end the run")
	}
}

func TestLoseLifeUnbounded(t *testing.T) {
	m := newModeState(ModeGauntlet)
	if m.Lives >= 0 {
		t.Fatalf("Zero configured lives means unbounded, got %d", m.Lives)
	}
	for i := 0; i < 100; i++ {
		if m.LoseLife() {
			t.Fatal("Unbounded lives must never end the run")
		}
	}
}

func TestShouldSpawnBossCadence(t *testing.T) {
	m := newModeState(ModeClassic)
	r := RulesFor(ModeClassic)

	bossWaves := map[int]bool{}
	for wave := 1; wave <= 30; wave++ {
		if m.ShouldSpawnBoss(r, wave) {
			bossWaves[wave] = true
		}
	}

	for _, wave := range []int{5, 10, 15, 20, 25, 30} {
		if !bossWaves[wave] {
			t.Errorf("Wave %d should have a boss", wave)
		}
	}
	for _, wave := range []int{1, 4, 6, 29} {
		if bossWaves[wave] {
			t.Errorf("Wave %d should not have a boss", wave)
		}
	}
}

func TestShouldSpawnBossFinalWaveWithoutCadence(t *testing.T) {
	m := ModeState{}
	r := Rules{FinalWave: 8, FinalBoss: true}

	if m.ShouldSpawnBoss(r, 7) {
		t.Error("No cadence and not the final wave: no boss")
	}
	if !m.ShouldSpawnBoss(r, 8) {
		t.Error("The final wave of a final-boss mode always gets a boss")
	}
}

func TestBehaviorSelection(t *testing.T) {
	if _, ok := behaviorFor(ModeClassic).(*waveBehavior); !ok {
		t.Error("Classic should use the wave behavior")
	}
	if _, ok := behaviorFor(ModeEndless).(*waveBehavior); !ok {
		t.Error("Endless should use the wave behavior")
	}
	if _, ok := behaviorFor(ModeFlood).(*floodBehavior); !ok {
		t.Error("Flood should use the flood behavior")
	}
	if _, ok := behaviorFor(ModeGauntlet).(*gauntletBehavior); !ok {
		t.Error("Gauntlet should use the gauntlet behavior")
	}
}

func TestBossFightHoldsWaveOpen(t *testing.T) {
	w := testWorld(t, ModeClassic)
	w.mode.Wave = 5
	w.spawnBoss()

	wave := w.mode.Wave
	// Step spawning far past the wave length
	for i := 0; i < w.cfg.Spawner.WaveLength*2; i++ {
		w.behavior.UpdateSpawning(w)
	}

	if w.mode.Wave != wave {
		t.Errorf("Wave advanced to %d during a boss fight", w.mode.Wave)
	}
	if len(w.hostiles) != 0 {
		t.Errorf("Regular hostiles spawned during a boss fight: %d", len(w.hostiles))
	}
}

func TestWaveAdvancesWithoutBoss(t *testing.T) {
	w := testWorld(t, ModeClassic)

	for i := 0; i < w.cfg.Spawner.WaveLength; i++ {
		if w.spawner.WaveElapsed(w) {
			w.endWave()
		}
	}
	if w.mode.Wave != 2 {
		t.Errorf("Wave 1 has no boss and should roll into wave 2, got %d", w.mode.Wave)
	}
}

func TestClassicVictoryRequiresFinalBoss(t *testing.T) {
	w := testWorld(t, ModeClassic)
	w.mode.Wave = 30

	if w.behavior.CheckVictory(w) {
		t.Error("Reaching the final wave is not victory by itself")
	}
	w.waveCleared = true
	if w.behavior.CheckVictory(w) {
		t.Error("The final wave only resolves once its boss is down")
	}
	w.bossDefeated = true
	if !w.behavior.CheckVictory(w) {
		t.Error("Final boss down on the final wave should win")
	}
}

func TestEarlyBossKillDoesNotPreWinFinalWave(t *testing.T) {
	w := testWorld(t, ModeClassic)
	w.mode.Wave = 5
	w.spawnBoss()
	w.boss.Phase = BossActive
	w.boss.Hit(w, w.boss.Health)
	for i := 0; i < w.cfg.Boss.DeathTime+5; i++ {
		w.updateEntities()
	}

	for w.mode.Wave < w.rules.FinalWave {
		w.advanceWave()
	}
	if w.behavior.CheckVictory(w) {
		t.Fatal("Entering the final wave after an earlier boss kill must not be victory")
	}

	w.spawnBoss()
	w.boss.Phase = BossActive
	w.boss.Hit(w, w.boss.Health)
	for i := 0; i < w.cfg.Boss.DeathTime+5; i++ {
		w.updateEntities()
	}
	if !w.behavior.CheckVictory(w) {
		t.Error("The final wave's own boss falling should win")
	}
}

func TestEndlessNeverWins(t *testing.T) {
	w := testWorld(t, ModeEndless)
	w.mode.Wave = 1000
	w.waveCleared = true
	w.bossDefeated = true
	if w.behavior.CheckVictory(w) {
		t.Error("Endless must never report victory")
	}
}

func TestGauntletVictoryOnFinalWaveClear(t *testing.T) {
	w := testWorld(t, ModeGauntlet)
	w.mode.Wave = 12

	if w.behavior.CheckVictory(w) {
		t.Error("Final wave not yet cleared")
	}
	w.waveCleared = true
	if !w.behavior.CheckVictory(w) {
		t.Error("Clearing the final gauntlet wave should win")
	}
}

func TestFloodHazardKillsPlayer(t *testing.T) {
	w := testWorld(t, ModeFlood)
	if w.hazard == nil {
		t.Fatal("Flood mode should start with a hazard")
	}

	w.hazard.Row = w.player.Y.ToCell()
	w.behavior.ResolveModeCollisions(w)

	if w.player.Active {
		t.Error("Hazard reaching the player's row should end the run instantly")
	}
	if w.player.Health != 0 {
		t.Errorf("Hazard death zeroes health, got %d", w.player.Health)
	}
}

func TestGauntletPlayerIsInvincible(t *testing.T) {
	w := testWorld(t, ModeGauntlet)

	w.damagePlayer(1000)

	if w.player.Health != 100 {
		t.Errorf("Invincible mode should ignore damage: health = %d", w.player.Health)
	}
	if !w.player.Active {
		t.Error("Invincible player should stay alive")
	}
}
