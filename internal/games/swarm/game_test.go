package swarm

import (
	"testing"

	"github.com/vovakirdan/tui-swarm/internal/core"
	"github.com/vovakirdan/tui-swarm/internal/registry"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

func TestGameDeterminism(t *testing.T) {
	// Same seed, same input sequence: the digests must match every frame
	inputs := make([]core.InputFrame, 600)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i%7 < 3:
			inputs[i].Set(core.ActionLeft)
		case i%7 < 5:
			inputs[i].Set(core.ActionRight)
		}
		if i%90 == 40 {
			inputs[i].Set(core.ActionTap)
		}
	}

	g1 := New(ModeClassic)
	g1.Reset(testConfig(12345))
	g2 := New(ModeClassic)
	g2.Reset(testConfig(12345))

	for i, in := range inputs {
		g1.Step(in)
		g2.Step(in)
		s1 := g1.world.snapshot()
		s2 := g2.world.snapshot()
		if s1 != s2 {
			t.Fatalf("Snapshots diverged at frame %d:\n%+v\n%+v", i, s1, s2)
		}
	}
}

func TestGameStartsOnWaveOne(t *testing.T) {
	g := New(ModeClassic)
	g.Reset(testConfig(1))

	st := g.State()
	if st.Wave != 1 {
		t.Errorf("Fresh run starts on wave 1, got %d", st.Wave)
	}
	if st.Lives != 3 {
		t.Errorf("Classic starts with 3 lives, got %d", st.Lives)
	}
	if g.world.announceTTL <= 0 {
		t.Error("Fresh run should show the wave banner")
	}
}

func TestGameIDs(t *testing.T) {
	cases := map[ModeID]string{
		ModeClassic:  "swarm",
		ModeEndless:  "swarm_endless",
		ModeFlood:    "swarm_flood",
		ModeGauntlet: "swarm_gauntlet",
	}
	for mode, want := range cases {
		g := New(mode)
		if got := g.ID(); got != want {
			t.Errorf("New(%q).ID() = %q, want %q", mode, got, want)
		}
	}
}

func TestRegistryHasAllModes(t *testing.T) {
	for _, id := range []string{"swarm", "swarm_endless", "swarm_flood", "swarm_gauntlet"} {
		if !registry.Exists(id) {
			t.Errorf("Mode %q should be registered", id)
		}
		game, err := registry.Create(id)
		if err != nil {
			t.Errorf("Create(%q): %v", id, err)
			continue
		}
		if game.ID() != id {
			t.Errorf("Created game reports ID %q, want %q", game.ID(), id)
		}
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := New(ModeClassic)
	g.Reset(testConfig(1))

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	if !g.State().Paused {
		t.Fatal("Pause action should pause")
	}

	clock := g.world.clock
	empty := core.NewInputFrame()
	for i := 0; i < 10; i++ {
		g.Step(empty)
	}
	if g.world.clock != clock {
		t.Error("Paused world must not advance")
	}

	g.Step(pause)
	if g.State().Paused {
		t.Error("A second pause press should resume")
	}
}

func TestShopToggleAndPurchase(t *testing.T) {
	g := New(ModeClassic)
	g.Reset(testConfig(1))
	g.world.gold = 500

	back := core.NewInputFrame()
	back.Set(core.ActionBack)
	g.Step(back)

	if g.state != StateShop {
		t.Fatalf("Back should open the shop in classic, state = %s", g.state)
	}

	// Cursor starts on damage; confirm buys one level
	confirm := core.NewInputFrame()
	confirm.Set(core.ActionConfirm)
	g.Step(confirm)

	if g.world.upgrades.Damage != 1 {
		t.Errorf("Purchase should raise the damage level, got %d", g.world.upgrades.Damage)
	}
	if g.world.gold != 500-g.cfg.Shop.DamageCost {
		t.Errorf("Purchase should cost %d, gold = %d", g.cfg.Shop.DamageCost, g.world.gold)
	}

	// Next level costs more
	if g.world.ItemCost(ShopDamage) <= g.cfg.Shop.DamageCost {
		t.Error("Cost should grow with each level")
	}

	g.Step(back)
	if g.state != StatePlaying {
		t.Error("Back should close the shop")
	}
}

func TestShopUnavailableInFlood(t *testing.T) {
	g := New(ModeFlood)
	g.Reset(testConfig(1))

	back := core.NewInputFrame()
	back.Set(core.ActionBack)
	g.Step(back)

	if g.state == StateShop {
		t.Error("Flood has no shop")
	}
}

func TestShopCursorWraps(t *testing.T) {
	g := New(ModeClassic)
	g.Reset(testConfig(1))
	g.state = StateShop

	up := core.NewInputFrame()
	up.Set(core.ActionUp)
	g.Step(up)
	if g.shopCursor != len(shopItems)-1 {
		t.Errorf("Cursor should wrap from the top, got %d", g.shopCursor)
	}

	down := core.NewInputFrame()
	down.Set(core.ActionDown)
	g.Step(down)
	if g.shopCursor != 0 {
		t.Errorf("Cursor should wrap from the bottom, got %d", g.shopCursor)
	}
}

func TestDeathConsumesLifeAndRespawns(t *testing.T) {
	g := New(ModeClassic)
	g.Reset(testConfig(1))
	w := g.world

	w.player.Health = 1
	w.player.Active = false // Simulate a lethal frame

	empty := core.NewInputFrame()
	g.Step(empty)

	if g.state != StatePlaying {
		t.Fatalf("Two lives remain: the run continues, state = %s", g.state)
	}
	if w.mode.Lives != 2 {
		t.Errorf("Death should cost a life, lives = %d", w.mode.Lives)
	}
	if !w.player.Active {
		t.Error("Player should respawn")
	}
	if w.player.Health != w.player.Max {
		t.Errorf("Respawn restores full health, got %d", w.player.Health)
	}
	if !w.player.Invulnerable(w) {
		t.Error("Respawn should grant a grace window")
	}
}

func TestGameOverAfterLastLife(t *testing.T) {
	g := New(ModeFlood) // One life
	g.Reset(testConfig(1))

	g.world.player.Active = false
	empty := core.NewInputFrame()
	g.Step(empty)

	st := g.State()
	if !st.GameOver {
		t.Fatal("Losing the only life should end the run")
	}
	if st.Victory {
		t.Error("A loss is not a victory")
	}
}

func TestRestartLockDelaysRestart(t *testing.T) {
	g := New(ModeFlood)
	g.Reset(testConfig(1))
	g.world.player.Active = false

	empty := core.NewInputFrame()
	g.Step(empty)
	if !g.State().GameOver {
		t.Fatal("Run should be over")
	}

	// A held restart key during the lock window does nothing
	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	for i := 0; i < restartLockTicks; i++ {
		g.Step(restart)
	}
	if !g.State().GameOver {
		t.Fatal("Restart should be locked out right after the end screen")
	}

	g.Step(restart)
	if g.State().GameOver {
		t.Error("Restart should work once the lock expires")
	}
	if g.State().Wave != 1 {
		t.Errorf("Restart should rebuild the run, wave = %d", g.State().Wave)
	}
}

func TestVictoryOnGauntletFinalWave(t *testing.T) {
	g := New(ModeGauntlet)
	g.Reset(testConfig(1))
	w := g.world
	w.mode.Wave = w.rules.FinalWave
	w.waveCleared = true

	empty := core.NewInputFrame()
	g.Step(empty)

	st := g.State()
	if !st.Victory {
		t.Error("Clearing the final gauntlet wave should be a victory")
	}
}

func TestUnboundedLivesShownAsZero(t *testing.T) {
	g := New(ModeGauntlet)
	g.Reset(testConfig(1))

	if lives := g.State().Lives; lives != 0 {
		t.Errorf("Unbounded lives display as 0, got %d", lives)
	}
}

func TestTooSmallScreenFreezesGame(t *testing.T) {
	g := New(ModeClassic)
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60, Seed: 1})

	empty := core.NewInputFrame()
	g.Step(empty)
	if g.world.clock != 0 {
		t.Error("Sub-minimum screens should not run the simulation")
	}
}

func TestSlowPickupStretchesClock(t *testing.T) {
	g := New(ModeClassic)
	g.Reset(testConfig(1))
	w := g.world

	w.slowUntil = 1 << 30

	empty := core.NewInputFrame()
	g.Step(empty)
	g.Step(empty)

	want := 2 * w.cfg.Pickups.SlowScale
	if w.clock != want {
		t.Errorf("Slow frames advance the clock by SlowScale: clock = %d, want %d", w.clock, want)
	}
}

func TestComboMultiplierAndDecay(t *testing.T) {
	w := testWorld(t, ModeClassic)

	w.registerKill(0, 0, 100)
	if w.score != 100 {
		t.Errorf("First kill pays base points, score = %d", w.score)
	}
	w.registerKill(0, 0, 100)
	if w.score != 210 {
		t.Errorf("Second kill pays 110%%, score = %d", w.score)
	}
	if w.combo != 2 || w.maxCombo != 2 {
		t.Errorf("combo = %d, maxCombo = %d, want 2, 2", w.combo, w.maxCombo)
	}

	// Run the decay window down
	for i := 0; i < 121; i++ {
		w.updateSharedTimers()
	}
	if w.combo != 0 {
		t.Errorf("Combo should decay to zero, got %d", w.combo)
	}
	if w.maxCombo != 2 {
		t.Error("Max combo is a high-water mark and must survive decay")
	}
}

func TestComboMultiplierCap(t *testing.T) {
	w := testWorld(t, ModeClassic)

	for i := 0; i < 40; i++ {
		w.registerKill(0, 0, 0)
	}
	score := w.score
	w.registerKill(0, 0, 100)
	if w.score-score != 300 {
		t.Errorf("Multiplier caps at 3x, kill paid %d", w.score-score)
	}
}

func TestSummaryOnlyForRecordingModes(t *testing.T) {
	g := New(ModeClassic)
	g.Reset(testConfig(1))
	g.world.totalGold = 42
	g.world.maxCombo = 9

	s := g.Summary()
	if s.TotalGold != 42 || s.MaxCombo != 9 {
		t.Errorf("Classic should export its summary, got %+v", s)
	}
	if !g.RecordsScore() {
		t.Error("Classic records scores")
	}

	gg := New(ModeGauntlet)
	gg.Reset(testConfig(1))
	gg.world.totalGold = 42
	if s := gg.Summary(); s.TotalGold != 0 {
		t.Error("Non-recording modes export a zero summary")
	}
	if gg.RecordsScore() {
		t.Error("Gauntlet does not record scores")
	}
}

func TestGoldMultiplierPerMode(t *testing.T) {
	classic := testWorld(t, ModeClassic)
	classic.addGold(100)
	if classic.gold != 100 {
		t.Errorf("Classic pays 100%%, got %d", classic.gold)
	}

	flood := testWorld(t, ModeFlood)
	flood.addGold(100)
	if flood.gold != 150 {
		t.Errorf("Flood pays 150%%, got %d", flood.gold)
	}
}

func TestWingPurchaseAddsCompanion(t *testing.T) {
	g := New(ModeClassic)
	g.Reset(testConfig(1))
	w := g.world
	w.gold = 1000

	if !w.Buy(ShopWing) {
		t.Fatal("Wing purchase should succeed")
	}
	if w.wingSize != 1 {
		t.Errorf("Wing size = %d, want 1", w.wingSize)
	}
	if len(w.wing) != 1 {
		t.Errorf("One companion should be on screen, got %d", len(w.wing))
	}
}

func TestWeaponUnlocksAtWingMilestones(t *testing.T) {
	w := testWorld(t, ModeClassic)

	w.setWingSize(3)
	if w.weapons[ShotHoming] {
		t.Error("No unlock below the first milestone")
	}
	w.setWingSize(4)
	if !w.weapons[ShotHoming] {
		t.Error("Wing size 4 unlocks the homing shot")
	}
	w.setWingSize(8)
	if !w.weapons[ShotBomb] {
		t.Error("Wing size 8 unlocks the bomb")
	}
	w.setWingSize(12)
	if !w.weapons[ShotLaser] {
		t.Error("Wing size 12 unlocks the laser")
	}

	if len(w.unlockedWeapons) != 3 {
		t.Errorf("Unlock list should hold 3 names, got %v", w.unlockedWeapons)
	}

	// Shrinking and growing again must not duplicate entries
	w.setWingSize(0)
	w.setWingSize(12)
	if len(w.unlockedWeapons) != 3 {
		t.Errorf("Unlocks must not repeat, got %v", w.unlockedWeapons)
	}
}

func TestWingOverflowBoostsDamage(t *testing.T) {
	w := testWorld(t, ModeClassic)

	w.setWingSize(w.cfg.Wing.DisplayCap)
	if len(w.wing) != w.cfg.Wing.DisplayCap {
		t.Fatalf("Companions capped at %d, got %d", w.cfg.Wing.DisplayCap, len(w.wing))
	}
	if w.wingDamagePercent() != 100 {
		t.Errorf("No overflow, no bonus: %d%%", w.wingDamagePercent())
	}

	w.setWingSize(w.cfg.Wing.DisplayCap + 3)
	if len(w.wing) != w.cfg.Wing.DisplayCap {
		t.Error("Overflow companions are never drawn")
	}
	want := 100 + 3*w.cfg.Wing.DamageBonus
	if w.wingDamagePercent() != want {
		t.Errorf("Overflow bonus = %d%%, want %d%%", w.wingDamagePercent(), want)
	}
}
