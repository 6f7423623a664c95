package storage

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Save some runs
	if _, err := store.SaveRun("swarm", 100, 3, 12); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := store.SaveRun("swarm", 50, 2, 6); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if _, err := store.SaveRun("swarm", 200, 5, 30); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	// Different mode
	if _, err := store.SaveRun("swarm_flood", 500, 8, 40); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	scores, err := store.TopScores("swarm", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	if scores[0].Score != 200 {
		t.Errorf("Expected highest score to be 200, got %d", scores[0].Score)
	}
	if scores[0].Wave != 5 || scores[0].Kills != 30 {
		t.Errorf("Run details not preserved: wave=%d kills=%d", scores[0].Wave, scores[0].Kills)
	}
	if scores[1].Score != 100 {
		t.Errorf("Expected second score to be 100, got %d", scores[1].Score)
	}
	if scores[2].Score != 50 {
		t.Errorf("Expected third score to be 50, got %d", scores[2].Score)
	}

	floodScores, err := store.TopScores("swarm_flood", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(floodScores) != 1 {
		t.Errorf("Expected 1 flood score, got %d", len(floodScores))
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 5; i++ {
		store.SaveRun("swarm", (i+1)*100, i+1, i*5)
	}

	scores, err := store.TopScores("swarm", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// No runs yet
	high, err := store.HighScore("swarm")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveRun("swarm", 100, 2, 5)
	store.SaveRun("swarm", 300, 6, 40)
	store.SaveRun("swarm", 200, 4, 20)

	high, err = store.HighScore("swarm")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun("swarm", 100, 2, 4)
	store.SaveRun("swarm", 200, 3, 9)
	store.SaveRun("swarm_endless", 300, 7, 50)

	if err := store.ClearScores("swarm"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	classicScores, _ := store.TopScores("swarm", 10)
	if len(classicScores) != 0 {
		t.Errorf("Expected 0 classic scores after clear, got %d", len(classicScores))
	}

	endlessScores, _ := store.TopScores("swarm_endless", 10)
	if len(endlessScores) != 1 {
		t.Errorf("Endless scores should not be affected by clearing classic")
	}
}

func TestStoreProfileEmpty(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	p, err := store.LoadProfile()
	if err != nil {
		t.Fatalf("LoadProfile() failed: %v", err)
	}
	if !reflect.DeepEqual(p, (Profile{})) {
		t.Errorf("Expected zero profile, got %+v", p)
	}
}

func TestStoreProfileMerge(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	first := Profile{
		Gold:            50,
		TotalGold:       120,
		DamageLevel:     2,
		FireRateLevel:   1,
		WingLevel:       1,
		UnlockedWeapons: []string{"homing"},
		MaxCombo:        8,
		HighestWave:     6,
	}
	if err := store.MergeProfile(first); err != nil {
		t.Fatalf("MergeProfile() failed: %v", err)
	}

	second := Profile{
		Gold:            30,
		TotalGold:       80,
		DamageLevel:     1, // Lower level must not regress the profile
		FireRateLevel:   3,
		WingLevel:       0,
		UnlockedWeapons: []string{"homing", "bomb"},
		MaxCombo:        5,
		HighestWave:     9,
	}
	if err := store.MergeProfile(second); err != nil {
		t.Fatalf("MergeProfile() failed: %v", err)
	}

	p, err := store.LoadProfile()
	if err != nil {
		t.Fatalf("LoadProfile() failed: %v", err)
	}

	if p.Gold != 80 {
		t.Errorf("Gold should accumulate: expected 80, got %d", p.Gold)
	}
	if p.TotalGold != 200 {
		t.Errorf("TotalGold should accumulate: expected 200, got %d", p.TotalGold)
	}
	if p.DamageLevel != 2 {
		t.Errorf("DamageLevel should keep max: expected 2, got %d", p.DamageLevel)
	}
	if p.FireRateLevel != 3 {
		t.Errorf("FireRateLevel should keep max: expected 3, got %d", p.FireRateLevel)
	}
	if p.MaxCombo != 8 {
		t.Errorf("MaxCombo should keep max: expected 8, got %d", p.MaxCombo)
	}
	if p.HighestWave != 9 {
		t.Errorf("HighestWave should keep max: expected 9, got %d", p.HighestWave)
	}
	want := []string{"homing", "bomb"}
	if !reflect.DeepEqual(p.UnlockedWeapons, want) {
		t.Errorf("UnlockedWeapons union wrong: expected %v, got %v", want, p.UnlockedWeapons)
	}
}

func TestStoreGameStats(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := Open(filepath.Join(tmpDir, "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	store.SaveRun("swarm", 100, 3, 10)
	store.SaveRun("swarm", 300, 6, 25)

	stats, err := store.GetGameStats("swarm")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("Expected 2 games, got %d", stats.GamesCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("Expected high score 300, got %d", stats.HighScore)
	}
	if stats.TotalScore != 400 {
		t.Errorf("Expected total score 400, got %d", stats.TotalScore)
	}
}

func TestStoreExpandHomePath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
