// Package storage provides SQLite-based persistence for run scores and the
// player profile. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single recorded run.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	Wave      int
	Kills     int
	CreatedAt time.Time
}

// Profile holds the player's persistent progression across runs.
type Profile struct {
	Gold            int
	TotalGold       int
	DamageLevel     int
	FireRateLevel   int
	WingLevel       int
	UnlockedWeapons []string
	MaxCombo        int
	HighestWave     int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			game_id TEXT NOT NULL,
			score INTEGER NOT NULL,
			wave INTEGER NOT NULL DEFAULT 1,
			kills INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_game_id ON runs(game_id);
		CREATE INDEX IF NOT EXISTS idx_runs_top ON runs(game_id, score DESC);

		CREATE TABLE IF NOT EXISTS profile (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			gold INTEGER NOT NULL DEFAULT 0,
			total_gold INTEGER NOT NULL DEFAULT 0,
			damage_level INTEGER NOT NULL DEFAULT 0,
			fire_rate_level INTEGER NOT NULL DEFAULT 0,
			wing_level INTEGER NOT NULL DEFAULT 0,
			unlocked_weapons TEXT NOT NULL DEFAULT '',
			max_combo INTEGER NOT NULL DEFAULT 0,
			highest_wave INTEGER NOT NULL DEFAULT 0
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run for the given game.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(gameID string, score, wave, kills int) (int64, error) {
	result, err := s.db.Exec(
		"INSERT INTO runs (game_id, score, wave, kills) VALUES (?, ?, ?, ?)",
		gameID, score, wave, kills,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// TopScores retrieves the top N runs for the given game.
// Results are ordered by score descending.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, score, wave, kills, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY score DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &e.Wave, &e.Kills, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// HighScore returns the highest score for the given game.
// Returns 0 if no runs exist.
func (s *Store) HighScore(gameID string) (int, error) {
	var score sql.NullInt64
	err := s.db.QueryRow(
		"SELECT MAX(score) FROM runs WHERE game_id = ?",
		gameID,
	).Scan(&score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}

	if !score.Valid {
		return 0, nil
	}
	return int(score.Int64), nil
}

// ClearScores deletes all runs for the given game.
func (s *Store) ClearScores(gameID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE game_id = ?", gameID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear scores: %w", err)
	}
	return nil
}

// LoadProfile reads the player profile, returning a zero profile when none
// has been saved yet.
func (s *Store) LoadProfile() (Profile, error) {
	var p Profile
	var weapons string
	err := s.db.QueryRow(
		`SELECT gold, total_gold, damage_level, fire_rate_level, wing_level,
		        unlocked_weapons, max_combo, highest_wave
		 FROM profile WHERE id = 1`,
	).Scan(&p.Gold, &p.TotalGold, &p.DamageLevel, &p.FireRateLevel, &p.WingLevel,
		&weapons, &p.MaxCombo, &p.HighestWave)

	if err == sql.ErrNoRows {
		return Profile{}, nil
	}
	if err != nil {
		return Profile{}, fmt.Errorf("storage: cannot load profile: %w", err)
	}

	if weapons != "" {
		p.UnlockedWeapons = strings.Split(weapons, ",")
	}
	return p, nil
}

// MergeProfile folds one run's earnings into the stored profile: gold and
// total gold accumulate, levels and records keep their maximum.
func (s *Store) MergeProfile(run Profile) error {
	current, err := s.LoadProfile()
	if err != nil {
		return err
	}

	merged := Profile{
		Gold:          current.Gold + run.Gold,
		TotalGold:     current.TotalGold + run.TotalGold,
		DamageLevel:   maxInt(current.DamageLevel, run.DamageLevel),
		FireRateLevel: maxInt(current.FireRateLevel, run.FireRateLevel),
		WingLevel:     maxInt(current.WingLevel, run.WingLevel),
		MaxCombo:      maxInt(current.MaxCombo, run.MaxCombo),
		HighestWave:   maxInt(current.HighestWave, run.HighestWave),
	}
	merged.UnlockedWeapons = mergeWeapons(current.UnlockedWeapons, run.UnlockedWeapons)

	_, err = s.db.Exec(
		`INSERT INTO profile (id, gold, total_gold, damage_level, fire_rate_level,
		                      wing_level, unlocked_weapons, max_combo, highest_wave)
		 VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		     gold = excluded.gold,
		     total_gold = excluded.total_gold,
		     damage_level = excluded.damage_level,
		     fire_rate_level = excluded.fire_rate_level,
		     wing_level = excluded.wing_level,
		     unlocked_weapons = excluded.unlocked_weapons,
		     max_combo = excluded.max_combo,
		     highest_wave = excluded.highest_wave`,
		merged.Gold, merged.TotalGold, merged.DamageLevel, merged.FireRateLevel,
		merged.WingLevel, strings.Join(merged.UnlockedWeapons, ","),
		merged.MaxCombo, merged.HighestWave,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save profile: %w", err)
	}
	return nil
}

// GameStats contains aggregated statistics for a game.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	TotalScore int64
	LastPlayed time.Time
}

// GetGameStats retrieves aggregated statistics for a specific game.
func (s *Store) GetGameStats(gameID string) (*GameStats, error) {
	stats := &GameStats{GameID: gameID}

	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(score), 0), COALESCE(AVG(score), 0), COALESCE(SUM(score), 0)
		 FROM runs WHERE game_id = ?`,
		gameID,
	).Scan(&stats.GamesCount, &stats.HighScore, &stats.AvgScore, &stats.TotalScore)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get game stats: %w", err)
	}

	var lastPlayed any
	err = s.db.QueryRow(
		`SELECT created_at FROM runs WHERE game_id = ? ORDER BY created_at DESC LIMIT 1`,
		gameID,
	).Scan(&lastPlayed)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("storage: cannot get last played: %w", err)
	}
	if err == nil {
		stats.LastPlayed = parseTimestamp(lastPlayed)
	}

	return stats, nil
}

// parseTimestamp handles the two shapes the driver returns for DATETIME.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// mergeWeapons unions two unlock lists preserving first-seen order.
func mergeWeapons(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	var out []string
	for _, name := range append(append([]string(nil), a...), b...) {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}
