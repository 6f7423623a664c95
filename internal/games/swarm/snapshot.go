package swarm

// Snapshot is a comparable digest of the simulation state. Two runs with
// the same seed, config and input sequence must produce equal snapshots at
// every frame.
type Snapshot struct {
	Clock   int
	Wave    int
	Lives   int
	Score   int
	Gold    int
	Kills   int
	Combo   int
	PlayerX Fixed
	PlayerY Fixed

	Hostiles     int
	Shots        int
	HostileShots int
	Pickups      int
	Obstacles    int
	Gates        int
	Convoys      int
	Pending      int

	BossHealth int // -1 when no boss is up
	HazardRow  int // 0 when the mode has no hazard
}

// snapshot captures the current frame's digest.
func (w *World) snapshot() Snapshot {
	s := Snapshot{
		Clock:        w.clock,
		Wave:         w.mode.Wave,
		Lives:        w.mode.Lives,
		Score:        w.score,
		Gold:         w.gold,
		Kills:        w.kills,
		Combo:        w.combo,
		PlayerX:      w.player.X,
		PlayerY:      w.player.Y,
		Hostiles:     len(w.hostiles),
		Shots:        len(w.shots),
		HostileShots: len(w.hostileShots),
		Pickups:      len(w.pickups),
		Obstacles:    len(w.obstacles),
		Gates:        len(w.gates),
		Convoys:      len(w.convoys),
		Pending:      w.delays.Len(),
		BossHealth:   -1,
	}
	if w.boss != nil {
		s.BossHealth = w.boss.Health
	}
	if w.hazard != nil {
		s.HazardRow = w.hazard.Row
	}
	return s
}

// SessionSummary carries the run's persistent earnings out of the game,
// for the profile store.
type SessionSummary struct {
	Gold            int
	TotalGold       int
	DamageLevel     int
	FireRateLevel   int
	WingLevel       int
	UnlockedWeapons []string
	MaxCombo        int
	HighestWave     int
}

// summary builds the persistence payload for the current run.
func (w *World) summary() SessionSummary {
	return SessionSummary{
		Gold:            w.gold,
		TotalGold:       w.totalGold,
		DamageLevel:     w.upgrades.Damage,
		FireRateLevel:   w.upgrades.FireRate,
		WingLevel:       w.upgrades.Wing,
		UnlockedWeapons: append([]string(nil), w.unlockedWeapons...),
		MaxCombo:        w.maxCombo,
		HighestWave:     w.mode.Wave,
	}
}
