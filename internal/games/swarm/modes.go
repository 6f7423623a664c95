package swarm

import (
	"github.com/vovakirdan/tui-swarm/internal/config"
	"github.com/vovakirdan/tui-swarm/internal/core"
)

// ModeID names a registered game mode variant.
type ModeID string

const (
	ModeClassic  ModeID = "classic"
	ModeEndless  ModeID = "endless"
	ModeFlood    ModeID = "flood"
	ModeGauntlet ModeID = "gauntlet"
)

// Rules is the declarative per-mode table. Shared systems consult these
// flags instead of switching on the mode name, so adding a mode means
// adding a row here, not another branch in the simulation.
type Rules struct {
	FinalWave   int // 0 = unbounded
	StartLives  int // 0 = unbounded
	GoldMult    int // Percent, 100 = normal payouts
	Ramp        config.RampCurve
	BossCadence int // Boss every N waves, 0 = never

	Obstacles       bool
	PickupsDisabled bool
	ShopEnabled     bool
	Invincible      bool
	RecordScore     bool
	Winnable        bool
	FinalBoss       bool
	FreeMove        bool
	Lanes           int // >0 switches movement to lane snapping
}

// modeRules is the single source of truth for mode behavior flags.
var modeRules = map[ModeID]Rules{
	ModeClassic: {
		FinalWave:   30,
		StartLives:  3,
		GoldMult:    100,
		Ramp:        config.RampLinearStandard,
		BossCadence: 5,
		Obstacles:   true,
		ShopEnabled: true,
		RecordScore: true,
		Winnable:    true,
		FinalBoss:   true,
		FreeMove:    true,
	},
	ModeEndless: {
		StartLives:  3,
		GoldMult:    125,
		Ramp:        config.RampLinearFast,
		BossCadence: 7,
		Obstacles:   true,
		ShopEnabled: true,
		RecordScore: true,
		FreeMove:    true,
	},
	ModeFlood: {
		StartLives:  1,
		GoldMult:    150,
		Ramp:        config.RampLinearAggressive,
		RecordScore: true,
		FreeMove:    true,
	},
	ModeGauntlet: {
		FinalWave:       12,
		GoldMult:        100,
		Ramp:            config.RampFrontLoaded,
		PickupsDisabled: true,
		Invincible:      true,
		Winnable:        true,
		Lanes:           3,
	},
}

// RulesFor returns the rules row for a mode, defaulting to classic for an
// unknown id.
func RulesFor(mode ModeID) Rules {
	if r, ok := modeRules[mode]; ok {
		return r
	}
	return modeRules[ModeClassic]
}

// ModeState tracks the run's progression counters.
type ModeState struct {
	Mode  ModeID
	Wave  int
	Lives int // Negative = unbounded
}

func newModeState(mode ModeID) ModeState {
	r := RulesFor(mode)
	lives := r.StartLives
	if lives == 0 {
		lives = -1
	}
	return ModeState{Mode: mode, Wave: 1, Lives: lives}
}

// LoseLife deducts one life and reports whether the run is over. Unbounded
// lives never deplete and never end the run.
func (m *ModeState) LoseLife() bool {
	if m.Lives < 0 {
		return false
	}
	m.Lives--
	return m.Lives <= 0
}

// ShouldSpawnBoss reports whether the given wave ends with a boss: every
// BossCadence waves, plus the final wave when the mode has a final boss.
func (m *ModeState) ShouldSpawnBoss(r Rules, wave int) bool {
	if r.FinalBoss && r.FinalWave > 0 && wave == r.FinalWave {
		return true
	}
	return r.BossCadence > 0 && wave%r.BossCadence == 0
}

// ModeBehavior hooks the mode-specific pieces of a frame: what spawns,
// which extra collisions run, and what counts as victory. Everything else
// is shared.
type ModeBehavior interface {
	UpdateSpawning(w *World)
	ResolveModeCollisions(w *World)
	CheckVictory(w *World) bool
}

func behaviorFor(mode ModeID) ModeBehavior {
	switch mode {
	case ModeFlood:
		return &floodBehavior{}
	case ModeGauntlet:
		return &gauntletBehavior{}
	default:
		return &waveBehavior{}
	}
}

// waveBehavior drives classic and endless: timed waves of hostiles with
// barriers and cadenced bosses.
type waveBehavior struct{}

func (waveBehavior) UpdateSpawning(w *World) {
	// A boss fight holds the wave open: no regular spawns, no wave clock
	if w.boss == nil {
		w.spawner.SpawnHostiles(w)
		if w.spawner.WaveElapsed(w) {
			w.endWave()
		}
	}
	if w.rules.Obstacles {
		w.spawner.SpawnObstacles(w)
	}
}

func (waveBehavior) ResolveModeCollisions(w *World) {}

func (waveBehavior) CheckVictory(w *World) bool {
	if !w.rules.Winnable {
		return false
	}
	if w.mode.Wave < w.rules.FinalWave {
		return false
	}
	// The final wave only resolves once its boss is down
	if w.rules.FinalBoss {
		return w.bossDefeated
	}
	return w.waveCleared
}

// floodBehavior drives flood mode: convoys instead of waves of hostiles,
// and a rising hazard that ends the run on contact.
type floodBehavior struct{}

func (floodBehavior) UpdateSpawning(w *World) {
	w.spawner.SpawnHostiles(w)
	w.spawner.SpawnConvoy(w)
	if w.spawner.WaveElapsed(w) {
		w.endWave()
	}
}

func (floodBehavior) ResolveModeCollisions(w *World) {
	w.dispatchConvoys()
	if w.hazard != nil && w.hazard.Reached(w.player.Y.ToCell()) {
		w.player.Health = 0
		w.player.Active = false
		w.emit(core.EventPlayerDied)
	}
}

func (floodBehavior) CheckVictory(w *World) bool { return false }

// gauntletBehavior drives gauntlet mode: lane dodging through swarm
// batches, crates and duplication gates, no boss.
type gauntletBehavior struct{}

func (gauntletBehavior) UpdateSpawning(w *World) {
	w.spawner.SpawnSwarmBatch(w)
	w.spawner.SpawnCrates(w)
	w.spawner.SpawnGates(w)
	if w.spawner.WaveElapsed(w) {
		w.endWave()
	}
}

func (gauntletBehavior) ResolveModeCollisions(w *World) {
	w.dispatchGates()
}

func (gauntletBehavior) CheckVictory(w *World) bool {
	return w.rules.Winnable && w.mode.Wave >= w.rules.FinalWave && w.waveCleared
}
