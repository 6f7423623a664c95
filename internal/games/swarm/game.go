package swarm

import (
	"github.com/vovakirdan/tui-swarm/internal/config"
	"github.com/vovakirdan/tui-swarm/internal/core"
	"github.com/vovakirdan/tui-swarm/internal/registry"
)

// Flow state constants
const (
	StatePlaying  = "playing"
	StateShop     = "shop"
	StatePaused   = "paused"
	StateGameOver = "gameover"
	StateVictory  = "victory"
)

// restartLockTicks keeps the end screen up before restart input is
// accepted, so a held key cannot skip past it.
const restartLockTicks = 30

// configPath stores the custom config path set via CLI.
var configPath string

// difficultyPreset stores the difficulty preset set via CLI.
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	switch preset {
	case "easy":
		difficultyPreset = config.DifficultyEasy
	case "normal":
		difficultyPreset = config.DifficultyNormal
	case "hard":
		difficultyPreset = config.DifficultyHard
	case "fixed":
		difficultyPreset = config.DifficultyFixed
	default:
		difficultyPreset = ""
	}
}

// Game wraps one World in the outer flow machine: playing, shop, pause and
// the two end screens. The world only steps in the playing state.
type Game struct {
	mode ModeID

	runtime core.RuntimeConfig
	cfg     config.SwarmConfig
	world   *World

	state       string
	shopCursor  int
	restartLock int // Ticks before the end screen accepts restart

	minScreenW     int
	minScreenH     int
	screenTooSmall bool

	flowEvents []core.Event
}

// New creates a game instance for the given mode.
func New(mode ModeID) *Game {
	return &Game{mode: mode}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeClassic {
		return "swarm"
	}
	return "swarm_" + string(g.mode)
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	switch g.mode {
	case ModeEndless:
		return "Swarm Strike (Endless)"
	case ModeFlood:
		return "Swarm Strike (Flood)"
	case ModeGauntlet:
		return "Swarm Strike (Gauntlet)"
	default:
		return "Swarm Strike"
	}
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadSwarm(configPath)
	if err != nil {
		cfg = config.DefaultSwarmConfig()
	}
	if difficultyPreset != "" {
		config.ApplySwarmPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.minScreenW = 40
	g.minScreenH = 20
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.world = newWorld(g.mode, cfg, runtime)
	g.state = StatePlaying
	g.shopCursor = 0
	g.restartLock = 0
	g.flowEvents = nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}
	g.flowEvents = g.flowEvents[:0]
	g.world.events = g.world.events[:0]

	switch g.state {
	case StateGameOver, StateVictory:
		g.stepEndScreen(in)
	case StatePaused:
		if in.Has(core.ActionPause) {
			g.state = StatePlaying
		}
	case StateShop:
		g.stepShop(in)
	default:
		g.stepPlaying(in)
	}

	events := append(g.flowEvents, g.world.events...)
	return core.StepResult{State: g.State(), Events: events}
}

func (g *Game) stepEndScreen(in core.InputFrame) {
	if g.restartLock > 0 {
		g.restartLock--
		return
	}
	if in.Has(core.ActionRestart) {
		g.Reset(g.runtime)
	}
}

func (g *Game) stepShop(in core.InputFrame) {
	w := g.world
	if in.Has(core.ActionBack) || in.Has(core.ActionPause) {
		g.state = StatePlaying
		return
	}
	if in.Has(core.ActionLeft) || in.Has(core.ActionUp) {
		g.shopCursor--
		if g.shopCursor < 0 {
			g.shopCursor = len(shopItems) - 1
		}
	}
	if in.Has(core.ActionRight) || in.Has(core.ActionDown) {
		g.shopCursor = (g.shopCursor + 1) % len(shopItems)
	}
	if in.Has(core.ActionConfirm) {
		item := shopItems[g.shopCursor]
		if w.Buy(item) {
			g.flowEvents = append(g.flowEvents, core.EventPickup)
		}
	}
}

func (g *Game) stepPlaying(in core.InputFrame) {
	w := g.world

	if in.Has(core.ActionPause) {
		g.state = StatePaused
		return
	}
	if in.Has(core.ActionBack) && w.rules.ShopEnabled {
		g.state = StateShop
		return
	}

	w.step(in)

	if !w.player.Active {
		if w.mode.LoseLife() {
			g.state = StateGameOver
			g.restartLock = restartLockTicks
			g.flowEvents = append(g.flowEvents, core.EventPlayerDied)
			return
		}
		w.respawn()
		return
	}

	if w.behavior.CheckVictory(w) {
		g.state = StateVictory
		g.restartLock = restartLockTicks
		g.flowEvents = append(g.flowEvents, core.EventVictory)
	}
}

// State returns the public game state.
func (g *Game) State() core.GameState {
	w := g.world
	if w == nil {
		return core.GameState{}
	}
	lives := w.mode.Lives
	if lives < 0 {
		lives = 0
	}
	return core.GameState{
		Score:    w.score,
		Gold:     w.gold,
		Wave:     w.mode.Wave,
		Lives:    lives,
		Kills:    w.kills,
		Combo:    w.combo,
		GameOver: g.state == StateGameOver,
		Victory:  g.state == StateVictory,
		Paused:   g.state == StatePaused,
	}
}

// Summary returns the run's persistent earnings. Modes that do not record
// progress return a zero summary.
func (g *Game) Summary() SessionSummary {
	if g.world == nil || !g.world.rules.RecordScore {
		return SessionSummary{}
	}
	return g.world.summary()
}

// RecordsScore reports whether this mode writes to the scoreboard.
func (g *Game) RecordsScore() bool {
	return g.world != nil && g.world.rules.RecordScore
}

func init() {
	registry.Register("swarm", func() registry.Game {
		return New(ModeClassic)
	})
	registry.Register("swarm_endless", func() registry.Game {
		return New(ModeEndless)
	})
	registry.Register("swarm_flood", func() registry.Game {
		return New(ModeFlood)
	})
	registry.Register("swarm_gauntlet", func() registry.Game {
		return New(ModeGauntlet)
	})
}
