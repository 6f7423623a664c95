// Package config provides YAML-based configuration loading and the
// wave-based difficulty ramps for the swarm simulation.
package config

// SwarmConfig contains all tunables for the Swarm Strike simulation.
// Every mode variant shares this single config; mode-specific rules live in
// the game's rules table, not here.
type SwarmConfig struct {
	Player     PlayerConfig     `yaml:"player"`
	Wing       WingConfig       `yaml:"wing"`
	Hostiles   HostilesConfig   `yaml:"hostiles"`
	Spawner    SpawnerConfig    `yaml:"spawner"`
	Pickups    PickupsConfig    `yaml:"pickups"`
	Obstacles  ObstaclesConfig  `yaml:"obstacles"`
	Boss       BossConfig       `yaml:"boss"`
	Flood      FloodConfig      `yaml:"flood"`
	Gauntlet   GauntletConfig   `yaml:"gauntlet"`
	Shop       ShopConfig       `yaml:"shop"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PlayerConfig defines the player ship.
type PlayerConfig struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	Speed      int `yaml:"speed"`       // Fixed-point cells per tick (1000 = 1 cell)
	FireEvery  int `yaml:"fire_every"`  // Ticks between shots
	ShotDamage int `yaml:"shot_damage"` // Base projectile damage
	ShotSpeed  int `yaml:"shot_speed"`  // Fixed-point cells per tick, upward
	InvulnTime int `yaml:"invuln_time"` // Respawn invulnerability in ticks
	BoostTime  int `yaml:"boost_time"`  // Boost duration in ticks
	BoostScale int `yaml:"boost_scale"` // Scroll multiplier during boost, percent
}

// WingConfig defines the companion swarm trailing the player.
type WingConfig struct {
	DisplayCap  int `yaml:"display_cap"`  // Companions actually simulated/drawn
	DamageBonus int `yaml:"damage_bonus"` // Percent damage added per overflow companion
	FireEvery   int `yaml:"fire_every"`   // Ticks between companion shots
	ShotDamage  int `yaml:"shot_damage"`
	Spacing     int `yaml:"spacing"` // Formation offset step in cells
}

// HostileTemplate is the immutable base stat block for one hostile archetype.
// Spawned hostiles copy and scale it; the template itself is never mutated.
type HostileTemplate struct {
	Health    int `yaml:"health"`
	Speed     int `yaml:"speed"`      // Fixed-point cells per tick, downward
	Damage    int `yaml:"damage"`     // Contact/shot damage
	FireEvery int `yaml:"fire_every"` // Ticks between shots (0 = never fires)
	Points    int `yaml:"points"`
	Gold      int `yaml:"gold"`
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
}

// HostilesConfig holds the per-archetype templates.
type HostilesConfig struct {
	Grunt    HostileTemplate `yaml:"grunt"`
	Rammer   HostileTemplate `yaml:"rammer"`
	Charger  HostileTemplate `yaml:"charger"`
	Shielded HostileTemplate `yaml:"shielded"`
	Brood    HostileTemplate `yaml:"brood"`
	Kamikaze HostileTemplate `yaml:"kamikaze"`
}

// SpawnerConfig defines spawn cadence for every entity category.
// All intervals are accumulator thresholds: the spawner subtracts the
// threshold on trigger instead of resetting, so irregular frame deltas
// cannot double-fire or drift.
type SpawnerConfig struct {
	SpawnEvery        int `yaml:"spawn_every"`          // Base hostile interval in ticks
	WaveLength        int `yaml:"wave_length"`          // Ticks per wave
	ObstacleEvery     int `yaml:"obstacle_every"`       // Obstacle interval in ticks
	PickupChance      int `yaml:"pickup_chance"`        // Percent drop chance on kill
	ConvoyBaseEvery   int `yaml:"convoy_base_every"`    // Convoy interval at wave 1
	ConvoyShrink      int `yaml:"convoy_shrink"`        // Interval reduction per wave
	ConvoyMinEvery    int `yaml:"convoy_min_every"`     // Interval floor
	SwarmBatchEvery   int `yaml:"swarm_batch_every"`    // Swarm unit batch interval
	SwarmBatchSize    int `yaml:"swarm_batch_size"`     // Units per batch
	EliteEvery        int `yaml:"elite_every"`          // Periodic elite spawn interval
	CrateEvery        int `yaml:"crate_every"`          // Reward crate interval
	RareCrateEvery    int `yaml:"rare_crate_every"`     // Min ticks between rare rolls
	RareCrateChance   int `yaml:"rare_crate_chance"`    // Percent once RareCrateEvery elapsed
	GateEvery         int `yaml:"gate_every"`           // Duplicate-gate interval (gauntlet)
	BroodChildCount   int `yaml:"brood_child_count"`    // Children released on brood death
	KamikazeLockRange int `yaml:"kamikaze_lock_range"`  // Cells before a kamikaze dives
}

// PickupsConfig defines drop values and power-up durations.
type PickupsConfig struct {
	FallSpeed    int `yaml:"fall_speed"` // Fixed-point cells per tick
	GoldValue    int `yaml:"gold_value"`
	GoldRichness int `yaml:"gold_richness"` // Rare high-value multiplier
	RichChance   int `yaml:"rich_chance"`   // Percent chance a gold drop is upgraded
	BombPenalty  int `yaml:"bomb_penalty"`  // Gold lost on a negative pickup
	RapidTime    int `yaml:"rapid_time"`    // Rapid-fire duration in ticks
	ShieldTime   int `yaml:"shield_time"`   // Shield duration in ticks
	SlowTime     int `yaml:"slow_time"`     // Slow-motion duration in ticks
	SlowScale    int `yaml:"slow_scale"`    // Time scale during slow-motion, percent
	WeightGold   int `yaml:"weight_gold"`
	WeightBomb   int `yaml:"weight_bomb"`
	WeightRapid  int `yaml:"weight_rapid"`
	WeightShield int `yaml:"weight_shield"`
	WeightWing   int `yaml:"weight_wing"`
	WeightSlow   int `yaml:"weight_slow"`
}

// ObstaclesConfig defines blocking geometry.
type ObstaclesConfig struct {
	BarrierWidth   int `yaml:"barrier_width"`
	BarrierHealth  int `yaml:"barrier_health"` // 0 = indestructible
	CrateHits      int `yaml:"crate_hits"`     // Hits to trigger a crate
	CrateGold      int `yaml:"crate_gold"`
	RareCrateGold  int `yaml:"rare_crate_gold"`
	PushBack       int `yaml:"push_back"` // Fixed-point knockback per blocked contact
}

// BossConfig defines boss pacing and attack patterns.
type BossConfig struct {
	BaseHealth     int `yaml:"base_health"`
	HealthPerWave  int `yaml:"health_per_wave"`
	Width          int `yaml:"width"`
	Height         int `yaml:"height"`
	EntryDepth     int `yaml:"entry_depth"`     // Target row for the descent
	EntrySpeed     int `yaml:"entry_speed"`     // Fixed-point descent speed
	AttackCooldown int `yaml:"attack_cooldown"` // Ticks between pattern steps
	VolleyCount    int `yaml:"volley_count"`    // Shots per delayed volley
	VolleyStagger  int `yaml:"volley_stagger"`  // Ticks between volley shots
	DeathTime      int `yaml:"death_time"`      // Dying sub-state duration
	ShotDamage     int `yaml:"shot_damage"`
	ShotSpeed      int `yaml:"shot_speed"`
	Points         int `yaml:"points"`
	Gold           int `yaml:"gold"`
}

// FloodConfig defines the rising hazard mode actors.
type FloodConfig struct {
	RiseEvery    int `yaml:"rise_every"`    // Ticks per hazard row climbed
	StartGap     int `yaml:"start_gap"`     // Rows between hazard start and bottom
	ConvoyHealth int `yaml:"convoy_health"` // Convoy hull health
	EngineHealth int `yaml:"engine_health"` // Destructible engine sub-component
	ConvoySpeed  int `yaml:"convoy_speed"`  // Fixed-point horizontal drift
	ConvoyGold   int `yaml:"convoy_gold"`
	EngineBonus  int `yaml:"engine_bonus"` // Extra gold for an engine kill
}

// GauntletConfig defines the lane-gate mode actors.
type GauntletConfig struct {
	GateWidth    int `yaml:"gate_width"`
	SwarmHealth  int `yaml:"swarm_health"`
	SwarmSpeed   int `yaml:"swarm_speed"`  // Fixed-point homing speed
	SwarmDamage  int `yaml:"swarm_damage"`
	HomingTurn   int `yaml:"homing_turn"` // Fixed-point horizontal correction per tick
}

// ShopConfig defines upgrade pricing between waves.
type ShopConfig struct {
	DamageCost     int `yaml:"damage_cost"`
	DamageStep     int `yaml:"damage_step"` // Damage added per level
	FireRateCost   int `yaml:"fire_rate_cost"`
	FireRateStep   int `yaml:"fire_rate_step"` // Ticks removed per level
	WingCost       int `yaml:"wing_cost"`
	CostGrowth     int `yaml:"cost_growth"` // Percent price increase per level
	MaxLevel       int `yaml:"max_level"`
	WeaponUnlocks  []string `yaml:"weapon_unlocks"` // Weapon granted per wing milestone
}

// DifficultyConfig defines ramp caps and elite scaling shared by all curves.
type DifficultyConfig struct {
	Caps  RampCaps    `yaml:"caps"`
	Elite EliteConfig `yaml:"elite"`
}

// RampCaps limits each scaled stat independently, as multipliers scaled by
// 100 (250 = 2.5x).
type RampCaps struct {
	Health    int `yaml:"health"`
	Speed     int `yaml:"speed"`
	SpawnRate int `yaml:"spawn_rate"`
	Damage    int `yaml:"damage"`
}

// EliteConfig controls the randomly upgraded hostile variant.
type EliteConfig struct {
	BaseChance  int `yaml:"base_chance"`  // Percent at wave 1
	PerWave     int `yaml:"per_wave"`     // Percent added per wave
	MaxChance   int `yaml:"max_chance"`   // Percent cap
	HealthBonus int `yaml:"health_bonus"` // Percent multiplier (e.g. 200 = 2x)
	DamageBonus int `yaml:"damage_bonus"` // Percent multiplier
}

// DifficultyPreset represents a named starting difficulty.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ApplySwarmPreset adjusts the config for a difficulty preset.
func ApplySwarmPreset(cfg *SwarmConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Difficulty.Caps.SpawnRate = cfg.Difficulty.Caps.SpawnRate * 80 / 100
		cfg.Difficulty.Elite.MaxChance = cfg.Difficulty.Elite.MaxChance / 2
	case DifficultyHard:
		cfg.Difficulty.Caps.SpawnRate = cfg.Difficulty.Caps.SpawnRate * 120 / 100
		cfg.Difficulty.Elite.BaseChance += 5
	case DifficultyFixed:
		// Plateau immediately: every stat capped at its wave-1 value.
		cfg.Difficulty.Caps = RampCaps{Health: 100, Speed: 100, SpawnRate: 100, Damage: 100}
	}
}
