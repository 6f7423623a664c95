package config

import (
	_ "embed"
)

//go:embed defaults/swarm.yaml
var defaultSwarmYAML []byte

// DefaultSwarmConfig returns the hardcoded default configuration.
// Kept in sync with defaults/swarm.yaml; used only if the embed fails to
// parse.
func DefaultSwarmConfig() SwarmConfig {
	return SwarmConfig{
		Player: PlayerConfig{
			Width:      3,
			Height:     2,
			Speed:      900,
			FireEvery:  12,
			ShotDamage: 10,
			ShotSpeed:  1200,
			InvulnTime: 120,
			BoostTime:  180,
			BoostScale: 160,
		},
		Wing: WingConfig{
			DisplayCap:  8,
			DamageBonus: 5,
			FireEvery:   24,
			ShotDamage:  4,
			Spacing:     2,
		},
		Hostiles: HostilesConfig{
			Grunt:    HostileTemplate{Health: 20, Speed: 150, Damage: 10, FireEvery: 180, Points: 100, Gold: 5, Width: 3, Height: 2},
			Rammer:   HostileTemplate{Health: 30, Speed: 300, Damage: 20, FireEvery: 0, Points: 150, Gold: 8, Width: 3, Height: 2},
			Charger:  HostileTemplate{Health: 25, Speed: 200, Damage: 15, FireEvery: 0, Points: 150, Gold: 8, Width: 3, Height: 2},
			Shielded: HostileTemplate{Health: 60, Speed: 100, Damage: 10, FireEvery: 240, Points: 250, Gold: 15, Width: 4, Height: 2},
			Brood:    HostileTemplate{Health: 50, Speed: 80, Damage: 10, FireEvery: 0, Points: 300, Gold: 20, Width: 5, Height: 3},
			Kamikaze: HostileTemplate{Health: 10, Speed: 250, Damage: 30, FireEvery: 0, Points: 120, Gold: 6, Width: 2, Height: 1},
		},
		Spawner: SpawnerConfig{
			SpawnEvery:        90,
			WaveLength:        1800,
			ObstacleEvery:     420,
			PickupChance:      22,
			ConvoyBaseEvery:   900,
			ConvoyShrink:      60,
			ConvoyMinEvery:    300,
			SwarmBatchEvery:   240,
			SwarmBatchSize:    4,
			EliteEvery:        1500,
			CrateEvery:        600,
			RareCrateEvery:    1800,
			RareCrateChance:   25,
			GateEvery:         480,
			BroodChildCount:   3,
			KamikazeLockRange: 10,
		},
		Pickups: PickupsConfig{
			FallSpeed:    350,
			GoldValue:    10,
			GoldRichness: 5,
			RichChance:   10,
			BombPenalty:  15,
			RapidTime:    480,
			ShieldTime:   600,
			SlowTime:     300,
			SlowScale:    50,
			WeightGold:   40,
			WeightBomb:   10,
			WeightRapid:  15,
			WeightShield: 12,
			WeightWing:   13,
			WeightSlow:   10,
		},
		Obstacles: ObstaclesConfig{
			BarrierWidth:  6,
			BarrierHealth: 40,
			CrateHits:     5,
			CrateGold:     25,
			RareCrateGold: 125,
			PushBack:      500,
		},
		Boss: BossConfig{
			BaseHealth:     400,
			HealthPerWave:  40,
			Width:          9,
			Height:         4,
			EntryDepth:     3,
			EntrySpeed:     100,
			AttackCooldown: 150,
			VolleyCount:    3,
			VolleyStagger:  20,
			DeathTime:      120,
			ShotDamage:     15,
			ShotSpeed:      500,
			Points:         2000,
			Gold:           100,
		},
		Flood: FloodConfig{
			RiseEvery:    300,
			StartGap:     18,
			ConvoyHealth: 80,
			EngineHealth: 30,
			ConvoySpeed:  200,
			ConvoyGold:   30,
			EngineBonus:  20,
		},
		Gauntlet: GauntletConfig{
			GateWidth:   8,
			SwarmHealth: 6,
			SwarmSpeed:  300,
			SwarmDamage: 8,
			HomingTurn:  60,
		},
		Shop: ShopConfig{
			DamageCost:    50,
			DamageStep:    4,
			FireRateCost:  60,
			FireRateStep:  1,
			WingCost:      80,
			CostGrowth:    30,
			MaxLevel:      10,
			WeaponUnlocks: []string{"homing", "bomb", "laser"},
		},
		Difficulty: DifficultyConfig{
			Caps: RampCaps{
				Health:    300,
				Speed:     200,
				SpawnRate: 350,
				Damage:    250,
			},
			Elite: EliteConfig{
				BaseChance:  2,
				PerWave:     2,
				MaxChance:   35,
				HealthBonus: 200,
				DamageBonus: 150,
			},
		},
	}
}
