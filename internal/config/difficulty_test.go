package config

import "testing"

func allCurves() []RampCurve {
	return []RampCurve{
		RampLinearSlow,
		RampLinearStandard,
		RampLinearFast,
		RampLinearAggressive,
		RampFrontLoaded,
	}
}

func TestRampMonotonicAndCapped(t *testing.T) {
	caps := RampCaps{Health: 300, Speed: 200, SpawnRate: 350, Damage: 250}

	for _, curve := range allCurves() {
		r := Ramp{Curve: curve, Caps: caps}

		prev := 0
		for wave := 1; wave <= 500; wave++ {
			m := r.Health(wave)
			if m < prev {
				t.Errorf("%s: health multiplier decreased at wave %d: %d -> %d", curve, wave, prev, m)
			}
			prev = m

			if m > caps.Health {
				t.Errorf("%s: health multiplier %d exceeds cap %d at wave %d", curve, m, caps.Health, wave)
			}
			if s := r.Speed(wave); s > caps.Speed {
				t.Errorf("%s: speed multiplier %d exceeds cap %d at wave %d", curve, s, caps.Speed, wave)
			}
			if s := r.SpawnRate(wave); s > caps.SpawnRate {
				t.Errorf("%s: spawn-rate multiplier %d exceeds cap %d at wave %d", curve, s, caps.SpawnRate, wave)
			}
			if d := r.Damage(wave); d > caps.Damage {
				t.Errorf("%s: damage multiplier %d exceeds cap %d at wave %d", curve, d, caps.Damage, wave)
			}
		}
	}
}

func TestRampWaveOneIsBaseline(t *testing.T) {
	for _, curve := range allCurves() {
		r := Ramp{Curve: curve, Caps: RampCaps{Health: 300}}
		if got := r.Health(1); got != 100 {
			t.Errorf("%s: wave 1 multiplier = %d, expected 100", curve, got)
		}
		// Waves below 1 are clamped, not special-cased to zero
		if got := r.Health(0); got != 100 {
			t.Errorf("%s: wave 0 multiplier = %d, expected 100", curve, got)
		}
	}
}

func TestFrontLoadedPlateaus(t *testing.T) {
	r := Ramp{Curve: RampFrontLoaded, Caps: RampCaps{Health: 10000}}

	early := r.Health(2)
	if early <= 100 {
		t.Errorf("front_loaded should climb early, wave 2 = %d", early)
	}

	at7 := r.Health(7)
	at50 := r.Health(50)
	if at7 != at50 {
		t.Errorf("front_loaded should plateau: wave 7 = %d, wave 50 = %d", at7, at50)
	}
}

func TestCurveOrdering(t *testing.T) {
	// At the same uncapped wave, aggressive >= fast >= standard >= slow.
	caps := RampCaps{Health: 0} // 0 = uncapped
	wave := 10

	slow := Ramp{Curve: RampLinearSlow, Caps: caps}.Health(wave)
	std := Ramp{Curve: RampLinearStandard, Caps: caps}.Health(wave)
	fast := Ramp{Curve: RampLinearFast, Caps: caps}.Health(wave)
	aggr := Ramp{Curve: RampLinearAggressive, Caps: caps}.Health(wave)

	if !(slow <= std && std <= fast && fast <= aggr) {
		t.Errorf("curve ordering violated: slow=%d std=%d fast=%d aggressive=%d", slow, std, fast, aggr)
	}
}

func TestScale(t *testing.T) {
	tests := []struct {
		base, mult, expected int
	}{
		{20, 100, 20},
		{20, 150, 30},
		{20, 250, 50},
		{1, 50, 1},  // Never rounds a positive base to zero
		{0, 300, 0}, // Zero stays zero
	}

	for _, tc := range tests {
		if got := Scale(tc.base, tc.mult); got != tc.expected {
			t.Errorf("Scale(%d, %d) = %d, expected %d", tc.base, tc.mult, got, tc.expected)
		}
	}
}

func TestEliteChance(t *testing.T) {
	e := EliteConfig{BaseChance: 2, PerWave: 2, MaxChance: 35}

	if got := e.EliteChance(1); got != 2 {
		t.Errorf("EliteChance(1) = %d, expected 2", got)
	}
	if got := e.EliteChance(10); got != 20 {
		t.Errorf("EliteChance(10) = %d, expected 20", got)
	}
	if got := e.EliteChance(100); got != 35 {
		t.Errorf("EliteChance(100) = %d, expected cap 35", got)
	}

	prev := 0
	for wave := 1; wave < 100; wave++ {
		c := e.EliteChance(wave)
		if c < prev {
			t.Errorf("EliteChance decreased at wave %d", wave)
		}
		prev = c
	}
}

func TestLoadSwarmEmbeddedDefault(t *testing.T) {
	cfg, err := LoadSwarm("")
	if err != nil {
		t.Fatalf("LoadSwarm with no custom path should not fail: %v", err)
	}

	hard := DefaultSwarmConfig()
	if cfg.Player.FireEvery != hard.Player.FireEvery {
		t.Errorf("embedded default out of sync with hardcoded: fire_every %d != %d",
			cfg.Player.FireEvery, hard.Player.FireEvery)
	}
	if cfg.Hostiles.Grunt.Health != hard.Hostiles.Grunt.Health {
		t.Errorf("embedded default out of sync with hardcoded: grunt health %d != %d",
			cfg.Hostiles.Grunt.Health, hard.Hostiles.Grunt.Health)
	}
}

func TestLoadSwarmMissingCustomPath(t *testing.T) {
	if _, err := LoadSwarm("/nonexistent/path/swarm.yaml"); err == nil {
		t.Error("explicitly requested missing config should be an error")
	}
}

func TestApplySwarmPresetFixed(t *testing.T) {
	cfg := DefaultSwarmConfig()
	ApplySwarmPreset(&cfg, DifficultyFixed)

	r := Ramp{Curve: RampLinearAggressive, Caps: cfg.Difficulty.Caps}
	if got := r.Health(100); got != 100 {
		t.Errorf("fixed preset should pin multipliers at 100, got %d", got)
	}
}
