package config

// RampCurve names a wave-based difficulty progression shape.
type RampCurve string

const (
	RampLinearSlow       RampCurve = "linear_slow"
	RampLinearStandard   RampCurve = "linear_standard"
	RampLinearFast       RampCurve = "linear_fast"
	RampLinearAggressive RampCurve = "linear_aggressive"
	// RampFrontLoaded climbs quickly over the first few waves, then
	// plateaus. Used by fixed-length modes that want an early bite.
	RampFrontLoaded RampCurve = "front_loaded"
)

// slopePercent is the per-wave multiplier growth for each curve,
// in percent (7 = +0.07x per wave).
func (c RampCurve) slopePercent() int {
	switch c {
	case RampLinearSlow:
		return 4
	case RampLinearStandard:
		return 7
	case RampLinearFast:
		return 10
	case RampLinearAggressive:
		return 15
	default:
		return 7
	}
}

// raw returns the uncapped multiplier for a wave, scaled by 100.
// Wave numbers below 1 are treated as wave 1.
func (c RampCurve) raw(wave int) int {
	if wave < 1 {
		wave = 1
	}
	if c == RampFrontLoaded {
		// +25% per wave for the first six waves, flat afterwards.
		steps := wave - 1
		if steps > 6 {
			steps = 6
		}
		return 100 + steps*25
	}
	return 100 + (wave-1)*c.slopePercent()
}

// Ramp pairs a curve with per-stat caps. All multiplier math is integer,
// scaled by 100, so results are deterministic across platforms.
type Ramp struct {
	Curve RampCurve
	Caps  RampCaps
}

// capped returns the capped multiplier, scaled by 100.
// Monotonically non-decreasing in wave and never above the limit.
func (r Ramp) capped(wave, limit int) int {
	m := r.Curve.raw(wave)
	if limit > 0 && m > limit {
		return limit
	}
	return m
}

// Health returns the health multiplier for a wave, scaled by 100.
func (r Ramp) Health(wave int) int {
	return r.capped(wave, r.Caps.Health)
}

// Speed returns the speed multiplier for a wave, scaled by 100.
func (r Ramp) Speed(wave int) int {
	return r.capped(wave, r.Caps.Speed)
}

// SpawnRate returns the spawn-rate multiplier for a wave, scaled by 100.
func (r Ramp) SpawnRate(wave int) int {
	return r.capped(wave, r.Caps.SpawnRate)
}

// Damage returns the damage multiplier for a wave, scaled by 100.
func (r Ramp) Damage(wave int) int {
	return r.capped(wave, r.Caps.Damage)
}

// Scale applies a multiplier (scaled by 100) to a base value, rounding down
// but never below 1 for positive bases.
func Scale(base, mult int) int {
	if base <= 0 {
		return base
	}
	v := base * mult / 100
	if v < 1 {
		v = 1
	}
	return v
}

// EliteChance returns the percent chance that a hostile spawned on the given
// wave is upgraded to an elite. Grows with wave, capped at MaxChance.
func (e EliteConfig) EliteChance(wave int) int {
	if wave < 1 {
		wave = 1
	}
	chance := e.BaseChance + (wave-1)*e.PerWave
	if chance > e.MaxChance {
		chance = e.MaxChance
	}
	return chance
}
