// Package swarm implements the Swarm Strike simulation: a vertical arcade
// shooter with a companion swarm, wave-scaled hostiles, bosses, and several
// rule variants. The package is pure logic; rendering goes through
// core.Screen and all timing comes from the platform tick.
package swarm

// Fixed-point scale factor: 1 cell = 1000 units.
// Sub-cell precision with deterministic integer math.
const Scale = 1000

// Fixed represents a fixed-point coordinate or velocity (scaled by Scale).
type Fixed int

// ToFixed converts a cell coordinate to fixed-point.
func ToFixed(cell int) Fixed {
	return Fixed(cell * Scale)
}

// ToCell converts fixed-point to cell coordinate (truncated).
func (f Fixed) ToCell() int {
	return int(f) / Scale
}

// Add adds two fixed-point values.
func (f Fixed) Add(other Fixed) Fixed {
	return f + other
}

// Sub subtracts two fixed-point values.
func (f Fixed) Sub(other Fixed) Fixed {
	return f - other
}

// Mul multiplies fixed-point by an integer.
func (f Fixed) Mul(n int) Fixed {
	return Fixed(int(f) * n)
}

// Div divides fixed-point by an integer.
func (f Fixed) Div(n int) Fixed {
	if n == 0 {
		return 0
	}
	return Fixed(int(f) / n)
}

// Abs returns absolute value.
func (f Fixed) Abs() Fixed {
	if f < 0 {
		return -f
	}
	return f
}

// Sign returns -1, 0, or 1.
func (f Fixed) Sign() int {
	if f < 0 {
		return -1
	}
	if f > 0 {
		return 1
	}
	return 0
}

// ClampFixed restricts a fixed-point value to [min, max].
func ClampFixed(f, min, max Fixed) Fixed {
	if f < min {
		return min
	}
	if f > max {
		return max
	}
	return f
}

// scaled returns f multiplied by a percent factor (100 = unchanged).
// Used to apply the frame time scale to velocities.
func (f Fixed) scaled(percent int) Fixed {
	return Fixed(int(f) * percent / 100)
}
