package numeric

import "math"

// zeroEpsilon is the magnitude below which a value is treated as exactly zero.
// It keeps iterative payoff simulations from spinning on floating-point residue.
const zeroEpsilon = 1e-9

// EffectivelyZero reports whether x is within zeroEpsilon of zero.
func EffectivelyZero(x float64) bool {
	return math.Abs(x) < zeroEpsilon
}

// SafeDivide returns a/b, or fallback when b is zero or either operand or the
// quotient is non-finite.
func SafeDivide(a, b, fallback float64) float64 {
	if b == 0 || math.IsNaN(a) || math.IsInf(a, 0) || math.IsNaN(b) || math.IsInf(b, 0) {
		return fallback
	}
	q := a / b
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return fallback
	}
	return q
}

// SafeMultiply returns a*b clamped to ±MaxSafeCalculationValue. Non-finite
// operands contribute as 0.
func SafeMultiply(a, b float64) float64 {
	if math.IsNaN(a) || math.IsInf(a, 0) || math.IsNaN(b) || math.IsInf(b, 0) {
		return 0
	}
	p := a * b
	if math.IsInf(p, 1) {
		return MaxSafeCalculationValue
	}
	if math.IsInf(p, -1) {
		return -MaxSafeCalculationValue
	}
	return Clamp(p)
}

// SafeAdd sums any mix of raw values, normalizing each operand first so that
// nil and unparseable entries contribute 0. The sum is clamped.
func SafeAdd(values ...any) float64 {
	var sum float64
	for _, v := range values {
		sum += Normalize(v)
	}
	return Clamp(sum)
}

// SafePower returns base**exponent with total semantics: exponent 0 yields 1
// (including 0**0), base 0 with a positive exponent yields 0, and overflow
// clamps to MaxSafeCalculationValue instead of returning an infinity.
func SafePower(base, exponent float64) float64 {
	if exponent == 0 {
		return 1
	}
	if base == 0 && exponent > 0 {
		return 0
	}

	p := math.Pow(base, exponent)
	if math.IsNaN(p) {
		return 0
	}
	if math.IsInf(p, 1) {
		return MaxSafeCalculationValue
	}
	if math.IsInf(p, -1) {
		return -MaxSafeCalculationValue
	}
	return Clamp(p)
}

// RoundToPrecision rounds v to the given number of decimal digits. Monetary
// results use 2 digits. Non-finite input rounds to 0.
func RoundToPrecision(v float64, digits int) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	if digits < 0 {
		digits = 0
	}
	pow := math.Pow(10, float64(digits))
	return math.Round(v*pow) / pow
}

// RoundCurrency rounds v to 2 decimal digits.
func RoundCurrency(v float64) float64 {
	return RoundToPrecision(v, 2)
}
