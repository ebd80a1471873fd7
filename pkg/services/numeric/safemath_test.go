package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSafeDivide(t *testing.T) {
	tests := []struct {
		name     string
		a, b     float64
		fallback float64
		expected float64
	}{
		{name: "plain division", a: 10, b: 4, fallback: 0, expected: 2.5},
		{name: "zero divisor", a: 10, b: 0, fallback: -1, expected: -1},
		{name: "nan divisor", a: 10, b: math.NaN(), fallback: 3, expected: 3},
		{name: "infinite dividend", a: math.Inf(1), b: 2, fallback: 0, expected: 0},
		{name: "negative", a: -9, b: 3, fallback: 0, expected: -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SafeDivide(tt.a, tt.b, tt.fallback))
		})
	}
}

func TestSafeMultiply(t *testing.T) {
	assert.Equal(t, 12.0, SafeMultiply(3, 4))
	assert.Equal(t, 0.0, SafeMultiply(math.NaN(), 4))
	assert.Equal(t, MaxSafeCalculationValue, SafeMultiply(1e300, 1e300))
	assert.Equal(t, -MaxSafeCalculationValue, SafeMultiply(1e300, -1e300))
}

func TestSafeAdd(t *testing.T) {
	assert.Equal(t, 6.0, SafeAdd(1, 2, 3))
	assert.Equal(t, 3.0, SafeAdd(nil, "3", nil))
	assert.Equal(t, 101.0, SafeAdd("$100", true))
	assert.Equal(t, 0.0, SafeAdd())
	assert.Equal(t, MaxSafeCalculationValue, SafeAdd(MaxSafeCalculationValue, MaxSafeCalculationValue))
}

func TestSafePower(t *testing.T) {
	tests := []struct {
		name      string
		base, exp float64
		expected  float64
	}{
		{name: "zero exponent", base: 5, exp: 0, expected: 1},
		{name: "zero base zero exponent", base: 0, exp: 0, expected: 1},
		{name: "zero base positive exponent", base: 0, exp: 3, expected: 0},
		{name: "plain power", base: 2, exp: 10, expected: 1024},
		{name: "fractional exponent", base: 9, exp: 0.5, expected: 3},
		{name: "overflow clamps", base: 10, exp: 400, expected: MaxSafeCalculationValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SafePower(tt.base, tt.exp))
		})
	}
}

func TestEffectivelyZero(t *testing.T) {
	assert.True(t, EffectivelyZero(0))
	assert.True(t, EffectivelyZero(1e-12))
	assert.True(t, EffectivelyZero(-1e-12))
	assert.False(t, EffectivelyZero(1e-6))
	assert.False(t, EffectivelyZero(0.01))
}

func TestRoundToPrecision(t *testing.T) {
	assert.Equal(t, 1234.57, RoundToPrecision(1234.5678, 2))
	assert.Equal(t, 1234.0, RoundToPrecision(1234.4, 0))
	assert.Equal(t, 0.0, RoundToPrecision(math.NaN(), 2))
	assert.Equal(t, 0.0, RoundToPrecision(math.Inf(1), 2))
	assert.Equal(t, 2.68, RoundCurrency(2.675000001))
}
