package numeric

import (
	"math"
	"regexp"
	"strconv"
)

// MaxSafeCalculationValue bounds the magnitude the engines operate on. Every
// clamp site reads it, so hosts can tune it once from configuration instead of
// patching individual call sites.
var MaxSafeCalculationValue = 1e15

// objectKeys are probed in order when a map is supplied where a number is
// expected. The first present key wins.
var objectKeys = []string{"value", "amount", "number", "price"}

var (
	// currencyNoise strips currency symbols, grouping separators and
	// whitespace before parsing. Comma removal also covers Indian 2-3 digit
	// grouping such as "10,00,000".
	currencyNoise = regexp.MustCompile(`[₹$€£¥,\s]+`)

	// firstNumber extracts the first numeric substring from whatever is left.
	firstNumber = regexp.MustCompile(`-?\d*\.?\d+(?:[eE][+-]?\d+)?`)
)

// Normalize converts an arbitrary raw value into a finite float64. It never
// panics and never returns NaN or an infinity; anything unparseable becomes 0.
// The result is clamped to ±MaxSafeCalculationValue, and the function is
// idempotent: Normalize(Normalize(x)) == Normalize(x).
func Normalize(raw any) float64 {
	return Clamp(coerce(raw))
}

// Clamp forces v into the finite range ±MaxSafeCalculationValue. NaN and the
// infinities become 0.
func Clamp(v float64) float64 {
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return 0
	case v > MaxSafeCalculationValue:
		return MaxSafeCalculationValue
	case v < -MaxSafeCalculationValue:
		return -MaxSafeCalculationValue
	}
	return v
}

// coerce performs the type dispatch without the magnitude clamp, so the
// validator can reject oversized values instead of silently shrinking them.
func coerce(raw any) float64 {
	switch v := raw.(type) {
	case nil:
		return 0
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0
		}
		return v
	case float32:
		return coerce(float64(v))
	case int:
		return float64(v)
	case int8:
		return float64(v)
	case int16:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint:
		return float64(v)
	case uint8:
		return float64(v)
	case uint16:
		return float64(v)
	case uint32:
		return float64(v)
	case uint64:
		return float64(v)
	case bool:
		if v {
			return 1
		}
		return 0
	case string:
		return parseNumericString(v)
	case []any:
		if len(v) == 0 {
			return 0
		}
		return coerce(v[0])
	case map[string]any:
		for _, key := range objectKeys {
			if inner, ok := v[key]; ok {
				return coerce(inner)
			}
		}
		return 0
	default:
		return 0
	}
}

// parseNumericString strips currency noise and parses the first numeric
// substring. Unparseable input yields 0.
func parseNumericString(s string) float64 {
	cleaned := currencyNoise.ReplaceAllString(s, "")
	if cleaned == "" {
		return 0
	}

	match := firstNumber.FindString(cleaned)
	if match == "" {
		return 0
	}

	n, err := strconv.ParseFloat(match, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}
