package numeric

import (
	"fmt"
	"math"
)

// Validation is the outcome of ValidateSafeNumber. When Valid is false, Err
// carries a human-readable reason suitable for direct display.
type Validation struct {
	Valid  bool
	Number float64
	Err    string
}

// ValidateSafeNumber normalizes raw and rejects magnitudes beyond
// MaxSafeCalculationValue instead of silently clamping them. Form boundaries
// use it where the user should see an error rather than a substituted zero.
func ValidateSafeNumber(raw any) Validation {
	n := coerce(raw)
	if math.Abs(n) > MaxSafeCalculationValue {
		return Validation{
			Valid: false,
			Err:   fmt.Sprintf("value %g exceeds the maximum safe magnitude of %g", n, MaxSafeCalculationValue),
		}
	}
	return Validation{Valid: true, Number: n}
}

// Bounds is the range and sign policy for ParseAndValidate. The zero value is
// fully permissive: zero and negative numbers are allowed and no range is
// enforced.
type Bounds struct {
	Min              *float64
	Max              *float64
	DisallowZero     bool
	DisallowNegative bool
}

// ParseResult is the discriminated outcome of ParseAndValidate.
type ParseResult struct {
	OK     bool
	Number float64
	Err    string
}

// ParseAndValidate layers Bounds on top of Normalize for form-level
// validation. It never panics; policy violations come back as a failed result.
func ParseAndValidate(raw any, b Bounds) ParseResult {
	v := ValidateSafeNumber(raw)
	if !v.Valid {
		return ParseResult{Err: v.Err}
	}

	n := v.Number
	switch {
	case b.DisallowZero && n == 0:
		return ParseResult{Err: "value must not be zero"}
	case b.DisallowNegative && n < 0:
		return ParseResult{Err: "value must not be negative"}
	case b.Min != nil && n < *b.Min:
		return ParseResult{Err: fmt.Sprintf("value %g is below the minimum of %g", n, *b.Min)}
	case b.Max != nil && n > *b.Max:
		return ParseResult{Err: fmt.Sprintf("value %g is above the maximum of %g", n, *b.Max)}
	}
	return ParseResult{OK: true, Number: n}
}
