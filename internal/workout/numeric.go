package workout

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// ParseFloat coerces a loosely-typed value into a finite float64.
// Numbers, json.Number and numeric strings ("12", " 102,5 ") are accepted;
// everything else (nil, bools, objects, NaN, ±Inf) reports false.
func ParseFloat(v any) (float64, bool) {
	var f float64
	switch n := v.(type) {
	case float64:
		f = n
	case float32:
		f = float64(n)
	case int:
		f = float64(n)
	case int32:
		f = float64(n)
	case int64:
		f = float64(n)
	case uint:
		f = float64(n)
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	case string:
		parsed, ok := parseNumericString(n)
		if !ok {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// parseNumericString handles European decimals: "102,5" -> 102.5.
func parseNumericString(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", ".")
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// FloatOr returns the parsed value or fallback.
func FloatOr(v any, fallback float64) float64 {
	if f, ok := ParseFloat(v); ok {
		return f
	}
	return fallback
}

// IntOr returns the parsed value truncated to an int, or fallback.
// Out-of-range values saturate like RoundCount.
func IntOr(v any, fallback int) int {
	if f, ok := ParseFloat(v); ok {
		return saturate(math.Trunc(f))
	}
	return fallback
}

// RoundHalfUp rounds half-way values towards +Inf (2.5 -> 3, -2.5 -> -2).
func RoundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

// RoundCount rounds x half up to an int, saturating at the int32 range so
// absurd inputs such as 1e20 stay large instead of wrapping. NaN is 0.
func RoundCount(x float64) int {
	if math.IsNaN(x) {
		return 0
	}
	return saturate(RoundHalfUp(x))
}

func saturate(x float64) int {
	return int(Clamp(x, math.MinInt32, math.MaxInt32))
}

// Clamp bounds x to [lo, hi].
func Clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

// Finite replaces NaN and ±Inf with 0.
func Finite(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}
