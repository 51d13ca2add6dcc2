package workout

import (
	"encoding/json"
	"math"
	"testing"
)

// TestParseFloat verifies the parse-or-default coercion across the value
// types a decoded tracking form can hold.
func TestParseFloat(t *testing.T) {
	tests := []struct {
		name   string
		in     any
		want   float64
		wantOK bool
	}{
		{"float", 12.5, 12.5, true},
		{"int", 8, 8, true},
		{"numeric string", " 42 ", 42, true},
		{"european decimal", "102,5", 102.5, true},
		{"json number", json.Number("7.25"), 7.25, true},
		{"garbage string", "abc", 0, false},
		{"empty string", "", 0, false},
		{"nil", nil, 0, false},
		{"bool", true, 0, false},
		{"nan", math.NaN(), 0, false},
		{"inf", math.Inf(1), 0, false},
		{"nan string", "NaN", 0, false},
		{"object", map[string]any{"a": 1}, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseFloat(tt.in)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseFloat(%v) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

// TestFloatOrFallback verifies garbage resolves to the fallback, not NaN.
func TestFloatOrFallback(t *testing.T) {
	if got := FloatOr("n/a", 85); got != 85 {
		t.Errorf("FloatOr(n/a, 85) = %v, want 85", got)
	}
	if got := IntOr("12", 0); got != 12 {
		t.Errorf("IntOr(12) = %d, want 12", got)
	}
}

// TestRoundHalfUp verifies half-way values round towards +Inf.
func TestRoundHalfUp(t *testing.T) {
	cases := map[float64]float64{2.5: 3, 2.4: 2, -2.5: -2, 33.6: 34, 0: 0}
	for in, want := range cases {
		if got := RoundHalfUp(in); got != want {
			t.Errorf("RoundHalfUp(%v) = %v, want %v", in, got, want)
		}
	}
}

// TestFold verifies accent stripping and lower-casing for keyword matching.
func TestFold(t *testing.T) {
	if got := Fold("  Soulevé de Terre "); got != "souleve de terre" {
		t.Errorf("Fold = %q, want %q", got, "souleve de terre")
	}
	if got := Fold("ÉLEVÉ"); got != "eleve" {
		t.Errorf("Fold = %q, want %q", got, "eleve")
	}
}

// TestRoundCountSaturates verifies out-of-range counts clamp rather than wrap.
func TestRoundCountSaturates(t *testing.T) {
	tests := []struct {
		in   float64
		want int
	}{
		{2.5, 3},
		{-2.5, -2},
		{1e20, math.MaxInt32},
		{-1e20, math.MinInt32},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		if got := RoundCount(tt.in); got != tt.want {
			t.Errorf("RoundCount(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
	if got := IntOr(1e20, 0); got != math.MaxInt32 {
		t.Errorf("IntOr(1e20) = %d, want %d", got, math.MaxInt32)
	}
}
