package workout

import "testing"

// TestParseIntensity verifies labels, French synonyms and numeric scales are
// tagged once at the boundary.
func TestParseIntensity(t *testing.T) {
	tests := []struct {
		in   any
		want Intensity
	}{
		{"low", Intensity{Kind: IntensityLabel, Level: LevelLow}},
		{"Modéré", Intensity{Kind: IntensityLabel, Level: LevelModerate}},
		{"Élevée", Intensity{Kind: IntensityLabel, Level: LevelHigh}},
		{"HIGH", Intensity{Kind: IntensityLabel, Level: LevelHigh}},
		{12.0, Intensity{Kind: IntensityNumeric, Value: 12}},
		{"7", Intensity{Kind: IntensityNumeric, Value: 7}},
		{"whatever", Intensity{}},
		{nil, Intensity{}},
		{0.0, Intensity{}},
	}
	for _, tt := range tests {
		if got := ParseIntensity(tt.in); got != tt.want {
			t.Errorf("ParseIntensity(%v) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}
