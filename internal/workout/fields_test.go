package workout

import (
	"encoding/json"
	"strings"
	"testing"
)

// TestFieldsBool verifies flags decoded with UseNumber are still read.
func TestFieldsBool(t *testing.T) {
	dec := json.NewDecoder(strings.NewReader(`{"a": 1, "b": 0, "c": "oui", "d": true, "e": "maybe"}`))
	dec.UseNumber()
	var f Fields
	if err := dec.Decode(&f); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		key    string
		want   bool
		wantOK bool
	}{
		{"a", true, true},
		{"b", false, true},
		{"c", true, true},
		{"d", true, true},
		{"e", false, false},
		{"missing", false, false},
	}
	for _, tt := range tests {
		got, ok := f.Bool(tt.key)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Bool(%s) = (%v, %v), want (%v, %v)", tt.key, got, ok, tt.want, tt.wantOK)
		}
	}
}
