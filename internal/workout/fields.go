package workout

import "encoding/json"

// Fields is a decoded JSON object from a tracking form, a stored session or
// a backend summary endpoint. Any key may be missing, numeric values may be
// strings, and unknown keys are ignored.
type Fields map[string]any

// Lookup returns the first present, non-nil value among keys.
// Keys are listed from most to least specific.
func (f Fields) Lookup(keys ...string) (any, bool) {
	for _, k := range keys {
		if v, ok := f[k]; ok && v != nil {
			return v, true
		}
	}
	return nil, false
}

// Float returns the first key holding a parseable number.
func (f Fields) Float(keys ...string) (float64, bool) {
	for _, k := range keys {
		if v, ok := f[k]; ok {
			if n, ok := ParseFloat(v); ok {
				return n, true
			}
		}
	}
	return 0, false
}

// String returns the first key holding a non-empty string.
func (f Fields) String(keys ...string) string {
	for _, k := range keys {
		if s, ok := f[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// Bool reports the first key holding a bool, a number, or a "true"/"1" style string.
func (f Fields) Bool(keys ...string) (bool, bool) {
	for _, k := range keys {
		switch v := f[k].(type) {
		case bool:
			return v, true
		case string:
			switch Fold(v) {
			case "true", "1", "yes", "oui":
				return true, true
			case "false", "0", "no", "non":
				return false, true
			}
		case float64:
			return v != 0, true
		case json.Number:
			if n, err := v.Float64(); err == nil {
				return n != 0, true
			}
		}
	}
	return false, false
}

// Object returns the first key holding a nested object.
func (f Fields) Object(keys ...string) (Fields, bool) {
	for _, k := range keys {
		if o, ok := AsFields(f[k]); ok {
			return o, true
		}
	}
	return nil, false
}

// List returns the objects of the first key holding a JSON array.
// Non-object elements are skipped.
func (f Fields) List(keys ...string) ([]Fields, bool) {
	for _, k := range keys {
		arr, ok := f[k].([]any)
		if !ok {
			if typed, ok := f[k].([]Fields); ok {
				return typed, true
			}
			continue
		}
		out := make([]Fields, 0, len(arr))
		for _, el := range arr {
			if o, ok := AsFields(el); ok {
				out = append(out, o)
			}
		}
		return out, true
	}
	return nil, false
}

// AsFields converts a decoded JSON value into Fields when it is an object.
func AsFields(v any) (Fields, bool) {
	switch o := v.(type) {
	case Fields:
		return o, true
	case map[string]any:
		return Fields(o), true
	}
	return nil, false
}
