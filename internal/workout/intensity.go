package workout

import "fmt"

// IntensityKind tags which branch of Intensity is populated.
type IntensityKind int

const (
	IntensityUnknown IntensityKind = iota
	// IntensityNumeric means Value holds the raw scale value.
	IntensityNumeric
	// IntensityLabel means Level holds a parsed text label.
	IntensityLabel
)

// Level is a text intensity label.
type Level int

const (
	LevelLow Level = iota + 1
	LevelModerate
	LevelHigh
)

func (l Level) String() string {
	switch l {
	case LevelLow:
		return "low"
	case LevelModerate:
		return "moderate"
	case LevelHigh:
		return "high"
	default:
		return "unknown"
	}
}

// Intensity is parsed once at the input boundary. The numeric scale is
// interpreted by the consumer: 1–20 for cardio, 1–10 for strength.
type Intensity struct {
	Kind  IntensityKind
	Value float64
	Level Level
}

func (i Intensity) String() string {
	switch i.Kind {
	case IntensityNumeric:
		return fmt.Sprintf("%g", i.Value)
	case IntensityLabel:
		return i.Level.String()
	default:
		return "unknown"
	}
}

var intensityLabels = map[string]Level{
	"low":       LevelLow,
	"light":     LevelLow,
	"easy":      LevelLow,
	"faible":    LevelLow,
	"facile":    LevelLow,
	"leger":     LevelLow,
	"legere":    LevelLow,
	"doux":      LevelLow,
	"moderate":  LevelModerate,
	"medium":    LevelModerate,
	"normal":    LevelModerate,
	"moyen":     LevelModerate,
	"moyenne":   LevelModerate,
	"modere":    LevelModerate,
	"moderee":   LevelModerate,
	"high":      LevelHigh,
	"hard":      LevelHigh,
	"intense":   LevelHigh,
	"eleve":     LevelHigh,
	"elevee":    LevelHigh,
	"fort":      LevelHigh,
	"forte":     LevelHigh,
	"difficile": LevelHigh,
	"max":       LevelHigh,
}

// ParseIntensity turns a free-text label or a numeric scale value into an
// Intensity. Numeric strings are treated as numbers.
func ParseIntensity(v any) Intensity {
	if v == nil {
		return Intensity{}
	}
	if n, ok := ParseFloat(v); ok {
		if n <= 0 {
			return Intensity{}
		}
		return Intensity{Kind: IntensityNumeric, Value: n}
	}
	s, ok := v.(string)
	if !ok {
		return Intensity{}
	}
	if lvl, ok := intensityLabels[Fold(s)]; ok {
		return Intensity{Kind: IntensityLabel, Level: lvl}
	}
	return Intensity{}
}
