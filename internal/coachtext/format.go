package coachtext

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/claude/repsense/internal/workout"
)

// FormatDuration renders seconds as "Xh Ym", or "Ym" under an hour.
// Minutes are rounded half up.
func FormatDuration(sec float64) string {
	mins := workout.RoundCount(workout.Finite(sec) / 60)
	if mins < 0 {
		mins = 0
	}
	if h := mins / 60; h > 0 {
		return fmt.Sprintf("%dh %dm", h, mins%60)
	}
	return fmt.Sprintf("%dm", mins)
}

// FormatKg renders a weight with at most two decimals, using a decimal comma
// in French.
func FormatKg(lang Language, kg float64) string {
	return formatNumber(lang, kg) + " kg"
}

// FormatKcal renders calories as a whole number.
func FormatKcal(kcal float64) string {
	return fmt.Sprintf("%d kcal", workout.RoundCount(workout.Finite(kcal)))
}

func formatNumber(lang Language, v float64) string {
	v = workout.RoundHalfUp(workout.Finite(v)*100) / 100
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if lang == French {
		s = strings.Replace(s, ".", ",", 1)
	}
	return s
}

// signed prefixes non-negative values with "+".
func signed(s string, v float64) string {
	if v >= 0 {
		return "+" + s
	}
	return s
}
