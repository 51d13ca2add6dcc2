package coachtext

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/claude/repsense/internal/progression"
	"github.com/claude/repsense/internal/sessionstats"
)

// SuggestionMessage renders a next-session suggestion.
func SuggestionMessage(lang Language, s progression.Suggestion) string {
	args := map[string]string{
		"increment": FormatKg(lang, s.Increment),
	}
	if s.WeightKg != nil {
		args["weight"] = FormatKg(lang, *s.WeightKg)
	} else {
		args["weight"] = FormatKg(lang, s.Best.WeightKg)
	}
	if s.Reps != nil {
		args["reps"] = strconv.Itoa(*s.Reps)
	} else {
		args["reps"] = strconv.Itoa(s.Best.Reps)
	}
	args["diff"] = strconv.Itoa(abs(s.RepsDiff))
	return render(lang, "suggestion."+string(s.Reason), args)
}

// RecordMessage renders a new-record badge.
func RecordMessage(lang Language, r progression.Record) string {
	var diff string
	switch r.Type {
	case progression.RecordReps:
		diff = strconv.Itoa(int(r.Diff))
	default:
		diff = FormatKg(lang, r.Diff)
	}
	return render(lang, "record."+string(r.Type), map[string]string{"diff": diff})
}

// ChallengeMessage renders a live-entry advisory.
func ChallengeMessage(lang Language, c progression.Challenge) string {
	args := map[string]string{"drop": strconv.Itoa(c.RepsDrop)}
	if c.TargetReps != nil {
		args["reps"] = strconv.Itoa(*c.TargetReps)
	}
	if c.TargetWeightKg != nil {
		args["weight"] = FormatKg(lang, *c.TargetWeightKg)
	}
	return render(lang, "challenge."+string(c.Type), args)
}

// DifferenceBadge renders the "compared to last time" badge.
func DifferenceBadge(lang Language, d progression.Difference) string {
	if d.WeightDiff == 0 && d.RepsDiff == 0 {
		return Translate(lang, "difference.same")
	}
	return render(lang, "difference.badge", map[string]string{
		"weight": signed(FormatKg(lang, d.WeightDiff), d.WeightDiff),
		"reps":   signed(strconv.Itoa(d.RepsDiff), float64(d.RepsDiff)) + " " + Translate(lang, "unit.reps"),
	})
}

// SessionSummary renders a session result as a short multi-line report.
func SessionSummary(lang Language, r sessionstats.Result) string {
	var b strings.Builder
	line := func(key, value string) {
		fmt.Fprintf(&b, "%-22s %s\n", Translate(lang, key), value)
	}
	line("summary.duration", FormatDuration(r.DurationSec))
	line("summary.calories", FormatKcal(r.Calories))
	line("summary.volume", FormatKg(lang, r.VolumeKg))
	line("summary.exercises", fmt.Sprintf("%d/%d (%d%%)", r.ExercisesDone, r.TotalExercises, r.PercentDone))
	line("summary.split", fmt.Sprintf("%d%% / %d%%", r.CardioPct, r.MuscuPct))
	if r.Delta != nil {
		dur := FormatDuration(abs64(r.Delta.DurationSec))
		if r.Delta.DurationSec < 0 {
			dur = "-" + dur
		} else {
			dur = "+" + dur
		}
		line("summary.delta", dur+", "+signed(FormatKg(lang, r.Delta.VolumeKg), r.Delta.VolumeKg))
	}
	return b.String()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func abs64(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
