package mcp

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/claude/repsense/internal/coachtext"
	"github.com/claude/repsense/internal/progression"
	"github.com/claude/repsense/internal/sessionstats"
	"github.com/claude/repsense/internal/workout"
	"github.com/mark3labs/mcp-go/mcp"
)

const (
	defaultSummaryLimit = 10
	maxSummaryLimit     = 100
)

var errNoDataSource = errors.New("no workout history configured")

// decodeFields parses an optional JSON object argument.
func decodeFields(raw string) (workout.Fields, error) {
	if raw == "" {
		return workout.Fields{}, nil
	}
	var f workout.Fields
	if err := json.Unmarshal([]byte(raw), &f); err != nil {
		return nil, err
	}
	return f, nil
}

// decodeItems parses an optional JSON array argument, skipping non-objects.
func decodeItems(raw string) ([]workout.Fields, error) {
	if raw == "" {
		return nil, nil
	}
	var list []any
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, err
	}
	var out []workout.Fields
	for _, it := range list {
		if f, ok := workout.AsFields(it); ok {
			out = append(out, f)
		}
	}
	return out, nil
}

// --- Tool definitions ---

var toolComputeSessionStats = mcp.NewTool("compute_session_stats",
	mcp.WithDescription("Summarize one workout session: duration, estimated calories, lifted volume, completion and cardio/strength split. Stored body mass readings are used for the calorie estimate when available."),
	mcp.WithString("session", mcp.Required(), mcp.Description("Session as a JSON object with an entries (or exercises) list of {name, type, sets}")),
	mcp.WithString("items", mcp.Description("Optional JSON array of live tracking items to reconcile with the session entries")),
	mcp.WithString("options", mcp.Description("Optional JSON object (previous session, client summary, body mass override)")),
	mcp.WithString("lang", mcp.Description("Language of the text summary"), mcp.Enum("fr", "en")),
)

var toolSuggestProgression = mcp.NewTool("suggest_progression",
	mcp.WithDescription("Suggest the next target weight and reps for an exercise from its last two stored sessions."),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Exercise name as logged (case-insensitive)")),
	mcp.WithBoolean("bodyweight", mcp.Description("Force the bodyweight variant. Defaults to what the history shows.")),
	mcp.WithString("lang", mcp.Description("Language of the message"), mcp.Enum("fr", "en")),
)

var toolCheckNewRecord = mcp.NewTool("check_new_record",
	mcp.WithDescription("Check whether a set beats the best set of the exercise's last stored session, and how it compares to that session's final set."),
	mcp.WithString("exercise", mcp.Required(), mcp.Description("Exercise name as logged")),
	mcp.WithNumber("weight_kg", mcp.Required(), mcp.Description("Weight of the set in kg")),
	mcp.WithNumber("reps", mcp.Required(), mcp.Description("Reps of the set")),
	mcp.WithString("lang", mcp.Description("Language of the messages"), mcp.Enum("fr", "en")),
)

var toolListExercises = mcp.NewTool("list_exercises",
	mcp.WithDescription("List every logged exercise with session count, tonnage, max weight and last date."),
)

var toolGetSessionSummaries = mcp.NewTool("get_session_summaries",
	mcp.WithDescription("Recent stored session summaries, newest first."),
	mcp.WithNumber("limit", mcp.Description("Maximum number of sessions. Defaults to 10.")),
)

// --- Tool handlers ---

func jsonResult(v any) (*mcp.CallToolResult, error) {
	result, err := mcp.NewToolResultJSON(v)
	if err != nil {
		return mcp.NewToolResultError("serialization failed"), nil
	}
	return result, nil
}

func (h *handlers) computeSessionStats(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := req.RequireString("session")
	if err != nil {
		return mcp.NewToolResultError("session parameter is required"), nil
	}
	session, err := decodeFields(raw)
	if err != nil {
		return mcp.NewToolResultError("session must be a JSON object: " + err.Error()), nil
	}
	items, err := decodeItems(req.GetString("items", ""))
	if err != nil {
		return mcp.NewToolResultError("items must be a JSON array: " + err.Error()), nil
	}
	opts, err := decodeFields(req.GetString("options", ""))
	if err != nil {
		return mcp.NewToolResultError("options must be a JSON object: " + err.Error()), nil
	}

	in := sessionstats.FromFields(session, items, opts)
	if h.ds != nil {
		readings, err := h.ds.LatestBodyMass(ctx, UserIDFromContext(ctx))
		if err != nil {
			h.log.Warn("compute_session_stats: body mass lookup failed", "error", err)
		} else {
			in.BodyMass = readings.FillServer(in.BodyMass)
		}
	}

	stats := sessionstats.Compute(in)
	return jsonResult(map[string]any{
		"stats":   stats,
		"summary": coachtext.SessionSummary(h.language(req.GetString("lang", "")), stats),
	})
}

func (h *handlers) suggestProgression(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exercise, err := req.RequireString("exercise")
	if err != nil {
		return mcp.NewToolResultError("exercise parameter is required"), nil
	}
	if h.ds == nil {
		return mcp.NewToolResultError(errNoDataSource.Error()), nil
	}

	hist, bodyweight, err := h.ds.ExerciseHistory(ctx, UserIDFromContext(ctx), exercise)
	if err != nil {
		return mcp.NewToolResultError("history query failed: " + err.Error()), nil
	}
	bodyweight = req.GetBool("bodyweight", bodyweight)

	sug, ok := progression.Calculate(hist, bodyweight, exercise)
	if !ok {
		return mcp.NewToolResultText("No usable history for " + exercise + "."), nil
	}
	return jsonResult(map[string]any{
		"suggestion": sug,
		"message":    coachtext.SuggestionMessage(h.language(req.GetString("lang", "")), sug),
		"history":    hist,
	})
}

func (h *handlers) checkNewRecord(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	exercise, err := req.RequireString("exercise")
	if err != nil {
		return mcp.NewToolResultError("exercise parameter is required"), nil
	}
	weight, err := req.RequireFloat("weight_kg")
	if err != nil {
		return mcp.NewToolResultError("weight_kg parameter is required"), nil
	}
	reps, err := req.RequireFloat("reps")
	if err != nil {
		return mcp.NewToolResultError("reps parameter is required"), nil
	}
	if h.ds == nil {
		return mcp.NewToolResultError(errNoDataSource.Error()), nil
	}

	hist, _, err := h.ds.ExerciseHistory(ctx, UserIDFromContext(ctx), exercise)
	if err != nil {
		return mcp.NewToolResultError("history query failed: " + err.Error()), nil
	}

	lang := h.language(req.GetString("lang", ""))
	current := progression.Perf{WeightKg: weight, Reps: workout.RoundCount(reps)}
	out := map[string]any{"isRecord": false}
	if rec, ok := progression.IsNewRecord(current, hist); ok {
		out["isRecord"] = true
		out["record"] = rec
		out["message"] = coachtext.RecordMessage(lang, rec)
	}
	if d, ok := progression.CalculateDifference(current, hist); ok {
		out["difference"] = d
		out["badge"] = coachtext.DifferenceBadge(lang, d)
	}
	return jsonResult(out)
}

func (h *handlers) listExercises(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if h.ds == nil {
		return mcp.NewToolResultError(errNoDataSource.Error()), nil
	}
	list, err := h.ds.ListExercises(ctx, UserIDFromContext(ctx))
	if err != nil {
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	return jsonResult(list)
}

func (h *handlers) getSessionSummaries(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if h.ds == nil {
		return mcp.NewToolResultError(errNoDataSource.Error()), nil
	}
	limit := req.GetInt("limit", defaultSummaryLimit)
	if limit <= 0 {
		limit = defaultSummaryLimit
	}
	limit = min(limit, maxSummaryLimit)

	rows, err := h.ds.RecentSessionSummaries(ctx, UserIDFromContext(ctx), limit)
	if err != nil {
		return mcp.NewToolResultError("query failed: " + err.Error()), nil
	}
	return jsonResult(rows)
}
