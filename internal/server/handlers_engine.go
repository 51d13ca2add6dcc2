package server

import (
	"net/http"
	"time"

	"github.com/claude/repsense/internal/coachtext"
	"github.com/claude/repsense/internal/progression"
	"github.com/claude/repsense/internal/sessionstats"
	"github.com/claude/repsense/internal/workout"
	"github.com/google/uuid"
)

type sessionStatsRequest struct {
	Session workout.Fields `json:"session"`
	Items   []any          `json:"items"`
	Options workout.Fields `json:"options"`
	Lang    string         `json:"lang"`
}

type sessionStatsResponse struct {
	Stats   sessionstats.Result `json:"stats"`
	Summary string              `json:"summary"`
	ID      *uuid.UUID          `json:"id,omitempty"`
}

func (s *Server) handleSessionStats(w http.ResponseWriter, r *http.Request) {
	var req sessionStatsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	persist := r.URL.Query().Get("store") == "true"
	if persist && !s.requireStore(w) {
		return
	}

	var items []workout.Fields
	for _, it := range req.Items {
		if f, ok := workout.AsFields(it); ok {
			items = append(items, f)
		}
	}
	in := sessionstats.FromFields(req.Session, items, req.Options)

	ctx := r.Context()
	uid := userIDFromContext(r)
	if s.store != nil {
		readings, err := s.store.LatestBodyMass(ctx, uid)
		if err != nil {
			s.log.Warn("session stats: body mass lookup failed", "error", err)
		} else {
			in.BodyMass = readings.FillServer(in.BodyMass)
		}
		if persist && in.Previous == nil {
			prev, err := s.store.PreviousSessionSummary(ctx, uid)
			if err != nil {
				s.log.Warn("session stats: previous summary lookup failed", "error", err)
			}
			in.Previous = prev
		}
	}

	result := sessionstats.Compute(in)
	if s.metrics != nil {
		s.metrics.CounterSessionStats.Inc()
	}

	resp := sessionStatsResponse{
		Stats:   result,
		Summary: coachtext.SessionSummary(s.language(req.Lang), result),
	}
	if persist {
		id, err := s.store.SaveSessionSummary(ctx, uid, sessionstats.PerformedAt(req.Session, time.Now()), result)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}
		resp.ID = &id
	}
	writeJSON(w, http.StatusOK, resp)
}

type progressionRequest struct {
	History      workout.Fields `json:"history"`
	IsBodyweight bool           `json:"isBodyweight"`
	ExerciseName string         `json:"exerciseName"`
	Lang         string         `json:"lang"`
}

type suggestionResponse struct {
	Suggestion progression.Suggestion `json:"suggestion"`
	Message    string                 `json:"message"`
}

func (s *Server) handleProgression(w http.ResponseWriter, r *http.Request) {
	var req progressionRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	h := progression.HistoryFromFields(req.History)
	s.writeSuggestion(w, h, req.IsBodyweight, req.ExerciseName, s.language(req.Lang))
}

// writeSuggestion answers 204 when the history holds no usable set.
func (s *Server) writeSuggestion(w http.ResponseWriter, h progression.History, bodyweight bool, name string, lang coachtext.Language) {
	sug, ok := progression.Calculate(h, bodyweight, name)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if s.metrics != nil {
		s.metrics.CounterSuggestions.WithLabelValues(string(sug.Type)).Inc()
	}
	writeJSON(w, http.StatusOK, suggestionResponse{
		Suggestion: sug,
		Message:    coachtext.SuggestionMessage(lang, sug),
	})
}

// liveSetRequest is the body shared by the live-entry signal endpoints.
type liveSetRequest struct {
	Current      workout.Fields   `json:"current"`
	History      workout.Fields   `json:"history"`
	SetIndex     int              `json:"setIndex"`
	SessionSets  []workout.Fields `json:"sessionSets"`
	ExerciseName string           `json:"exerciseName"`
	Lang         string           `json:"lang"`
}

func (req liveSetRequest) parts() (progression.Perf, progression.History) {
	return progression.PerfFromFields(req.Current), progression.HistoryFromFields(req.History)
}

func (s *Server) handleRecord(w http.ResponseWriter, r *http.Request) {
	var req liveSetRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	current, h := req.parts()
	rec, ok := progression.IsNewRecord(current, h)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"record":  rec,
		"message": coachtext.RecordMessage(s.language(req.Lang), rec),
	})
}

func (s *Server) handleDifference(w http.ResponseWriter, r *http.Request) {
	var req liveSetRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	current, h := req.parts()
	d, ok := progression.CalculateDifference(current, h)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"difference": d,
		"badge":      coachtext.DifferenceBadge(s.language(req.Lang), d),
	})
}

func (s *Server) handleChallenge(w http.ResponseWriter, r *http.Request) {
	var req liveSetRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	current, h := req.parts()
	sessionSets := make([]progression.Perf, 0, len(req.SessionSets))
	for _, f := range req.SessionSets {
		sessionSets = append(sessionSets, progression.PerfFromFields(f))
	}
	c, ok := progression.SuggestRepsChallenge(current, h, req.SetIndex, sessionSets, req.ExerciseName)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"challenge": c,
		"message":   coachtext.ChallengeMessage(s.language(req.Lang), c),
	})
}
