package server

import (
	"net/http"
	"strconv"

	"github.com/claude/repsense/internal/progression"
	"github.com/claude/repsense/internal/storage"
	"github.com/go-chi/chi/v5"
)

func (s *Server) handleListExercises(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	list, err := s.store.ListExercises(r.Context(), userIDFromContext(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if list == nil {
		list = []storage.ExerciseSummary{}
	}
	writeJSON(w, http.StatusOK, list)
}

// exerciseHistoryResponse carries the stored history of one exercise.
type exerciseHistoryResponse struct {
	Exercise     string              `json:"exercise"`
	IsBodyweight bool                `json:"isBodyweight"`
	History      progression.History `json:"history"`
}

func (s *Server) handleExerciseHistory(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	name := chi.URLParam(r, "name")
	h, bodyweight, err := s.store.ExerciseHistory(r.Context(), userIDFromContext(r), name)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if h.Last == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no history for " + name})
		return
	}
	writeJSON(w, http.StatusOK, exerciseHistoryResponse{Exercise: name, IsBodyweight: bodyweight, History: h})
}

func (s *Server) handleExerciseSuggestion(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	name := chi.URLParam(r, "name")
	h, bodyweight, err := s.store.ExerciseHistory(r.Context(), userIDFromContext(r), name)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if h.Last == nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "no history for " + name})
		return
	}
	if raw := r.URL.Query().Get("bodyweight"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			bodyweight = v
		}
	}
	s.writeSuggestion(w, h, bodyweight, name, s.language(r.URL.Query().Get("lang")))
}
