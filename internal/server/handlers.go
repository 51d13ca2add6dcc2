package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/claude/repsense/internal/models"
	"github.com/claude/repsense/internal/storage"
	"github.com/claude/repsense/internal/workout"
)

const (
	maxBodyBytes         = 1 << 20
	defaultSummaryLimit  = 20
	maxSummaryLimit      = 200
	bodyMassSourceManual = "repsense"
	defaultHistoryDays   = 365
)

var errNoDatabase = errors.New("database not configured")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

// decodeJSON reads a size-limited JSON body into v.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return false
	}
	return true
}

// requireStore answers 503 when the server runs without a database.
func (s *Server) requireStore(w http.ResponseWriter) bool {
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, errNoDatabase)
		return false
	}
	return true
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	status := map[string]string{"status": "ok", "database": "disabled"}
	if s.store != nil {
		if err := s.store.Ping(r.Context()); err != nil {
			s.log.Warn("healthz: database ping failed", "error", err)
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "degraded", "database": "unreachable"})
			return
		}
		status["database"] = "ok"
	}
	writeJSON(w, http.StatusOK, status)
}

func (s *Server) handleMe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, userInfoFromContext(r))
}

func (s *Server) handleAlphaIngest(w http.ResponseWriter, r *http.Request) {
	if s.alpha == nil {
		writeError(w, http.StatusServiceUnavailable, errNoDatabase)
		return
	}
	result, err := s.alpha.Ingest(r.Context(), r.Body, userIDFromContext(r))
	if err != nil {
		s.log.Error("alpha ingest error", "error", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if s.metrics != nil {
		s.metrics.CounterSetsIngested.Add(float64(result.SetsInserted))
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleGetBodyMass(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	readings, err := s.store.LatestBodyMass(r.Context(), userIDFromContext(r))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, readings)
}

type bodyMassRequest struct {
	Kg     float64 `json:"kg"`
	Time   string  `json:"time"`
	Source string  `json:"source"`
}

func (s *Server) handlePostBodyMass(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	var req bodyMassRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.Kg <= 0 {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "kg must be positive"})
		return
	}
	at := time.Now().UTC()
	if req.Time != "" {
		parsed, err := workout.ParseTime(req.Time)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		at = parsed
	}
	source := req.Source
	if source == "" {
		source = bodyMassSourceManual
	}

	kg := req.Kg
	inserted, err := s.store.InsertHealthMetrics(r.Context(), []models.HealthMetricRow{{
		Time:       at,
		UserID:     userIDFromContext(r),
		MetricName: storage.MetricBodyMass,
		Source:     source,
		Units:      "kg",
		Qty:        &kg,
	}})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]int64{"inserted": inserted})
}

// handleBodyMassHistory lists readings in [start, end). Both bounds are
// optional; the default window is the last year.
func (s *Server) handleBodyMassHistory(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	end := time.Now().UTC()
	if v := r.URL.Query().Get("end"); v != "" {
		parsed, err := workout.ParseTime(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		end = parsed
	}
	start := end.AddDate(0, 0, -defaultHistoryDays)
	if v := r.URL.Query().Get("start"); v != "" {
		parsed, err := workout.ParseTime(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		start = parsed
	}
	if !start.Before(end) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "start must be before end"})
		return
	}

	points, err := s.store.BodyMassHistory(r.Context(), userIDFromContext(r), start, end)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, points)
}

func (s *Server) handleSessionSummaries(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	limit := defaultSummaryLimit
	if l := r.URL.Query().Get("limit"); l != "" {
		if parsed, err := strconv.Atoi(l); err == nil && parsed > 0 {
			limit = min(parsed, maxSummaryLimit)
		}
	}
	rows, err := s.store.RecentSessionSummaries(r.Context(), userIDFromContext(r), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if rows == nil {
		rows = []models.SessionSummaryRow{}
	}
	writeJSON(w, http.StatusOK, rows)
}

