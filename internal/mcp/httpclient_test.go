package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/claude/repsense/internal/progression"
	"github.com/claude/repsense/internal/storage"
)

// newTestServer creates an httptest server that routes requests to handler functions
// keyed by path. Verifies the HTTP client sends correct paths and query params.
func newTestServer(t *testing.T, handlers map[string]http.HandlerFunc) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h, ok := handlers[r.URL.EscapedPath()]
		if !ok {
			http.NotFound(w, r)
			return
		}
		h(w, r)
	}))
}

func writeTestJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Fatal(err)
	}
}

// TestExerciseHistory verifies the escaped path and the decoded history.
func TestExerciseHistory(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/exercises/Bench%20Press/history": func(w http.ResponseWriter, r *http.Request) {
			writeTestJSON(t, w, map[string]any{
				"exercise":     "Bench Press",
				"isBodyweight": false,
				"history": progression.History{
					Last: &progression.Session{Sets: []progression.Perf{{WeightKg: 80, Reps: 8}}},
				},
			})
		},
	})
	defer ts.Close()

	h, bodyweight, err := NewHTTPClient(ts.URL).ExerciseHistory(context.Background(), 1, "Bench Press")
	if err != nil {
		t.Fatal(err)
	}
	if bodyweight {
		t.Error("bodyweight = true, want false")
	}
	if h.Last == nil || h.Last.Sets[0].WeightKg != 80 {
		t.Errorf("history = %+v", h)
	}
}

// TestExerciseHistoryNotFound verifies a 404 is an empty history, not an error.
func TestExerciseHistoryNotFound(t *testing.T) {
	ts := newTestServer(t, nil)
	defer ts.Close()

	h, _, err := NewHTTPClient(ts.URL).ExerciseHistory(context.Background(), 1, "Squat")
	if err != nil {
		t.Fatalf("err = %v, want nil", err)
	}
	if h.Last != nil {
		t.Errorf("history = %+v, want empty", h)
	}
}

// TestSessionSummariesLimit verifies the limit query parameter.
func TestSessionSummariesLimit(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/session-summaries": func(w http.ResponseWriter, r *http.Request) {
			if got := r.URL.Query().Get("limit"); got != "5" {
				t.Errorf("limit=%q, want 5", got)
			}
			writeTestJSON(t, w, []any{})
		},
	})
	defer ts.Close()

	if _, err := NewHTTPClient(ts.URL).RecentSessionSummaries(context.Background(), 1, 5); err != nil {
		t.Fatal(err)
	}
}

// TestHTTPClientErrorStatus verifies non-200 responses become errors.
func TestHTTPClientErrorStatus(t *testing.T) {
	ts := newTestServer(t, map[string]http.HandlerFunc{
		"/api/v1/body-mass": func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"error":"database not configured"}`, http.StatusServiceUnavailable)
		},
		"/api/v1/exercises": func(w http.ResponseWriter, r *http.Request) {
			writeTestJSON(t, w, []storage.ExerciseSummary{{Name: "Squat"}})
		},
	})
	defer ts.Close()

	c := NewHTTPClient(ts.URL)
	if _, err := c.LatestBodyMass(context.Background(), 1); err == nil {
		t.Error("expected error for 503")
	}
	list, err := c.ListExercises(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 1 || list[0].Name != "Squat" {
		t.Errorf("list = %+v", list)
	}
}
