package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/claude/repsense/internal/coachtext"
	"github.com/claude/repsense/internal/ingest/alpha"
	"github.com/claude/repsense/internal/metrics"
	"github.com/claude/repsense/internal/models"
	"github.com/claude/repsense/internal/progression"
	"github.com/claude/repsense/internal/sessionstats"
	"github.com/claude/repsense/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Store is the persistence the history-backed endpoints need.
type Store interface {
	Ping(ctx context.Context) error
	GetOrCreateUser(ctx context.Context, login, displayName string) (int, error)
	ExerciseHistory(ctx context.Context, userID int, exercise string) (progression.History, bool, error)
	ListExercises(ctx context.Context, userID int) ([]storage.ExerciseSummary, error)
	LatestBodyMass(ctx context.Context, userID int) (storage.BodyMassReadings, error)
	BodyMassHistory(ctx context.Context, userID int, start, end time.Time) ([]storage.BodyMassPoint, error)
	InsertHealthMetrics(ctx context.Context, rows []models.HealthMetricRow) (int64, error)
	SaveSessionSummary(ctx context.Context, userID int, performedAt time.Time, r sessionstats.Result) (uuid.UUID, error)
	PreviousSessionSummary(ctx context.Context, userID int) (*sessionstats.Previous, error)
	RecentSessionSummaries(ctx context.Context, userID, limit int) ([]models.SessionSummaryRow, error)
}

// Compile-time check: the Postgres repository satisfies Store.
var _ Store = (*storage.DB)(nil)

// Server holds dependencies for HTTP handlers. store and alpha are nil when
// no database is configured.
type Server struct {
	store   Store
	alpha   *alpha.Provider
	metrics *metrics.Manager
	log     *slog.Logger
	apiKey  string
	lang    coachtext.Language
	whois   WhoIser
	router  chi.Router
}

// New creates a new Server with all routes configured.
func New(store Store, alphaProvider *alpha.Provider, mm *metrics.Manager, apiKey string, lang coachtext.Language, log *slog.Logger) *Server {
	s := &Server{
		store:   store,
		alpha:   alphaProvider,
		metrics: mm,
		log:     log,
		apiKey:  apiKey,
		lang:    lang,
		router:  chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// SetTailscale switches request identity from the dev user to the tailnet
// peer calling the server.
func (s *Server) SetTailscale(lc WhoIser) {
	s.whois = lc
}

// SetMCP mounts an MCP streamable HTTP handler at /mcp behind the identity
// middleware.
func (s *Server) SetMCP(h http.Handler) {
	s.router.With(s.identity).Handle("/mcp", h)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(PanicRecovery(s.log, s.metrics))
	if s.metrics != nil {
		s.router.Use(RequestMetrics(s.metrics))
	}
	s.router.Use(CORS)

	s.router.Get("/healthz", s.handleHealthz)
	if s.metrics != nil {
		s.router.Handle("/metrics", s.metrics.Handler())
	}

	// Ingest endpoints (API key required)
	s.router.Route("/api/v1/ingest", func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))
		r.Use(s.identity)
		r.Post("/alpha", s.handleAlphaIngest)
	})

	// Engine and history endpoints (no API key, tsnet handles access)
	s.router.Route("/api/v1", func(r chi.Router) {
		r.Use(s.identity)
		r.Get("/me", s.handleMe)

		r.Post("/session-stats", s.handleSessionStats)
		r.Get("/session-summaries", s.handleSessionSummaries)

		r.Post("/progression", s.handleProgression)
		r.Post("/progression/record", s.handleRecord)
		r.Post("/progression/difference", s.handleDifference)
		r.Post("/progression/challenge", s.handleChallenge)

		r.Get("/exercises", s.handleListExercises)
		r.Get("/exercises/{name}/history", s.handleExerciseHistory)
		r.Get("/exercises/{name}/suggestion", s.handleExerciseSuggestion)

		r.Get("/body-mass", s.handleGetBodyMass)
		r.Post("/body-mass", s.handlePostBodyMass)
		r.Get("/body-mass/history", s.handleBodyMassHistory)
	})
}

// language resolves a request's language, using the configured default when
// the request names none.
func (s *Server) language(raw string) coachtext.Language {
	if raw == "" {
		if s.lang == "" {
			return coachtext.DefaultLanguage
		}
		return s.lang
	}
	return coachtext.ParseLanguage(raw)
}
