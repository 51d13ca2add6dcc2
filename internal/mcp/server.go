package mcp

import (
	"context"
	"log/slog"

	"github.com/claude/repsense/internal/coachtext"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type contextKey int

const userIDKey contextKey = iota

// UserIDFromContext extracts the user ID injected by the transport layer.
func UserIDFromContext(ctx context.Context) int {
	if id, ok := ctx.Value(userIDKey).(int); ok {
		return id
	}
	return 1
}

// WithUserID returns a context with the given user ID.
func WithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// New creates an MCP server with all tools and resources registered. ds may
// be nil, in which case only the stateless tools work.
func New(ds DataSource, version string, lang coachtext.Language, log *slog.Logger) *server.MCPServer {
	s := server.NewMCPServer("repsense", version,
		server.WithToolCapabilities(false),
		server.WithResourceCapabilities(false, false),
		server.WithInstructions("repsense workout coach. Summarize sessions (duration, calories, volume) and suggest the next weight and reps for an exercise from its stored history. All data is scoped to the authenticated user."),
	)

	h := &handlers{ds: ds, lang: lang, log: log}

	// Tools
	s.AddTools(
		server.ServerTool{Tool: toolComputeSessionStats, Handler: h.computeSessionStats},
		server.ServerTool{Tool: toolSuggestProgression, Handler: h.suggestProgression},
		server.ServerTool{Tool: toolCheckNewRecord, Handler: h.checkNewRecord},
		server.ServerTool{Tool: toolListExercises, Handler: h.listExercises},
		server.ServerTool{Tool: toolGetSessionSummaries, Handler: h.getSessionSummaries},
	)

	// Resources
	s.AddResources(
		server.ServerResource{Resource: resExerciseCatalog, Handler: h.exerciseCatalog},
		server.ServerResource{Resource: resBodyMass, Handler: h.bodyMass},
	)

	return s
}

// handlers holds dependencies for MCP tool/resource handlers.
type handlers struct {
	ds   DataSource
	lang coachtext.Language
	log  *slog.Logger
}

// language resolves a tool's lang argument against the configured default.
func (h *handlers) language(raw string) coachtext.Language {
	if raw == "" && h.lang != "" {
		return h.lang
	}
	return coachtext.ParseLanguage(raw)
}

// --- Resource definitions ---

var resExerciseCatalog = mcp.NewResource(
	"repsense://exercises",
	"Exercise Catalog",
	mcp.WithResourceDescription("Every logged exercise with session count, tonnage, max weight and last date"),
	mcp.WithMIMEType("application/json"),
)

var resBodyMass = mcp.NewResource(
	"repsense://body_mass",
	"Body Mass",
	mcp.WithResourceDescription("Latest, previous and first stored body mass readings in kg"),
	mcp.WithMIMEType("application/json"),
)
