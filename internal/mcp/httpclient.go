package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/claude/repsense/internal/models"
	"github.com/claude/repsense/internal/progression"
	"github.com/claude/repsense/internal/storage"
)

// HTTPClient implements DataSource by calling the repsense REST API.
// Used for remote MCP mode where the binary runs locally (stdio) but
// data lives on the remote server (accessed over Tailscale).
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// Compile-time check: HTTPClient satisfies DataSource.
var _ DataSource = (*HTTPClient)(nil)

var errNotFound = errors.New("not found")

// NewHTTPClient creates an HTTPClient targeting the given base URL.
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (c *HTTPClient) get(ctx context.Context, path string, params url.Values) ([]byte, error) {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("httpclient: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}

	switch resp.StatusCode {
	case http.StatusOK:
		return body, nil
	case http.StatusNotFound:
		return nil, errNotFound
	default:
		return nil, fmt.Errorf("httpclient: %s returned %d: %s", path, resp.StatusCode, body)
	}
}

// getJSON fetches path and decodes the body into v.
func (c *HTTPClient) getJSON(ctx context.Context, path string, params url.Values, what string, v any) error {
	body, err := c.get(ctx, path, params)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("httpclient: decode %s: %w", what, err)
	}
	return nil
}

// ExerciseHistory treats a 404 as an exercise without history. The user is
// the one the remote server resolves for this client.
func (c *HTTPClient) ExerciseHistory(ctx context.Context, _ int, exercise string) (progression.History, bool, error) {
	var resp struct {
		IsBodyweight bool                `json:"isBodyweight"`
		History      progression.History `json:"history"`
	}
	err := c.getJSON(ctx, "/api/v1/exercises/"+url.PathEscape(exercise)+"/history", nil, "exercise history", &resp)
	if errors.Is(err, errNotFound) {
		return progression.History{}, false, nil
	}
	if err != nil {
		return progression.History{}, false, err
	}
	return resp.History, resp.IsBodyweight, nil
}

func (c *HTTPClient) ListExercises(ctx context.Context, _ int) ([]storage.ExerciseSummary, error) {
	var list []storage.ExerciseSummary
	if err := c.getJSON(ctx, "/api/v1/exercises", nil, "exercises", &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (c *HTTPClient) LatestBodyMass(ctx context.Context, _ int) (storage.BodyMassReadings, error) {
	var readings storage.BodyMassReadings
	err := c.getJSON(ctx, "/api/v1/body-mass", nil, "body mass", &readings)
	return readings, err
}

func (c *HTTPClient) RecentSessionSummaries(ctx context.Context, _ int, limit int) ([]models.SessionSummaryRow, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(limit))

	var rows []models.SessionSummaryRow
	if err := c.getJSON(ctx, "/api/v1/session-summaries", params, "session summaries", &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
