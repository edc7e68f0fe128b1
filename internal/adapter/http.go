package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-park-audit/internal/config"
	"github.com/MKhiriev/go-park-audit/internal/logger"
	"github.com/MKhiriev/go-park-audit/models"
	"github.com/go-resty/resty/v2"
	"github.com/golang-jwt/jwt/v5"
)

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from cfg.BaseURL
// and configures the underlying resty client with the resolved base URL and
// request timeout.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a valid URL.
func NewHTTPServerAdapter(cfg config.AdapterConfig, log *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &httpServerAdapter{client: client, logger: log}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent authenticated
// requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently
// held by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the agent credentials to
// POST /api/auth/register. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpServerAdapter) Register(ctx context.Context, agent models.Agent) (models.Agent, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(agent).
		Post("/api/auth/register")
	if err != nil {
		return models.Agent{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Agent{}, err
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Agent{}, fmt.Errorf("register parse bearer token: %w", err)
	}
	agentID, err := parseAgentIDFromJWT(token)
	if err != nil {
		return models.Agent{}, fmt.Errorf("register parse agent id: %w", err)
	}

	h.SetToken(token)
	return models.Agent{AgentID: agentID, Login: agent.Login, Name: agent.Name}, nil
}

// Login implements [ServerAdapter]. It POSTs the agent credentials to
// POST /api/auth/login. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken.
func (h *httpServerAdapter) Login(ctx context.Context, agent models.Agent) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(agent).
		Post("/api/auth/login")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	token, err := parseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse bearer token: %w", err)
	}
	agentID, err := parseAgentIDFromJWT(token)
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse agent id: %w", err)
	}

	h.SetToken(token)
	return models.Token{SignedString: token, AgentID: agentID}, nil
}

// CreateEntry implements [ServerAdapter]. It POSTs one queued record to
// POST /api/audit/. The server treats LocalID as an idempotency key, so a
// re-submission after a lost acknowledgement returns the already-stored entry
// with a 2xx status. Requires a valid bearer token.
func (h *httpServerAdapter) CreateEntry(ctx context.Context, record models.PendingAuditRecord) (models.AuditEntry, error) {
	req := models.CreateEntryRequest{
		LocalID:    record.LocalID,
		Payload:    record.Payload,
		CapturedAt: record.CapturedAt,
	}

	var entry models.AuditEntry
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&entry).
		Post("/api/audit/")
	if err != nil {
		return models.AuditEntry{}, fmt.Errorf("create entry request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.AuditEntry{}, err
	}

	return entry, nil
}

// ListEntries implements [ServerAdapter]. It GETs /api/audit/ with the
// non-zero filter fields encoded as query parameters and decodes the JSON
// response. Requires a valid bearer token.
func (h *httpServerAdapter) ListEntries(ctx context.Context, filter models.EntryFilter) ([]models.AuditEntry, error) {
	req := h.authedRequest(ctx)
	if filter.Zone != "" {
		req.SetQueryParam("zone", filter.Zone)
	}
	if filter.Plate != "" {
		req.SetQueryParam("plate", filter.Plate)
	}
	if filter.Status != "" {
		req.SetQueryParam("status", string(filter.Status))
	}
	if filter.Since != nil {
		req.SetQueryParam("since", filter.Since.UTC().Format(time.RFC3339))
	}

	resp, err := req.Get("/api/audit/")
	if err != nil {
		return nil, fmt.Errorf("list entries request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var lr models.ListEntriesResponse
	if err = json.Unmarshal(resp.Body(), &lr); err != nil {
		return nil, fmt.Errorf("decode list entries response: %w", err)
	}

	return lr.Entries, nil
}

// Ping implements [ServerAdapter]. It GETs /api/ping and reports any
// transport or non-2xx failure as an error. Authentication is not required:
// the probe must keep working while the stored token is expired, otherwise
// the connectivity monitor would report a reachable server as offline.
func (h *httpServerAdapter) Ping(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get("/api/ping")
	if err != nil {
		return fmt.Errorf("ping request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

func parseBearerToken(value string) (string, error) {
	parts := strings.Split(strings.TrimSpace(value), " ")
	if len(parts) != 2 || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

func parseAgentIDFromJWT(tokenString string) (int64, error) {
	token, _, err := jwt.NewParser().ParseUnverified(tokenString, jwt.MapClaims{})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errors.New("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return 0, err
	}

	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, err
	}
	return id, nil
}
