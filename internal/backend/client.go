package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Commander is the command surface the panel needs from the daemon.
// Implemented by *Client; handy for faking in tests.
type Commander interface {
	GetRequestLogs(ctx context.Context) ([]LogEntry, error)
	ClearRequestLogs(ctx context.Context) error
	GetServerConfig(ctx context.Context) (ServerConfig, error)
	UpdateServerConfig(ctx context.Context, cfg ServerConfig) error
	StartServer(ctx context.Context) error
	StopServer(ctx context.Context) error
	RestartServer(ctx context.Context) error
}

// Ensure Client implements Commander at compile time.
var _ Commander = (*Client)(nil)

// Client talks to the evo daemon's admin HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	defaultAdminBind = "127.0.0.1:4950"
	defaultUserAgent = "evopanel/0.1"
	requestTimeout   = 10 * time.Second
)

// NewClient builds a Client using the provided adminBind host:port value.
func NewClient(adminBind string) (*Client, error) {
	base, err := parseBaseURL(adminBind)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: requestTimeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// GetRequestLogs retrieves the daemon's current request log set.
func (c *Client) GetRequestLogs(ctx context.Context) ([]LogEntry, error) {
	var payload logListResponse
	if err := c.do(ctx, http.MethodGet, "/api/logs", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Logs, nil
}

// ClearRequestLogs asks the daemon to purge its request log buffer.
func (c *Client) ClearRequestLogs(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/api/logs", nil, nil)
}

// GetServerConfig retrieves the persisted serving configuration.
func (c *Client) GetServerConfig(ctx context.Context) (ServerConfig, error) {
	var cfg ServerConfig
	if err := c.do(ctx, http.MethodGet, "/api/server/config", nil, &cfg); err != nil {
		return ServerConfig{}, err
	}
	return cfg, nil
}

// UpdateServerConfig persists the full serving configuration. It does
// not start or stop the server; callers restart explicitly.
func (c *Client) UpdateServerConfig(ctx context.Context, cfg ServerConfig) error {
	return c.do(ctx, http.MethodPut, "/api/server/config", cfg, nil)
}

// StartServer asks the daemon to begin serving mock traffic.
func (c *Client) StartServer(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/server/start", nil, nil)
}

// StopServer asks the daemon to stop serving mock traffic.
func (c *Client) StopServer(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/server/stop", nil, nil)
}

// RestartServer stops and restarts the mock listener so config changes
// take effect.
func (c *Client) RestartServer(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/server/restart", nil, nil)
}

// ListMocks retrieves every mock route the daemon knows about.
func (c *Client) ListMocks(ctx context.Context) ([]MockRoute, error) {
	var payload mockListResponse
	if err := c.do(ctx, http.MethodGet, "/api/mocks", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Mocks, nil
}

// AddMock registers a new mock route. The daemon assigns the ID from
// the normalized method and path.
func (c *Client) AddMock(ctx context.Context, mock MockRoute) error {
	normalizeRoute(&mock)
	return c.do(ctx, http.MethodPost, "/api/mocks", mock, nil)
}

// UpdateMock replaces the route previously identified by oldID. When
// the method or path changed, the daemon re-keys the route.
func (c *Client) UpdateMock(ctx context.Context, oldID string, mock MockRoute) error {
	normalizeRoute(&mock)
	return c.doURL(ctx, http.MethodPut, escapedPath("/api/mocks/", oldID), mock, nil)
}

// RemoveMock deletes a mock route by ID. Deleting an unknown ID is not
// an error on the daemon side.
func (c *Client) RemoveMock(ctx context.Context, id string) error {
	return c.doURL(ctx, http.MethodDelete, escapedPath("/api/mocks/", id), nil, nil)
}

// ListDatabases retrieves the named database connections.
func (c *Client) ListDatabases(ctx context.Context) ([]DatabaseConfig, error) {
	var payload databaseListResponse
	if err := c.do(ctx, http.MethodGet, "/api/databases", nil, &payload); err != nil {
		return nil, err
	}
	return payload.Databases, nil
}

// AddDatabase registers a named connection. The daemon validates the
// URL by connecting before it accepts the entry, so failures here are
// common and user-facing.
func (c *Client) AddDatabase(ctx context.Context, db DatabaseConfig) error {
	return c.do(ctx, http.MethodPost, "/api/databases", db, nil)
}

// RemoveDatabase drops a named connection and its pool.
func (c *Client) RemoveDatabase(ctx context.Context, name string) error {
	return c.doURL(ctx, http.MethodDelete, escapedPath("/api/databases/", name), nil, nil)
}

// TestDatabase checks a connection URL without registering it. The
// returned message is the daemon's human-readable verdict.
func (c *Client) TestDatabase(ctx context.Context, dbURL string) (string, error) {
	var payload testResponse
	req := struct {
		URL string `json:"url"`
	}{URL: dbURL}
	if err := c.do(ctx, http.MethodPost, "/api/databases/test", req, &payload); err != nil {
		return "", err
	}
	return payload.Message, nil
}

// normalizeRoute applies the daemon's key rules client-side so the UI
// shows the same ID the daemon will assign: method upper-cased, path
// rooted with a leading slash.
func normalizeRoute(mock *MockRoute) {
	mock.Method = strings.ToUpper(strings.TrimSpace(mock.Method))
	mock.Path = strings.TrimSpace(mock.Path)
	if !strings.HasPrefix(mock.Path, "/") {
		mock.Path = "/" + mock.Path
	}
	mock.ID = mock.Method + " " + mock.Path
}

// escapedPath builds a relative URL whose final segment may contain
// spaces or slashes (mock IDs are "METHOD /path").
func escapedPath(prefix, segment string) *url.URL {
	return &url.URL{
		Path:    prefix + segment,
		RawPath: prefix + url.PathEscape(segment),
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, dest any) error {
	return c.doURL(ctx, method, &url.URL{Path: path}, body, dest)
}

func (c *Client) doURL(ctx context.Context, method string, rel *url.URL, body, dest any) error {
	if c == nil {
		return fmt.Errorf("client is nil")
	}
	reqURL := c.baseURL.ResolveReference(rel)

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL.String(), reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= 400 {
		return parseError(resp, rel.Path)
	}
	if dest == nil {
		return nil
	}
	decoder := json.NewDecoder(resp.Body)
	if err := decoder.Decode(dest); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// parseError surfaces the daemon's {"error": "..."} body when present
// so toasts can show the real cause instead of just a status code.
func parseError(resp *http.Response, path string) error {
	raw, err := io.ReadAll(io.LimitReader(resp.Body, 4096))
	if err == nil && len(raw) > 0 {
		var body errorResponse
		if jsonErr := json.Unmarshal(raw, &body); jsonErr == nil && body.Error != "" {
			return fmt.Errorf("api %s: %s", path, body.Error)
		}
	}
	return fmt.Errorf("api %s returned status %d", path, resp.StatusCode)
}

func parseBaseURL(adminBind string) (*url.URL, error) {
	trimmed := strings.TrimSpace(adminBind)
	if trimmed == "" {
		trimmed = defaultAdminBind
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse admin_bind %q: %w", adminBind, err)
	}
	u.Path = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
