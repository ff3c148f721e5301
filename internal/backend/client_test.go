package backend

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestParseBaseURL_DefaultsAndNormalizes(t *testing.T) {
	u, err := parseBaseURL("")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Scheme != "http" {
		t.Fatalf("scheme = %q, want http", u.Scheme)
	}
	if u.Host != defaultAdminBind {
		t.Fatalf("host = %q, want %q", u.Host, defaultAdminBind)
	}

	u, err = parseBaseURL("http://example.com:1234/path?x=1#frag")
	if err != nil {
		t.Fatalf("parseBaseURL returned error: %v", err)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		t.Fatalf("url not normalized: %q", u.String())
	}
}

func TestNormalizeRoute(t *testing.T) {
	tests := []struct {
		name     string
		in       MockRoute
		wantID   string
		wantPath string
	}{
		{"already normal", MockRoute{Method: "GET", Path: "/api/users"}, "GET /api/users", "/api/users"},
		{"lowercase method", MockRoute{Method: "post", Path: "/x"}, "POST /x", "/x"},
		{"missing slash", MockRoute{Method: "GET", Path: "health"}, "GET /health", "/health"},
		{"padded fields", MockRoute{Method: " put ", Path: " /y "}, "PUT /y", "/y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := tt.in
			normalizeRoute(&mock)
			if mock.ID != tt.wantID {
				t.Errorf("ID = %q, want %q", mock.ID, tt.wantID)
			}
			if mock.Path != tt.wantPath {
				t.Errorf("Path = %q, want %q", mock.Path, tt.wantPath)
			}
		})
	}
}

func TestClient_FetchesEndpoints(t *testing.T) {
	t.Parallel()

	var gotUserAgent string
	var gotRequestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		gotRequestID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")

		switch r.URL.Path {
		case "/api/logs":
			_ = json.NewEncoder(w).Encode(logListResponse{Logs: []LogEntry{
				{ID: "a", Method: "GET", Path: "/x", StatusCode: 200, Timestamp: 10},
			}})
		case "/api/server/config":
			_ = json.NewEncoder(w).Encode(ServerConfig{Port: 3000, Host: "127.0.0.1", Running: true})
		case "/api/mocks":
			_ = json.NewEncoder(w).Encode(mockListResponse{Mocks: []MockRoute{
				{ID: "GET /api/users", Path: "/api/users", Method: "GET", StatusCode: 200, ResponseBody: "{}", ResponseType: ResponseJSON},
			}})
		case "/api/databases":
			_ = json.NewEncoder(w).Encode(databaseListResponse{Databases: []DatabaseConfig{
				{Name: "main", URL: "postgres://localhost/app"},
			}})
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client, err := NewClient(strings.TrimPrefix(server.URL, "http://"))
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logs, err := client.GetRequestLogs(ctx)
	if err != nil {
		t.Fatalf("GetRequestLogs returned error: %v", err)
	}
	if len(logs) != 1 || logs[0].ID != "a" {
		t.Fatalf("GetRequestLogs = %#v, want single entry with id a", logs)
	}

	cfg, err := client.GetServerConfig(ctx)
	if err != nil {
		t.Fatalf("GetServerConfig returned error: %v", err)
	}
	if cfg.Port != 3000 || !cfg.Running {
		t.Fatalf("GetServerConfig = %#v, want port 3000 running", cfg)
	}

	mocks, err := client.ListMocks(ctx)
	if err != nil {
		t.Fatalf("ListMocks returned error: %v", err)
	}
	if len(mocks) != 1 || mocks[0].ID != "GET /api/users" {
		t.Fatalf("ListMocks = %#v, want GET /api/users", mocks)
	}

	dbs, err := client.ListDatabases(ctx)
	if err != nil {
		t.Fatalf("ListDatabases returned error: %v", err)
	}
	if len(dbs) != 1 || dbs[0].Name != "main" {
		t.Fatalf("ListDatabases = %#v, want main", dbs)
	}

	if !strings.HasPrefix(gotUserAgent, "evopanel/") {
		t.Fatalf("User-Agent = %q, want evopanel prefix", gotUserAgent)
	}
	if gotRequestID == "" {
		t.Fatal("X-Request-ID header missing")
	}
}

func TestClient_MutationsSendExpectedRequests(t *testing.T) {
	t.Parallel()

	type captured struct {
		method string
		path   string
		body   string
	}
	var got []captured

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		got = append(got, captured{method: r.Method, path: r.URL.Path, body: string(body)})
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client, err := NewClient(strings.TrimPrefix(server.URL, "http://"))
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}
	ctx := context.Background()

	if err := client.AddMock(ctx, MockRoute{Method: "get", Path: "users", StatusCode: 200}); err != nil {
		t.Fatalf("AddMock returned error: %v", err)
	}
	if err := client.UpdateMock(ctx, "GET /users", MockRoute{Method: "POST", Path: "/users", StatusCode: 201}); err != nil {
		t.Fatalf("UpdateMock returned error: %v", err)
	}
	if err := client.RemoveMock(ctx, "POST /users"); err != nil {
		t.Fatalf("RemoveMock returned error: %v", err)
	}
	if err := client.ClearRequestLogs(ctx); err != nil {
		t.Fatalf("ClearRequestLogs returned error: %v", err)
	}
	if err := client.StopServer(ctx); err != nil {
		t.Fatalf("StopServer returned error: %v", err)
	}

	want := []captured{
		{method: http.MethodPost, path: "/api/mocks"},
		{method: http.MethodPut, path: "/api/mocks/GET /users"},
		{method: http.MethodDelete, path: "/api/mocks/POST /users"},
		{method: http.MethodDelete, path: "/api/logs"},
		{method: http.MethodPost, path: "/api/server/stop"},
	}
	if len(got) != len(want) {
		t.Fatalf("captured %d requests, want %d", len(got), len(want))
	}
	for i, w := range want {
		if got[i].method != w.method || got[i].path != w.path {
			t.Errorf("request %d = %s %s, want %s %s", i, got[i].method, got[i].path, w.method, w.path)
		}
	}

	// AddMock normalizes before sending.
	var sent MockRoute
	if err := json.Unmarshal([]byte(got[0].body), &sent); err != nil {
		t.Fatalf("decode AddMock body: %v", err)
	}
	if sent.ID != "GET /users" || sent.Method != "GET" || sent.Path != "/users" {
		t.Fatalf("AddMock sent %#v, want normalized GET /users", sent)
	}
}

func TestClient_SurfacesErrorBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(errorResponse{Error: "port 3000 already in use"})
	}))
	defer server.Close()

	client, err := NewClient(strings.TrimPrefix(server.URL, "http://"))
	if err != nil {
		t.Fatalf("NewClient returned error: %v", err)
	}

	err = client.StartServer(context.Background())
	if err == nil {
		t.Fatal("StartServer returned nil, want error")
	}
	if !strings.Contains(err.Error(), "port 3000 already in use") {
		t.Fatalf("error = %v, want daemon message included", err)
	}
}

func TestSortEntriesDesc(t *testing.T) {
	entries := []LogEntry{
		{ID: "old", Timestamp: 100},
		{ID: "newest", Timestamp: 300},
		{ID: "mid", Timestamp: 200},
	}
	SortEntriesDesc(entries)

	wantOrder := []string{"newest", "mid", "old"}
	for i, want := range wantOrder {
		if entries[i].ID != want {
			t.Fatalf("entries[%d] = %q, want %q (full: %#v)", i, entries[i].ID, want, entries)
		}
	}
}
