package backend

import (
	"sort"
	"time"
)

// LogEntry mirrors a single request/response record emitted by the evo
// daemon for every proxied request.
type LogEntry struct {
	ID           string `json:"id"`
	Timestamp    int64  `json:"timestamp"` // epoch milliseconds
	Method       string `json:"method"`
	Path         string `json:"path"`
	StatusCode   int    `json:"status_code"`
	DurationMs   int64  `json:"duration_ms"`
	RequestBody  string `json:"request_body,omitempty"`
	ResponseBody string `json:"response_body,omitempty"`
}

// Time converts the epoch-millisecond timestamp to a time.Time.
func (e LogEntry) Time() time.Time {
	return time.UnixMilli(e.Timestamp)
}

// SortEntriesDesc orders entries newest-first by timestamp. Entries
// sharing a timestamp keep their relative order.
func SortEntriesDesc(entries []LogEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Timestamp > entries[j].Timestamp
	})
}

// MockRoute describes one mocked endpoint as the daemon stores it.
// The ID is daemon-assigned as "METHOD /path" and changes when either
// component of the route changes.
type MockRoute struct {
	ID           string `json:"id"`
	Path         string `json:"path"`
	Method       string `json:"method"`
	ResponseBody string `json:"response_body"`
	StatusCode   int    `json:"status_code"`
	ResponseType string `json:"response_type"`
}

// Response types understood by the daemon.
const (
	ResponseJSON  = "json"
	ResponseHTML  = "html"
	ResponseRaw   = "raw"
	ResponseJS    = "js"
	ResponseProxy = "proxy"
)

// DatabaseConfig names a database connection the daemon keeps pooled
// for dynamic-script handlers. The URL is a driver connection string.
type DatabaseConfig struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ServerConfig mirrors the daemon's serving configuration. Running is
// the persisted autostart flag, not the live serving state.
type ServerConfig struct {
	Port    int    `json:"port"`
	Host    string `json:"host"`
	Running bool   `json:"running"`
}

// mockListResponse mirrors GET /api/mocks.
type mockListResponse struct {
	Mocks []MockRoute `json:"mocks"`
}

// logListResponse mirrors GET /api/logs.
type logListResponse struct {
	Logs []LogEntry `json:"logs"`
}

// databaseListResponse mirrors GET /api/databases.
type databaseListResponse struct {
	Databases []DatabaseConfig `json:"databases"`
}

// testResponse mirrors POST /api/databases/test.
type testResponse struct {
	Message string `json:"message"`
}

// errorResponse is the daemon's uniform error body.
type errorResponse struct {
	Error string `json:"error"`
}
