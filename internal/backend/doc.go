// Package backend provides the client for the evo daemon's admin API.
//
// # Overview
//
// This package defines the typed client for the out-of-process mock
// server daemon. It owns the two channels the panel uses: the
// request/response command channel (plain HTTP + JSON) and the one-way
// event channel (a WebSocket pushing one LogEntry per proxied request).
// Everything behind those channels (routing, script execution,
// database pools, persistence) belongs to the daemon and is opaque
// here.
//
// # Architecture
//
// The package is split into three files:
//
//   - client.go: HTTP command client and request/response handling
//   - stream.go: WebSocket event subscription
//   - types.go: Data structures mirroring the admin API schema
//
// # Command Channel
//
// Create a client using the admin bind address from configuration:
//
//	client, err := backend.NewClient("127.0.0.1:4950")
//	if err != nil {
//		log.Fatalf("failed to create client: %v", err)
//	}
//
//	logs, err := client.GetRequestLogs(ctx)
//	cfg, err := client.GetServerConfig(ctx)
//	err = client.StartServer(ctx)
//
// Endpoints:
//
//   - GET/DELETE /api/logs: request log read and purge
//   - GET/PUT /api/server/config: serving configuration
//   - POST /api/server/{start,stop,restart}: lifecycle commands
//   - GET/POST/PUT/DELETE /api/mocks: mock route CRUD
//   - GET/POST/DELETE /api/databases (+ /test): named connection CRUD
//
// All requests carry a context, Accept/User-Agent headers, and an
// X-Request-ID correlation header. Errors wrap the daemon's
// {"error": "..."} body when one is present so callers can surface the
// real cause.
//
// # Event Channel
//
// StreamLogs dials ws://<bind>/api/events/logs and yields entries on a
// channel until the subscription is cancelled or the connection drops.
// Delivery is at-most-once per subscription; holding more than one
// subscription open duplicates every entry, which is why the state
// layer guards subscription setup (see internal/state).
//
// # Mock Route Identity
//
// The daemon keys mock routes as "METHOD /path". The client applies
// the same normalization (upper-case method, rooted path) before
// sending so the panel can predict the assigned ID. Updating a route's
// method or path therefore re-keys it; UpdateMock takes the old ID for
// that reason.
package backend
