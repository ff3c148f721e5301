// Package app provides the orchestration layer for the evopanel application.
//
// # Overview
//
// This package wires together configuration, the backend client, the
// shared stores, and the UI to create the complete evopanel TUI. It is
// the composition root: the one place where the process-wide stores are
// constructed and torn down.
//
// # Startup Sequence
//
//  1. Load evopanel configuration from ~/.config/evopanel/config.toml
//  2. Load user preferences (theme, startup tab)
//  3. Initialize the HTTP client for the evo daemon admin API
//  4. Construct the shared state.Stores exactly once
//  5. Attach the single request-log event subscription
//  6. Populate the stores with an initial fetch
//  7. Launch the background status poller
//  8. Start the TUI and block until the user exits or the context cancels
//
// # Components
//
//   - app.go: Run function and store construction
//   - poller.go: Background goroutine reconciling the server mirror and
//     re-attaching the event stream after daemon outages, with
//     exponential backoff while the daemon is unreachable
//
// # Error Handling
//
// A daemon that is down at startup is not fatal: the panel starts with
// empty stores, shows the mirror's offline state, and the poller keeps
// retrying. Configuration load failures are fatal since the panel
// cannot know where the daemon lives.
package app
