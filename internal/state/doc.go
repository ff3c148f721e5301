// Package state provides the shared stores behind the evopanel UI.
//
// # Overview
//
// Every view in the panel reads from the same four stores: the
// notification queue (toasts), the confirmation broker, the request
// log buffer, and the server-status mirror. The stores are the single
// source of truth; views come and go (tabs mount and unmount) without
// duplicating subscriptions or losing cross-tab updates.
//
// # Lifecycle
//
// The stores are constructed once in internal/app via New, injected
// into the UI, and closed at process exit. Nothing here relies on
// package-level globals; the singleton discipline is explicit in the
// construction site.
//
// # The Four Stores
//
// Notifier:
//   - Appends toasts with process-unique monotonic IDs
//   - Auto-dismisses after a per-kind TTL (errors get longer)
//   - TTL 0 means persistent until manually dismissed
//   - Dismissing an absent ID is a no-op
//
// Confirmer:
//   - Bounded FIFO queue of yes/no prompts
//   - Exactly one visible prompt (the head); resolving promotes the
//     next
//   - Each caller's outcome channel is answered exactly once
//
// LogStore:
//   - Capped most-recent-first buffer (100 entries)
//   - Fed by exactly one backend event subscription per process;
//     StartListening is idempotent so every mounting view may call it
//   - Fetch is a full replace sorted newest-first, reconciling entries
//     that arrived before the listener attached
//   - Clear purges the daemon first and only then empties the local
//     buffer, so a failed purge leaves local state intact
//
// ServerMirror:
//   - Caches the persisted serving config plus a derived live running
//     flag
//   - Toggle commands start/stop from the derived flag and writes the
//     result back into the persisted config
//   - Save persists without starting or stopping; restarts are a
//     separate, confirmed action
//
// # Concurrency Model
//
// All stores guard their state with a mutex and hand out defensive
// copies. Writers are the Bubble Tea command goroutines, the stream
// reader goroutine (LogStore only), and toast expiry timers; the
// reader is the UI render loop. Locks are held only while copying,
// never across network calls.
//
// # Error Handling
//
// Store methods that reach the daemon return the error and leave prior
// state unchanged (the log Clear and the mirror document their exact
// reconciliation rules inline). Converting failures into user-visible
// toasts is the call site's job, in internal/ui.
package state
