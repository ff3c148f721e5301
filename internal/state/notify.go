package state

import (
	"sync"
	"time"
)

// Kind classifies a toast for styling and default lifetime.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
	KindWarning Kind = "warning"
)

// Default lifetimes by kind. Errors get more read time.
const (
	DefaultTTL      = 3 * time.Second
	DefaultErrorTTL = 5 * time.Second
)

// Toast is a timed user-facing message. ID is process-unique and
// monotonically increasing.
type Toast struct {
	ID      int64
	Message string
	Kind    Kind
	TTL     time.Duration // 0 means persistent until dismissed
}

// Notifier is the shared notification queue. Toasts append in
// insertion order and self-dismiss after their TTL unless the TTL is
// zero. The zero value is ready to use.
type Notifier struct {
	mu     sync.Mutex
	nextID int64
	toasts []Toast
	timers map[int64]*time.Timer
}

// Notify appends a toast with the default lifetime for its kind and
// returns its ID.
func (n *Notifier) Notify(message string, kind Kind) int64 {
	ttl := DefaultTTL
	if kind == KindError {
		ttl = DefaultErrorTTL
	}
	return n.NotifyTTL(message, kind, ttl)
}

// NotifyTTL appends a toast with an explicit lifetime. A zero ttl
// makes the toast persistent; it stays until Dismiss is called.
func (n *Notifier) NotifyTTL(message string, kind Kind, ttl time.Duration) int64 {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.nextID++
	id := n.nextID
	n.toasts = append(n.toasts, Toast{ID: id, Message: message, Kind: kind, TTL: ttl})

	if ttl > 0 {
		if n.timers == nil {
			n.timers = make(map[int64]*time.Timer)
		}
		n.timers[id] = time.AfterFunc(ttl, func() { n.Dismiss(id) })
	}
	return id
}

// Success is shorthand for Notify with KindSuccess.
func (n *Notifier) Success(message string) int64 { return n.Notify(message, KindSuccess) }

// Error is shorthand for Notify with KindError.
func (n *Notifier) Error(message string) int64 { return n.Notify(message, KindError) }

// Info is shorthand for Notify with KindInfo.
func (n *Notifier) Info(message string) int64 { return n.Notify(message, KindInfo) }

// Warning is shorthand for Notify with KindWarning.
func (n *Notifier) Warning(message string) int64 { return n.Notify(message, KindWarning) }

// Dismiss removes a toast by ID. Dismissing an unknown or already
// expired ID is a no-op, so the scheduled auto-dismiss and a manual
// dismiss never conflict.
func (n *Notifier) Dismiss(id int64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if timer, ok := n.timers[id]; ok {
		timer.Stop()
		delete(n.timers, id)
	}
	for i, toast := range n.toasts {
		if toast.ID == id {
			n.toasts = append(n.toasts[:i], n.toasts[i+1:]...)
			return
		}
	}
}

// Toasts returns the live toasts oldest-first.
func (n *Notifier) Toasts() []Toast {
	n.mu.Lock()
	defer n.mu.Unlock()

	if len(n.toasts) == 0 {
		return nil
	}
	dup := make([]Toast, len(n.toasts))
	copy(dup, n.toasts)
	return dup
}

// Close stops all pending dismiss timers. Called once at process
// teardown.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()

	for id, timer := range n.timers {
		timer.Stop()
		delete(n.timers, id)
	}
}
