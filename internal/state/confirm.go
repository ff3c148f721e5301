package state

import (
	"errors"
	"sync"
)

// maxPendingConfirms bounds the broker queue. Anything past this is a
// runaway caller, not a user waiting on modals.
const maxPendingConfirms = 16

// ErrConfirmQueueFull is returned when the broker cannot take another
// pending request.
var ErrConfirmQueueFull = errors.New("confirmation queue full")

// Confirmation is one pending yes/no prompt.
type Confirmation struct {
	Title   string
	Message string
	outcome chan bool
}

// Confirmer serializes yes/no prompts. Requests queue FIFO and the UI
// shows exactly one modal at a time: the head of the queue. Resolving
// the head promotes the next request. Every caller's outcome is
// answered exactly once; nothing is overwritten or orphaned.
//
// The zero value is ready to use.
type Confirmer struct {
	mu      sync.Mutex
	pending []*Confirmation
}

// Ask queues a prompt and returns a channel that yields the user's
// answer exactly once. When the queue is full the channel is already
// closed (reads yield false) and the error is ErrConfirmQueueFull.
func (c *Confirmer) Ask(message, title string) (<-chan bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	outcome := make(chan bool, 1)
	if len(c.pending) >= maxPendingConfirms {
		close(outcome)
		return outcome, ErrConfirmQueueFull
	}
	c.pending = append(c.pending, &Confirmation{Title: title, Message: message, outcome: outcome})
	return outcome, nil
}

// Current returns the prompt the UI should display, or nil when no
// prompt is pending.
func (c *Confirmer) Current() *Confirmation {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.pending) == 0 {
		return nil
	}
	return c.pending[0]
}

// Pending returns the number of queued prompts, the visible one
// included.
func (c *Confirmer) Pending() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.pending)
}

// Resolve answers the visible prompt and promotes the next queued one.
// Resolving with no pending prompt is a no-op.
func (c *Confirmer) Resolve(answer bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.pending) == 0 {
		return
	}
	head := c.pending[0]
	c.pending = c.pending[1:]
	head.outcome <- answer
	close(head.outcome)
}
