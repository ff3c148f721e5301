package state

import (
	"errors"
	"testing"
	"time"
)

func TestConfirmer_SinglePromptVisible(t *testing.T) {
	var c Confirmer

	if c.Current() != nil {
		t.Fatal("Current() != nil on empty broker")
	}

	first, err := c.Ask("delete mock?", "Confirm")
	if err != nil {
		t.Fatalf("Ask returned error: %v", err)
	}
	second, err := c.Ask("stop server?", "Confirm")
	if err != nil {
		t.Fatalf("Ask returned error: %v", err)
	}

	// The first request stays visible; the second queues behind it.
	if got := c.Current(); got == nil || got.Message != "delete mock?" {
		t.Fatalf("Current() = %#v, want first prompt", got)
	}
	if c.Pending() != 2 {
		t.Fatalf("Pending() = %d, want 2", c.Pending())
	}

	c.Resolve(true)
	select {
	case answer := <-first:
		if !answer {
			t.Fatal("first outcome = false, want true")
		}
	default:
		t.Fatal("first outcome not delivered")
	}

	// Resolving the head promotes the queued prompt.
	if got := c.Current(); got == nil || got.Message != "stop server?" {
		t.Fatalf("Current() = %#v, want second prompt", got)
	}

	c.Resolve(false)
	select {
	case answer := <-second:
		if answer {
			t.Fatal("second outcome = true, want false")
		}
	default:
		t.Fatal("second outcome not delivered")
	}

	if c.Current() != nil || c.Pending() != 0 {
		t.Fatalf("broker not drained: pending %d", c.Pending())
	}
}

func TestConfirmer_EachOutcomeAnsweredExactlyOnce(t *testing.T) {
	var c Confirmer

	outcome, err := c.Ask("sure?", "")
	if err != nil {
		t.Fatalf("Ask returned error: %v", err)
	}
	c.Resolve(true)
	c.Resolve(false) // nothing pending: no-op

	if answer := <-outcome; !answer {
		t.Fatal("answer = false, want true")
	}
	// Channel is closed after the single answer.
	select {
	case _, ok := <-outcome:
		if ok {
			t.Fatal("outcome yielded a second value")
		}
	case <-time.After(time.Second):
		t.Fatal("outcome channel not closed")
	}
}

func TestConfirmer_RejectsWhenFull(t *testing.T) {
	var c Confirmer

	for i := 0; i < maxPendingConfirms; i++ {
		if _, err := c.Ask("q", ""); err != nil {
			t.Fatalf("Ask %d returned error: %v", i, err)
		}
	}

	outcome, err := c.Ask("one too many", "")
	if !errors.Is(err, ErrConfirmQueueFull) {
		t.Fatalf("err = %v, want ErrConfirmQueueFull", err)
	}
	// Rejected channel reads false immediately.
	select {
	case answer, ok := <-outcome:
		if ok || answer {
			t.Fatalf("rejected outcome = (%v, %v), want closed channel", answer, ok)
		}
	case <-time.After(time.Second):
		t.Fatal("rejected outcome channel not closed")
	}

	if c.Pending() != maxPendingConfirms {
		t.Fatalf("Pending() = %d, want %d", c.Pending(), maxPendingConfirms)
	}
}
