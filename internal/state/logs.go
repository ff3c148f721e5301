package state

import (
	"context"
	"log"
	"sync"

	"github.com/evohq/evopanel/internal/backend"
)

// LogCapacity bounds the in-memory request log buffer. The daemon
// keeps the same cap on its side.
const LogCapacity = 100

// LogSource is the slice of the backend client the log store needs.
type LogSource interface {
	GetRequestLogs(ctx context.Context) ([]backend.LogEntry, error)
	ClearRequestLogs(ctx context.Context) error
	StreamLogs(ctx context.Context) (<-chan backend.LogEntry, <-chan error, func(), error)
}

// LogStore holds the capped, most-recent-first buffer of request log
// entries and owns the single event-stream subscription for the
// process.
type LogStore struct {
	source LogSource

	mu      sync.Mutex
	entries []backend.LogEntry

	listenMu  sync.Mutex
	listening bool
	stop      func()
}

// NewLogStore builds a store reading from the given source.
func NewLogStore(source LogSource) *LogStore {
	return &LogStore{source: source}
}

// StartListening attaches the backend event subscription. It is safe
// to call from every view that mounts; only the first call per process
// establishes a subscription. Duplicate subscriptions would duplicate
// every incoming entry, so later calls are suppressed.
func (s *LogStore) StartListening(ctx context.Context) error {
	s.listenMu.Lock()
	defer s.listenMu.Unlock()

	if s.listening {
		return nil
	}

	entries, errs, stop, err := s.source.StreamLogs(ctx)
	if err != nil {
		return err
	}
	s.listening = true
	s.stop = stop

	go func() {
		for {
			select {
			case entry, ok := <-entries:
				if !ok {
					s.markStopped()
					return
				}
				s.Push(entry)
			case err, ok := <-errs:
				if ok && err != nil {
					log.Printf("log stream failed: %v", err)
				}
			case <-ctx.Done():
				s.markStopped()
				return
			}
		}
	}()
	return nil
}

// StopListening tears the subscription down so a later StartListening
// can re-attach (used on reconnect).
func (s *LogStore) StopListening() {
	s.listenMu.Lock()
	defer s.listenMu.Unlock()

	if !s.listening {
		return
	}
	s.listening = false
	if s.stop != nil {
		s.stop()
		s.stop = nil
	}
}

func (s *LogStore) markStopped() {
	s.listenMu.Lock()
	defer s.listenMu.Unlock()
	s.listening = false
	if s.stop != nil {
		s.stop()
		s.stop = nil
	}
}

// Listening reports whether the subscription is live.
func (s *LogStore) Listening() bool {
	s.listenMu.Lock()
	defer s.listenMu.Unlock()
	return s.listening
}

// Push front-inserts one entry and evicts the oldest past capacity.
func (s *LogStore) Push(entry backend.LogEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append([]backend.LogEntry{entry}, s.entries...)
	if len(s.entries) > LogCapacity {
		s.entries = s.entries[:LogCapacity]
	}
}

// Fetch replaces the buffer with the daemon's current set, sorted
// newest-first. A full replace reconciles any entries that arrived
// before the listener attached.
func (s *LogStore) Fetch(ctx context.Context) error {
	entries, err := s.source.GetRequestLogs(ctx)
	if err != nil {
		return err
	}
	backend.SortEntriesDesc(entries)
	if len(entries) > LogCapacity {
		entries = entries[:LogCapacity]
	}

	s.mu.Lock()
	s.entries = entries
	s.mu.Unlock()
	return nil
}

// Clear purges the daemon's buffer, then empties the local one. When
// the daemon purge fails the local buffer is left intact and the error
// is returned; the next fetch reconciles either way.
func (s *LogStore) Clear(ctx context.Context) error {
	if err := s.source.ClearRequestLogs(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	s.entries = nil
	s.mu.Unlock()
	return nil
}

// Entries returns a copy of the buffer, most recent first.
func (s *LogStore) Entries() []backend.LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.entries) == 0 {
		return nil
	}
	dup := make([]backend.LogEntry, len(s.entries))
	copy(dup, s.entries)
	return dup
}

// Len returns the current buffer length.
func (s *LogStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}
