package state

import (
	"context"
	"sync"
	"time"

	"github.com/evohq/evopanel/internal/backend"
)

// ServerMirror caches the daemon's serving configuration plus a
// derived live running flag. The derived flag tracks what the panel
// last observed or commanded; the persisted ServerConfig.Running is
// only the autostart preference. The two are reconciled after every
// mutating command; there is no rollback path if the daemon desyncs
// afterwards, which is an accepted tradeoff for a local dev tool.
type ServerMirror struct {
	client backend.Commander

	mu                  sync.RWMutex
	config              backend.ServerConfig
	hasConfig           bool
	running             bool
	lastUpdated         time.Time
	lastError           error
	consecutiveFailures int
}

// ServerSnapshot is the mirror's state at a point in time.
type ServerSnapshot struct {
	Config              backend.ServerConfig
	HasConfig           bool
	Running             bool
	LastUpdated         time.Time
	LastError           error
	ConsecutiveFailures int
}

// IsOffline reports whether the daemon has been unreachable for
// multiple refreshes.
func (s ServerSnapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// NewServerMirror builds a mirror issuing commands through client.
func NewServerMirror(client backend.Commander) *ServerMirror {
	return &ServerMirror{client: client}
}

// Refresh pulls the persisted config from the daemon and re-derives
// the running flag from it. On failure the previous state is kept and
// the error recorded for visibility.
func (m *ServerMirror) Refresh(ctx context.Context) error {
	cfg, err := m.client.GetServerConfig(ctx)

	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastUpdated = time.Now()
	if err != nil {
		m.lastError = err
		m.consecutiveFailures++
		return err
	}
	m.config = cfg
	m.hasConfig = true
	m.running = cfg.Running
	m.lastError = nil
	m.consecutiveFailures = 0
	return nil
}

// Save persists the full config. It never starts or stops the server;
// when the persisted Running flag disagrees with the live state the
// caller separately confirms and triggers a restart. On failure the
// cached config is left unchanged.
func (m *ServerMirror) Save(ctx context.Context, cfg backend.ServerConfig) error {
	if err := m.client.UpdateServerConfig(ctx, cfg); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.config = cfg
	m.hasConfig = true
	m.lastUpdated = time.Now()
	return nil
}

// Toggle starts or stops the server based on the derived running flag.
// On success the flag flips and is written back into the persisted
// config so a later Save agrees with reality.
func (m *ServerMirror) Toggle(ctx context.Context) (running bool, err error) {
	m.mu.RLock()
	wasRunning := m.running
	cfg := m.config
	m.mu.RUnlock()

	if wasRunning {
		err = m.client.StopServer(ctx)
	} else {
		err = m.client.StartServer(ctx)
	}
	if err != nil {
		return wasRunning, err
	}

	cfg.Running = !wasRunning
	if persistErr := m.client.UpdateServerConfig(ctx, cfg); persistErr != nil {
		// The lifecycle command succeeded; only the autostart flag is
		// stale. Report it but keep the derived state truthful.
		err = persistErr
	}

	m.mu.Lock()
	m.running = !wasRunning
	m.config = cfg
	m.lastUpdated = time.Now()
	m.mu.Unlock()
	return !wasRunning, err
}

// Restart bounces the mock listener so config edits take effect. The
// derived flag is left as-is: a restart implies the server ends up
// running.
func (m *ServerMirror) Restart(ctx context.Context) error {
	if err := m.client.RestartServer(ctx); err != nil {
		return err
	}
	m.mu.Lock()
	m.running = true
	m.lastUpdated = time.Now()
	m.mu.Unlock()
	return nil
}

// Snapshot returns a copy of the mirror's current state.
func (m *ServerMirror) Snapshot() ServerSnapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return ServerSnapshot{
		Config:              m.config,
		HasConfig:           m.hasConfig,
		Running:             m.running,
		LastUpdated:         m.lastUpdated,
		LastError:           m.lastError,
		ConsecutiveFailures: m.consecutiveFailures,
	}
}
