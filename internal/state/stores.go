package state

import "github.com/evohq/evopanel/internal/backend"

// Stores bundles the four shared stores every view reads from. It is
// constructed exactly once at process start, injected into the UI, and
// torn down at process exit; views never build their own.
type Stores struct {
	Notifier *Notifier
	Confirms *Confirmer
	Logs     *LogStore
	Server   *ServerMirror
}

// New wires the stores to the backend client.
func New(client *backend.Client) *Stores {
	return &Stores{
		Notifier: &Notifier{},
		Confirms: &Confirmer{},
		Logs:     NewLogStore(client),
		Server:   NewServerMirror(client),
	}
}

// Close releases timers and the event subscription.
func (s *Stores) Close() {
	s.Logs.StopListening()
	s.Notifier.Close()
}
