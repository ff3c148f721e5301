package backend

import (
	"context"
	"errors"
	"fmt"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
)

// Streamer is the event surface the panel needs from the daemon: a
// one-way push channel of request log entries.
type Streamer interface {
	StreamLogs(ctx context.Context) (<-chan LogEntry, <-chan error, func(), error)
}

var _ Streamer = (*Client)(nil)

// StreamLogs subscribes to the daemon's request-log event stream over
// a WebSocket. The daemon pushes one JSON LogEntry per completed
// proxied request. Entries arrive on the first channel in emission
// order; a terminal failure arrives on the second, after which both
// channels are closed. The returned func tears the subscription down.
func (c *Client) StreamLogs(ctx context.Context) (<-chan LogEntry, <-chan error, func(), error) {
	if c == nil {
		return nil, nil, nil, fmt.Errorf("client is nil")
	}

	wsURL := *c.baseURL
	switch wsURL.Scheme {
	case "https":
		wsURL.Scheme = "wss"
	default:
		wsURL.Scheme = "ws"
	}
	wsURL.Path = "/api/events/logs"

	streamCtx, cancel := context.WithCancel(ctx)

	conn, resp, err := websocket.Dial(streamCtx, wsURL.String(), &websocket.DialOptions{
		HTTPHeader: map[string][]string{"User-Agent": {c.userAgent}},
	})
	if resp != nil && resp.Body != nil {
		defer func() { _ = resp.Body.Close() }()
	}
	if err != nil {
		cancel()
		return nil, nil, nil, fmt.Errorf("dial event stream %s: %w", wsURL.String(), err)
	}

	entries := make(chan LogEntry)
	errs := make(chan error, 1)

	go func() {
		defer close(entries)
		defer close(errs)
		defer func() { _ = conn.Close(websocket.StatusNormalClosure, "done") }()

		for {
			var entry LogEntry
			if err := wsjson.Read(streamCtx, conn, &entry); err != nil {
				if streamCtx.Err() != nil || errors.Is(err, context.Canceled) {
					return
				}
				errs <- fmt.Errorf("read event stream: %w", err)
				return
			}
			select {
			case entries <- entry:
			case <-streamCtx.Done():
				return
			}
		}
	}()

	return entries, errs, cancel, nil
}
