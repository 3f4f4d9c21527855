package thenvoitest

import (
	"context"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
)

// WaitForWebSocket dials the URL with exponential backoff until a
// connection succeeds or the context expires. Integration tests use it to
// gate on an endpoint that is still coming up.
func WaitForWebSocket(ctx context.Context, url string) error {
	b := newBackoff(50*time.Millisecond, time.Second)
	for {
		conn, resp, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
		if err == nil {
			conn.Close()
			return nil
		}
		if resp != nil {
			resp.Body.Close()
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("waiting for %s: %w", url, ctx.Err())
		case <-time.After(b.next()):
		}
	}
}

// backoff implements exponential backoff with a maximum delay.
type backoff struct {
	initial time.Duration
	max     time.Duration
	current time.Duration
}

func newBackoff(initial, max time.Duration) *backoff {
	return &backoff{
		initial: initial,
		max:     max,
		current: initial,
	}
}

func (b *backoff) next() time.Duration {
	d := b.current
	b.current *= 2
	if b.current > b.max {
		b.current = b.max
	}
	if d > b.max {
		d = b.max
	}
	return d
}
