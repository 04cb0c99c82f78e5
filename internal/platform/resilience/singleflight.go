package resilience

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
)

// ErrLoaderPanicked is returned to every caller sharing a call whose function
// panicked.
var ErrLoaderPanicked = errors.New("singleflight: function panicked")

// SingleFlight deduplicates concurrent calls for the same key.
type SingleFlight struct {
	mu    sync.Mutex
	calls map[string]*call
}

type call struct {
	done chan struct{}
	val  any
	err  error
}

// Do runs fn once for concurrent callers of key. Callers that join an
// in-flight call stop waiting when their ctx ends; the call itself keeps
// running for the others. shared reports whether the result came from
// another caller's call.
func (g *SingleFlight) Do(ctx context.Context, key string, fn func() (any, error)) (val any, err error, shared bool) {
	g.mu.Lock()
	if g.calls == nil {
		g.calls = make(map[string]*call)
	}

	if c, ok := g.calls[key]; ok {
		g.mu.Unlock()
		select {
		case <-c.done:
			return c.val, c.err, true
		case <-ctx.Done():
			return nil, ctx.Err(), true
		}
	}

	c := &call{done: make(chan struct{})}
	g.calls[key] = c
	g.mu.Unlock()

	defer func() {
		g.mu.Lock()
		delete(g.calls, key)
		g.mu.Unlock()
		close(c.done)
	}()

	func() {
		defer func() {
			if r := recover(); r != nil {
				c.val, c.err = nil, errors.Wrapf(ErrLoaderPanicked, "key %q: %v", key, r)
			}
		}()
		c.val, c.err = fn()
	}()

	return c.val, c.err, false
}
