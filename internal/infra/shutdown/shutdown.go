// Package shutdown provides graceful shutdown for long-running
// SyncVault processes, such as the CLI watch mode. It turns SIGINT and
// SIGTERM into ordered cleanup: hooks run in reverse registration
// order under a shared timeout, so the cache watcher stops before the
// store it feeds.
package shutdown

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// Handler coordinates graceful shutdown.
type Handler struct {
	timeout time.Duration

	mu    sync.Mutex
	hooks []func(context.Context) error

	trigger chan os.Signal
	done    chan struct{}
}

// NewHandler creates a shutdown handler. The timeout bounds the total
// time all hooks may take once a signal arrives.
func NewHandler(timeout time.Duration) *Handler {
	h := &Handler{
		timeout: timeout,
		trigger: make(chan os.Signal, 1),
		done:    make(chan struct{}),
	}
	signal.Notify(h.trigger, syscall.SIGINT, syscall.SIGTERM)
	return h
}

// OnShutdown registers a hook. Hooks run in reverse registration
// order, so dependents registered later clean up first.
func (h *Handler) OnShutdown(hook func(context.Context) error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.hooks = append(h.hooks, hook)
}

// Trigger initiates shutdown without an OS signal, for callers that
// finish on their own.
func (h *Handler) Trigger() {
	select {
	case h.trigger <- syscall.SIGTERM:
	default:
	}
}

// Wait blocks until a signal arrives (or Trigger is called), then runs
// the hooks and returns the last hook error.
func (h *Handler) Wait() error {
	<-h.trigger
	signal.Stop(h.trigger)

	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	h.mu.Lock()
	hooks := make([]func(context.Context) error, len(h.hooks))
	copy(hooks, h.hooks)
	h.mu.Unlock()

	var lastErr error
	for i := len(hooks) - 1; i >= 0; i-- {
		if err := hooks[i](ctx); err != nil {
			lastErr = err
		}
	}

	close(h.done)
	return lastErr
}

// Done returns a channel that closes once all hooks have run.
func (h *Handler) Done() <-chan struct{} {
	return h.done
}
