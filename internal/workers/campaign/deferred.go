package campaign

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"campaign-server/internal/observability"
)

var ErrRunnerStopped = errors.New("deferred runner stopped")

// DeferredRunner runs functions after a delay on goroutines it owns. It is the
// in-process fallback when no queue is configured. Stop cancels runs that have
// not started and waits for the ones in flight.
type DeferredRunner struct {
	logger *observability.Logger

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	stopped bool
	timers  map[*time.Timer]struct{}
	wg      sync.WaitGroup
}

// NewDeferredRunner creates a runner whose runs receive a context that is
// cancelled on Stop
func NewDeferredRunner(logger *observability.Logger) *DeferredRunner {
	ctx, cancel := context.WithCancel(context.Background())
	return &DeferredRunner{
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
		timers: make(map[*time.Timer]struct{}),
	}
}

// Schedule runs fn after delay. A panic inside fn is logged and swallowed.
func (r *DeferredRunner) Schedule(delay time.Duration, fn func(ctx context.Context)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stopped {
		return ErrRunnerStopped
	}

	r.wg.Add(1)
	var timer *time.Timer
	timer = time.AfterFunc(delay, func() {
		defer r.wg.Done()

		r.mu.Lock()
		delete(r.timers, timer)
		r.mu.Unlock()

		if r.ctx.Err() != nil {
			return
		}
		r.run(fn)
	})
	r.timers[timer] = struct{}{}
	return nil
}

func (r *DeferredRunner) run(fn func(ctx context.Context)) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error(r.ctx, "deferred run panicked", fmt.Errorf("panic: %v", rec))
		}
	}()
	fn(r.ctx)
}

// Pending reports scheduled runs that have not started yet
func (r *DeferredRunner) Pending() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.timers)
}

// Stop cancels pending runs and the context of running ones, then waits for
// them until ctx expires
func (r *DeferredRunner) Stop(ctx context.Context) error {
	r.mu.Lock()
	if !r.stopped {
		r.stopped = true
		r.cancel()
		for timer := range r.timers {
			if timer.Stop() {
				delete(r.timers, timer)
				r.wg.Done()
			}
		}
	}
	r.mu.Unlock()

	done := make(chan struct{})
	go func() {
		r.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
