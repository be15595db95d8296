package ratelimit

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"campaign-server/internal/keylock"
	"campaign-server/internal/metrics"
	"campaign-server/internal/observability"
	"campaign-server/internal/plans"

	"github.com/google/uuid"
)

// WindowSize is the trailing period the hourly cap is counted over
const WindowSize = time.Hour

// SendLimiter paces outbound campaign messages per company. Campaigns of a
// company in one process queue on one lock; the window's atomic reservation
// keeps the hourly cap across processes.
type SendLimiter struct {
	window Window
	locks  *keylock.Locker
	logger *observability.Logger

	now    func() time.Time
	sleep  func(ctx context.Context, d time.Duration) error
	jitter func(min, max time.Duration) time.Duration
}

// NewSendLimiter creates a limiter over the given window
func NewSendLimiter(window Window, logger *observability.Logger) *SendLimiter {
	return &SendLimiter{
		window: window,
		locks:  keylock.New(),
		logger: logger,
		now:    time.Now,
		sleep:  sleepContext,
		jitter: uniformJitter,
	}
}

// Wait blocks until the company may send one more message and reserves that
// send in the window. It waits for the oldest send to leave the window when
// the hourly cap is reached, and for a random delay in [min, max] after the
// company's previous send. Returns ctx.Err() if ctx ends first.
func (l *SendLimiter) Wait(ctx context.Context, companyID uuid.UUID, settings plans.CampaignSettings) error {
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "company_id", Value: companyID.String()},
	)
	key := windowKey(companyID)

	unlock, err := l.locks.Lock(ctx, key)
	if err != nil {
		return err
	}
	defer unlock()

	start := l.now()
	delay := l.jitter(settings.MinDelay(), settings.MaxDelay())

	for {
		wait, err := l.window.Reserve(ctx, key, Reservation{
			Now:   l.now(),
			Limit: settings.MaxMessagesPerHour,
			Gap:   delay,
		})
		if err != nil {
			return fmt.Errorf("failed to reserve send: %w", err)
		}
		if wait == 0 {
			metrics.RateLimitWaitSeconds.Observe(l.now().Sub(start).Seconds())
			return nil
		}

		if wait > delay {
			l.logger.Info(ctx, "hourly send limit reached, waiting for the window to move",
				observability.Field{Key: "limit", Value: settings.MaxMessagesPerHour},
				observability.Field{Key: "wait", Value: wait.String()},
			)
		}
		if err := l.sleep(ctx, wait); err != nil {
			return err
		}
	}
}

func windowKey(companyID uuid.UUID) string {
	return "campaign:send_window:" + companyID.String()
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func uniformJitter(min, max time.Duration) time.Duration {
	if max <= min {
		return min
	}
	return min + rand.N(max-min+1)
}
