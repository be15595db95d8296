package campaign

import (
	"context"
	"errors"
	"time"

	"campaign-server/internal/jobs"
	"campaign-server/internal/observability"

	"github.com/google/uuid"
)

// DefaultLaunchDelay is the pause before an in-process run starts
const DefaultLaunchDelay = 2 * time.Second

// Enqueuer hands a campaign to the distributed queue
type Enqueuer interface {
	EnqueueCampaignDispatch(ctx context.Context, payload jobs.CampaignDispatchPayload) error
}

// CampaignRunner runs a claimed campaign to completion
type CampaignRunner interface {
	RunCampaign(ctx context.Context, campaignID uuid.UUID) error
}

// Canceller moves a campaign to cancelled after a failure
type Canceller interface {
	CancelCampaign(ctx context.Context, campaignID uuid.UUID) (bool, error)
}

// Launcher starts a running campaign. It prefers the queue and falls back to
// an in-process run when no queue is configured or the enqueue fails.
type Launcher struct {
	queue     Enqueuer
	deferred  *DeferredRunner
	runner    CampaignRunner
	canceller Canceller
	delay     time.Duration
	logger    *observability.Logger
}

// NewLauncher creates a launcher. queue may be nil.
func NewLauncher(queue Enqueuer, deferred *DeferredRunner, runner CampaignRunner, canceller Canceller, delay time.Duration, logger *observability.Logger) *Launcher {
	if delay < 0 {
		delay = DefaultLaunchDelay
	}
	return &Launcher{
		queue:     queue,
		deferred:  deferred,
		runner:    runner,
		canceller: canceller,
		delay:     delay,
		logger:    logger,
	}
}

// Launch hands the campaign to a dispatcher. An error means nothing will run it.
func (l *Launcher) Launch(ctx context.Context, campaignID uuid.UUID) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: campaignID.String()})

	if l.queue != nil {
		err := l.queue.EnqueueCampaignDispatch(ctx, jobs.CampaignDispatchPayload{CampaignID: campaignID})
		if err == nil {
			return nil
		}
		l.logger.Warn(ctx, "enqueue failed, running campaign in process",
			observability.Field{Key: "error", Value: err.Error()},
		)
	}

	return l.deferred.Schedule(l.delay, func(runCtx context.Context) {
		runCtx = observability.WithFields(runCtx, observability.Field{Key: "campaign_id", Value: campaignID.String()})
		err := l.runner.RunCampaign(runCtx, campaignID)
		if err != nil {
			cancelAfterFailure(runCtx, l.canceller, l.logger, campaignID, err)
		}
	})
}

// cancelAfterFailure cancels a campaign whose run failed. A run stopped by
// shutdown keeps its status so the scheduler can recover it.
func cancelAfterFailure(ctx context.Context, canceller Canceller, logger *observability.Logger, campaignID uuid.UUID, runErr error) {
	if errors.Is(runErr, context.Canceled) || errors.Is(runErr, context.DeadlineExceeded) {
		logger.Warn(ctx, "campaign run stopped by shutdown", observability.Field{Key: "error", Value: runErr.Error()})
		return
	}

	logger.Error(ctx, "campaign run failed, cancelling campaign", runErr)
	if _, err := canceller.CancelCampaign(context.WithoutCancel(ctx), campaignID); err != nil {
		logger.Error(ctx, "failed to cancel campaign", err)
	}
}
