package campaign

import (
	"context"
	"errors"
	"fmt"

	"campaign-server/internal/jobs"
	"campaign-server/internal/observability"

	"github.com/hibiken/asynq"
)

// DueCampaignProcessor scans for due campaigns
type DueCampaignProcessor interface {
	ProcessDueCampaigns(ctx context.Context) error
}

// TaskHandler processes the campaign asynq tasks
type TaskHandler struct {
	runner    CampaignRunner
	scheduler DueCampaignProcessor
	canceller Canceller
	logger    *observability.Logger
}

func NewTaskHandler(runner CampaignRunner, scheduler DueCampaignProcessor, canceller Canceller, logger *observability.Logger) *TaskHandler {
	return &TaskHandler{
		runner:    runner,
		scheduler: scheduler,
		canceller: canceller,
		logger:    logger,
	}
}

// Register wires the handlers into an asynq mux
func (h *TaskHandler) Register(mux *asynq.ServeMux) {
	mux.HandleFunc(jobs.TypeCampaignDispatch, h.HandleDispatch)
	mux.HandleFunc(jobs.TypeCampaignSchedulerTick, h.HandleSchedulerTick)
}

// HandleDispatch runs one campaign. Failures cancel the campaign and are
// never retried.
func (h *TaskHandler) HandleDispatch(ctx context.Context, task *asynq.Task) error {
	payload, err := jobs.ParseCampaignDispatchPayload(task)
	if err != nil {
		h.logger.Error(ctx, "invalid campaign dispatch payload", err)
		return fmt.Errorf("%w: %w", err, asynq.SkipRetry)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "campaign_id", Value: payload.CampaignID.String()})

	err = h.runner.RunCampaign(ctx, payload.CampaignID)
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		h.logger.Warn(ctx, "campaign dispatch stopped by shutdown")
		return err
	}

	cancelAfterFailure(ctx, h.canceller, h.logger, payload.CampaignID, err)
	return fmt.Errorf("%w: %w", err, asynq.SkipRetry)
}

// HandleSchedulerTick runs one scheduler pass
func (h *TaskHandler) HandleSchedulerTick(ctx context.Context, _ *asynq.Task) error {
	if err := h.scheduler.ProcessDueCampaigns(ctx); err != nil {
		h.logger.Error(ctx, "scheduler tick failed", err)
		return err
	}
	return nil
}
